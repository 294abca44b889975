package sweepline

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// EdgesFromGeometry returns the edges of a geometry: every line string and every polygon ring becomes an edge. Points carry no segments and are skipped.
func EdgesFromGeometry(g orb.Geometry) []*Polyline {
	var edges []*Polyline
	switch g := g.(type) {
	case orb.LineString:
		edges = append(edges, polylineFromPoints(g))
	case orb.MultiLineString:
		for _, ls := range g {
			edges = append(edges, polylineFromPoints(ls))
		}
	case orb.Ring:
		edges = append(edges, polylineFromPoints(g).Close())
	case orb.Polygon:
		for _, ring := range g {
			edges = append(edges, polylineFromPoints(ring).Close())
		}
	case orb.MultiPolygon:
		for _, poly := range g {
			for _, ring := range poly {
				edges = append(edges, polylineFromPoints(ring).Close())
			}
		}
	case orb.Collection:
		for _, gi := range g {
			edges = append(edges, EdgesFromGeometry(gi)...)
		}
	}
	return edges
}

func polylineFromPoints(ps []orb.Point) *Polyline {
	coords := make([]Point, len(ps))
	for i, pt := range ps {
		coords[i] = Point{pt[0], pt[1]}
	}
	return NewPolyline(coords...)
}

// ParseGeoJSON returns the edges of a GeoJSON feature collection, feature, or geometry.
func ParseGeoJSON(b []byte) ([]*Polyline, error) {
	var header struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(b, &header); err != nil {
		return nil, fmt.Errorf("geojson: %w", err)
	}

	var edges []*Polyline
	switch header.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(b)
		if err != nil {
			return nil, fmt.Errorf("geojson: %w", err)
		}
		for _, f := range fc.Features {
			edges = append(edges, EdgesFromGeometry(f.Geometry)...)
		}
	case "Feature":
		f, err := geojson.UnmarshalFeature(b)
		if err != nil {
			return nil, fmt.Errorf("geojson: %w", err)
		}
		edges = EdgesFromGeometry(f.Geometry)
	case "":
		return nil, fmt.Errorf("geojson: missing type")
	default:
		g, err := geojson.UnmarshalGeometry(b)
		if err != nil {
			return nil, fmt.Errorf("geojson: %w", err)
		}
		edges = EdgesFromGeometry(g.Geometry())
	}
	return edges, nil
}
