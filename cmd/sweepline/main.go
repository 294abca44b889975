package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/sweepline"
	"github.com/wroge/wgs84/v2"
	"golang.org/x/sync/errgroup"
)

type Find struct {
	Other         string `short:"b" desc:"Second GeoJSON file, only pairs between both inputs are reported"`
	Exhaustive    bool   `short:"e" desc:"Also test segments of the same edge against each other"`
	Intersections bool   `short:"i" desc:"Compute the intersections of the candidate pairs"`
	Trivial       bool   `desc:"Include intersections at shared vertices of adjacent segments"`
	EPSG          int    `default:"0" desc:"Project WGS84 coordinates to the given EPSG code"`
	Quiet         bool   `short:"q" desc:"Only print statistics"`
	Verbose       bool   `short:"v" desc:"Verbose logging"`
	Input         string `index:"0" desc:"GeoJSON file"`
}

func main() {
	root := argp.NewCmd(&Find{}, "Find candidate segment pairs for intersection using a sweep line")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Find) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	} else if cmd.Other != "" && cmd.Exhaustive {
		return fmt.Errorf("exhaustive mode cannot be used with a second input")
	}
	if cmd.Verbose {
		sweepline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var edgesA, edgesB []*sweepline.Polyline
	g := errgroup.Group{}
	g.Go(func() (err error) {
		edgesA, err = cmd.read(cmd.Input)
		return err
	})
	if cmd.Other != "" {
		g.Go(func() (err error) {
			edgesB, err = cmd.read(cmd.Other)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var si sweepline.SegmentIntersector
	pairs := &sweepline.Pairs{}
	x := &sweepline.Intersector{IncludeTrivial: cmd.Trivial}
	if cmd.Intersections {
		si = x
	} else {
		si = pairs
	}

	var stats sweepline.Stats
	var err error
	if cmd.Other != "" {
		stats, err = sweepline.FindBetween(edgesA, edgesB, si)
	} else {
		stats, err = sweepline.FindAll(edgesA, si, cmd.Exhaustive)
	}
	if err != nil {
		return err
	}

	if !cmd.Quiet {
		if cmd.Intersections {
			for _, z := range x.Intersections() {
				fmt.Println(z)
			}
		} else {
			for _, pair := range pairs.Pairs() {
				fmt.Println(pair.A, "x", pair.B)
			}
		}
	}
	fmt.Println(stats)
	if cmd.Intersections {
		fmt.Printf("intersections=%d proper=%v\n", len(x.Intersections()), x.HasProper())
	}
	return nil
}

// read parses the edges of a GeoJSON file, or of stdin for "-", and optionally projects them.
func (cmd *Find) read(filename string) ([]*sweepline.Polyline, error) {
	var b []byte
	var err error
	if filename == "-" {
		b, err = io.ReadAll(os.Stdin)
	} else {
		b, err = os.ReadFile(filename)
	}
	if err != nil {
		return nil, err
	}

	edges, err := sweepline.ParseGeoJSON(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	if cmd.EPSG != 0 {
		project := wgs84.Transform(wgs84.EPSG(4326), wgs84.EPSG(cmd.EPSG))
		for i := range edges {
			edges[i] = edges[i].TransformFunc(func(x, y float64) (float64, float64) {
				x, y, _ = project(x, y, 0.0)
				return x, y
			})
		}
	}
	sweepline.Logger().Debug("read edges", "file", filename, "edges", len(edges), "bounds", sweepline.BoundsOf(edges))
	return edges, nil
}
