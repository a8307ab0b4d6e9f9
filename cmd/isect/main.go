package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/isect/go/internal/geometry"
	"github.com/isect/go/internal/loader"
	"github.com/isect/go/internal/logger"
	"github.com/isect/go/internal/models"
	"github.com/isect/go/internal/shape"
)

var Logger = logger.GetLogger("isect")

func run(path string) ([]byte, error) {
	start := time.Now()

	input, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	Logger.Debug("input loaded", "path", path, "objects", len(input.Objects))

	areas := make([]models.ObjectArea, len(input.Objects))
	var bounds geometry.Rect
	for i, obj := range input.Objects {
		areas[i] = obj.Area()
		bounds = bounds.Union(areas[i].Area)
	}
	Logger.Debug("scene bounds", "width", bounds.Width(), "height", bounds.Height())

	found := shape.ListIntersections(areas)
	intersections := make([]models.ObjectIntersection, len(found))
	var overlapArea float32
	for i, in := range found {
		intersections[i] = models.ObjectIntersection{
			Names: [2]string{areas[in.A].Name, areas[in.B].Name},
			Area:  in.Area,
		}
		overlapArea += in.Area.Area()
	}

	Logger.Info("search finished",
		"path", path,
		"objects", len(areas),
		"intersections", len(intersections),
		"overlapArea", overlapArea,
		"took", time.Since(start))

	return json.MarshalIndent(models.Output{Areas: areas, Intersections: intersections}, "", "  ")
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: isect <input.json> [more.json ...]")
		os.Exit(2)
	}

	paths := os.Args[1:]
	reports := make([][]byte, len(paths))

	// Each input file is an independent document.
	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			report, err := run(path)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		Logger.Error("run failed", "error", err)
		os.Exit(1)
	}

	for _, report := range reports {
		fmt.Println(string(report))
	}
}
