// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/2dChan/pcf2d/polygon"
	"github.com/golang/geo/r2"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// input is the content of a GeoJSON FeatureCollection. domain is nil when
// the collection has no Polygon feature.
type input struct {
	points []r2.Point
	domain *polygon.Polygon
}

func readInputFile(path string) (*input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	in, err := readInput(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return in, nil
}

func readInput(r io.Reader) (*input, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var fc geojson.FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing feature collection: %w", err)
	}

	in := &input{}
	for i, f := range fc.Features {
		switch g := f.Geometry.(type) {
		case *geom.Point:
			in.points = append(in.points, polygon.PointsFromCoords([]geom.Coord{g.Coords()})...)
		case *geom.MultiPoint:
			in.points = append(in.points, polygon.PointsFromCoords(g.Coords())...)
		case *geom.Polygon:
			if in.domain != nil {
				return nil, fmt.Errorf("feature %d: more than one polygon", i)
			}
			p, err := polygon.FromGeom(g)
			if err != nil {
				return nil, fmt.Errorf("feature %d: %w", i, err)
			}
			in.domain = p
		case nil:
			return nil, fmt.Errorf("feature %d: missing geometry", i)
		default:
			return nil, fmt.Errorf("feature %d: unsupported geometry %T", i, g)
		}
	}
	if len(in.points) == 0 {
		return nil, errors.New("no points")
	}
	return in, nil
}

// boundary returns the shell and the holes of the domain, or nil when the
// domain is left to the convex hull.
func (in *input) boundary() ([]r2.Point, [][]r2.Point) {
	if in.domain == nil {
		return nil, nil
	}
	holes := make([][]r2.Point, in.domain.NumHoles())
	for i := range holes {
		holes[i] = in.domain.Hole(i)
	}
	return in.domain.Shell(), holes
}
