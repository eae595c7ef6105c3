// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/2dChan/pcf2d/polygon"
	"github.com/golang/geo/r2"
	"github.com/google/go-cmp/cmp"
)

const squareWithHole = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {}, "geometry": {"type": "Polygon", "coordinates": [
      [[0, 0], [1, 0], [1, 1], [0, 1], [0, 0]],
      [[0.4, 0.4], [0.4, 0.6], [0.6, 0.6], [0.6, 0.4], [0.4, 0.4]]
    ]}},
    {"type": "Feature", "properties": {}, "geometry": {"type": "Point", "coordinates": [0.1, 0.2]}},
    {"type": "Feature", "properties": {}, "geometry": {"type": "MultiPoint", "coordinates": [[0.3, 0.3], [0.9, 0.8]]}}
  ]
}`

func TestReadInput(t *testing.T) {
	in, err := readInput(strings.NewReader(squareWithHole))
	if err != nil {
		t.Fatalf("readInput(...) error = %v, want nil", err)
	}

	wantPoints := []r2.Point{{0.1, 0.2}, {0.3, 0.3}, {0.9, 0.8}}
	if diff := cmp.Diff(wantPoints, in.points); diff != "" {
		t.Errorf("in.points mismatch (-want +got):\n%s", diff)
	}
	if in.domain == nil {
		t.Fatalf("in.domain = nil, want non-nil")
	}
	if got, want := in.domain.Area(), 0.96; got < want-1e-12 || got > want+1e-12 {
		t.Errorf("in.domain.Area() = %v, want %v", got, want)
	}

	shell, holes := in.boundary()
	if len(shell) != 4 || len(holes) != 1 || len(holes[0]) != 4 {
		t.Errorf("in.boundary() = (%v, %v), want a 4-vertex shell and one 4-vertex hole", shell, holes)
	}
}

func TestReadInput_PointsOnly(t *testing.T) {
	data := `{"type": "FeatureCollection", "features": [
		{"type": "Feature", "properties": null, "geometry": {"type": "MultiPoint", "coordinates": [[0, 0], [1, 0], [0, 1]]}}
	]}`
	in, err := readInput(strings.NewReader(data))
	if err != nil {
		t.Fatalf("readInput(...) error = %v, want nil", err)
	}
	if in.domain != nil {
		t.Errorf("in.domain = %v, want nil", in.domain)
	}
	if shell, holes := in.boundary(); shell != nil || holes != nil {
		t.Errorf("in.boundary() = (%v, %v), want (nil, nil)", shell, holes)
	}
	if len(in.points) != 3 {
		t.Errorf("len(in.points) = %v, want 3", len(in.points))
	}
}

func TestReadInput_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `points`},
		{"not a collection", `{"type": "Feature", "properties": {}, "geometry": null}`},
		{"no points", `{"type": "FeatureCollection", "features": []}`},
		{"missing geometry", `{"type": "FeatureCollection", "features": [
			{"type": "Feature", "properties": {}, "geometry": null}]}`},
		{"line string", `{"type": "FeatureCollection", "features": [
			{"type": "Feature", "properties": {}, "geometry": {"type": "LineString", "coordinates": [[0, 0], [1, 1]]}}]}`},
		{"two polygons", `{"type": "FeatureCollection", "features": [
			{"type": "Feature", "properties": {}, "geometry": {"type": "Polygon", "coordinates": [[[0, 0], [1, 0], [0, 1], [0, 0]]]}},
			{"type": "Feature", "properties": {}, "geometry": {"type": "Polygon", "coordinates": [[[0, 0], [1, 0], [0, 1], [0, 0]]]}},
			{"type": "Feature", "properties": {}, "geometry": {"type": "Point", "coordinates": [0.1, 0.1]}}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := readInput(strings.NewReader(tt.data)); err == nil {
				t.Errorf("readInput(%q) error = nil, want non-nil", tt.data)
			}
		})
	}
}

func TestReadInput_BowTie(t *testing.T) {
	data := `{"type": "FeatureCollection", "features": [
		{"type": "Feature", "properties": {}, "geometry": {"type": "Polygon", "coordinates": [[[0, 0], [0, 1], [1, 0], [1, 1], [0, 0]]]}},
		{"type": "Feature", "properties": {}, "geometry": {"type": "Point", "coordinates": [0.1, 0.1]}}]}`
	_, err := readInput(strings.NewReader(data))
	if !errors.Is(err, polygon.ErrInvalidPolygon) {
		t.Errorf("readInput(bow tie) error = %v, want %v", err, polygon.ErrInvalidPolygon)
	}
}
