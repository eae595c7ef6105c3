// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"math"
	"testing"

	"github.com/2dChan/pcf2d"
	"github.com/2dChan/pcf2d/polygon"
	"github.com/2dChan/pcf2d/utils"
	"github.com/golang/geo/r2"
	"github.com/google/go-cmp/cmp"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

func TestNumber_MarshalJSON(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1.5, "1.5"},
		{0, "0"},
		{1e-20, "1e-20"},
		{math.NaN(), "null"},
		{math.Inf(1), "null"},
		{math.Inf(-1), "null"},
	}
	for _, tt := range tests {
		got, err := number(tt.in).MarshalJSON()
		if err != nil {
			t.Fatalf("number(%v).MarshalJSON() error = %v, want nil", tt.in, err)
		}
		if string(got) != tt.want {
			t.Errorf("number(%v).MarshalJSON() = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	edges := []float64{0, 0.1, 0.2}
	res := mustCompute(t, edges)

	var buf bytes.Buffer
	if err := writeResult(&buf, formatJSON, res, edges); err != nil {
		t.Fatalf("writeResult(json) error = %v, want nil", err)
	}
	var got struct {
		Method    string     `json:"method"`
		Edges     []float64  `json:"bin_edges"`
		R         []float64  `json:"r"`
		G         []*float64 `json:"g"`
		NumPoints int        `json:"num_points"`
		Defined   bool       `json:"defined"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("json.Unmarshal(...) error = %v, want nil", err)
	}
	if got.Method != "accurate" || !got.Defined || got.NumPoints != res.NumPoints() {
		t.Errorf("report = %+v, want accurate, defined, %d points", got, res.NumPoints())
	}
	if diff := cmp.Diff(edges, got.Edges); diff != "" {
		t.Errorf("bin_edges mismatch (-want +got):\n%s", diff)
	}
	if len(got.G) != 2 || got.G[0] == nil || got.G[1] == nil {
		t.Errorf("g = %v, want 2 numbers", got.G)
	}
}

func TestWriteJSON_Undefined(t *testing.T) {
	edges := []float64{0, 0.1}
	res, err := pcf2d.Compute(utils.GenerateRandomPoints(10, 0), edges,
		pcf2d.WithBoundary([]r2.Point{{5, 5}, {5, 6}, {6, 6}, {6, 5}}))
	if err != nil {
		t.Fatalf("pcf2d.Compute(...) error = %v, want nil", err)
	}

	var buf bytes.Buffer
	if err := writeResult(&buf, formatJSON, res, edges); err != nil {
		t.Fatalf("writeResult(json) error = %v, want nil", err)
	}
	var got struct {
		G       []*float64 `json:"g"`
		Defined bool       `json:"defined"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("json.Unmarshal(...) error = %v, want nil", err)
	}
	if got.Defined || len(got.G) != 1 || got.G[0] != nil {
		t.Errorf("report = %+v, want undefined with null g", got)
	}
}

func TestWriteCSV(t *testing.T) {
	edges := []float64{0, 0.25, 0.5}
	res := mustCompute(t, edges)

	var buf bytes.Buffer
	if err := writeResult(&buf, formatCSV, res, edges); err != nil {
		t.Fatalf("writeResult(csv) error = %v, want nil", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("csv.ReadAll() error = %v, want nil", err)
	}
	if len(records) != 3 {
		t.Fatalf("len(records) = %v, want 3", len(records))
	}
	if diff := cmp.Diff(csvHeader, records[0]); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"0.25", "0.5", "0.375"}, records[2][:3]); diff != "" {
		t.Errorf("second row mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteResult_UnknownFormat(t *testing.T) {
	edges := []float64{0, 0.1}
	res := mustCompute(t, edges)
	if err := writeResult(&bytes.Buffer{}, "xml", res, edges); err == nil {
		t.Errorf("writeResult(xml) error = nil, want non-nil")
	}
}

func TestWriteDomain(t *testing.T) {
	domain, err := polygon.New(
		[]r2.Point{{0, 0}, {0, 2}, {2, 2}, {2, 0}},
		[]r2.Point{{0.5, 0.5}, {0.5, 1}, {1, 1}, {1, 0.5}},
	)
	if err != nil {
		t.Fatalf("polygon.New(...) error = %v, want nil", err)
	}

	var buf bytes.Buffer
	if err := writeDomain(&buf, domain, map[string]any{"area": domain.Area()}); err != nil {
		t.Fatalf("writeDomain(...) error = %v, want nil", err)
	}
	var f geojson.Feature
	if err := json.Unmarshal(buf.Bytes(), &f); err != nil {
		t.Fatalf("json.Unmarshal(...) error = %v, want nil", err)
	}
	g, ok := f.Geometry.(*geom.Polygon)
	if !ok {
		t.Fatalf("f.Geometry = %T, want *geom.Polygon", f.Geometry)
	}
	back, err := polygon.FromGeom(g)
	if err != nil {
		t.Fatalf("polygon.FromGeom(...) error = %v, want nil", err)
	}
	if back.Area() != domain.Area() || back.NumHoles() != 1 {
		t.Errorf("round trip = area %v with %d holes, want area %v with 1 hole", back.Area(), back.NumHoles(), domain.Area())
	}
	if f.Properties["area"] != domain.Area() {
		t.Errorf("f.Properties[area] = %v, want %v", f.Properties["area"], domain.Area())
	}
}

func mustCompute(t *testing.T, edges []float64) *pcf2d.Result {
	t.Helper()
	res, err := pcf2d.Compute(utils.GenerateRandomPoints(200, 0), edges,
		pcf2d.WithBoundary([]r2.Point{{0, 0}, {0, 1}, {1, 1}, {1, 0}}))
	if err != nil {
		t.Fatalf("pcf2d.Compute(...) error = %v, want nil", err)
	}
	return res
}
