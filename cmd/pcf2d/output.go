// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/2dChan/pcf2d"
	"github.com/2dChan/pcf2d/polygon"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// number is a float64 that encodes NaN and infinities as JSON null.
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

func numbers(v []float64) []number {
	out := make([]number, len(v))
	for i, f := range v {
		out[i] = number(f)
	}
	return out
}

type report struct {
	Method          string   `json:"method"`
	Edges           []number `json:"bin_edges"`
	R               []number `json:"r"`
	G               []number `json:"g"`
	RawPDF          []number `json:"raw_pdf"`
	RingAreas       []number `json:"ring_areas"`
	RingApproxAreas []number `json:"ring_approx_areas"`
	Density         number   `json:"density"`
	DomainArea      number   `json:"domain_area"`
	NumPoints       int      `json:"num_points"`
	NumDomainPoints int      `json:"num_domain_points"`
	Defined         bool     `json:"defined"`
}

func writeJSON(w io.Writer, res *pcf2d.Result, edges []float64) error {
	rep := report{
		Method:          res.Method.String(),
		Edges:           numbers(edges),
		R:               numbers(res.R),
		G:               numbers(res.G),
		RawPDF:          numbers(res.RawPDF),
		RingAreas:       numbers(res.RingAreas),
		RingApproxAreas: numbers(res.RingApproxAreas),
		Density:         number(res.Density),
		DomainArea:      number(res.Domain.Area()),
		NumPoints:       res.NumPoints(),
		NumDomainPoints: res.NumDomainPoints,
		Defined:         res.Defined(),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

var csvHeader = []string{"r_lo", "r_hi", "r", "g", "raw_pdf", "ring_area", "ring_approx_area"}

func writeCSV(w io.Writer, res *pcf2d.Result, edges []float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	row := make([]string, len(csvHeader))
	for j := range res.NumBins() {
		for k, v := range []float64{
			edges[j], edges[j+1], res.R[j], res.G[j], res.RawPDF[j], res.RingAreas[j], res.RingApproxAreas[j],
		} {
			row[k] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeResult(w io.Writer, format string, res *pcf2d.Result, edges []float64) error {
	switch format {
	case formatJSON:
		return writeJSON(w, res, edges)
	case formatCSV:
		return writeCSV(w, res, edges)
	}
	return fmt.Errorf("unknown format %q", format)
}

// writeDomain writes the domain as a GeoJSON Feature.
func writeDomain(w io.Writer, domain *polygon.Polygon, props map[string]any) error {
	f := &geojson.Feature{
		Geometry:   domain.Geom(),
		Properties: props,
	}
	data, err := json.Marshal(f)
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
