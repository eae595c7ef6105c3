// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package pcf2d

import (
	"fmt"
	"math"

	"github.com/2dChan/pcf2d/polygon"
	"github.com/golang/geo/r2"
)

// Result holds g(r) together with every intermediate needed to inspect it.
// G and R are the usual output; the remaining fields describe the points
// that served as ring centers.
type Result struct {
	// G is the edge-corrected pair correlation function per bin.
	G []float64
	// R is the center of each bin.
	R []float64
	// RawPDF is the mean number of neighbors per center in each bin.
	RawPDF []float64

	// Points are the ring centers: every point inside the domain for the
	// accurate method, the points far enough from the boundary for the fast
	// method.
	Points            []r2.Point
	BoundaryDistances []float64
	// NOTE: Row-major, NumBins factors per point.
	NormalizationFactors []float64

	// Density is the number of points inside the domain divided by its area.
	Density float64
	// NumDomainPoints is the number of input points inside the domain.
	NumDomainPoints int

	RingAreas       []float64
	RingApproxAreas []float64

	Domain *polygon.Polygon
	Method Method
}

func (r *Result) NumPoints() int {
	return len(r.Points)
}

func (r *Result) NumBins() int {
	return len(r.G)
}

// Defined reports whether G holds numbers, which requires at least one ring
// center.
func (r *Result) Defined() bool {
	return r.NumPoints() > 0
}

// Normalization returns the row of normalization factors of point i.
func (r *Result) Normalization(i int) []float64 {
	if i < 0 || i >= r.NumPoints() {
		panic("Normalization: index out of range")
	}
	nb := r.NumBins()
	return r.NormalizationFactors[i*nb : (i+1)*nb]
}

// Sample returns a view of the i-th ring center.
// It returns an error if the index is out of range.
func (r *Result) Sample(i int) (Sample, error) {
	if i < 0 || i >= r.NumPoints() {
		return Sample{}, fmt.Errorf("Sample: index %d out of range [0 %d)", i, r.NumPoints())
	}
	return Sample{idx: i, r: r}, nil
}

func assemble(
	points []r2.Point,
	centers []int,
	distances []float64,
	factors []float64,
	edges []float64,
	rings []RingTemplate,
	h histogram,
	density float64,
) *Result {
	nb := len(rings)
	nc := len(centers)
	res := &Result{
		G:                    make([]float64, nb),
		R:                    make([]float64, nb),
		RawPDF:               make([]float64, nb),
		Points:               make([]r2.Point, nc),
		BoundaryDistances:    make([]float64, nc),
		NormalizationFactors: factors,
		Density:              density,
		NumDomainPoints:      len(points),
		RingAreas:            make([]float64, nb),
		RingApproxAreas:      make([]float64, nb),
	}
	for k, i := range centers {
		res.Points[k] = points[i]
		res.BoundaryDistances[k] = distances[i]
	}

	n := float64(nc)
	for j, rt := range rings {
		res.R[j] = (edges[j] + edges[j+1]) / 2
		res.RingAreas[j] = rt.Area
		res.RingApproxAreas[j] = rt.ApproxArea
		if nc == 0 {
			res.G[j] = math.NaN()
			res.RawPDF[j] = math.NaN()
			continue
		}
		res.G[j] = h.normalized[j] / (n * density)
		res.RawPDF[j] = float64(h.raw[j]) / n
	}
	return res
}
