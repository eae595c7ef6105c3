// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package pcf2d

import (
	"github.com/2dChan/pcf2d/polygon"
	"github.com/golang/geo/r2"
)

func boundaryDistances(domain *polygon.Polygon, points []r2.Point, workers int) []float64 {
	d := make([]float64, len(points))
	forEachBlock(len(points), workers, func(_, lo, hi int) {
		for i := lo; i < hi; i++ {
			d[i] = domain.BoundaryDistance(points[i])
		}
	})
	return d
}

// normalizationFactors returns the row-major matrix of ring fractions, one
// row per point. Rings that cannot reach the boundary keep a factor of 1.
func normalizationFactors(
	domain *polygon.Polygon,
	points []r2.Point,
	distances []float64,
	edges []float64,
	rings []RingTemplate,
	workers int,
) []float64 {
	nb := len(rings)
	f := ones(len(points) * nb)
	forEachBlock(len(points), workers, func(_, lo, hi int) {
		for i := lo; i < hi; i++ {
			row := f[i*nb : (i+1)*nb]
			d := distances[i]
			for j := range rings {
				if d > edges[0] && edges[j+1] <= d {
					continue
				}
				row[j] = rings[j].Fraction(domain, points[i])
			}
		}
	})
	return f
}

// farPoints returns the indices of points whose boundary distance exceeds
// maxEdge.
func farPoints(distances []float64, maxEdge float64) []int {
	idx := make([]int, 0, len(distances))
	for i, d := range distances {
		if d > maxEdge {
			idx = append(idx, i)
		}
	}
	return idx
}

func allPoints(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func ones(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1
	}
	return v
}
