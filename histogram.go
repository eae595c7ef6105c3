// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package pcf2d

import (
	"slices"

	"github.com/golang/geo/r2"
)

type histogram struct {
	raw        []int
	normalized []float64
}

func newHistogram(nb int) histogram {
	return histogram{
		raw:        make([]int, nb),
		normalized: make([]float64, nb),
	}
}

func (h histogram) add(o histogram) {
	for j := range h.raw {
		h.raw[j] += o.raw[j]
		h.normalized[j] += o.normalized[j]
	}
}

// binIndex returns the bin of edges that holds d. Bins are half-open
// [edges[j], edges[j+1]) except the last one, which also holds its upper edge.
func binIndex(edges []float64, d float64) (int, bool) {
	last := len(edges) - 1
	if d < edges[0] || d > edges[last] {
		return 0, false
	}
	i, found := slices.BinarySearch(edges, d)
	if found {
		return min(i, last-1), true
	}
	return i - 1, true
}

// accumulate counts, for every center, the distances to all other points per
// bin. Each count is also added divided by the exact ring area times the
// center's normalization factor. Row k of factors belongs to centers[k].
//
// Blocks of centers are accumulated independently and merged in block order,
// so the sums do not depend on scheduling.
func accumulate(
	points []r2.Point,
	centers []int,
	edges []float64,
	rings []RingTemplate,
	factors []float64,
	workers int,
) histogram {
	nb := len(rings)
	partial := make([]histogram, numBlocks(len(centers)))
	forEachBlock(len(centers), workers, func(b, lo, hi int) {
		h := newHistogram(nb)
		counts := make([]int, nb)
		for k := lo; k < hi; k++ {
			clear(counts)
			i := centers[k]
			p := points[i]
			for m, q := range points {
				if m == i {
					continue
				}
				if j, ok := binIndex(edges, p.Sub(q).Norm()); ok {
					counts[j]++
				}
			}

			row := factors[k*nb : (k+1)*nb]
			for j, c := range counts {
				if c == 0 {
					continue
				}
				h.raw[j] += c
				if row[j] > 0 {
					h.normalized[j] += float64(c) / (rings[j].Area * row[j])
				}
			}
		}
		partial[b] = h
	})

	total := newHistogram(nb)
	for _, h := range partial {
		total.add(h)
	}
	return total
}
