// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package polygon

import (
	"fmt"

	"github.com/golang/geo/r2"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy/lineintersector"
)

func (p *Polygon) validate() error {
	rings := p.Rings()
	for i, r := range rings {
		if err := validateSimple(r); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidPolygon, ringName(i), err)
		}
	}

	for i := range rings {
		for j := i + 1; j < len(rings); j++ {
			if !p.bounds[i].Intersects(p.bounds[j]) {
				continue
			}
			if ringsIntersect(rings[i], rings[j]) {
				return fmt.Errorf("%w: %s and %s intersect", ErrInvalidPolygon, ringName(i), ringName(j))
			}
		}
	}

	// Rings do not meet, so one vertex decides containment of a whole ring.
	for i, h := range p.holes {
		if p.shell.locate(h[0]) != inside {
			return fmt.Errorf("%w: %s is outside the shell", ErrInvalidPolygon, ringName(i+1))
		}
		for j, o := range p.holes {
			if i != j && o.locate(h[0]) == inside {
				return fmt.Errorf("%w: %s is nested in %s", ErrInvalidPolygon, ringName(i+1), ringName(j+1))
			}
		}
	}
	return nil
}

func ringName(i int) string {
	if i == 0 {
		return "shell"
	}
	return fmt.Sprintf("hole %d", i-1)
}

// validateSimple checks that no two edges of r meet except adjacent edges at
// their shared vertex.
func validateSimple(r Ring) error {
	n := r.NumEdges()
	strategy := &lineintersector.NonRobustLineIntersector{}
	for i := range n {
		a0, a1 := r.Edge(i)
		for j := i + 1; j < n; j++ {
			b0, b1 := r.Edge(j)
			switch {
			case j == i+1:
				if isSpike(a0, a1, b1) {
					return fmt.Errorf("edges %d and %d overlap", i, j)
				}
			case i == 0 && j == n-1:
				if isSpike(b0, b1, a1) {
					return fmt.Errorf("edges %d and %d overlap", j, i)
				}
			default:
				if segmentsIntersect(strategy, a0, a1, b0, b1) {
					return fmt.Errorf("edges %d and %d intersect", i, j)
				}
			}
		}
	}
	return nil
}

// isSpike reports whether the path a->b->c folds back onto itself.
func isSpike(a, b, c r2.Point) bool {
	u, v := b.Sub(a), c.Sub(b)
	return u.Cross(v) == 0 && u.Dot(v) < 0
}

func ringsIntersect(a, b Ring) bool {
	strategy := &lineintersector.NonRobustLineIntersector{}
	for i := range a.NumEdges() {
		a0, a1 := a.Edge(i)
		for j := range b.NumEdges() {
			b0, b1 := b.Edge(j)
			if segmentsIntersect(strategy, a0, a1, b0, b1) {
				return true
			}
		}
	}
	return false
}

func segmentsIntersect(strategy lineintersector.Strategy, a0, a1, b0, b1 r2.Point) bool {
	if !r2.RectFromPoints(a0, a1).Intersects(r2.RectFromPoints(b0, b1)) {
		return false
	}
	result := lineintersector.LineIntersectsLine(strategy, coord(a0), coord(a1), coord(b0), coord(b1))
	return result.HasIntersection()
}

func coord(p r2.Point) geom.Coord {
	return geom.Coord{p.X, p.Y}
}
