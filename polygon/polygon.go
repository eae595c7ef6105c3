// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package polygon implements planar polygons with holes and the handful of
// exact geometric queries needed for edge-corrected point statistics:
// validation, area, closed point containment, distance to the boundary and
// area of intersection with a convex clip ring.
package polygon

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// ErrInvalidPolygon is returned when vertices do not describe a valid
// polygon: a simple shell and simple holes that neither cross nor touch each
// other, with every hole inside the shell.
var ErrInvalidPolygon = errors.New("polygon: invalid polygon")

// Polygon is a simple polygon with zero or more holes. The shell is stored
// counter-clockwise and holes clockwise, so the signed areas of all rings
// add up to the polygon area.
type Polygon struct {
	shell  Ring
	holes  []Ring
	bounds []r2.Rect
	area   float64
}

// New builds a polygon from a shell and optional holes and validates it.
// A repeated closing vertex and consecutive duplicate vertices are dropped.
func New(shell []r2.Point, holes ...[]r2.Point) (*Polygon, error) {
	s, err := normalizeRing(shell, "shell")
	if err != nil {
		return nil, err
	}
	if !s.IsCCW() {
		s = s.Reverse()
	}

	p := &Polygon{
		shell:  s,
		holes:  make([]Ring, 0, len(holes)),
		bounds: make([]r2.Rect, 0, len(holes)+1),
	}
	p.bounds = append(p.bounds, s.Bounds())
	for i, h := range holes {
		hr, err := normalizeRing(h, fmt.Sprintf("hole %d", i))
		if err != nil {
			return nil, err
		}
		if hr.IsCCW() {
			hr = hr.Reverse()
		}
		p.holes = append(p.holes, hr)
		p.bounds = append(p.bounds, hr.Bounds())
	}

	if err := p.validate(); err != nil {
		return nil, err
	}

	for _, r := range p.Rings() {
		p.area += r.SignedArea()
	}
	if p.area <= 0 {
		return nil, fmt.Errorf("%w: non-positive area %v", ErrInvalidPolygon, p.area)
	}
	return p, nil
}

// Shell returns the counter-clockwise outer ring.
func (p *Polygon) Shell() Ring {
	return p.shell
}

// NumHoles returns the number of holes.
func (p *Polygon) NumHoles() int {
	return len(p.holes)
}

// Hole returns the i-th clockwise hole ring.
func (p *Polygon) Hole(i int) Ring {
	if i < 0 || i >= len(p.holes) {
		panic("Hole: index out of range")
	}
	return p.holes[i]
}

// Rings returns the shell followed by the holes.
func (p *Polygon) Rings() []Ring {
	rings := make([]Ring, 0, len(p.holes)+1)
	rings = append(rings, p.shell)
	return append(rings, p.holes...)
}

// Area returns the area of the shell minus the area of the holes.
func (p *Polygon) Area() float64 {
	return p.area
}

// Bounds returns the bounding rectangle of the shell.
func (p *Polygon) Bounds() r2.Rect {
	return p.bounds[0]
}

// ContainsPoint reports whether q lies in the closed polygon: inside or on
// the shell, and not strictly inside any hole.
func (p *Polygon) ContainsPoint(q r2.Point) bool {
	if !p.bounds[0].ContainsPoint(q) {
		return false
	}
	if p.shell.locate(q) == outside {
		return false
	}
	for i, h := range p.holes {
		if !p.bounds[i+1].ContainsPoint(q) {
			continue
		}
		if h.locate(q) == inside {
			return false
		}
	}
	return true
}

// Filter returns the points contained in the polygon, in input order.
func (p *Polygon) Filter(points []r2.Point) []r2.Point {
	kept := make([]r2.Point, 0, len(points))
	for _, q := range points {
		if p.ContainsPoint(q) {
			kept = append(kept, q)
		}
	}
	return kept
}

// BoundaryDistance returns the distance from q to the nearest point of the
// shell or of any hole ring.
func (p *Polygon) BoundaryDistance(q r2.Point) float64 {
	d := math.Inf(1)
	for _, r := range p.Rings() {
		d = math.Min(d, r.DistanceTo(q))
	}
	return d
}

// Translate returns a copy of the polygon shifted by d.
func (p *Polygon) Translate(d r2.Point) *Polygon {
	t := &Polygon{
		shell:  p.shell.Translate(d),
		holes:  make([]Ring, len(p.holes)),
		bounds: make([]r2.Rect, len(p.bounds)),
		area:   p.area,
	}
	for i, h := range p.holes {
		t.holes[i] = h.Translate(d)
	}
	for i, b := range p.bounds {
		t.bounds[i] = r2.RectFromPoints(b.Lo().Add(d), b.Hi().Add(d))
	}
	return t
}

func normalizeRing(vertices []r2.Point, name string) (Ring, error) {
	r := make(Ring, 0, len(vertices))
	for i, v := range vertices {
		if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) {
			return nil, fmt.Errorf("%w: %s vertex %d is not finite", ErrInvalidPolygon, name, i)
		}
		if len(r) > 0 && r[len(r)-1] == v {
			continue
		}
		r = append(r, v)
	}
	if len(r) > 1 && r[0] == r[len(r)-1] {
		r = r[:len(r)-1]
	}
	if len(r) < 3 {
		return nil, fmt.Errorf("%w: %s has %d distinct vertices, minimum 3 required",
			ErrInvalidPolygon, name, len(r))
	}
	if r.SignedArea() == 0 {
		return nil, fmt.Errorf("%w: %s has zero area", ErrInvalidPolygon, name)
	}
	return r, nil
}
