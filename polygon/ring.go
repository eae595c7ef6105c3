// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package polygon

import (
	"math"

	"github.com/golang/geo/r2"
)

// Ring is a closed sequence of vertices. The closing edge from the last
// vertex back to the first is implicit, the first vertex is not repeated.
type Ring []r2.Point

// NumEdges returns the number of edges of the ring.
func (r Ring) NumEdges() int {
	return len(r)
}

// Edge returns the i-th edge as (start, end). The last edge wraps around.
func (r Ring) Edge(i int) (r2.Point, r2.Point) {
	if i < 0 || i >= len(r) {
		panic("Edge: index out of range")
	}
	j := i + 1
	if j == len(r) {
		j = 0
	}
	return r[i], r[j]
}

// SignedArea returns the shoelace area of the ring: positive for
// counter-clockwise rings, negative for clockwise ones.
func (r Ring) SignedArea() float64 {
	n := len(r)
	if n < 3 {
		return 0
	}
	var a float64
	prev := r[n-1]
	for _, cur := range r {
		a += prev.Cross(cur)
		prev = cur
	}
	return a / 2
}

// Area returns the unsigned area of the ring.
func (r Ring) Area() float64 {
	return math.Abs(r.SignedArea())
}

// IsCCW reports whether the ring is wound counter-clockwise.
func (r Ring) IsCCW() bool {
	return r.SignedArea() > 0
}

// Reverse returns a copy of the ring with reversed vertex order.
func (r Ring) Reverse() Ring {
	n := len(r)
	rev := make(Ring, n)
	for i, v := range r {
		rev[n-1-i] = v
	}
	return rev
}

// Translate returns a copy of the ring shifted by d.
func (r Ring) Translate(d r2.Point) Ring {
	out := make(Ring, len(r))
	for i, v := range r {
		out[i] = v.Add(d)
	}
	return out
}

// Bounds returns the bounding rectangle of the ring.
func (r Ring) Bounds() r2.Rect {
	if len(r) == 0 {
		return r2.EmptyRect()
	}
	return r2.RectFromPoints(r...)
}

// DistanceTo returns the minimum distance from p to the edges of the ring.
func (r Ring) DistanceTo(p r2.Point) float64 {
	d := math.Inf(1)
	for i := range r.NumEdges() {
		a, b := r.Edge(i)
		d = math.Min(d, segmentDistance(p, a, b))
	}
	return d
}

// Circle returns a counter-clockwise regular polygon with the given number
// of segments whose vertices lie on the circle of the given radius around
// center. The first vertex is at angle zero.
func Circle(center r2.Point, radius float64, segments int) Ring {
	if segments < 3 {
		panic("Circle: at least 3 segments required")
	}
	r := make(Ring, segments)
	step := 2 * math.Pi / float64(segments)
	for i := range segments {
		s, c := math.Sincos(float64(i) * step)
		r[i] = r2.Point{X: center.X + radius*c, Y: center.Y + radius*s}
	}
	return r
}

// CircleArea returns the area of the polygon produced by Circle.
func CircleArea(radius float64, segments int) float64 {
	n := float64(segments)
	return n / 2 * radius * radius * math.Sin(2*math.Pi/n)
}

type location int

const (
	outside location = iota
	inside
	onBoundary
)

// locate classifies p against the ring using ray casting. Points on an edge
// are reported as onBoundary.
func (r Ring) locate(p r2.Point) location {
	in := false
	n := len(r)
	j := n - 1
	for i := range n {
		a, b := r[j], r[i]
		if onSegment(p, a, b) {
			return onBoundary
		}
		if (b.Y > p.Y) != (a.Y > p.Y) &&
			p.X < (a.X-b.X)*(p.Y-b.Y)/(a.Y-b.Y)+b.X {
			in = !in
		}
		j = i
	}
	if in {
		return inside
	}
	return outside
}

func onSegment(p, a, b r2.Point) bool {
	if b.Sub(a).Cross(p.Sub(a)) != 0 {
		return false
	}
	return p.X >= math.Min(a.X, b.X) && p.X <= math.Max(a.X, b.X) &&
		p.Y >= math.Min(a.Y, b.Y) && p.Y <= math.Max(a.Y, b.Y)
}

func segmentDistance(p, a, b r2.Point) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return p.Sub(a).Norm()
	}
	t := p.Sub(a).Dot(ab) / l2
	t = math.Max(0, math.Min(1, t))
	return p.Sub(a.Add(ab.Mul(t))).Norm()
}
