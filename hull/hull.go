// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package hull computes planar convex hulls with QuickHull.
//
// The points are placed on the plane z = 0 together with one apex above
// them. The 3D hull of that cloud is a cone over the planar hull: every face
// that touches the apex carries exactly one edge of the planar hull, so
// chaining those edges yields the hull ring.
package hull

import (
	"errors"
	"fmt"
	"math"

	"github.com/2dChan/pcf2d/polygon"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
)

const (
	defaultEps = 1e-12
)

// ErrDegenerate is returned when the points do not span a region of
// positive area.
var ErrDegenerate = errors.New("hull: degenerate input")

type Options struct {
	Eps float64
}

type Option func(*Options) error

// WithEps sets the QuickHull tolerance and the relative collinearity
// threshold. eps must be positive.
func WithEps(eps float64) Option {
	return func(o *Options) error {
		if eps <= 0 {
			return fmt.Errorf("WithEps: eps must be positive, got %v", eps)
		}
		o.Eps = eps
		return nil
	}
}

// ConvexHull returns the convex hull of points as a counter-clockwise ring.
// Vertices are points from the input; collinear points along hull edges may
// or may not be part of the ring.
func ConvexHull(points []r2.Point, setters ...Option) (polygon.Ring, error) {
	opts := Options{
		Eps: defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	n := len(points)
	if n < 3 {
		return nil, fmt.Errorf("%w: %d points, minimum 3 required", ErrDegenerate, n)
	}

	bounds := r2.RectFromPoints(points...)
	center := bounds.Center()
	size := bounds.Size()
	scale := math.Max(size.X, size.Y) / 2
	if scale == 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("%w: points do not span a finite region", ErrDegenerate)
	}
	if collinear(points, opts.Eps*scale*scale) {
		return nil, fmt.Errorf("%w: points are collinear", ErrDegenerate)
	}

	cloud := make([]r3.Vector, n+1)
	for i, p := range points {
		q := p.Sub(center).Mul(1 / scale)
		cloud[i] = r3.Vector{X: q.X, Y: q.Y}
	}
	apex := n
	cloud[apex] = r3.Vector{Z: 1}

	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(cloud, true, true, opts.Eps)
	if len(ch.Indices)%3 != 0 {
		return nil, errors.New("hull: inconsistent number of indices returned from QuickHull")
	}

	next := make(map[int]int)
	for i := 0; i < len(ch.Indices); i += 3 {
		t := [3]int{ch.Indices[i], ch.Indices[i+1], ch.Indices[i+2]}
		for j := range 3 {
			if t[j] == apex {
				next[t[(j+1)%3]] = t[(j+2)%3]
				break
			}
		}
	}

	ring, err := chain(next)
	if err != nil {
		return nil, err
	}
	hull := make(polygon.Ring, len(ring))
	for i, idx := range ring {
		hull[i] = points[idx]
	}
	if hull.SignedArea() < 0 {
		hull = hull.Reverse()
	}
	return hull, nil
}

// chain walks the successor map from its smallest key and returns the
// visited indices. Every key must be visited exactly once.
func chain(next map[int]int) ([]int, error) {
	if len(next) < 3 {
		return nil, fmt.Errorf("%w: hull has %d edges", ErrDegenerate, len(next))
	}
	start := -1
	for k := range next {
		if start < 0 || k < start {
			start = k
		}
	}

	ring := make([]int, 0, len(next))
	for v := start; ; {
		ring = append(ring, v)
		nv, ok := next[v]
		if !ok {
			return nil, errors.New("hull: open edge chain returned from QuickHull")
		}
		if nv == start {
			break
		}
		if len(ring) == len(next) {
			return nil, errors.New("hull: edge chain does not close")
		}
		v = nv
	}
	if len(ring) != len(next) {
		return nil, errors.New("hull: disconnected edge chain returned from QuickHull")
	}
	return ring, nil
}

// collinear reports whether every point lies within the area threshold of
// the line through the first point and the point farthest from it.
func collinear(points []r2.Point, threshold float64) bool {
	p0 := points[0]
	far, farDist := p0, 0.0
	for _, p := range points[1:] {
		if d := p.Sub(p0).Norm(); d > farDist {
			far, farDist = p, d
		}
	}
	dir := far.Sub(p0)
	for _, p := range points {
		if math.Abs(dir.Cross(p.Sub(p0))) > threshold {
			return false
		}
	}
	return true
}
