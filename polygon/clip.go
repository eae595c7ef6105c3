// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package polygon

import (
	"github.com/golang/geo/r2"
)

// IntersectionArea returns the area of the intersection of the polygon with
// the region bounded by clip, which must be convex and counter-clockwise.
//
// Every ring is clipped with Sutherland-Hodgman. Clipping keeps the winding
// number of the ring inside the clip region and zeroes it outside, so the
// signed areas of the clipped shell and holes sum to the intersection area
// even though clipped concave rings may contain degenerate bridge edges.
func (p *Polygon) IntersectionArea(clip Ring) float64 {
	cb := clip.Bounds()
	var area float64
	var buf [2]Ring
	for i, r := range p.Rings() {
		rb := p.bounds[i]
		switch {
		case !cb.Intersects(rb):
			continue
		case cb.Contains(rb) && containsRing(clip, r):
			area += r.SignedArea()
		default:
			area += clipConvex(r, clip, &buf).SignedArea()
		}
	}
	if area < 0 {
		return 0
	}
	return area
}

// containsRing reports whether every vertex of r lies inside the convex ring
// clip, which then contains all of r.
func containsRing(clip, r Ring) bool {
	for i := range clip.NumEdges() {
		a, b := clip.Edge(i)
		e := b.Sub(a)
		for _, v := range r {
			if e.Cross(v.Sub(a)) < 0 {
				return false
			}
		}
	}
	return true
}

// clipConvex clips subject against the convex counter-clockwise ring clip.
// The result aliases one of the scratch buffers.
func clipConvex(subject, clip Ring, buf *[2]Ring) Ring {
	in := subject
	for i := range clip.NumEdges() {
		if len(in) == 0 {
			break
		}
		a, b := clip.Edge(i)
		out := buf[i&1][:0]
		out = clipHalfPlane(in, a, b, out)
		buf[i&1] = out
		in = out
	}
	return in
}

// clipHalfPlane appends to out the part of ring in that lies left of the
// directed line a->b.
func clipHalfPlane(in Ring, a, b r2.Point, out Ring) Ring {
	e := b.Sub(a)
	prev := in[len(in)-1]
	prevSide := e.Cross(prev.Sub(a))
	for _, cur := range in {
		curSide := e.Cross(cur.Sub(a))
		switch {
		case curSide >= 0:
			if prevSide < 0 {
				out = append(out, crossing(prev, cur, prevSide, curSide))
			}
			out = append(out, cur)
		case prevSide >= 0:
			out = append(out, crossing(prev, cur, prevSide, curSide))
		}
		prev, prevSide = cur, curSide
	}
	return out
}

func crossing(p, q r2.Point, sp, sq float64) r2.Point {
	t := sp / (sp - sq)
	return p.Add(q.Sub(p).Mul(t))
}
