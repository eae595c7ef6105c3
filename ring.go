// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package pcf2d

import (
	"math"

	"github.com/2dChan/pcf2d/polygon"
	"github.com/golang/geo/r2"
)

// RingTemplate is the annulus between two consecutive bin edges, centered at
// the origin. Inner and Outer are regular polygons with the same vertex
// angles, so Inner lies inside Outer. Inner is nil when the inner radius is
// zero.
type RingTemplate struct {
	InnerRadius float64
	OuterRadius float64
	Inner       polygon.Ring
	Outer       polygon.Ring

	// Area is the exact annulus area.
	Area float64
	// ApproxArea is the area of Outer minus the area of Inner.
	ApproxArea float64
}

// NewRingTemplates builds one template per bin of edges.
func NewRingTemplates(edges []float64, segments int) []RingTemplate {
	if len(edges) < 2 {
		return nil
	}
	rings := make([]RingTemplate, len(edges)-1)
	for j := range rings {
		r0, r1 := edges[j], edges[j+1]
		rt := RingTemplate{
			InnerRadius: r0,
			OuterRadius: r1,
			Outer:       polygon.Circle(r2.Point{}, r1, segments),
			Area:        math.Pi * (r1*r1 - r0*r0),
		}
		rt.ApproxArea = rt.Outer.SignedArea()
		if r0 > 0 {
			rt.Inner = polygon.Circle(r2.Point{}, r0, segments)
			rt.ApproxArea -= rt.Inner.SignedArea()
		}
		rings[j] = rt
	}
	return rings
}

// IntersectionArea returns the area of the part of the template, moved to
// center, that lies inside domain.
func (rt RingTemplate) IntersectionArea(domain *polygon.Polygon, center r2.Point) float64 {
	a := domain.IntersectionArea(rt.Outer.Translate(center))
	if rt.Inner != nil {
		a -= domain.IntersectionArea(rt.Inner.Translate(center))
	}
	return math.Max(a, 0)
}

// Fraction returns the share of the template, moved to center, that lies
// inside domain, measured against ApproxArea and capped at 1.
func (rt RingTemplate) Fraction(domain *polygon.Polygon, center r2.Point) float64 {
	return math.Min(rt.IntersectionArea(domain, center)/rt.ApproxArea, 1)
}
