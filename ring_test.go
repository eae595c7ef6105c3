// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package pcf2d

import (
	"math"
	"testing"

	"github.com/2dChan/pcf2d/polygon"
	"github.com/golang/geo/r2"
)

func TestNewRingTemplates(t *testing.T) {
	edges := []float64{0, 0.1, 0.25, 1}
	rings := NewRingTemplates(edges, defaultCircleSegments)
	if len(rings) != len(edges)-1 {
		t.Fatalf("len(NewRingTemplates(...)) = %v, want %v", len(rings), len(edges)-1)
	}

	for j, rt := range rings {
		r0, r1 := edges[j], edges[j+1]
		if rt.InnerRadius != r0 || rt.OuterRadius != r1 {
			t.Errorf("rings[%d] radii = (%v, %v), want (%v, %v)", j, rt.InnerRadius, rt.OuterRadius, r0, r1)
		}
		if want := math.Pi * (r1*r1 - r0*r0); math.Abs(rt.Area-want) > 1e-15 {
			t.Errorf("rings[%d].Area = %v, want %v", j, rt.Area, want)
		}
		want := polygon.CircleArea(r1, defaultCircleSegments) - polygon.CircleArea(r0, defaultCircleSegments)
		if math.Abs(rt.ApproxArea-want) > 1e-12 {
			t.Errorf("rings[%d].ApproxArea = %v, want %v", j, rt.ApproxArea, want)
		}
		if rt.ApproxArea >= rt.Area || rt.ApproxArea < 0.99*rt.Area {
			t.Errorf("rings[%d].ApproxArea = %v, want in [0.99, 1) * %v", j, rt.ApproxArea, rt.Area)
		}
		if len(rt.Outer) != defaultCircleSegments {
			t.Errorf("len(rings[%d].Outer) = %v, want %v", j, len(rt.Outer), defaultCircleSegments)
		}
	}

	if rings[0].Inner != nil {
		t.Errorf("rings[0].Inner = %v, want nil", rings[0].Inner)
	}
	if rings[1].Inner == nil {
		t.Errorf("rings[1].Inner = nil, want non-nil")
	}
}

func TestNewRingTemplates_TooFewEdges(t *testing.T) {
	if got := NewRingTemplates([]float64{1}, defaultCircleSegments); got != nil {
		t.Errorf("NewRingTemplates([1], ...) = %v, want nil", got)
	}
}

func TestRingTemplate_Fraction(t *testing.T) {
	domain, err := polygon.New(unitSquare())
	if err != nil {
		t.Fatalf("polygon.New(...) error = %v, want nil", err)
	}
	rings := NewRingTemplates([]float64{0, 0.1, 0.2}, defaultCircleSegments)

	tests := []struct {
		name   string
		ring   int
		center r2.Point
		want   float64
	}{
		{"interior disk", 0, r2.Point{X: 0.5, Y: 0.5}, 1},
		{"interior annulus", 1, r2.Point{X: 0.5, Y: 0.5}, 1},
		{"edge disk", 0, r2.Point{X: 0.5, Y: 0}, 0.5},
		{"edge annulus", 1, r2.Point{X: 0, Y: 0.5}, 0.5},
		{"corner disk", 0, r2.Point{X: 1, Y: 1}, 0.25},
		{"corner annulus", 1, r2.Point{X: 0, Y: 1}, 0.25},
		{"outside", 0, r2.Point{X: 2, Y: 2}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rings[tt.ring].Fraction(domain, tt.center)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Fraction(domain, %v) = %v, want %v", tt.center, got, tt.want)
			}
			if got > 1 {
				t.Errorf("Fraction(domain, %v) = %v, want <= 1", tt.center, got)
			}
		})
	}
}

func TestRingTemplate_IntersectionAreaHole(t *testing.T) {
	domain, err := polygon.New(
		[]r2.Point{{0, 0}, {0, 8}, {8, 8}, {8, 0}},
		[]r2.Point{{2, 2}, {2, 6}, {6, 6}, {6, 2}},
	)
	if err != nil {
		t.Fatalf("polygon.New(...) error = %v, want nil", err)
	}
	rt := NewRingTemplates([]float64{0.5, 1.5}, defaultCircleSegments)[0]

	// The hole covers the whole annulus around its center.
	if got := rt.IntersectionArea(domain, r2.Point{X: 4, Y: 4}); got > 1e-12 {
		t.Errorf("IntersectionArea(domain, hole center) = %v, want 0", got)
	}
	// The annulus around a corner of the hole loses a quarter to it.
	got := rt.Fraction(domain, r2.Point{X: 2, Y: 2})
	if math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Fraction(domain, hole corner) = %v, want 0.75", got)
	}
}
