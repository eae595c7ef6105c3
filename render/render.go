// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package render draws point patterns and g(r) curves as SVG.
package render

import (
	"fmt"
	"io"
	"math"

	"github.com/2dChan/pcf2d/polygon"
	svg "github.com/ajstarks/svgo"
	"github.com/golang/geo/r2"
)

const (
	margin = 40

	backgroundStyle = "fill:rgb(255,255,255)"
	shellStyle      = "fill:rgb(255,255,255);stroke:rgb(170,170,170);stroke-width:1;stroke-opacity:1.0"
	holeStyle       = "fill:rgb(230,230,230);stroke:rgb(170,170,170);stroke-width:1;stroke-opacity:1.0"
	pointStyle      = "fill:rgb(255,0,0)"
	axisStyle       = "stroke:rgb(0,0,0);stroke-width:1"
	unityStyle      = "stroke:rgb(170,170,170);stroke-width:1;stroke-dasharray:4,4"
	curveStyle      = "fill:none;stroke:rgb(0,0,255);stroke-width:2"
	labelStyle      = "font-family:sans-serif;font-size:12px;fill:rgb(0,0,0)"
)

// Frame maps a rectangle of the plane onto an SVG canvas with the y axis
// pointing up. The aspect ratio of the rectangle is kept.
type Frame struct {
	bounds r2.Rect
	scale  float64
	offX   float64
	offY   float64
	height int
}

func NewFrame(bounds r2.Rect, width, height int) Frame {
	size := bounds.Size()
	w := float64(width - 2*margin)
	h := float64(height - 2*margin)
	scale := math.Min(w/nonZero(size.X), h/nonZero(size.Y))
	return Frame{
		bounds: bounds,
		scale:  scale,
		offX:   margin + (w-size.X*scale)/2,
		offY:   margin + (h-size.Y*scale)/2,
		height: height,
	}
}

// ToScreen returns the canvas coordinates of p.
func (f Frame) ToScreen(p r2.Point) (int, int) {
	x := f.offX + (p.X-f.bounds.X.Lo)*f.scale
	y := float64(f.height) - f.offY - (p.Y-f.bounds.Y.Lo)*f.scale
	return int(math.Round(x)), int(math.Round(y))
}

// Points writes an SVG image of the domain and the points to w.
func Points(w io.Writer, domain *polygon.Polygon, points []r2.Point, width, height int) {
	bounds := domain.Bounds()
	for _, p := range points {
		bounds = bounds.AddPoint(p)
	}
	f := NewFrame(bounds, width, height)

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, backgroundStyle)

	xs, ys := f.ring(domain.Shell(), nil, nil)
	canvas.Polygon(xs, ys, shellStyle)
	for i := range domain.NumHoles() {
		xs, ys = f.ring(domain.Hole(i), xs[:0], ys[:0])
		canvas.Polygon(xs, ys, holeStyle)
	}

	for _, p := range points {
		x, y := f.ToScreen(p)
		canvas.Circle(x, y, 2, pointStyle)
	}
	canvas.End()
}

// Curve writes an SVG plot of g against r to w. A dashed line marks g = 1.
// The curve is broken at NaN values.
func Curve(w io.Writer, r, g []float64, width, height int) {
	maxR, maxG := 0.0, 1.0
	for j := range r {
		maxR = math.Max(maxR, r[j])
		if !math.IsNaN(g[j]) {
			maxG = math.Max(maxG, g[j])
		}
	}
	maxG *= 1.1
	bounds := r2.RectFromPoints(r2.Point{}, r2.Point{X: nonZero(maxR), Y: maxG})
	sx := float64(width-2*margin) / bounds.Size().X
	sy := float64(height-2*margin) / bounds.Size().Y
	toScreen := func(p r2.Point) (int, int) {
		x := margin + p.X*sx
		y := float64(height-margin) - p.Y*sy
		return int(math.Round(x)), int(math.Round(y))
	}

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, backgroundStyle)

	x0, y0 := toScreen(r2.Point{})
	x1, y1 := toScreen(bounds.Hi())
	canvas.Line(x0, y0, x1, y0, axisStyle)
	canvas.Line(x0, y0, x0, y1, axisStyle)
	_, yu := toScreen(r2.Point{Y: 1})
	canvas.Line(x0, yu, x1, yu, unityStyle)

	canvas.Text(x1, y0+20, fmt.Sprintf("r = %.3g", maxR), labelStyle+";text-anchor:end")
	canvas.Text(x0-5, y1, fmt.Sprintf("%.3g", maxG), labelStyle+";text-anchor:end")
	canvas.Text(x0-5, yu, "1", labelStyle+";text-anchor:end")

	var xs, ys []int
	flush := func() {
		if len(xs) > 1 {
			canvas.Polyline(xs, ys, curveStyle)
		}
		xs, ys = xs[:0], ys[:0]
	}
	for j := range r {
		if math.IsNaN(g[j]) {
			flush()
			continue
		}
		x, y := toScreen(r2.Point{X: r[j], Y: g[j]})
		xs = append(xs, x)
		ys = append(ys, y)
	}
	flush()
	canvas.End()
}

func (f Frame) ring(r polygon.Ring, xs, ys []int) ([]int, []int) {
	for _, p := range r {
		x, y := f.ToScreen(p)
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys
}

func nonZero(v float64) float64 {
	if v <= 0 {
		return 1
	}
	return v
}
