// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides utility functions for generating random planar point patterns.

package utils

import (
	"math/rand"

	"github.com/2dChan/pcf2d/polygon"
	"github.com/golang/geo/r2"
)

// GenerateRandomPoints generates points uniformly distributed in the unit square.
// The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, seed int64) []r2.Point {
	return GenerateRandomPointsInRect(cnt, seed, r2.RectFromPoints(r2.Point{}, r2.Point{X: 1, Y: 1}))
}

// GenerateRandomPointsInRect generates points uniformly distributed in rect.
func GenerateRandomPointsInRect(cnt int, seed int64, rect r2.Rect) []r2.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	points := make([]r2.Point, cnt)
	lo, size := rect.Lo(), rect.Size()

	for i := range cnt {
		points[i] = r2.Point{
			X: lo.X + random.Float64()*size.X,
			Y: lo.Y + random.Float64()*size.Y,
		}
	}

	return points
}

// GenerateRandomPointsInPolygon generates points uniformly distributed in p
// by rejection sampling from its bounding rectangle.
func GenerateRandomPointsInPolygon(cnt int, seed int64, p *polygon.Polygon) []r2.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	points := make([]r2.Point, 0, cnt)
	b := p.Bounds()
	lo, size := b.Lo(), b.Size()

	for len(points) < cnt {
		q := r2.Point{
			X: lo.X + random.Float64()*size.X,
			Y: lo.Y + random.Float64()*size.Y,
		}
		if p.ContainsPoint(q) {
			points = append(points, q)
		}
	}

	return points
}
