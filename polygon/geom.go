// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package polygon

import (
	"fmt"

	"github.com/golang/geo/r2"
	"github.com/twpayne/go-geom"
)

// FromGeom converts a go-geom polygon. The first linear ring is the shell,
// the remaining ones are holes. Coordinates beyond X and Y are ignored.
func FromGeom(g *geom.Polygon) (*Polygon, error) {
	n := g.NumLinearRings()
	if n == 0 {
		return nil, fmt.Errorf("%w: empty geometry", ErrInvalidPolygon)
	}
	shell := PointsFromCoords(g.LinearRing(0).Coords())
	holes := make([][]r2.Point, 0, n-1)
	for i := 1; i < n; i++ {
		holes = append(holes, PointsFromCoords(g.LinearRing(i).Coords()))
	}
	return New(shell, holes...)
}

// Geom converts the polygon into a closed XY go-geom polygon.
func (p *Polygon) Geom() *geom.Polygon {
	rings := p.Rings()
	coords := make([][]geom.Coord, len(rings))
	for i, r := range rings {
		c := make([]geom.Coord, 0, len(r)+1)
		for _, v := range r {
			c = append(c, geom.Coord{v.X, v.Y})
		}
		coords[i] = append(c, geom.Coord{r[0].X, r[0].Y})
	}
	return geom.NewPolygon(geom.XY).MustSetCoords(coords)
}

// PointsFromCoords converts go-geom coordinates into planar points.
func PointsFromCoords(coords []geom.Coord) []r2.Point {
	pts := make([]r2.Point, len(coords))
	for i, c := range coords {
		pts[i] = r2.Point{X: c.X(), Y: c.Y()}
	}
	return pts
}
