// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package pcf2d

import (
	"slices"

	"github.com/2dChan/pcf2d/hull"
	"github.com/2dChan/pcf2d/polygon"
	"github.com/golang/geo/r2"
)

// buildDomain returns the observation window and the points inside it.
// Without a boundary the window is the convex hull of all points and every
// point is kept.
func buildDomain(points []r2.Point, opts Options) (*polygon.Polygon, []r2.Point, error) {
	if opts.Boundary == nil {
		if len(opts.Holes) > 0 {
			return nil, nil, ErrHolesWithoutBoundary
		}
		ring, err := hull.ConvexHull(points)
		if err != nil {
			return nil, nil, err
		}
		domain, err := polygon.New(ring)
		if err != nil {
			return nil, nil, err
		}
		return domain, slices.Clone(points), nil
	}

	domain, err := polygon.New(opts.Boundary, opts.Holes...)
	if err != nil {
		return nil, nil, err
	}
	return domain, domain.Filter(points), nil
}
