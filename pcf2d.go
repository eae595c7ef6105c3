// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package pcf2d computes the edge-corrected pair correlation function g(r)
// of a planar point pattern observed inside a polygonal window.
package pcf2d

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/golang/geo/r2"
	"go.uber.org/zap"
)

const (
	defaultCircleSegments = 64
)

var (
	// ErrInvalidBins is returned for bin edges that are too few, not finite,
	// negative or not strictly increasing.
	ErrInvalidBins = errors.New("pcf2d: invalid bin edges")
	// ErrInvalidPoints is returned when a point has a non-finite coordinate.
	ErrInvalidPoints = errors.New("pcf2d: invalid points")
	// ErrHolesWithoutBoundary is returned when holes are given but the
	// domain falls back to the convex hull.
	ErrHolesWithoutBoundary = errors.New("pcf2d: holes require a boundary")
)

// Method selects how points near the domain boundary are handled.
type Method int

const (
	// Accurate keeps every point and weights each bin by the fraction of
	// the ring around the point that lies inside the domain.
	Accurate Method = iota
	// Fast drops points closer to the boundary than the largest bin edge
	// from the set of ring centers.
	Fast
)

func (m Method) String() string {
	switch m {
	case Accurate:
		return "accurate"
	case Fast:
		return "fast"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

type Options struct {
	Boundary       []r2.Point
	Holes          [][]r2.Point
	Method         Method
	CircleSegments int
	Workers        int
	Logger         *zap.Logger
}

type Option func(*Options) error

// WithBoundary sets the outer boundary of the domain. Without it the domain
// is the convex hull of the input points.
func WithBoundary(vertices []r2.Point) Option {
	return func(o *Options) error {
		if len(vertices) < 3 {
			return fmt.Errorf("WithBoundary: at least 3 vertices required, got %d", len(vertices))
		}
		o.Boundary = vertices
		return nil
	}
}

// WithHoles adds excluded regions to the domain.
func WithHoles(holes ...[]r2.Point) Option {
	return func(o *Options) error {
		for i, h := range holes {
			if len(h) < 3 {
				return fmt.Errorf("WithHoles: hole %d: at least 3 vertices required, got %d", i, len(h))
			}
		}
		o.Holes = append(o.Holes, holes...)
		return nil
	}
}

// WithMethod selects the edge-correction method.
func WithMethod(m Method) Option {
	return func(o *Options) error {
		if m != Accurate && m != Fast {
			return fmt.Errorf("WithMethod: unknown method %v", m)
		}
		o.Method = m
		return nil
	}
}

// WithCircleSegments sets the number of segments of the polygons that
// approximate the disks bounding each ring.
func WithCircleSegments(n int) Option {
	return func(o *Options) error {
		if n < 4 {
			return fmt.Errorf("WithCircleSegments: at least 4 segments required, got %d", n)
		}
		o.CircleSegments = n
		return nil
	}
}

// WithWorkers limits the number of goroutines used for per-point work.
func WithWorkers(n int) Option {
	return func(o *Options) error {
		if n < 1 {
			return fmt.Errorf("WithWorkers: n must be positive, got %d", n)
		}
		o.Workers = n
		return nil
	}
}

// WithLogger sets the logger that receives per-stage timings at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) error {
		if l == nil {
			return errors.New("WithLogger: logger must not be nil")
		}
		o.Logger = l
		return nil
	}
}

// Compute returns g(r) of points for the bins delimited by binEdges.
//
// Points outside the domain are discarded. When no point remains, or the
// fast method leaves no ring center, the result is returned with NaN values
// and Defined reports false.
func Compute(points []r2.Point, binEdges []float64, setters ...Option) (*Result, error) {
	opts := Options{
		Method:         Accurate,
		CircleSegments: defaultCircleSegments,
		Workers:        runtime.GOMAXPROCS(0),
		Logger:         zap.NewNop(),
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}
	if err := validateBinEdges(binEdges); err != nil {
		return nil, err
	}
	if err := validatePoints(points); err != nil {
		return nil, err
	}

	log := opts.Logger.With(zap.Stringer("method", opts.Method))
	start := time.Now()
	stage := start
	lap := func(msg string, fields ...zap.Field) {
		now := time.Now()
		log.Debug(msg, append(fields, zap.Duration("elapsed", now.Sub(stage)))...)
		stage = now
	}

	domain, retained, err := buildDomain(points, opts)
	if err != nil {
		return nil, err
	}
	density := float64(len(retained)) / domain.Area()
	lap("built domain", zap.Int("points", len(retained)), zap.Float64("area", domain.Area()))

	rings := NewRingTemplates(binEdges, opts.CircleSegments)
	lap("built ring templates", zap.Int("bins", len(rings)))

	distances := boundaryDistances(domain, retained, opts.Workers)
	lap("computed boundary distances")

	var centers []int
	var factors []float64
	switch opts.Method {
	case Fast:
		centers = farPoints(distances, binEdges[len(binEdges)-1])
		factors = ones(len(centers) * len(rings))
	default:
		centers = allPoints(len(retained))
		factors = normalizationFactors(domain, retained, distances, binEdges, rings, opts.Workers)
	}
	lap("computed normalization factors", zap.Int("centers", len(centers)))

	h := accumulate(retained, centers, binEdges, rings, factors, opts.Workers)
	lap("accumulated histogram")

	res := assemble(retained, centers, distances, factors, binEdges, rings, h, density)
	res.Domain = domain
	res.Method = opts.Method
	log.Debug("computed g(r)",
		zap.Int("points", res.NumPoints()),
		zap.Duration("total", time.Since(start)))
	return res, nil
}

func validateBinEdges(edges []float64) error {
	if len(edges) < 2 {
		return fmt.Errorf("%w: %d edges, minimum 2 required", ErrInvalidBins, len(edges))
	}
	for i, e := range edges {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return fmt.Errorf("%w: edge %d is not finite", ErrInvalidBins, i)
		}
		if i == 0 && e < 0 {
			return fmt.Errorf("%w: first edge %v is negative", ErrInvalidBins, e)
		}
		if i > 0 && e <= edges[i-1] {
			return fmt.Errorf("%w: edge %d (%v) is not greater than edge %d (%v)",
				ErrInvalidBins, i, e, i-1, edges[i-1])
		}
	}
	return nil
}

func validatePoints(points []r2.Point) error {
	for i, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return fmt.Errorf("%w: point %d is not finite", ErrInvalidPoints, i)
		}
	}
	return nil
}
