// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/2dChan/pcf2d"
	"github.com/2dChan/pcf2d/render"
	"go.uber.org/zap"
)

const (
	plotWidth  = 800
	plotHeight = 800

	curveWidth  = 800
	curveHeight = 500
)

func run(cfg config, log *zap.Logger) error {
	in, err := readInputFile(cfg.input)
	if err != nil {
		return err
	}
	log.Info("read input",
		zap.String("file", cfg.input),
		zap.Int("points", len(in.points)),
		zap.Bool("boundary", in.domain != nil))

	opts := []pcf2d.Option{
		pcf2d.WithCircleSegments(cfg.segments),
		pcf2d.WithLogger(log),
	}
	if shell, holes := in.boundary(); shell != nil {
		opts = append(opts, pcf2d.WithBoundary(shell), pcf2d.WithHoles(holes...))
	}
	if cfg.fast {
		opts = append(opts, pcf2d.WithMethod(pcf2d.Fast))
	}
	if cfg.workers > 0 {
		opts = append(opts, pcf2d.WithWorkers(cfg.workers))
	}

	res, err := pcf2d.Compute(in.points, cfg.edges, opts...)
	if err != nil {
		return err
	}
	if !res.Defined() {
		log.Warn("no ring centers, g(r) is undefined",
			zap.Int("domain_points", res.NumDomainPoints),
			zap.Stringer("method", res.Method))
	}

	if err := withOutput(cfg.output, func(w io.Writer) error {
		return writeResult(w, cfg.format, res, cfg.edges)
	}); err != nil {
		return err
	}

	if cfg.domainOut != "" {
		props := map[string]any{
			"area":    res.Domain.Area(),
			"points":  res.NumDomainPoints,
			"density": res.Density,
		}
		if err := withFile(cfg.domainOut, func(w io.Writer) error {
			return writeDomain(w, res.Domain, props)
		}); err != nil {
			return err
		}
		log.Info("wrote domain", zap.String("file", cfg.domainOut))
	}

	if cfg.plot != "" {
		pointsFile := cfg.plot + "_points.svg"
		curveFile := cfg.plot + "_g.svg"
		if err := withFile(pointsFile, func(w io.Writer) error {
			render.Points(w, res.Domain, res.Points, plotWidth, plotHeight)
			return nil
		}); err != nil {
			return err
		}
		if err := withFile(curveFile, func(w io.Writer) error {
			render.Curve(w, res.R, res.G, curveWidth, curveHeight)
			return nil
		}); err != nil {
			return err
		}
		log.Info("wrote plots", zap.String("points", pointsFile), zap.String("g", curveFile))
	}
	return nil
}

// withOutput calls fn with the named file, or standard output if name is
// empty.
func withOutput(name string, fn func(io.Writer) error) error {
	if name == "" {
		return fn(os.Stdout)
	}
	return withFile(name, fn)
}

func withFile(name string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", name, cerr)
		}
	}()
	return fn(f)
}
