// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	formatJSON = "json"
	formatCSV  = "csv"
)

type config struct {
	input     string
	output    string
	format    string
	edges     []float64
	fast      bool
	segments  int
	workers   int
	plot      string
	domainOut string
	timing    bool
}

func loadConfig(v *viper.Viper) (config, error) {
	cfg := config{
		input:     v.GetString("input"),
		output:    v.GetString("output"),
		format:    strings.ToLower(v.GetString("format")),
		fast:      v.GetBool("fast"),
		plot:      v.GetString("plot"),
		domainOut: v.GetString("domain-out"),
		timing:    v.GetBool("timing"),
	}
	if cfg.input == "" {
		return config{}, errors.New("--input is required")
	}
	if cfg.format != formatJSON && cfg.format != formatCSV {
		return config{}, fmt.Errorf("unknown format %q, want one of [json, csv]", cfg.format)
	}

	var err error
	if cfg.segments, err = cast.ToIntE(v.Get("segments")); err != nil {
		return config{}, fmt.Errorf("segments: %w", err)
	}
	if cfg.workers, err = cast.ToIntE(v.Get("workers")); err != nil {
		return config{}, fmt.Errorf("workers: %w", err)
	}
	if cfg.edges, err = binEdges(v); err != nil {
		return config{}, err
	}
	return cfg, nil
}

// binEdges returns the explicit bins if any, otherwise nbins equal bins up to
// max-r. Bins come as a flag list, a comma-separated environment variable or
// a list in the config file.
func binEdges(v *viper.Viper) ([]float64, error) {
	var raw []string
	switch b := v.Get("bins").(type) {
	case nil:
	case string:
		if b != "" {
			raw = strings.Split(b, ",")
		}
	default:
		s, err := cast.ToStringSliceE(b)
		if err != nil {
			return nil, fmt.Errorf("bins: %w", err)
		}
		raw = s
	}

	if len(raw) > 0 {
		edges := make([]float64, len(raw))
		for i, s := range raw {
			e, err := cast.ToFloat64E(strings.TrimSpace(s))
			if err != nil {
				return nil, fmt.Errorf("bins: edge %d: %w", i, err)
			}
			edges[i] = e
		}
		return edges, nil
	}

	maxR, err := cast.ToFloat64E(v.Get("max-r"))
	if err != nil {
		return nil, fmt.Errorf("max-r: %w", err)
	}
	n, err := cast.ToIntE(v.Get("nbins"))
	if err != nil {
		return nil, fmt.Errorf("nbins: %w", err)
	}
	if maxR <= 0 {
		return nil, errors.New("either --bins or a positive --max-r is required")
	}
	if n < 1 {
		return nil, fmt.Errorf("nbins must be positive, got %d", n)
	}
	edges := make([]float64, n+1)
	for i := range edges {
		edges[i] = maxR * float64(i) / float64(n)
	}
	return edges, nil
}

// newEnvKeyReplacer maps flag names to environment variable suffixes, so
// --max-r is read from PCF2D_MAX_R.
func newEnvKeyReplacer() *strings.Replacer {
	return strings.NewReplacer("-", "_")
}

// newLogger writes JSON entries to standard error. Stage timings are debug
// entries and only show up with timing set.
func newLogger(timing bool) *zap.Logger {
	level := zap.InfoLevel
	if timing {
		level = zap.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.Lock(os.Stderr), level)
	return zap.New(core)
}
