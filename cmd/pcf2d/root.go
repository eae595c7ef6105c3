// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "PCF2D"

// RootCmd is the pcf2d command.
var RootCmd = &cobra.Command{
	Use:   "pcf2d",
	Short: "Edge-corrected pair correlation function of planar points",
	Long: `
pcf2d reads a GeoJSON FeatureCollection holding Point and MultiPoint features
and at most one Polygon feature, and writes g(r) as JSON or CSV.

The Polygon is the observation domain; its interior rings are holes. Without
it the domain is the convex hull of the points.
`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(conf)
		if err != nil {
			return err
		}
		log := newLogger(cfg.timing)
		defer func() { _ = log.Sync() }()
		return run(cfg, log)
	},
}

var conf = viper.New()

// Execute runs RootCmd and exits with a non-zero status on error.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flag := RootCmd.Flags()
	flag.String("config", "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden by environment variables and flags.")
	flag.StringP("input", "i", "", "GeoJSON FeatureCollection with the points and optional domain")
	flag.StringP("output", "o", "", "Output file. Standard output if empty")
	flag.String("format", formatJSON, "Output format, one of [json, csv]")
	flag.StringSlice("bins", nil, "Comma-separated bin edges, e.g. 0,0.05,0.1")
	flag.Float64("max-r", 0, "Largest bin edge, used with --nbins when --bins is not set")
	flag.Int("nbins", 20, "Number of equal bins in [0, max-r]")
	flag.Bool("fast", false, "Use only points farther than the largest edge from the boundary as ring centers")
	flag.Int("segments", 64, "Number of segments approximating each circle")
	flag.Int("workers", 0, "Number of goroutines for per-point work. GOMAXPROCS if 0")
	flag.String("plot", "", "Write <plot>_points.svg and <plot>_g.svg")
	flag.String("domain-out", "", "Write the effective domain as a GeoJSON Feature")
	flag.Bool("timing", false, "Log the duration of every stage")

	_ = conf.BindPFlags(flag)
	conf.SetEnvPrefix(envPrefix)
	conf.SetEnvKeyReplacer(newEnvKeyReplacer())
	conf.AutomaticEnv()

	cobra.OnInitialize(func() {
		cfg := conf.GetString("config")
		if cfg == "" {
			return
		}
		conf.SetConfigFile(cfg)
		if err := conf.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "reading config: %v\n", err)
			os.Exit(1)
		}
	})
}
