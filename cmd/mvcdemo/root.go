/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"dirpx.dev/puremvc/config"
	"dirpx.dev/puremvc/facade"
	"dirpx.dev/puremvc/metrics"
	"dirpx.dev/puremvc/observer"
)

var version = "dev"

type runOptions struct {
	configPath  string
	count       int
	showMetrics bool
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mvcdemo",
		Short:         "Run the puremvc counter demo",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mvcdemo %s\n", version)
		},
	}
}

func newRunCmd() *cobra.Command {
	var o runOptions
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Boot a core, send increments and print the final count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), o)
		},
	}
	cmd.Flags().StringVar(&o.configPath, "config", "", "path to config file (.yaml, .toml, .json)")
	cmd.Flags().IntVar(&o.count, "count", 3, "number of increments to send")
	cmd.Flags().BoolVar(&o.showMetrics, "metrics", false, "print collected metrics after the run")
	return cmd
}

func run(out, logOut io.Writer, o runOptions) error {
	if o.count < 0 {
		return fmt.Errorf("count must be >= 0, got %d", o.count)
	}

	var file config.File
	var opts []config.Option
	if o.configPath != "" {
		var err error
		if file, err = config.Load(o.configPath); err != nil {
			return err
		}
		if opts, err = file.Options(logOut); err != nil {
			return err
		}
	}
	cfg := config.NewConfig(opts...)

	var reg *prometheus.Registry
	if o.showMetrics || file.Metrics.Enabled {
		ns := file.Metrics.Namespace
		if ns == "" {
			ns = config.DefaultMetricsNamespace
		}
		col := metrics.New(ns, cfg.Name)
		reg = prometheus.NewRegistry()
		if err := reg.Register(col); err != nil {
			return fmt.Errorf("registering metrics: %w", err)
		}
		cfg.Recorder = col
	}

	observer.SetLogger(cfg.Logger)
	f := facade.New(cfg)

	total := runCounter(f, out, o.count)
	fmt.Fprintf(out, "final count: %d\n", total)

	if reg != nil {
		return writeMetrics(out, reg)
	}
	return nil
}

// writeMetrics prints one "name{labels} value" line per gathered sample.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			pairs := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				pairs = append(pairs, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			var v float64
			switch {
			case m.GetCounter() != nil:
				v = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				v = m.GetGauge().GetValue()
			}
			fmt.Fprintf(w, "%s{%s} %g\n", mf.GetName(), strings.Join(pairs, ","), v)
		}
	}
	return nil
}
