// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Treemapbench applies a seeded random workload to treemap maps,
// checks the result against a B-tree, and prints timing and metrics.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/jba/treemap"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCommand(os.Stdout).Execute(); err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		os.Exit(1)
	}
}

func rootCommand(out io.Writer) *cobra.Command {
	var (
		n          int
		balance    string
		seed       uint64
		deleteFrac float64
		verbose    bool
	)
	cmd := &cobra.Command{
		Use:   "treemapbench",
		Short: "run a random workload against red-black and AVL maps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bals, err := balances(balance)
			if err != nil {
				return err
			}
			if deleteFrac < 0 || deleteFrac >= 1 {
				return fmt.Errorf("delete-fraction must be in [0, 1), got %g", deleteFrac)
			}
			level := zerolog.InfoLevel
			if !verbose {
				level = zerolog.WarnLevel
			}
			log := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
				Level(level).
				With().Timestamp().Str("bench", "treemap").Logger()

			reg := prometheus.NewRegistry()
			r := newRunner(log, reg)
			for _, b := range bals {
				if err := r.run(b, n, seed, deleteFrac); err != nil {
					return err
				}
			}
			return printMetrics(out, reg)
		},
	}
	cmd.SetOut(out)
	cmd.Flags().IntVar(&n, "n", 1_000_000, "number of operations per run")
	cmd.Flags().StringVar(&balance, "balance", "both", "balancing scheme to run (rb|avl|both)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for the workload generator")
	cmd.Flags().Float64Var(&deleteFrac, "delete-fraction", 0.25, "fraction of operations that delete a live key")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log progress")
	return cmd
}

func balances(s string) ([]treemap.Balance, error) {
	if s == "both" {
		return []treemap.Balance{treemap.RedBlack, treemap.AVL}, nil
	}
	b, err := treemap.ParseBalance(s)
	if err != nil {
		return nil, err
	}
	return []treemap.Balance{b}, nil
}

// printMetrics writes one line per sample gathered from reg.
func printMetrics(w io.Writer, reg *prometheus.Registry) error {
	mfs, err := reg.Gather()
	if err != nil {
		return err
	}
	var lines []string
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			var labels string
			for _, lp := range m.GetLabel() {
				labels += fmt.Sprintf(" %s=%s", lp.GetName(), lp.GetValue())
			}
			var v float64
			switch {
			case m.GetCounter() != nil:
				v = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				v = m.GetGauge().GetValue()
			}
			lines = append(lines, fmt.Sprintf("%s%s %g", mf.GetName(), labels, v))
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
