/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mukherjeesagar/simulation-of-probabilities/rng"
)

func newSeedCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Print a clock digit and fresh entropy seeds",
		Long: `Print one digit read from the monotonic clock, followed by the initial
states of --count generators seeded from the clock.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			count := a.v.GetInt(cfgCount)
			if count < 0 {
				return fmt.Errorf("count must be non-negative, got %d", count)
			}

			if _, err := fmt.Fprintf(a.out, "digit %d\n", rng.Digit(rng.MonotonicClock)); err != nil {
				return err
			}
			for i := 0; i < count; i++ {
				if _, err := fmt.Fprintf(a.out, "seed %d\n", rng.New().State()); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().Int(cfgCount, 5, "number of seeds")

	return cmd
}

func newUniformCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uniform",
		Short: "Print raw uniform variates in (0, 1)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			count := a.v.GetInt(cfgCount)
			if count < 0 {
				return fmt.Errorf("count must be non-negative, got %d", count)
			}

			g, err := a.generator()
			if err != nil {
				return err
			}
			for i := 0; i < count; i++ {
				if _, err := fmt.Fprintln(a.out, g.Float64()); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().Int(cfgCount, 5, "number of variates")

	return cmd
}

func newDistanceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "distance <from> <to>",
		Short: "Print the number of draws between two generator states",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var states [2]uint64
			for i, arg := range args {
				s, err := strconv.ParseUint(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("state %q is not an unsigned integer", arg)
				}
				states[i] = s
			}

			n, err := rng.Distance(states[0], states[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, n)
			return err
		},
	}
}

func newDemoCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Summarize every distribution with its demonstration parameters",
		Long: `Draw from every distribution with the parameters and sample counts of the
demonstration run, all from one generator, and print a summary table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDemo()
		},
	}
	cmd.Flags().Int(cfgCount, 0, "number of variates per distribution (0 uses the demonstration counts)")

	return cmd
}

func (a *app) runDemo() error {
	g, err := a.generator()
	if err != nil {
		return err
	}

	var rows []summary
	for i := range distributions {
		d := &distributions[i]
		count := a.v.GetInt(cfgCount)
		if count == 0 {
			count = d.count
		}

		logger.Debug("drawing variates", "distribution", d.name, "count", count)
		xs, ys, err := drawN(d, d.defaults, g, count)
		if err != nil {
			return err
		}
		rows = append(rows, summarizeDraw(d, d.defaults, xs, ys)...)
	}
	renderSummaries(a.out, rows)

	return nil
}
