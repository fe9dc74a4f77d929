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
	"strings"

	"github.com/spf13/cobra"
)

const (
	cfgSummary = "summary"

	cfgA      = "a"
	cfgB      = "b"
	cfgP      = "p"
	cfgN      = "n"
	cfgR      = "r"
	cfgMean   = "mean"
	cfgRate   = "rate"
	cfgStdDev = "stddev"
)

func newSampleCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample <distribution>",
		Short: "Draw variates from a distribution",
		Long: `Draw variates from a distribution and print one per line, or a summary
table with --summary. Bivariate variates are printed as two tab-separated
columns. Parameters not given on the command line or in the config file
take the values of the demonstration run.

Distributions: ` + strings.Join(distributionNames(), ", "),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSample(args[0])
		},
	}

	fs := cmd.Flags()
	fs.Int(cfgCount, 0, "number of variates (0 uses the demonstration count)")
	fs.Bool(cfgSummary, false, "print summary statistics instead of the variates")
	fs.Float64(cfgA, 0, "lower bound (uniform, uniform-int)")
	fs.Float64(cfgB, 1, "upper bound, exclusive (uniform, uniform-int)")
	fs.Float64(cfgP, 0.5, "success probability (bernoulli, binomial, geometric, negative-binomial)")
	fs.Int64(cfgN, 1, "number of trials (binomial) or shape (gamma)")
	fs.Int64(cfgR, 1, "number of failures (negative-binomial)")
	fs.Float64(cfgMean, 0, "mean (poisson, normal, lognormal, bivariate-normal)")
	fs.Float64(cfgRate, 1, "rate (exponential, gamma)")
	fs.Float64(cfgStdDev, 1, "standard deviation (normal, lognormal, bivariate-normal)")

	return cmd
}

// params overlays the explicitly configured parameters on the
// defaults of d.
func (a *app) params(d *distribution) params {
	p := d.defaults
	if a.v.IsSet(cfgA) {
		p.A = a.v.GetFloat64(cfgA)
	}
	if a.v.IsSet(cfgB) {
		p.B = a.v.GetFloat64(cfgB)
	}
	if a.v.IsSet(cfgP) {
		p.P = a.v.GetFloat64(cfgP)
	}
	if a.v.IsSet(cfgN) {
		p.N = a.v.GetInt64(cfgN)
	}
	if a.v.IsSet(cfgR) {
		p.R = a.v.GetInt64(cfgR)
	}
	if a.v.IsSet(cfgMean) {
		p.Mean = a.v.GetFloat64(cfgMean)
	}
	if a.v.IsSet(cfgRate) {
		p.Rate = a.v.GetFloat64(cfgRate)
	}
	if a.v.IsSet(cfgStdDev) {
		p.StdDev = a.v.GetFloat64(cfgStdDev)
	}

	return p
}

func (a *app) runSample(name string) error {
	d, err := lookupDistribution(name)
	if err != nil {
		return err
	}
	p := a.params(d)

	count := a.v.GetInt(cfgCount)
	if count == 0 {
		count = d.count
	}

	g, err := a.generator()
	if err != nil {
		return err
	}

	logger.Info("drawing variates",
		"distribution", d.name,
		"params", d.describe(p),
		"count", count,
	)
	xs, ys, err := drawN(d, p, g, count)
	if err != nil {
		return err
	}

	if a.v.GetBool(cfgSummary) {
		renderSummaries(a.out, summarizeDraw(d, p, xs, ys))
		return nil
	}

	return writeVariates(a.out, d, xs, ys)
}
