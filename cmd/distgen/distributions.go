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
	"math"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/mukherjeesagar/simulation-of-probabilities/data"
	"github.com/mukherjeesagar/simulation-of-probabilities/sample"
)

// params holds every distribution parameter distgen understands.
// Each distribution reads the ones it needs.
type params struct {
	A      float64
	B      float64
	P      float64
	N      int64
	R      int64
	Mean   float64
	Rate   float64
	StdDev float64
}

// columns draws count variates into one column, or two for bivariate
// distributions.
type columns func(count int) (xs, ys data.Vector[float64], err error)

type distribution struct {
	name      string
	discrete  bool
	bivariate bool
	// defaults and count reproduce the classic demonstration run.
	defaults params
	count    int
	// describe lists the parameters in use.
	describe func(p params) string
	build    func(src sample.Source, p params) (columns, error)
	// expected returns the theoretical mean of each component.
	expected func(p params) float64
}

func discrete(s sample.Sampler[int64]) columns {
	return func(count int) (data.Vector[float64], data.Vector[float64], error) {
		v, err := data.NewRandomVector(count, s)
		if err != nil {
			return nil, nil, err
		}
		return data.NewVector(v.Float64()), nil, nil
	}
}

func continuous(s sample.Sampler[float64]) columns {
	return func(count int) (data.Vector[float64], data.Vector[float64], error) {
		v, err := data.NewRandomVector(count, s)
		return v, nil, err
	}
}

func pairs(s *sample.BivariateNormal) columns {
	return func(count int) (data.Vector[float64], data.Vector[float64], error) {
		m, err := data.NewBivariateMatrix(count, s)
		if err != nil {
			return nil, nil, err
		}
		xs, err := m.GetCol(0)
		if err != nil {
			return nil, nil, err
		}
		ys, err := m.GetCol(1)
		if err != nil {
			return nil, nil, err
		}
		return xs, ys, nil
	}
}

func integral(name string, v float64) (int64, error) {
	if v != math.Trunc(v) || math.Abs(v) > 1<<53 {
		return 0, errors.Wrapf(sample.ErrInvalidParameter, "%s: bound %v is not an integer", name, v)
	}

	return int64(v), nil
}

var distributions = []distribution{
	{
		name:     "uniform-int",
		discrete: true,
		defaults: params{A: 0, B: 10},
		count:    100000,
		describe: func(p params) string { return fmt.Sprintf("a=%v b=%v", p.A, p.B) },
		build: func(src sample.Source, p params) (columns, error) {
			a, err := integral("uniform-int", p.A)
			if err != nil {
				return nil, err
			}
			b, err := integral("uniform-int", p.B)
			if err != nil {
				return nil, err
			}
			s, err := sample.NewUniformInt(src, a, b)
			if err != nil {
				return nil, err
			}
			return discrete(s), nil
		},
		expected: func(p params) float64 { return (p.A + p.B - 1) / 2 },
	},
	{
		name:     "bernoulli",
		discrete: true,
		defaults: params{P: 0.5},
		count:    100000,
		describe: func(p params) string { return fmt.Sprintf("p=%v", p.P) },
		build: func(src sample.Source, p params) (columns, error) {
			s, err := sample.NewBernoulli(src, p.P)
			if err != nil {
				return nil, err
			}
			return discrete(s), nil
		},
		expected: func(p params) float64 { return distuv.Bernoulli{P: p.P}.Mean() },
	},
	{
		name:     "binomial",
		discrete: true,
		defaults: params{N: 40, P: 0.5},
		count:    10000,
		describe: func(p params) string { return fmt.Sprintf("n=%d p=%v", p.N, p.P) },
		build: func(src sample.Source, p params) (columns, error) {
			s, err := sample.NewBinomial(src, p.N, p.P)
			if err != nil {
				return nil, err
			}
			return discrete(s), nil
		},
		expected: func(p params) float64 { return distuv.Binomial{N: float64(p.N), P: p.P}.Mean() },
	},
	{
		name:     "geometric",
		discrete: true,
		defaults: params{P: 0.5},
		count:    100000,
		describe: func(p params) string { return fmt.Sprintf("p=%v", p.P) },
		build: func(src sample.Source, p params) (columns, error) {
			s, err := sample.NewGeometric(src, p.P)
			if err != nil {
				return nil, err
			}
			return discrete(s), nil
		},
		expected: func(p params) float64 { return 1 / p.P },
	},
	{
		name:     "negative-binomial",
		discrete: true,
		defaults: params{R: 4, P: 0.5},
		count:    100000,
		describe: func(p params) string { return fmt.Sprintf("r=%d p=%v", p.R, p.P) },
		build: func(src sample.Source, p params) (columns, error) {
			s, err := sample.NewNegativeBinomial(src, p.R, p.P)
			if err != nil {
				return nil, err
			}
			return discrete(s), nil
		},
		expected: func(p params) float64 { return float64(p.R) * p.P / (1 - p.P) },
	},
	{
		name:     "poisson",
		discrete: true,
		defaults: params{Mean: 4},
		count:    100000,
		describe: func(p params) string { return fmt.Sprintf("mean=%v", p.Mean) },
		build: func(src sample.Source, p params) (columns, error) {
			s, err := sample.NewPoisson(src, p.Mean)
			if err != nil {
				return nil, err
			}
			return discrete(s), nil
		},
		expected: func(p params) float64 { return distuv.Poisson{Lambda: p.Mean}.Mean() },
	},
	{
		name:     "uniform",
		defaults: params{A: 0, B: 1},
		count:    1000000,
		describe: func(p params) string { return fmt.Sprintf("a=%v b=%v", p.A, p.B) },
		build: func(src sample.Source, p params) (columns, error) {
			s, err := sample.NewUniformRange(src, p.A, p.B)
			if err != nil {
				return nil, err
			}
			return continuous(s), nil
		},
		expected: func(p params) float64 { return distuv.Uniform{Min: p.A, Max: p.B}.Mean() },
	},
	{
		name:     "exponential",
		defaults: params{Rate: 1},
		count:    100000,
		describe: func(p params) string { return fmt.Sprintf("rate=%v", p.Rate) },
		build: func(src sample.Source, p params) (columns, error) {
			s, err := sample.NewExponential(src, p.Rate)
			if err != nil {
				return nil, err
			}
			return continuous(s), nil
		},
		expected: func(p params) float64 { return distuv.Exponential{Rate: p.Rate}.Mean() },
	},
	{
		name:     "gamma",
		defaults: params{N: 4, Rate: 1},
		count:    100000,
		describe: func(p params) string { return fmt.Sprintf("n=%d rate=%v", p.N, p.Rate) },
		build: func(src sample.Source, p params) (columns, error) {
			s, err := sample.NewGamma(src, p.N, p.Rate)
			if err != nil {
				return nil, err
			}
			return continuous(s), nil
		},
		expected: func(p params) float64 { return distuv.Gamma{Alpha: float64(p.N), Beta: p.Rate}.Mean() },
	},
	{
		name:     "normal",
		defaults: params{Mean: 0, StdDev: 1},
		count:    100000,
		describe: func(p params) string { return fmt.Sprintf("mean=%v stddev=%v", p.Mean, p.StdDev) },
		build: func(src sample.Source, p params) (columns, error) {
			s, err := sample.NewNormal(src, p.Mean, p.StdDev)
			if err != nil {
				return nil, err
			}
			return continuous(s), nil
		},
		expected: func(p params) float64 { return distuv.Normal{Mu: p.Mean, Sigma: p.StdDev}.Mean() },
	},
	{
		name:     "lognormal",
		defaults: params{Mean: 0, StdDev: 0.4},
		count:    100000,
		describe: func(p params) string { return fmt.Sprintf("mean=%v stddev=%v", p.Mean, p.StdDev) },
		build: func(src sample.Source, p params) (columns, error) {
			s, err := sample.NewLogNormal(src, p.Mean, p.StdDev)
			if err != nil {
				return nil, err
			}
			return continuous(s), nil
		},
		expected: func(p params) float64 { return distuv.LogNormal{Mu: p.Mean, Sigma: p.StdDev}.Mean() },
	},
	{
		name:      "bivariate-normal",
		bivariate: true,
		defaults:  params{Mean: 0, StdDev: 1},
		count:     10000,
		describe:  func(p params) string { return fmt.Sprintf("mean=%v stddev=%v", p.Mean, p.StdDev) },
		build: func(src sample.Source, p params) (columns, error) {
			s, err := sample.NewBivariateNormal(src, p.Mean, p.StdDev)
			if err != nil {
				return nil, err
			}
			return pairs(s), nil
		},
		expected: func(p params) float64 { return p.Mean },
	},
}

func lookupDistribution(name string) (*distribution, error) {
	for i := range distributions {
		if distributions[i].name == name {
			return &distributions[i], nil
		}
	}

	return nil, errors.Errorf("unknown distribution %q, expected one of: %s", name, strings.Join(distributionNames(), ", "))
}

func distributionNames() []string {
	names := make([]string, len(distributions))
	for i, d := range distributions {
		names[i] = d.name
	}
	sort.Strings(names)

	return names
}
