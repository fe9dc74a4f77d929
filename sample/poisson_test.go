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

package sample_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/mukherjeesagar/simulation-of-probabilities/sample"
)

func TestPoisson(t *testing.T) {
	var tests = []struct {
		mean   float64
		n      int
		expect paramBounds
	}{
		{
			mean:   4,
			n:      100000,
			expect: around(distuv.Poisson{Lambda: 4}, 0.05, 0.15),
		},
		{
			mean:   0.3,
			n:      100000,
			expect: around(distuv.Poisson{Lambda: 0.3}, 0.01, 0.02),
		},
		{
			mean:   500,
			n:      2000,
			expect: around(distuv.Poisson{Lambda: 500}, 3, 100),
		},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("mean=%v", test.mean), func(t *testing.T) {
			g := newGenerator(t, 6174)
			twin := newGenerator(t, 6174)
			s, err := sample.NewPoisson(g, test.mean)
			require.NoError(t, err)

			vec := draw[int64](s, test.n)
			for _, x := range vec {
				if x < 0 {
					t.Fatal("out of limits: ", x)
				}
			}
			twin.Skip(uint64(test.n))
			assert.Equal(t, twin.State(), g.State(), "Poisson should consume one draw per sample")

			testMoments(t, vec, test.expect)
		})
	}

	g := newGenerator(t, 1)
	for _, mean := range []float64{0, -1, math.NaN(), math.Inf(1), 1000} {
		_, err := sample.NewPoisson(g, mean)
		assert.True(t, errors.Is(err, sample.ErrInvalidParameter), "mean=%v should be rejected", mean)
	}
}

func TestExponential(t *testing.T) {
	for _, rate := range []float64{0.5, 1, 2} {
		t.Run(fmt.Sprintf("rate=%v", rate), func(t *testing.T) {
			s, err := sample.NewExponential(newGenerator(t, 1729), rate)
			require.NoError(t, err)

			vec := draw[float64](s, 100000)
			for _, x := range vec {
				if x <= 0 {
					t.Fatal("out of limits: ", x)
				}
			}
			d := distuv.Exponential{Rate: rate}
			testMoments(t, vec, around(d, 0.02*d.Mean(), 0.05*d.Variance()))
		})
	}

	g := newGenerator(t, 1)
	for _, rate := range []float64{0, -2, math.NaN(), math.Inf(1)} {
		_, err := sample.NewExponential(g, rate)
		assert.True(t, errors.Is(err, sample.ErrInvalidParameter), "rate=%v should be rejected", rate)
	}
}

func TestGamma(t *testing.T) {
	s, err := sample.NewGamma(newGenerator(t, 3141), 4, 1)
	require.NoError(t, err)
	vec := draw[float64](s, 100000)
	for _, x := range vec {
		if x <= 0 {
			t.Fatal("out of limits: ", x)
		}
	}
	testMoments(t, vec, around(distuv.Gamma{Alpha: 4, Beta: 1}, 0.05, 0.25))

	// with a single uniform the gamma sampler is the exponential sampler
	g1 := newGenerator(t, 555)
	g2 := newGenerator(t, 555)
	one, err := sample.NewGamma(g1, 1, 3)
	require.NoError(t, err)
	exp, err := sample.NewExponential(g2, 3)
	require.NoError(t, err)
	for i := 0; i < 1000; i++ {
		require.Equal(t, exp.Sample(), one.Sample())
	}

	// products of thousands of uniforms underflow float64
	long, err := sample.NewGamma(newGenerator(t, 2), 5000, 1)
	require.NoError(t, err)
	vec = draw[float64](long, 200)
	for _, x := range vec {
		assert.False(t, math.IsInf(x, 0) || math.IsNaN(x), "gamma variate should be finite, got %v", x)
	}
	me := stat.Mean(vec, nil)
	assert.InDelta(t, 5000, me, 40, "mean of Gamma(5000, 1)")

	g := newGenerator(t, 1)
	_, err = sample.NewGamma(g, 0, 1)
	assert.True(t, errors.Is(err, sample.ErrInvalidParameter), "n=0 should be rejected")
	_, err = sample.NewGamma(g, 3, 0)
	assert.True(t, errors.Is(err, sample.ErrInvalidParameter), "rate=0 should be rejected")
}
