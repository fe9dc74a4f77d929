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
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/mukherjeesagar/simulation-of-probabilities/rng"
	"github.com/mukherjeesagar/simulation-of-probabilities/sample"
)

// constSource returns the same uniform on every draw.
type constSource float64

func (c constSource) Float64() float64 {
	return float64(c)
}

func TestUniformInt(t *testing.T) {
	var tests = []struct {
		name   string
		a, b   int64
		expect paramBounds
	}{
		{
			name: "[0, 10)",
			a:    0,
			b:    10,
			expect: paramBounds{
				meanLow:  4.45,
				meanHigh: 4.55,
				varLow:   8.05,
				varHigh:  8.45,
			},
		},
		{
			name: "[-5, 5)",
			a:    -5,
			b:    5,
			expect: paramBounds{
				meanLow:  -0.55,
				meanHigh: -0.45,
				varLow:   8.05,
				varHigh:  8.45,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, err := sample.NewUniformInt(newGenerator(t, 12345), test.a, test.b)
			require.NoError(t, err)

			vec := draw[int64](s, 100000)
			for _, x := range vec {
				if x < float64(test.a) || x >= float64(test.b) {
					t.Fatal("out of limits: ", x)
				}
			}
			testMoments(t, vec, test.expect)
		})
	}

	s, err := sample.NewUniformInt(newGenerator(t, 1), 7, 8)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		assert.Equal(t, int64(7), s.Sample(), "single-valued range")
	}

	for _, bounds := range [][2]int64{{1, 1}, {5, 2}, {math.MinInt64, math.MaxInt64}} {
		_, err := sample.NewUniformInt(newGenerator(t, 1), bounds[0], bounds[1])
		assert.True(t, errors.Is(err, sample.ErrInvalidParameter), "bounds %v should be rejected", bounds)
	}
}

func TestUniformRange(t *testing.T) {
	g := newGenerator(t, 4242)

	vec := draw[float64](sample.NewUniform(g), 100000)
	for _, x := range vec {
		if x <= 0 || x >= 1 {
			t.Fatal("out of limits: ", x)
		}
	}
	testMoments(t, vec, around(distuv.Uniform{Min: 0, Max: 1}, 0.01, 0.005))

	s, err := sample.NewUniformRange(g, -3, 5)
	require.NoError(t, err)
	vec = draw[float64](s, 100000)
	for _, x := range vec {
		if x < -3 || x >= 5 {
			t.Fatal("out of limits: ", x)
		}
	}
	testMoments(t, vec, around(distuv.Uniform{Min: -3, Max: 5}, 0.05, 0.15))

	// the same stream through a shifted range is an affine map of the unit range
	g1 := newGenerator(t, 99)
	g2 := newGenerator(t, 99)
	unit := sample.NewUniform(g1)
	shifted, err := sample.NewUniformRange(g2, 10, 12)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		assert.InDelta(t, 10+2*unit.Sample(), shifted.Sample(), 1e-12)
	}

	for _, bounds := range [][2]float64{{1, 1}, {2, 1}, {math.NaN(), 1}, {0, math.Inf(1)}, {-math.MaxFloat64, math.MaxFloat64}} {
		_, err := sample.NewUniformRange(g, bounds[0], bounds[1])
		assert.True(t, errors.Is(err, sample.ErrInvalidParameter), "bounds %v should be rejected", bounds)
	}
}

func TestUniformRange_UpperBoundExcluded(t *testing.T) {
	top := constSource(float64(rng.Modulus-1) / float64(rng.Modulus))

	a, b := 1e16, 1e16+2
	s, err := sample.NewUniformRange(top, a, b)
	require.NoError(t, err)
	x := s.Sample()
	assert.True(t, x < b, "sample %v should be below the upper bound %v", x, b)
	assert.True(t, x >= a, "sample %v should not be below the lower bound %v", x, a)

	s, err = sample.NewUniformRange(top, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, float64(top), s.Sample(), "exact results are returned unchanged")
}
