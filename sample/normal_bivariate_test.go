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
	"gonum.org/v1/gonum/stat"

	"github.com/mukherjeesagar/simulation-of-probabilities/sample"
)

func TestBivariateNormal_SharedRadius(t *testing.T) {
	g := newGenerator(t, 1984)
	twin := newGenerator(t, 1984)

	for _, params := range [][2]float64{{0, 1}, {3, 0.25}} {
		m, s := params[0], params[1]
		b, err := sample.NewBivariateNormal(g, m, s)
		require.NoError(t, err)

		for i := 0; i < 1000; i++ {
			x, y := b.Sample()

			u1, u2 := twin.Float64(), twin.Float64()
			radius := math.Sqrt(-2 * math.Log(u1))
			theta := 2 * math.Pi * u2

			assert.InDelta(t, radius*math.Cos(theta), (x-m)/s, 1e-9, "cosine branch")
			assert.InDelta(t, radius*math.Sin(theta), (y-m)/s, 1e-9, "sine branch")

			// both components carry the same radius
			zx, zy := (x-m)/s, (y-m)/s
			assert.InDelta(t, -2*math.Log(u1), zx*zx+zy*zy, 1e-9)
		}
	}
}

func TestBivariateNormal_Marginals(t *testing.T) {
	b, err := sample.NewBivariateNormal(newGenerator(t, 2001), 0, 1)
	require.NoError(t, err)

	xs := make([]float64, 100000)
	ys := make([]float64, 100000)
	for i := range xs {
		xs[i], ys[i] = b.Sample()
	}

	for _, vec := range [][]float64{xs, ys} {
		me, sd := stat.MeanStdDev(vec, nil)
		assert.InDelta(t, 0, me, 0.02)
		assert.InDelta(t, 1, sd, 0.02)
	}
	assert.InDelta(t, 0, stat.Correlation(xs, ys, nil), 0.02, "the components are uncorrelated")
}

func TestBivariateNormal_Params(t *testing.T) {
	g := newGenerator(t, 1)
	for _, params := range [][2]float64{{0, 0}, {1, -1}, {math.Inf(-1), 1}} {
		_, err := sample.NewBivariateNormal(g, params[0], params[1])
		assert.True(t, errors.Is(err, sample.ErrInvalidParameter), "params %v should be rejected", params)
	}
}
