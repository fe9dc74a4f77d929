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

package dlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mukherjeesagar/simulation-of-probabilities/internal"
)

const (
	mersenne31 = 1<<31 - 1
	root       = 16807
)

func TestBabyStepGiantStep(t *testing.T) {
	calc, err := InZp(mersenne31)
	require.NoError(t, err)

	for _, xCheck := range []uint64{0, 1, 2, 1000, 123456789, mersenne31 - 2} {
		h := internal.ModExp(root, xCheck, mersenne31)
		x, err := calc.BabyStepGiantStep(h, root)
		require.NoError(t, err)
		assert.Equal(t, xCheck, x, "BabyStepGiantStep result is wrong")
	}
}

func TestBabyStepGiantStep_Bound(t *testing.T) {
	calc, err := InZp(mersenne31)
	require.NoError(t, err)

	h := internal.ModExp(root, 5000, mersenne31)
	x, err := calc.WithBound(5001).BabyStepGiantStep(h, root)
	require.NoError(t, err)
	assert.Equal(t, uint64(5000), x)

	_, err = calc.WithBound(5000).BabyStepGiantStep(h, root)
	assert.Error(t, err)

	_, err = calc.BabyStepGiantStep(0, root)
	assert.Error(t, err)
}

func TestBruteForce(t *testing.T) {
	calc, err := InZp(1019)
	require.NoError(t, err)

	// 2 generates Z_1019^*
	for xCheck := uint64(0); xCheck < 1018; xCheck += 7 {
		h := internal.ModExp(2, xCheck, 1019)
		x1, err := bruteForce(h, 2, 1019, 1018)
		require.NoError(t, err)
		x2, err := calc.BabyStepGiantStep(h, 2)
		require.NoError(t, err)

		assert.Equal(t, xCheck, x1, "bruteForce result is wrong")
		assert.Equal(t, xCheck, x2, "BabyStepGiantStep result is wrong")
	}
}

func TestInZp(t *testing.T) {
	_, err := InZp(2)
	assert.Error(t, err)
	_, err = InZp(1 << 33)
	assert.Error(t, err)
}

func TestBabyStepGiantStep_SmallBound(t *testing.T) {
	calc, err := InZp(mersenne31)
	require.NoError(t, err)
	small := calc.WithBound(bruteForceBound)

	for xCheck := uint64(0); xCheck < bruteForceBound; xCheck++ {
		x, err := small.BabyStepGiantStep(internal.ModExp(root, xCheck, mersenne31), root)
		require.NoError(t, err)
		assert.Equal(t, xCheck, x)
	}

	_, err = small.BabyStepGiantStep(internal.ModExp(root, bruteForceBound, mersenne31), root)
	assert.Error(t, err, "exponent equal to the bound is out of range")

	_, err = small.BabyStepGiantStep(0, root)
	assert.Error(t, err)
}
