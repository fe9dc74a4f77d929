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

package sample

import (
	"math"

	"github.com/pkg/errors"

	"github.com/mukherjeesagar/simulation-of-probabilities/internal"
)

// Source provides uniform variates in (0, 1).
// *rng.Generator implements Source.
type Source interface {
	Float64() float64
}

// Sampler samples a single random value of type T.
type Sampler[T any] interface {
	Sample() T
}

// ErrInvalidParameter is wrapped by every constructor error.
var ErrInvalidParameter = internal.ErrInvalidParameter

func invalidParam(sampler, format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidParameter, sampler+": "+format, args...)
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// checkProbability reports whether p lies in [0, 1].
// NaN fails every comparison and is rejected.
func checkProbability(sampler string, p float64) error {
	if !(p >= 0 && p <= 1) {
		return invalidParam(sampler, "probability p must lie in [0, 1], got %v", p)
	}

	return nil
}

func checkScale(sampler string, m, s float64) error {
	if !isFinite(m) {
		return invalidParam(sampler, "mean must be finite, got %v", m)
	}
	if !(s > 0) || !isFinite(s) {
		return invalidParam(sampler, "standard deviation must be positive and finite, got %v", s)
	}

	return nil
}
