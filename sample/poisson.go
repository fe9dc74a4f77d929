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

import "math"

// Poisson samples the number of events occurring in a fixed interval
// when events occur independently at a constant mean rate.
//
// It uses the inverse-transform method with the recurrence
// P(X=i+1) = mean * P(X=i) / (i+1), consuming one uniform variate
// per sample.
type Poisson struct {
	src  Source
	mean float64
	// precomputed P(X=0)
	expMinusMean float64
}

// NewPoisson returns an instance of the Poisson sampler. The mean must
// be positive and small enough that exp(-mean) does not underflow,
// otherwise the cumulative sum would start at 0 and never pass U.
func NewPoisson(src Source, mean float64) (*Poisson, error) {
	if !(mean > 0) || !isFinite(mean) {
		return nil, invalidParam("poisson", "mean must be positive and finite, got %v", mean)
	}
	p0 := math.Exp(-mean)
	if p0 == 0 {
		return nil, invalidParam("poisson", "mean %v is too large, exp(-mean) underflows", mean)
	}

	return &Poisson{
		src:          src,
		mean:         mean,
		expMinusMean: p0,
	}, nil
}

// Sample returns a value >= 0.
func (ps *Poisson) Sample() int64 {
	u := ps.src.Float64()
	p := ps.expMinusMean
	f := p
	var i int64
	// p reaches 0 only once the tail is exhausted.
	for f <= u && p > 0 {
		p = ps.mean * p / float64(i+1)
		f += p
		i++
	}

	return i
}
