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

// Exponential samples the time between two events that occur
// continuously and independently at a constant average rate.
type Exponential struct {
	src  Source
	rate float64
}

// NewExponential returns an instance of the Exponential sampler.
func NewExponential(src Source, rate float64) (*Exponential, error) {
	if !(rate > 0) || !isFinite(rate) {
		return nil, invalidParam("exponential", "rate must be positive and finite, got %v", rate)
	}

	return &Exponential{src: src, rate: rate}, nil
}

// Sample returns -ln(U)/rate by the inverse-transform method.
func (e *Exponential) Sample() float64 {
	return -math.Log(e.src.Float64()) / e.rate
}

// Gamma samples the sum of n independent exponential variates with
// the same rate (the Erlang case of the gamma distribution).
type Gamma struct {
	src  Source
	n    int64
	rate float64
}

// productFloor bounds the running product of uniforms. Multiplying
// it by the smallest variate the generator yields stays well above
// the smallest normal float64.
const productFloor = 1e-280

// NewGamma returns an instance of the Gamma sampler with integer
// shape n and the given rate.
func NewGamma(src Source, n int64, rate float64) (*Gamma, error) {
	if n < 1 {
		return nil, invalidParam("gamma", "shape n must be at least 1, got %d", n)
	}
	if !(rate > 0) || !isFinite(rate) {
		return nil, invalidParam("gamma", "rate must be positive and finite, got %v", rate)
	}

	return &Gamma{src: src, n: n, rate: rate}, nil
}

// Sample draws n uniforms and returns -ln(U1*U2*...*Un)/rate, using
// ln(U1)+...+ln(Un) = ln(U1*...*Un) to take a single logarithm.
// Long products are folded into the logarithm before they underflow.
func (g *Gamma) Sample() float64 {
	y := 1.0
	logSum := 0.0
	for i := int64(0); i < g.n; i++ {
		y *= g.src.Float64()
		if y < productFloor {
			logSum += math.Log(y)
			y = 1
		}
	}

	return -(logSum + math.Log(y)) / g.rate
}
