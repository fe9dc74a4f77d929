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

// BivariateNormal samples pairs of normal values with common mean m
// and standard deviation s.
//
// Both components come from the same Box-Muller draw: they share the
// radius sqrt(-2 ln U1) and differ only in taking the cosine or the
// sine of the angle 2*pi*U2.
type BivariateNormal struct {
	src Source
	m   float64
	s   float64
}

// NewBivariateNormal returns an instance of BivariateNormal sampler.
func NewBivariateNormal(src Source, m, s float64) (*BivariateNormal, error) {
	if err := checkScale("bivariate-normal", m, s); err != nil {
		return nil, err
	}

	return &BivariateNormal{src: src, m: m, s: s}, nil
}

// Sample consumes two uniform variates and returns (X, Y).
func (b *BivariateNormal) Sample() (float64, float64) {
	u1 := b.src.Float64()
	u2 := b.src.Float64()
	r, theta := boxMuller(u1, u2)

	return b.m + b.s*r*math.Cos(theta), b.m + b.s*r*math.Sin(theta)
}
