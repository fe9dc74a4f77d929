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

// twoPi is 2*math.Pi, carried at full double precision.
const twoPi = 2 * math.Pi

// boxMuller maps two uniform variates to the radius sqrt(-2 ln u1)
// and the angle 2*pi*u2 of the Box-Muller transform.
func boxMuller(u1, u2 float64) (float64, float64) {
	return math.Sqrt(-2 * math.Log(u1)), twoPi * u2
}

// Normal samples random values from the Normal (Gaussian)
// probability distribution with mean m and standard deviation s.
type Normal struct {
	src Source
	m   float64
	s   float64
}

// NewNormal returns an instance of Normal sampler.
func NewNormal(src Source, m, s float64) (*Normal, error) {
	if err := checkScale("normal", m, s); err != nil {
		return nil, err
	}

	return &Normal{src: src, m: m, s: s}, nil
}

// NewStandardNormal returns an instance of Normal sampler
// with mean 0 and standard deviation 1.
func NewStandardNormal(src Source) *Normal {
	return &Normal{src: src, m: 0, s: 1}
}

// Sample draws two uniform variates and returns the cosine branch
// of the Box-Muller transform, shifted and scaled.
func (n *Normal) Sample() float64 {
	u1 := n.src.Float64()
	u2 := n.src.Float64()
	r, theta := boxMuller(u1, u2)

	return n.m + n.s*r*math.Cos(theta)
}

// LogNormal samples values whose logarithm follows the Normal
// distribution with mean m and standard deviation s.
type LogNormal struct {
	*Normal
}

// NewLogNormal returns an instance of LogNormal sampler. The parameters
// are those of the underlying normal distribution.
func NewLogNormal(src Source, m, s float64) (*LogNormal, error) {
	if err := checkScale("lognormal", m, s); err != nil {
		return nil, err
	}

	return &LogNormal{
		Normal: &Normal{src: src, m: m, s: s},
	}, nil
}

// Sample returns exp(Y) for a normal variate Y.
func (l *LogNormal) Sample() float64 {
	return math.Exp(l.Normal.Sample())
}
