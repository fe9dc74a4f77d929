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

// UniformInt samples random integers from the interval [a, b) with
// equal probabilities.
type UniformInt struct {
	src  Source
	a, b int64
}

// NewUniformInt returns an instance of the UniformInt sampler.
// It accepts lower and upper bounds on the sampled values.
func NewUniformInt(src Source, a, b int64) (*UniformInt, error) {
	if a >= b || b-a <= 0 {
		return nil, invalidParam("uniform-int", "bounds must satisfy a < b with b-a representable, got [%d, %d)", a, b)
	}

	return &UniformInt{
		src: src,
		a:   a,
		b:   b,
	}, nil
}

// Sample returns a + floor((b-a)*U).
func (u *UniformInt) Sample() int64 {
	x := u.a + int64(float64(u.b-u.a)*u.src.Float64())
	// float64 rounding of very wide ranges may land on b.
	if x >= u.b {
		x = u.b - 1
	}

	return x
}

// UniformRange samples random values from the interval [a, b).
type UniformRange struct {
	src  Source
	a, b float64
}

// NewUniformRange returns an instance of the UniformRange sampler.
// It accepts lower and upper bounds on the sampled values.
func NewUniformRange(src Source, a, b float64) (*UniformRange, error) {
	if !isFinite(a) || !isFinite(b) || !(a < b) || math.IsInf(b-a, 0) {
		return nil, invalidParam("uniform", "bounds must be finite with a < b, got [%v, %v)", a, b)
	}

	return &UniformRange{
		src: src,
		a:   a,
		b:   b,
	}, nil
}

// NewUniform returns an instance of the UniformRange sampler over [0, 1).
func NewUniform(src Source) *UniformRange {
	return &UniformRange{
		src: src,
		a:   0,
		b:   1,
	}
}

// Sample returns a + (b-a)*U.
func (u *UniformRange) Sample() float64 {
	x := u.a + (u.b-u.a)*u.src.Float64()
	// U < 1, but the sum may still round up to b.
	if x >= u.b {
		x = math.Nextafter(u.b, u.a)
	}

	return x
}
