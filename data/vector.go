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

// Package data provides vector and matrix containers that can be
// filled with variates drawn from the samplers of package sample.
package data

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/mukherjeesagar/simulation-of-probabilities/sample"
)

// Number is the set of element types a Vector can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Vector wraps a slice of numeric elements.
type Vector[T Number] []T

// NewVector returns a new Vector instance.
func NewVector[T Number](coordinates []T) Vector[T] {
	return Vector[T](coordinates)
}

// NewRandomVector returns a new Vector instance
// with random elements sampled by the provided sample.Sampler.
// The elements are drawn in order, one call to Sample each.
func NewRandomVector[T Number](len int, sampler sample.Sampler[T]) (Vector[T], error) {
	if len < 0 {
		return nil, errors.Errorf("vector length should be non-negative, got %d", len)
	}
	vec := make([]T, len)

	for i := 0; i < len; i++ {
		vec[i] = sampler.Sample()
	}

	return NewVector(vec), nil
}

// Mean returns the arithmetic mean of the elements of v,
// or NaN for an empty vector.
func (v Vector[T]) Mean() float64 {
	if len(v) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, c := range v {
		sum += float64(c)
	}

	return sum / float64(len(v))
}

// Variance returns the population variance of the elements of v,
// or NaN for an empty vector.
func (v Vector[T]) Variance() float64 {
	me := v.Mean()
	if math.IsNaN(me) {
		return me
	}
	var sq float64
	for _, c := range v {
		d := float64(c) - me
		sq += d * d
	}

	return sq / float64(len(v))
}

// Float64 converts the elements of v to float64.
func (v Vector[T]) Float64() []float64 {
	res := make([]float64, len(v))
	for i, c := range v {
		res[i] = float64(c)
	}

	return res
}
