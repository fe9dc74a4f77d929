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

package data

import (
	"fmt"

	"github.com/mukherjeesagar/simulation-of-probabilities/sample"
)

// Matrix wraps a slice of Vector elements. It represents a row-major
// order matrix.
//
// The j-th element from the i-th vector of the matrix can be obtained
// as m[i][j].
type Matrix[T Number] []Vector[T]

// NewMatrix accepts a slice of Vector elements and
// returns a new Matrix instance.
// It returns error if not all the vectors have the same number of elements.
func NewMatrix[T Number](vectors []Vector[T]) (Matrix[T], error) {
	l := -1
	newVectors := make([]Vector[T], len(vectors))

	if len(vectors) > 0 {
		l = len(vectors[0])
	}
	for i, v := range vectors {
		if len(v) != l {
			return nil, fmt.Errorf("all vectors should be of the same length")
		}
		newVectors[i] = NewVector(v)
	}

	return Matrix[T](newVectors), nil
}

// NewBivariateMatrix returns a rows x 2 Matrix whose i-th row holds
// the i-th pair drawn from the bivariate normal sampler b.
func NewBivariateMatrix(rows int, b *sample.BivariateNormal) (Matrix[float64], error) {
	if rows < 0 {
		return nil, fmt.Errorf("number of rows should be non-negative, got %d", rows)
	}
	mat := make([]Vector[float64], rows)

	for i := 0; i < rows; i++ {
		x, y := b.Sample()
		mat[i] = Vector[float64]{x, y}
	}

	return NewMatrix(mat)
}

// Rows returns the number of rows of matrix m.
func (m Matrix[T]) Rows() int {
	return len(m)
}

// Cols returns the number of columns of matrix m.
func (m Matrix[T]) Cols() int {
	if len(m) != 0 {
		return len(m[0])
	}

	return 0
}

// GetCol returns i-th column of matrix m as a vector.
// It returns error if i >= the number of m's columns.
func (m Matrix[T]) GetCol(i int) (Vector[T], error) {
	if i < 0 || i >= m.Cols() {
		return nil, fmt.Errorf("column index exceeds matrix dimensions")
	}

	column := make([]T, m.Rows())
	for j := 0; j < m.Rows(); j++ {
		column[j] = m[j][i]
	}

	return NewVector(column), nil
}
