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

	"gonum.org/v1/gonum/mat"
)

// Matrix wraps a slice of Vector elements. It represents a row-major
// order matrix.
//
// The j-th element from the i-th vector of the matrix can be obtained
// as m[i][j].
type Matrix []Vector

// NewMatrix accepts a slice of Vector elements and
// returns a new Matrix instance.
// It returns error if not all the vectors have the same number of elements.
func NewMatrix(vectors []Vector) (Matrix, error) {
	l := -1
	newVectors := make([]Vector, len(vectors))

	if len(vectors) > 0 {
		l = len(vectors[0])
	}
	for i, v := range vectors {
		if len(v) != l {
			return nil, fmt.Errorf("all vectors should be of the same length")
		}
		newVectors[i] = NewVector(v)
	}

	return Matrix(newVectors), nil
}

// Rows returns the number of rows of matrix m.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns of matrix m.
func (m Matrix) Cols() int {
	if len(m) != 0 {
		return len(m[0])
	}

	return 0
}

// Copy creates a new matrix with copies of the rows of m.
func (m Matrix) Copy() Matrix {
	newRows := make([]Vector, m.Rows())
	for i, v := range m {
		newRows[i] = v.Copy()
	}

	return Matrix(newRows)
}

// MulVec calculates m * x and returns the resulting vector.
// It returns an error if the dimensions of m and x do not match.
func (m Matrix) MulVec(x Vector) (Vector, error) {
	if m.Cols() != len(x) {
		return nil, fmt.Errorf("matrix and vector dimensions do not match")
	}

	res := make(Vector, m.Rows())
	for i, row := range m {
		prod, err := row.Dot(x)
		if err != nil {
			return nil, err
		}
		res[i] = prod
	}

	return res, nil
}

// ToDense converts matrix m into a gonum dense matrix backed
// by a copy of m's elements.
func (m Matrix) ToDense() *mat.Dense {
	rows, cols := m.Rows(), m.Cols()
	elems := make([]float64, 0, rows*cols)
	for _, row := range m {
		elems = append(elems, row...)
	}

	return mat.NewDense(rows, cols, elems)
}
