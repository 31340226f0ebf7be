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

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Vector wraps a slice of float64 coordinates representing a point
// or a direction in the euclidean space R^n.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(coordinates []float64) Vector {
	return Vector(coordinates)
}

// NewConstantVector returns a new Vector instance
// with all coordinates set to constant c.
func NewConstantVector(len int, c float64) Vector {
	vec := make(Vector, len)
	for i := 0; i < len; i++ {
		vec[i] = c
	}

	return vec
}

// Copy creates a new vector with the same values
// of the coordinates.
func (v Vector) Copy() Vector {
	newVec := make(Vector, len(v))
	copy(newVec, v)

	return newVec
}

// Add adds vectors v and other.
// The result is returned in a new Vector.
func (v Vector) Add(other Vector) Vector {
	sum := make(Vector, len(v))
	floats.AddTo(sum, v, other)

	return sum
}

// Sub subtracts vectors v and other.
// The result is returned in a new Vector.
func (v Vector) Sub(other Vector) Vector {
	sub := make(Vector, len(v))
	floats.SubTo(sub, v, other)

	return sub
}

// MulScalar multiplies vector v by a given scalar x.
// The result is returned in a new Vector.
func (v Vector) MulScalar(x float64) Vector {
	res := make(Vector, len(v))
	floats.ScaleTo(res, x, v)

	return res
}

// AddScaled calculates v + x*other.
// The result is returned in a new Vector.
func (v Vector) AddScaled(x float64, other Vector) Vector {
	res := make(Vector, len(v))
	floats.AddScaledTo(res, v, x, other)

	return res
}

// Dot calculates the dot product (inner product) of vectors v and other.
// It returns an error if vectors have different numbers of coordinates.
func (v Vector) Dot(other Vector) (float64, error) {
	if len(v) != len(other) {
		return 0, fmt.Errorf("vectors should be of same length")
	}

	return floats.Dot(v, other), nil
}

// Norm returns the euclidean norm of vector v.
func (v Vector) Norm() float64 {
	return floats.Norm(v, 2)
}

// ToVecDense converts vector v into a gonum dense vector backed
// by a copy of v's coordinates.
func (v Vector) ToVecDense() *mat.VecDense {
	return mat.NewVecDense(len(v), v.Copy())
}

// String produces a string representation of a vector.
func (v Vector) String() string {
	return fmt.Sprint([]float64(v))
}
