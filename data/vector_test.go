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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector(t *testing.T) {
	x := NewVector([]float64{1, 2, 3})
	y := NewVector([]float64{4, -5, 6})

	add := x.Add(y)
	sub := x.Sub(y)
	scaled := x.MulScalar(2)
	axpy := x.AddScaled(0.5, y)

	for i := 0; i < 3; i++ {
		assert.Equal(t, x[i]+y[i], add[i], "coordinates should sum correctly")
		assert.Equal(t, x[i]-y[i], sub[i], "coordinates should subtract correctly")
		assert.Equal(t, 2*x[i], scaled[i], "coordinates should scale correctly")
		assert.Equal(t, x[i]+0.5*y[i], axpy[i], "coordinates should combine correctly")
	}

	dot, err := x.Dot(y)
	assert.NoError(t, err)
	assert.Equal(t, float64(4-10+18), dot, "inner product should calculate correctly")

	_, err = x.Dot(NewVector([]float64{1, 2}))
	assert.Error(t, err, "dot product of mismatched vectors should fail")

	assert.InDelta(t, math.Sqrt(14), x.Norm(), 1e-12)
}

func TestVector_Copy(t *testing.T) {
	x := NewVector([]float64{1, 2, 3})
	y := x.Copy()
	y[0] = 42

	assert.Equal(t, 1.0, x[0], "copy should not share memory with the original")
}

func TestVector_ToVecDense(t *testing.T) {
	x := NewConstantVector(4, 2.5)
	v := x.ToVecDense()

	assert.Equal(t, 4, v.Len())
	for i := 0; i < 4; i++ {
		assert.Equal(t, 2.5, v.AtVec(i))
	}

	v.SetVec(0, 0)
	assert.Equal(t, 2.5, x[0], "dense vector should be backed by a copy")
}
