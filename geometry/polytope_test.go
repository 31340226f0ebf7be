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

package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodywalk-project/bodywalk/data"
)

// unitSquare is the square [-0.5, 0.5]^2 in halfspace form.
func unitSquare(t *testing.T) *Polytope {
	t.Helper()

	p, err := NewPolytope(data.Matrix{
		{1, 0},
		{-1, 0},
		{0, 1},
		{0, -1},
	}, data.Vector{0.5, 0.5, 0.5, 0.5})
	require.NoError(t, err)

	return p
}

func TestNewPolytope(t *testing.T) {
	_, err := NewPolytope(data.Matrix{
		{1, 0},
		{0, 1},
		{1, 1},
	}, data.Vector{1, 1, 1, 1})
	assert.ErrorIs(t, err, ErrDimensionMismatch, "3 rows against 4 bounds should be rejected")

	_, err = NewPolytope(data.Matrix{{1, 0}, {1}}, data.Vector{1, 1})
	assert.ErrorIs(t, err, ErrDimensionMismatch, "ragged rows should be rejected")

	_, err = NewPolytope(data.Matrix{}, data.Vector{})
	assert.Error(t, err, "empty system should be rejected")

	p := unitSquare(t)
	assert.Equal(t, 2, p.Dim())
	assert.Equal(t, 4, p.A().Rows())
}

func TestPolytope_Contains(t *testing.T) {
	p := unitSquare(t)

	assert.True(t, p.Contains(data.Vector{0, 0}))
	assert.True(t, p.Contains(data.Vector{0.5, 0.5}), "boundary points are inside")
	assert.True(t, p.Contains(data.Vector{0.5 + 1e-12, 0}), "tolerance slack applies")
	assert.False(t, p.Contains(data.Vector{0.51, 0}))
	assert.False(t, p.Contains(data.Vector{0}), "wrong dimension is outside")
}

func TestPolytope_Crossings(t *testing.T) {
	p := unitSquare(t)

	crossings, err := p.Crossings(data.Vector{0, 0}, data.Vector{1, 0})
	require.NoError(t, err)
	require.Len(t, crossings, 2, "rows parallel to the ray are excluded")

	for _, c := range crossings {
		switch {
		case c.T > 0:
			assert.InDelta(t, 0.5, c.T, 1e-12)
			assert.Equal(t, data.Vector{1, 0}, c.Normal)
		default:
			assert.InDelta(t, -0.5, c.T, 1e-12)
			assert.Equal(t, data.Vector{-1, 0}, c.Normal)
		}
	}

	_, err = p.Crossings(data.Vector{0, 0}, data.Vector{0, 0})
	assert.ErrorIs(t, err, ErrDegenerateDirection)
}

func TestPolytope_SetTolerance(t *testing.T) {
	p := unitSquare(t)
	p.SetTolerance(0.1)

	assert.True(t, p.Contains(data.Vector{0.55, 0}), "loosened tolerance admits near points")
}
