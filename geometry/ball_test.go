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

func TestNewBall(t *testing.T) {
	_, err := NewBall(data.Vector{0, 0}, 0)
	assert.Error(t, err, "zero radius should be rejected")

	_, err = NewBall(data.Vector{0, 0}, -1)
	assert.Error(t, err, "negative radius should be rejected")

	_, err = NewBall(data.Vector{}, 1)
	assert.Error(t, err, "empty center should be rejected")

	ball, err := NewBall(data.Vector{1, 2, 3}, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 3, ball.Dim())
	assert.Equal(t, 0.5, ball.Radius())
}

func TestBall_Contains(t *testing.T) {
	ball, _ := NewBall(data.Vector{0, 0}, 1)

	assert.True(t, ball.Contains(data.Vector{0, 0}))
	assert.True(t, ball.Contains(data.Vector{1, 0}), "boundary points are inside")
	assert.True(t, ball.Contains(data.Vector{0.6, 0.6}))
	assert.False(t, ball.Contains(data.Vector{0.8, 0.8}))
	assert.False(t, ball.Contains(data.Vector{0, 0, 0}), "wrong dimension is outside")
}

func TestBall_Crossings(t *testing.T) {
	ball, _ := NewBall(data.Vector{1, 0}, 2)

	crossings, err := ball.Crossings(data.Vector{1, 0}, data.Vector{0, 1})
	require.NoError(t, err)
	require.Len(t, crossings, 2)

	assert.InDelta(t, -2, crossings[0].T, 1e-12)
	assert.InDelta(t, 2, crossings[1].T, 1e-12)

	// Surface normals point from the center to the crossing point.
	assert.InDelta(t, 0, crossings[1].Normal[0], 1e-12)
	assert.InDelta(t, 2, crossings[1].Normal[1], 1e-12)

	_, err = ball.Crossings(data.Vector{1, 0}, data.Vector{0, 0})
	assert.ErrorIs(t, err, ErrDegenerateDirection)
}

func TestBall_CrossingsUnnormalizedDirection(t *testing.T) {
	ball, _ := NewBall(data.Vector{0, 0}, 1)

	// Doubling the direction halves the ray parameters.
	crossings, err := ball.Crossings(data.Vector{0, 0}, data.Vector{2, 0})
	require.NoError(t, err)
	require.Len(t, crossings, 2)
	assert.InDelta(t, -0.5, crossings[0].T, 1e-12)
	assert.InDelta(t, 0.5, crossings[1].T, 1e-12)
}

func TestBall_CrossingsMiss(t *testing.T) {
	ball, _ := NewBall(data.Vector{0, 0}, 1)

	crossings, err := ball.Crossings(data.Vector{0, 5}, data.Vector{1, 0})
	require.NoError(t, err)
	assert.Empty(t, crossings, "a ray missing the ball has no crossings")
}
