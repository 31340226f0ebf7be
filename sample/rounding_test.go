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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodywalk-project/bodywalk/data"
	"github.com/bodywalk-project/bodywalk/geometry"
)

// TestWalkOnRoundedBody exercises the full preprocessing flow: sample a
// batch from an elongated body, estimate a rounding transform from it,
// walk in rounded space and map the samples back.
func TestWalkOnRoundedBody(t *testing.T) {
	box, err := geometry.NewBox(data.Vector{-5, -0.2}, data.Vector{5, 0.2})
	require.NoError(t, err)

	warmup, err := HitAndRun(box, data.Vector{0, 0}, 1)
	require.NoError(t, err)
	batch := data.Matrix(pull(t, warmup, 400))

	rounded, err := geometry.RoundFromSamples(box, batch)
	require.NoError(t, err)

	start := rounded.ToRounded(data.Vector{0, 0})
	require.True(t, rounded.Contains(start))

	chain, err := HitAndRun(rounded, start, 42)
	require.NoError(t, err)

	for _, s := range pull(t, chain, 1000) {
		back := rounded.ToOriginal(s)
		assert.True(t, box.Contains(back), "mapped-back sample %v left the original body", back)
	}
}

// TestBallWalkOnRoundedBody checks that the walks stay agnostic to the
// decorator: a rounded body is just another ConvexBody.
func TestBallWalkOnRoundedBody(t *testing.T) {
	box, err := geometry.NewBox(data.Vector{-2, -2}, data.Vector{2, 2})
	require.NoError(t, err)

	rounded, err := geometry.NewRounded(box, data.Matrix{
		{2, 0},
		{0, 1},
	}, data.Vector{0.5, 0})
	require.NoError(t, err)

	start := rounded.ToRounded(data.Vector{0, 0})
	chain, err := BallWalk(rounded, start, 0.4, 42)
	require.NoError(t, err)

	for _, s := range pull(t, chain, 1000) {
		assert.True(t, rounded.Contains(s))
		assert.True(t, box.Contains(rounded.ToOriginal(s)))
	}
}
