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
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"github.com/bodywalk-project/bodywalk/data"
	"github.com/bodywalk-project/bodywalk/geometry"
)

// BallWalk returns a Markov chain over body driven by the Ball Walk
// kernel: each transition proposes a point uniformly from the ball of
// radius delta around the current point and accepts it iff it lies in
// the body. A rejected proposal leaves the chain at its current point;
// this lazy step is required for the uniform distribution to be the
// chain's stationary measure and is not an error.
//
// Choosing delta is the caller's responsibility: small values slow the
// mixing down, large values inflate the rejection rate.
func BallWalk(body geometry.ConvexBody, initial data.Vector, delta float64, seed uint64) (*Chain, error) {
	if delta <= 0 {
		return nil, fmt.Errorf("expected a positive value for delta, but got %v", delta)
	}

	step := func(body geometry.ConvexBody, x data.Vector, rng *rand.Rand) (data.Vector, error) {
		candidate := sampleFromBall(x, delta, rng)
		if body.Contains(candidate) {
			return candidate, nil
		}

		return x, nil
	}

	return newChain(body, initial, seed, step)
}

// sampleFromBall draws a uniformly random point from the ball of the
// given center and radius: a uniform direction scaled by
// radius * U^(1/n), U uniform on [0, 1).
func sampleFromBall(center data.Vector, radius float64, rng *rand.Rand) data.Vector {
	direction := randomDirection(len(center), rng)
	r := radius * math.Pow(rng.Float64(), 1/float64(len(center)))

	return center.AddScaled(r, direction)
}
