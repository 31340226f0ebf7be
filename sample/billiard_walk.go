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

	"golang.org/x/exp/rand"

	"github.com/bodywalk-project/bodywalk/data"
	"github.com/bodywalk-project/bodywalk/geometry"
	"github.com/bodywalk-project/bodywalk/internal"
)

// BilliardWalk returns a Markov chain over body driven by the Billiard
// Walk kernel with a reflection budget of 10 times the dimension.
// Each transition samples a uniform direction and follows a straight
// trajectory of total arc length tau inside the body, reflecting
// specularly off the boundary whenever the trajectory would exit.
// A single step can traverse several chords, which mixes faster than
// Hit-and-Run on elongated bodies. tau is a tuning parameter analogous
// to the Ball Walk's delta.
func BilliardWalk(body geometry.ConvexBody, initial data.Vector, tau float64, seed uint64) (*Chain, error) {
	return BilliardWalkMaxReflections(body, initial, tau, 10*body.Dim(), seed)
}

// BilliardWalkMaxReflections is BilliardWalk with an explicit bound on
// the number of reflections per trajectory. A trajectory exceeding the
// bound surfaces ErrBilliardStalled from that pull: repeated stalling
// usually indicates a near-degenerate body rather than transient
// numerical noise, so it is not retried internally.
func BilliardWalkMaxReflections(body geometry.ConvexBody, initial data.Vector, tau float64, maxReflections int, seed uint64) (*Chain, error) {
	if tau <= 0 {
		return nil, fmt.Errorf("tau must be a positive number, but got %v", tau)
	}
	if maxReflections <= 0 {
		return nil, fmt.Errorf("maxReflections must be a positive integer, but got %d", maxReflections)
	}

	step := func(body geometry.ConvexBody, x data.Vector, rng *rand.Rand) (data.Vector, error) {
		direction := randomDirection(len(x), rng)
		return runTrajectory(body, x, direction, tau, maxReflections)
	}

	return newChain(body, initial, seed, step)
}

// runTrajectory follows a billiard trajectory of the given arc length
// from start, reflecting off the boundary until the length budget is
// spent.
func runTrajectory(body geometry.ConvexBody, start, direction data.Vector, length float64, maxReflections int) (data.Vector, error) {
	pos := start.Copy()
	remaining := length

	for i := 0; i < maxReflections; i++ {
		hit, ok, err := firstHit(body, pos, direction)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrUnboundedChord
		}

		if hit.T >= remaining {
			return pos.AddScaled(remaining, direction), nil
		}

		pos = pos.AddScaled(hit.T, direction)
		remaining -= hit.T
		direction = reflect(direction, hit.Normal)
	}

	return nil, ErrBilliardStalled
}

// firstHit returns the boundary crossing with the smallest ray
// parameter strictly ahead of pos. Crossings closer than the numerical
// tolerance are skipped so a trajectory cannot re-hit the facet it was
// just reflected from.
func firstHit(body geometry.ConvexBody, pos, direction data.Vector) (geometry.Crossing, bool, error) {
	crossings, err := body.Crossings(pos, direction)
	if err != nil {
		return geometry.Crossing{}, false, err
	}

	best := geometry.Crossing{}
	found := false
	for _, c := range crossings {
		if c.T <= internal.Eps {
			continue
		}
		if !found || c.T < best.T {
			best = c
			found = true
		}
	}

	return best, found, nil
}

// reflect mirrors direction about the hyperplane with the given
// normal: d - 2*(d . n / ||n||^2)*n. The normal need not be of unit
// length.
func reflect(direction, normal data.Vector) data.Vector {
	dn, _ := direction.Dot(normal)
	nn, _ := normal.Dot(normal)

	return direction.AddScaled(-2*dn/nn, normal)
}
