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
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/bodywalk-project/bodywalk/data"
	"github.com/bodywalk-project/bodywalk/geometry"
)

// HitAndRun returns a Markov chain over body driven by the Hit-and-Run
// kernel: each transition samples a uniform direction, intersects the
// line through the current point with the body's boundary and picks
// the next point uniformly from the resulting chord. The move is
// rejection-free, so consecutive samples differ with probability one.
func HitAndRun(body geometry.ConvexBody, initial data.Vector, seed uint64) (*Chain, error) {
	return newChain(body, initial, seed, hitAndRunStep)
}

func hitAndRunStep(body geometry.ConvexBody, x data.Vector, rng *rand.Rand) (data.Vector, error) {
	direction := randomDirection(len(x), rng)

	crossings, err := body.Crossings(x, direction)
	if err != nil {
		return nil, err
	}

	tMin, tMax, err := chordExtremes(crossings)
	if err != nil {
		return nil, err
	}

	t := distuv.Uniform{Min: tMin, Max: tMax, Src: rng}.Rand()

	return x.AddScaled(t, direction), nil
}

// chordExtremes reduces a body's ray crossings to the chord through
// the ray's origin: the negative crossing closest to zero and the
// smallest positive crossing. It returns ErrUnboundedChord if either
// side of the chord has no crossing.
func chordExtremes(crossings []geometry.Crossing) (float64, float64, error) {
	tMin, tMax := math.Inf(-1), math.Inf(1)
	for _, c := range crossings {
		if c.T <= 0 && c.T > tMin {
			tMin = c.T
		}
		if c.T > 0 && c.T < tMax {
			tMax = c.T
		}
	}

	if math.IsInf(tMin, -1) || math.IsInf(tMax, 1) {
		return 0, 0, ErrUnboundedChord
	}

	return tMin, tMax, nil
}
