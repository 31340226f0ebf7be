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
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/bodywalk-project/bodywalk/data"
	"github.com/bodywalk-project/bodywalk/geometry"
	"github.com/bodywalk-project/bodywalk/internal"
)

// stepFunc advances a Markov chain by one transition: given the body,
// the current point and the chain's random number generator, it
// returns the next point.
type stepFunc func(body geometry.ConvexBody, x data.Vector, rng *rand.Rand) (data.Vector, error)

// Chain is an unbounded Markov chain of points inside a convex body.
// Each call to Next advances the chain by exactly one transition of
// the kernel it was constructed with. A Chain is strictly sequential
// and must be consumed from a single goroutine; to restart a chain,
// construct a new one.
type Chain struct {
	body    geometry.ConvexBody
	current data.Vector
	rng     *rand.Rand
	step    stepFunc
}

func newChain(body geometry.ConvexBody, initial data.Vector, seed uint64, step stepFunc) (*Chain, error) {
	if len(initial) != body.Dim() {
		return nil, errors.Wrapf(geometry.ErrDimensionMismatch,
			"body and initial point have incompatible sizes: %d != %d", body.Dim(), len(initial))
	}
	if !body.Contains(initial) {
		return nil, ErrInfeasibleStart
	}

	return &Chain{
		body:    body,
		current: initial.Copy(),
		rng:     rand.New(rand.NewSource(seed)),
		step:    step,
	}, nil
}

// Next advances the chain by one Markov transition and returns the new
// point. The returned vector is a fresh copy owned by the caller.
func (c *Chain) Next() (data.Vector, error) {
	next, err := c.step(c.body, c.current, c.rng)
	if err != nil {
		return nil, err
	}
	c.current = next

	return next.Copy(), nil
}

// Current returns a copy of the chain's current point.
func (c *Chain) Current() data.Vector {
	return c.current.Copy()
}

// Body returns the body the chain walks in.
func (c *Chain) Body() geometry.ConvexBody {
	return c.body
}

// randomDirection samples a direction uniformly from the unit sphere
// in R^n by normalizing independent standard normal coordinates. Draws
// whose pre-normalization norm is below tolerance are discarded and
// resampled.
func randomDirection(n int, rng *rand.Rand) data.Vector {
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}

	dir := make(data.Vector, n)
	for {
		for i := range dir {
			dir[i] = normal.Rand()
		}
		if norm := dir.Norm(); norm >= internal.Eps {
			return dir.MulScalar(1 / norm)
		}
	}
}
