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
	"fmt"
	"math"

	"github.com/bodywalk-project/bodywalk/data"
	"github.com/bodywalk-project/bodywalk/internal"
)

// Ball is a euclidean ball {x : ||x - center|| <= radius}.
type Ball struct {
	center data.Vector
	radius float64
	eps    float64
}

// NewBall returns a new Ball instance with the given center and
// radius. It returns an error if the radius is not positive or the
// center is empty.
func NewBall(center data.Vector, radius float64) (*Ball, error) {
	if len(center) == 0 {
		return nil, fmt.Errorf("ball must have at least one dimension")
	}
	if radius <= 0 {
		return nil, fmt.Errorf("radius of ball must be positive, but got %v", radius)
	}

	return &Ball{
		center: center.Copy(),
		radius: radius,
		eps:    internal.Eps,
	}, nil
}

// Center returns the ball's center.
func (b *Ball) Center() data.Vector {
	return b.center.Copy()
}

// Radius returns the ball's radius.
func (b *Ball) Radius() float64 {
	return b.radius
}

// SetTolerance overrides the numerical tolerance used by the
// membership test and the crossing query.
func (b *Ball) SetTolerance(eps float64) {
	b.eps = eps
}

// Dim returns the dimension of the ambient space.
func (b *Ball) Dim() int {
	return len(b.center)
}

// Contains reports whether x lies within the ball, allowing tolerance
// eps on the distance from the center.
func (b *Ball) Contains(x data.Vector) bool {
	if len(x) != b.Dim() {
		return false
	}

	return x.Sub(b.center).Norm() <= b.radius+b.eps
}

// Crossings returns the two roots of the quadratic
// ||x + t*v - center||^2 = radius^2, each paired with the sphere's
// outward normal at the crossing point. It returns no crossings when
// the ray misses the ball.
func (b *Ball) Crossings(x, v data.Vector) ([]Crossing, error) {
	if len(x) != b.Dim() || len(v) != b.Dim() {
		return nil, ErrDimensionMismatch
	}
	if err := checkDirection(v); err != nil {
		return nil, err
	}

	disp := b.center.Sub(x)
	qa, _ := v.Dot(v)
	qb, _ := v.Dot(disp)
	qc, _ := disp.Dot(disp)
	qc -= b.radius * b.radius

	delta := qb*qb - qa*qc
	if delta < 0 {
		return nil, nil
	}

	sqDelta := math.Sqrt(delta)
	roots := []float64{(qb - sqDelta) / qa, (qb + sqDelta) / qa}

	crossings := make([]Crossing, 0, 2)
	for _, t := range roots {
		crossings = append(crossings, Crossing{
			T:      t,
			Normal: x.AddScaled(t, v).Sub(b.center),
		})
	}

	return crossings, nil
}
