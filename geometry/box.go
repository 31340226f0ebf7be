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

	"github.com/bodywalk-project/bodywalk/data"
	"github.com/bodywalk-project/bodywalk/internal"
)

// Box is an axis-aligned box {x : lower[i] <= x[i] <= upper[i]}.
type Box struct {
	lower data.Vector
	upper data.Vector
	eps   float64
}

// NewBox returns a new Box instance with the given componentwise
// bounds. It returns ErrDimensionMismatch if the bound vectors have
// different lengths, and an error if any lower bound exceeds the
// corresponding upper bound.
func NewBox(lower, upper data.Vector) (*Box, error) {
	if len(lower) != len(upper) {
		return nil, ErrDimensionMismatch
	}
	if len(lower) == 0 {
		return nil, fmt.Errorf("box must have at least one dimension")
	}
	for i := range lower {
		if lower[i] > upper[i] {
			return nil, fmt.Errorf("lower bound %v exceeds upper bound %v at coordinate %d",
				lower[i], upper[i], i)
		}
	}

	return &Box{
		lower: lower.Copy(),
		upper: upper.Copy(),
		eps:   internal.Eps,
	}, nil
}

// Lower returns the box's lower bound vector.
func (b *Box) Lower() data.Vector {
	return b.lower.Copy()
}

// Upper returns the box's upper bound vector.
func (b *Box) Upper() data.Vector {
	return b.upper.Copy()
}

// SetTolerance overrides the numerical tolerance used by the
// membership test and the crossing query.
func (b *Box) SetTolerance(eps float64) {
	b.eps = eps
}

// Dim returns the dimension of the ambient space.
func (b *Box) Dim() int {
	return len(b.lower)
}

// Contains reports whether x lies within the box's bounds, allowing
// tolerance eps on each coordinate.
func (b *Box) Contains(x data.Vector) bool {
	if len(x) != b.Dim() {
		return false
	}
	for i := range x {
		if x[i] < b.lower[i]-b.eps || x[i] > b.upper[i]+b.eps {
			return false
		}
	}

	return true
}

// Crossings returns the per-axis crossings of the ray x + t*v with
// the box's facets. Axes along which the ray does not advance are
// omitted. Normals are the signed unit axis vectors.
func (b *Box) Crossings(x, v data.Vector) ([]Crossing, error) {
	if len(x) != b.Dim() || len(v) != b.Dim() {
		return nil, ErrDimensionMismatch
	}
	if err := checkDirection(v); err != nil {
		return nil, err
	}

	crossings := make([]Crossing, 0, 2*b.Dim())
	for i := range v {
		if internal.IsZero(v[i], b.eps) {
			continue
		}

		lowNormal := data.NewConstantVector(b.Dim(), 0)
		lowNormal[i] = -1
		crossings = append(crossings, Crossing{
			T:      (b.lower[i] - x[i]) / v[i],
			Normal: lowNormal,
		})

		upNormal := data.NewConstantVector(b.Dim(), 0)
		upNormal[i] = 1
		crossings = append(crossings, Crossing{
			T:      (b.upper[i] - x[i]) / v[i],
			Normal: upNormal,
		})
	}

	return crossings, nil
}
