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
	"github.com/bodywalk-project/bodywalk/data"
	"github.com/bodywalk-project/bodywalk/internal"
)

// Crossing describes the intersection of a ray x + t*v with the
// hyperplane supporting one of a body's constraints. T is the signed
// ray parameter of the intersection and Normal is the constraint's
// outward normal at the crossing point. The normal is not necessarily
// of unit length.
type Crossing struct {
	T      float64
	Normal data.Vector
}

// ConvexBody represents a bounded convex region of R^n. Implementations
// must be immutable values: none of the methods may modify the body.
type ConvexBody interface {
	// Contains reports whether point x satisfies the body's defining
	// inequalities within the body's numerical tolerance. It must be
	// defined for points outside the body as well.
	Contains(x data.Vector) bool

	// Crossings returns, for every constraint of the body crossed by
	// the ray x + t*v, the signed parameter t of the crossing paired
	// with the constraint's outward normal. Constraints to which the
	// ray is (near-)parallel are omitted. It returns
	// ErrDegenerateDirection if v has near-zero norm.
	Crossings(x, v data.Vector) ([]Crossing, error)

	// Dim returns the dimension n of the ambient space.
	Dim() int
}

func checkDirection(v data.Vector) error {
	if internal.IsZero(v.Norm(), internal.Eps) {
		return ErrDegenerateDirection
	}

	return nil
}
