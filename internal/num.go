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

// Package internal holds numeric helpers shared by the geometry and
// sampling packages.
package internal

import "math"

// Eps is the default numerical tolerance used for membership tests
// and for discarding near-parallel ray/facet intersections.
const Eps = 1e-9

// IsZero reports whether x is indistinguishable from zero
// under tolerance eps.
func IsZero(x, eps float64) bool {
	return math.Abs(x) < eps
}
