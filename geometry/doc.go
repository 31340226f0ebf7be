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

// Package geometry provides convex bodies in the euclidean space R^n.
//
// Package geometry defines the ConvexBody interface along with its
// canonical implementations: Box (axis-aligned bounds), Ball (center
// and radius), and Polytope (intersection of halfspaces A*x <= b).
// A RoundedBody decorates any other body with an affine change of
// variables that brings the body closer to isotropic position,
// improving the mixing time of the random walks in the sample package.
//
// All bodies expose the three geometric primitives the walks consume:
// a membership test, a ray/boundary crossing query, and the ambient
// dimension.
package geometry
