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

// Package sample implements random walks sampling approximately
// uniformly from convex bodies.
//
// Package sample provides three Markov chain kernels over the
// geometry.ConvexBody abstraction: BallWalk, HitAndRun and
// BilliardWalk. Each constructor validates its configuration and the
// feasibility of the initial point and returns a Chain, an unbounded
// pull-based sequence of points whose stationary distribution is the
// uniform measure on the body.
//
// A chain owns its random number generator: the same seed together
// with the same body and initial point reproduces an identical
// sequence of samples. A chain must be consumed from a single
// goroutine; independent chains are fully isolated from one another.
package sample
