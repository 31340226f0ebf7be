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

import "errors"

// ErrInfeasibleStart is returned at chain construction when the
// initial point fails the body's membership test.
var ErrInfeasibleStart = errors.New("initial point lies outside the body")

// ErrUnboundedChord is returned when no finite chord through the
// current point exists along the sampled direction, which indicates a
// malformed (unbounded) body.
var ErrUnboundedChord = errors.New("body is unbounded along the sampled direction")

// ErrBilliardStalled is returned when a billiard trajectory exceeds
// its reflection budget, which usually indicates a degenerate body.
var ErrBilliardStalled = errors.New("billiard trajectory exceeded the maximum number of reflections")
