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

import "errors"

// ErrDimensionMismatch is returned when a body is constructed from
// components with inconsistent dimensions.
var ErrDimensionMismatch = errors.New("dimensions of the given components do not match")

// ErrDegenerateDirection is returned by Crossings when the given
// direction vector has a near-zero norm. Callers sampling random
// directions must resample instead of propagating it.
var ErrDegenerateDirection = errors.New("direction vector has near-zero norm")

// ErrSingularTransform is returned when a rounding transform cannot
// be inverted.
var ErrSingularTransform = errors.New("rounding transform is singular")
