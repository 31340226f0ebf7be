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

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/bodywalk-project/bodywalk/data"
)

// RoundedBody decorates a convex body with an affine change of
// variables x_original = T*x_rounded + shift. The decorated body lives
// in rounded space: all of its operations map their arguments through
// the affine map before delegating to the inner body. Samples produced
// in rounded space must be mapped back with ToOriginal before being
// interpreted as points of the inner body.
//
// Rounding is a preprocessing step: a well chosen T makes the body
// closer to isotropic, which reduces the mixing time of the walks.
type RoundedBody struct {
	inner ConvexBody
	fwd   *mat.Dense // T, rounded space -> original space
	inv   *mat.Dense // T^-1
	shift data.Vector
}

// NewRounded returns a RoundedBody wrapping inner with the given
// linear transform and translation. The transform must be a square
// matrix matching the inner body's dimension; it returns
// ErrSingularTransform if the transform cannot be inverted.
func NewRounded(inner ConvexBody, transform data.Matrix, shift data.Vector) (*RoundedBody, error) {
	n := inner.Dim()
	if transform.Rows() != n || transform.Cols() != n || len(shift) != n {
		return nil, ErrDimensionMismatch
	}

	return newRounded(inner, transform.ToDense(), shift.Copy())
}

func newRounded(inner ConvexBody, fwd *mat.Dense, shift data.Vector) (*RoundedBody, error) {
	var inv mat.Dense
	if err := inv.Inverse(fwd); err != nil {
		return nil, ErrSingularTransform
	}

	return &RoundedBody{
		inner: inner,
		fwd:   fwd,
		inv:   &inv,
		shift: shift,
	}, nil
}

// RoundFromSamples estimates an affine rounding transform for inner
// from a batch of points sampled inside it. The transform is the
// Cholesky factor L of the empirical covariance (cov = L*L^T) and the
// translation is the empirical mean, so that the rounded body has
// approximately identity covariance around the origin.
// It returns an error if fewer than two samples are given or the
// covariance estimate is not positive definite.
func RoundFromSamples(inner ConvexBody, samples data.Matrix) (*RoundedBody, error) {
	n := inner.Dim()
	if samples.Rows() < 2 {
		return nil, fmt.Errorf("rounding requires at least two samples, but got %d", samples.Rows())
	}
	if samples.Cols() != n {
		return nil, ErrDimensionMismatch
	}

	batch := samples.ToDense()
	cov := mat.NewSymDense(n, nil)
	stat.CovarianceMatrix(cov, batch, nil)

	var chol mat.Cholesky
	if ok := chol.Factorize(cov); !ok {
		return nil, errors.Wrap(ErrSingularTransform, "sample covariance is not positive definite")
	}

	var l mat.TriDense
	chol.LTo(&l)
	fwd := mat.DenseCopyOf(&l)

	shift := make(data.Vector, n)
	col := make([]float64, samples.Rows())
	for j := 0; j < n; j++ {
		mat.Col(col, j, batch)
		shift[j] = stat.Mean(col, nil)
	}

	return newRounded(inner, fwd, shift)
}

// Inner returns the decorated body.
func (r *RoundedBody) Inner() ConvexBody {
	return r.inner
}

// Dim returns the dimension of the ambient space.
func (r *RoundedBody) Dim() int {
	return r.inner.Dim()
}

// ToOriginal maps a rounded-space point to original-space coordinates.
func (r *RoundedBody) ToOriginal(x data.Vector) data.Vector {
	return mulVec(r.fwd, x).Add(r.shift)
}

// ToRounded maps an original-space point to rounded-space coordinates.
func (r *RoundedBody) ToRounded(y data.Vector) data.Vector {
	return mulVec(r.inv, y.Sub(r.shift))
}

// Contains maps x to original space and delegates to the inner body.
func (r *RoundedBody) Contains(x data.Vector) bool {
	if len(x) != r.Dim() {
		return false
	}

	return r.inner.Contains(r.ToOriginal(x))
}

// Crossings maps the ray to original space, queries the inner body and
// maps the resulting normals back through T^T so they remain outward
// in rounded space. Ray parameters are unchanged by the affine map.
func (r *RoundedBody) Crossings(x, v data.Vector) ([]Crossing, error) {
	if len(x) != r.Dim() || len(v) != r.Dim() {
		return nil, ErrDimensionMismatch
	}
	if err := checkDirection(v); err != nil {
		return nil, err
	}

	crossings, err := r.inner.Crossings(r.ToOriginal(x), mulVec(r.fwd, v))
	if err != nil {
		return nil, err
	}

	mapped := make([]Crossing, len(crossings))
	for i, c := range crossings {
		var normal mat.VecDense
		normal.MulVec(r.fwd.T(), c.Normal.ToVecDense())
		mapped[i] = Crossing{
			T:      c.T,
			Normal: data.NewVector(normal.RawVector().Data),
		}
	}

	return mapped, nil
}

func mulVec(m *mat.Dense, x data.Vector) data.Vector {
	var y mat.VecDense
	y.MulVec(m, x.ToVecDense())

	return data.NewVector(y.RawVector().Data)
}
