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

	"gonum.org/v1/gonum/mat"

	"github.com/bodywalk-project/bodywalk/data"
	"github.com/bodywalk-project/bodywalk/internal"
)

// Polytope is a convex body defined by a collection of linear
// inequalities. Given an m x n matrix A and an m-dimensional vector b,
// the polytope is the set of all points x satisfying A*x <= b.
//
// The caller is responsible for supplying a bounded, non-empty system;
// the walks only require that their initial point satisfies all
// constraints within tolerance.
type Polytope struct {
	a   *mat.Dense
	b   *mat.VecDense
	eps float64
}

// NewPolytope returns a new Polytope instance from the constraint rows
// of A paired with the entries of b. It returns ErrDimensionMismatch
// if the rows of A have unequal lengths or if the number of rows
// differs from the length of b.
func NewPolytope(a data.Matrix, b data.Vector) (*Polytope, error) {
	rows, err := data.NewMatrix(a)
	if err != nil {
		return nil, ErrDimensionMismatch
	}
	if rows.Rows() != len(b) {
		return nil, ErrDimensionMismatch
	}
	if rows.Rows() == 0 || rows.Cols() == 0 {
		return nil, fmt.Errorf("polytope must have at least one constraint and one dimension")
	}

	return &Polytope{
		a:   rows.ToDense(),
		b:   b.ToVecDense(),
		eps: internal.Eps,
	}, nil
}

// A returns the constraint matrix.
func (p *Polytope) A() data.Matrix {
	rows, _ := p.a.Dims()
	m := make([]data.Vector, rows)
	for i := 0; i < rows; i++ {
		m[i] = data.NewVector(p.a.RawRowView(i)).Copy()
	}

	return data.Matrix(m)
}

// B returns the constraint bound vector.
func (p *Polytope) B() data.Vector {
	return data.NewVector(p.b.RawVector().Data).Copy()
}

// SetTolerance overrides the numerical tolerance used by the
// membership test and the crossing query.
func (p *Polytope) SetTolerance(eps float64) {
	p.eps = eps
}

// Dim returns the dimension of the ambient space.
func (p *Polytope) Dim() int {
	_, cols := p.a.Dims()
	return cols
}

// Contains reports whether A*x <= b holds within tolerance eps for
// every constraint row.
func (p *Polytope) Contains(x data.Vector) bool {
	if len(x) != p.Dim() {
		return false
	}

	rows, _ := p.a.Dims()
	var ax mat.VecDense
	ax.MulVec(p.a, x.ToVecDense())
	for i := 0; i < rows; i++ {
		if ax.AtVec(i)-p.b.AtVec(i) > p.eps {
			return false
		}
	}

	return true
}

// Crossings returns, for every constraint row not parallel to the ray
// x + t*v, the parameter t_i = (b_i - A_i*x) / (A_i*v) at which the
// ray meets the row's hyperplane, paired with the row itself as the
// outward normal.
func (p *Polytope) Crossings(x, v data.Vector) ([]Crossing, error) {
	if len(x) != p.Dim() || len(v) != p.Dim() {
		return nil, ErrDimensionMismatch
	}
	if err := checkDirection(v); err != nil {
		return nil, err
	}

	rows, _ := p.a.Dims()
	var ax, av mat.VecDense
	ax.MulVec(p.a, x.ToVecDense())
	av.MulVec(p.a, v.ToVecDense())

	crossings := make([]Crossing, 0, rows)
	for i := 0; i < rows; i++ {
		denom := av.AtVec(i)
		if internal.IsZero(denom, p.eps) {
			continue
		}
		crossings = append(crossings, Crossing{
			T:      (p.b.AtVec(i) - ax.AtVec(i)) / denom,
			Normal: data.NewVector(p.a.RawRowView(i)).Copy(),
		})
	}

	return crossings, nil
}
