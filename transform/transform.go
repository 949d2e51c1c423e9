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

package transform

import (
	"math"

	"github.com/fentec-project/polyrun"
	"github.com/fentec-project/polyrun/data"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Transformation maps points y of the sampling space to the points
// Ny + t satisfying the equalities it was built from.
type Transformation struct {
	basis data.Matrix // n x dim
	trans data.Vector // n
	dim   int
}

// New returns the transformation for the equalities Cx = d over n
// variables. Singular values of C not larger than eps are treated as
// zero. An empty C gives the identity transformation.
//
// It returns an error wrapping polyrun.ErrInfeasible if the equalities
// are inconsistent and polyrun.ErrSinglePoint if they have exactly one
// solution.
func New(c data.Matrix, d data.Vector, n int, eps float64) (*Transformation, error) {
	if n <= 0 {
		return nil, errors.Wrap(polyrun.ErrPrecondition, "number of variables must be positive")
	}
	if c.Rows() != len(d) {
		return nil, errors.Wrap(polyrun.ErrPrecondition, "number of rows of C and length of d differ")
	}

	if c.Rows() == 0 {
		return &Transformation{
			basis: data.NewIdentityMatrix(n),
			trans: data.NewConstantVector(n, 0),
			dim:   n,
		}, nil
	}
	if c.Cols() != n {
		return nil, errors.Wrapf(polyrun.ErrPrecondition, "C should have %d columns", n)
	}

	f, err := factorize(c, eps)
	if err != nil {
		return nil, err
	}
	t, err := f.solve(c, d, eps)
	if err != nil {
		return nil, err
	}

	dim := n - f.rank
	if dim == 0 {
		return nil, polyrun.ErrSinglePoint
	}

	return &Transformation{
		basis: data.NewMatrixFromDense(f.v.Slice(0, n, f.rank, n)),
		trans: t,
		dim:   dim,
	}, nil
}

// ParticularSolution returns the least norm solution of Cx = d. It is
// meant for systems which New rejects with polyrun.ErrSinglePoint, where
// it is the only solution.
func ParticularSolution(c data.Matrix, d data.Vector, eps float64) (data.Vector, error) {
	if c.Rows() == 0 || c.Cols() == 0 {
		return nil, errors.Wrap(polyrun.ErrPrecondition, "matrix C is empty")
	}
	if c.Rows() != len(d) {
		return nil, errors.Wrap(polyrun.ErrPrecondition, "number of rows of C and length of d differ")
	}

	f, err := factorize(c, eps)
	if err != nil {
		return nil, err
	}

	return f.solve(c, d, eps)
}

// svdResult holds the factors of C = U Sigma V^T and the numerical
// rank of C.
type svdResult struct {
	u, v   mat.Dense
	values []float64
	rank   int
}

func factorize(c data.Matrix, eps float64) (*svdResult, error) {
	var svd mat.SVD
	if ok := svd.Factorize(c.Dense(), mat.SVDFull); !ok {
		return nil, errors.Wrap(polyrun.ErrAccuracy, "singular value decomposition failed")
	}

	f := &svdResult{values: svd.Values(nil)}
	svd.UTo(&f.u)
	svd.VTo(&f.v)
	for _, s := range f.values {
		if s > eps {
			f.rank++
		}
	}

	return f, nil
}

// solve computes t = V Sigma^+ U^T d and checks that Ct = d holds.
func (f *svdResult) solve(c data.Matrix, d data.Vector, eps float64) (data.Vector, error) {
	_, n := f.v.Dims()

	dv := d.VecDense()
	t := data.NewConstantVector(n, 0)
	for i := 0; i < f.rank; i++ {
		w := mat.Dot(f.u.ColView(i), dv) / f.values[i]
		floats.AddScaled(t, w, data.NewVectorFromVecDense(f.v.ColView(i)))
	}

	ct, err := c.MulVec(t)
	if err != nil {
		return nil, err
	}
	if residual := ct.Sub(d).Norm(); residual > math.Sqrt(eps)*(1+d.Norm()) {
		return nil, errors.Wrapf(polyrun.ErrInfeasible, "equalities are inconsistent (residual %g)", residual)
	}

	return t, nil
}

// Dim returns the dimension of the sampling space.
func (t *Transformation) Dim() int {
	return t.dim
}

// Basis returns a copy of the orthonormal null space basis N.
func (t *Transformation) Basis() data.Matrix {
	return t.basis.Copy()
}

// Translation returns a copy of the particular solution t.
func (t *Transformation) Translation() data.Vector {
	return t.trans.Copy()
}

// Project returns MN, the matrix of constraints acting on the sampling
// space.
func (t *Transformation) Project(m data.Matrix) (data.Matrix, error) {
	if m.Rows() == 0 {
		return data.Matrix{}, nil
	}
	res, err := m.Mul(t.basis)
	if err != nil {
		return nil, errors.Wrap(polyrun.ErrPrecondition, err.Error())
	}

	return res, nil
}

// SolveForParticularSolution returns b - At.
func (t *Transformation) SolveForParticularSolution(a data.Matrix, b data.Vector) (data.Vector, error) {
	if a.Rows() != len(b) {
		return nil, errors.Wrap(polyrun.ErrPrecondition, "number of rows of A and length of b differ")
	}
	if a.Rows() == 0 {
		return data.Vector{}, nil
	}
	at, err := a.MulVec(t.trans)
	if err != nil {
		return nil, errors.Wrap(polyrun.ErrPrecondition, err.Error())
	}

	return b.Sub(at), nil
}

// ProjectBack maps a point y of the sampling space to Ny + t.
func (t *Transformation) ProjectBack(y data.Vector) (data.Vector, error) {
	ny, err := t.basis.MulVec(y)
	if err != nil {
		return nil, errors.Wrap(polyrun.ErrPrecondition, err.Error())
	}

	return ny.Add(t.trans), nil
}

// ProjectPoint maps a point x satisfying the equalities to the point
// N^T(x - t) of the sampling space, so that ProjectBack returns x.
func (t *Transformation) ProjectPoint(x data.Vector) (data.Vector, error) {
	if len(x) != len(t.trans) {
		return nil, errors.Wrapf(polyrun.ErrPrecondition, "point should have %d coordinates", len(t.trans))
	}

	return t.basis.Transpose().MulVec(x.Sub(t.trans))
}

// Homogeneous returns the transformation in homogeneous coordinates,
// the (n+1) x (dim+1) matrix
//
//	[ N t ]
//	[ 0 1 ].
func (t *Transformation) Homogeneous() data.Matrix {
	n := len(t.trans)
	h := data.NewConstantMatrix(n+1, t.dim+1, 0)
	for i := 0; i < n; i++ {
		copy(h[i], t.basis[i])
		h[i][t.dim] = t.trans[i]
	}
	h[n][t.dim] = 1

	return h
}
