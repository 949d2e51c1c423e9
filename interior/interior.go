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

// Package interior finds a point in the interior of a polytope.
//
// The point is obtained from the auxiliary linear program over the
// variables (x, e, s)
//
//	maximize   s
//	subject to Ax + e = b
//	           s <= w_i e_i  for every row i,
//
// which pushes x away from every facet. The weights w_i are 1 by default
// or drawn from (0, 1] to obtain a randomized interior point.
package interior

import (
	"github.com/fentec-project/polyrun"
	"github.com/fentec-project/polyrun/constraints"
	"github.com/fentec-project/polyrun/data"
	"github.com/fentec-project/polyrun/sample"
	"github.com/fentec-project/polyrun/solver"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// minSlack is the smallest optimal slack accepted as a strictly
// interior point.
const minSlack = 1e-10

type options struct {
	weights sample.Sampler
}

// Option configures Generate.
type Option func(*options)

// WithRandomization makes Generate weigh the slacks of the constraints
// with random values from (0, 1] drawn from rnd, so that repeated calls
// return different interior points.
func WithRandomization(rnd *rand.Rand) Option {
	return func(o *options) {
		o.weights = sample.NewPositive(rnd)
	}
}

// Generate returns a point x with Ax < b, solving the auxiliary program
// with s. It returns an error wrapping polyrun.ErrUnbounded if the
// auxiliary program is unbounded and one matching polyrun.ErrInfeasible
// (possibly a *polyrun.SlackError) if the polytope has no interior point.
func Generate(a data.Matrix, b data.Vector, s solver.Solver, opts ...Option) (data.Vector, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	m := a.Rows()
	if m == 0 {
		return nil, errors.Wrap(polyrun.ErrUnbounded, "there are no inequalities to bound the polytope")
	}
	if len(b) != m {
		return nil, errors.Wrap(polyrun.ErrPrecondition, "number of rows of A and length of b differ")
	}
	n := a.Cols()
	if n == 0 {
		return nil, errors.Wrap(polyrun.ErrPrecondition, "matrix A has no columns")
	}
	for _, row := range a {
		if len(row) != n {
			return nil, errors.Wrap(polyrun.ErrPrecondition, "all rows of A should be of equal length")
		}
	}

	aux, err := auxiliarySystem(a, b, o.weights)
	if err != nil {
		return nil, err
	}

	objective := data.NewConstantVector(n+m+1, 0)
	objective[n+m] = 1

	res, err := s.Solve(solver.Maximize, objective, aux)
	if err != nil {
		if errors.Is(err, polyrun.ErrUnbounded) {
			return nil, errors.Wrap(err, "cannot find interior point")
		}
		return nil, errors.Wrap(err, "error while solving the auxiliary program")
	}
	if !res.Feasible {
		return nil, errors.Wrap(polyrun.ErrInfeasible, "auxiliary program is infeasible")
	}
	if len(res.Solution) != n+m+1 {
		return nil, errors.Wrapf(polyrun.ErrPrecondition,
			"solver returned %d values, expected %d", len(res.Solution), n+m+1)
	}

	if slack := res.Solution[n+m]; slack <= minSlack {
		return nil, &polyrun.SlackError{Slack: slack}
	}

	return res.Solution[:n].Copy(), nil
}

// auxiliarySystem builds the constraints of the auxiliary program over
// the n+m+1 variables (x, e, s).
func auxiliarySystem(a data.Matrix, b data.Vector, weights sample.Sampler) (*constraints.System, error) {
	m, n := a.Rows(), a.Cols()
	vars := n + m + 1

	w := data.NewConstantVector(m, 1)
	if weights != nil {
		w = data.NewRandomVector(m, weights)
	}

	eq := data.NewConstantMatrix(m, vars, 0)
	ineq := data.NewConstantMatrix(m, vars, 0)
	for i := 0; i < m; i++ {
		copy(eq[i], a[i])
		eq[i][n+i] = 1

		ineq[i][n+i] = -w[i]
		ineq[i][n+m] = 1
	}

	return constraints.NewSystem(ineq, data.NewConstantVector(m, 0), eq, b)
}
