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

package solver

import (
	"math"

	"github.com/fentec-project/polyrun"
	"github.com/fentec-project/polyrun/constraints"
	"github.com/fentec-project/polyrun/data"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// DefaultTolerance is used by NewSimplex for non-positive tolerances.
const DefaultTolerance = 1e-10

// Simplex solves linear programs with the simplex method of
// gonum.org/v1/gonum/optimize/convex/lp.
type Simplex struct {
	tol float64
}

// NewSimplex returns a Simplex solver with the given tolerance.
func NewSimplex(tol float64) *Simplex {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	return &Simplex{tol: tol}
}

// Solve implements Solver.
//
// The program is converted to the standard form expected by lp.Simplex.
// Since lp.Simplex rejects all-zero rows and columns, such rows and
// variables are removed first: a zero row is either trivially satisfied
// or makes the program infeasible, a variable appearing in no
// constraint is fixed to 0 or, if it has a non-zero objective
// coefficient, makes a feasible program unbounded.
func (s *Simplex) Solve(direction Direction, objective data.Vector, sys *constraints.System) (Result, error) {
	n := sys.NumVariables()
	if len(objective) != n {
		return Result{}, errors.Wrapf(polyrun.ErrPrecondition,
			"objective has %d coefficients, expected %d", len(objective), n)
	}

	c := objective.Copy()
	if direction == Maximize {
		c = c.MulScalar(-1)
	}

	var cols []int
	free := false
	for j := 0; j < n; j++ {
		if columnIsZero(sys.A, j) && columnIsZero(sys.C, j) {
			if math.Abs(c[j]) > s.tol {
				free = true
			}
			continue
		}
		cols = append(cols, j)
	}

	g, h, ok := s.reduce(sys.A, sys.B, cols, func(v float64) bool { return v >= -s.tol })
	if !ok {
		return Result{Feasible: false}, nil
	}
	a, b, ok := s.reduce(sys.C, sys.D, cols, func(v float64) bool { return math.Abs(v) <= s.tol })
	if !ok {
		return Result{Feasible: false}, nil
	}

	x := data.NewConstantVector(n, 0)
	if len(h)+len(b) > 0 {
		nv := len(cols)
		if len(b) > 2*nv {
			return Result{}, errors.Wrap(polyrun.ErrPrecondition, "more equalities than the simplex method can handle")
		}

		reduced := make([]float64, nv)
		for k, j := range cols {
			reduced[k] = c[j]
		}

		cNew, aNew, bNew := lp.Convert(reduced, g, h, a, b)
		_, opt, err := lp.Simplex(cNew, aNew, bNew, s.tol, nil)
		switch {
		case errors.Is(err, lp.ErrInfeasible):
			return Result{Feasible: false}, nil
		case errors.Is(err, lp.ErrUnbounded):
			return Result{}, errors.Wrap(polyrun.ErrUnbounded, "linear program is unbounded")
		case err != nil:
			return Result{}, errors.Wrap(polyrun.ErrAccuracy, err.Error())
		}

		for k, j := range cols {
			x[j] = opt[k] - opt[nv+k]
		}
	}

	if free {
		return Result{}, errors.Wrap(polyrun.ErrUnbounded, "linear program is unbounded")
	}

	value, err := objective.Dot(x)
	if err != nil {
		return Result{}, errors.Wrap(polyrun.ErrPrecondition, err.Error())
	}

	return Result{
		Feasible: true,
		Value:    value,
		Solution: x,
	}, nil
}

// reduce keeps the non-zero rows of m restricted to cols. Zero rows are
// dropped if holds accepts their right-hand side, otherwise ok is false.
// The returned matrix is nil when no row is left.
func (s *Simplex) reduce(m data.Matrix, rhs data.Vector, cols []int, holds func(float64) bool) (mat.Matrix, []float64, bool) {
	var rows []int
	for i, row := range m {
		zero := true
		for _, j := range cols {
			if row[j] != 0 {
				zero = false
				break
			}
		}
		if zero {
			if !holds(rhs[i]) {
				return nil, nil, false
			}
			continue
		}
		rows = append(rows, i)
	}
	if len(rows) == 0 {
		return nil, nil, true
	}

	d := mat.NewDense(len(rows), len(cols), nil)
	r := make([]float64, len(rows))
	for k, i := range rows {
		for l, j := range cols {
			d.Set(k, l, m[i][j])
		}
		r[k] = rhs[i]
	}

	return d, r, true
}

func columnIsZero(m data.Matrix, j int) bool {
	for _, row := range m {
		if row[j] != 0 {
			return false
		}
	}
	return true
}
