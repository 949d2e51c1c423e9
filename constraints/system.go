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

package constraints

import (
	"github.com/fentec-project/polyrun"
	"github.com/fentec-project/polyrun/data"
	"github.com/pkg/errors"
)

// System represents a system of linear constraints
//
//	Ax <= b,
//	Cx = d.
//
// Every row of A and C has the same number of columns. A system must
// not be modified once it is constructed.
type System struct {
	A data.Matrix
	B data.Vector
	C data.Matrix
	D data.Vector

	vars int
}

// NewSystem returns a system built from the inequalities Ax <= b and the
// equalities Cx = d. Either A or C may be empty, but not both.
// The arguments are copied.
func NewSystem(a data.Matrix, b data.Vector, c data.Matrix, d data.Vector) (*System, error) {
	var n int
	switch {
	case a.Rows() > 0:
		n = a.Cols()
	case c.Rows() > 0:
		n = c.Cols()
	default:
		return nil, errors.Wrap(polyrun.ErrPrecondition, "matrices A and C are empty")
	}
	if n == 0 {
		return nil, errors.Wrap(polyrun.ErrPrecondition, "constraints have no variables")
	}

	if a.Rows() != len(b) {
		return nil, errors.Wrapf(polyrun.ErrPrecondition,
			"length of b (%d) has to be equal to the number of rows of A (%d)", len(b), a.Rows())
	}
	if c.Rows() != len(d) {
		return nil, errors.Wrapf(polyrun.ErrPrecondition,
			"length of d (%d) has to be equal to the number of rows of C (%d)", len(d), c.Rows())
	}
	for _, m := range []data.Matrix{a, c} {
		for _, row := range m {
			if len(row) != n {
				return nil, errors.Wrap(polyrun.ErrPrecondition, "all rows of A and C should be of equal length")
			}
		}
	}

	return &System{
		A:    a.Copy(),
		B:    b.Copy(),
		C:    c.Copy(),
		D:    d.Copy(),
		vars: n,
	}, nil
}

// NewInequalities returns a system with inequalities Ax <= b only.
func NewInequalities(a data.Matrix, b data.Vector) (*System, error) {
	return NewSystem(a, b, nil, nil)
}

// NumVariables returns the number of variables n.
func (s *System) NumVariables() int {
	return s.vars
}

// NumInequalities returns the number of rows of A.
func (s *System) NumInequalities() int {
	return s.A.Rows()
}

// NumEqualities returns the number of rows of C.
func (s *System) NumEqualities() int {
	return s.C.Rows()
}

// Satisfies reports whether x satisfies Ax <= b + eps and |Cx - d| <= eps
// in every row. It returns an error if x has a wrong length.
func (s *System) Satisfies(x data.Vector, eps float64) (bool, error) {
	if len(x) != s.vars {
		return false, errors.Wrapf(polyrun.ErrPrecondition,
			"point has %d coordinates, expected %d", len(x), s.vars)
	}

	ax, err := s.A.MulVec(x)
	if err != nil {
		return false, err
	}
	for i, v := range ax {
		if v > s.B[i]+eps {
			return false, nil
		}
	}

	cx, err := s.C.MulVec(x)
	if err != nil {
		return false, err
	}
	for i, v := range cx {
		if v-s.D[i] > eps || s.D[i]-v > eps {
			return false, nil
		}
	}

	return true, nil
}
