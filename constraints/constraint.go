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

// Directions of a constraint.
const (
	LessEq    = "<="
	GreaterEq = ">="
	Eq        = "="
)

// Constraint is a single linear constraint Lhs*x Direction Rhs.
type Constraint struct {
	Lhs       data.Vector
	Direction string
	Rhs       float64
}

// NewFromConstraints builds a system from a list of constraints.
// Constraints with direction ">=" are negated into A, those with
// direction "=" are moved into C.
func NewFromConstraints(cons []Constraint) (*System, error) {
	if len(cons) == 0 {
		return nil, errors.Wrap(polyrun.ErrPrecondition, "constraints cannot be empty")
	}

	lhs := make(data.Matrix, len(cons))
	dir := make([]string, len(cons))
	rhs := make(data.Vector, len(cons))
	for i, c := range cons {
		lhs[i] = c.Lhs
		dir[i] = c.Direction
		rhs[i] = c.Rhs
	}

	return NewFromRows(lhs, dir, rhs)
}

// NewFromRows builds a system from the rows lhs[i]*x dir[i] rhs[i].
func NewFromRows(lhs data.Matrix, dir []string, rhs data.Vector) (*System, error) {
	if lhs.Rows() == 0 || lhs.Cols() == 0 {
		return nil, errors.Wrap(polyrun.ErrPrecondition, "lhs cannot have 0 rows or 0 columns")
	}
	if len(dir) != lhs.Rows() {
		return nil, errors.Wrap(polyrun.ErrPrecondition, "length of dir has to be equal to the number of rows of lhs")
	}
	if len(rhs) != lhs.Rows() {
		return nil, errors.Wrap(polyrun.ErrPrecondition, "length of rhs has to be equal to the number of rows of lhs")
	}
	if _, err := data.NewMatrix(lhs); err != nil {
		return nil, errors.Wrap(polyrun.ErrPrecondition, err.Error())
	}

	var a, c data.Matrix
	var b, d data.Vector
	for i, row := range lhs {
		switch dir[i] {
		case LessEq:
			a = append(a, row.Copy())
			b = append(b, rhs[i])
		case GreaterEq:
			a = append(a, row.MulScalar(-1))
			b = append(b, -rhs[i])
		case Eq:
			c = append(c, row.Copy())
			d = append(d, rhs[i])
		default:
			return nil, errors.Wrapf(polyrun.ErrPrecondition,
				"wrong direction symbol '%s', only '<=', '>=' and '=' are acceptable", dir[i])
		}
	}

	return NewSystem(a, b, c, d)
}
