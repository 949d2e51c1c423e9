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

// Package solver defines the linear programming contract used to find
// interior points and redundant constraints, and ships an
// implementation on top of the gonum simplex method.
package solver

//go:generate mockgen -source solver.go -destination solver_mock.go -package solver

import (
	"github.com/fentec-project/polyrun/constraints"
	"github.com/fentec-project/polyrun/data"
)

// Direction of optimization.
type Direction int

const (
	Maximize Direction = iota
	Minimize
)

func (d Direction) String() string {
	if d == Minimize {
		return "minimize"
	}
	return "maximize"
}

// Result is the outcome of a linear program. Value and Solution are
// set only when Feasible is true.
type Result struct {
	Feasible bool
	Value    float64
	Solution data.Vector
}

// Solver solves general linear programs, where variables are free
// (allowed to be negative). It optimizes the objective under the
// constraints of sys. An unbounded program yields an error wrapping
// polyrun.ErrUnbounded, an infeasible one a Result with Feasible unset.
type Solver interface {
	Solve(direction Direction, objective data.Vector, sys *constraints.System) (Result, error)
}
