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

package polyrun

import (
	"fmt"

	"github.com/pkg/errors"
)

var regionStr = "sampling region"

// ErrPrecondition is returned for malformed input: mismatched dimensions,
// non-positive counts or parameters, start points outside the polytope.
var ErrPrecondition = errors.New("input data is not of the proper form")

// ErrUnbounded is returned when the polytope (or the auxiliary linear
// program) is unbounded.
var ErrUnbounded = errors.New(fmt.Sprintf("%s is unbounded", regionStr))

// ErrNotFullDimensional is returned when the feasible segment along a
// direction has no length, i.e. the polytope has an empty interior
// in the sampling space.
var ErrNotFullDimensional = errors.New(fmt.Sprintf("%s is not full-dimensional", regionStr))

// ErrInfeasible is returned when the polytope is empty or has no
// interior point.
var ErrInfeasible = errors.New(fmt.Sprintf("%s is infeasible", regionStr))

// ErrAccuracy is returned when a computed slack falls outside the
// tolerance by more than floating-point noise can explain.
var ErrAccuracy = errors.New("numerical accuracy lost")

// ErrSinglePoint is returned when the equalities Cx = d pin every
// variable, leaving no space to sample in.
var ErrSinglePoint = &kindError{
	msg:  "system of equations has exactly one solution",
	kind: ErrNotFullDimensional,
}

// ErrNoStartPoint is returned when sampling is requested before a start
// point was set.
var ErrNoStartPoint = &kindError{
	msg:  "start point is not set",
	kind: ErrPrecondition,
}

// kindError is a sentinel that also matches a broader error kind.
type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string {
	return e.msg
}

func (e *kindError) Is(target error) bool {
	return target == e.kind
}

// SlackError reports an interior point search whose optimal slack is
// not positive. It matches ErrInfeasible.
type SlackError struct {
	Slack float64
}

func (e *SlackError) Error() string {
	return fmt.Sprintf("cannot find interior point, the %s is infeasible or degenerated to a point (slack = %g)",
		regionStr, e.Slack)
}

func (e *SlackError) Is(target error) bool {
	return target == ErrInfeasible
}
