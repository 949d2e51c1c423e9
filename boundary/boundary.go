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

// Package boundary computes the extent of the segment obtained by
// intersecting a line with a polytope Ax <= b.
package boundary

import (
	"math"

	"github.com/fentec-project/polyrun"
	"github.com/fentec-project/polyrun/data"
	"github.com/pkg/errors"
)

// Distance returns the distances from x to the boundary of the polytope
// Ax <= b along direction d. The line x + t*d lies inside the polytope
// for t in [bg, ed]; ed is +Inf and bg is -Inf when the line is not
// bounded in the respective direction.
//
// Slacks b_i - (Ax)_i within eps of zero are treated as zero, smaller
// slacks mean that x lies outside the polytope and an error is returned.
// Rows whose product with d lies within eps of zero are treated as
// parallel to d and do not bound the segment.
//
// If nonZero is not nil, nonZero[i] lists the indices of the non-zero
// elements of the i-th row of A, and only those are visited.
func Distance(a data.Matrix, b, d, x data.Vector, eps float64, nonZero [][]int) (ed, bg float64, err error) {
	if len(b) != a.Rows() {
		return 0, 0, errors.Wrap(polyrun.ErrPrecondition, "number of rows of A and length of b differ")
	}
	if len(d) != len(x) || (a.Rows() > 0 && !a.CheckDims(len(b), len(x))) {
		return 0, 0, errors.Wrap(polyrun.ErrPrecondition, "dimensions of A, d and x do not match")
	}
	if nonZero != nil && len(nonZero) != a.Rows() {
		return 0, 0, errors.Wrap(polyrun.ErrPrecondition, "index hints do not match the rows of A")
	}

	ed = math.Inf(1)
	bg = math.Inf(-1)

	for i, row := range a {
		var ad, ax float64
		if nonZero != nil {
			for _, j := range nonZero[i] {
				ad += row[j] * d[j]
				ax += row[j] * x[j]
			}
		} else {
			for j, aij := range row {
				ad += aij * d[j]
				ax += aij * x[j]
			}
		}

		slack := b[i] - ax
		if math.Abs(slack) <= eps {
			slack = 0
		} else if slack < 0 {
			return 0, 0, errors.Wrapf(polyrun.ErrPrecondition,
				"point violates constraint %d by %g", i, -slack)
		}

		if ad > eps {
			ed = math.Min(ed, slack/ad)
		} else if ad < -eps {
			bg = math.Max(bg, slack/ad)
		}
	}

	return ed, bg, nil
}

// NonZeroIndices returns the index hints for Distance: for every row
// of a the indices of its non-zero elements.
func NonZeroIndices(a data.Matrix) [][]int {
	return a.NonZeroIndices()
}

// Satisfied reports whether Ax <= b + eps holds in every row.
func Satisfied(a data.Matrix, x, b data.Vector, eps float64) bool {
	ax, err := a.MulVec(x)
	if err != nil || len(ax) != len(b) {
		return false
	}
	for i, v := range ax {
		if v > b[i]+eps {
			return false
		}
	}

	return true
}
