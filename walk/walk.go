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

// Package walk implements random walks that move a point inside a
// polytope Ax <= b: Hit-and-Run, Ball Walk, Sphere Walk and Grid Walk.
//
// Every walk makes a step in three stages. A direction is proposed, the
// segment of the line through the current point along that direction
// is intersected with the polytope, and a step length within (or
// beyond) the segment is chosen. The first and the last stage are
// specific to a walk and given by a Proposal; the Stepper takes care of
// the rest.
package walk

import (
	"math"

	"github.com/fentec-project/polyrun"
	"github.com/fentec-project/polyrun/boundary"
	"github.com/fentec-project/polyrun/data"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Eps is the tolerance used when computing the segment along
// a direction.
const Eps = 1e-10

// accuracy bounds the rounding error accepted on the extents of
// a segment.
const accuracy = 1e-10

// Region is the polytope Ax <= b in which a walk moves. NonZero
// optionally holds the indices of the non-zero elements of each row of
// A, see boundary.Distance.
type Region struct {
	A       data.Matrix
	B       data.Vector
	NonZero [][]int
}

// NewRegion returns the region Ax <= b. If sparse is set, the indices of
// the non-zero elements of A are precomputed.
func NewRegion(a data.Matrix, b data.Vector, sparse bool) *Region {
	r := &Region{A: a, B: b}
	if sparse {
		r.NonZero = boundary.NonZeroIndices(a)
	}
	return r
}

// Dim returns the dimension of the space the region lives in.
func (r *Region) Dim() int {
	return r.A.Cols()
}

// RandomWalk makes a single step of a walk in a region.
type RandomWalk interface {
	// Next moves from point from and writes the new point into to,
	// which may be the same vector as from. The scratch vector is used
	// as a buffer; from, to and scratch must have Dim() elements.
	Next(region *Region, scratch, from, to data.Vector) error
}

// Proposal holds the parts of a walk specific to it.
type Proposal interface {
	// Direction fills dst with the direction of the next step.
	Direction(dst data.Vector)
	// Step returns the length of a step along the direction, given the
	// extents bg <= 0 <= ed of the segment and the dimension.
	Step(bg, ed float64, dim int) float64
}

// Stepper is a RandomWalk driven by a Proposal.
type Stepper struct {
	Proposal
}

// Next implements RandomWalk.
func (s Stepper) Next(region *Region, scratch, from, to data.Vector) error {
	return step(s.Proposal, region, scratch, from, to)
}

func step(p Proposal, region *Region, scratch, from, to data.Vector) error {
	dim := region.Dim()
	if len(from) != dim || len(to) != dim || len(scratch) != dim {
		return errors.Wrapf(polyrun.ErrPrecondition, "points and buffer should have %d elements", dim)
	}

	p.Direction(scratch)

	ed, bg, err := boundary.Distance(region.A, region.B, scratch, from, Eps, region.NonZero)
	if err != nil {
		return err
	}

	if math.IsInf(ed, 0) || math.IsInf(bg, 0) {
		return errors.Wrap(polyrun.ErrUnbounded, "cannot make a step")
	}

	if bg > 0 {
		if bg > accuracy {
			return errors.Wrapf(polyrun.ErrAccuracy, "segment starts %g after the current point", bg)
		}
		bg = 0
	}
	if ed < 0 {
		if ed < -accuracy {
			return errors.Wrapf(polyrun.ErrAccuracy, "segment ends %g before the current point", -ed)
		}
		ed = 0
	}
	if bg >= ed {
		return errors.Wrap(polyrun.ErrNotFullDimensional, "segment along the direction has no length")
	}

	t := p.Step(bg, ed, dim)
	floats.AddScaledTo(to, from, t, scratch)

	return nil
}
