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

// Package runner drives random walks over a polytope given by
// a constraints.System.
//
// A PolytopeRunner reduces the system to the full-dimensional sampling
// space once and then serves any number of chains or neighborhood
// draws from a start point it keeps between calls. A SamplerRunner
// wraps the whole procedure, including the search of a start point,
// into a single call.
package runner

import (
	"github.com/fentec-project/polyrun"
	"github.com/fentec-project/polyrun/constraints"
	"github.com/fentec-project/polyrun/data"
	"github.com/fentec-project/polyrun/interior"
	"github.com/fentec-project/polyrun/solver"
	"github.com/fentec-project/polyrun/thinning"
	"github.com/fentec-project/polyrun/transform"
	"github.com/fentec-project/polyrun/walk"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

// Eps is the tolerance used in the construction of the sampling space
// and when checking start points.
const Eps = 1e-10

// redundancyMargin is how far below its right-hand side the maximum of
// a relaxed inequality must stay for the inequality to be redundant.
const redundancyMargin = 1e-10

// Consumer receives the samples. The sample is owned by the consumer.
// Returning an error stops the sampling.
type Consumer func(sample data.Vector) error

// PolytopeRunner samples a polytope with random walks starting from
// a point kept between the calls. It is not safe for concurrent use.
type PolytopeRunner struct {
	sys     *constraints.System
	tr      *transform.Transformation
	region  *walk.Region
	point   data.Vector
	scratch data.Vector
	log     *logging.Logger
}

// NewPolytopeRunner returns a runner for the polytope given by sys.
func NewPolytopeRunner(sys *constraints.System, opts ...Option) (*PolytopeRunner, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logging.MustGetLogger("runner")
	}

	tr, err := transform.New(sys.C, sys.D, sys.NumVariables(), Eps)
	if err != nil {
		return nil, errors.Wrap(err, "cannot reduce the equalities")
	}
	o.log.Debugf("sampling space has dimension %d (%d variables, %d equalities)",
		tr.Dim(), sys.NumVariables(), sys.NumEqualities())

	if sys.NumInequalities() == 0 {
		return nil, errors.Wrap(polyrun.ErrUnbounded, "there are no inequalities to bound the polytope")
	}
	a, err := tr.Project(sys.A)
	if err != nil {
		return nil, err
	}
	b, err := tr.SolveForParticularSolution(sys.A, sys.B)
	if err != nil {
		return nil, err
	}

	if o.remover != nil {
		a, b, err = removeRedundant(a, b, o.remover, o.log)
		if err != nil {
			return nil, err
		}
	}

	return &PolytopeRunner{
		sys:     sys,
		tr:      tr,
		region:  walk.NewRegion(a, b, !o.dense),
		scratch: make(data.Vector, tr.Dim()),
		log:     o.log,
	}, nil
}

// removeRedundant drops the rows i of Ay <= b whose maximum a_i*y,
// with b_i relaxed by 1, stays below b_i.
func removeRedundant(a data.Matrix, b data.Vector, s solver.Solver, log *logging.Logger) (data.Matrix, data.Vector, error) {
	var keptA data.Matrix
	var keptB data.Vector

	for i := range a {
		relaxed := b.Copy()
		relaxed[i]++
		sys, err := constraints.NewInequalities(a, relaxed)
		if err != nil {
			return nil, nil, err
		}

		res, err := s.Solve(solver.Maximize, a[i], sys)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "cannot check constraint %d for redundancy", i)
		}
		if !res.Feasible {
			return nil, nil, errors.Wrap(polyrun.ErrInfeasible, "system of inequalities is infeasible")
		}

		if res.Value-b[i] < -redundancyMargin {
			log.Debugf("constraint %d is redundant", i)
			continue
		}
		keptA = append(keptA, a[i])
		keptB = append(keptB, b[i])
	}
	log.Debugf("removed %d redundant constraints, %d left", a.Rows()-keptA.Rows(), keptA.Rows())

	return keptA, keptB, nil
}

// Dim returns the dimension of the sampling space.
func (r *PolytopeRunner) Dim() int {
	return r.tr.Dim()
}

// NumConstraints returns the number of inequalities bounding the
// sampling space.
func (r *PolytopeRunner) NumConstraints() int {
	return r.region.A.Rows()
}

// SetStartPoint sets the point x, which must satisfy the constraints,
// as the start of the following walks.
func (r *PolytopeRunner) SetStartPoint(x data.Vector) error {
	if !x.IsFinite() {
		return errors.Wrap(polyrun.ErrPrecondition, "start point has coordinates that are not finite")
	}
	ok, err := r.sys.Satisfies(x, Eps)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrap(polyrun.ErrPrecondition, "start point does not satisfy the constraints")
	}

	y, err := r.tr.ProjectPoint(x)
	if err != nil {
		return err
	}
	r.point = y
	r.log.Debugf("start point set to %v", x)

	return nil
}

// SetAnyStartPoint sets an interior point of the polytope found with s
// as the start of the following walks.
func (r *PolytopeRunner) SetAnyStartPoint(s solver.Solver, opts ...interior.Option) error {
	y, err := interior.Generate(r.region.A, r.region.B, s, opts...)
	if err != nil {
		return err
	}
	r.point = y
	if r.log.IsEnabledFor(logging.DEBUG) {
		x, _ := r.tr.ProjectBack(y)
		r.log.Debugf("start point set to interior point %v", x)
	}

	return nil
}

// StartPoint returns a copy of the current start point, or nil when it
// is not set.
func (r *PolytopeRunner) StartPoint() data.Vector {
	if r.point == nil {
		return nil
	}
	x, err := r.tr.ProjectBack(r.point)
	if err != nil {
		return nil
	}
	return x
}

// Chain makes a walk of count samples from the start point, with
// f.Factor steps between consecutive samples. The start point is moved
// to the last sample, so that the next call continues the chain.
//
// Boundedness is checked per step, along the direction the walk picks:
// a step fails with polyrun.ErrUnbounded only when the line through the
// current point along that direction leaves the polytope on no side.
// On an unbounded polytope a chain may thus return samples before such
// a direction is drawn. SetAnyStartPoint rejects unbounded polytopes
// up front.
func (r *PolytopeRunner) Chain(w walk.RandomWalk, f thinning.Function, count int) ([]data.Vector, error) {
	res := make([]data.Vector, 0, max(count, 0))
	err := r.ChainTo(w, f, count, collect(&res))
	return res, err
}

// ChainTo is like Chain but hands the samples to consumer.
func (r *PolytopeRunner) ChainTo(w walk.RandomWalk, f thinning.Function, count int, consumer Consumer) error {
	if err := r.check(count); err != nil {
		return err
	}
	steps := f.Factor(r.NumConstraints(), r.Dim())
	if steps < 1 {
		steps = 1
	}

	for i := 0; i < count; i++ {
		for j := 0; j < steps; j++ {
			if err := w.Next(r.region, r.scratch, r.point, r.point); err != nil {
				return errors.Wrapf(err, "error in step %d of sample %d", j, i)
			}
		}
		if err := r.emit(r.point, consumer); err != nil {
			return err
		}
	}

	return nil
}

// Neighborhood returns count samples, each a single step of the walk
// away from the start point. The start point is not changed.
func (r *PolytopeRunner) Neighborhood(w walk.RandomWalk, count int) ([]data.Vector, error) {
	res := make([]data.Vector, 0, max(count, 0))
	err := r.NeighborhoodTo(w, count, collect(&res))
	return res, err
}

// NeighborhoodTo is like Neighborhood but hands the samples to
// consumer.
func (r *PolytopeRunner) NeighborhoodTo(w walk.RandomWalk, count int, consumer Consumer) error {
	if err := r.check(count); err != nil {
		return err
	}

	neighbour := make(data.Vector, r.Dim())
	for i := 0; i < count; i++ {
		if err := w.Next(r.region, r.scratch, r.point, neighbour); err != nil {
			return errors.Wrapf(err, "error in sample %d", i)
		}
		if err := r.emit(neighbour, consumer); err != nil {
			return err
		}
	}

	return nil
}

func (r *PolytopeRunner) check(count int) error {
	if count <= 0 {
		return errors.Wrap(polyrun.ErrPrecondition, "number of samples has to be positive")
	}
	if r.point == nil {
		return polyrun.ErrNoStartPoint
	}
	return nil
}

func (r *PolytopeRunner) emit(y data.Vector, consumer Consumer) error {
	x, err := r.tr.ProjectBack(y)
	if err != nil {
		return err
	}
	return consumer(x)
}

func collect(res *[]data.Vector) Consumer {
	return func(sample data.Vector) error {
		*res = append(*res, sample)
		return nil
	}
}
