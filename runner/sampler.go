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
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// SamplerRunner samples a polytope in a single call: it reduces the
// system, finds an interior start point and runs a chain from it.
type SamplerRunner struct {
	walk     walk.RandomWalk
	thinning thinning.Function
	solver   solver.Solver
	rnd      *rand.Rand
	opts     []Option
}

// NewSamplerRunner returns a SamplerRunner chaining samples with w and
// f and finding start points with s. The generator rnd randomizes the
// start points when requested.
func NewSamplerRunner(w walk.RandomWalk, f thinning.Function, s solver.Solver, rnd *rand.Rand, opts ...Option) *SamplerRunner {
	return &SamplerRunner{
		walk:     w,
		thinning: f,
		solver:   s,
		rnd:      rnd,
		opts:     opts,
	}
}

// Sample returns count samples from the polytope given by sys. If
// randomizedStart is set, the chain starts from a randomized interior
// point. When the equalities of sys have a single solution, it is
// returned count times.
func (s *SamplerRunner) Sample(sys *constraints.System, count int, randomizedStart bool) ([]data.Vector, error) {
	res := make([]data.Vector, 0, max(count, 0))
	err := s.SampleTo(sys, count, randomizedStart, collect(&res))
	return res, err
}

// SampleTo is like Sample but hands the samples to consumer.
func (s *SamplerRunner) SampleTo(sys *constraints.System, count int, randomizedStart bool, consumer Consumer) error {
	if count <= 0 {
		return errors.Wrap(polyrun.ErrPrecondition, "number of samples has to be positive")
	}

	r, err := NewPolytopeRunner(sys, s.opts...)
	if errors.Is(err, polyrun.ErrSinglePoint) {
		return s.singlePoint(sys, count, consumer)
	}
	if err != nil {
		return err
	}

	var opts []interior.Option
	if randomizedStart {
		opts = append(opts, interior.WithRandomization(s.rnd))
	}
	if err := r.SetAnyStartPoint(s.solver, opts...); err != nil {
		return err
	}

	return r.ChainTo(s.walk, s.thinning, count, consumer)
}

func (s *SamplerRunner) singlePoint(sys *constraints.System, count int, consumer Consumer) error {
	x, err := transform.ParticularSolution(sys.C, sys.D, Eps)
	if err != nil {
		return err
	}
	ok, err := sys.Satisfies(x, Eps)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrap(polyrun.ErrInfeasible, "the only solution of the equalities violates the inequalities")
	}

	for i := 0; i < count; i++ {
		if err := consumer(x.Copy()); err != nil {
			return err
		}
	}

	return nil
}
