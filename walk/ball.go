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

package walk

import (
	"math"

	"github.com/fentec-project/polyrun"
	"github.com/fentec-project/polyrun/data"
	"github.com/fentec-project/polyrun/sample"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// BallWalk moves to a point chosen uniformly from the ball of a given
// radius around the current point.
type BallWalk struct {
	rnd    *rand.Rand
	sphere *sample.UnitNSphere
	radius float64
	policy OutOfBounds
}

// NewBallWalk returns a Ball Walk with radius r drawing from rnd.
func NewBallWalk(rnd *rand.Rand, r float64, policy OutOfBounds) (*BallWalk, error) {
	if !(r > 0) {
		return nil, errors.Wrap(polyrun.ErrPrecondition, "radius has to be positive")
	}
	if !policy.valid() {
		return nil, errors.Wrap(polyrun.ErrPrecondition, "not supported out of bounds behaviour")
	}

	return &BallWalk{
		rnd:    rnd,
		sphere: sample.NewUnitNSphere(rnd),
		radius: r,
		policy: policy,
	}, nil
}

// Direction implements Proposal.
func (w *BallWalk) Direction(dst data.Vector) {
	w.sphere.Fill(dst)
}

// Step implements Proposal. The length r*U^(1/dim) of a step makes the
// new point uniform in the ball.
func (w *BallWalk) Step(bg, ed float64, dim int) float64 {
	t := w.radius * math.Pow(w.rnd.Float64(), 1/float64(dim))
	return w.policy.limit(t, ed)
}

// Next implements RandomWalk.
func (w *BallWalk) Next(region *Region, scratch, from, to data.Vector) error {
	return step(w, region, scratch, from, to)
}

// SphereWalk moves to a point chosen uniformly from the sphere of
// a given radius around the current point.
type SphereWalk struct {
	sphere *sample.UnitNSphere
	radius float64
	policy OutOfBounds
}

// NewSphereWalk returns a Sphere Walk with radius r drawing from rnd.
func NewSphereWalk(rnd *rand.Rand, r float64, policy OutOfBounds) (*SphereWalk, error) {
	if !(r > 0) {
		return nil, errors.Wrap(polyrun.ErrPrecondition, "radius has to be positive")
	}
	if !policy.valid() {
		return nil, errors.Wrap(polyrun.ErrPrecondition, "not supported out of bounds behaviour")
	}

	return &SphereWalk{
		sphere: sample.NewUnitNSphere(rnd),
		radius: r,
		policy: policy,
	}, nil
}

// Direction implements Proposal.
func (w *SphereWalk) Direction(dst data.Vector) {
	w.sphere.Fill(dst)
}

// Step implements Proposal.
func (w *SphereWalk) Step(bg, ed float64, dim int) float64 {
	return w.policy.limit(w.radius, ed)
}

// Next implements RandomWalk.
func (w *SphereWalk) Next(region *Region, scratch, from, to data.Vector) error {
	return step(w, region, scratch, from, to)
}
