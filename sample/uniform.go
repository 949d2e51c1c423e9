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

package sample

import (
	"golang.org/x/exp/rand"
)

// UniformRange samples random values from the interval [min, max).
type UniformRange struct {
	min float64
	max float64
	rnd *rand.Rand
}

// NewUniformRange returns an instance of the UniformRange sampler.
// It accepts lower and upper bounds on the sampled values.
func NewUniformRange(min, max float64, rnd *rand.Rand) *UniformRange {
	return &UniformRange{
		min: min,
		max: max,
		rnd: rnd,
	}
}

// NewUniform returns an instance of the UniformRange sampler
// on the interval [0, max).
func NewUniform(max float64, rnd *rand.Rand) *UniformRange {
	return NewUniformRange(0, max, rnd)
}

// Sample samples random values from the interval [min, max).
func (u *UniformRange) Sample() float64 {
	return u.min + (u.max-u.min)*u.rnd.Float64()
}

// Positive samples random values from the interval (0, 1].
type Positive struct {
	rnd *rand.Rand
}

// NewPositive returns an instance of the Positive sampler.
func NewPositive(rnd *rand.Rand) *Positive {
	return &Positive{rnd: rnd}
}

// Sample samples random values from the interval (0, 1].
func (p *Positive) Sample() float64 {
	return 1 - p.rnd.Float64()
}
