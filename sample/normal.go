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

// Normal samples random values from the Normal (Gaussian)
// probability distribution.
type Normal struct {
	mean  float64
	sigma float64
	rnd   *rand.Rand
}

// NewNormal returns an instance of Normal sampler with the
// given mean and standard deviation.
func NewNormal(mean, sigma float64, rnd *rand.Rand) *Normal {
	return &Normal{
		mean:  mean,
		sigma: sigma,
		rnd:   rnd,
	}
}

// NewStandardNormal returns an instance of Normal sampler
// with mean 0 and standard deviation 1.
func NewStandardNormal(rnd *rand.Rand) *Normal {
	return NewNormal(0, 1, rnd)
}

// Sample samples a value from the Normal distribution.
func (n *Normal) Sample() float64 {
	return n.mean + n.sigma*n.rnd.NormFloat64()
}
