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
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

// UnitNSphere picks points uniformly distributed on the unit
// (n-1)-sphere centered at the origin.
type UnitNSphere struct {
	normal *Normal
}

// NewUnitNSphere returns an instance of UnitNSphere drawing from rnd.
func NewUnitNSphere(rnd *rand.Rand) *UnitNSphere {
	return &UnitNSphere{normal: NewStandardNormal(rnd)}
}

// Fill fills dst with a random point of the unit sphere of dimension
// len(dst)-1. Every coordinate is sampled from the standard normal
// distribution and the vector is then normalized (Marsaglia's method).
// An empty dst is left untouched; a single coordinate becomes -1 or 1.
func (s *UnitNSphere) Fill(dst []float64) {
	if len(dst) == 0 {
		return
	}

	for {
		for i := range dst {
			dst[i] = s.normal.Sample()
		}
		norm := floats.Norm(dst, 2)
		// all-zero draws have probability zero but cannot be normalized
		if norm > 0 && !math.IsInf(norm, 0) {
			floats.Scale(1/norm, dst)
			return
		}
	}
}

// FillHomogeneous fills all but the last element of dst with a random
// point of the unit sphere and sets the last element to 0, so that dst
// is a direction in homogeneous coordinates.
func (s *UnitNSphere) FillHomogeneous(dst []float64) {
	if len(dst) == 0 {
		return
	}
	s.Fill(dst[:len(dst)-1])
	dst[len(dst)-1] = 0
}
