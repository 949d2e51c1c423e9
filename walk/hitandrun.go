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
	"github.com/fentec-project/polyrun/data"
	"github.com/fentec-project/polyrun/sample"
	"golang.org/x/exp/rand"
)

// HitAndRun moves to a point chosen uniformly from the segment through
// the current point along a direction uniform on the unit sphere.
type HitAndRun struct {
	rnd    *rand.Rand
	sphere *sample.UnitNSphere
}

// NewHitAndRun returns a Hit-and-Run walk drawing from rnd.
func NewHitAndRun(rnd *rand.Rand) *HitAndRun {
	return &HitAndRun{
		rnd:    rnd,
		sphere: sample.NewUnitNSphere(rnd),
	}
}

// Direction implements Proposal.
func (h *HitAndRun) Direction(dst data.Vector) {
	h.sphere.Fill(dst)
}

// Step implements Proposal.
func (h *HitAndRun) Step(bg, ed float64, dim int) float64 {
	return bg + (ed-bg)*h.rnd.Float64()
}

// Next implements RandomWalk.
func (h *HitAndRun) Next(region *Region, scratch, from, to data.Vector) error {
	return step(h, region, scratch, from, to)
}
