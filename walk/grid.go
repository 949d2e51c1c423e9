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
	"github.com/fentec-project/polyrun"
	"github.com/fentec-project/polyrun/data"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// GridWalk moves by a fixed spacing along one of the 2n axis
// directions, or stays when the move would leave the polytope.
type GridWalk struct {
	rnd     *rand.Rand
	spacing float64
}

// NewGridWalk returns a Grid Walk with the given spacing drawing
// from rnd.
func NewGridWalk(rnd *rand.Rand, spacing float64) (*GridWalk, error) {
	if !(spacing > 0) {
		return nil, errors.Wrap(polyrun.ErrPrecondition, "grid spacing has to be positive")
	}

	return &GridWalk{rnd: rnd, spacing: spacing}, nil
}

// Direction implements Proposal. The direction is e_i or -e_i, each of
// the 2n choices being equally likely.
func (w *GridWalk) Direction(dst data.Vector) {
	for i := range dst {
		dst[i] = 0
	}
	if len(dst) == 0 {
		return
	}

	// index/2 is the axis, the parity of index the sign
	index := w.rnd.Intn(2 * len(dst))
	if index%2 == 0 {
		dst[index/2] = 1
	} else {
		dst[index/2] = -1
	}
}

// Step implements Proposal.
func (w *GridWalk) Step(bg, ed float64, dim int) float64 {
	if w.spacing > ed {
		return 0
	}
	return w.spacing
}

// Next implements RandomWalk.
func (w *GridWalk) Next(region *Region, scratch, from, to data.Vector) error {
	return step(w, region, scratch, from, to)
}
