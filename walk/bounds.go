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
	"strings"

	"github.com/fentec-project/polyrun"
	"github.com/pkg/errors"
)

// OutOfBounds tells a walk what to do with a step that would leave
// the polytope.
type OutOfBounds int

const (
	// Stay keeps the current point.
	Stay OutOfBounds = iota
	// Crop shortens the step to end on the boundary.
	Crop
)

func (o OutOfBounds) String() string {
	switch o {
	case Stay:
		return "stay"
	case Crop:
		return "crop"
	}
	return "unknown"
}

// ParseOutOfBounds returns the policy named s, "stay" or "crop".
func ParseOutOfBounds(s string) (OutOfBounds, error) {
	switch strings.ToLower(s) {
	case "stay":
		return Stay, nil
	case "crop":
		return Crop, nil
	}
	return Stay, errors.Wrapf(polyrun.ErrPrecondition, "unknown out of bounds behaviour '%s'", s)
}

func (o OutOfBounds) valid() bool {
	return o == Stay || o == Crop
}

// limit applies the policy to a step of length t along a segment
// ending at ed.
func (o OutOfBounds) limit(t, ed float64) float64 {
	if t <= ed {
		return t
	}
	if o == Crop {
		return ed
	}
	return 0
}
