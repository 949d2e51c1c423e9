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

package constraints

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/fentec-project/polyrun"
	"github.com/fentec-project/polyrun/data"
	"github.com/pkg/errors"
)

// commentPrefix starts a line that is skipped by Read.
const commentPrefix = "#"

// Read parses a system of constraints from r. The expected format is
// one constraint per line,
//
//	<a_1> <a_2> ... <a_n> <dir> <rhs>
//
// where the fields are separated by whitespace and <dir> is one of
// "<=", ">=" or "=". Blank lines and lines starting with '#' are skipped.
// All data lines must have the same number of fields.
func Read(r io.Reader) (*System, error) {
	var cons []Constraint
	fields := -1
	line := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, commentPrefix) {
			continue
		}

		f := strings.Fields(text)
		if fields == -1 {
			if len(f) < 3 {
				return nil, errors.Wrapf(polyrun.ErrPrecondition,
					"line %d: expected at least 3 fields, got %d", line, len(f))
			}
			fields = len(f)
		} else if len(f) != fields {
			return nil, errors.Wrapf(polyrun.ErrPrecondition,
				"line %d: expected %d fields, got %d", line, fields, len(f))
		}

		c, err := parseConstraint(f)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		cons = append(cons, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "error while reading constraints")
	}

	return NewFromConstraints(cons)
}

func parseConstraint(f []string) (Constraint, error) {
	n := len(f) - 2
	lhs := make(data.Vector, n)
	for j := 0; j < n; j++ {
		v, err := strconv.ParseFloat(f[j], 64)
		if err != nil {
			return Constraint{}, errors.Wrapf(polyrun.ErrPrecondition, "cannot parse coefficient '%s'", f[j])
		}
		lhs[j] = v
	}

	rhs, err := strconv.ParseFloat(f[n+1], 64)
	if err != nil {
		return Constraint{}, errors.Wrapf(polyrun.ErrPrecondition, "cannot parse right-hand side '%s'", f[n+1])
	}

	return Constraint{Lhs: lhs, Direction: f[n], Rhs: rhs}, nil
}
