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

// Package thinning provides functions q = f(m, n) giving the number of
// steps of a random walk made per collected sample, in terms of the
// number of constraints m and the dimension n of the sampling space.
package thinning

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fentec-project/polyrun"
	"github.com/pkg/errors"
)

// Function computes a thinning factor.
type Function interface {
	// Factor returns the thinning factor, at least 1.
	Factor(constraints, dimensions int) int
}

// Constant is the thinning function f(m, n) = c.
type Constant struct {
	c int
}

// NewConstant returns the constant thinning function c. It returns an
// error if c is not positive.
func NewConstant(c int) (*Constant, error) {
	if c <= 0 {
		return nil, errors.Wrap(polyrun.ErrPrecondition, "thinning constant has to be positive")
	}
	return &Constant{c: c}, nil
}

// None returns the thinning function f(m, n) = 1, which keeps every
// step of a walk.
func None() *Constant {
	return &Constant{c: 1}
}

// Factor implements Function.
func (f *Constant) Factor(constraints, dimensions int) int {
	return f.c
}

func (f *Constant) String() string {
	return fmt.Sprintf("constant(%d)", f.c)
}

// Scaled is a thinning function depending on m and n multiplied by
// a scaling factor.
type Scaled struct {
	name  string
	scale float64
	fn    func(m, n float64) float64
}

func newScaled(name string, a float64, fn func(m, n float64) float64) (*Scaled, error) {
	if !(a > 0) {
		return nil, errors.Wrapf(polyrun.ErrPrecondition, "scaling factor of %s thinning has to be positive", name)
	}
	return &Scaled{name: name, scale: a, fn: fn}, nil
}

// NewNCubed returns the thinning function f(m, n) = ceil(a * n^3).
func NewNCubed(a float64) (*Scaled, error) {
	return newScaled("n-cubed", a, func(m, n float64) float64 {
		return n * n * n
	})
}

// NewLogNCubed returns the thinning function
// f(m, n) = ceil(a * log(n + 1) * n^3).
func NewLogNCubed(a float64) (*Scaled, error) {
	return newScaled("log-n-cubed", a, func(m, n float64) float64 {
		return math.Log(n+1) * n * n * n
	})
}

// NewMN returns the thinning function f(m, n) = ceil(a * m * n).
func NewMN(a float64) (*Scaled, error) {
	return newScaled("m-n", a, func(m, n float64) float64 {
		return m * n
	})
}

// Factor implements Function.
func (f *Scaled) Factor(constraints, dimensions int) int {
	q := math.Ceil(f.scale * f.fn(float64(constraints), float64(dimensions)))
	if q < 1 {
		return 1
	}
	if q > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(q)
}

func (f *Scaled) String() string {
	return fmt.Sprintf("%s(%g)", f.name, f.scale)
}

// Parse returns the thinning function described by s in the format
// <symbol>:<parameter>, where symbol is one of
//
//	tfc - f(m, n) = a,
//	tfl - f(m, n) = ceil(a * n^3),
//	tfg - f(m, n) = ceil(a * log(n + 1) * n^3),
//	tfm - f(m, n) = ceil(a * m * n),
//
// and a is the parameter.
func Parse(s string) (Function, error) {
	fields := strings.Split(s, ":")
	if len(fields) != 2 {
		return nil, errors.Wrapf(polyrun.ErrPrecondition,
			"wrong format of thinning function '%s', expected <symbol>:<parameter>", s)
	}
	symbol, param := strings.TrimSpace(fields[0]), strings.TrimSpace(fields[1])

	if symbol == "tfc" {
		c, err := strconv.Atoi(param)
		if err != nil {
			return nil, errors.Wrapf(polyrun.ErrPrecondition, "cannot parse thinning constant '%s'", param)
		}
		f, err := NewConstant(c)
		if err != nil {
			return nil, err
		}
		return f, nil
	}

	a, err := strconv.ParseFloat(param, 64)
	if err != nil {
		return nil, errors.Wrapf(polyrun.ErrPrecondition, "cannot parse scaling factor '%s'", param)
	}
	var f *Scaled
	switch symbol {
	case "tfl":
		f, err = NewNCubed(a)
	case "tfg":
		f, err = NewLogNCubed(a)
	case "tfm":
		f, err = NewMN(a)
	default:
		err = errors.Wrapf(polyrun.ErrPrecondition, "wrong thinning function symbol '%s'", symbol)
	}
	if err != nil {
		return nil, err
	}

	return f, nil
}
