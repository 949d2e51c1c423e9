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

package constraints_test

import (
	"testing"

	"github.com/fentec-project/polyrun"
	"github.com/fentec-project/polyrun/constraints"
	"github.com/fentec-project/polyrun/data"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromRows_ChangingDirection(t *testing.T) {
	lhs := data.Matrix{{0, 0, 0}, {1, -1, 1}, {-2, 2, -2}, {3, -3, -3}}
	dir := []string{"<=", ">=", "<=", ">="}
	rhs := data.Vector{0, -1, -2, 3}

	sys, err := constraints.NewFromRows(lhs, dir, rhs)
	require.NoError(t, err)

	for i := range lhs {
		sign := 1.0
		if dir[i] == constraints.GreaterEq {
			sign = -1
		}
		assert.Equal(t, lhs[i].MulScalar(sign), sys.A[i])
		assert.Equal(t, sign*rhs[i], sys.B[i])
	}
	assert.Equal(t, 0, sys.NumEqualities())
}

func TestNewFromRows_ExtractEquality(t *testing.T) {
	lhs := data.Matrix{{0, 0, 0}, {1, -1, 1}, {-2, 2, -2}, {3, -3, -3}, {4, 4, 4}}
	dir := []string{"<=", "=", "<=", "=", "<="}
	rhs := data.Vector{0, -1, -2, 3, 4}

	sys, err := constraints.NewFromRows(lhs, dir, rhs)
	require.NoError(t, err)

	assert.Equal(t, data.Matrix{{0, 0, 0}, {-2, 2, -2}, {4, 4, 4}}, sys.A)
	assert.Equal(t, data.Vector{0, -2, 4}, sys.B)
	assert.Equal(t, data.Matrix{{1, -1, 1}, {3, -3, -3}}, sys.C)
	assert.Equal(t, data.Vector{-1, 3}, sys.D)
}

func TestNewFromRows_Invalid(t *testing.T) {
	var tests = []struct {
		name string
		lhs  data.Matrix
		dir  []string
		rhs  data.Vector
	}{
		{name: "zero rows", lhs: data.Matrix{}, dir: []string{"=", "="}, rhs: data.Vector{0, 0}},
		{name: "zero columns", lhs: data.Matrix{{}, {}}, dir: []string{"=", "="}, rhs: data.Vector{0, 0}},
		{name: "wrong rhs length", lhs: data.Matrix{{1, 0}, {0, 1}}, dir: []string{"=", "="}, rhs: data.Vector{0, 0, 0}},
		{name: "wrong dir length", lhs: data.Matrix{{1, 0}, {0, 1}}, dir: []string{"=", "=", "="}, rhs: data.Vector{0, 0}},
		{name: "double equals", lhs: data.Matrix{{1, 0}, {0, 1}}, dir: []string{"<=", "=="}, rhs: data.Vector{0, 0}},
		{name: "strict less", lhs: data.Matrix{{1, 0}, {0, 1}}, dir: []string{"<", "="}, rhs: data.Vector{0, 0}},
		{name: "strict greater", lhs: data.Matrix{{1, 0}, {0, 1}}, dir: []string{">", "="}, rhs: data.Vector{0, 0}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := constraints.NewFromRows(test.lhs, test.dir, test.rhs)
			assert.True(t, errors.Is(err, polyrun.ErrPrecondition), "expected a precondition error, got %v", err)
		})
	}
}

func TestNewFromConstraints(t *testing.T) {
	sys, err := constraints.NewFromConstraints([]constraints.Constraint{
		{Lhs: data.Vector{1, 0}, Direction: constraints.LessEq, Rhs: 1},
		{Lhs: data.Vector{0, 1}, Direction: constraints.GreaterEq, Rhs: 2},
		{Lhs: data.Vector{1, 1}, Direction: constraints.Eq, Rhs: 3},
	})
	require.NoError(t, err)

	assert.Equal(t, data.Matrix{{1, 0}, {0, -1}}, sys.A)
	assert.Equal(t, data.Vector{1, -2}, sys.B)
	assert.Equal(t, data.Matrix{{1, 1}}, sys.C)
	assert.Equal(t, data.Vector{3}, sys.D)

	_, err = constraints.NewFromConstraints(nil)
	assert.True(t, errors.Is(err, polyrun.ErrPrecondition))

	_, err = constraints.NewFromConstraints([]constraints.Constraint{
		{Lhs: data.Vector{1, 0}, Direction: constraints.LessEq, Rhs: 1},
		{Lhs: data.Vector{1}, Direction: constraints.LessEq, Rhs: 1},
	})
	assert.True(t, errors.Is(err, polyrun.ErrPrecondition))
}
