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
	"strings"
	"testing"

	"github.com/fentec-project/polyrun"
	"github.com/fentec-project/polyrun/constraints"
	"github.com/fentec-project/polyrun/data"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	in := `# unit square with the diagonal fixed
1 0 <= 1
0 1 <= 1

  1   0  >=  0
0 1 >= 0
	# indented comment
1 -1 = 0
`
	sys, err := constraints.Read(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 2, sys.NumVariables())
	assert.Equal(t, data.Matrix{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}, sys.A)
	assert.Equal(t, data.Vector{1, 1, 0, 0}, sys.B)
	assert.Equal(t, data.Matrix{{1, -1}}, sys.C)
	assert.Equal(t, data.Vector{0}, sys.D)
}

func TestRead_ScientificNotation(t *testing.T) {
	sys, err := constraints.Read(strings.NewReader("1e-1 -2.5E1 <= 3e2\n"))
	require.NoError(t, err)

	assert.Equal(t, data.Matrix{{0.1, -25}}, sys.A)
	assert.Equal(t, data.Vector{300}, sys.B)
}

func TestRead_Invalid(t *testing.T) {
	var tests = []struct {
		name string
		in   string
	}{
		{name: "empty", in: ""},
		{name: "only comments", in: "# nothing\n\n"},
		{name: "too few fields", in: "<= 1\n"},
		{name: "varying columns", in: "1 0 <= 1\n1 <= 1\n"},
		{name: "bad coefficient", in: "1 x <= 1\n"},
		{name: "bad rhs", in: "1 0 <= one\n"},
		{name: "bad direction", in: "1 0 < 1\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := constraints.Read(strings.NewReader(test.in))
			assert.True(t, errors.Is(err, polyrun.ErrPrecondition), "expected a precondition error, got %v", err)
		})
	}
}
