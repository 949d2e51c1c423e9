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

package thinning_test

import (
	"math"
	"testing"

	"github.com/fentec-project/polyrun"
	"github.com/fentec-project/polyrun/thinning"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstant(t *testing.T) {
	f, err := thinning.NewConstant(7)
	require.NoError(t, err)
	assert.Equal(t, 7, f.Factor(100, 3))
	assert.Equal(t, 7, f.Factor(0, 0))
	assert.Equal(t, 1, thinning.None().Factor(10, 10))

	_, err = thinning.NewConstant(0)
	assert.True(t, errors.Is(err, polyrun.ErrPrecondition))
}

func TestScaled(t *testing.T) {
	nc, err := thinning.NewNCubed(0.5)
	require.NoError(t, err)
	assert.Equal(t, 14, nc.Factor(10, 3), "ceil(0.5 * 27)")

	lnc, err := thinning.NewLogNCubed(1)
	require.NoError(t, err)
	assert.Equal(t, int(math.Ceil(math.Log(4)*27)), lnc.Factor(10, 3))

	mn, err := thinning.NewMN(0.25)
	require.NoError(t, err)
	assert.Equal(t, 8, mn.Factor(10, 3), "ceil(0.25 * 30)")

	// factors never fall below 1
	assert.Equal(t, 1, nc.Factor(10, 0))
	assert.Equal(t, 1, mn.Factor(0, 3))

	for _, a := range []float64{0, -1, math.NaN()} {
		_, err = thinning.NewNCubed(a)
		assert.True(t, errors.Is(err, polyrun.ErrPrecondition))
		_, err = thinning.NewLogNCubed(a)
		assert.True(t, errors.Is(err, polyrun.ErrPrecondition))
		_, err = thinning.NewMN(a)
		assert.True(t, errors.Is(err, polyrun.ErrPrecondition))
	}
}

func TestParse(t *testing.T) {
	var tests = []struct {
		in     string
		factor int
	}{
		{in: "tfc:10", factor: 10},
		{in: "tfl:1", factor: 8},
		{in: "tfl:0.1", factor: 1},
		{in: "tfg:1", factor: int(math.Ceil(math.Log(3) * 8))},
		{in: "tfm:2", factor: 20},
		{in: " tfm : 2 ", factor: 20},
	}

	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			f, err := thinning.Parse(test.in)
			require.NoError(t, err)
			assert.Equal(t, test.factor, f.Factor(5, 2))
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "tfc", "tfc:1:2", "tfc:1.5", "tfc:0", "tfl:x", "tfl:-1", "tfx:1"} {
		f, err := thinning.Parse(in)
		assert.True(t, errors.Is(err, polyrun.ErrPrecondition), "'%s' should be rejected", in)
		assert.Nil(t, f)
	}
}

func TestString(t *testing.T) {
	nc, _ := thinning.NewNCubed(1.5)
	assert.Equal(t, "n-cubed(1.5)", nc.String())
	assert.Equal(t, "constant(1)", thinning.None().String())
}
