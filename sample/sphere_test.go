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

package sample_test

import (
	"math"
	"testing"

	"github.com/fentec-project/polyrun/sample"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"
)

func TestUnitNSphere_Fill(t *testing.T) {
	s := sample.NewUnitNSphere(sample.NewRand(7))

	for _, n := range []int{2, 3, 10, 50} {
		v := make([]float64, n)
		for i := 0; i < 100; i++ {
			s.Fill(v)
			assert.InDelta(t, 1.0, floats.Norm(v, 2), 1e-12, "point should lie on the unit sphere")
		}
	}
}

func TestUnitNSphere_Degenerate(t *testing.T) {
	s := sample.NewUnitNSphere(sample.NewRand(8))

	var empty []float64
	s.Fill(empty)
	assert.Len(t, empty, 0)

	v := make([]float64, 1)
	plus, minus := 0, 0
	for i := 0; i < 1000; i++ {
		s.Fill(v)
		assert.InDelta(t, 1.0, math.Abs(v[0]), 1e-15)
		if v[0] > 0 {
			plus++
		} else {
			minus++
		}
	}
	assert.InDelta(t, 500, plus, 80)
	assert.Equal(t, 1000, plus+minus)
}

func TestUnitNSphere_Uniformity(t *testing.T) {
	s := sample.NewUnitNSphere(sample.NewRand(9))
	v := make([]float64, 3)
	sum := make([]float64, 3)
	n := 20000
	for i := 0; i < n; i++ {
		s.Fill(v)
		floats.Add(sum, v)
	}
	// the mean of a uniform distribution on the sphere is the origin
	for _, c := range sum {
		assert.True(t, math.Abs(c/float64(n)) < 0.02, "mean coordinate should be close to 0")
	}
}

func TestUnitNSphere_FillHomogeneous(t *testing.T) {
	s := sample.NewUnitNSphere(sample.NewRand(10))
	v := []float64{5, 5, 5, 5}
	s.FillHomogeneous(v)

	assert.Equal(t, 0.0, v[3])
	assert.InDelta(t, 1.0, floats.Norm(v[:3], 2), 1e-12)
}
