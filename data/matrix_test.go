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

package data

import (
	"testing"

	"github.com/fentec-project/polyrun/sample"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestMatrix(t *testing.T) {
	rows, cols := 5, 3
	sampler := sample.NewUniformRange(-1, 1, sample.NewRand(2))

	vecs := make([]Vector, rows)
	for i := range vecs {
		vecs[i] = NewRandomVector(cols, sampler)
	}
	x, err := NewMatrix(vecs)
	assert.NoError(t, err)
	assert.True(t, x.CheckDims(rows, cols))

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			assert.True(t, x[i][j] >= -1 && x[i][j] < 1, "element out of range")
		}
	}

	_, err = NewMatrix([]Vector{{1, 2}, {3}})
	assert.Error(t, err, "ragged rows should be rejected")
}

func TestMatrix_Rows(t *testing.T) {
	m := NewConstantMatrix(2, 3, 1)
	assert.Equal(t, 2, m.Rows())
}

func TestMatrix_Cols(t *testing.T) {
	m := NewConstantMatrix(2, 3, 1)
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 0, Matrix{}.Cols())
}

func TestMatrix_GetCol(t *testing.T) {
	m, err := NewMatrix([]Vector{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatalf("Error during matrix creation: %v", err)
	}

	col, err := m.GetCol(1)
	if err != nil {
		t.Fatalf("Error obtaining the column: %v", err)
	}
	assert.Equal(t, Vector{2, 4}, col)

	_, err = m.GetCol(2)
	assert.Error(t, err)
}

func TestMatrix_Transpose(t *testing.T) {
	m := Matrix{{1, 2, 3}, {4, 5, 6}}

	assert.Equal(t, Matrix{{1, 4}, {2, 5}, {3, 6}}, m.Transpose())
}

func TestMatrix_Mul(t *testing.T) {
	m1 := Matrix{{1, 2}, {3, 4}}
	m2 := Matrix{{0, 1, 2}, {1, 0, -1}}

	prod, err := m1.Mul(m2)
	if err != nil {
		t.Fatalf("Error during matrix multiplication: %v", err)
	}
	assert.Equal(t, Matrix{{2, 1, 0}, {4, 3, 2}}, prod)

	_, err = m2.Mul(m1)
	assert.Error(t, err)
}

func TestMatrix_MulVec(t *testing.T) {
	m := Matrix{{1, 2}, {3, 4}, {0, -1}}

	v, err := m.MulVec(Vector{1, 1})
	if err != nil {
		t.Fatalf("Error during matrix-vector multiplication: %v", err)
	}
	assert.Equal(t, Vector{3, 7, -1}, v)

	_, err = m.MulVec(Vector{1, 1, 1})
	assert.Error(t, err)

	empty, err := Matrix{}.MulVec(Vector{1, 2})
	assert.NoError(t, err)
	assert.Len(t, empty, 0)
}

func TestMatrix_Identity(t *testing.T) {
	id := NewIdentityMatrix(3)
	v := Vector{1, -2, 3}

	res, err := id.MulVec(v)
	assert.NoError(t, err)
	assert.Equal(t, v, res)
}

func TestMatrix_Dense(t *testing.T) {
	m := Matrix{{1, 2}, {3, 4}, {5, 6}}
	d := m.Dense()

	r, c := d.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 6.0, d.At(2, 1))

	var tr mat.Dense
	tr.CloneFrom(d.T())
	assert.Equal(t, m.Transpose(), NewMatrixFromDense(&tr))
}

func TestMatrix_NonZeroIndices(t *testing.T) {
	m := Matrix{{0, 1, 0, 2}, {0, 0, 0, 0}, {3, 0, 0, 0}}

	assert.Equal(t, [][]int{{1, 3}, {}, {0}}, m.NonZeroIndices())
}

func TestMatrix_Copy(t *testing.T) {
	m := Matrix{{1, 2}, {3, 4}}
	c := m.Copy()
	c[1][1] = 0

	assert.Equal(t, 4.0, m[1][1])
	assert.Equal(t, "1\t2\n3\t4", m.String())
}
