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
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Matrix wraps a slice of Vector elements. It represents a row-major.
// order matrix.
//
// The j-th element from the i-th vector of the matrix can be obtained
// as m[i][j].
type Matrix []Vector

// NewMatrix accepts a slice of Vector elements and
// returns a new Matrix instance.
// It returns error if not all the vectors have the same number of elements.
func NewMatrix(vectors []Vector) (Matrix, error) {
	l := -1
	newVectors := make([]Vector, len(vectors))

	if len(vectors) > 0 {
		l = len(vectors[0])
	}
	for i, v := range vectors {
		if len(v) != l {
			return nil, fmt.Errorf("all vectors should be of the same length")
		}
		newVectors[i] = NewVector(v)
	}

	return Matrix(newVectors), nil
}

// NewConstantMatrix returns a new Matrix instance
// with all elements set to constant c.
func NewConstantMatrix(rows, cols int, c float64) Matrix {
	mat := make([]Vector, rows)
	for i := 0; i < rows; i++ {
		mat[i] = NewConstantVector(cols, c)
	}

	return mat
}

// NewIdentityMatrix returns the n x n identity matrix.
func NewIdentityMatrix(n int) Matrix {
	m := NewConstantMatrix(n, n, 0)
	for i := 0; i < n; i++ {
		m[i][i] = 1
	}

	return m
}

// NewMatrixFromDense copies a gonum matrix into a new Matrix.
func NewMatrixFromDense(d mat.Matrix) Matrix {
	rows, cols := d.Dims()
	m := make(Matrix, rows)
	for i := 0; i < rows; i++ {
		m[i] = make(Vector, cols)
		for j := 0; j < cols; j++ {
			m[i][j] = d.At(i, j)
		}
	}

	return m
}

// Rows returns the number of rows of matrix m.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns of matrix m.
func (m Matrix) Cols() int {
	if len(m) != 0 {
		return len(m[0])
	}

	return 0
}

// CheckDims checks whether dimensions of matrix m match
// the provided rows and cols arguments.
func (m Matrix) CheckDims(rows, cols int) bool {
	return m.Rows() == rows && m.Cols() == cols
}

// Copy returns a deep copy of m.
func (m Matrix) Copy() Matrix {
	res := make(Matrix, len(m))
	for i, v := range m {
		res[i] = v.Copy()
	}

	return res
}

// GetCol returns i-th column of matrix m as a vector.
// It returns error if i >= the number of m's columns.
func (m Matrix) GetCol(i int) (Vector, error) {
	if i >= m.Cols() {
		return nil, fmt.Errorf("column index exceeds matrix dimensions")
	}

	column := make(Vector, m.Rows())
	for j := 0; j < m.Rows(); j++ {
		column[j] = m[j][i]
	}

	return column, nil
}

// Transpose transposes matrix m and returns
// the result in a new Matrix.
func (m Matrix) Transpose() Matrix {
	transposed := make([]Vector, m.Cols())
	for i := 0; i < m.Cols(); i++ {
		transposed[i], _ = m.GetCol(i)
	}

	return transposed
}

// Mul multiplies matrices m and other.
// The result is returned in a new Matrix.
// Error is returned if the number of columns of m differs from
// the number of rows of other.
func (m Matrix) Mul(other Matrix) (Matrix, error) {
	if m.Cols() != other.Rows() {
		return nil, fmt.Errorf("cannot multiply matrices")
	}

	prod := make([]Vector, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		prod[i] = make(Vector, other.Cols())
		for k, mik := range m[i] {
			if mik == 0 {
				continue
			}
			floats.AddScaled(prod[i], mik, other[k])
		}
	}

	return prod, nil
}

// MulVec multiplies matrix m and vector v.
// It returns the resulting vector.
// Error is returned if the number of columns of m differs from the number
// of elements of v.
func (m Matrix) MulVec(v Vector) (Vector, error) {
	if m.Rows() > 0 && m.Cols() != len(v) {
		return nil, fmt.Errorf("cannot multiply matrix by a vector")
	}

	res := make(Vector, m.Rows())
	for i, row := range m {
		res[i] = floats.Dot(row, v)
	}

	return res, nil
}

// Dense returns a gonum matrix holding a copy of m.
// m must have at least one row and one column.
func (m Matrix) Dense() *mat.Dense {
	d := mat.NewDense(m.Rows(), m.Cols(), nil)
	for i, row := range m {
		d.SetRow(i, row)
	}

	return d
}

// NonZeroIndices returns, for every row of m, the indices of its
// non-zero elements.
func (m Matrix) NonZeroIndices() [][]int {
	idx := make([][]int, len(m))
	for i, row := range m {
		idx[i] = make([]int, 0, len(row))
		for j, v := range row {
			if v != 0 {
				idx[i] = append(idx[i], j)
			}
		}
	}

	return idx
}

// String produces a string representation of a matrix,
// one row per line.
func (m Matrix) String() string {
	s := ""
	for i, v := range m {
		if i > 0 {
			s += "\n"
		}
		s += v.String()
	}
	return s
}
