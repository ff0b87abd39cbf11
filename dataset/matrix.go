// Copyright 2026 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dataset

import (
	"gonum.org/v1/gonum/mat"
)

// Matrix is an m-by-n feature matrix with zero-based addressing. Dense and
// sparse implementations answer identical values for every At query; entries
// never written stay zero.
type Matrix interface {
	// Dims returns the number of rows and columns.
	Dims() (rows, cols int)
	// At returns the value at row i, column j.
	At(i, j int) float64
	// Set writes the value at row i, column j.
	Set(i, j int, v float64)
	// NonZero visits stored non-zero entries in row order.
	NonZero(f func(i, j int, v float64))
}

// DenseMatrix is a fully materialized matrix backed by gonum.
type DenseMatrix struct {
	data *mat.Dense
}

// NewDenseMatrix creates a zero-filled dense matrix.
func NewDenseMatrix(rows, cols int) *DenseMatrix {
	return &DenseMatrix{data: mat.NewDense(rows, cols, nil)}
}

func (m *DenseMatrix) Dims() (int, int) {
	return m.data.Dims()
}

func (m *DenseMatrix) At(i, j int) float64 {
	return m.data.At(i, j)
}

func (m *DenseMatrix) Set(i, j int, v float64) {
	m.data.Set(i, j, v)
}

func (m *DenseMatrix) NonZero(f func(i, j int, v float64)) {
	rows, cols := m.data.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := m.data.At(i, j); v != 0 {
				f(i, j, v)
			}
		}
	}
}

// Dense exposes the underlying gonum matrix for linear algebra on the result.
func (m *DenseMatrix) Dense() *mat.Dense {
	return m.data
}

// SparseMatrix stores only explicitly written entries, one index/value pair
// list per row.
type SparseMatrix struct {
	rows, cols int
	indices    [][]int
	values     [][]float64
}

// NewSparseMatrix creates an empty sparse matrix of the given shape.
func NewSparseMatrix(rows, cols int) *SparseMatrix {
	return &SparseMatrix{
		rows:    rows,
		cols:    cols,
		indices: make([][]int, rows),
		values:  make([][]float64, rows),
	}
}

func (m *SparseMatrix) Dims() (int, int) {
	return m.rows, m.cols
}

func (m *SparseMatrix) At(i, j int) float64 {
	for k, index := range m.indices[i] {
		if index == j {
			return m.values[i][k]
		}
	}
	return 0
}

func (m *SparseMatrix) Set(i, j int, v float64) {
	// Rows arrive in ascending column order during parsing, so check the tail
	// before scanning.
	if n := len(m.indices[i]); n > 0 && m.indices[i][n-1] == j {
		m.values[i][n-1] = v
		return
	}
	for k, index := range m.indices[i] {
		if index == j {
			m.values[i][k] = v
			return
		}
	}
	m.indices[i] = append(m.indices[i], j)
	m.values[i] = append(m.values[i], v)
}

func (m *SparseMatrix) NonZero(f func(i, j int, v float64)) {
	for i := range m.indices {
		for k, j := range m.indices[i] {
			if v := m.values[i][k]; v != 0 {
				f(i, j, v)
			}
		}
	}
}

// NNZ returns the number of stored entries.
func (m *SparseMatrix) NNZ() int {
	var count int
	for i := range m.indices {
		count += len(m.indices[i])
	}
	return count
}
