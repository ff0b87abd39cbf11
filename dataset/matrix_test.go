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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrixEquivalence(t *testing.T) {
	matrices := []Matrix{NewDenseMatrix(3, 4), NewSparseMatrix(3, 4)}
	for _, m := range matrices {
		rows, cols := m.Dims()
		assert.Equal(t, 3, rows)
		assert.Equal(t, 4, cols)
		m.Set(0, 1, 0.5)
		m.Set(2, 3, -1)
		m.Set(2, 0, 2)
		assert.Equal(t, 0.5, m.At(0, 1))
		assert.Equal(t, -1.0, m.At(2, 3))
		assert.Equal(t, 2.0, m.At(2, 0))
		assert.Zero(t, m.At(1, 1))
		// overwrite
		m.Set(0, 1, 0.25)
		assert.Equal(t, 0.25, m.At(0, 1))
	}
}

func TestSparseMatrixNNZ(t *testing.T) {
	m := NewSparseMatrix(2, 10)
	assert.Zero(t, m.NNZ())
	m.Set(0, 1, 1)
	m.Set(0, 5, 2)
	m.Set(1, 5, 3)
	assert.Equal(t, 3, m.NNZ())
	// overwriting does not add entries
	m.Set(0, 5, 4)
	assert.Equal(t, 3, m.NNZ())
}

func TestMatrixNonZero(t *testing.T) {
	for _, m := range []Matrix{NewDenseMatrix(2, 3), NewSparseMatrix(2, 3)} {
		m.Set(0, 0, 1)
		m.Set(1, 2, 2)
		visited := make(map[[2]int]float64)
		m.NonZero(func(i, j int, v float64) {
			visited[[2]int{i, j}] = v
		})
		assert.Equal(t, map[[2]int]float64{{0, 0}: 1, {1, 2}: 2}, visited)
	}
}
