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
	"math"

	"gonum.org/v1/gonum/floats"
)

// Normalize rescales every column of the matrix to unit Euclidean norm in
// place. All-zero columns are left untouched.
func Normalize(m Matrix) {
	_, cols := m.Dims()
	norms := make([]float64, cols)
	m.NonZero(func(_, j int, v float64) {
		norms[j] += v * v
	})
	for j := range norms {
		norms[j] = math.Sqrt(norms[j])
	}
	m.NonZero(func(i, j int, v float64) {
		if norms[j] > 0 {
			m.Set(i, j, v/norms[j])
		}
	})
}

// NormalizeLabels rescales a scalar label vector to unit Euclidean norm as a
// whole. Multilabel containers are left untouched.
func NormalizeLabels(labels *Labels) {
	if labels.scalars == nil {
		return
	}
	norm := floats.Norm(labels.scalars, 2)
	if norm > 0 {
		floats.Scale(1/norm, labels.scalars)
	}
}
