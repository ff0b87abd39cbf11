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
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
)

func writeTempFile(t *testing.T, lines ...string) string {
	path := filepath.Join(t.TempDir(), "data.txt")
	err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644)
	assert.NoError(t, err)
	return path
}

func TestParseRoundTrip(t *testing.T) {
	// encode a synthetic sparse dataset and parse it back
	type entry struct {
		row, col int
		value    float64
	}
	entries := []entry{
		{0, 0, 0.5}, {0, 4, -1.25},
		{1, 2, 3},
		{2, 1, 1e-3}, {2, 3, 42}, {2, 4, -7.5},
	}
	targets := []float64{1, -1, 1}
	lines := make([]string, 3)
	for row := range lines {
		fields := []string{fmt.Sprint(targets[row])}
		for _, e := range entries {
			if e.row == row {
				fields = append(fields, fmt.Sprintf("%d:%v", e.col+1, e.value))
			}
		}
		lines[row] = strings.Join(fields, " ")
	}
	path := writeTempFile(t, lines...)
	d := Descriptor{Name: "synthetic", Kind: Classification, Rows: 3, Cols: 5, Classes: 2}
	matrix, labels, err := parseFile(path, d, false)
	assert.NoError(t, err)
	rows, cols := matrix.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 5, cols)
	assert.Equal(t, 3, labels.Len())
	assert.Equal(t, targets, labels.Scalars())
	expected := make(map[[2]int]float64)
	for _, e := range entries {
		expected[[2]int{e.row, e.col}] = e.value
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			assert.Equal(t, expected[[2]int{i, j}], matrix.At(i, j))
		}
	}
}

func TestParseDenseSparseEquivalence(t *testing.T) {
	path := writeTempFile(t,
		"1 1:0.5 3:1.5",
		"-1 2:2 5:0.25",
		"1 4:-3")
	d := Descriptor{Name: "synthetic", Kind: Classification, Rows: 3, Cols: 5, Classes: 2}
	dense, denseLabels, err := parseFile(path, d, true)
	assert.NoError(t, err)
	sparse, sparseLabels, err := parseFile(path, d, false)
	assert.NoError(t, err)
	assert.IsType(t, &DenseMatrix{}, dense)
	assert.IsType(t, &SparseMatrix{}, sparse)
	assert.Equal(t, denseLabels.Scalars(), sparseLabels.Scalars())
	for i := 0; i < 3; i++ {
		for j := 0; j < 5; j++ {
			assert.Equal(t, dense.At(i, j), sparse.At(i, j))
		}
	}
}

func TestParseMultilabel(t *testing.T) {
	path := writeTempFile(t, "1,3 2:0.5 7:1.0")
	d := Descriptor{Name: "synthetic", Kind: Multilabel, Rows: 1, Cols: 10, Classes: 4}
	matrix, labels, err := parseFile(path, d, false)
	assert.NoError(t, err)
	assert.Equal(t, []float64{1, 3}, labels.List(0))
	assert.Equal(t, 0.5, matrix.At(0, 1))
	assert.Equal(t, 1.0, matrix.At(0, 6))
	assert.Equal(t, 0.0, matrix.At(0, 0))
}

func TestParseRepeatedSeparators(t *testing.T) {
	path := writeTempFile(t, "1  1:0.5   3:1.5 ")
	d := Descriptor{Name: "synthetic", Kind: Classification, Rows: 1, Cols: 3, Classes: 2}
	matrix, _, err := parseFile(path, d, false)
	assert.NoError(t, err)
	assert.Equal(t, 0.5, matrix.At(0, 0))
	assert.Equal(t, 1.5, matrix.At(0, 2))
}

func TestParseShortFile(t *testing.T) {
	// fewer rows than declared: trailing rows stay zero-filled
	path := writeTempFile(t, "1 1:0.5")
	d := Descriptor{Name: "synthetic", Kind: Classification, Rows: 3, Cols: 2, Classes: 2}
	matrix, labels, err := parseFile(path, d, false)
	assert.NoError(t, err)
	assert.Equal(t, 3, labels.Len())
	assert.Equal(t, 0.5, matrix.At(0, 0))
	assert.Zero(t, matrix.At(1, 0))
	assert.Zero(t, matrix.At(2, 1))
	assert.Zero(t, labels.Scalar(1))
}

func TestParseErrors(t *testing.T) {
	d := Descriptor{Name: "synthetic", Kind: Classification, Rows: 2, Cols: 5, Classes: 2}

	// index beyond declared columns
	path := writeTempFile(t, "1 9999:1.0")
	_, _, err := parseFile(path, d, false)
	assert.True(t, errors.IsNotValid(err))
	assert.ErrorContains(t, err, "9999")

	// zero index
	path = writeTempFile(t, "1 0:1.0")
	_, _, err = parseFile(path, d, false)
	assert.True(t, errors.IsNotValid(err))

	// malformed label
	path = writeTempFile(t, "one 1:1.0")
	_, _, err = parseFile(path, d, false)
	assert.True(t, errors.IsNotValid(err))
	assert.ErrorContains(t, err, "one")

	// malformed feature value
	path = writeTempFile(t, "1 1:abc")
	_, _, err = parseFile(path, d, false)
	assert.True(t, errors.IsNotValid(err))
	assert.ErrorContains(t, err, "1:abc")

	// malformed feature token
	path = writeTempFile(t, "1 12")
	_, _, err = parseFile(path, d, false)
	assert.True(t, errors.IsNotValid(err))

	// more rows than declared
	path = writeTempFile(t, "1 1:1", "1 2:1", "1 3:1")
	_, _, err = parseFile(path, d, false)
	assert.True(t, errors.IsNotValid(err))

	// malformed multilabel label
	path = writeTempFile(t, "1,x 1:1")
	_, _, err = parseFile(path, Descriptor{Name: "synthetic", Kind: Multilabel, Rows: 2, Cols: 5}, false)
	assert.True(t, errors.IsNotValid(err))
}
