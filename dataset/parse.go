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
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/juju/errors"
)

// Text corpora such as news20 carry lines far beyond the scanner default.
const maxLineSize = 64 * 1024 * 1024

// parseFile decodes a LIBSVM format file into a matrix of the descriptor's
// declared shape and a parallel label container. Feature indices are 1-based
// in the file and stored at column index-1. A file shorter than the declared
// row count leaves the trailing rows zero-filled; a longer file or any
// malformed token fails the whole parse.
func parseFile(path string, d Descriptor, dense bool) (Matrix, *Labels, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Trace(err)
	}
	defer file.Close()
	var matrix Matrix
	if dense {
		matrix = NewDenseMatrix(d.Rows, d.Cols)
	} else {
		matrix = NewSparseMatrix(d.Rows, d.Cols)
	}
	labels := newLabels(d)
	// read lines
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 1024*1024), maxLineSize)
	row := 0
	for scanner.Scan() {
		line := scanner.Text()
		if row >= d.Rows {
			return nil, nil, errors.NotValidf("line %d beyond the declared %d rows", row+1, d.Rows)
		}
		fields := strings.Split(line, " ")
		// fetch label
		if d.Kind == Multilabel {
			parts := strings.Split(fields[0], ",")
			list := make([]float64, 0, len(parts))
			for _, part := range parts {
				label, err := strconv.ParseFloat(part, 64)
				if err != nil {
					return nil, nil, errors.NotValidf("label %q on line %d", fields[0], row+1)
				}
				list = append(list, label)
			}
			labels.lists[row] = list
		} else {
			label, err := strconv.ParseFloat(fields[0], 64)
			if err != nil {
				return nil, nil, errors.NotValidf("label %q on line %d", fields[0], row+1)
			}
			labels.scalars[row] = label
		}
		// fetch features
		for _, field := range fields[1:] {
			if len(strings.TrimSpace(field)) == 0 {
				continue
			}
			kv := strings.Split(field, ":")
			if len(kv) != 2 {
				return nil, nil, errors.NotValidf("feature %q on line %d", field, row+1)
			}
			index, err := strconv.Atoi(kv[0])
			if err != nil {
				return nil, nil, errors.NotValidf("feature index in %q on line %d", field, row+1)
			}
			value, err := strconv.ParseFloat(kv[1], 64)
			if err != nil {
				return nil, nil, errors.NotValidf("feature value in %q on line %d", field, row+1)
			}
			if index < 1 || index > d.Cols {
				return nil, nil, errors.NotValidf("feature index %d on line %d, outside [1, %d]", index, row+1, d.Cols)
			}
			matrix.Set(row, index-1, value)
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, errors.Trace(err)
	}
	return matrix, labels, nil
}
