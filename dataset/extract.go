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
	"archive/tar"
	"compress/bzip2"
	"io"
	"os"
	"strings"

	"github.com/juju/errors"
	"github.com/ulikunitz/xz"
)

type compression int

const (
	notCompressed compression = iota
	rawBZ2
	rawXZ
	tarXZ
)

// decompressedName maps an archive path to the path of its decompressed
// sibling: one trailing extension stripped for .bz2 and .xz, two for .tar.xz.
// Unknown suffixes pass through unchanged.
func decompressedName(path string) (string, compression) {
	switch {
	case strings.HasSuffix(path, ".tar.xz"):
		return strings.TrimSuffix(path, ".tar.xz"), tarXZ
	case strings.HasSuffix(path, ".xz"):
		return strings.TrimSuffix(path, ".xz"), rawXZ
	case strings.HasSuffix(path, ".bz2"):
		return strings.TrimSuffix(path, ".bz2"), rawBZ2
	}
	return path, notCompressed
}

// extract decompresses the archive next to itself, keeping the original. An
// existing decompressed sibling is reused as-is. Uncompressed files are
// returned unchanged.
func extract(archive string) (string, error) {
	target, method := decompressedName(archive)
	if method == notCompressed {
		return archive, nil
	}
	if _, err := os.Stat(target); err == nil {
		return target, nil
	}
	file, err := os.Open(archive)
	if err != nil {
		return "", errors.Trace(err)
	}
	defer file.Close()
	var reader io.Reader
	switch method {
	case rawBZ2:
		reader = bzip2.NewReader(file)
	case rawXZ:
		if reader, err = xz.NewReader(file); err != nil {
			return "", errors.Annotatef(err, "failed to extract %s", archive)
		}
	case tarXZ:
		xzReader, err := xz.NewReader(file)
		if err != nil {
			return "", errors.Annotatef(err, "failed to extract %s", archive)
		}
		if reader, err = firstTarMember(xzReader); err != nil {
			return "", errors.Annotatef(err, "failed to extract %s", archive)
		}
	}
	output, err := os.Create(target)
	if err != nil {
		return "", errors.Annotatef(err, "failed to create file %s", target)
	}
	defer output.Close()
	if _, err = io.Copy(output, reader); err != nil {
		// A partial sibling would be mistaken for a cached copy on the next call.
		_ = os.Remove(target)
		return "", errors.Annotatef(err, "failed to extract %s", archive)
	}
	return target, nil
}

// firstTarMember positions a tar reader at the first regular file entry.
func firstTarMember(r io.Reader) (io.Reader, error) {
	tarReader := tar.NewReader(r)
	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			return nil, errors.New("no regular file in archive")
		} else if err != nil {
			return nil, errors.Trace(err)
		}
		if header.Typeflag == tar.TypeReg {
			return tarReader, nil
		}
	}
}
