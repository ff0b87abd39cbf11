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
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/juju/errors"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/gorse-io/libsvmdata/base/log"
)

// ensureLocal makes sure a decompressed local copy of the dataset file exists
// and returns its path. The archive is downloaded when absent or when a
// refresh is forced, and decompressed siblings are reused across calls.
func (l *Loader) ensureLocal(d Descriptor, force, verbose bool) (string, error) {
	if l.cacheDir == "" {
		dir, err := CacheRoot()
		if err != nil {
			return "", errors.Trace(err)
		}
		l.cacheDir = dir
	}
	archive := filepath.Join(l.cacheDir, d.RemoteFile)
	_, err := os.Stat(archive)
	switch {
	case os.IsNotExist(err):
		if verbose {
			log.Logger().Info("download dataset",
				zap.String("dataset", d.Name), zap.String("source", d.URL(l.baseURL)))
		}
		if err = l.download(d, archive, verbose); err != nil {
			return "", errors.Trace(err)
		}
	case err != nil:
		return "", errors.Trace(err)
	case force:
		if verbose {
			log.Logger().Info("replace cached dataset",
				zap.String("dataset", d.Name), zap.String("source", d.URL(l.baseURL)))
		}
		if err = l.download(d, archive, verbose); err != nil {
			return "", errors.Trace(err)
		}
	default:
		if verbose {
			log.Logger().Info("use cached dataset",
				zap.String("dataset", d.Name), zap.String("path", archive))
		}
	}
	return extract(archive)
}

// download fetches the dataset archive and writes the response body verbatim
// to the archive path, overwriting any previous copy.
func (l *Loader) download(d Descriptor, archive string, verbose bool) error {
	url := d.URL(l.baseURL)
	response, err := l.client.Get(url)
	if err != nil {
		return errors.Annotatef(err, "failed to download dataset %s from %s", d.Name, url)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		return errors.Errorf("failed to download dataset %s from %s: %s", d.Name, url, response.Status)
	}
	if err = os.MkdirAll(filepath.Dir(archive), os.ModePerm); err != nil {
		return errors.Trace(err)
	}
	output, err := os.Create(archive)
	if err != nil {
		return errors.Annotatef(err, "failed to create file %s", archive)
	}
	defer output.Close()
	var reader io.Reader = response.Body
	if verbose {
		pbReader := progressbar.NewReader(response.Body, progressbar.DefaultBytes(
			response.ContentLength,
			"Downloading "+d.Name,
		))
		reader = &pbReader
	}
	if _, err = io.Copy(output, reader); err != nil {
		return errors.Annotatef(err, "failed to download dataset %s from %s", d.Name, url)
	}
	return nil
}
