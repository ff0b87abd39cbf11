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
	"os"
	"os/user"
	"path/filepath"

	"github.com/juju/errors"
)

// CacheHomeEnv overrides the cache root directory. When set, its value is
// used verbatim and never created on behalf of the caller.
const CacheHomeEnv = "LIBSVMDATA_HOME"

// CacheRoot resolves the directory where downloaded and decompressed dataset
// files persist between invocations. Without an override, the default under
// the user's home directory is created together with missing parents.
func CacheRoot() (string, error) {
	if dir := os.Getenv(CacheHomeEnv); dir != "" {
		return dir, nil
	}
	usr, err := user.Current()
	if err != nil {
		return "", errors.Trace(err)
	}
	dir := filepath.Join(usr.HomeDir, "data", "libsvm")
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", errors.Annotatef(err, "failed to create cache directory %s", dir)
	}
	return dir, nil
}
