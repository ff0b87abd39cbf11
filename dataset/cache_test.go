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
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheRootOverride(t *testing.T) {
	override := filepath.Join(t.TempDir(), "custom-cache")
	t.Setenv(CacheHomeEnv, override)
	dir, err := CacheRoot()
	assert.NoError(t, err)
	assert.Equal(t, override, dir)
	// the override is returned verbatim, never created
	_, err = os.Stat(override)
	assert.True(t, os.IsNotExist(err))
}

func TestCacheRootDefault(t *testing.T) {
	t.Setenv(CacheHomeEnv, "")
	dir, err := CacheRoot()
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(dir, filepath.Join("data", "libsvm")))
	info, err := os.Stat(dir)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}
