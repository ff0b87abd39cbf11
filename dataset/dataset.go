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

// Package dataset downloads, caches and parses machine-learning benchmark
// datasets distributed in the LIBSVM sparse text format.
package dataset

import (
	"net/http"

	"github.com/juju/errors"
)

// DefaultBaseURL hosts the LIBSVM benchmark corpora.
const DefaultBaseURL = "https://www.csie.ntu.edu.tw/~cjlin/libsvmtools/datasets"

// Labels holds one label per matrix row: a scalar for classification and
// regression datasets, a list of class ids for multilabel datasets.
type Labels struct {
	scalars []float64
	lists   [][]float64
}

func newLabels(d Descriptor) *Labels {
	if d.Kind == Multilabel {
		return &Labels{lists: make([][]float64, d.Rows)}
	}
	return &Labels{scalars: make([]float64, d.Rows)}
}

// Len returns the number of rows.
func (l *Labels) Len() int {
	if l.lists != nil {
		return len(l.lists)
	}
	return len(l.scalars)
}

// Scalar returns the label of the i-th row. It panics for multilabel
// containers.
func (l *Labels) Scalar(i int) float64 {
	return l.scalars[i]
}

// List returns the label list of the i-th row. It panics for scalar
// containers.
func (l *Labels) List(i int) []float64 {
	return l.lists[i]
}

// Scalars returns the backing scalar slice, or nil for multilabel containers.
func (l *Labels) Scalars() []float64 {
	return l.scalars
}

// Lists returns the backing label lists, or nil for scalar containers.
func (l *Labels) Lists() [][]float64 {
	return l.lists
}

// Options control a single load call.
type Options struct {
	// Dense materializes the full matrix instead of a sparse one.
	Dense bool
	// ForceRefresh re-downloads the archive even if a cached copy exists.
	ForceRefresh bool
	// Normalize rescales matrix columns, and the label vector for regression
	// datasets, to unit Euclidean norm.
	Normalize bool
	// Verbose reports acquisition progress.
	Verbose bool
}

// DefaultOptions returns the options used by the package-level Load.
func DefaultOptions() Options {
	return Options{Verbose: true}
}

// Loader resolves dataset names against a catalog and materializes them from
// a local cache. A Loader is not safe for concurrent use; concurrent loads
// against the same cache directory are not coordinated.
type Loader struct {
	catalog  Catalog
	cacheDir string
	baseURL  string
	client   *http.Client
}

// Option configures a Loader.
type Option func(*Loader)

// WithCacheDir overrides the resolved cache root.
func WithCacheDir(dir string) Option {
	return func(l *Loader) {
		l.cacheDir = dir
	}
}

// WithBaseURL overrides the remote location datasets are downloaded from.
func WithBaseURL(url string) Option {
	return func(l *Loader) {
		l.baseURL = url
	}
}

// WithHTTPClient overrides the HTTP client used for downloads.
func WithHTTPClient(client *http.Client) Option {
	return func(l *Loader) {
		l.client = client
	}
}

// NewLoader creates a loader over the given catalog. The cache root is
// resolved lazily on the first load so that failed lookups never touch the
// filesystem.
func NewLoader(catalog Catalog, opts ...Option) *Loader {
	l := &Loader{
		catalog: catalog,
		baseURL: DefaultBaseURL,
		client:  http.DefaultClient,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load acquires and parses the named dataset. Any error aborts the whole
// call; no partial matrix is ever returned.
func (l *Loader) Load(name string, opts Options) (Matrix, *Labels, error) {
	d, err := l.catalog.Get(name)
	if err != nil {
		return nil, nil, errors.Trace(err)
	}
	path, err := l.ensureLocal(d, opts.ForceRefresh, opts.Verbose)
	if err != nil {
		return nil, nil, errors.Trace(err)
	}
	matrix, labels, err := parseFile(path, d, opts.Dense)
	if err != nil {
		return nil, nil, errors.Annotatef(err, "failed to parse dataset %s", name)
	}
	if opts.Normalize {
		Normalize(matrix)
		if d.Kind == Regression {
			NormalizeLabels(labels)
		}
	}
	return matrix, labels, nil
}

// Load acquires and parses a built-in dataset with the default cache root.
func Load(name string, opts Options) (Matrix, *Labels, error) {
	return NewLoader(BuiltIn()).Load(name, opts)
}

// ListDatasets returns the catalog of built-in datasets.
func ListDatasets() Catalog {
	return BuiltIn()
}
