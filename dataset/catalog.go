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
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/juju/errors"
	"github.com/samber/lo"
)

// DatasetKind is the learning task a dataset is labeled for. The kind decides
// how label tokens are decoded and doubles as the path segment of the remote
// location.
type DatasetKind int

const (
	// Classification datasets carry one numeric class id per line.
	Classification DatasetKind = iota
	// Regression datasets carry one real-valued response per line.
	Regression
	// Multilabel datasets carry a comma-separated list of class ids per line.
	Multilabel
)

func (k DatasetKind) String() string {
	switch k {
	case Classification:
		return "classification"
	case Regression:
		return "regression"
	case Multilabel:
		return "multilabel"
	default:
		return fmt.Sprintf("DatasetKind(%d)", int(k))
	}
}

// Descriptor describes one dataset in the catalog. Rows and Cols are the
// declared shape of the parsed feature matrix; the parser trusts them to size
// its output.
type Descriptor struct {
	Name       string
	RemoteFile string
	Kind       DatasetKind
	Rows       int
	Cols       int
	Classes    int
}

// URL returns the remote location of the dataset file under the given base.
func (d Descriptor) URL(base string) string {
	return base + "/" + d.Kind.String() + "/" + d.RemoteFile
}

// Catalog maps dataset names to descriptors. It is loaded once and read-only
// thereafter.
type Catalog map[string]Descriptor

// Get looks up a dataset by name. Unknown names return a NotSupported error.
func (c Catalog) Get(name string) (Descriptor, error) {
	d, exist := c[name]
	if !exist {
		return Descriptor{}, errors.NotSupportedf("dataset %q (see ListDatasets for supported names)", name)
	}
	return d, nil
}

// Names returns the dataset names in sorted order.
func (c Catalog) Names() []string {
	names := lo.Keys(c)
	sort.Strings(names)
	return names
}

// Validate checks catalog consistency: remote file names must be unique and
// declared shapes positive.
func (c Catalog) Validate() error {
	remoteFiles := mapset.NewSet[string]()
	for name, d := range c {
		if d.RemoteFile == "" {
			return errors.NotValidf("dataset %q: empty remote file", name)
		}
		if !remoteFiles.Add(d.RemoteFile) {
			return errors.NotValidf("dataset %q: duplicated remote file %q", name, d.RemoteFile)
		}
		if d.Rows <= 0 || d.Cols <= 0 {
			return errors.NotValidf("dataset %q: declared shape %dx%d", name, d.Rows, d.Cols)
		}
	}
	return nil
}

// BuiltIn returns the catalog of datasets hosted by the LIBSVM tools site.
// Shapes and class counts follow the site's published statistics.
func BuiltIn() Catalog {
	return builtInDataSets
}

var builtInDataSets = Catalog{
	"a1a":            {Name: "a1a", RemoteFile: "a1a", Kind: Classification, Rows: 1605, Cols: 123, Classes: 2},
	"abalone":        {Name: "abalone", RemoteFile: "abalone_scale", Kind: Regression, Rows: 4177, Cols: 8},
	"bibtex":         {Name: "bibtex", RemoteFile: "bibtex.bz2", Kind: Multilabel, Rows: 7395, Cols: 1836, Classes: 159},
	"bodyfat":        {Name: "bodyfat", RemoteFile: "bodyfat_scale", Kind: Regression, Rows: 252, Cols: 14},
	"breast-cancer":  {Name: "breast-cancer", RemoteFile: "breast-cancer_scale", Kind: Classification, Rows: 683, Cols: 10, Classes: 2},
	"cadata":         {Name: "cadata", RemoteFile: "cadata", Kind: Regression, Rows: 20640, Cols: 8},
	"colon-cancer":   {Name: "colon-cancer", RemoteFile: "colon-cancer.bz2", Kind: Classification, Rows: 62, Cols: 2000, Classes: 2},
	"covtype.binary": {Name: "covtype.binary", RemoteFile: "covtype.libsvm.binary.bz2", Kind: Classification, Rows: 581012, Cols: 54, Classes: 2},
	"cpusmall":       {Name: "cpusmall", RemoteFile: "cpusmall_scale", Kind: Regression, Rows: 8192, Cols: 12},
	"diabetes":       {Name: "diabetes", RemoteFile: "diabetes_scale", Kind: Classification, Rows: 768, Cols: 8, Classes: 2},
	"eunite2001":     {Name: "eunite2001", RemoteFile: "eunite2001", Kind: Regression, Rows: 336, Cols: 16},
	"german.numer":   {Name: "german.numer", RemoteFile: "german.numer_scale", Kind: Classification, Rows: 1000, Cols: 24, Classes: 2},
	"gisette":        {Name: "gisette", RemoteFile: "gisette_scale.bz2", Kind: Classification, Rows: 6000, Cols: 5000, Classes: 2},
	"housing":        {Name: "housing", RemoteFile: "housing_scale", Kind: Regression, Rows: 506, Cols: 13},
	"ijcnn1":         {Name: "ijcnn1", RemoteFile: "ijcnn1.tr.bz2", Kind: Classification, Rows: 49990, Cols: 22, Classes: 2},
	"leukemia":       {Name: "leukemia", RemoteFile: "leu.bz2", Kind: Classification, Rows: 38, Cols: 7129, Classes: 2},
	"madelon":        {Name: "madelon", RemoteFile: "madelon", Kind: Classification, Rows: 2000, Cols: 500, Classes: 2},
	"mediamill":      {Name: "mediamill", RemoteFile: "mediamill_train.svm.bz2", Kind: Multilabel, Rows: 30993, Cols: 120, Classes: 101},
	"mnist":          {Name: "mnist", RemoteFile: "mnist.bz2", Kind: Classification, Rows: 60000, Cols: 780, Classes: 10},
	"mushrooms":      {Name: "mushrooms", RemoteFile: "mushrooms", Kind: Classification, Rows: 8124, Cols: 112, Classes: 2},
	"news20.binary":  {Name: "news20.binary", RemoteFile: "news20.binary.bz2", Kind: Classification, Rows: 19996, Cols: 1355191, Classes: 2},
	"phishing":       {Name: "phishing", RemoteFile: "phishing", Kind: Classification, Rows: 11055, Cols: 68, Classes: 2},
	"rcv1.binary":    {Name: "rcv1.binary", RemoteFile: "rcv1_train.binary.bz2", Kind: Classification, Rows: 20242, Cols: 47236, Classes: 2},
	"rcv1-topics":    {Name: "rcv1-topics", RemoteFile: "rcv1_topics_train.svm.bz2", Kind: Multilabel, Rows: 23149, Cols: 47236, Classes: 101},
	"real-sim":       {Name: "real-sim", RemoteFile: "real-sim.bz2", Kind: Classification, Rows: 72309, Cols: 20958, Classes: 2},
	"scene":          {Name: "scene", RemoteFile: "scene_train.bz2", Kind: Multilabel, Rows: 1211, Cols: 294, Classes: 6},
	"smallNORB":      {Name: "smallNORB", RemoteFile: "smallNORB.xz", Kind: Classification, Rows: 24300, Cols: 18432, Classes: 5},
	"splice":         {Name: "splice", RemoteFile: "splice_scale", Kind: Classification, Rows: 1000, Cols: 60, Classes: 2},
	"svmguide1":      {Name: "svmguide1", RemoteFile: "svmguide1", Kind: Classification, Rows: 3089, Cols: 4, Classes: 2},
	"tmc2007":        {Name: "tmc2007", RemoteFile: "tmc2007_train.svm.bz2", Kind: Multilabel, Rows: 21519, Cols: 30438, Classes: 22},
	"w8a":            {Name: "w8a", RemoteFile: "w8a", Kind: Classification, Rows: 49749, Cols: 300, Classes: 2},
	"webspam":        {Name: "webspam", RemoteFile: "webspam_wc_normalized_unigram.svm.xz", Kind: Classification, Rows: 350000, Cols: 254, Classes: 2},
	"yearprediction": {Name: "yearprediction", RemoteFile: "YearPredictionMSD.bz2", Kind: Regression, Rows: 463715, Cols: 90},
	"yeast":          {Name: "yeast", RemoteFile: "yeast_train.svm.bz2", Kind: Multilabel, Rows: 1500, Cols: 103, Classes: 14},
}
