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

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gorse-io/libsvmdata/base/log"
	"github.com/gorse-io/libsvmdata/dataset"
)

var rootCommand = &cobra.Command{
	Use:   "libsvmdata",
	Short: "Download and parse LIBSVM benchmark datasets.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Root().PersistentFlags().GetBool("debug")
		log.SetLogger(cmd.Root().PersistentFlags(), debug)
	},
}

var listCommand = &cobra.Command{
	Use:   "list",
	Short: "List supported datasets.",
	Run: func(cmd *cobra.Command, args []string) {
		catalog := dataset.ListDatasets()
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Name", "Kind", "Rows", "Cols", "Classes"})
		for _, name := range catalog.Names() {
			d := catalog[name]
			classes := "-"
			if d.Kind != dataset.Regression {
				classes = strconv.Itoa(d.Classes)
			}
			table.Append([]string{
				d.Name,
				d.Kind.String(),
				strconv.Itoa(d.Rows),
				strconv.Itoa(d.Cols),
				classes,
			})
		}
		table.Render()
	},
}

var loadCommand = &cobra.Command{
	Use:   "load DATASET",
	Short: "Download, cache and parse a dataset.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dense, _ := cmd.Flags().GetBool("dense")
		force, _ := cmd.Flags().GetBool("force")
		normalize, _ := cmd.Flags().GetBool("normalize")
		quiet, _ := cmd.Flags().GetBool("quiet")
		matrix, labels, err := dataset.Load(args[0], dataset.Options{
			Dense:        dense,
			ForceRefresh: force,
			Normalize:    normalize,
			Verbose:      !quiet,
		})
		if err != nil {
			log.Logger().Fatal("failed to load dataset", zap.String("dataset", args[0]), zap.Error(err))
		}
		rows, cols := matrix.Dims()
		fmt.Printf("loaded %s: %d rows, %d columns, %d labels\n", args[0], rows, cols, labels.Len())
	},
}

func init() {
	log.AddFlags(rootCommand.PersistentFlags())
	rootCommand.PersistentFlags().Bool("debug", false, "use debug log mode")
	loadCommand.Flags().Bool("dense", false, "materialize a dense matrix")
	loadCommand.Flags().Bool("force", false, "re-download even if a cached copy exists")
	loadCommand.Flags().Bool("normalize", false, "rescale columns to unit norm")
	loadCommand.Flags().Bool("quiet", false, "suppress acquisition progress")
	rootCommand.AddCommand(listCommand, loadCommand)
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		log.Logger().Fatal("failed to execute", zap.Error(err))
	}
}
