// Copyright 2025 gorse Project Authors
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

	"github.com/gorse-io/cancerdata/dataset"
	"github.com/gorse-io/cancerdata/storage/blob"
	"github.com/juju/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newRowsCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "rows",
		Short: "Print rows of the train or validation split",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return errors.Trace(err)
			}
			store, err := blob.Open(conf.Dataset.Dir, conf)
			if err != nil {
				return errors.Trace(err)
			}
			ctx, cancel := contextWithTimeout(conf)
			defer cancel()
			train, _ := cmd.Flags().GetBool("train")
			data, err := dataset.NewCancerDatasetFromFile(ctx, store, conf.Dataset.File, train, splitOptions(conf)...)
			if err != nil {
				return errors.Trace(err)
			}

			limit, _ := cmd.Flags().GetInt("limit")
			if limit < 0 || limit > data.Len() {
				limit = data.Len()
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s split: %d rows\n", data.SplitName(), data.Len())
			writer := tablewriter.NewWriter(cmd.OutOrStdout())
			writer.Header(lo.ToAnySlice(append([]string{"#"}, data.Header()...))...)
			indices := data.Indices()
			for i := 0; i < limit; i++ {
				row, err := data.Row(i)
				if err != nil {
					return errors.Trace(err)
				}
				if err = writer.Append(append([]string{fmt.Sprint(indices[i])}, row...)); err != nil {
					return errors.Trace(err)
				}
			}
			return errors.Trace(writer.Render())
		},
	}
	command.Flags().Bool("train", false, "print the training split instead of the validation split")
	command.Flags().Int("limit", 10, "maximum number of rows to print, negative for all")
	return command
}
