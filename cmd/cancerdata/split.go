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
	"strconv"
	"strings"

	"github.com/gorse-io/cancerdata/base/log"
	"github.com/gorse-io/cancerdata/dataset"
	"github.com/gorse-io/cancerdata/storage/blob"
	"github.com/juju/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSplitCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "split",
		Short: "Show sizes of the train and validation splits",
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
			table, err := dataset.ReadTable(ctx, store, conf.Dataset.File)
			if err != nil {
				return errors.Trace(err)
			}
			splits, err := dataset.SplitData(table, splitOptions(conf)...)
			if err != nil {
				return errors.Trace(err)
			}
			log.Logger().Debug("split dataset",
				zap.String("dir", conf.Dataset.Dir),
				zap.Int64("seed", conf.Dataset.Seed),
				zap.Float64("valid_ratio", conf.Dataset.ValidRatio))

			// count values of a column
			column, _ := cmd.Flags().GetString("column")
			columnIndex := -1
			if column != "" {
				var ok bool
				if columnIndex, ok = table.ColumnIndex(column); !ok {
					return errors.NotFoundf("column %s", column)
				}
			}
			numIndices, _ := cmd.Flags().GetInt("indices")

			header := []string{"split", "rows", "indices"}
			if columnIndex >= 0 {
				header = append(header, column)
			}
			writer := tablewriter.NewWriter(cmd.OutOrStdout())
			writer.Header(lo.ToAnySlice(header)...)
			for _, name := range []string{dataset.TrainSplit, dataset.ValidSplit} {
				split := splits[name]
				row := []string{name, strconv.Itoa(split.Count()), formatIndices(split.Indices(), numIndices)}
				if columnIndex >= 0 {
					row = append(row, formatCounts(split.CountValues(columnIndex)))
				}
				if err = writer.Append(row); err != nil {
					return errors.Trace(err)
				}
			}
			return errors.Trace(writer.Render())
		},
	}
	command.Flags().String("column", "", "count values of a column in each split")
	command.Flags().Int("indices", 10, "number of row indices to show per split, negative for all")
	return command
}

// formatIndices joins the first n indices. A negative n shows all of them.
func formatIndices(indices []int, n int) string {
	if n >= 0 && n < len(indices) {
		return strings.Join(lo.Map(indices[:n], func(i int, _ int) string { return strconv.Itoa(i) }), " ") + " ..."
	}
	return strings.Join(lo.Map(indices, func(i int, _ int) string { return strconv.Itoa(i) }), " ")
}

func formatCounts(counts *dataset.ValueCounts) string {
	parts := make([]string, counts.Len())
	for i := range parts {
		parts[i] = counts.Value(i) + "=" + strconv.Itoa(counts.Count(i))
	}
	return strings.Join(parts, " ")
}
