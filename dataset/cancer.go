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

package dataset

import (
	"context"
	"fmt"

	"github.com/gorse-io/cancerdata/base/log"
	"github.com/gorse-io/cancerdata/storage/blob"
	"github.com/juju/errors"
	"go.uber.org/zap"
)

// CancerDataFile is the name of the breast cancer data file inside a dataset directory.
const CancerDataFile = "breast-cancer.csv"

// ReadTable loads a csv file from a store. The reader is closed before returning.
func ReadTable(ctx context.Context, store blob.Store, name string) (*Table, error) {
	r, err := store.Open(ctx, name)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer r.Close()
	table, err := LoadTable(r)
	if err != nil {
		return nil, errors.Annotatef(err, "failed to parse %s", name)
	}
	return table, nil
}

// CancerDataset holds one split of the breast cancer dataset.
type CancerDataset struct {
	table *Table
	split *Split
}

// OpenCancerDataset loads breast-cancer.csv from a local directory. The training split
// is kept if train is true, otherwise the validation split.
func OpenCancerDataset(dir string, train bool, opts ...SplitOption) (*CancerDataset, error) {
	return NewCancerDataset(context.Background(), blob.NewPOSIX(dir), train, opts...)
}

// NewCancerDataset loads breast-cancer.csv from a store.
func NewCancerDataset(ctx context.Context, store blob.Store, train bool, opts ...SplitOption) (*CancerDataset, error) {
	return NewCancerDatasetFromFile(ctx, store, CancerDataFile, train, opts...)
}

// NewCancerDatasetFromFile loads a data file of another name from a store.
func NewCancerDatasetFromFile(ctx context.Context, store blob.Store, name string, train bool, opts ...SplitOption) (*CancerDataset, error) {
	table, err := ReadTable(ctx, store, name)
	if err != nil {
		return nil, errors.Trace(err)
	}
	splits, err := SplitData(table, opts...)
	if err != nil {
		return nil, errors.Trace(err)
	}
	splitName := ValidSplit
	if train {
		splitName = TrainSplit
	}
	split := splits[splitName]
	log.Logger().Info("load cancer dataset",
		zap.String("location", fmt.Sprint(store)),
		zap.String("file", name),
		zap.Int("n_rows", table.Count()),
		zap.String("split", splitName),
		zap.Int("n_split_rows", split.Count()))
	return &CancerDataset{table: table, split: split}, nil
}

// Len returns the number of rows in the kept split.
func (d *CancerDataset) Len() int {
	return d.split.Count()
}

// GetItem is the record accessor for training loops. How rows become features and
// labels has not been decided yet, so it always fails with a NotImplemented error.
func (d *CancerDataset) GetItem() (any, error) {
	return nil, errors.NotImplementedf("item access of cancer dataset")
}

func (d *CancerDataset) SplitName() string {
	return d.split.Name()
}

func (d *CancerDataset) Split() *Split {
	return d.split
}

func (d *CancerDataset) Header() []string {
	return d.table.Header()
}

// Row returns the raw fields of the i-th row of the kept split.
func (d *CancerDataset) Row(i int) ([]string, error) {
	if i < 0 || i >= d.split.Count() {
		return nil, errors.NotValidf("row %d of %d rows", i, d.split.Count())
	}
	return d.split.Row(i), nil
}

// Indices returns the positions of the kept rows in the data file.
func (d *CancerDataset) Indices() []int {
	return d.split.Indices()
}
