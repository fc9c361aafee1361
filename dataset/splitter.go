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
	"math"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/gorse-io/cancerdata/base"
	"github.com/juju/errors"
	"github.com/samber/lo"
)

const (
	TrainSplit = "train"
	ValidSplit = "valid"

	DefaultSeed       = 321
	DefaultValidRatio = 0.2
)

// Split is a named subset of table rows, referenced by row position.
type Split struct {
	name    string
	table   *Table
	indices []int
}

func (s *Split) Name() string {
	return s.name
}

func (s *Split) Count() int {
	return len(s.indices)
}

// Index returns the table position of the i-th row in the split.
func (s *Split) Index(i int) int {
	return s.indices[i]
}

func (s *Split) Indices() []int {
	return append([]int(nil), s.indices...)
}

func (s *Split) Row(i int) []string {
	return s.table.Row(s.indices[i])
}

// Splits maps split names to splits. It always holds TrainSplit and ValidSplit.
type Splits map[string]*Split

type splitOptions struct {
	seed       int64
	validRatio float64
}

type SplitOption func(*splitOptions)

func WithSeed(seed int64) SplitOption {
	return func(o *splitOptions) {
		o.seed = seed
	}
}

func WithValidRatio(ratio float64) SplitOption {
	return func(o *splitOptions) {
		o.validRatio = ratio
	}
}

// SplitData splits a table into a training and a validation split.
//
//	|valid| = floor(ratio * N)
//
// Validation rows are the first |valid| entries of a seeded permutation, in drawn
// order. The permutation is the one numpy.random.RandomState(seed).permutation(N)
// yields, so the selection equals DataFrame.sample(n, random_state=seed). Training
// rows are the remaining rows in table order. The seed must lie in [0, 2^32-1].
func SplitData(table *Table, opts ...SplitOption) (Splits, error) {
	options := splitOptions{
		seed:       DefaultSeed,
		validRatio: DefaultValidRatio,
	}
	for _, opt := range opts {
		opt(&options)
	}
	if options.validRatio < 0 || options.validRatio > 1 || math.IsNaN(options.validRatio) {
		return nil, errors.NotValidf("valid ratio %v", options.validRatio)
	}
	if options.seed < 0 || options.seed > math.MaxUint32 {
		return nil, errors.NotValidf("seed %d out of [0, %d]", options.seed, uint32(math.MaxUint32))
	}
	n := table.Count()
	validSize := int(math.Floor(options.validRatio * float64(n)))
	rng := base.NewRandomGenerator(options.seed)
	validIndices, err := rng.Choice(n, validSize)
	if err != nil {
		return nil, errors.Trace(err)
	}
	validSet := mapset.NewThreadUnsafeSet(validIndices...)
	trainIndices := lo.Filter(lo.Range(n), func(i int, _ int) bool {
		return !validSet.Contains(i)
	})
	return Splits{
		TrainSplit: {name: TrainSplit, table: table, indices: trainIndices},
		ValidSplit: {name: ValidSplit, table: table, indices: validIndices},
	}, nil
}
