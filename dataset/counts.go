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

// ValueCounts counts string values, remembering the order they first appeared in.
type ValueCounts struct {
	index  map[string]int
	values []string
	counts []int
}

func NewValueCounts() *ValueCounts {
	return &ValueCounts{index: make(map[string]int)}
}

// Add counts a value and returns its position.
func (v *ValueCounts) Add(value string) int {
	if i, ok := v.index[value]; ok {
		v.counts[i]++
		return i
	}
	i := len(v.values)
	v.index[value] = i
	v.values = append(v.values, value)
	v.counts = append(v.counts, 1)
	return i
}

// Len returns the number of distinct values.
func (v *ValueCounts) Len() int {
	return len(v.values)
}

func (v *ValueCounts) Value(i int) string {
	return v.values[i]
}

func (v *ValueCounts) Count(i int) int {
	return v.counts[i]
}

// Freq returns how many times a value was added.
func (v *ValueCounts) Freq(value string) int {
	if i, ok := v.index[value]; ok {
		return v.counts[i]
	}
	return 0
}

// CountValues counts values of a column over the rows of a split.
func (s *Split) CountValues(column int) *ValueCounts {
	counts := NewValueCounts()
	for _, i := range s.indices {
		counts.Add(s.table.Row(i)[column])
	}
	return counts
}
