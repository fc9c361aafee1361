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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueCounts(t *testing.T) {
	counts := NewValueCounts()
	assert.Equal(t, 0, counts.Add("M"))
	assert.Equal(t, 1, counts.Add("B"))
	assert.Equal(t, 1, counts.Add("B"))
	assert.Equal(t, 0, counts.Add("M"))
	assert.Equal(t, 1, counts.Add("B"))
	assert.Equal(t, 2, counts.Len())
	assert.Equal(t, "M", counts.Value(0))
	assert.Equal(t, "B", counts.Value(1))
	assert.Equal(t, 2, counts.Count(0))
	assert.Equal(t, 3, counts.Count(1))
	assert.Equal(t, 3, counts.Freq("B"))
	assert.Zero(t, counts.Freq("X"))
}
