// Copyright 2020 gorse Project Authors
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

package base

import (
	"github.com/juju/errors"
	"gonum.org/v1/gonum/mathext/prng"
)

// RandomGenerator is the random generator for dataset sampling. It is backed by
// MT19937 and draws bounded integers the same way numpy's legacy RandomState does,
// so a permutation produced from a seed matches numpy.random.RandomState(seed).
type RandomGenerator struct {
	src *prng.MT19937
}

// NewRandomGenerator creates a RandomGenerator. Only the lower 32 bits of seed are used.
func NewRandomGenerator(seed int64) RandomGenerator {
	src := prng.NewMT19937()
	src.Seed(uint64(seed))
	return RandomGenerator{src: src}
}

// Uint32 returns the next raw 32-bit output.
func (rng RandomGenerator) Uint32() uint32 {
	return rng.src.Uint32()
}

// Uint64 returns two consecutive 32-bit outputs, high word first.
func (rng RandomGenerator) Uint64() uint64 {
	hi := uint64(rng.src.Uint32())
	return hi<<32 | uint64(rng.src.Uint32())
}

// Interval returns a uniform integer in [0, max] using masked rejection sampling.
func (rng RandomGenerator) Interval(max uint64) uint64 {
	if max == 0 {
		return 0
	}
	mask := max
	mask |= mask >> 1
	mask |= mask >> 2
	mask |= mask >> 4
	mask |= mask >> 8
	mask |= mask >> 16
	mask |= mask >> 32
	if max <= 0xffffffff {
		for {
			if value := uint64(rng.Uint32()) & mask; value <= max {
				return value
			}
		}
	}
	for {
		if value := rng.Uint64() & mask; value <= max {
			return value
		}
	}
}

// Shuffle permutes values in place, walking from the last element to the first.
func (rng RandomGenerator) Shuffle(values []int) {
	for i := len(values) - 1; i > 0; i-- {
		j := rng.Interval(uint64(i))
		values[i], values[j] = values[j], values[i]
	}
}

// Permutation returns a random permutation of [0, n).
func (rng RandomGenerator) Permutation(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	rng.Shuffle(perm)
	return perm
}

// Choice samples size distinct values from [0, n) without replacement. Values are
// returned in the order they were drawn.
func (rng RandomGenerator) Choice(n, size int) ([]int, error) {
	if size < 0 {
		return nil, errors.NotValidf("negative sample size %d", size)
	}
	if size > n {
		return nil, errors.NotValidf("sample size %d larger than population %d", size, n)
	}
	return rng.Permutation(n)[:size], nil
}
