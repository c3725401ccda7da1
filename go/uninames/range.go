/*
Copyright 2025 The Uninames Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package uninames

import "fmt"

// MaxScalar is the highest Unicode scalar value.
const MaxScalar = 0x10FFFF

// CounterType selects the algorithm that encodes a range's variable name
// suffix. The zero value means the range has no counter and covers exactly
// one value.
type CounterType int8

const (
	// CounterNone marks a singleton range whose name is the stem alone.
	CounterNone CounterType = iota
	// CounterHex appends the scalar value as zero-padded uppercase hex,
	// at least four digits, preceded by a hyphen.
	CounterHex
	// CounterHangul appends the romanized jamo sounds of a precomposed
	// Hangul syllable, preceded by a space.
	CounterHangul

	numCounterTypes
)

// NameRange describes a maximal contiguous run of scalar values, or one
// named sequence, sharing a single naming rule: a fixed stem plus a counter
// suffix derived from the value.
type NameRange struct {
	// First is the first head scalar the range covers.
	First rune
	// Length is the number of covered head scalars, at least 1. Ranges
	// without a counter always have length 1.
	Length int
	// Stem is the fixed uppercase prefix of every generated name.
	Stem string
	// Counter selects the suffix algorithm.
	Counter CounterType
	// Type classifies the generated names.
	Type NameType
	// Tail holds the trailing scalars of a named sequence, empty for
	// single characters. A value is identified by (head scalar, Tail).
	Tail []rune
}

// Last returns the last head scalar the range covers.
func (r *NameRange) Last() rune {
	return r.First + rune(r.Length) - 1
}

// contains reports whether the head scalar lies inside the range.
func (r *NameRange) contains(cp rune) bool {
	return cp >= r.First && cp <= r.Last()
}

// validate checks the structural invariants of a single range.
func (r *NameRange) validate() error {
	if r.Length < 1 {
		return fmt.Errorf("range %q: length %d < 1", r.Stem, r.Length)
	}
	if r.Counter == CounterNone && r.Length != 1 {
		return fmt.Errorf("range %q: no counter but length %d", r.Stem, r.Length)
	}
	if r.Counter < 0 || r.Counter >= numCounterTypes {
		return fmt.Errorf("range %q: invalid counter type %d", r.Stem, int8(r.Counter))
	}
	if r.Type < 0 || r.Type >= numNameTypes {
		return fmt.Errorf("range %q: invalid name type %d", r.Stem, int8(r.Type))
	}
	if r.First < 0 || r.Last() > MaxScalar {
		return fmt.Errorf("range %q: scalars U+%04X..U+%04X out of bounds", r.Stem, r.First, r.Last())
	}
	for _, cp := range r.Tail {
		if cp < 0 || cp > MaxScalar {
			return fmt.Errorf("range %q: tail scalar U+%04X out of bounds", r.Stem, cp)
		}
	}
	if len(r.Tail) > 0 && r.Length != 1 {
		return fmt.Errorf("range %q: named sequence with length %d", r.Stem, r.Length)
	}
	return nil
}

// CompareRanges is the canonical ordering of a range sequence: ascending
// head scalar, then tail scalars, then name-type preference.
func CompareRanges(a, b *NameRange) int {
	if a.First != b.First {
		if a.First < b.First {
			return -1
		}
		return 1
	}
	if c := compareTails(a.Tail, b.Tail); c != 0 {
		return c
	}
	return compareTypes(a.Type, b.Type)
}

func compareTails(a, b []rune) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

func equalTails(a, b []rune) bool {
	return compareTails(a, b) == 0
}
