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

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf16"
)

// Table is an immutable, ordered sequence of name ranges. It holds no other
// state, so a single Table is safe for any number of concurrent readers.
type Table struct {
	ranges []NameRange
}

// NewTable validates the ranges and their canonical ordering (ascending
// head scalar, tail, then type preference) and wraps them in a Table. The
// slice is retained; callers hand over ownership.
func NewTable(ranges []NameRange) (*Table, error) {
	for i := range ranges {
		if err := ranges[i].validate(); err != nil {
			return nil, err
		}
		if i > 0 && CompareRanges(&ranges[i-1], &ranges[i]) > 0 {
			return nil, fmt.Errorf("ranges out of order at index %d (%q after %q)",
				i, ranges[i].Stem, ranges[i-1].Stem)
		}
	}
	return &Table{ranges: ranges}, nil
}

// Ranges returns the underlying sequence. The caller must not modify it.
func (tbl *Table) Ranges() []NameRange {
	return tbl.ranges
}

// Len returns the number of ranges.
func (tbl *Table) Len() int {
	return len(tbl.ranges)
}

// Lookup resolves an already-folded name to the value it denotes. Ranges
// are scanned in order and the first range whose folded stem prefixes the
// name and whose counter accepts the remainder wins; primary-name ranges
// are disjoint by the loader contract, so no ambiguity resolution is
// needed. A failed counter parse just moves the scan along.
func (tbl *Table) Lookup(folded string) (string, bool) {
	for i := range tbl.ranges {
		r := &tbl.ranges[i]
		stem := Fold(r.Stem)
		if !strings.HasPrefix(folded, stem) {
			continue
		}
		cp, ok := parseCounter(folded[len(stem):], r.Counter, r.First, r.Length)
		if !ok {
			continue
		}
		if utf16.IsSurrogate(cp) {
			// Surrogate labels name code points with no string form.
			continue
		}
		return valueString(cp, r.Tail), true
	}
	return "", false
}

// NameEntries collects every registered name of a value, ordered by
// name-type preference and then default collation. Unknown values yield an
// empty slice.
func (tbl *Table) NameEntries(value string) []NameEntry {
	head, tail, ok := splitValue(value)
	if !ok {
		return nil
	}
	return tbl.entries(head, tail)
}

// RuneEntries collects the registered names of a single code point. Unlike
// NameEntries it can reach surrogate code points, which strings cannot hold.
func (tbl *Table) RuneEntries(cp rune) []NameEntry {
	return tbl.entries(cp, nil)
}

func (tbl *Table) entries(head rune, tail []rune) []NameEntry {
	var entries []NameEntry
	for i := range tbl.ranges {
		r := &tbl.ranges[i]
		if !r.contains(head) || !equalTails(r.Tail, tail) {
			continue
		}
		entries = append(entries, NameEntry{
			Name: r.Stem + deriveCounter(head, r.Counter),
			Type: r.Type,
		})
	}
	sort.SliceStable(entries, func(a, b int) bool {
		return compareEntries(entries[a], entries[b]) < 0
	})
	return entries
}

// valueString builds the character string for a head scalar plus the tail
// scalars of a named sequence.
func valueString(head rune, tail []rune) string {
	var b strings.Builder
	b.WriteRune(head)
	for _, cp := range tail {
		b.WriteRune(cp)
	}
	return b.String()
}

// splitValue splits a value into its head scalar and trailing scalars.
func splitValue(value string) (rune, []rune, bool) {
	runes := []rune(value)
	if len(runes) == 0 {
		return 0, nil, false
	}
	return runes[0], runes[1:], true
}
