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

// Package uninames resolves Unicode characters to and from their registered
// names without carrying the full name table: a compact sequence of name
// ranges stands in for hundreds of thousands of names, and the variable
// part of each name is recomputed on demand.
//
// Name arguments are matched loosely: case, spaces, underscores, and medial
// hyphens are ignored, per the folding rules of Fold. Results always use
// the canonical spelling.
package uninames

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	// ErrInvalidInput reports an argument that is not well-formed UTF-8.
	ErrInvalidInput = errors.New("uninames: input is not valid UTF-8")
	// ErrNoMatch reports a name that resolves to no value.
	ErrNoMatch = errors.New("uninames: no such name")
)

// Get resolves each name and concatenates the resolved values. It fails if
// any name is unknown.
func (tbl *Table) Get(names ...string) (string, bool) {
	s, err := tbl.GetStrict(names...)
	return s, err == nil
}

// GetStrict is Get with the failure cause: ErrInvalidInput for an argument
// that is not valid UTF-8, ErrNoMatch (wrapped with the offending name)
// otherwise.
func (tbl *Table) GetStrict(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		if !utf8.ValidString(name) {
			return "", fmt.Errorf("%w: %q", ErrInvalidInput, name)
		}
		value, ok := tbl.Lookup(Fold(name))
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrNoMatch, name)
		}
		b.WriteString(value)
	}
	return b.String(), nil
}

// PreferredName returns the most preferred registered name of a value:
// the first entry of NameEntries.
func (tbl *Table) PreferredName(value string) (string, bool) {
	entries := tbl.NameEntries(value)
	if len(entries) == 0 {
		return "", false
	}
	return entries[0].Name, true
}
