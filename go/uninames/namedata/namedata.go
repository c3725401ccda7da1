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

// Package namedata ships a ready-made name table and a portable snapshot
// format for tables compiled from other UCD snapshots.
//
// The builtin table is generated by makenamedata from the curated UCD
// excerpt under testdata/: the stable algorithmic families (Hangul
// syllables, unified and compatibility ideographs, code-point labels) plus
// the control aliases, ASCII, and a few exemplary corrections and named
// sequences. Pointing the generator at a full UCD download produces a
// complete table with the same shape.
package namedata

import "uninames.dev/uninames/go/uninames"

//go:generate go run ../tools/makenamedata

// Builtin returns the compiled-in table. The table is built on first use
// and shared; it is immutable and safe for concurrent readers.
func Builtin() *uninames.Table {
	return builtin()
}
