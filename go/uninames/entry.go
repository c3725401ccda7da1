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
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// NameEntry is one registered name of a value, paired with its kind.
type NameEntry struct {
	Name string
	Type NameType
}

// compareEntries orders entries by name-type preference, breaking ties with
// the default Unicode collation of the names. Code-unit comparison is not
// good enough here: names differing only by space versus hyphen must sort
// with the space first under the default collation tables, independent of
// any locale tailoring.
func compareEntries(a, b NameEntry) int {
	if c := compareTypes(a.Type, b.Type); c != 0 {
		return c
	}
	return collateStrings(a.Name, b.Name)
}

// Collators are stateful and cannot be shared between goroutines, so they
// are pooled. The undefined language selects the untailored default
// ordering, and the default non-ignorable handling keeps punctuation
// significant at the primary level.
var collatorPool = sync.Pool{
	New: func() any {
		return collate.New(language.Und)
	},
}

func collateStrings(a, b string) int {
	col := collatorPool.Get().(*collate.Collator)
	defer collatorPool.Put(col)
	return col.CompareString(a, b)
}
