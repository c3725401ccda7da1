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

import "strings"

// Fold normalizes a character name for loose matching: ASCII letters are
// uppercased, spaces and underscores are dropped, and a hyphen is dropped
// only when it is medial, with both immediate neighbors in the original
// string alphanumeric. A hyphen next to a space, an underscore, another
// hyphen, or a string boundary survives; in particular each of two
// consecutive hyphens survives.
func Fold(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		switch c := name[i]; {
		case c >= 'a' && c <= 'z':
			b.WriteByte(c - 'a' + 'A')
		case c == ' ' || c == '_':
			// dropped
		case c == '-':
			if i > 0 && i+1 < len(name) && isAlnum(name[i-1]) && isAlnum(name[i+1]) {
				continue
			}
			b.WriteByte('-')
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isAlnum(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z':
		return true
	case c >= 'a' && c <= 'z':
		return true
	case c >= '0' && c <= '9':
		return true
	}
	return false
}
