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

// Package hangul converts between precomposed Hangul syllables and the
// romanized jamo sounds used in their generated character names, per the
// arithmetic decomposition of the Unicode standard (chapter 3.12).
package hangul

import (
	"sort"

	"uninames.dev/uninames/go/uninames/internal/peg"
)

// SBase is the scalar value of the first precomposed syllable (U+AC00).
const SBase = 0xAC00

// Count is the number of precomposed syllables: 19 leading consonants by
// 21 vowels by 28 trailing consonants (including "no trailing").
const Count = leadingCount * vowelCount * trailingCount

const (
	leadingCount  = 19
	vowelCount    = 21
	trailingCount = 28
)

// Jamo short names from the Unicode Character Database (Jamo.txt). The
// leading IEUNG and the absent trailing consonant are the empty sound.
var (
	leadingSounds = [leadingCount]string{
		"G", "GG", "N", "D", "DD", "R", "M", "B", "BB", "S", "SS",
		"", "J", "JJ", "C", "K", "T", "P", "H",
	}
	vowelSounds = [vowelCount]string{
		"A", "AE", "YA", "YAE", "EO", "E", "YEO", "YE", "O", "WA",
		"WAE", "OE", "YO", "U", "WEO", "WE", "WI", "YU", "EU", "YI", "I",
	}
	trailingSounds = [trailingCount]string{
		"", "G", "GG", "GS", "N", "NJ", "NH", "D", "L", "LG", "LM",
		"LB", "LS", "LT", "LP", "LH", "M", "B", "BS", "S", "SS",
		"NG", "J", "C", "K", "T", "P", "H",
	}
)

// soundParser is built once; it matches a full romanized syllable sound and
// yields the three jamo indices.
var soundParser = peg.Seq(
	soundChoice(leadingSounds[:]),
	soundChoice(vowelSounds[:]),
	soundChoice(trailingSounds[:]),
	peg.EOF,
)

// soundChoice builds an ordered choice over one jamo sound table. Longer
// sounds are tried first: some sounds are literal prefixes of others ("G"
// vs "GG") and the first match wins.
func soundChoice(sounds []string) peg.Parser {
	order := make([]int, len(sounds))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return len(sounds[order[a]]) > len(sounds[order[b]])
	})

	alternatives := make([]peg.Parser, len(order))
	for i, idx := range order {
		alternatives[i] = peg.Term(sounds[idx], idx)
	}
	return peg.Choice(alternatives...)
}

// DeriveSound returns the romanized sound of the precomposed syllable cp.
// It panics if cp is outside [SBase, SBase+Count).
func DeriveSound(cp rune) string {
	i := int(cp) - SBase
	if i < 0 || i >= Count {
		panic("hangul: scalar value is not a precomposed syllable")
	}
	leading := i / (vowelCount * trailingCount)
	vowel := (i % (vowelCount * trailingCount)) / trailingCount
	trailing := i % trailingCount
	return leadingSounds[leading] + vowelSounds[vowel] + trailingSounds[trailing]
}

// MatchSound parses a romanized syllable sound and returns the syllable's
// scalar value. The sound must span the whole input.
func MatchSound(sound string) (rune, bool) {
	m, ok := soundParser(sound, 0)
	if !ok {
		return 0, false
	}
	meanings := m.Meaning.([]any)
	leading := meanings[0].(int)
	vowel := meanings[1].(int)
	trailing := meanings[2].(int)
	return rune(leading*vowelCount*trailingCount + vowel*trailingCount + trailing + SBase), true
}
