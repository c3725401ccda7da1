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

package hangul

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveSound(t *testing.T) {
	testCases := []struct {
		cp    rune
		sound string
	}{
		{0xAC00, "GA"},  // first syllable
		{0xAC01, "GAG"}, // first trailing consonant
		{0xB098, "NA"},
		{0xD55C, "HAN"},
		{0xAE4C, "GGA"}, // doubled leading consonant
		{0xC544, "A"},   // empty leading sound (IEUNG)
		{0xC758, "YI"},
		{0xC6CC, "WEO"},
		{0xD7A3, "HIH"}, // last syllable
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.sound, DeriveSound(tc.cp), "U+%04X", tc.cp)
	}
}

func TestMatchSound(t *testing.T) {
	testCases := []struct {
		sound string
		cp    rune
		ok    bool
	}{
		{"GA", 0xAC00, true},
		{"HAN", 0xD55C, true},
		{"GGA", 0xAE4C, true},
		{"A", 0xC544, true},
		{"HIH", 0xD7A3, true},
		{"", 0, false},
		{"X", 0, false},
		{"GAX", 0, false},  // trailing junk
		{"GAGA", 0, false}, // two syllables
	}

	for _, tc := range testCases {
		cp, ok := MatchSound(tc.sound)
		if !tc.ok {
			assert.False(t, ok, "%q", tc.sound)
			continue
		}
		require.True(t, ok, "%q", tc.sound)
		assert.Equal(t, tc.cp, cp, "%q", tc.sound)
	}
}

func TestSoundRoundTrip(t *testing.T) {
	for i := 0; i < Count; i++ {
		cp := rune(SBase + i)
		got, ok := MatchSound(DeriveSound(cp))
		require.True(t, ok, "U+%04X", cp)
		require.Equal(t, cp, got, "U+%04X", cp)
	}
}

func TestDeriveSoundPanicsOutsideDomain(t *testing.T) {
	assert.Panics(t, func() { DeriveSound(0xABFF) })
	assert.Panics(t, func() { DeriveSound(SBase + Count) })
}
