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

package namedata

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uninames.dev/uninames/go/test/utils"
)

func TestBuiltinGet(t *testing.T) {
	tbl := Builtin()

	cases := []struct {
		names []string
		want  string
	}{
		{[]string{"LATIN CAPITAL LETTER A"}, "A"},
		{[]string{"latin capital letter a"}, "A"},
		{[]string{"NULL"}, "\x00"},
		{[]string{"NUL"}, "\x00"},
		{[]string{"control-0007"}, "\x07"},
		{[]string{"CJK UNIFIED IDEOGRAPH-4E00"}, "一"},
		{[]string{"HANGUL SYLLABLE GA"}, "가"},
		{[]string{"HANGUL SYLLABLE GAG"}, "각"},
		{[]string{"KEYCAP DIGIT ONE"}, "1️⃣"},
		{[]string{"BYTE ORDER MARK"}, "\uFEFF"},
		{[]string{"LEFT CURLY BRACKET", "RIGHT CURLY BRACKET"}, "{}"},
	}
	for _, tc := range cases {
		t.Run(tc.names[0], func(t *testing.T) {
			got, ok := tbl.Get(tc.names...)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}

	_, ok := tbl.Get("NO SUCH CHARACTER NAME")
	assert.False(t, ok)
}

func TestBuiltinPreferredName(t *testing.T) {
	tbl := Builtin()

	cases := []struct {
		value string
		want  string
	}{
		// The correction wins over the misspelled strict name.
		{"︘", "PRESENTATION FORM FOR VERTICAL RIGHT WHITE LENTICULAR BRACKET"},
		// The control alias with a space collates before the dashed one.
		{"", "SINGLE SHIFT THREE"},
		{"\uFEFF", "ZERO WIDTH NO-BREAK SPACE"},
		{"\x00", "NULL"},
		{"각", "HANGUL SYLLABLE GAG"},
		{"1️⃣", "KEYCAP DIGIT ONE"},
	}
	for _, tc := range cases {
		got, ok := tbl.PreferredName(tc.value)
		require.True(t, ok, "PreferredName(%q)", tc.value)
		assert.Equal(t, tc.want, got)
	}

	_, ok := tbl.PreferredName("")
	assert.False(t, ok)
}

func TestSnapshotRoundTrip(t *testing.T) {
	defer utils.EnsureNoLeaks(t)
	tbl := Builtin()

	var buf bytes.Buffer
	require.NoError(t, WriteSnapshot(&buf, tbl))

	got, err := ReadSnapshot(&buf)
	require.NoError(t, err)
	require.Equal(t, tbl.Len(), got.Len())
	if diff := cmp.Diff(tbl.Ranges(), got.Ranges()); diff != "" {
		t.Errorf("ranges changed across the round trip (-want +got):\n%s", diff)
	}

	name, ok := got.PreferredName("각")
	require.True(t, ok)
	assert.Equal(t, "HANGUL SYLLABLE GAG", name)
}

func TestReadSnapshotRejectsGarbage(t *testing.T) {
	_, err := ReadSnapshot(bytes.NewReader([]byte("not a snapshot")))
	assert.Error(t, err)
}
