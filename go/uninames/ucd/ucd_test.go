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

package ucd

import (
	"io/fs"
	"path"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uninames.dev/uninames/go/uninames"
)

const unicodeDataSample = `0000;<control>;Cc;0;BN;;;;;N;NULL;;;;
0001;<control>;Cc;0;BN;;;;;N;START OF HEADING;;;;
0020;SPACE;Zs;0;WS;;;;;N;;;;;
0021;EXCLAMATION MARK;Po;0;ON;;;;;N;;;;;
0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;;
008F;<control>;Cc;0;BN;;;;;N;;;;;
4E00;<CJK Ideograph, First>;Lo;0;L;;;;;N;;;;;
9FFF;<CJK Ideograph, Last>;Lo;0;L;;;;;N;;;;;
AC00;<Hangul Syllable, First>;Lo;0;L;;;;;N;;;;;
D7A3;<Hangul Syllable, Last>;Lo;0;L;;;;;N;;;;;
D800;<Non Private Use High Surrogate, First>;Cs;0;L;;;;;N;;;;;
DB7F;<Non Private Use High Surrogate, Last>;Cs;0;L;;;;;N;;;;;
E000;<Private Use, First>;Co;0;L;;;;;N;;;;;
F8FF;<Private Use, Last>;Co;0;L;;;;;N;;;;;
F900;CJK COMPATIBILITY IDEOGRAPH-F900;Lo;0;L;;;;;N;;;;;
F901;CJK COMPATIBILITY IDEOGRAPH-F901;Lo;0;L;;;;;N;;;;;
FEFF;ZERO WIDTH NO-BREAK SPACE;Cf;0;BN;;;;;N;BYTE ORDER MARK;;;;
`

const nameAliasesSample = `# NameAliases
0000;NULL;control
0000;NUL;abbreviation
0001;START OF HEADING;control
0001;SOH;abbreviation
008F;SINGLE SHIFT THREE;control
008F;SS3;abbreviation
FEFF;BYTE ORDER MARK;alternate
FEFF;BOM;abbreviation
`

const namedSequencesSample = `# NamedSequences
KEYCAP NUMBER SIGN;0023 FE0F 20E3
`

func sampleFs(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	files := map[string]string{
		UnicodeDataFile:    unicodeDataSample,
		NameAliasesFile:    nameAliasesSample,
		NamedSequencesFile: namedSequencesSample,
	}
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fsys, "ucd/"+name, []byte(content), 0o644))
	}
	return fsys
}

func loadSample(t *testing.T) *uninames.Table {
	t.Helper()
	ranges, err := Load(sampleFs(t), "ucd")
	require.NoError(t, err)
	tbl, err := uninames.NewTable(ranges)
	require.NoError(t, err)
	return tbl
}

func TestLoadMissingUnicodeData(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "ucd")
	assert.Error(t, err)
}

// brokenFs fails every Open of a given file with a permission error.
type brokenFs struct {
	afero.Fs
	name string
}

func (fsys *brokenFs) Open(name string) (afero.File, error) {
	if path.Base(name) == fsys.name {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
	}
	return fsys.Fs.Open(name)
}

func TestLoadUnreadableOptionalFile(t *testing.T) {
	// Optional files may be absent, but an unreadable one is an error.
	_, err := Load(&brokenFs{Fs: sampleFs(t), name: NameAliasesFile}, "ucd")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestLoadResolvesNames(t *testing.T) {
	tbl := loadSample(t)

	testCases := []struct {
		name  string
		value string
	}{
		{"NULL", "\x00"},
		{"NUL", "\x00"},
		{"control-0001", "\x01"},
		{"SPACE", " "},
		{"Latin Capital Letter A", "A"},
		{"CJK UNIFIED IDEOGRAPH-4E00", "一"},
		{"CJK COMPATIBILITY IDEOGRAPH-F901", "更"},
		{"Hangul Syllable Gag", "각"},
		{"Keycap Number Sign", "#️⃣"},
		{"reserved-0002", "\x02"},
		{"noncharacter-FDD0", "﷐"},
		{"private-use-E000", ""},
	}

	for _, tc := range testCases {
		got, ok := tbl.Get(tc.name)
		require.True(t, ok, "%q", tc.name)
		assert.Equal(t, tc.value, got, "%q", tc.name)
	}

	_, ok := tbl.Get("NO SUCH NAME")
	assert.False(t, ok)
}

func TestLoadCoalescesHexRuns(t *testing.T) {
	ranges, err := Load(sampleFs(t), "ucd")
	require.NoError(t, err)

	// The two compatibility ideograph rows collapse into one range, and
	// the two leading control rows into another.
	var compat, control *uninames.NameRange
	for i := range ranges {
		r := &ranges[i]
		switch {
		case r.Stem == "CJK COMPATIBILITY IDEOGRAPH":
			compat = r
		case r.Stem == "control" && r.First == 0:
			control = r
		}
	}
	require.NotNil(t, compat)
	assert.Equal(t, rune(0xF900), compat.First)
	assert.Equal(t, 2, compat.Length)
	assert.Equal(t, uninames.CounterHex, compat.Counter)

	require.NotNil(t, control)
	assert.Equal(t, 2, control.Length)
	assert.Equal(t, uninames.TypeLabel, control.Type)
}

func TestLoadIdeographicRangeTags(t *testing.T) {
	const data = `17000;<Tangut Ideograph, First>;Lo;0;L;;;;;N;;;;;
187F7;<Tangut Ideograph, Last>;Lo;0;L;;;;;N;;;;;
18B00;<Khitan Small Script, First>;Lo;0;L;;;;;N;;;;;
18CD5;<Khitan Small Script, Last>;Lo;0;L;;;;;N;;;;;
1B170;<Nushu, First>;Lo;0;L;;;;;N;;;;;
1B2FB;<Nushu, Last>;Lo;0;L;;;;;N;;;;;
`
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, UnicodeDataFile, []byte(data), 0o644))

	ranges, err := Load(fsys, "")
	require.NoError(t, err)
	tbl, err := uninames.NewTable(ranges)
	require.NoError(t, err)

	testCases := []struct {
		name  string
		value string
	}{
		{"TANGUT IDEOGRAPH-17000", "\U00017000"},
		{"KHITAN SMALL SCRIPT CHARACTER-18B00", "\U00018B00"},
		{"Khitan Small Script Character-18CD5", "\U00018CD5"},
		{"NUSHU CHARACTER-1B170", "\U0001B170"},
		{"nushu character-1B2FB", "\U0001B2FB"},
	}

	for _, tc := range testCases {
		got, ok := tbl.Get(tc.name)
		require.True(t, ok, "%q", tc.name)
		assert.Equal(t, tc.value, got, "%q", tc.name)
	}
}

func TestLoadEntries(t *testing.T) {
	tbl := loadSample(t)

	entries := tbl.NameEntries("\x00")
	require.Len(t, entries, 3)
	assert.Equal(t, uninames.NameEntry{Name: "NULL", Type: uninames.TypeControl}, entries[0])
	assert.Equal(t, uninames.NameEntry{Name: "control-0000", Type: uninames.TypeLabel}, entries[1])
	assert.Equal(t, uninames.NameEntry{Name: "NUL", Type: uninames.TypeAbbreviation}, entries[2])

	entries = tbl.NameEntries("\uFEFF")
	require.Len(t, entries, 3)
	assert.Equal(t, "ZERO WIDTH NO-BREAK SPACE", entries[0].Name)
	assert.Equal(t, uninames.NameEntry{Name: "BYTE ORDER MARK", Type: uninames.TypeAlternate}, entries[1])
	assert.Equal(t, uninames.NameEntry{Name: "BOM", Type: uninames.TypeAbbreviation}, entries[2])

	// Surrogates have no string form, so they are reachable by rune only.
	surrogate := tbl.RuneEntries(0xD800)
	require.Len(t, surrogate, 1)
	assert.Equal(t, "surrogate-D800", surrogate[0].Name)
	_, ok := tbl.Get("surrogate-D800")
	assert.False(t, ok)

	name, ok := tbl.PreferredName("")
	require.True(t, ok)
	assert.Equal(t, "SINGLE SHIFT THREE", name)
}

func TestLoadRejectsMalformedFiles(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{"bad scalar", "ZZZZ;SOMETHING;Lu;0;L;;;;;N;;;;;\n"},
		{"unpaired last", "4E00;<CJK Ideograph, Last>;Lo;0;L;;;;;N;;;;;\n"},
		{"unknown tag", "4E00;<Mystery Block, First>;Lo;0;L;;;;;N;;;;;\n4E01;<Mystery Block, Last>;Lo;0;L;;;;;N;;;;;\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fsys, UnicodeDataFile, []byte(tc.data), 0o644))
			_, err := Load(fsys, "")
			assert.Error(t, err)
		})
	}
}
