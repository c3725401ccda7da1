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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func facadeTable(t *testing.T) *Table {
	t.Helper()
	return mustTable(t, []NameRange{
		{First: 0x00, Length: 1, Stem: "NULL", Type: TypeControl},
		{First: 0x00, Length: 0x110000, Stem: "CONTROL", Counter: CounterHex, Type: TypeLabel},
		{First: 0x41, Length: 1, Stem: "LATIN CAPITAL LETTER A"},
		{First: 0x42, Length: 1, Stem: "LATIN CAPITAL LETTER B"},
	})
}

func TestGet(t *testing.T) {
	tbl := facadeTable(t)

	got, ok := tbl.Get("NULL")
	require.True(t, ok)
	assert.Equal(t, "\x00", got)

	got, ok = tbl.Get("CONTROL-0000")
	require.True(t, ok)
	assert.Equal(t, "\x00", got)

	// Loosely typed input resolves to the same values.
	got, ok = tbl.Get("latin_capital_letter_a", "Latin Capital Letter B")
	require.True(t, ok)
	assert.Equal(t, "AB", got)

	// One unresolvable name fails the whole call.
	_, ok = tbl.Get("LATIN CAPITAL LETTER A", "NO SUCH NAME")
	assert.False(t, ok)

	got, ok = tbl.Get()
	require.True(t, ok)
	assert.Equal(t, "", got)
}

func TestGetStrict(t *testing.T) {
	tbl := facadeTable(t)

	_, err := tbl.GetStrict("NO SUCH NAME")
	assert.ErrorIs(t, err, ErrNoMatch)

	_, err = tbl.GetStrict("LATIN\xff")
	assert.ErrorIs(t, err, ErrInvalidInput)

	got, err := tbl.GetStrict("NULL", "LATIN CAPITAL LETTER A")
	require.NoError(t, err)
	assert.Equal(t, "\x00A", got)
}

func TestPreferredName(t *testing.T) {
	tbl := facadeTable(t)

	name, ok := tbl.PreferredName("\x00")
	require.True(t, ok)
	assert.Equal(t, "NULL", name)

	name, ok = tbl.PreferredName("A")
	require.True(t, ok)
	assert.Equal(t, "LATIN CAPITAL LETTER A", name)

	_, ok = tbl.PreferredName("ÿ")
	// U+00FF is inside the label range, so it does have a name.
	require.True(t, ok)

	_, ok = tbl.PreferredName("")
	assert.False(t, ok)
}

func TestNameEntriesEndToEnd(t *testing.T) {
	tbl := facadeTable(t)

	entries := tbl.NameEntries("\x00")
	require.Len(t, entries, 2)
	assert.Equal(t, NameEntry{Name: "NULL", Type: TypeControl}, entries[0])
	assert.Equal(t, NameEntry{Name: "CONTROL-0000", Type: TypeLabel}, entries[1])
}
