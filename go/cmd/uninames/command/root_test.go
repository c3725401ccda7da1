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

package command

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	Root.SetOut(&buf)
	Root.SetErr(&buf)
	Root.SetArgs(args)
	require.NoError(t, Root.Execute())
	return buf.String()
}

func TestLookup(t *testing.T) {
	out := runCommand(t, "lookup", "latin capital letter a")
	assert.Contains(t, out, "A\n")
	assert.Contains(t, out, "U+0041")
}

func TestEntries(t *testing.T) {
	out := runCommand(t, "entries", "U+FEFF")
	assert.Contains(t, out, "ZERO WIDTH NO-BREAK SPACE")
	assert.Contains(t, out, "BYTE ORDER MARK")
	assert.Contains(t, out, "alternate")
}

func TestLookupUnknownName(t *testing.T) {
	Root.SetArgs([]string{"lookup", "NO SUCH CHARACTER"})
	Root.SetOut(new(bytes.Buffer))
	Root.SetErr(new(bytes.Buffer))
	assert.Error(t, Root.Execute())
}
