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

package peg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerm(t *testing.T) {
	p := Term("GG", 1)

	m, ok := p("GGA", 0)
	require.True(t, ok)
	assert.Equal(t, 1, m.Meaning)
	assert.Equal(t, 2, m.Next)

	_, ok = p("GA", 0)
	assert.False(t, ok)

	m, ok = p("AGG", 1)
	require.True(t, ok)
	assert.Equal(t, 3, m.Next)
}

func TestTermEmptyLiteral(t *testing.T) {
	p := Term("", 11)

	m, ok := p("A", 0)
	require.True(t, ok)
	assert.Equal(t, 11, m.Meaning)
	assert.Equal(t, 0, m.Next)

	m, ok = p("", 0)
	require.True(t, ok)
	assert.Equal(t, 0, m.Next)
}

func TestEOF(t *testing.T) {
	_, ok := EOF("AB", 2)
	assert.True(t, ok)

	_, ok = EOF("AB", 1)
	assert.False(t, ok)
}

func TestChoiceOrder(t *testing.T) {
	// First success wins, so prefix literals must come after their
	// extensions.
	p := Choice(Term("GG", "double"), Term("G", "single"))

	m, ok := p("GG", 0)
	require.True(t, ok)
	assert.Equal(t, "double", m.Meaning)
	assert.Equal(t, 2, m.Next)

	m, ok = p("GA", 0)
	require.True(t, ok)
	assert.Equal(t, "single", m.Meaning)

	_, ok = p("X", 0)
	assert.False(t, ok)
}

func TestSeq(t *testing.T) {
	p := Seq(Term("A", 0), Term("B", 1), EOF)

	m, ok := p("AB", 0)
	require.True(t, ok)
	assert.Equal(t, []any{0, 1, nil}, m.Meaning)
	assert.Equal(t, 2, m.Next)

	_, ok = p("AC", 0)
	assert.False(t, ok)

	// Trailing input fails the EOF step.
	_, ok = p("ABC", 0)
	assert.False(t, ok)
}
