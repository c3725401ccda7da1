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

// Package peg implements the minimal parsing-expression primitives used to
// decode generated character names. Parsers are plain function values; every
// parser is pure and safe to share between goroutines once constructed.
package peg

import "strings"

// Match is the result of a successful parse: the meaning attached to the
// matched input and the position of the first unconsumed byte.
type Match struct {
	Meaning any
	Next    int
}

// Parser consumes input starting at pos and reports whether it matched.
type Parser func(input string, pos int) (Match, bool)

// Term matches literal at the current position and yields meaning.
// The empty literal always matches and consumes nothing.
func Term(literal string, meaning any) Parser {
	return func(input string, pos int) (Match, bool) {
		if !strings.HasPrefix(input[pos:], literal) {
			return Match{}, false
		}
		return Match{Meaning: meaning, Next: pos + len(literal)}, true
	}
}

// EOF matches only at the end of the input.
func EOF(input string, pos int) (Match, bool) {
	if pos != len(input) {
		return Match{}, false
	}
	return Match{Next: pos}, true
}

// Choice tries each parser at the same position in argument order and
// returns the first success. There is no backtracking across alternatives:
// grammars built on Choice must order alternatives longest-first when one
// literal is a prefix of another.
func Choice(parsers ...Parser) Parser {
	return func(input string, pos int) (Match, bool) {
		for _, p := range parsers {
			if m, ok := p(input, pos); ok {
				return m, true
			}
		}
		return Match{}, false
	}
}

// Seq threads the position through each parser in order and aggregates the
// sub-meanings into a []any. It fails at the first sub-failure.
func Seq(parsers ...Parser) Parser {
	return func(input string, pos int) (Match, bool) {
		meanings := make([]any, 0, len(parsers))
		for _, p := range parsers {
			m, ok := p(input, pos)
			if !ok {
				return Match{}, false
			}
			meanings = append(meanings, m.Meaning)
			pos = m.Next
		}
		return Match{Meaning: meanings, Next: pos}, true
	}
}
