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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// lineParser iterates over the records of a semicolon-delimited UCD text
// file, skipping comments and blank lines.
type lineParser struct {
	scanner *bufio.Scanner
	fields  []string
	line    int
	err     error
}

func newLineParser(r io.Reader) *lineParser {
	return &lineParser{scanner: bufio.NewScanner(r)}
}

// parse advances to the next record. It returns false at end of input or on
// error; the error is left in p.err.
func (p *lineParser) parse() bool {
	for p.scanner.Scan() {
		p.line++
		text := p.scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		fields := strings.Split(text, ";")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		p.fields = fields
		return true
	}
	p.err = p.scanner.Err()
	return false
}

func (p *lineParser) errorf(format string, args ...any) error {
	return fmt.Errorf("line %d: %s", p.line, fmt.Sprintf(format, args...))
}

// parseScalar parses a single hex scalar value field.
func parseScalar(field string) (rune, error) {
	v, err := strconv.ParseUint(field, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("bad scalar value %q: %w", field, err)
	}
	if v > 0x10FFFF {
		return 0, fmt.Errorf("scalar value %q out of range", field)
	}
	return rune(v), nil
}

// parseScalarList parses a space-separated list of hex scalar values, as
// used by NamedSequences.txt.
func parseScalarList(field string) ([]rune, error) {
	parts := strings.Fields(field)
	cps := make([]rune, 0, len(parts))
	for _, part := range parts {
		cp, err := parseScalar(part)
		if err != nil {
			return nil, err
		}
		cps = append(cps, cp)
	}
	return cps, nil
}
