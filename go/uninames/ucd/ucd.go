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

// Package ucd turns Unicode Character Database text files into the ordered
// name-range sequence the lookup engine consumes. It is the loader side of
// the compile/read split: everything here runs at table-build time, never
// at query time.
package ucd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/spf13/afero"

	"uninames.dev/uninames/go/uninames"
)

// UCD file names inside the data directory.
const (
	UnicodeDataFile    = "UnicodeData.txt"
	NameAliasesFile    = "NameAliases.txt"
	NamedSequencesFile = "NamedSequences.txt"
)

// Load reads the UCD files in dir and builds the canonical range sequence.
// NameAliases.txt and NamedSequences.txt are optional; UnicodeData.txt is
// not.
func Load(fsys afero.Fs, dir string) ([]uninames.NameRange, error) {
	b := newBuilder()

	if err := loadFile(fsys, path.Join(dir, UnicodeDataFile), false, b.readUnicodeData); err != nil {
		return nil, err
	}
	if err := loadFile(fsys, path.Join(dir, NameAliasesFile), true, b.readNameAliases); err != nil {
		return nil, err
	}
	if err := loadFile(fsys, path.Join(dir, NamedSequencesFile), true, b.readNamedSequences); err != nil {
		return nil, err
	}

	return b.build()
}

func loadFile(fsys afero.Fs, name string, optional bool, read func(io.Reader) error) error {
	f, err := fsys.Open(name)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	defer f.Close()
	if err := read(f); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// aliasTypes maps the NameAliases.txt type field to the exposed name types.
var aliasTypes = map[string]uninames.NameType{
	"correction":   uninames.TypeCorrection,
	"control":      uninames.TypeControl,
	"alternate":    uninames.TypeAlternate,
	"figment":      uninames.TypeFigment,
	"abbreviation": uninames.TypeAbbreviation,
}

// readUnicodeData consumes UnicodeData.txt: individually named characters,
// the bracketed First/Last range pairs, and the per-character "<control>"
// rows. Individually listed names that embed their own scalar value in hex
// (CJK COMPATIBILITY IDEOGRAPH-F900 and friends) are converted to
// hex-counter ranges so that adjacent rows coalesce.
func (b *builder) readUnicodeData(r io.Reader) error {
	p := newLineParser(r)
	var pendingFirst rune
	var pendingTag string

	for p.parse() {
		if len(p.fields) < 2 {
			return p.errorf("too few fields")
		}
		cp, err := parseScalar(p.fields[0])
		if err != nil {
			return p.errorf("%v", err)
		}
		name := p.fields[1]

		if tag, kind, ok := cutRangeTag(name); ok {
			switch kind {
			case rangeFirst:
				pendingFirst, pendingTag = cp, tag
			case rangeLast:
				if tag != pendingTag {
					return p.errorf("unpaired range marker %q", name)
				}
				if err := b.addRangePair(pendingFirst, cp, tag); err != nil {
					return p.errorf("%v", err)
				}
				pendingTag = ""
			}
			continue
		}

		if name == "<control>" {
			b.addLabel(cp, cp, "control")
			continue
		}
		if strings.HasPrefix(name, "<") {
			return p.errorf("unrecognized name field %q", name)
		}
		b.addName(cp, name)
	}
	return p.err
}

// readNameAliases consumes NameAliases.txt records of the form
// "cp;alias;type".
func (b *builder) readNameAliases(r io.Reader) error {
	p := newLineParser(r)
	for p.parse() {
		if len(p.fields) < 3 {
			return p.errorf("too few fields")
		}
		cp, err := parseScalar(p.fields[0])
		if err != nil {
			return p.errorf("%v", err)
		}
		typ, ok := aliasTypes[p.fields[2]]
		if !ok {
			return p.errorf("unknown alias type %q", p.fields[2])
		}
		b.addAlias(cp, p.fields[1], typ)
	}
	return p.err
}

// readNamedSequences consumes NamedSequences.txt records of the form
// "name;cp cp...".
func (b *builder) readNamedSequences(r io.Reader) error {
	p := newLineParser(r)
	for p.parse() {
		if len(p.fields) < 2 {
			return p.errorf("too few fields")
		}
		cps, err := parseScalarList(p.fields[1])
		if err != nil {
			return p.errorf("%v", err)
		}
		if len(cps) < 2 {
			return p.errorf("named sequence %q with %d scalar values", p.fields[0], len(cps))
		}
		b.addSequence(p.fields[0], cps)
	}
	return p.err
}

type rangeKind int

const (
	rangeFirst rangeKind = iota
	rangeLast
)

// cutRangeTag recognizes the "<Tag, First>" / "<Tag, Last>" markers of
// UnicodeData.txt and returns the bare tag.
func cutRangeTag(name string) (string, rangeKind, bool) {
	if !strings.HasPrefix(name, "<") || !strings.HasSuffix(name, ">") {
		return "", 0, false
	}
	inner := name[1 : len(name)-1]
	if tag, ok := strings.CutSuffix(inner, ", First"); ok {
		return tag, rangeFirst, true
	}
	if tag, ok := strings.CutSuffix(inner, ", Last"); ok {
		return tag, rangeLast, true
	}
	return "", 0, false
}
