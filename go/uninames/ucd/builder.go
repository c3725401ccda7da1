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
	"fmt"
	"sort"
	"strings"

	"uninames.dev/uninames/go/uninames"
)

// builder accumulates name ranges and tracks which scalars are assigned,
// so the unassigned remainder can be labeled afterwards.
type builder struct {
	ranges   []uninames.NameRange
	assigned []span
}

type span struct {
	first, last rune
}

func newBuilder() *builder {
	return &builder{}
}

// addName records an individually listed strict name. Names that embed
// their own scalar value in canonical hex become hex-counter ranges, so
// consecutive rows of the same family collapse into one record.
func (b *builder) addName(cp rune, name string) {
	if stem, ok := strings.CutSuffix(name, fmt.Sprintf("-%04X", cp)); ok && stem != "" {
		b.append(uninames.NameRange{
			First:   cp,
			Length:  1,
			Stem:    stem,
			Counter: uninames.CounterHex,
		})
	} else {
		b.append(uninames.NameRange{First: cp, Length: 1, Stem: name})
	}
	b.mark(cp, cp)
}

// addLabel records a code-point label range (control-, surrogate-, ...).
func (b *builder) addLabel(first, last rune, stem string) {
	b.append(uninames.NameRange{
		First:   first,
		Length:  int(last-first) + 1,
		Stem:    stem,
		Counter: uninames.CounterHex,
		Type:    uninames.TypeLabel,
	})
	b.mark(first, last)
}

// addRangePair maps a UnicodeData First/Last marker pair onto the naming
// rule of its family.
func (b *builder) addRangePair(first, last rune, tag string) error {
	switch {
	case strings.Contains(tag, "Surrogate"):
		b.addLabel(first, last, "surrogate")
	case strings.Contains(tag, "Private Use"):
		b.addLabel(first, last, "private-use")
	case tag == "Hangul Syllable":
		b.append(uninames.NameRange{
			First:   first,
			Length:  int(last-first) + 1,
			Stem:    "HANGUL SYLLABLE",
			Counter: uninames.CounterHangul,
		})
		b.mark(first, last)
	case strings.HasPrefix(tag, "CJK Ideograph"):
		b.addHexRange(first, last, "CJK UNIFIED IDEOGRAPH")
	case strings.HasPrefix(tag, "Tangut Ideograph"):
		b.addHexRange(first, last, "TANGUT IDEOGRAPH")
	case tag == "Khitan Small Script":
		b.addHexRange(first, last, "KHITAN SMALL SCRIPT CHARACTER")
	case tag == "Nushu":
		b.addHexRange(first, last, "NUSHU CHARACTER")
	default:
		return fmt.Errorf("unrecognized range tag %q", tag)
	}
	return nil
}

func (b *builder) addHexRange(first, last rune, stem string) {
	b.append(uninames.NameRange{
		First:   first,
		Length:  int(last-first) + 1,
		Stem:    stem,
		Counter: uninames.CounterHex,
	})
	b.mark(first, last)
}

// addAlias records one NameAliases.txt record. Aliases never assign a
// scalar by themselves.
func (b *builder) addAlias(cp rune, alias string, typ uninames.NameType) {
	b.append(uninames.NameRange{First: cp, Length: 1, Stem: alias, Type: typ})
}

// addSequence records one NamedSequences.txt record.
func (b *builder) addSequence(name string, cps []rune) {
	b.append(uninames.NameRange{
		First:  cps[0],
		Length: 1,
		Stem:   name,
		Type:   uninames.TypeSequence,
		Tail:   append([]rune(nil), cps[1:]...),
	})
}

// append adds a range, coalescing it into the previous one when both are
// hex-counter ranges of the same stem, type, and no tail, and the scalars
// are contiguous. UCD files list scalars in ascending order, so checking
// only the last appended range is enough.
func (b *builder) append(r uninames.NameRange) {
	if n := len(b.ranges); n > 0 && r.Counter == uninames.CounterHex && len(r.Tail) == 0 {
		prev := &b.ranges[n-1]
		if prev.Counter == uninames.CounterHex &&
			prev.Stem == r.Stem &&
			prev.Type == r.Type &&
			len(prev.Tail) == 0 &&
			prev.First+rune(prev.Length) == r.First {
			prev.Length += r.Length
			return
		}
	}
	b.ranges = append(b.ranges, r)
}

func (b *builder) mark(first, last rune) {
	b.assigned = append(b.assigned, span{first, last})
}

// build labels the unassigned remainder (noncharacter- and reserved-) and
// returns the canonically sorted sequence.
func (b *builder) build() ([]uninames.NameRange, error) {
	blocked := mergeSpans(append(b.assigned, noncharacterSpans()...))

	for _, nc := range noncharacterSpans() {
		b.addLabel(nc.first, nc.last, "noncharacter")
	}

	next := rune(0)
	for _, s := range blocked {
		if next < s.first {
			b.addLabel(next, s.first-1, "reserved")
		}
		if s.last+1 > next {
			next = s.last + 1
		}
	}
	if next <= uninames.MaxScalar {
		b.addLabel(next, uninames.MaxScalar, "reserved")
	}

	ranges := b.ranges
	sort.SliceStable(ranges, func(i, j int) bool {
		return uninames.CompareRanges(&ranges[i], &ranges[j]) < 0
	})
	return ranges, nil
}

// noncharacterSpans lists the 66 permanently unassigned noncharacters.
func noncharacterSpans() []span {
	spans := []span{{0xFDD0, 0xFDEF}}
	for plane := rune(0); plane <= 0x10; plane++ {
		base := plane << 16
		spans = append(spans, span{base | 0xFFFE, base | 0xFFFF})
	}
	return spans
}

func mergeSpans(spans []span) []span {
	if len(spans) == 0 {
		return nil
	}
	// Copy: the caller keeps appending to the underlying slice afterwards.
	spans = append([]span(nil), spans...)
	sort.Slice(spans, func(i, j int) bool {
		return spans[i].first < spans[j].first
	})
	merged := spans[:1]
	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if s.first <= last.last+1 {
			if s.last > last.last {
				last.last = s.last
			}
			continue
		}
		merged = append(merged, s)
	}
	return merged
}
