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
	"fmt"

	"uninames.dev/uninames/go/uninames/hangul"
)

// parseCounter decodes a folded counter suffix into the scalar value it
// names. The suffix has already been through Fold, so the separator that
// derivation emits (hyphen or space) is gone. The decoded value must lie in
// [first, first+length); any malformed suffix simply fails, making the
// enclosing range a non-match.
func parseCounter(suffix string, t CounterType, first rune, length int) (rune, bool) {
	switch t {
	case CounterNone:
		if suffix != "" {
			return 0, false
		}
		return first, true
	case CounterHex:
		cp, ok := parseHexCounter(suffix)
		if !ok || cp < first || cp >= first+rune(length) {
			return 0, false
		}
		return cp, true
	case CounterHangul:
		cp, ok := hangul.MatchSound(suffix)
		if !ok || cp < first || cp >= first+rune(length) {
			return 0, false
		}
		return cp, true
	}
	panic(fmt.Sprintf("uninames: invalid CounterType %d", int8(t)))
}

// deriveCounter encodes a scalar value as the canonical counter suffix,
// including its separator. Ranges without a counter have no suffix.
func deriveCounter(cp rune, t CounterType) string {
	switch t {
	case CounterNone:
		return ""
	case CounterHex:
		return "-" + hexScalar(cp)
	case CounterHangul:
		return " " + hangul.DeriveSound(cp)
	}
	panic(fmt.Sprintf("uninames: invalid CounterType %d", int8(t)))
}

const hexDigits = "0123456789ABCDEF"

// hexScalar formats a scalar value as uppercase hex, zero-padded to at
// least four digits, the way generated character names spell it.
func hexScalar(cp rune) string {
	var buf [8]byte
	i := len(buf)
	for v := uint32(cp); v > 0; v >>= 4 {
		i--
		buf[i] = hexDigits[v&0xF]
	}
	for len(buf)-i < 4 {
		i--
		buf[i] = '0'
	}
	return string(buf[i:])
}

// parseHexCounter decodes the canonical hex spelling of a scalar value:
// at least four digits, and no leading zero once past four digits. Anything
// else, including any non-hex character, fails.
func parseHexCounter(s string) (rune, bool) {
	if len(s) < 4 || len(s) > 6 {
		return 0, false
	}
	if len(s) > 4 && s[0] == '0' {
		return 0, false
	}
	var v uint32
	for i := 0; i < len(s); i++ {
		d, ok := hexDigit(s[i])
		if !ok {
			return 0, false
		}
		v = v<<4 | uint32(d)
	}
	if v > MaxScalar {
		return 0, false
	}
	return rune(v), true
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
