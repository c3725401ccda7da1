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

import "fmt"

// NameType classifies a registered name. The zero value is the strict Name
// property; all other values are alias or label kinds from the Unicode
// Character Database.
type NameType int8

const (
	// TypeName is a strict Name-property name.
	TypeName NameType = iota
	// TypeCorrection is a corrected form of a misspelled strict name.
	TypeCorrection
	// TypeSequence names a registered named sequence of scalar values.
	TypeSequence
	// TypeControl is a commonly used control-character alias.
	TypeControl
	// TypeAlternate is a widely used alternate name.
	TypeAlternate
	// TypeLabel is a code-point label for characters without a strict name.
	TypeLabel
	// TypeFigment is a documented name that was never actually approved.
	TypeFigment
	// TypeAbbreviation is a common abbreviation.
	TypeAbbreviation

	numNameTypes
)

// typePreference lists every NameType from most to least preferred. The
// order decides which name PreferredName reports when a value carries
// several.
var typePreference = [numNameTypes]NameType{
	TypeCorrection,
	TypeName,
	TypeSequence,
	TypeControl,
	TypeAlternate,
	TypeLabel,
	TypeFigment,
	TypeAbbreviation,
}

var typeTags = [numNameTypes]string{
	TypeName:         "",
	TypeCorrection:   "correction",
	TypeSequence:     "sequence",
	TypeControl:      "control",
	TypeAlternate:    "alternate",
	TypeLabel:        "label",
	TypeFigment:      "figment",
	TypeAbbreviation: "abbreviation",
}

// String returns the exposed tag for the type; the strict-name type is the
// empty string.
func (t NameType) String() string {
	if t < 0 || t >= numNameTypes {
		panic(fmt.Sprintf("uninames: invalid NameType %d", int8(t)))
	}
	return typeTags[t]
}

// NameTypeFromTag returns the NameType for an exposed tag, with the empty
// tag mapping to the strict-name type.
func NameTypeFromTag(tag string) (NameType, bool) {
	for t, s := range typeTags {
		if s == tag {
			return NameType(t), true
		}
	}
	return 0, false
}

// compareTypes orders two name types by preference: negative when a is
// preferred over b, zero when equal. Both arguments must be members of the
// closed enum; anything else is a programmer error.
func compareTypes(a, b NameType) int {
	if a == b {
		return 0
	}
	for _, t := range typePreference {
		switch t {
		case a:
			return -1
		case b:
			return 1
		}
	}
	panic(fmt.Sprintf("uninames: invalid NameType pair %d, %d", int8(a), int8(b)))
}
