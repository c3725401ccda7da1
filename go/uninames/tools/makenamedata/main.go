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

// makenamedata compiles Unicode Character Database files into the Go name
// table embedded in the namedata package.
package main

import (
	"fmt"
	"log"

	"github.com/dave/jennifer/jen"
	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"uninames.dev/uninames/go/uninames"
	"uninames.dev/uninames/go/uninames/ucd"
)

const licenseFileHeader = `Copyright 2025 The Uninames Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.`

const pkgUninames = "uninames.dev/uninames/go/uninames"

var (
	ucdDir       = pflag.String("ucd", "testdata", "directory holding the UCD source files")
	out          = pflag.String("out", "data.go", "output file")
	keepReserved = pflag.Bool("keep-reserved", false, "emit reserved code-point labels instead of dropping them")
)

var counterIdents = map[uninames.CounterType]string{
	uninames.CounterHex:    "CounterHex",
	uninames.CounterHangul: "CounterHangul",
}

var typeIdents = map[uninames.NameType]string{
	uninames.TypeCorrection:   "TypeCorrection",
	uninames.TypeSequence:     "TypeSequence",
	uninames.TypeControl:      "TypeControl",
	uninames.TypeAlternate:    "TypeAlternate",
	uninames.TypeLabel:        "TypeLabel",
	uninames.TypeFigment:      "TypeFigment",
	uninames.TypeAbbreviation: "TypeAbbreviation",
}

func hexScalar(cp rune) *jen.Statement {
	return jen.Id(fmt.Sprintf("0x%04X", cp))
}

// rangeLiteral renders one NameRange as a single-line composite literal,
// omitting zero-valued fields.
func rangeLiteral(r *uninames.NameRange) jen.Code {
	fields := []jen.Code{
		jen.Id("First").Op(":").Add(hexScalar(r.First)),
		jen.Id("Length").Op(":").Lit(r.Length),
		jen.Id("Stem").Op(":").Lit(r.Stem),
	}
	if r.Counter != uninames.CounterNone {
		fields = append(fields, jen.Id("Counter").Op(":").Qual(pkgUninames, counterIdents[r.Counter]))
	}
	if r.Type != uninames.TypeName {
		fields = append(fields, jen.Id("Type").Op(":").Qual(pkgUninames, typeIdents[r.Type]))
	}
	if len(r.Tail) > 0 {
		var tail []jen.Code
		for _, cp := range r.Tail {
			tail = append(tail, hexScalar(cp))
		}
		fields = append(fields, jen.Id("Tail").Op(":").Index().Id("rune").Values(tail...))
	}
	return jen.Values(fields...)
}

func makedata(ranges []uninames.NameRange) *jen.File {
	f := jen.NewFilePathName(pkgUninames+"/namedata", "namedata")
	f.HeaderComment(licenseFileHeader)
	f.HeaderComment("Code generated by makenamedata. DO NOT EDIT.")

	var literals []jen.Code
	for i := range ranges {
		literals = append(literals, rangeLiteral(&ranges[i]))
	}
	f.Var().Id("builtinRanges").Op("=").Index().Qual(pkgUninames, "NameRange").Custom(jen.Options{
		Open:      "{",
		Close:     "}",
		Separator: ",",
		Multi:     true,
	}, literals...)
	return f
}

func isReserved(r *uninames.NameRange) bool {
	return r.Type == uninames.TypeLabel && r.Stem == "reserved"
}

func main() {
	pflag.Parse()

	ranges, err := ucd.Load(afero.NewOsFs(), *ucdDir)
	if err != nil {
		log.Fatal(err)
	}
	if !*keepReserved {
		kept := ranges[:0]
		for i := range ranges {
			if !isReserved(&ranges[i]) {
				kept = append(kept, ranges[i])
			}
		}
		ranges = kept
	}

	var names int64
	for i := range ranges {
		names += int64(ranges[i].Length)
	}

	if err := makedata(ranges).Save(*out); err != nil {
		log.Fatal(err)
	}
	log.Printf("saved '%s': %s ranges, %s names", *out,
		humanize.Comma(int64(len(ranges))), humanize.Comma(names))
}
