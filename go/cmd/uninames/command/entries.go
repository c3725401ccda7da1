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
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"uninames.dev/uninames/go/uninames"
)

var Entries = &cobra.Command{
	Use:   "entries <value> [<value> ...]",
	Short: "Lists every registered name of a character or named sequence.",
	Long: "Lists the registered names of the value formed by concatenating the arguments,\n" +
		"most preferred first. Each argument is either a literal character or a scalar\n" +
		"in U+ notation.",
	Example: "uninames entries U+0041\nuninames entries U+0023 U+FE0F U+20E3",
	Args:    cobra.MinimumNArgs(1),
	RunE:    commandEntries,
}

func commandEntries(cmd *cobra.Command, args []string) error {
	tbl, err := loadTable()
	if err != nil {
		return err
	}

	var value []rune
	for _, arg := range args {
		if hex, ok := strings.CutPrefix(arg, "U+"); ok {
			cp, err := strconv.ParseUint(hex, 16, 32)
			if err != nil || cp > 0x10FFFF {
				return fmt.Errorf("invalid scalar value %q", arg)
			}
			value = append(value, rune(cp))
			continue
		}
		value = append(value, []rune(arg)...)
	}

	// A single code point goes through the rune API so surrogate labels
	// stay reachable.
	var entries []uninames.NameEntry
	if len(value) == 1 {
		entries = tbl.RuneEntries(value[0])
	} else {
		entries = tbl.NameEntries(string(value))
	}
	if len(entries) == 0 {
		return fmt.Errorf("no registered names for %q", string(value))
	}

	out := tablewriter.NewWriter(cmd.OutOrStdout())
	out.Header("Name", "Type")
	for _, e := range entries {
		tag := e.Type.String()
		if tag == "" {
			tag = "name"
		}
		if err := out.Append(e.Name, tag); err != nil {
			return err
		}
	}
	return out.Render()
}

func init() {
	Root.AddCommand(Entries)
}
