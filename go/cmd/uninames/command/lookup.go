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

	"github.com/spf13/cobra"
)

var Lookup = &cobra.Command{
	Use:   "lookup <name> [<name> ...]",
	Short: "Resolves character names and prints the concatenated result.",
	Long: "Resolves each name to its character and prints the concatenation, followed by\n" +
		"the scalar values in U+ notation. Names are matched loosely: case, spaces,\n" +
		"underscores, and medial hyphens are ignored.",
	Example: "uninames lookup 'LATIN SMALL LETTER A' 'COMBINING ACUTE ACCENT'",
	Args:    cobra.MinimumNArgs(1),
	RunE:    commandLookup,
}

func commandLookup(cmd *cobra.Command, args []string) error {
	tbl, err := loadTable()
	if err != nil {
		return err
	}

	value, err := tbl.GetStrict(args...)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), value)
	for _, cp := range value {
		fmt.Fprintf(cmd.OutOrStdout(), "U+%04X ", cp)
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}

func init() {
	Root.AddCommand(Lookup)
}
