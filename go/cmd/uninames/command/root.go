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
	"os"

	"github.com/spf13/cobra"

	"uninames.dev/uninames/go/log"
	"uninames.dev/uninames/go/uninames"
	"uninames.dev/uninames/go/uninames/namedata"
)

var (
	snapshotPath string

	Root = &cobra.Command{
		Use:   "uninames",
		Short: "uninames resolves Unicode characters to and from their registered names.",
		Long: "`uninames` is a command-line client for the character name table.\n\n" +
			"It resolves loosely matched names to characters, lists every registered name of a character,\n" +
			"and compiles Unicode Character Database files into portable table snapshots.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return log.Init(cmd.Flags())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Flush()
		},
	}
)

func init() {
	log.RegisterFlags(Root.PersistentFlags())
	Root.PersistentFlags().StringVar(&snapshotPath, "snapshot", "", "table snapshot to load instead of the built-in table")
}

// loadTable opens the table named by --snapshot, or the built-in one.
func loadTable() (*uninames.Table, error) {
	if snapshotPath == "" {
		return namedata.Builtin(), nil
	}
	f, err := os.Open(snapshotPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return namedata.ReadSnapshot(f)
}
