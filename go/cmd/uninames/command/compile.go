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

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"uninames.dev/uninames/go/log"
	"uninames.dev/uninames/go/uninames"
	"uninames.dev/uninames/go/uninames/namedata"
	"uninames.dev/uninames/go/uninames/ucd"
)

var compileArgs = struct {
	ucdDir string
	out    string
}{
	ucdDir: ".",
	out:    "uninames.snapshot",
}

var Compile = &cobra.Command{
	Use:   "compile",
	Short: "Compiles Unicode Character Database files into a table snapshot.",
	Long: "Compiles UnicodeData.txt, NameAliases.txt, and NamedSequences.txt from the\n" +
		"--ucd directory into a snapshot loadable with --snapshot.",
	Args: cobra.NoArgs,
	RunE: commandCompile,
}

func commandCompile(cmd *cobra.Command, args []string) error {
	ranges, err := ucd.Load(afero.NewOsFs(), compileArgs.ucdDir)
	if err != nil {
		return err
	}
	tbl, err := uninames.NewTable(ranges)
	if err != nil {
		return err
	}

	f, err := os.Create(compileArgs.out)
	if err != nil {
		return err
	}
	if err := namedata.WriteSnapshot(f, tbl); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	log.Infof("wrote %s: %s ranges", compileArgs.out, humanize.Comma(int64(tbl.Len())))
	return nil
}

func init() {
	Compile.Flags().StringVar(&compileArgs.ucdDir, "ucd", compileArgs.ucdDir, "directory holding the UCD source files")
	Compile.Flags().StringVar(&compileArgs.out, "out", compileArgs.out, "output snapshot file")
	Root.AddCommand(Compile)
}
