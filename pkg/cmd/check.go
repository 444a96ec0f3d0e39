// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-prover/pkg/prover/library"
	"github.com/consensys/go-prover/pkg/term"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] vc_file...",
	Short: "check the theorems and verification conditions in one or more files.",
	Long: `Parse one or more files, reporting syntax errors, and print the
	transformations seeded by each library theorem along with any rules
	which seed none.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		configureLogging(cmd)
		//
		file, errs := ReadVCFiles(args)
		if len(errs) > 0 {
			for _, err := range errs {
				printSyntaxError(&err)
			}
			//
			os.Exit(4)
		}
		//
		lib, err := library.New(file.Theorems, false)
		if err != nil {
			fmt.Println(err)
			os.Exit(4)
		}
		//
		width := textWidth(cmd)
		//
		for _, thm := range lib.Theorems() {
			fmt.Printf("theorem %s\n  %s\n", thm.Name, term.Format(thm.Term, width))
		}
		//
		for _, t := range lib.Transformations() {
			if GetFlag(cmd, "keys") {
				fmt.Printf("  %s\n", t.Key())
			} else {
				fmt.Printf("  %s\n", t)
			}
		}
		//
		for _, f := range lib.Filtered() {
			fmt.Printf("filtered %s\n", f)
		}
		//
		for _, v := range file.VCs {
			fmt.Println(v.String())
		}
	},
}

func init() {
	checkCmd.Flags().Bool("keys", false, "print transformation keys rather than descriptions")
	checkCmd.Flags().Uint("textwidth", 0, "width at which terms are broken (defaults to terminal width)")
	rootCmd.AddCommand(checkCmd)
}
