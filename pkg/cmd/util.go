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
	"strings"
	"time"

	"github.com/consensys/go-prover/pkg/util/source"
	"github.com/consensys/go-prover/pkg/util/termio"
	"github.com/consensys/go-prover/pkg/vc"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetUint gets an expected unsigned integer flag, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetDuration gets an expected duration flag, or exits if an error arises.
func GetDuration(cmd *cobra.Command, flag string) time.Duration {
	r, err := cmd.Flags().GetDuration(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// Configure the log level from the persistent flags.
func configureLogging(cmd *cobra.Command) {
	switch {
	case GetFlag(cmd, "trace"):
		log.SetLevel(log.TraceLevel)
	case GetFlag(cmd, "verbose"):
		log.SetLevel(log.DebugLevel)
	case GetFlag(cmd, "quiet"):
		log.SetLevel(log.ErrorLevel)
	}
}

// ReadVCFiles reads and parses a set of VC files, returning the syntax errors
// found (if any).  Failure to read a file is fatal.
func ReadVCFiles(filenames []string) (*vc.File, []source.SyntaxError) {
	for _, n := range filenames {
		log.Debug(fmt.Sprintf("including source file %s", n))
	}
	//
	file, errs, err := vc.ReadFiles(filenames...)
	if err != nil {
		fmt.Println(err)
		os.Exit(3)
	}
	//
	return file, errs
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(err *source.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := max(1, min(line.Length()-lineOffset, span.Length()))
	// Print error + line number
	fmt.Printf("%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
	// Print separator line
	fmt.Println()
	// Print line
	fmt.Println(line.String())
	// Print indent (todo: account for tabs)
	fmt.Print(strings.Repeat(" ", lineOffset))
	// Print highlight
	fmt.Println(strings.Repeat("^", length))
}

// Width of the terminal on standard output, or a default when this is not a
// terminal.
func textWidth(cmd *cobra.Command) uint {
	if width := GetUint(cmd, "textwidth"); width != 0 {
		return width
	}
	//
	return termio.Width(os.Stdout, 80)
}
