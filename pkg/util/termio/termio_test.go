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
package termio

import (
	"os"
	"path/filepath"
	"testing"
)

func Test_Escape_01(t *testing.T) {
	checkEscape(t, NewAnsiEscape().FgColour(TERM_RED), "\033[31m")
	checkEscape(t, NewAnsiEscape().FgColour(TERM_GREEN).BgColour(TERM_BLACK), "\033[32;40m")
	checkEscape(t, BoldAnsiEscape().FgColour(TERM_BLUE), "\033[1;34m")
	checkEscape(t, ResetAnsiEscape(), "\033[0m")
}

func Test_Escape_02(t *testing.T) {
	if s := NewAnsiEscape().FgColour(TERM_YELLOW).Wrap("ok"); s != "\033[33mok\033[0m" {
		t.Errorf("unexpected wrapping %q", s)
	}
}

func Test_Width_01(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	//
	defer f.Close()
	// Regular files are never terminals
	if IsTerminal(f) {
		t.Errorf("file reported as terminal")
	} else if w := Width(f, 99); w != 99 {
		t.Errorf("expected fallback width, got %d", w)
	}
}

func checkEscape(t *testing.T, escape AnsiEscape, expected string) {
	t.Helper()
	//
	if s := escape.Build(); s != expected {
		t.Errorf("expected %q, got %q", expected, s)
	}
}
