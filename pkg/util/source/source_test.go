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
package source

import "testing"

func Test_SourceFile_01(t *testing.T) {
	srcfile := NewSourceFile("test.vc", []byte("(a)\n(b c)\n(d)"))
	lines := srcfile.Lines()
	//
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	} else if lines[1].String() != "(b c)" || lines[1].Number() != 2 || lines[1].Start() != 4 {
		t.Fatalf("unexpected line %q", lines[1].String())
	}
}

func Test_SourceFile_02(t *testing.T) {
	srcfile := NewSourceFile("test.vc", []byte("(a)\n(b c)\n"))
	err := srcfile.SyntaxError(NewSpan(5, 6), "unknown symbol")
	//
	if err.Error() != "test.vc:2: unknown symbol" {
		t.Fatalf("unexpected error %q", err.Error())
	}
	//
	line := err.FirstEnclosingLine()
	if line.String() != "(b c)" {
		t.Fatalf("unexpected enclosing line %q", line.String())
	}
}

func Test_SourceFile_03(t *testing.T) {
	srcfile := NewSourceFile("test.vc", []byte("abc"))
	srcmap := NewSourceMap[string](srcfile)
	srcmap.Put("x", NewSpan(0, 2))
	//
	if !srcmap.Has("x") || srcmap.Has("y") {
		t.Fatal("unexpected source map contents")
	}
	//
	span := srcmap.Get("x")
	if span.Length() != 2 {
		t.Fatalf("unexpected span length %d", span.Length())
	}
}
