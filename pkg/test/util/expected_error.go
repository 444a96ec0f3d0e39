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
package util

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/consensys/go-prover/pkg/util/source"
)

// Extract an expected syntax error of the form ";;error:X:Y-Z:msg" from a given
// line, where X is a line number and Y-Z a column range.
func extractSyntaxError(lineno int, lines []source.Line, srcfile *source.File) (bool, source.SyntaxError, error) {
	var contents = lines[lineno].String()
	//
	if !strings.HasPrefix(contents, ";;error") {
		return false, source.SyntaxError{}, nil
	}
	//
	splits := strings.SplitN(contents, ":", 4)
	if len(splits) < 4 {
		return true, source.SyntaxError{}, fmt.Errorf("malformed expected error \"%s\", should be e.g. \";;error:X:Y-Z:msg\"",
			contents)
	}
	//
	line, err := strconv.Atoi(splits[1])
	if err != nil || line == 0 || line > len(lines) {
		return true, source.SyntaxError{}, fmt.Errorf("invalid line \"%s\" (lines numbered from 1)", splits[1])
	}
	//
	start, end, err := parseColumns(splits[2])
	if err != nil {
		return true, source.SyntaxError{}, err
	}
	//
	span, err := lineSpan(lines[line-1], start, end)
	//
	return true, *srcfile.SyntaxError(span, splits[3]), err
}

// Parse a column range "Y-Z", where columns are numbered from 1.
func parseColumns(text string) (int, int, error) {
	from, to, ok := strings.Cut(text, "-")
	if !ok {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (malformed, should be X-Y)", text)
	}
	//
	start, err := strconv.Atoi(from)
	if err != nil || start == 0 {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (columns numbered from 1)", text)
	}
	//
	end, err := strconv.Atoi(to)
	if err != nil || end < start {
		return 0, 0, fmt.Errorf("invalid span \"%s\"", text)
	}
	//
	return start, end, nil
}

// Convert a column range on a given line into a span of the enclosing file.
func lineSpan(line source.Line, start, end int) (source.Span, error) {
	// Columns are numbered from 1, spans from 0.
	start--
	end--
	//
	if start >= line.Length() || end > line.Length() {
		return source.Span{}, fmt.Errorf("invalid span \"%d:%d-%d\" (overflows to following line)", line.Number(),
			start+1, end+1)
	}
	//
	return source.NewSpan(line.Start()+start, line.Start()+end), nil
}
