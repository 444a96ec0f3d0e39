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
package sexp

import (
	"strings"
)

// Formatter renders S-Expressions so that, as far as possible, no line exceeds
// a given width.  Lists whose head is registered as breakable are split with
// one argument per line when they do not fit.  Other lists are always printed
// on a single line.
type Formatter struct {
	// Maximum desired width
	maxWidth uint
	// Amount to indent nested arguments by
	indent uint
	// Heads of lists which may be split over several lines.
	breakable map[string]bool
}

// NewFormatter constructs a new formatter which aims to fit its output within a
// given width.
func NewFormatter(width uint, indent uint) *Formatter {
	return &Formatter{width, indent, make(map[string]bool)}
}

// Breakable registers one or more list heads which may be split over several
// lines.
func (p *Formatter) Breakable(heads ...string) {
	for _, h := range heads {
		p.breakable[h] = true
	}
}

// Format a given S-Expression using the rules embedded within this formatter.
func (p *Formatter) Format(sexp SExp) string {
	var builder strings.Builder
	//
	p.format(0, sexp, &builder)
	//
	return builder.String()
}

func (p *Formatter) format(column uint, sexp SExp, out *strings.Builder) {
	flat := sexp.String(true)
	list := sexp.AsList()
	// Check whether it fits
	if column+uint(len(flat)) <= p.maxWidth || list == nil || !p.breakable[list.Head()] || list.Len() < 2 {
		out.WriteString(flat)
		return
	}
	//
	head := list.Head()
	out.WriteString("(")
	out.WriteString(head)
	//
	inner := column + p.indent
	//
	for _, arg := range list.Elements[1:] {
		out.WriteString("\n")
		out.WriteString(strings.Repeat(" ", int(inner)))
		p.format(inner, arg, out)
	}
	//
	out.WriteString(")")
}
