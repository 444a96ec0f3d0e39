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
package term

import (
	"fmt"
	"slices"
	"strings"
)

// Path identifies a subterm by the sequence of argument indices leading to it
// from some root term.  The empty path identifies the root itself.
type Path []uint

// Extend returns a new path identifying the ith child of the subterm
// identified by this path.  This path is unchanged.
func (p Path) Extend(i uint) Path {
	var npath = make(Path, len(p)+1)
	//
	copy(npath, p)
	npath[len(p)] = i
	//
	return npath
}

// HasPrefix checks whether this path lies within the subterm identified by
// another path (including when they are equal).
func (p Path) HasPrefix(prefix Path) bool {
	return len(prefix) <= len(p) && slices.Equal(p[:len(prefix)], prefix)
}

// Overlaps checks whether either path lies within the other.
func (p Path) Overlaps(other Path) bool {
	return p.HasPrefix(other) || other.HasPrefix(p)
}

// Cmp compares two paths lexicographically.
func (p Path) Cmp(other Path) int {
	return slices.Compare(p, other)
}

func (p Path) String() string {
	var builder strings.Builder
	//
	builder.WriteString("[")
	//
	for i, index := range p {
		if i != 0 {
			builder.WriteString(",")
		}
		//
		builder.WriteString(fmt.Sprintf("%d", index))
	}
	//
	builder.WriteString("]")
	//
	return builder.String()
}

// At returns the subterm of a given term identified by a given path, or false
// if no such subterm exists.
func At(t Term, path Path) (Term, bool) {
	for _, index := range path {
		children := Children(t)
		//
		if int(index) >= len(children) {
			return nil, false
		}
		//
		t = children[index]
	}
	//
	return t, true
}

// Replace returns a fresh term in which the subterm identified by a given path
// is replaced.  The original term is unchanged.  This panics if the path does
// not identify a subterm.
func Replace(t Term, path Path, replacement Term) Term {
	if len(path) == 0 {
		return replacement
	}
	//
	a, ok := t.(*Apply)
	if !ok || int(path[0]) >= len(a.Args) {
		panic(fmt.Sprintf("invalid path %s for term %s", path, t))
	}
	//
	args := slices.Clone(a.Args)
	args[path[0]] = Replace(args[path[0]], path[1:], replacement)
	//
	return &Apply{a.Op, a.Quantified, args, a.MathType}
}
