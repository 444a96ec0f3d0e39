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
package oracle

import (
	"github.com/consensys/go-prover/pkg/term"
)

// Literal is an atomic formula, or its negation.  Equalities are oriented so
// that symmetric equalities are identical.
type Literal struct {
	Atom     term.Term
	Negative bool
}

// NewLiteral constructs a (possibly negated) literal.
func NewLiteral(atom term.Term, negative bool) Literal {
	if lhs, rhs, ok := term.SplitEquality(atom); ok && lhs.Cmp(rhs) > 0 {
		atom = term.MustApply(term.Eq, rhs, lhs)
	}
	//
	return Literal{atom, negative}
}

func (p Literal) String() string {
	if p.Negative {
		return "¬" + p.Atom.String()
	}
	//
	return p.Atom.String()
}
