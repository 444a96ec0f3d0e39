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
	"hash/fnv"

	"github.com/consensys/go-prover/pkg/util/collection/set"
)

// FreeVariables returns the names of all non-quantified symbols in a given term.
func FreeVariables(t Term) set.SortedSet[string] {
	var vars set.SortedSet[string]
	//
	walk(t, func(t Term) {
		if s, ok := t.(*Symbol); ok && !s.Quantified {
			vars.Insert(s.Name)
		}
	})
	//
	return vars
}

// QuantifiedVariables returns the names of all quantified symbols and
// quantified operators in a given term.
func QuantifiedVariables(t Term) set.SortedSet[string] {
	var vars set.SortedSet[string]
	//
	walk(t, func(t Term) {
		switch t := t.(type) {
		case *Symbol:
			if t.Quantified {
				vars.Insert(t.Name)
			}
		case *Apply:
			if t.Quantified {
				vars.Insert(t.Op)
			}
		}
	})
	//
	return vars
}

// IsGround checks whether a given term contains no quantified symbols.
func IsGround(t Term) bool {
	vars := QuantifiedVariables(t)
	return vars.Len() == 0
}

// FunctionApplicationCount returns the number of function applications in a
// given term.  This is a measure of the term's complexity.
func FunctionApplicationCount(t Term) uint {
	var count uint
	//
	walk(t, func(t Term) {
		if _, ok := t.(*Apply); ok {
			count++
		}
	})
	//
	return count
}

// SymbolNames returns the names of all non-quantified operators and symbols in
// a given term.
func SymbolNames(t Term) set.SortedSet[string] {
	var names set.SortedSet[string]
	//
	walk(t, func(t Term) {
		switch t := t.(type) {
		case *Symbol:
			if !t.Quantified {
				names.Insert(t.Name)
			}
		case *Apply:
			if !t.Quantified {
				names.Insert(t.Op)
			}
		}
	})
	//
	return names
}

// Hash returns a structural hash of a given term, such that structurally equal
// terms have equal hashes.
func Hash(t Term) uint64 {
	h := fnv.New64a()
	// The textual form is canonical.
	if _, err := h.Write([]byte(t.String())); err != nil {
		panic(err.Error())
	}
	//
	return h.Sum64()
}

// Visit every subterm of a given term in pre-order.
func walk(t Term, visitor func(Term)) {
	visitor(t)
	//
	switch t := t.(type) {
	case *Literal, *Symbol:
		return
	case *Apply:
		for _, arg := range t.Args {
			walk(arg, visitor)
		}
	default:
		panic(fmt.Sprintf("unknown term encountered (%T)", t))
	}
}
