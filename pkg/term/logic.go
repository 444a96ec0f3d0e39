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

// True is the boolean literal true.
var True Term = NewBool(true)

// False is the boolean literal false.
var False Term = NewBool(false)

// IsTrue checks whether a given term is the literal true.
func IsTrue(t Term) bool {
	lit, ok := t.(*Literal)
	return ok && lit.Kind == BoolLiteral && lit.Bool
}

// IsFalse checks whether a given term is the literal false.
func IsFalse(t Term) bool {
	lit, ok := t.(*Literal)
	return ok && lit.Kind == BoolLiteral && !lit.Bool
}

// IsApplyOf checks whether a given term is a (non-quantified) application of a
// given operator, returning it if so.
func IsApplyOf(t Term, op string) (*Apply, bool) {
	a, ok := t.(*Apply)
	if ok && !a.Quantified && a.Op == op {
		return a, true
	}
	//
	return nil, false
}

// SplitConjuncts flattens nested conjunctions into their individual conjuncts.
// A term which is not a conjunction is its only conjunct.
func SplitConjuncts(t Term) []Term {
	if a, ok := IsApplyOf(t, And); ok {
		var conjuncts []Term
		//
		for _, arg := range a.Args {
			conjuncts = append(conjuncts, SplitConjuncts(arg)...)
		}
		//
		return conjuncts
	}
	//
	return []Term{t}
}

// Conjoin constructs the conjunction of zero or more terms.  The conjunction of
// no terms is true, and of one term is that term.
func Conjoin(terms ...Term) Term {
	switch len(terms) {
	case 0:
		return True
	case 1:
		return terms[0]
	default:
		return &Apply{And, false, terms, ""}
	}
}

// SplitImplication decomposes an implication "A₁ ∧ … ∧ Aₙ ⇒ C" into its
// antecedents and consequent.  Curried implications "A ⇒ (B ⇒ C)" are
// flattened into "A ∧ B ⇒ C".  Returns false if the term is not an
// implication.
func SplitImplication(t Term) ([]Term, Term, bool) {
	a, ok := IsApplyOf(t, Implies)
	if !ok {
		return nil, nil, false
	}
	//
	antecedents := SplitConjuncts(a.Args[0])
	//
	if nested, consequent, ok := SplitImplication(a.Args[1]); ok {
		return append(antecedents, nested...), consequent, true
	}
	//
	return antecedents, a.Args[1], true
}

// SplitEquality decomposes an equality into its left- and right-hand sides.
func SplitEquality(t Term) (Term, Term, bool) {
	if a, ok := IsApplyOf(t, Eq); ok {
		return a.Args[0], a.Args[1], true
	}
	//
	return nil, nil, false
}
