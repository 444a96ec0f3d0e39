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
package library

import (
	"fmt"

	"github.com/consensys/go-prover/pkg/prover/transform"
	"github.com/consensys/go-prover/pkg/term"
)

type reject struct {
	part   term.Term
	reason string
}

// Classify a theorem by its top-level shape into the transformations it seeds.
// Conjunctions are split, and each conjunct is classified separately.
//
//	A₁ ∧ … ∧ Aₙ ⇒ C   implication expansion
//	L = R             substitution and antecedent substitution (both directions),
//	                  plus consequent elimination
//	F                 consequent elimination
func normalize(origin transform.Origin, t term.Term) ([]transform.Transformation, []reject) {
	var (
		transformations []transform.Transformation
		rejects         []reject
	)
	//
	for _, part := range term.SplitConjuncts(t) {
		ts, rs := normalizePart(origin, part)
		transformations = append(transformations, ts...)
		rejects = append(rejects, rs...)
	}
	//
	return transformations, rejects
}

func normalizePart(origin transform.Origin, t term.Term) ([]transform.Transformation, []reject) {
	if antecedents, consequent, ok := term.SplitImplication(t); ok {
		return normalizeImplication(origin, t, antecedents, consequent)
	} else if lhs, rhs, ok := term.SplitEquality(t); ok {
		return normalizeEquality(origin, t, lhs, rhs)
	} else if term.IsTrue(t) {
		return nil, []reject{{t, "trivially true"}}
	} else if isMetavariable(t) {
		return nil, []reject{{t, "fact matches every conjunct"}}
	}
	//
	return []transform.Transformation{transform.NewConsequentElimination(origin, t)}, nil
}

func normalizeImplication(origin transform.Origin, t term.Term, antecedents []term.Term,
	consequent term.Term) ([]transform.Transformation, []reject) {
	//
	for _, a := range antecedents {
		if isMetavariable(a) {
			return nil, []reject{{t, fmt.Sprintf("antecedent %s matches every conjunct", a)}}
		}
	}
	//
	if term.IsTrue(consequent) {
		return nil, []reject{{t, "trivially true"}}
	}
	//
	return []transform.Transformation{transform.NewImplicationExpansion(origin, antecedents, consequent)}, nil
}

func normalizeEquality(origin transform.Origin, t term.Term, lhs term.Term,
	rhs term.Term) ([]transform.Transformation, []reject) {
	var (
		transformations []transform.Transformation
		rejects         []reject
	)
	//
	if term.Equal(lhs, rhs) {
		return nil, []reject{{t, "reflexive equality"}}
	}
	// Each direction is considered separately
	for _, dir := range [][2]term.Term{{lhs, rhs}, {rhs, lhs}} {
		from, to := dir[0], dir[1]
		//
		if isMetavariable(from) {
			rejects = append(rejects, reject{t, fmt.Sprintf("rewriting from %s matches every subterm", from)})
			continue
		}
		//
		transformations = append(transformations,
			transform.NewSubstitution(origin, from, to),
			transform.NewAntecedentSubstitution(origin, from, to))
	}
	//
	transformations = append(transformations, transform.NewConsequentElimination(origin, t))
	//
	return transformations, rejects
}

func isMetavariable(t term.Term) bool {
	s, ok := t.(*term.Symbol)
	return ok && s.Quantified
}
