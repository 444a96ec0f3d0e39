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
package transform

import (
	"fmt"

	"github.com/consensys/go-prover/pkg/prover/bind"
	"github.com/consensys/go-prover/pkg/prover/model"
	"github.com/consensys/go-prover/pkg/term"
	"github.com/consensys/go-prover/pkg/util/collection/iter"
	"github.com/consensys/go-prover/pkg/util/collection/set"
)

// ImplicationExpansion derives the conclusion of an implication "A₁ ∧ … ∧ Aₙ ⇒
// C" once every Aᵢ is bound simultaneously to some antecedent.  At least one
// antecedent bound must be a local theorem, since otherwise the conclusion
// merely restates library facts.  Each top-level conjunct of the (substituted)
// conclusion becomes a new local theorem.
type ImplicationExpansion struct {
	origin      Origin
	antecedents []term.Term
	consequent  term.Term
}

// NewImplicationExpansion constructs an expansion for an implication with the
// given antecedents and consequent.
func NewImplicationExpansion(origin Origin, antecedents []term.Term, consequent term.Term) *ImplicationExpansion {
	if len(antecedents) == 0 {
		panic("implication expansion requires at least one antecedent")
	}
	//
	return &ImplicationExpansion{origin, antecedents, consequent}
}

// Key implementation for Transformation interface.
func (p *ImplicationExpansion) Key() string {
	return fmt.Sprintf("expand-impl:%s:%s", p.origin, p.consequent)
}

// Applications implementation for Transformation interface.
func (p *ImplicationExpansion) Applications(m *model.ProofModel) iter.Enumerator[Application] {
	var (
		origin  = p.origin.Resolve(m)
		binders = make([]bind.Binder, len(p.antecedents))
	)
	//
	for i, a := range p.antecedents {
		if p.origin.Local != nil {
			// A local implication cannot justify its own premises.
			binders[i] = bind.SkipOneTopLevelAntecedent(a, p.origin.Local)
		} else {
			binders[i] = bind.TopLevelAntecedent(a)
		}
	}
	//
	results := bind.AtLeastOneLocal(m, binders...)
	//
	apps := iter.NewProjectEnumerator(results, func(r bind.Result) *expansionApp {
		var (
			conclusion    = term.Substitute(p.consequent, r.Bindings)
			prerequisites = []model.Conjunct{origin}
		)
		//
		for _, site := range r.Sites {
			prerequisites = appendUnique(prerequisites, site.Conjunct)
		}
		//
		return &expansionApp{p, term.SplitConjuncts(conclusion), r.Sites, prerequisites}
	})
	//
	return filterExpansions(m, apps)
}

// AffectsAntecedent implementation for Transformation interface.
func (p *ImplicationExpansion) AffectsAntecedent() bool { return true }

// AffectsConsequent implementation for Transformation interface.
func (p *ImplicationExpansion) AffectsConsequent() bool { return false }

// ComplexityDelta implementation for Transformation interface.
func (p *ImplicationExpansion) ComplexityDelta() int {
	return complexityDelta(p.consequent, p.antecedents...)
}

// IntroducesQuantifiedVariables implementation for Transformation interface.
func (p *ImplicationExpansion) IntroducesQuantifiedVariables() bool {
	return introducesQuantifiedVariables(p.consequent, p.antecedents...)
}

// PatternSymbols implementation for Transformation interface.
func (p *ImplicationExpansion) PatternSymbols() set.SortedSet[string] {
	return symbolsOf(p.antecedents...)
}

// ReplacementSymbols implementation for Transformation interface.
func (p *ImplicationExpansion) ReplacementSymbols() set.SortedSet[string] {
	return symbolsOf(p.consequent)
}

func (p *ImplicationExpansion) String() string {
	return fmt.Sprintf("expand by implication %v => %s (%s)", p.antecedents, p.consequent, p.origin)
}

// ===================================================================
// Consequent Theorem Elimination
// ===================================================================

// ConsequentElimination replaces a top-level conjunct of the consequent which
// is an instance of a known fact with true.
type ConsequentElimination struct {
	origin Origin
	fact   term.Term
}

// NewConsequentElimination constructs an elimination for a given fact.
func NewConsequentElimination(origin Origin, fact term.Term) *ConsequentElimination {
	return &ConsequentElimination{origin, fact}
}

// Key implementation for Transformation interface.
func (p *ConsequentElimination) Key() string {
	return fmt.Sprintf("eliminate:%s:%s", p.origin, p.fact)
}

// Applications implementation for Transformation interface.
func (p *ConsequentElimination) Applications(m *model.ProofModel) iter.Enumerator[Application] {
	var (
		results = bind.Bind(m, bind.ConsequentConjunct(p.fact))
		origin  = p.origin.Resolve(m)
	)
	//
	apps := iter.NewProjectEnumerator(results, func(r bind.Result) *rewriteApp {
		return &rewriteApp{p, r.Sites[0], term.True, []model.Conjunct{origin}}
	})
	//
	return iter.NewProjectEnumerator(iter.NewFilterEnumerator(apps, func(a *rewriteApp) bool {
		return !term.IsTrue(a.site.Term)
	}), func(a *rewriteApp) Application { return a })
}

// AffectsAntecedent implementation for Transformation interface.
func (p *ConsequentElimination) AffectsAntecedent() bool { return false }

// AffectsConsequent implementation for Transformation interface.
func (p *ConsequentElimination) AffectsConsequent() bool { return true }

// ComplexityDelta implementation for Transformation interface.
func (p *ConsequentElimination) ComplexityDelta() int {
	return complexityDelta(term.True, p.fact)
}

// IntroducesQuantifiedVariables implementation for Transformation interface.
func (p *ConsequentElimination) IntroducesQuantifiedVariables() bool { return false }

// PatternSymbols implementation for Transformation interface.
func (p *ConsequentElimination) PatternSymbols() set.SortedSet[string] {
	return symbolsOf(p.fact)
}

// ReplacementSymbols implementation for Transformation interface.
func (p *ConsequentElimination) ReplacementSymbols() set.SortedSet[string] {
	return nil
}

func (p *ConsequentElimination) String() string {
	return fmt.Sprintf("eliminate %s (%s)", p.fact, p.origin)
}
