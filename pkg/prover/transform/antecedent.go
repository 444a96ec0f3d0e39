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

// AntecedentSubstitution derives a new local theorem by rewriting a copy of an
// existing local antecedent with an equality.  When the equality is itself a
// local theorem, that theorem is skipped to avoid trivial self-rewrites.
type AntecedentSubstitution struct {
	origin Origin
	from   term.Term
	to     term.Term
}

// NewAntecedentSubstitution constructs an antecedent substitution rewriting from
// into to.
func NewAntecedentSubstitution(origin Origin, from term.Term, to term.Term) *AntecedentSubstitution {
	return &AntecedentSubstitution{origin, from, to}
}

// Key implementation for Transformation interface.
func (p *AntecedentSubstitution) Key() string {
	return fmt.Sprintf("expand-subst:%s:%s", p.origin, p.from)
}

// Applications implementation for Transformation interface.
func (p *AntecedentSubstitution) Applications(m *model.ProofModel) iter.Enumerator[Application] {
	var (
		origin = p.origin.Resolve(m)
		skip   model.Conjunct
	)
	//
	if p.origin.Local != nil {
		skip = p.origin.Local
	}
	//
	results := bind.Bind(m, bind.SkipOneAntecedent(p.from, skip))
	//
	apps := iter.NewProjectEnumerator(results, func(r bind.Result) *expansionApp {
		var (
			site      = r.Sites[0]
			rewritten = term.Replace(site.Conjunct.Term(), site.Path, term.Substitute(p.to, r.Bindings))
		)
		//
		return &expansionApp{p, []term.Term{rewritten}, r.Sites, []model.Conjunct{origin, site.Conjunct}}
	})
	//
	return filterExpansions(m, apps)
}

// AffectsAntecedent implementation for Transformation interface.
func (p *AntecedentSubstitution) AffectsAntecedent() bool { return true }

// AffectsConsequent implementation for Transformation interface.
func (p *AntecedentSubstitution) AffectsConsequent() bool { return false }

// ComplexityDelta implementation for Transformation interface.
func (p *AntecedentSubstitution) ComplexityDelta() int {
	return complexityDelta(p.to, p.from)
}

// IntroducesQuantifiedVariables implementation for Transformation interface.
func (p *AntecedentSubstitution) IntroducesQuantifiedVariables() bool {
	return introducesQuantifiedVariables(p.to, p.from)
}

// PatternSymbols implementation for Transformation interface.
func (p *AntecedentSubstitution) PatternSymbols() set.SortedSet[string] {
	return symbolsOf(p.from)
}

// ReplacementSymbols implementation for Transformation interface.
func (p *AntecedentSubstitution) ReplacementSymbols() set.SortedSet[string] {
	return symbolsOf(p.to)
}

func (p *AntecedentSubstitution) String() string {
	return fmt.Sprintf("expand by substitution %s => %s (%s)", p.from, p.to, p.origin)
}

// ===================================================================
// Expansion application
// ===================================================================

// expansionApp adds one or more local theorems in a single proof step.
type expansionApp struct {
	source        Transformation
	conclusions   []term.Term
	involved      []model.Site
	prerequisites []model.Conjunct
}

func (p *expansionApp) Apply(m *model.ProofModel) *model.ProofStep {
	var locals = make([]*model.LocalTheorem, len(p.conclusions))
	//
	for i, c := range p.conclusions {
		locals[i] = model.NewLocalTheorem(c, p, p.prerequisites...)
	}
	//
	step := model.NewProofStep(p, locals)
	m.AddProofStep(step)
	//
	return step
}

func (p *expansionApp) Source() Transformation { return p.source }

func (p *expansionApp) Transformation() string { return p.source.Key() }

func (p *expansionApp) Prerequisites() []model.Conjunct { return p.prerequisites }

func (p *expansionApp) Involved() []model.Site { return p.involved }

func (p *expansionApp) String() string {
	return fmt.Sprintf("%s adds %v", p.source, p.conclusions)
}

// Remove conclusions which are already local theorems (or duplicated), and drop
// applications which conclude nothing new.
func filterExpansions(m *model.ProofModel, apps iter.Enumerator[*expansionApp]) iter.Enumerator[Application] {
	fresh := iter.NewFilterEnumerator(apps, func(a *expansionApp) bool {
		var conclusions []term.Term
		//
		for _, c := range a.conclusions {
			if !m.ContainsLocal(c) && !containsTerm(conclusions, c) {
				conclusions = append(conclusions, c)
			}
		}
		//
		a.conclusions = conclusions
		//
		return len(conclusions) > 0
	})
	//
	return iter.NewProjectEnumerator(fresh, func(a *expansionApp) Application { return a })
}

func containsTerm(terms []term.Term, t term.Term) bool {
	for _, u := range terms {
		if term.Equal(u, t) {
			return true
		}
	}
	//
	return false
}
