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

// Substitution rewrites occurrences of one side of an equality in the
// consequent with the other side.  Each equality gives rise to two independent
// substitutions, one for each direction.
type Substitution struct {
	origin Origin
	from   term.Term
	to     term.Term
}

// NewSubstitution constructs a substitution rewriting from into to.
func NewSubstitution(origin Origin, from term.Term, to term.Term) *Substitution {
	return &Substitution{origin, from, to}
}

// Key implementation for Transformation interface.
func (p *Substitution) Key() string {
	return fmt.Sprintf("subst:%s:%s", p.origin, p.from)
}

// Applications implementation for Transformation interface.
func (p *Substitution) Applications(m *model.ProofModel) iter.Enumerator[Application] {
	var (
		results = bind.Bind(m, bind.Consequent(p.from))
		origin  = p.origin.Resolve(m)
	)
	//
	apps := iter.NewProjectEnumerator(results, func(r bind.Result) *rewriteApp {
		site := r.Sites[0]
		return &rewriteApp{p, site, term.Substitute(p.to, r.Bindings), []model.Conjunct{origin}}
	})
	// Drop rewrites which change nothing
	return iter.NewProjectEnumerator(iter.NewFilterEnumerator(apps, func(a *rewriteApp) bool {
		return !term.Equal(a.site.Term, a.replacement)
	}), func(a *rewriteApp) Application { return a })
}

// AffectsAntecedent implementation for Transformation interface.
func (p *Substitution) AffectsAntecedent() bool { return false }

// AffectsConsequent implementation for Transformation interface.
func (p *Substitution) AffectsConsequent() bool { return true }

// ComplexityDelta implementation for Transformation interface.
func (p *Substitution) ComplexityDelta() int {
	return complexityDelta(p.to, p.from)
}

// IntroducesQuantifiedVariables implementation for Transformation interface.
func (p *Substitution) IntroducesQuantifiedVariables() bool {
	return introducesQuantifiedVariables(p.to, p.from)
}

// PatternSymbols implementation for Transformation interface.
func (p *Substitution) PatternSymbols() set.SortedSet[string] {
	return symbolsOf(p.from)
}

// ReplacementSymbols implementation for Transformation interface.
func (p *Substitution) ReplacementSymbols() set.SortedSet[string] {
	return symbolsOf(p.to)
}

func (p *Substitution) String() string {
	return fmt.Sprintf("substitute %s => %s (%s)", p.from, p.to, p.origin)
}

// rewriteApp replaces the subterm at a site of the consequent.
type rewriteApp struct {
	source        Transformation
	site          model.Site
	replacement   term.Term
	prerequisites []model.Conjunct
}

func (p *rewriteApp) Apply(m *model.ProofModel) *model.ProofStep {
	return m.Rewrite(p.site, p.replacement, p)
}

func (p *rewriteApp) Source() Transformation { return p.source }
func (p *rewriteApp) Transformation() string { return p.source.Key() }
func (p *rewriteApp) Prerequisites() []model.Conjunct { return p.prerequisites }
func (p *rewriteApp) Involved() []model.Site { return []model.Site{p.site} }

func (p *rewriteApp) String() string {
	return fmt.Sprintf("%s at %s: %s => %s", p.source, p.site, p.site.Term, p.replacement)
}
