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
package chooser

import (
	"slices"

	"github.com/consensys/go-prover/pkg/prover/library"
	"github.com/consensys/go-prover/pkg/prover/model"
	"github.com/consensys/go-prover/pkg/prover/proofdata"
	"github.com/consensys/go-prover/pkg/prover/transform"
	"github.com/consensys/go-prover/pkg/term"
	"github.com/consensys/go-prover/pkg/util/collection/iter"
)

// GuidedConfig configures the guided chooser.
type GuidedConfig struct {
	// QuantifierBudget is the number of steps introducing fresh quantified
	// variables permitted on a single proof path.
	QuantifierBudget uint
	// MaxDepth is the depth bound of the search (0 for no bound).
	MaxDepth uint
}

// Guided ranks transformations using prior proof data and cheap heuristics.
// Transformations used in the last successful proof of the VC come first, then
// those which simplify, then those whose pattern mentions a symbol of the
// consequent.  The ranking is stable, so ties keep declaration order.
type Guided struct {
	library *library.Library
	config  GuidedConfig
}

// NewGuided constructs a guided chooser over a given library.
func NewGuided(lib *library.Library, config GuidedConfig) *Guided {
	return &Guided{lib, config}
}

// Name implementation for Chooser interface.
func (p *Guided) Name() string {
	return GuidedName
}

// Suggest implementation for Chooser interface.
func (p *Guided) Suggest(m *model.ProofModel, depth uint, _ *Metrics,
	prior *proofdata.Record) iter.Enumerator[Suggestion] {
	var (
		symbols    = term.SymbolNames(m.Consequent().Term())
		quantified = countQuantifierSteps(m)
		last       = p.config.MaxDepth != 0 && depth+1 >= p.config.MaxDepth
		candidates []ranked
	)
	//
	for _, t := range allTransformations(p.library, m) {
		if t.IntroducesQuantifiedVariables() && quantified >= p.config.QuantifierBudget {
			continue
		}
		//
		replacements := t.ReplacementSymbols()
		// A final antecedent-only step can only help if it concludes something
		// mentioned by the consequent, or a contradiction.  Replacements without
		// symbols (e.g. false) are always kept.
		if last && !t.AffectsConsequent() && replacements.Len() != 0 && !replacements.Intersects(&symbols) {
			continue
		}
		//
		patterns := t.PatternSymbols()
		//
		candidates = append(candidates, ranked{t,
			prior != nil && prior.Uses(t.Key()),
			t.ComplexityDelta() < 0,
			patterns.Intersects(&symbols)})
	}
	//
	slices.SortStableFunc(candidates, func(l, r ranked) int {
		return r.score() - l.score()
	})
	//
	transformations := make([]transform.Transformation, len(candidates))
	//
	for i, c := range candidates {
		transformations[i] = c.transformation
	}
	//
	return suggestions(m, transformations)
}

type ranked struct {
	transformation transform.Transformation
	prior          bool
	simplifying    bool
	relevant       bool
}

// Lexicographic score over the ranking criteria.
func (p ranked) score() int {
	var score int
	//
	if p.prior {
		score += 4
	}
	//
	if p.simplifying {
		score += 2
	}
	//
	if p.relevant {
		score++
	}
	//
	return score
}

// Count the steps on the current proof path which introduced fresh quantified
// variables.
func countQuantifierSteps(m *model.ProofModel) uint {
	var count uint
	//
	for _, step := range m.Steps() {
		if app, ok := step.Application.(transform.Application); ok && app.Source().IntroducesQuantifiedVariables() {
			count++
		}
	}
	//
	return count
}
