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

	"github.com/consensys/go-prover/pkg/prover/model"
	"github.com/consensys/go-prover/pkg/term"
	"github.com/consensys/go-prover/pkg/util/collection/iter"
	"github.com/consensys/go-prover/pkg/util/collection/set"
)

// Transformation describes a class of sound edits to a proof model, derived
// from some theorem.  Applying a transformation to a model yields a lazy
// sequence of concrete applications.
type Transformation interface {
	// Key identifies this transformation.  Keys of library transformations are
	// stable across runs.
	Key() string
	// Applications lazily enumerates the concrete applications of this
	// transformation to a given model.  Enumerations are restartable: querying
	// an unchanged model again yields the same sequence.
	Applications(m *model.ProofModel) iter.Enumerator[Application]
	// AffectsAntecedent indicates whether applications may add antecedents.
	AffectsAntecedent() bool
	// AffectsConsequent indicates whether applications may rewrite the
	// consequent.
	AffectsConsequent() bool
	// ComplexityDelta is the change in function application count between
	// pattern and replacement.  Negative values indicate simplification.
	ComplexityDelta() int
	// IntroducesQuantifiedVariables indicates whether the replacement contains
	// quantified symbols which do not occur in the pattern.
	IntroducesQuantifiedVariables() bool
	// PatternSymbols returns the non-quantified symbols of the pattern.
	PatternSymbols() set.SortedSet[string]
	// ReplacementSymbols returns the non-quantified symbols of the replacement.
	ReplacementSymbols() set.SortedSet[string]
	// String returns a human-readable description.
	String() string
}

// Application is a concrete application of some transformation.
type Application interface {
	model.Application
	// Source returns the transformation which this application instantiates.
	Source() Transformation
}

// Origin identifies the theorem from which a transformation was derived.  This
// is either a named global theorem, or a local theorem of a specific model.
type Origin struct {
	// Name of the global theorem (if applicable)
	Name string
	// Local theorem (if applicable)
	Local *model.LocalTheorem
}

// Global constructs the origin of a named library theorem.
func Global(name string) Origin {
	return Origin{name, nil}
}

// Local constructs the origin of a local theorem.
func Local(l *model.LocalTheorem) Origin {
	return Origin{"", l}
}

// Resolve the conjunct of this origin within a given model.  This panics if a
// library theorem is not loaded into the model.
func (p Origin) Resolve(m *model.ProofModel) model.Conjunct {
	if p.Local != nil {
		return p.Local
	}
	//
	g, ok := m.Global(p.Name)
	if !ok {
		panic(fmt.Sprintf("unknown global theorem %s", p.Name))
	}
	//
	return g
}

func (p Origin) String() string {
	if p.Local != nil {
		return fmt.Sprintf("L%d", p.Local.ID())
	}
	//
	return p.Name
}

// ===================================================================
// Helpers
// ===================================================================

func complexityDelta(replacement term.Term, patterns ...term.Term) int {
	var delta = int(term.FunctionApplicationCount(replacement))
	//
	for _, p := range patterns {
		delta -= int(term.FunctionApplicationCount(p))
	}
	//
	return delta
}

func introducesQuantifiedVariables(replacement term.Term, patterns ...term.Term) bool {
	var (
		pvars set.SortedSet[string]
		rvars = term.QuantifiedVariables(replacement)
	)
	//
	for _, p := range patterns {
		vars := term.QuantifiedVariables(p)
		pvars.InsertSorted(&vars)
	}
	//
	for _, v := range rvars {
		if !pvars.Contains(v) {
			return true
		}
	}
	//
	return false
}

func symbolsOf(terms ...term.Term) set.SortedSet[string] {
	var symbols set.SortedSet[string]
	//
	for _, t := range terms {
		names := term.SymbolNames(t)
		symbols.InsertSorted(&names)
	}
	//
	return symbols
}

// Append a conjunct to a list of prerequisites, unless already present.
func appendUnique(conjuncts []model.Conjunct, c model.Conjunct) []model.Conjunct {
	for _, d := range conjuncts {
		if d == c {
			return conjuncts
		}
	}
	//
	return append(conjuncts, c)
}
