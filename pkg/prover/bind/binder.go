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
package bind

import (
	"fmt"
	"strings"

	"github.com/consensys/go-prover/pkg/prover/model"
	"github.com/consensys/go-prover/pkg/term"
	"github.com/consensys/go-prover/pkg/util/collection/iter"
)

// Binder identifies the candidate sites of a proof model at which a given
// pattern may bind.  Candidates are enumerated lazily in a deterministic order:
// conjunct order of the model, then pre-order within each conjunct.
//
// Global theorems are schemas: their candidate sites hold an instance of the
// theorem whose quantified symbols are renamed apart.  Such sites cannot be
// rewritten.
type Binder interface {
	// Pattern returns the term to be matched at each candidate.
	Pattern() term.Term
	// Candidates enumerates the candidate sites of a given model.  The index
	// identifies this binder's position within a joint attempt, and is used to
	// rename global instances apart.
	Candidates(m *model.ProofModel, index uint) iter.Enumerator[model.Site]
}

// ===================================================================
// Antecedent
// ===================================================================

// AntecedentBinder binds any subterm of any antecedent.
type AntecedentBinder struct {
	pattern term.Term
}

// Antecedent constructs a binder over every site of every antecedent.
func Antecedent(pattern term.Term) *AntecedentBinder {
	return &AntecedentBinder{pattern}
}

// Pattern implementation for Binder interface.
func (p *AntecedentBinder) Pattern() term.Term { return p.pattern }

// Candidates implementation for Binder interface.
func (p *AntecedentBinder) Candidates(m *model.ProofModel, index uint) iter.Enumerator[model.Site] {
	var locals = make([]model.Conjunct, len(m.Locals()))
	//
	for i, l := range m.Locals() {
		locals[i] = l
	}
	//
	return iter.NewAppendEnumerator(allSites(locals), globalSites(m, index, false))
}

// ===================================================================
// Consequent
// ===================================================================

// ConsequentBinder binds any subterm of the consequent.
type ConsequentBinder struct {
	pattern term.Term
}

// Consequent constructs a binder over every site of the consequent.
func Consequent(pattern term.Term) *ConsequentBinder {
	return &ConsequentBinder{pattern}
}

// Pattern implementation for Binder interface.
func (p *ConsequentBinder) Pattern() term.Term { return p.pattern }

// Candidates implementation for Binder interface.
func (p *ConsequentBinder) Candidates(m *model.ProofModel, _ uint) iter.Enumerator[model.Site] {
	return model.Sites(m.Consequent())
}

// ConsequentConjunctBinder binds the top-level conjuncts of the consequent.
// When the consequent is not a conjunction, this is the consequent itself.
type ConsequentConjunctBinder struct {
	pattern term.Term
}

// ConsequentConjunct constructs a binder over the top-level conjuncts of the
// consequent.
func ConsequentConjunct(pattern term.Term) *ConsequentConjunctBinder {
	return &ConsequentConjunctBinder{pattern}
}

// Pattern implementation for Binder interface.
func (p *ConsequentConjunctBinder) Pattern() term.Term { return p.pattern }

// Candidates implementation for Binder interface.
func (p *ConsequentConjunctBinder) Candidates(m *model.ProofModel, _ uint) iter.Enumerator[model.Site] {
	root := model.RootSite(m.Consequent())
	//
	if _, ok := term.IsApplyOf(root.Term, term.And); !ok {
		return iter.NewUnitEnumerator(root)
	}
	//
	children := make([]model.Site, len(term.Children(root.Term)))
	//
	for i := range children {
		children[i] = root.Child(uint(i))
	}
	//
	return iter.NewArrayEnumerator(children)
}

// ===================================================================
// Top-level antecedent
// ===================================================================

// TopLevelAntecedentBinder binds entire antecedents, optionally skipping one
// given conjunct (typically the theorem being expanded, to avoid degenerate
// self-matches).
type TopLevelAntecedentBinder struct {
	pattern term.Term
	skip    model.Conjunct
}

// TopLevelAntecedent constructs a binder over the root sites of every
// antecedent.
func TopLevelAntecedent(pattern term.Term) *TopLevelAntecedentBinder {
	return &TopLevelAntecedentBinder{pattern, nil}
}

// SkipOneTopLevelAntecedent constructs a binder over the root sites of every
// antecedent except one.
func SkipOneTopLevelAntecedent(pattern term.Term, skip model.Conjunct) *TopLevelAntecedentBinder {
	return &TopLevelAntecedentBinder{pattern, skip}
}

// Pattern implementation for Binder interface.
func (p *TopLevelAntecedentBinder) Pattern() term.Term { return p.pattern }

// Candidates implementation for Binder interface.
func (p *TopLevelAntecedentBinder) Candidates(m *model.ProofModel, index uint) iter.Enumerator[model.Site] {
	var sites []model.Site
	//
	for _, l := range m.Locals() {
		if model.Conjunct(l) != p.skip {
			sites = append(sites, model.RootSite(l))
		}
	}
	//
	return iter.NewAppendEnumerator(iter.NewArrayEnumerator(sites), globalSites(m, index, true))
}

// ===================================================================
// Skip-one antecedent
// ===================================================================

// SkipOneAntecedentBinder binds any subterm of a local antecedent (including
// the antecedent itself), except within one given conjunct.
type SkipOneAntecedentBinder struct {
	pattern term.Term
	skip    model.Conjunct
}

// SkipOneAntecedent constructs a binder over the sites of every local
// antecedent except one.
func SkipOneAntecedent(pattern term.Term, skip model.Conjunct) *SkipOneAntecedentBinder {
	return &SkipOneAntecedentBinder{pattern, skip}
}

// Pattern implementation for Binder interface.
func (p *SkipOneAntecedentBinder) Pattern() term.Term { return p.pattern }

// Candidates implementation for Binder interface.
func (p *SkipOneAntecedentBinder) Candidates(m *model.ProofModel, _ uint) iter.Enumerator[model.Site] {
	var locals []model.Conjunct
	//
	for _, l := range m.Locals() {
		if model.Conjunct(l) != p.skip {
			locals = append(locals, l)
		}
	}
	//
	return allSites(locals)
}

// ===================================================================
// Helpers
// ===================================================================

func allSites(conjuncts []model.Conjunct) iter.Enumerator[model.Site] {
	return iter.NewFlattenEnumerator(iter.NewArrayEnumerator(conjuncts), model.Sites)
}

// Enumerate the sites of renamed instances of every global theorem.
func globalSites(m *model.ProofModel, index uint, rootOnly bool) iter.Enumerator[model.Site] {
	instances := iter.NewProjectEnumerator(iter.NewArrayEnumerator(m.Globals()),
		func(g *model.GlobalTheorem) model.Site {
			return Instance(g, index)
		})
	//
	if rootOnly {
		return instances
	}
	//
	return iter.NewFlattenEnumerator(instances, func(root model.Site) iter.Enumerator[model.Site] {
		return iter.Concat(iter.NewUnitEnumerator(root), model.SubSites(root))
	})
}

// Instance returns the root site of a global theorem whose quantified symbols
// are renamed apart.  Instances with the same index are identical.
func Instance(g *model.GlobalTheorem, index uint) model.Site {
	suffix := fmt.Sprintf("%s%d.%d", instanceMarker, g.ID(), index)
	instance := term.RenameQuantified(g.Term(), func(name string) string {
		return name + suffix
	})
	//
	return model.Site{Conjunct: g, Path: nil, Term: instance}
}

// IsInstanceName checks whether a given quantified symbol name arose from
// renaming a global theorem apart (see Instance).
func IsInstanceName(name string) bool {
	return strings.Contains(name, instanceMarker)
}

const instanceMarker = "#"
