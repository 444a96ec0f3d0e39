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
package model

import (
	"fmt"
	"slices"

	"github.com/consensys/go-prover/pkg/term"
	"github.com/consensys/go-prover/pkg/util/collection/stack"
)

// ProofModel holds the mutable state of a proof for a single VC: its
// antecedents (local theorems, followed by global theorems), its consequent and
// the stack of proof steps applied so far.
type ProofModel struct {
	// Identity to be given to the next conjunct added.
	nextID uint
	// Every conjunct in the model, indexed by identity.
	conjuncts map[uint]Conjunct
	// Local theorems in order of introduction.
	locals []*LocalTheorem
	// Global theorems in declaration order.
	globals []*GlobalTheorem
	// Global theorems indexed by name.
	names map[string]*GlobalTheorem
	// The goal
	consequent *Consequent
	// Proof steps applied so far
	steps stack.Stack[*ProofStep]
	// Number of binder queries made against this model.
	binderQueries uint
}

// NewProofModel constructs a proof model with a given consequent, and no
// antecedents.
func NewProofModel(consequent term.Term) *ProofModel {
	m := &ProofModel{
		nextID:    1,
		conjuncts: make(map[uint]Conjunct),
		names:     make(map[string]*GlobalTheorem),
	}
	//
	m.consequent = &Consequent{m.allocate(), consequent}
	m.conjuncts[m.consequent.id] = m.consequent
	//
	return m
}

// AddAntecedent adds an initial antecedent to this model.  This does not
// constitute a proof step, and is not permitted once proof steps have been
// applied.
func (p *ProofModel) AddAntecedent(t term.Term, derived bool) *LocalTheorem {
	p.checkLoading()
	//
	local := NewLocalTheorem(t, nil)
	local.Derived = derived
	p.register(local)
	//
	return local
}

// AddGlobalTheorem adds a named library fact to this model.  Names must be
// unique, and global theorems cannot be added once proof steps have been
// applied.
func (p *ProofModel) AddGlobalTheorem(name string, t term.Term) *GlobalTheorem {
	p.checkLoading()
	//
	if _, ok := p.names[name]; ok {
		panic(fmt.Sprintf("duplicate global theorem %s", name))
	}
	//
	global := &GlobalTheorem{p.allocate(), name, t}
	p.conjuncts[global.id] = global
	p.globals = append(p.globals, global)
	p.names[name] = global
	//
	return global
}

// AddLocalTheorem derives a new local theorem, recording this as a single proof
// step of a given application.
func (p *ProofModel) AddLocalTheorem(t term.Term, app Application) *ProofStep {
	local := NewLocalTheorem(t, app, app.Prerequisites()...)
	step := NewProofStep(app, []*LocalTheorem{local})
	//
	p.AddProofStep(step)
	//
	return step
}

// Rewrite replaces the subterm at a given site, recording this as a single
// proof step of a given application.  The site must be valid, and must not lie
// within a global theorem.
func (p *ProofModel) Rewrite(site Site, replacement term.Term, app Application) *ProofStep {
	p.checkSite(site)
	//
	old := site.Conjunct.Term()
	change := Change{site.Conjunct, site.Path, old, term.Replace(old, site.Path, replacement)}
	step := NewProofStep(app, nil, change)
	//
	p.AddProofStep(step)
	//
	return step
}

// AddProofStep applies a given proof step to this model, and pushes it onto the
// step stack.  Every added local theorem is assigned its identity here.  This
// panics if an added theorem already belongs to a model, or if a changed
// conjunct does not currently hold the step's old term.
func (p *ProofModel) AddProofStep(step *ProofStep) {
	for _, c := range step.Changes {
		if p.conjuncts[c.Conjunct.ID()] != c.Conjunct || !term.Equal(c.Conjunct.Term(), c.Old) {
			panic(fmt.Sprintf("stale change for conjunct %s", c.Conjunct))
		}
	}
	//
	for _, c := range step.Changes {
		setTerm(c.Conjunct, c.New)
	}
	//
	for _, local := range step.Added {
		p.register(local)
	}
	//
	p.steps.Push(step)
}

// UndoLastStep removes the most recent proof step, restoring this model to
// exactly its state before that step was applied.  This panics if there are no
// steps to undo.
func (p *ProofModel) UndoLastStep() *ProofStep {
	if p.steps.IsEmpty() {
		panic("no proof step to undo")
	}
	//
	step := p.steps.Pop()
	// Remove added theorems (which are necessarily the most recent)
	for i := len(step.Added) - 1; i >= 0; i-- {
		local := step.Added[i]
		last := p.locals[len(p.locals)-1]
		//
		if last != local {
			panic(fmt.Sprintf("local theorem %s is not the most recent", local))
		}
		//
		p.locals = p.locals[:len(p.locals)-1]
		delete(p.conjuncts, local.id)
		local.id = 0
		p.nextID--
	}
	// Restore changed conjuncts in reverse order
	for i := len(step.Changes) - 1; i >= 0; i-- {
		setTerm(step.Changes[i].Conjunct, step.Changes[i].Old)
	}
	//
	return step
}

// Consequent returns the goal of this model.
func (p *ProofModel) Consequent() *Consequent {
	return p.consequent
}

// Locals returns the local theorems of this model in order of introduction.
func (p *ProofModel) Locals() []*LocalTheorem {
	return p.locals
}

// Globals returns the global theorems of this model in order of declaration.
func (p *ProofModel) Globals() []*GlobalTheorem {
	return p.globals
}

// Global returns the global theorem of a given name (if it exists).
func (p *ProofModel) Global(name string) (*GlobalTheorem, bool) {
	g, ok := p.names[name]
	return g, ok
}

// Antecedents returns every antecedent conjunct of this model, local theorems
// first.
func (p *ProofModel) Antecedents() []Conjunct {
	var conjuncts = make([]Conjunct, 0, len(p.locals)+len(p.globals))
	//
	for _, l := range p.locals {
		conjuncts = append(conjuncts, l)
	}
	//
	for _, g := range p.globals {
		conjuncts = append(conjuncts, g)
	}
	//
	return conjuncts
}

// Conjunct returns the conjunct of a given identity (if it exists).
func (p *ProofModel) Conjunct(id uint) (Conjunct, bool) {
	c, ok := p.conjuncts[id]
	return c, ok
}

// Steps returns the proof steps applied so far, oldest first.
func (p *ProofModel) Steps() []*ProofStep {
	return p.steps.Items()
}

// Depth returns the number of proof steps applied so far.
func (p *ProofModel) Depth() uint {
	return p.steps.Len()
}

// ContainsLocal checks whether a given term is already the term of some local
// theorem.
func (p *ProofModel) ContainsLocal(t term.Term) bool {
	return slices.ContainsFunc(p.locals, func(l *LocalTheorem) bool {
		return term.Equal(l.term, t)
	})
}

// RecordBinderQuery notes that a binder has been queried against this model.
func (p *ProofModel) RecordBinderQuery() {
	p.binderQueries++
}

// BinderQueries returns the number of binder queries made against this model.
func (p *ProofModel) BinderQueries() uint {
	return p.binderQueries
}

// IsTriviallyTrue checks whether the consequent is cheaply seen to follow from
// the antecedents.  This holds when every top-level conjunct of the consequent
// is either the literal true, a reflexive equality or syntactically present
// amongst the antecedents.  It also holds when some local antecedent is the
// literal false.
func (p *ProofModel) IsTriviallyTrue() bool {
	for _, l := range p.locals {
		if term.IsFalse(l.term) {
			return true
		}
	}
	//
	for _, c := range term.SplitConjuncts(p.consequent.term) {
		if !p.trivial(c) {
			return false
		}
	}
	//
	return true
}

func (p *ProofModel) trivial(t term.Term) bool {
	if term.IsTrue(t) {
		return true
	} else if lhs, rhs, ok := term.SplitEquality(t); ok && term.Equal(lhs, rhs) {
		return true
	} else if p.ContainsLocal(t) {
		return true
	}
	//
	return slices.ContainsFunc(p.globals, func(g *GlobalTheorem) bool {
		return term.Equal(g.term, t)
	})
}

// Snapshot captures the terms of this model's conjuncts (but not its proof
// steps) for later comparison.
func (p *ProofModel) Snapshot() Snapshot {
	var terms = make([]term.Term, 0, len(p.conjuncts))
	//
	for _, c := range p.Antecedents() {
		terms = append(terms, c.Term())
	}
	//
	return Snapshot{p.idents(), terms, p.consequent.term}
}

func (p *ProofModel) idents() []uint {
	var ids = make([]uint, 0, len(p.conjuncts))
	//
	for _, c := range p.Antecedents() {
		ids = append(ids, c.ID())
	}
	//
	return ids
}

// Snapshot records the conjunct identities and terms of a proof model.
type Snapshot struct {
	IDs         []uint
	Antecedents []term.Term
	Consequent  term.Term
}

// Equal checks whether two snapshots describe identical models.
func (p Snapshot) Equal(o Snapshot) bool {
	return slices.Equal(p.IDs, o.IDs) &&
		slices.EqualFunc(p.Antecedents, o.Antecedents, term.Equal) &&
		term.Equal(p.Consequent, o.Consequent)
}

func (p *ProofModel) allocate() uint {
	id := p.nextID
	p.nextID++
	//
	return id
}

func (p *ProofModel) register(local *LocalTheorem) {
	if local.id != 0 {
		panic(fmt.Sprintf("duplicate conjunct identity %d", local.id))
	}
	//
	local.id = p.allocate()
	//
	if _, ok := p.conjuncts[local.id]; ok {
		panic(fmt.Sprintf("duplicate conjunct identity %d", local.id))
	}
	//
	p.conjuncts[local.id] = local
	p.locals = append(p.locals, local)
}

func (p *ProofModel) checkLoading() {
	if !p.steps.IsEmpty() {
		panic("cannot load conjuncts after proof steps have been applied")
	}
}

func (p *ProofModel) checkSite(site Site) {
	if p.conjuncts[site.Conjunct.ID()] != site.Conjunct {
		panic(fmt.Sprintf("site %s does not belong to this model", site))
	} else if !site.Valid() {
		panic(fmt.Sprintf("stale site %s", site))
	}
}
