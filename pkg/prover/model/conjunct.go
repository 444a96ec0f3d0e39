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

	"github.com/consensys/go-prover/pkg/term"
)

// Conjunct represents one fact of a proof state: an antecedent (local or
// global theorem) or the consequent.  Each conjunct has an identity which is
// stable even when its term is rewritten.  The set of conjunct kinds is closed.
type Conjunct interface {
	// ID returns the identity of this conjunct within its model.  Identities
	// are assigned when a conjunct is added to a model, and are never zero
	// thereafter.
	ID() uint
	// Term returns the current term of this conjunct.
	Term() term.Term
	// IsAntecedent indicates whether or not this is an antecedent conjunct.
	IsAntecedent() bool
	// String returns a human-readable representation.
	String() string
	// Sealing method
	conjunct()
}

// ===================================================================
// Local Theorem
// ===================================================================

// LocalTheorem is an antecedent of the VC being proved, or a fact derived
// during this proof.  Derived facts carry the application which produced them,
// and the conjuncts which justified that application.
type LocalTheorem struct {
	id   uint
	term term.Term
	// Justification is the application which produced this theorem, or nil for
	// an initial antecedent.
	Justification Application
	// Prerequisites are the conjuncts used to justify this theorem.
	Prerequisites []Conjunct
	// Derived marks an initial antecedent which was itself modified or derived
	// before proof search begun.
	Derived bool
}

// NewLocalTheorem constructs a local theorem which is not yet part of any
// model.
func NewLocalTheorem(t term.Term, justification Application, prerequisites ...Conjunct) *LocalTheorem {
	return &LocalTheorem{0, t, justification, prerequisites, false}
}

// ID implementation for Conjunct interface.
func (p *LocalTheorem) ID() uint { return p.id }

// Term implementation for Conjunct interface.
func (p *LocalTheorem) Term() term.Term { return p.term }

// IsAntecedent implementation for Conjunct interface.
func (p *LocalTheorem) IsAntecedent() bool { return true }

func (p *LocalTheorem) String() string {
	return fmt.Sprintf("L%d %s", p.id, p.term)
}

func (p *LocalTheorem) conjunct() {}

// ===================================================================
// Global Theorem
// ===================================================================

// GlobalTheorem is an immutable library fact.
type GlobalTheorem struct {
	id   uint
	name string
	term term.Term
}

// ID implementation for Conjunct interface.
func (p *GlobalTheorem) ID() uint { return p.id }

// Name returns the library name of this theorem.
func (p *GlobalTheorem) Name() string { return p.name }

// Term implementation for Conjunct interface.
func (p *GlobalTheorem) Term() term.Term { return p.term }

// IsAntecedent implementation for Conjunct interface.
func (p *GlobalTheorem) IsAntecedent() bool { return true }

func (p *GlobalTheorem) String() string {
	return fmt.Sprintf("G%d %s %s", p.id, p.name, p.term)
}

func (p *GlobalTheorem) conjunct() {}

// ===================================================================
// Consequent
// ===================================================================

// Consequent is the goal of the proof.
type Consequent struct {
	id   uint
	term term.Term
}

// ID implementation for Conjunct interface.
func (p *Consequent) ID() uint { return p.id }

// Term implementation for Conjunct interface.
func (p *Consequent) Term() term.Term { return p.term }

// IsAntecedent implementation for Conjunct interface.
func (p *Consequent) IsAntecedent() bool { return false }

func (p *Consequent) String() string {
	return fmt.Sprintf("C%d %s", p.id, p.term)
}

func (p *Consequent) conjunct() {}

// Update the term of a mutable conjunct.
func setTerm(c Conjunct, t term.Term) {
	switch c := c.(type) {
	case *LocalTheorem:
		c.term = t
	case *Consequent:
		c.term = t
	case *GlobalTheorem:
		panic(fmt.Sprintf("global theorem %s is immutable", c.name))
	default:
		panic(fmt.Sprintf("unknown conjunct encountered (%T)", c))
	}
}
