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
package oracle

import (
	"fmt"

	"github.com/consensys/go-prover/pkg/term"
	"github.com/crillab/gophersat/bf"
)

// Verdict is the outcome of a decision procedure.
type Verdict uint8

const (
	// Unknown indicates validity could not be established.
	Unknown Verdict = iota
	// Valid indicates the consequent follows from the antecedents.
	Valid
)

func (p Verdict) String() string {
	if p == Valid {
		return "valid"
	}
	//
	return "unknown"
}

// Oracle is a decision procedure which checks whether a consequent follows from
// a set of antecedents.  Oracles never see (or mutate) a proof model, only the
// flattened terms.
type Oracle interface {
	Decide(antecedents []term.Term, consequent term.Term) Verdict
}

// CongruenceClosure decides ground entailment over equality with uninterpreted
// functions.  The negated goal, together with the ground antecedents, is
// abstracted into a boolean formula over its atoms and handed to a SAT solver.
// Each satisfying assignment is then checked by congruence closure and, when
// inconsistent, blocked before solving again.  Antecedents containing
// quantified symbols are ignored.
type CongruenceClosure struct {
	// MaxModels bounds the number of assignments refuted by congruence
	// closure.  Larger problems are Unknown.
	MaxModels uint
}

// DefaultMaxModels is the assignment bound used when none is given.
const DefaultMaxModels = 256

// NewCongruenceClosure constructs a congruence closure oracle with the default
// bound.
func NewCongruenceClosure() *CongruenceClosure {
	return &CongruenceClosure{DefaultMaxModels}
}

// Decide implementation for Oracle interface.
func (p *CongruenceClosure) Decide(antecedents []term.Term, consequent term.Term) Verdict {
	if !term.IsGround(consequent) {
		return Unknown
	}
	//
	var (
		atoms   = newAbstraction()
		problem = []bf.Formula{bf.Not(atoms.formula(consequent))}
	)
	//
	for _, a := range antecedents {
		if term.IsGround(a) {
			problem = append(problem, atoms.formula(a))
		}
	}
	//
	for range p.MaxModels {
		model := bf.Solve(bf.And(problem...))
		//
		if model == nil {
			return Valid
		}
		//
		literals := atoms.literals(model)
		//
		if satisfiable(literals) {
			return Unknown
		}
		// Block this assignment
		problem = append(problem, bf.Not(atoms.conjunction(literals)))
	}
	//
	return Unknown
}

// abstraction maps the atoms of ground terms to boolean variables.
type abstraction struct {
	names map[string]string
	atoms []term.Term
}

func newAbstraction() *abstraction {
	return &abstraction{names: make(map[string]string)}
}

// Determine the variable of a given atom, allocating one if necessary.
func (p *abstraction) variable(atom term.Term) bf.Formula {
	var (
		oriented = NewLiteral(atom, false).Atom
		key      = oriented.String()
	)
	//
	if name, ok := p.names[key]; ok {
		return bf.Var(name)
	}
	//
	name := fmt.Sprintf("atom%d", len(p.atoms))
	p.names[key] = name
	p.atoms = append(p.atoms, oriented)
	//
	return bf.Var(name)
}

// Convert a term into a boolean formula over atoms.
func (p *abstraction) formula(t term.Term) bf.Formula {
	if term.IsTrue(t) {
		return bf.True
	} else if term.IsFalse(t) {
		return bf.False
	} else if a, ok := t.(*term.Apply); ok && !a.Quantified {
		switch a.Op {
		case term.And, term.Or:
			var args = make([]bf.Formula, len(a.Args))
			//
			for i, arg := range a.Args {
				args[i] = p.formula(arg)
			}
			//
			if a.Op == term.And {
				return bf.And(args...)
			}
			//
			return bf.Or(args...)
		case term.Not:
			return bf.Not(p.formula(a.Args[0]))
		case term.Implies:
			return bf.Implies(p.formula(a.Args[0]), p.formula(a.Args[1]))
		case term.Neq:
			return bf.Not(p.variable(term.MustApply(term.Eq, a.Args...)))
		}
	}
	//
	return p.variable(t)
}

// Extract the literals of a satisfying assignment, in allocation order.
func (p *abstraction) literals(model map[string]bool) []Literal {
	var literals []Literal
	//
	for i, atom := range p.atoms {
		if val, ok := model[fmt.Sprintf("atom%d", i)]; ok {
			literals = append(literals, Literal{atom, !val})
		}
	}
	//
	return literals
}

// Construct the conjunction of a set of literals.
func (p *abstraction) conjunction(literals []Literal) bf.Formula {
	var conjuncts = make([]bf.Formula, len(literals))
	//
	for i, l := range literals {
		conjuncts[i] = p.variable(l.Atom)
		//
		if l.Negative {
			conjuncts[i] = bf.Not(conjuncts[i])
		}
	}
	//
	return bf.And(conjuncts...)
}
