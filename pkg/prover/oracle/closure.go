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
	"github.com/consensys/go-prover/pkg/term"
)

// closure maintains the congruence classes of a finite set of terms.
type closure struct {
	// Every term (and subterm) considered, indexed by textual form.
	terms map[string]term.Term
	// Union-find parent pointers (by textual form).
	parent map[string]string
}

func newClosure() *closure {
	return &closure{make(map[string]term.Term), make(map[string]string)}
}

// Add a term and all its subterms.
func (p *closure) add(t term.Term) string {
	key := t.String()
	//
	if _, ok := p.terms[key]; !ok {
		p.terms[key] = t
		p.parent[key] = key
		//
		for _, child := range term.Children(t) {
			p.add(child)
		}
	}
	//
	return key
}

func (p *closure) find(key string) string {
	for p.parent[key] != key {
		// Path halving
		p.parent[key] = p.parent[p.parent[key]]
		key = p.parent[key]
	}
	//
	return key
}

func (p *closure) union(l string, r string) bool {
	l, r = p.find(l), p.find(r)
	//
	if l == r {
		return false
	}
	//
	p.parent[l] = r
	//
	return true
}

func (p *closure) congruent(l term.Term, r term.Term) bool {
	return p.find(p.add(l)) == p.find(p.add(r))
}

// Merge congruent applications until nothing changes.
func (p *closure) close() {
	for changed := true; changed; {
		changed = false
		//
		for lk, lt := range p.terms {
			for rk, rt := range p.terms {
				if lk < rk && p.find(lk) != p.find(rk) && p.sameApplication(lt, rt) {
					changed = p.union(lk, rk) || changed
				}
			}
		}
	}
}

func (p *closure) sameApplication(l term.Term, r term.Term) bool {
	la, lok := l.(*term.Apply)
	ra, rok := r.(*term.Apply)
	//
	if !lok || !rok || la.Op != ra.Op || la.Quantified != ra.Quantified || len(la.Args) != len(ra.Args) {
		return false
	}
	//
	for i := range la.Args {
		if p.find(la.Args[i].String()) != p.find(ra.Args[i].String()) {
			return false
		}
	}
	//
	return true
}

// Check whether a conjunction of literals is satisfiable in the theory of
// equality with uninterpreted functions.  Distinct literal values are never
// equal.
func satisfiable(literals []Literal) bool {
	var c = newClosure()
	//
	c.add(term.True)
	c.add(term.False)
	//
	for _, l := range literals {
		c.add(l.Atom)
	}
	// Assert equalities
	for _, l := range literals {
		if lhs, rhs, ok := term.SplitEquality(l.Atom); ok && !l.Negative {
			c.union(lhs.String(), rhs.String())
		}
	}
	//
	c.close()
	//
	return consistent(c, literals)
}

func consistent(c *closure, literals []Literal) bool {
	for _, l := range literals {
		lhs, rhs, isEq := term.SplitEquality(l.Atom)
		//
		if isEq && l.Negative && c.congruent(lhs, rhs) {
			return false
		}
		// Atoms equated with the opposite truth value
		if (l.Negative && c.congruent(l.Atom, term.True)) || (!l.Negative && c.congruent(l.Atom, term.False)) {
			return false
		}
		// Atoms congruent with opposing polarity
		for _, o := range literals {
			if l.Negative != o.Negative && c.congruent(l.Atom, o.Atom) {
				return false
			}
		}
	}
	// Distinct values must remain distinct
	var values = make(map[string]term.Term)
	//
	for key, t := range c.terms {
		if _, ok := t.(*term.Literal); ok {
			root := c.find(key)
			//
			if v, ok := values[root]; ok && !term.Equal(v, t) {
				return false
			}
			//
			values[root] = t
		}
	}
	//
	return true
}
