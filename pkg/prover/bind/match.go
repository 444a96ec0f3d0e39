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
	"errors"
	"fmt"

	"github.com/consensys/go-prover/pkg/term"
	"github.com/consensys/go-prover/pkg/util/collection/set"
)

// ErrMismatch indicates that a pattern and target differ in shape.
var ErrMismatch = errors.New("terms do not match")

// BindingConflict indicates that a quantified symbol would be bound to two
// structurally different terms in the same match.
type BindingConflict struct {
	Name   string
	Bound  term.Term
	Target term.Term
}

func (p *BindingConflict) Error() string {
	return fmt.Sprintf("?%s already bound to %s (not %s)", p.Name, p.Bound, p.Target)
}

// TypeMismatch indicates that a quantified symbol cannot be bound to a term of
// an incompatible type.
type TypeMismatch struct {
	Name     string
	Expected string
	Actual   string
}

func (p *TypeMismatch) Error() string {
	return fmt.Sprintf("?%s of type %s cannot bind term of type %s", p.Name, p.Expected, p.Actual)
}

// Match a pattern against a target term, extending a given set of bindings.
// The given bindings are never modified; on success a fresh set of bindings is
// returned.  Quantified symbols in the pattern bind any subterm of compatible
// type, and quantified operators bind the operator name of the target.  Once
// bound, a quantified symbol only matches terms structurally equal to its
// binding.
func Match(pattern term.Term, target term.Term, bindings term.Bindings) (term.Bindings, error) {
	var nbindings = bindings.Clone()
	//
	if err := match(pattern, target, nbindings); err != nil {
		return nil, err
	}
	//
	return nbindings, nil
}

func match(pattern term.Term, target term.Term, bindings term.Bindings) error {
	switch p := pattern.(type) {
	case *term.Literal:
		if !term.Equal(p, target) {
			return ErrMismatch
		}
		//
		return nil
	case *term.Symbol:
		if p.Quantified {
			return bindSymbol(p.Name, p.MathType, target, bindings)
		} else if s, ok := target.(*term.Symbol); !ok || s.Quantified || s.Name != p.Name {
			return ErrMismatch
		} else if !term.Compatible(p.MathType, s.MathType) {
			return ErrMismatch
		}
		//
		return nil
	case *term.Apply:
		return matchApply(p, target, bindings)
	default:
		panic(fmt.Sprintf("unknown term encountered (%T)", pattern))
	}
}

func matchApply(pattern *term.Apply, target term.Term, bindings term.Bindings) error {
	a, ok := target.(*term.Apply)
	//
	if !ok || len(a.Args) != len(pattern.Args) {
		return ErrMismatch
	} else if !term.Compatible(pattern.MathType, a.MathType) {
		return &TypeMismatch{pattern.Op, pattern.MathType, a.MathType}
	}
	// Match operator
	if pattern.Quantified {
		op := &term.Symbol{Name: a.Op, Quantified: a.Quantified}
		//
		if err := bindSymbol(pattern.Op, "", op, bindings); err != nil {
			return err
		}
	} else if a.Quantified || a.Op != pattern.Op {
		return ErrMismatch
	}
	// Match arguments in order
	for i, arg := range pattern.Args {
		if err := match(arg, a.Args[i], bindings); err != nil {
			return err
		}
	}
	//
	return nil
}

func bindSymbol(name string, mathType string, target term.Term, bindings term.Bindings) error {
	if bound, ok := bindings[name]; ok {
		if !term.Equal(bound, target) {
			return &BindingConflict{name, bound, target}
		}
		//
		return nil
	} else if !term.Compatible(mathType, target.Type()) {
		return &TypeMismatch{name, mathType, target.Type()}
	}
	//
	bindings[name] = target
	//
	return nil
}

// Unify a pattern with a target term, extending a given set of bindings.  This
// is like Match, except that quantified symbols of global instances occurring
// in the target may also be bound.  Thus, a pattern symbol already bound to a
// term unifies with an instance symbol, which becomes bound in turn.  Bindings
// may therefore refer to other bound symbols, and should be resolved (see
// Resolve) before being substituted.  The given bindings are never modified.
func Unify(pattern term.Term, target term.Term, bindings term.Bindings) (term.Bindings, error) {
	var u = unifier{bindings.Clone(), term.QuantifiedVariables(pattern)}
	//
	if err := u.unify(pattern, target); err != nil {
		return nil, err
	}
	//
	return u.bindings, nil
}

// Resolve a set of bindings such that no bound term refers to another bound
// symbol.  The given bindings are never modified.
func Resolve(bindings term.Bindings) term.Bindings {
	var resolved = make(term.Bindings, len(bindings))
	//
	for name, t := range bindings {
		// Chains are acyclic, hence at most one step per binding.
		for range len(bindings) {
			nt := term.Substitute(t, bindings)
			//
			if nt == t {
				break
			}
			//
			t = nt
		}
		//
		resolved[name] = t
	}
	//
	return resolved
}

type unifier struct {
	bindings term.Bindings
	// Quantified symbols of the pattern
	pattern set.SortedSet[string]
}

// Determine whether a given quantified symbol can be bound.
func (p *unifier) flexible(name string) bool {
	return IsInstanceName(name) || p.pattern.Contains(name)
}

// Follow the bindings of a given term, until an unbound term is reached.
func (p *unifier) resolve(t term.Term) term.Term {
	for {
		s, ok := t.(*term.Symbol)
		if !ok || !s.Quantified {
			return t
		} else if b, ok := p.bindings[s.Name]; ok {
			t = b
		} else {
			return t
		}
	}
}

func (p *unifier) unify(lhs term.Term, rhs term.Term) error {
	// Bound symbols must agree with their binding
	if s, ok := lhs.(*term.Symbol); ok && s.Quantified {
		if bound, ok := p.bindings[s.Name]; ok {
			if err := p.unify(bound, rhs); err != nil {
				return &BindingConflict{s.Name, bound, rhs}
			}
			//
			return nil
		} else if p.flexible(s.Name) {
			return p.bind(s, rhs)
		}
	}
	//
	rhs = p.resolve(rhs)
	//
	if s, ok := rhs.(*term.Symbol); ok && s.Quantified && p.flexible(s.Name) {
		return p.bind(s, lhs)
	}
	//
	switch l := lhs.(type) {
	case *term.Literal:
		if !term.Equal(l, rhs) {
			return ErrMismatch
		}
		//
		return nil
	case *term.Symbol:
		if r, ok := rhs.(*term.Symbol); !ok || r.Quantified != l.Quantified || r.Name != l.Name {
			return ErrMismatch
		} else if !term.Compatible(l.MathType, r.MathType) {
			return ErrMismatch
		}
		//
		return nil
	case *term.Apply:
		return p.unifyApply(l, rhs)
	default:
		panic(fmt.Sprintf("unknown term encountered (%T)", lhs))
	}
}

func (p *unifier) unifyApply(lhs *term.Apply, rhs term.Term) error {
	r, ok := rhs.(*term.Apply)
	//
	if !ok || len(r.Args) != len(lhs.Args) {
		return ErrMismatch
	} else if !term.Compatible(lhs.MathType, r.MathType) {
		return &TypeMismatch{lhs.Op, lhs.MathType, r.MathType}
	}
	// Unify operators
	if lhs.Quantified || r.Quantified {
		lop := &term.Symbol{Name: lhs.Op, Quantified: lhs.Quantified}
		rop := &term.Symbol{Name: r.Op, Quantified: r.Quantified}
		//
		if err := p.unify(lop, rop); err != nil {
			return err
		}
	} else if r.Op != lhs.Op {
		return ErrMismatch
	}
	// Unify arguments in order
	for i, arg := range lhs.Args {
		if err := p.unify(arg, r.Args[i]); err != nil {
			return err
		}
	}
	//
	return nil
}

// Bind an unbound quantified symbol to a given term.
func (p *unifier) bind(s *term.Symbol, t term.Term) error {
	t = p.resolve(t)
	//
	if r, ok := t.(*term.Symbol); ok && r.Quantified && r.Name == s.Name {
		return nil
	} else if !term.Compatible(s.MathType, t.Type()) {
		return &TypeMismatch{s.Name, s.MathType, t.Type()}
	} else if p.occurs(s.Name, t) {
		return &BindingConflict{s.Name, s, t}
	}
	//
	p.bindings[s.Name] = t
	//
	return nil
}

// Check whether a given quantified symbol occurs within a term, following any
// bindings.  This prevents cyclic bindings.
func (p *unifier) occurs(name string, t term.Term) bool {
	switch t := p.resolve(t).(type) {
	case *term.Symbol:
		return t.Quantified && t.Name == name
	case *term.Apply:
		if t.Quantified {
			if op := p.resolve(&term.Symbol{Name: t.Op, Quantified: true}); p.occurs(name, op) {
				return true
			}
		}
		//
		for _, arg := range t.Args {
			if p.occurs(name, arg) {
				return true
			}
		}
	}
	//
	return false
}
