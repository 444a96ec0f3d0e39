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
package term

import (
	"fmt"
	"math"
)

// Names of the built-in logical and relational operators.
const (
	And     = "and"
	Or      = "or"
	Not     = "not"
	Implies = "implies"
	Eq      = "="
	Neq     = "/="
	Lt      = "<"
	LtEq    = "<="
	Gt      = ">"
	GtEq    = ">="
)

// Unbounded indicates an arity without an upper bound.
const Unbounded = -1

// Arity captures the permitted number of arguments for an operator.
type Arity struct {
	Min int
	Max int
}

// Admits checks whether a given number of arguments is permitted.
func (p Arity) Admits(n int) bool {
	return n >= p.Min && (p.Max == Unbounded || n <= p.Max)
}

func (p Arity) String() string {
	switch {
	case p.Max == Unbounded:
		return fmt.Sprintf("at least %d", p.Min)
	case p.Min == p.Max:
		return fmt.Sprintf("%d", p.Min)
	default:
		return fmt.Sprintf("%d..%d", p.Min, p.Max)
	}
}

// MalformedTermError is raised eagerly when an application is constructed with
// an arity mismatch, or with an ill-typed use of a logical operator.
type MalformedTermError struct {
	Op     string
	Reason string
}

func (p *MalformedTermError) Error() string {
	return fmt.Sprintf("malformed application of %s: %s", p.Op, p.Reason)
}

// Signature records the declared arities of operators.  Operators which are not
// declared accept any non-zero number of arguments.  A nil signature contains
// only the built-in operators.
type Signature struct {
	arities map[string]Arity
}

// NewSignature constructs a signature holding only the built-in operators.
func NewSignature() *Signature {
	return &Signature{make(map[string]Arity)}
}

var builtins = map[string]Arity{
	And:     {2, Unbounded},
	Or:      {2, Unbounded},
	Not:     {1, 1},
	Implies: {2, 2},
	Eq:      {2, 2},
	Neq:     {2, 2},
	Lt:      {2, 2},
	LtEq:    {2, 2},
	Gt:      {2, 2},
	GtEq:    {2, 2},
}

// Declare a user-defined operator of a given fixed arity.  Built-in operators
// cannot be redeclared.
func (p *Signature) Declare(op string, arity uint) error {
	if _, ok := builtins[op]; ok {
		return fmt.Errorf("cannot redeclare built-in operator %s", op)
	} else if arity == 0 {
		return &MalformedTermError{op, "functions require one or more parameters"}
	} else if arity > math.MaxInt {
		return &MalformedTermError{op, "too many parameters"}
	} else if prev, ok := p.arities[op]; ok && prev.Min != int(arity) {
		return fmt.Errorf("conflicting declarations for %s", op)
	}
	//
	p.arities[op] = Arity{int(arity), int(arity)}
	//
	return nil
}

// ArityOf returns the arity of a given operator, and whether or not it was
// declared (or is built-in).
func (p *Signature) ArityOf(op string) (Arity, bool) {
	if a, ok := builtins[op]; ok {
		return a, true
	} else if p != nil {
		if a, ok := p.arities[op]; ok {
			return a, true
		}
	}
	//
	return Arity{1, Unbounded}, false
}

// NewApply constructs a function application, checking it against this
// signature.  Quantified operators are only checked for a non-zero number of
// arguments.
func (p *Signature) NewApply(op string, quantified bool, mathType string, args ...Term) (*Apply, error) {
	if len(args) == 0 {
		return nil, &MalformedTermError{op, "no arguments given"}
	} else if !quantified {
		if arity, _ := p.ArityOf(op); !arity.Admits(len(args)) {
			return nil, &MalformedTermError{op, fmt.Sprintf("expected %s arguments, found %d", arity, len(args))}
		} else if err := checkLogical(op, args); err != nil {
			return nil, err
		}
	}
	//
	return &Apply{op, quantified, args, mathType}, nil
}

// MustApply constructs a function application against the built-in
// signature, panicking if it is malformed.  This is intended for terms built
// programmatically from already well-formed parts.
func MustApply(op string, args ...Term) *Apply {
	var sig *Signature
	//
	a, err := sig.NewApply(op, false, "", args...)
	if err != nil {
		panic(err.Error())
	}
	//
	return a
}

// Logical connectives cannot be applied to integer or string literals.
func checkLogical(op string, args []Term) error {
	switch op {
	case And, Or, Not, Implies:
		for _, arg := range args {
			if lit, ok := arg.(*Literal); ok && lit.Kind != BoolLiteral {
				return &MalformedTermError{op, fmt.Sprintf("non-boolean operand %s", lit)}
			}
		}
	}
	//
	return nil
}
