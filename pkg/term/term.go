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
	"cmp"
	"fmt"
	"math/big"
	"slices"
	"strings"
)

// Entity is the most general math type.  A term of type Entity (or of no
// declared type) is compatible with any other type.
const Entity = "Entity"

// Names of the built-in literal types.
const (
	IntegerType = "Integer"
	BooleanType = "Boolean"
	StringType  = "String"
)

// Term represents an immutable symbolic expression.  Terms are either function
// applications, atomic symbols (constants, free variables and quantified
// metavariables) or literals.  Equality between terms is purely structural.
type Term interface {
	// Cmp provides a total structural ordering over terms, returning 0 only when
	// both terms are syntactically identical.
	Cmp(Term) int
	// Type returns the math type of this term, or "" if none was given.
	Type() string
	// String returns the textual (S-expression) form of this term.
	String() string
}

// Equal checks whether two terms are structurally identical.
func Equal(lhs Term, rhs Term) bool {
	return lhs.Cmp(rhs) == 0
}

// Compatible checks whether two math types are compatible.  The empty type and
// Entity are compatible with every type, otherwise types must match exactly.
func Compatible(lhs string, rhs string) bool {
	return lhs == rhs || lhs == "" || rhs == "" || lhs == Entity || rhs == Entity
}

// Children returns the immediate subterms of a given term.
func Children(t Term) []Term {
	if a, ok := t.(*Apply); ok {
		return a.Args
	}
	//
	return nil
}

// ============================================================================
// Symbol
// ============================================================================

// Symbol represents an atomic named term.  Quantified symbols are the
// metavariables of theorems, and are bound during pattern matching.
type Symbol struct {
	Name       string
	MathType   string
	Quantified bool
}

// NewSymbol constructs a (non-quantified) symbol of a given type.
func NewSymbol(name string, mathType string) *Symbol {
	return &Symbol{name, mathType, false}
}

// NewVariable constructs a quantified symbol of a given type.
func NewVariable(name string, mathType string) *Symbol {
	return &Symbol{name, mathType, true}
}

// Type implementation for Term interface.
func (p *Symbol) Type() string {
	return p.MathType
}

// Cmp implementation for Term interface.
func (p *Symbol) Cmp(other Term) int {
	switch o := other.(type) {
	case *Symbol:
		if c := cmpBool(p.Quantified, o.Quantified); c != 0 {
			return c
		} else if c := strings.Compare(p.Name, o.Name); c != 0 {
			return c
		}
		//
		return strings.Compare(p.MathType, o.MathType)
	default:
		return cmp.Compare(rank(p), rank(other))
	}
}

func (p *Symbol) String() string {
	return symbolString(p.Name, p.Quantified, p.MathType)
}

// ============================================================================
// Apply
// ============================================================================

// Apply represents the application of an operator to one or more arguments.
// When the operator is quantified, it behaves as a metavariable ranging over
// operator names.
type Apply struct {
	Op         string
	Quantified bool
	Args       []Term
	MathType   string
}

// Type implementation for Term interface.
func (p *Apply) Type() string {
	return p.MathType
}

// Cmp implementation for Term interface.
func (p *Apply) Cmp(other Term) int {
	switch o := other.(type) {
	case *Apply:
		if c := strings.Compare(p.Op, o.Op); c != 0 {
			return c
		} else if c := cmpBool(p.Quantified, o.Quantified); c != 0 {
			return c
		} else if c := strings.Compare(p.MathType, o.MathType); c != 0 {
			return c
		}
		//
		return slices.CompareFunc(p.Args, o.Args, func(l, r Term) int {
			return l.Cmp(r)
		})
	default:
		return cmp.Compare(rank(p), rank(other))
	}
}

func (p *Apply) String() string {
	var builder strings.Builder
	//
	builder.WriteString("(")
	builder.WriteString(symbolString(p.Op, p.Quantified, p.MathType))
	//
	for _, arg := range p.Args {
		builder.WriteString(" ")
		builder.WriteString(arg.String())
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}

// ============================================================================
// Literal
// ============================================================================

// LiteralKind identifies the kind of value held in a literal.
type LiteralKind uint8

const (
	// IntLiteral is an arbitrary precision integer.
	IntLiteral LiteralKind = iota
	// BoolLiteral is either true or false.
	BoolLiteral
	// StringLiteral is a string constant.
	StringLiteral
)

// Literal represents a constant value.
type Literal struct {
	Kind LiteralKind
	// Int holds the value of an integer literal (only).
	Int big.Int
	// Bool holds the value of a boolean literal (only).
	Bool bool
	// Str holds the value of a string literal (only).
	Str string
}

// NewInt constructs an integer literal.
func NewInt(val int64) *Literal {
	var lit = &Literal{Kind: IntLiteral}
	//
	lit.Int.SetInt64(val)
	//
	return lit
}

// NewBigInt constructs an integer literal from an arbitrary precision integer.
func NewBigInt(val *big.Int) *Literal {
	var lit = &Literal{Kind: IntLiteral}
	//
	lit.Int.Set(val)
	//
	return lit
}

// NewBool constructs a boolean literal.
func NewBool(val bool) *Literal {
	return &Literal{Kind: BoolLiteral, Bool: val}
}

// NewString constructs a string literal.
func NewString(val string) *Literal {
	return &Literal{Kind: StringLiteral, Str: val}
}

// Type implementation for Term interface.
func (p *Literal) Type() string {
	switch p.Kind {
	case IntLiteral:
		return IntegerType
	case BoolLiteral:
		return BooleanType
	default:
		return StringType
	}
}

// Cmp implementation for Term interface.
func (p *Literal) Cmp(other Term) int {
	switch o := other.(type) {
	case *Literal:
		if c := cmp.Compare(p.Kind, o.Kind); c != 0 {
			return c
		}
		//
		switch p.Kind {
		case IntLiteral:
			return p.Int.Cmp(&o.Int)
		case BoolLiteral:
			return cmpBool(p.Bool, o.Bool)
		default:
			return strings.Compare(p.Str, o.Str)
		}
	default:
		return cmp.Compare(rank(p), rank(other))
	}
}

func (p *Literal) String() string {
	switch p.Kind {
	case IntLiteral:
		return p.Int.String()
	case BoolLiteral:
		return fmt.Sprintf("%t", p.Bool)
	default:
		return fmt.Sprintf("\"%s\"", p.Str)
	}
}

// ============================================================================
// Helpers
// ============================================================================

func rank(t Term) int {
	switch t.(type) {
	case *Literal:
		return 0
	case *Symbol:
		return 1
	case *Apply:
		return 2
	default:
		panic(fmt.Sprintf("unknown term encountered (%T)", t))
	}
}

func cmpBool(lhs bool, rhs bool) int {
	switch {
	case lhs == rhs:
		return 0
	case lhs:
		return 1
	default:
		return -1
	}
}

func symbolString(name string, quantified bool, mathType string) string {
	var str = name
	//
	if quantified {
		str = "?" + str
	}
	//
	if mathType != "" {
		str = str + ":" + mathType
	}
	//
	return str
}
