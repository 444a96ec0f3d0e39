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
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/go-prover/pkg/util/source"
	"github.com/consensys/go-prover/pkg/util/source/sexp"
)

// Parser translates S-expressions into terms, checking each application against
// a given signature.  The textual syntax is:
//
//	?x        quantified symbol
//	x:T       symbol of math type T
//	(f a b)   application of f (which may itself be quantified ?f, or typed f:T)
//	42, -1    integer literals
//	true      boolean literals
//	"abc"     string literals
type Parser struct {
	signature  *Signature
	translator *sexp.Translator[Term]
}

// NewParser constructs a parser for S-expressions described by a given source
// map.
func NewParser(signature *Signature, srcmap *source.Map[sexp.SExp]) *Parser {
	var (
		parser     = &Parser{signature: signature}
		translator = sexp.NewTranslator[Term](srcmap)
	)
	//
	translator.AddSymbolRule(literalRule)
	translator.AddSymbolRule(symbolRule)
	translator.AddDefaultRecursiveListRule(parser.applyRule)
	parser.translator = translator
	//
	return parser
}

// Translate an S-expression into a term.
func (p *Parser) Translate(s sexp.SExp) (Term, []source.SyntaxError) {
	return p.translator.Translate(s)
}

// SourceMap returns the spans of translated terms in their original source file.
func (p *Parser) SourceMap() *source.Map[Term] {
	return p.translator.SourceMap()
}

// Parse a single term from a given string against a given signature.
func Parse(signature *Signature, text string) (Term, error) {
	srcfile := source.NewSourceFile("<input>", []byte(text))
	//
	s, srcmap, err := sexp.Parse(srcfile)
	if err != nil {
		return nil, err
	} else if s == nil {
		return nil, errors.New("empty input")
	}
	//
	t, errs := NewParser(signature, srcmap).Translate(s)
	if len(errs) > 0 {
		return nil, &errs[0]
	}
	//
	return t, nil
}

// MustParse parses a single term against the built-in signature, panicking if
// this fails.
func MustParse(text string) Term {
	t, err := Parse(nil, text)
	if err != nil {
		panic(err.Error())
	}
	//
	return t
}

func (p *Parser) applyRule(head string, args []Term) (Term, error) {
	if isLiteral(head) {
		return nil, fmt.Errorf("invalid operator %s", head)
	}
	//
	name, quantified, mathType, err := splitName(head)
	if err != nil {
		return nil, err
	}
	//
	return p.signature.NewApply(name, quantified, mathType, args...)
}

func literalRule(token string) (Term, bool, error) {
	var val big.Int
	//
	switch {
	case strings.HasPrefix(token, "\""):
		if len(token) < 2 || !strings.HasSuffix(token, "\"") {
			return nil, false, errors.New("unterminated string")
		}
		//
		return NewString(token[1 : len(token)-1]), true, nil
	case token == "true":
		return NewBool(true), true, nil
	case token == "false":
		return NewBool(false), true, nil
	}
	//
	if _, ok := val.SetString(token, 10); ok {
		return NewBigInt(&val), true, nil
	}
	//
	return nil, false, nil
}

func symbolRule(token string) (Term, bool, error) {
	name, quantified, mathType, err := splitName(token)
	if err != nil {
		return nil, false, err
	}
	//
	return &Symbol{name, mathType, quantified}, true, nil
}

func isLiteral(token string) bool {
	_, ok, _ := literalRule(token)
	return ok || strings.HasPrefix(token, "\"")
}

// Split a name of the form "?x:T" into its components.
func splitName(token string) (string, bool, string, error) {
	var (
		quantified = strings.HasPrefix(token, "?")
		name       = strings.TrimPrefix(token, "?")
	)
	//
	name, mathType, typed := strings.Cut(name, ":")
	//
	if name == "" {
		return "", false, "", fmt.Errorf("invalid name %s", token)
	} else if typed && mathType == "" {
		return "", false, "", fmt.Errorf("missing type in %s", token)
	}
	//
	return name, quantified, mathType, nil
}

// ============================================================================
// Printing
// ============================================================================

// ToSExp converts a term into an S-expression.
func ToSExp(t Term) sexp.SExp {
	switch t := t.(type) {
	case *Literal, *Symbol:
		return sexp.NewSymbol(t.String())
	case *Apply:
		var elements = make([]sexp.SExp, len(t.Args)+1)
		//
		elements[0] = sexp.NewSymbol(symbolString(t.Op, t.Quantified, t.MathType))
		//
		for i, arg := range t.Args {
			elements[i+1] = ToSExp(arg)
		}
		//
		return sexp.NewList(elements...)
	default:
		panic(fmt.Sprintf("unknown term encountered (%T)", t))
	}
}

// Format a term so that it fits (as far as possible) within a given width,
// splitting logical connectives over several lines when necessary.
func Format(t Term, width uint) string {
	formatter := sexp.NewFormatter(width, 2)
	formatter.Breakable(And, Or, Not, Implies)
	//
	return formatter.Format(ToSExp(t))
}
