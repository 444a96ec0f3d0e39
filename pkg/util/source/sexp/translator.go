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
package sexp

import (
	"fmt"

	"github.com/consensys/go-prover/pkg/util/source"
)

// SymbolRule is responsible for converting a terminating expression (i.e. a
// symbol) into an expression type T.  The boolean indicates whether or not the
// rule applied.
type SymbolRule[T comparable] func(string) (T, bool, error)

// ListRule is responsible for converting a list with a given sequence of zero
// or more arguments into an expression type T.
type ListRule[T comparable] func(*List) (T, []source.SyntaxError)

// RecursiveRule is a wrapper for translating lists whose elements can be built
// by recursively reusing the enclosing translator.  Observe that the arguments
// are already translated into the correct form.
type RecursiveRule[T comparable] func(string, []T) (T, error)

// ===================================================================
// Translator
// ===================================================================

// Translator is a generic mechanism for translating S-Expressions into a structured
// form.
type Translator[T comparable] struct {
	// Rules for parsing lists, indexed by head symbol.
	lists map[string]ListRule[T]
	// Fallback rule for lists whose head has no rule.
	listDefault ListRule[T]
	// Rules for parsing symbols, tried in order.
	symbols []SymbolRule[T]
	// Maps S-Expressions to their spans in the original source file.
	oldSrcmap *source.Map[SExp]
	// Maps translated expressions to their spans in the original source file.
	newSrcmap *source.Map[T]
}

// NewTranslator constructs a new Translator instance.
func NewTranslator[T comparable](srcmap *source.Map[SExp]) *Translator[T] {
	return &Translator[T]{
		lists:     make(map[string]ListRule[T]),
		oldSrcmap: srcmap,
		newSrcmap: source.NewSourceMap[T](srcmap.Source()),
	}
}

// SourceMap returns the source map maintained for terms constructed by this
// translator.
func (p *Translator[T]) SourceMap() *source.Map[T] {
	return p.newSrcmap
}

// Translate a given S-Expression into the structured representation T.
func (p *Translator[T]) Translate(sexp SExp) (T, []source.SyntaxError) {
	return translateSExp(p, sexp)
}

// AddSymbolRule adds a new symbol rule to this translator.  Rules are tried in
// the order they were added.
func (p *Translator[T]) AddSymbolRule(rule SymbolRule[T]) {
	p.symbols = append(p.symbols, rule)
}

// AddListRule adds a raw list rule to this translator.
func (p *Translator[T]) AddListRule(name string, rule ListRule[T]) {
	p.lists[name] = rule
}

// AddRecursiveListRule adds a list rule whose arguments are translated first.
func (p *Translator[T]) AddRecursiveListRule(name string, rule RecursiveRule[T]) {
	p.lists[name] = p.createRecursiveListRule(rule)
}

// AddDefaultListRule adds a rule to be applied when no other list rule applies.
func (p *Translator[T]) AddDefaultListRule(rule ListRule[T]) {
	p.listDefault = rule
}

// AddDefaultRecursiveListRule adds a recursive rule to be applied when no other
// list rule applies.
func (p *Translator[T]) AddDefaultRecursiveListRule(rule RecursiveRule[T]) {
	p.listDefault = p.createRecursiveListRule(rule)
}

// SyntaxError constructs a syntax error for a given S-Expression.
func (p *Translator[T]) SyntaxError(node SExp, msg string) *source.SyntaxError {
	return p.oldSrcmap.SyntaxError(node, msg)
}

// SyntaxErrors is a convenience wrapper returning a single syntax error as an
// array.
func (p *Translator[T]) SyntaxErrors(node SExp, msg string) []source.SyntaxError {
	return []source.SyntaxError{*p.SyntaxError(node, msg)}
}

func (p *Translator[T]) createRecursiveListRule(rule RecursiveRule[T]) ListRule[T] {
	return func(l *List) (T, []source.SyntaxError) {
		var (
			empty  T
			errors []source.SyntaxError
		)
		// Extract the "head" of the list.
		head := l.Head()
		if head == "" {
			return empty, p.SyntaxErrors(l, "invalid list")
		}
		// Translate arguments
		args := make([]T, len(l.Elements)-1)
		//
		for i, s := range l.Elements[1:] {
			var errs []source.SyntaxError
			args[i], errs = translateSExp(p, s)
			errors = append(errors, errs...)
		}
		// Apply constructor
		if len(errors) > 0 {
			return empty, errors
		}
		//
		term, err := rule(head, args)
		if err != nil {
			return empty, p.SyntaxErrors(l, err.Error())
		}
		//
		return term, nil
	}
}

// Translate an S-Expression into an IR expression.  Observe that
// this can still fail in the event that the given S-Expression does
// not describe a well-formed IR expression.
func translateSExp[T comparable](p *Translator[T], s SExp) (T, []source.SyntaxError) {
	var (
		empty  T
		term   T
		errors []source.SyntaxError
	)
	//
	switch e := s.(type) {
	case *List:
		term, errors = translateSExpList(p, e)
	case *Symbol:
		term, errors = translateSymbol(p, e)
	default:
		panic(fmt.Sprintf("unknown S-Expression encountered (%T)", s))
	}
	//
	if len(errors) > 0 {
		return empty, errors
	}
	// Structurally equal terms may originate from several places.  Only the
	// first occurrence is recorded.
	if !p.newSrcmap.Has(term) && p.oldSrcmap.Has(s) {
		p.newSrcmap.Put(term, p.oldSrcmap.Get(s))
	}
	//
	return term, nil
}

func translateSExpList[T comparable](p *Translator[T], l *List) (T, []source.SyntaxError) {
	var empty T
	// Dispatch on the head symbol (if any)
	if rule, ok := p.lists[l.Head()]; ok && l.Head() != "" {
		return rule(l)
	} else if p.listDefault != nil {
		return p.listDefault(l)
	}
	//
	return empty, p.SyntaxErrors(l, "unknown list")
}

func translateSymbol[T comparable](p *Translator[T], s *Symbol) (T, []source.SyntaxError) {
	var empty T
	//
	for _, rule := range p.symbols {
		term, ok, err := rule(s.Value)
		if err != nil {
			return empty, p.SyntaxErrors(s, err.Error())
		} else if ok {
			return term, nil
		}
	}
	//
	return empty, p.SyntaxErrors(s, "unknown symbol")
}
