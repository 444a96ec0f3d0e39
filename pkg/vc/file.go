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
package vc

import (
	"fmt"
	"math"
	"math/big"

	"github.com/consensys/go-prover/pkg/prover/library"
	"github.com/consensys/go-prover/pkg/term"
	"github.com/consensys/go-prover/pkg/util/source"
	"github.com/consensys/go-prover/pkg/util/source/sexp"
)

// File holds the declarations read from one or more VC files.  The syntax is:
//
//	(function card 1)
//	(theorem name term)
//	(vc name (given term... (derived term)...) (goal term))
type File struct {
	Signature *term.Signature
	Theorems  []library.Theorem
	VCs       []VC
}

// Parse a set of source files into a single set of declarations.  Function
// declarations apply to every file, irrespective of where they occur.
func Parse(srcfiles ...*source.File) (*File, []source.SyntaxError) {
	var (
		file   = &File{Signature: term.NewSignature()}
		forms  [][]sexp.SExp
		srcmap []*source.Map[sexp.SExp]
		errors []source.SyntaxError
	)
	// Parse S-expressions
	for _, srcfile := range srcfiles {
		sexps, smap, err := sexp.ParseAll(srcfile)
		if err != nil {
			errors = append(errors, *err)
			continue
		}
		//
		forms = append(forms, sexps)
		srcmap = append(srcmap, smap)
	}
	//
	if len(errors) > 0 {
		return nil, errors
	}
	// Declare functions
	for i, sexps := range forms {
		for _, s := range sexps {
			if l := s.AsList(); l != nil && l.Head() == "function" {
				errors = append(errors, file.declare(srcmap[i], l)...)
			}
		}
	}
	// Translate theorems and VCs
	for i, sexps := range forms {
		reader := newReader(file.Signature, srcmap[i])
		//
		for _, s := range sexps {
			errors = append(errors, reader.translate(file, s)...)
		}
	}
	//
	if len(errors) > 0 {
		return nil, errors
	}
	//
	return file, nil
}

// ReadFiles reads and parses a set of VC files.
func ReadFiles(filenames ...string) (*File, []source.SyntaxError, error) {
	files, err := source.ReadFiles(filenames...)
	if err != nil {
		return nil, nil, err
	}
	//
	srcfiles := make([]*source.File, len(files))
	//
	for i := range files {
		srcfiles[i] = &files[i]
	}
	//
	file, errs := Parse(srcfiles...)
	//
	return file, errs, nil
}

// VC returns the verification condition with the given name.
func (p *File) VC(name string) (VC, bool) {
	for _, vc := range p.VCs {
		if vc.Name == name {
			return vc, true
		}
	}
	//
	return VC{}, false
}

func (p *File) declare(srcmap *source.Map[sexp.SExp], l *sexp.List) []source.SyntaxError {
	var arity big.Int
	//
	if l.Len() != 3 || !l.MatchSymbols(1, "function") || l.Get(1).AsSymbol() == nil || l.Get(2).AsSymbol() == nil {
		return syntaxErrors(srcmap, l, "expected (function name arity)")
	} else if _, ok := arity.SetString(l.Get(2).AsSymbol().Value, 10); !ok || !arity.IsUint64() || arity.Uint64() > math.MaxInt {
		return syntaxErrors(srcmap, l.Get(2), "invalid arity")
	} else if err := p.Signature.Declare(l.Get(1).AsSymbol().Value, uint(arity.Uint64())); err != nil {
		return syntaxErrors(srcmap, l, err.Error())
	}
	//
	return nil
}

// ===================================================================
// Reader
// ===================================================================

type reader struct {
	srcmap *source.Map[sexp.SExp]
	terms  *term.Parser
}

func newReader(signature *term.Signature, srcmap *source.Map[sexp.SExp]) *reader {
	return &reader{srcmap, term.NewParser(signature, srcmap)}
}

func (p *reader) translate(file *File, s sexp.SExp) []source.SyntaxError {
	var l = s.AsList()
	//
	if l == nil {
		return syntaxErrors(p.srcmap, s, "unexpected symbol")
	}
	//
	switch l.Head() {
	case "function":
		return nil
	case "theorem":
		return p.translateTheorem(file, l)
	case "vc":
		return p.translateVC(file, l)
	default:
		return syntaxErrors(p.srcmap, l, "unknown declaration")
	}
}

func (p *reader) translateTheorem(file *File, l *sexp.List) []source.SyntaxError {
	if l.Len() != 3 || !l.MatchSymbols(1, "theorem") || l.Get(1).AsSymbol() == nil {
		return syntaxErrors(p.srcmap, l, "expected (theorem name term)")
	}
	//
	name := l.Get(1).AsSymbol().Value
	//
	for _, thm := range file.Theorems {
		if thm.Name == name {
			return syntaxErrors(p.srcmap, l.Get(1), fmt.Sprintf("duplicate theorem %s", name))
		}
	}
	//
	t, errs := p.terms.Translate(l.Get(2))
	if len(errs) > 0 {
		return errs
	}
	//
	file.Theorems = append(file.Theorems, library.Theorem{Name: name, Term: t})
	//
	return nil
}

func (p *reader) translateVC(file *File, l *sexp.List) []source.SyntaxError {
	var (
		antecedents []Antecedent
		errors      []source.SyntaxError
	)
	//
	if l.Len() != 4 || !l.MatchSymbols(1, "vc") || l.Get(1).AsSymbol() == nil {
		return syntaxErrors(p.srcmap, l, "expected (vc name (given ...) (goal term))")
	}
	//
	name := l.Get(1).AsSymbol().Value
	given := l.Get(2).AsList()
	goal := l.Get(3).AsList()
	//
	if _, ok := file.VC(name); ok {
		return syntaxErrors(p.srcmap, l.Get(1), fmt.Sprintf("duplicate vc %s", name))
	} else if given == nil || given.Head() != "given" {
		return syntaxErrors(p.srcmap, l.Get(2), "expected (given ...)")
	} else if goal == nil || goal.Len() != 2 || goal.Head() != "goal" {
		return syntaxErrors(p.srcmap, l.Get(3), "expected (goal term)")
	}
	//
	for _, s := range given.Elements[1:] {
		a, errs := p.translateAntecedent(s)
		antecedents = append(antecedents, a)
		errors = append(errors, errs...)
	}
	//
	consequent, errs := p.terms.Translate(goal.Get(1))
	errors = append(errors, errs...)
	//
	if len(errors) == 0 {
		file.VCs = append(file.VCs, New(name, antecedents, consequent))
	}
	//
	return errors
}

func (p *reader) translateAntecedent(s sexp.SExp) (Antecedent, []source.SyntaxError) {
	if l := s.AsList(); l != nil && l.Head() == "derived" {
		if l.Len() != 2 {
			return Antecedent{}, syntaxErrors(p.srcmap, l, "expected (derived term)")
		}
		//
		t, errs := p.terms.Translate(l.Get(1))
		//
		return Antecedent{t, true}, errs
	}
	//
	t, errs := p.terms.Translate(s)
	//
	return Antecedent{t, false}, errs
}

func syntaxErrors(srcmap *source.Map[sexp.SExp], node sexp.SExp, msg string) []source.SyntaxError {
	return []source.SyntaxError{*srcmap.SyntaxError(node, msg)}
}
