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
	"unicode"

	"github.com/consensys/go-prover/pkg/util/source"
)

// Parse a given string into an S-expression, or return an error if the string
// is malformed.  A source map is also returned for debugging purposes.
func Parse(s *source.File) (SExp, *source.Map[SExp], *source.SyntaxError) {
	p := NewParser(s)
	// Parse the input
	sExp, err := p.Parse()
	// Sanity check everything was parsed
	if err == nil && p.index != len(p.text) {
		return nil, nil, p.error("unexpected remainder")
	}
	// Done
	return sExp, p.SourceMap(), err
}

// ParseAll converts a given string into zero or more S-expressions, or returns
// an error if the string is malformed.  A source map is also returned for
// debugging purposes.  The key distinction from Parse is that this function
// continues parsing after the first S-expression is encountered.
func ParseAll(s *source.File) ([]SExp, *source.Map[SExp], *source.SyntaxError) {
	p := NewParser(s)
	//
	terms := make([]SExp, 0)
	// Parse the input
	for {
		term, err := p.Parse()
		// Sanity check everything was parsed
		if err != nil {
			return terms, p.srcmap, err
		} else if term == nil {
			// EOF reached
			return terms, p.srcmap, nil
		}

		terms = append(terms, term)
	}
}

// Parser represents a parser in the process of parsing a given string into one
// or more S-expressions.
type Parser struct {
	// Source file being parsed
	srcfile *source.File
	// Cache (for simplicity)
	text []rune
	// Determine current position within text
	index int
	// Mapping from constructed S-Expressions to their spans in the original text.
	srcmap *source.Map[SExp]
}

// NewParser constructs a new instance of Parser
func NewParser(srcfile *source.File) *Parser {
	return &Parser{
		srcfile: srcfile,
		text:    srcfile.Contents(),
		index:   0,
		srcmap:  source.NewSourceMap[SExp](srcfile),
	}
}

// SourceMap returns the source map maintained by this parser.  Using this one
// can determine, for each SExp, where in the original text it originated.
// This is helpful, for example, when reporting syntax errors.
func (p *Parser) SourceMap() *source.Map[SExp] {
	return p.srcmap
}

// Parse a given string into an S-Expression, or produce an error.  Returns nil
// (without an error) when the end of the input is reached.
func (p *Parser) Parse() (SExp, *source.SyntaxError) {
	var term SExp
	// Skip over any whitespace.  This is import to get the correct starting
	// point for this term.
	p.skipWhiteSpace()
	// Record start of this term
	start := p.index
	// Extract next token from the stream
	token, err := p.next()
	//
	if err != nil {
		return nil, err
	} else if token == nil {
		return nil, nil
	} else if len(token) == 1 && token[0] == ')' {
		p.index-- // backup
		return nil, p.error("unexpected end-of-list")
	} else if len(token) == 1 && token[0] == '(' {
		elements, err := p.parseSequence(')')
		// Check for error
		if err != nil {
			return nil, err
		}
		// Done
		term = &List{elements}
	} else {
		// Must be a symbol
		term = &Symbol{string(token)}
	}
	// Register item in source map
	p.srcmap.Put(term, source.NewSpan(start, p.index))
	// Done
	return term, nil
}

// Extract the next token from the stream.  Quoted symbols are returned with
// their quotes intact.
func (p *Parser) next() ([]rune, *source.SyntaxError) {
	// Skip any whitespace and/or comments.
	p.skipWhiteSpace()
	// Catch end-of-file
	if p.index == len(p.text) {
		return nil, nil
	}
	// Check what we have
	switch p.text[p.index] {
	case '(', ')':
		// List begin / end
		p.index = p.index + 1
		return p.text[p.index-1 : p.index], nil
	case '"':
		return p.parseQuoted()
	}
	// Symbol
	return p.parseSymbol(), nil
}

func (p *Parser) skipWhiteSpace() {
	for p.index < len(p.text) && (unicode.IsSpace(p.text[p.index]) || p.text[p.index] == ';') {
		// Skip comment
		if p.text[p.index] == ';' {
			for p.index < len(p.text) && p.text[p.index] != '\n' {
				p.index++
			}
		} else {
			// skip space
			p.index++
		}
	}
}

func (p *Parser) lookahead() *rune {
	p.skipWhiteSpace()
	//
	if p.index < len(p.text) {
		return &p.text[p.index]
	}
	//
	return nil
}

func (p *Parser) parseSymbol() []rune {
	i := len(p.text)
	//
	for j := p.index; j < i; j++ {
		if !isSymbolLetter(p.text[j]) {
			i = j
			break
		}
	}
	// Reached end of token
	token := p.text[p.index:i]
	p.index = i
	//
	return token
}

func (p *Parser) parseQuoted() ([]rune, *source.SyntaxError) {
	start := p.index
	//
	for j := start + 1; j < len(p.text); j++ {
		if p.text[j] == '"' {
			p.index = j + 1
			return p.text[start:p.index], nil
		}
	}
	//
	return nil, p.error("unterminated string")
}

func (p *Parser) parseSequence(terminator rune) ([]SExp, *source.SyntaxError) {
	var elements []SExp

	for c := p.lookahead(); c == nil || *c != terminator; c = p.lookahead() {
		// Parse next element
		element, err := p.Parse()
		if err != nil {
			return nil, err
		} else if element == nil {
			return nil, p.error("unexpected end-of-file")
		}
		// Continue around!
		elements = append(elements, element)
	}
	// Consume terminator
	p.index++
	//
	return elements, nil
}

// Construct a parser error at the current position in the input stream.
func (p *Parser) error(msg string) *source.SyntaxError {
	end := min(p.index+1, len(p.text))
	span := source.NewSpan(min(p.index, end), end)
	//
	return p.srcfile.SyntaxError(span, msg)
}
