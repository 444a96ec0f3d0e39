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
	"slices"
	"strings"
)

// Bindings maps the names of quantified symbols to the terms they are bound to.
type Bindings map[string]Term

// Clone returns a copy of these bindings which can be extended independently.
func (p Bindings) Clone() Bindings {
	var nbindings = make(Bindings, len(p))
	//
	for k, v := range p {
		nbindings[k] = v
	}
	//
	return nbindings
}

// Names returns the bound names in sorted order.
func (p Bindings) Names() []string {
	var names = make([]string, 0, len(p))
	//
	for k := range p {
		names = append(names, k)
	}
	//
	slices.Sort(names)
	//
	return names
}

func (p Bindings) String() string {
	var builder strings.Builder
	//
	builder.WriteString("{")
	//
	for i, name := range p.Names() {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(fmt.Sprintf("?%s=%s", name, p[name]))
	}
	//
	builder.WriteString("}")
	//
	return builder.String()
}

// Compose two sets of bindings such that substituting with the result is
// equivalent to substituting with the first and then the second.  Names bound
// by the first take priority.
func Compose(first Bindings, second Bindings) Bindings {
	var composed = make(Bindings, len(first)+len(second))
	//
	for k, v := range first {
		composed[k] = Substitute(v, second)
	}
	//
	for k, v := range second {
		if _, ok := composed[k]; !ok {
			composed[k] = v
		}
	}
	//
	return composed
}

// Substitute every occurrence of a bound quantified symbol in a given term with
// the term it is bound to.  A quantified operator bound to a symbol takes that
// symbol's name.  When nothing is substituted, the original term is returned.
func Substitute(t Term, bindings Bindings) Term {
	if len(bindings) == 0 {
		return t
	}
	//
	switch t := t.(type) {
	case *Literal:
		return t
	case *Symbol:
		if t.Quantified {
			if b, ok := bindings[t.Name]; ok {
				return b
			}
		}
		//
		return t
	case *Apply:
		var (
			args    []Term
			op      = t.Op
			qop     = t.Quantified
			changed = false
		)
		//
		if t.Quantified {
			if b, ok := bindings[t.Op].(*Symbol); ok {
				op, qop, changed = b.Name, b.Quantified, true
			}
		}
		//
		for i, arg := range t.Args {
			narg := Substitute(arg, bindings)
			//
			if narg != arg && args == nil {
				args = slices.Clone(t.Args)
			}
			//
			if args != nil {
				args[i] = narg
			}
		}
		//
		if args == nil && !changed {
			return t
		} else if args == nil {
			args = t.Args
		}
		//
		return &Apply{op, qop, args, t.MathType}
	default:
		panic(fmt.Sprintf("unknown term encountered (%T)", t))
	}
}

// RenameQuantified renames every quantified symbol (and quantified operator) in
// a given term using a given function.
func RenameQuantified(t Term, rename func(string) string) Term {
	switch t := t.(type) {
	case *Literal:
		return t
	case *Symbol:
		if t.Quantified {
			return &Symbol{rename(t.Name), t.MathType, true}
		}
		//
		return t
	case *Apply:
		var (
			args = make([]Term, len(t.Args))
			op   = t.Op
		)
		//
		if t.Quantified {
			op = rename(op)
		}
		//
		for i, arg := range t.Args {
			args[i] = RenameQuantified(arg, rename)
		}
		//
		return &Apply{op, t.Quantified, args, t.MathType}
	default:
		panic(fmt.Sprintf("unknown term encountered (%T)", t))
	}
}
