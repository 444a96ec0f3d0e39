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
	"strings"

	"github.com/consensys/go-prover/pkg/term"
)

// ModifiedSuffix is appended to the display name of a VC whose consequent was
// normalized.
const ModifiedSuffix = " (modified)"

// Antecedent is an assumed fact of a verification condition.  Derived
// antecedents were not given directly, but obtained by normalization or an
// earlier analysis.
type Antecedent struct {
	Term    term.Term
	Derived bool
}

// VC is a verification condition, i.e. an implication from a list of
// antecedents to a consequent which is to be proved.
type VC struct {
	Name        string
	Antecedents []Antecedent
	Consequent  term.Term
	// Modified indicates the consequent was normalized.
	Modified bool
}

// New constructs a verification condition, normalizing its consequent.  A
// consequent (implies A B) is replaced by B, with the conjuncts of A moved into
// the antecedent as derived facts.
func New(name string, antecedents []Antecedent, consequent term.Term) VC {
	var vc = VC{name, antecedents, consequent, false}
	//
	if premises, conclusion, ok := term.SplitImplication(consequent); ok {
		vc.Antecedents = append([]Antecedent(nil), antecedents...)
		//
		for _, premise := range premises {
			for _, c := range term.SplitConjuncts(premise) {
				vc.Antecedents = append(vc.Antecedents, Antecedent{c, true})
			}
		}
		//
		vc.Consequent = conclusion
		vc.Modified = true
	}
	//
	return vc
}

// DisplayName returns the name of this VC, marking those which were modified.
func (p *VC) DisplayName() string {
	if p.Modified {
		return p.Name + ModifiedSuffix
	}
	//
	return p.Name
}

// Terms returns the antecedent terms of this VC.
func (p *VC) Terms() []term.Term {
	var terms = make([]term.Term, len(p.Antecedents))
	//
	for i, a := range p.Antecedents {
		terms[i] = a.Term
	}
	//
	return terms
}

func (p *VC) String() string {
	var builder strings.Builder
	//
	builder.WriteString(p.DisplayName())
	builder.WriteString(": ")
	//
	for i, a := range p.Antecedents {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		if a.Derived {
			builder.WriteString("*")
		}
		//
		builder.WriteString(a.Term.String())
	}
	//
	builder.WriteString(" ⊢ ")
	builder.WriteString(p.Consequent.String())
	//
	return builder.String()
}
