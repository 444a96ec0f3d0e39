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
package model

import (
	"strings"

	"github.com/consensys/go-prover/pkg/term"
)

// Application is a concrete, fully bound instance of a transformation which can
// be applied to a proof model.  Applying it performs exactly one atomic edit,
// recorded as exactly one proof step.
type Application interface {
	// Apply this application to a given model, returning the proof step which
	// was pushed onto it.
	Apply(m *ProofModel) *ProofStep
	// Transformation returns a key identifying the transformation this
	// application instantiates.  Keys are stable across runs.
	Transformation() string
	// Prerequisites returns the conjuncts which justify this application.
	Prerequisites() []Conjunct
	// Involved returns the sites at which this application was bound.
	Involved() []Site
	// String returns a human-readable description.
	String() string
}

// Change records the rewriting of a conjunct's term.
type Change struct {
	Conjunct Conjunct
	// Site which was rewritten, relative to the old term.
	Path term.Path
	// Terms of the conjunct before and after the change.
	Old term.Term
	New term.Term
}

// ProofStep records a single edit to a proof model, along with its
// justification.  Proof steps are undone exactly by restoring every changed
// conjunct and removing every added conjunct.
type ProofStep struct {
	// Application which produced this step.
	Application Application
	// Added holds the local theorems introduced by this step.
	Added []*LocalTheorem
	// Changes holds the conjuncts rewritten by this step.
	Changes []Change
	// Prerequisites are the conjuncts which justified this step.
	Prerequisites []Conjunct
	// Involved are the sites at which the application was bound.
	Involved []Site
}

// NewProofStep constructs a proof step for a given application, taking its
// prerequisites and involved sites from the application itself.
func NewProofStep(app Application, added []*LocalTheorem, changes ...Change) *ProofStep {
	return &ProofStep{app, added, changes, app.Prerequisites(), app.Involved()}
}

func (p *ProofStep) String() string {
	var builder strings.Builder
	//
	builder.WriteString(p.Application.String())
	//
	for _, a := range p.Added {
		builder.WriteString("\n  + ")
		builder.WriteString(a.String())
	}
	//
	for _, c := range p.Changes {
		builder.WriteString("\n  ~ ")
		builder.WriteString(c.Old.String())
		builder.WriteString(" => ")
		builder.WriteString(c.New.String())
	}
	//
	return builder.String()
}
