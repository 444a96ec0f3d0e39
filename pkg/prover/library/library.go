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
package library

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/consensys/go-prover/pkg/prover/model"
	"github.com/consensys/go-prover/pkg/prover/transform"
	"github.com/consensys/go-prover/pkg/term"
)

// Theorem is a named library fact.
type Theorem struct {
	Name string
	Term term.Term
}

// Filtered records a library theorem (or part thereof) which does not seed any
// transformation.
type Filtered struct {
	Theorem Theorem
	// Part of the theorem which was filtered
	Part   term.Term
	Reason string
}

func (p Filtered) String() string {
	return fmt.Sprintf("%s: %s (%s)", p.Theorem.Name, p.Reason, p.Part)
}

// Library is an immutable set of theorems, each classified by shape into the
// transformations it seeds.  Libraries can be shared between concurrent
// proofs.
type Library struct {
	theorems        []Theorem
	transformations []transform.Transformation
	filtered        []Filtered
}

// New constructs a library from a given set of theorems.  Theorems whose shape
// does not seed any transformation are filtered out, with a warning when noisy.
// Theorem names must be unique.
func New(theorems []Theorem, noisy bool) (*Library, error) {
	var (
		lib   = &Library{theorems: theorems}
		names = make(map[string]bool)
	)
	//
	for _, thm := range theorems {
		if names[thm.Name] {
			return nil, fmt.Errorf("duplicate theorem %s", thm.Name)
		}
		//
		names[thm.Name] = true
		//
		transformations, rejects := normalize(transform.Global(thm.Name), thm.Term)
		lib.transformations = append(lib.transformations, transformations...)
		//
		for _, r := range rejects {
			filtered := Filtered{thm, r.part, r.reason}
			lib.filtered = append(lib.filtered, filtered)
			//
			if noisy {
				log.Warnf("ignoring rule %s", filtered)
			}
		}
	}
	//
	log.Debugf("library of %d theorems gives %d transformations (%d filtered)", len(theorems),
		len(lib.transformations), len(lib.filtered))
	//
	return lib, nil
}

// Theorems returns the theorems of this library in declaration order.
func (p *Library) Theorems() []Theorem {
	return p.theorems
}

// Transformations returns the transformations seeded by this library, in
// theorem declaration order.
func (p *Library) Transformations() []transform.Transformation {
	return p.transformations
}

// Filtered returns the parts of theorems which seed no transformation.
func (p *Library) Filtered() []Filtered {
	return p.filtered
}

// Load every theorem of this library into a given model as a global theorem.
func (p *Library) Load(m *model.ProofModel) {
	for _, thm := range p.theorems {
		m.AddGlobalTheorem(thm.Name, thm.Term)
	}
}

// LocalTransformations returns the transformations seeded by the local theorems
// of a given model, in order of introduction.  Only equalities and implications
// seed transformations here, since local facts are matched directly.
func LocalTransformations(m *model.ProofModel) []transform.Transformation {
	var transformations []transform.Transformation
	//
	for _, l := range m.Locals() {
		for _, part := range term.SplitConjuncts(l.Term()) {
			if isRule(part) {
				ts, _ := normalize(transform.Local(l), part)
				transformations = append(transformations, ts...)
			}
		}
	}
	//
	return transformations
}

func isRule(t term.Term) bool {
	if _, ok := term.IsApplyOf(t, term.Eq); ok {
		return true
	}
	//
	_, ok := term.IsApplyOf(t, term.Implies)
	//
	return ok
}
