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
package chooser

import (
	"fmt"

	"github.com/consensys/go-prover/pkg/prover/library"
	"github.com/consensys/go-prover/pkg/prover/model"
	"github.com/consensys/go-prover/pkg/prover/proofdata"
	"github.com/consensys/go-prover/pkg/prover/transform"
	"github.com/consensys/go-prover/pkg/util/collection/iter"
)

// Suggestion is a candidate application, along with the transformation it
// instantiates.
type Suggestion struct {
	Transformation transform.Transformation
	Application    transform.Application
}

// Metrics records statistics of a proof search, for diagnostics and for use by
// choosers.
type Metrics struct {
	// Steps is the number of applications applied.
	Steps uint `json:"steps"`
	// Backtracks is the number of applications undone.
	Backtracks uint `json:"backtracks"`
	// BinderQueries is the number of binder queries made.
	BinderQueries uint `json:"binder_queries"`
	// Suggestions is the number of suggestions requested.
	Suggestions uint `json:"suggestions"`
	// MaxDepth is the deepest proof depth reached.
	MaxDepth uint `json:"max_depth"`
}

// Chooser is a strategy for ordering the applications to try at each node of a
// proof search.  Choosers are purely advisory: they never mutate the model.
type Chooser interface {
	// Name identifies this chooser.
	Name() string
	// Suggest lazily enumerates the applications to try against a given model,
	// in order.  The depth is the number of steps applied so far, and prior
	// holds the record of the last successful proof of this VC (or nil).
	Suggest(m *model.ProofModel, depth uint, metrics *Metrics, prior *proofdata.Record) iter.Enumerator[Suggestion]
}

// Names of the available choosers.
const (
	NaiveName  = "naive"
	GuidedName = "guided"
)

// New constructs a chooser by name.
func New(name string, lib *library.Library, config GuidedConfig) (Chooser, error) {
	switch name {
	case NaiveName:
		return NewNaive(lib), nil
	case GuidedName:
		return NewGuided(lib, config), nil
	default:
		return nil, fmt.Errorf("unknown chooser %s", name)
	}
}

// Lazily enumerate the applications of a given list of transformations, in
// order.
func suggestions(m *model.ProofModel, transformations []transform.Transformation) iter.Enumerator[Suggestion] {
	return iter.NewFlattenEnumerator(iter.NewArrayEnumerator(transformations),
		func(t transform.Transformation) iter.Enumerator[Suggestion] {
			return iter.NewProjectEnumerator(t.Applications(m), func(a transform.Application) Suggestion {
				return Suggestion{t, a}
			})
		})
}

// Library transformations followed by those of the model's local theorems.
func allTransformations(lib *library.Library, m *model.ProofModel) []transform.Transformation {
	var transformations = make([]transform.Transformation, 0, len(lib.Transformations()))
	//
	transformations = append(transformations, lib.Transformations()...)
	//
	return append(transformations, library.LocalTransformations(m)...)
}

// ===================================================================
// Naive
// ===================================================================

// Naive tries every transformation in declaration order, ignoring everything
// specific to the VC.  Library transformations come first, followed by those of
// local theorems.
type Naive struct {
	library *library.Library
}

// NewNaive constructs a naive chooser over a given library.
func NewNaive(lib *library.Library) *Naive {
	return &Naive{lib}
}

// Name implementation for Chooser interface.
func (p *Naive) Name() string {
	return NaiveName
}

// Suggest implementation for Chooser interface.
func (p *Naive) Suggest(m *model.ProofModel, _ uint, _ *Metrics, _ *proofdata.Record) iter.Enumerator[Suggestion] {
	return suggestions(m, allTransformations(p.library, m))
}
