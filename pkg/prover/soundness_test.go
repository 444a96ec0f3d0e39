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
package prover

import (
	"slices"
	"testing"

	"github.com/consensys/go-prover/pkg/prover/library"
	"github.com/consensys/go-prover/pkg/prover/model"
	"github.com/consensys/go-prover/pkg/prover/oracle"
	"github.com/consensys/go-prover/pkg/prover/transform"
	"github.com/consensys/go-prover/pkg/term"
	"github.com/consensys/go-prover/pkg/util/collection/iter"
	"github.com/consensys/go-prover/pkg/vc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Rewriting by substitution never changes whether the antecedents entail the
// consequent.
func Test_Soundness_01(t *testing.T) {
	lib := newLibrary(t, "ground", "(= e1 e2)", "unit", "(= (m ?x one) ?x)")
	//
	checkSubstitutions(t, lib, newVC("v1", "(q (f b))", "(= a b)", "(q (f a))"), oracle.Valid)
	checkSubstitutions(t, lib, newVC("v2", "(r a (g b))", "(= a b)"), oracle.Unknown)
	checkSubstitutions(t, lib, newVC("v3", "(= (h a) d)", "(= (h a) c)", "(= c d)"), oracle.Valid)
	checkSubstitutions(t, lib, newVC("v4", "(p (k e1) e2)", "(p (k e2) e1)"), oracle.Valid)
	checkSubstitutions(t, lib, newVC("v5", "(p (m e1 one))", "(= a e1)"), oracle.Unknown)
}

func checkSubstitutions(t *testing.T, lib *library.Library, v vc.VC, expected oracle.Verdict) {
	t.Helper()
	//
	var (
		m        = Load(v, lib)
		decide   = oracle.NewCongruenceClosure()
		verdict  = decideModel(decide, m)
		rewrites uint
	)
	//
	require.Equal(t, expected, verdict)
	//
	for _, tr := range slices.Concat(lib.Transformations(), library.LocalTransformations(m)) {
		if _, ok := tr.(*transform.Substitution); !ok {
			continue
		}
		//
		for _, app := range iter.Collect(tr.Applications(m)) {
			before := m.Snapshot()
			//
			app.Apply(m)
			assert.Equal(t, verdict, decideModel(decide, m), "after %s", app)
			m.UndoLastStep()
			//
			assert.True(t, before.Equal(m.Snapshot()))
			//
			rewrites++
		}
	}
	//
	assert.Greater(t, rewrites, uint(0), "no substitutions in %s", v.Name)
}

func decideModel(o oracle.Oracle, m *model.ProofModel) oracle.Verdict {
	var antecedents []term.Term
	//
	for _, c := range m.Antecedents() {
		antecedents = append(antecedents, c.Term())
	}
	//
	return o.Decide(antecedents, m.Consequent().Term())
}
