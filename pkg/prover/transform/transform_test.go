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
package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consensys/go-prover/pkg/prover/model"
	"github.com/consensys/go-prover/pkg/term"
	"github.com/consensys/go-prover/pkg/util/collection/iter"
)

func parse(s string) term.Term {
	return term.MustParse(s)
}

func parseAll(inputs ...string) []term.Term {
	var terms = make([]term.Term, len(inputs))
	//
	for i, s := range inputs {
		terms[i] = parse(s)
	}
	//
	return terms
}

func newModel(consequent string, antecedents ...string) *model.ProofModel {
	m := model.NewProofModel(parse(consequent))
	//
	for _, a := range antecedents {
		m.AddAntecedent(parse(a), false)
	}
	//
	return m
}

// Check that each application can be applied and then undone exactly.
func checkUndo(t *testing.T, m *model.ProofModel, apps []Application) {
	t.Helper()
	//
	for _, app := range apps {
		before := m.Snapshot()
		step := app.Apply(m)
		//
		assert.Equal(t, uint(1), m.Depth())
		assert.Same(t, app, step.Application)
		m.UndoLastStep()
		assert.True(t, before.Equal(m.Snapshot()), "undo of %s", app)
	}
}

func Test_ImplicationExpansion_01(t *testing.T) {
	m := newModel("(> (card (o S T)) (card S))", "(> (card T) 0)")
	g := m.AddGlobalTheorem("positive_nonempty", parse("(implies (> (card ?S) 0) (/= ?S Empty))"))
	x := NewImplicationExpansion(Global("positive_nonempty"), parseAll("(> (card ?S) 0)"), parse("(/= ?S Empty)"))
	//
	apps := iter.Collect(x.Applications(m))
	//
	require.Len(t, apps, 1)
	//
	step := apps[0].Apply(m)
	//
	require.Len(t, step.Added, 1)
	assert.Equal(t, "(/= T Empty)", step.Added[0].Term().String())
	require.Len(t, step.Prerequisites, 2)
	assert.Same(t, g, step.Prerequisites[0])
	assert.Same(t, m.Locals()[0], step.Prerequisites[1])
	assert.Equal(t, step.Prerequisites, step.Added[0].Prerequisites)
	// Nothing new remains to be concluded
	assert.Equal(t, uint(0), iter.Count(x.Applications(m)))
	//
	m.UndoLastStep()
	checkUndo(t, m, apps)
}

func Test_ImplicationExpansion_02(t *testing.T) {
	// Only global facts match, so nothing can be expanded
	m := newModel("(q c)")
	m.AddGlobalTheorem("fact", parse("(p c)"))
	m.AddGlobalTheorem("rule", parse("(implies (p ?x) (q ?x))"))
	x := NewImplicationExpansion(Global("rule"), parseAll("(p ?x)"), parse("(q ?x)"))
	//
	assert.Equal(t, uint(0), iter.Count(x.Applications(m)))
}

func Test_ImplicationExpansion_03(t *testing.T) {
	m := newModel("goal", "a", "(implies a b)")
	x := NewImplicationExpansion(Local(m.Locals()[1]), parseAll("a"), parse("b"))
	//
	apps := iter.Collect(x.Applications(m))
	//
	require.Len(t, apps, 1)
	step := apps[0].Apply(m)
	assert.Equal(t, "b", step.Added[0].Term().String())
	assert.Len(t, step.Prerequisites, 2)
}

func Test_ImplicationExpansion_04(t *testing.T) {
	m := newModel("goal", "(p a)", "(q a)")
	m.AddGlobalTheorem("split", parse("(implies (p ?x) (and (q ?x) (r ?x)))"))
	x := NewImplicationExpansion(Global("split"), parseAll("(p ?x)"), parse("(and (q ?x) (r ?x))"))
	//
	apps := iter.Collect(x.Applications(m))
	//
	require.Len(t, apps, 1)
	// Conclusions already present are dropped
	step := apps[0].Apply(m)
	require.Len(t, step.Added, 1)
	assert.Equal(t, "(r a)", step.Added[0].Term().String())
}

func Test_ImplicationExpansion_05(t *testing.T) {
	x := NewImplicationExpansion(Global("rule"), parseAll("(p ?x)", "(q (f ?x))"), parse("(r ?x ?y)"))
	//
	assert.Equal(t, -2, x.ComplexityDelta())
	assert.True(t, x.IntroducesQuantifiedVariables())
	assert.True(t, x.AffectsAntecedent())
	assert.False(t, x.AffectsConsequent())
	//
	patterns, replacements := x.PatternSymbols(), x.ReplacementSymbols()
	assert.Equal(t, []string{"f", "p", "q"}, patterns.ToArray())
	assert.Equal(t, []string{"r"}, replacements.ToArray())
}

func Test_Substitution_01(t *testing.T) {
	m := newModel("(f (g a) (g b))")
	m.AddGlobalTheorem("gh", parse("(= (g ?x) (h ?x))"))
	s := NewSubstitution(Global("gh"), parse("(g ?x)"), parse("(h ?x)"))
	//
	apps := iter.Collect(s.Applications(m))
	//
	require.Len(t, apps, 2)
	checkUndo(t, m, apps)
	//
	apps[1].Apply(m)
	assert.Equal(t, "(f (g a) (h b))", m.Consequent().Term().String())
	assert.Equal(t, 0, s.ComplexityDelta())
	assert.False(t, s.IntroducesQuantifiedVariables())
}

func Test_Substitution_02(t *testing.T) {
	m := newModel("(f a)")
	m.AddGlobalTheorem("id", parse("(= (f ?x) (f ?x))"))
	s := NewSubstitution(Global("id"), parse("(f ?x)"), parse("(f ?x)"))
	// Rewrites which change nothing are dropped
	assert.Equal(t, uint(0), iter.Count(s.Applications(m)))
}

func Test_Substitution_03(t *testing.T) {
	m := newModel("(p x)", "(= x y)")
	s := NewSubstitution(Local(m.Locals()[0]), parse("x"), parse("y"))
	//
	apps := iter.Collect(s.Applications(m))
	//
	require.Len(t, apps, 1)
	step := apps[0].Apply(m)
	assert.Equal(t, "(p y)", m.Consequent().Term().String())
	assert.Equal(t, []model.Conjunct{m.Locals()[0]}, step.Prerequisites)
	require.Len(t, step.Changes, 1)
	assert.Equal(t, "(p x)", step.Changes[0].Old.String())
}

func Test_AntecedentSubstitution_01(t *testing.T) {
	m := newModel("goal", "(= x y)", "(p x)")
	s := NewAntecedentSubstitution(Local(m.Locals()[0]), parse("x"), parse("y"))
	//
	apps := iter.Collect(s.Applications(m))
	//
	require.Len(t, apps, 1)
	checkUndo(t, m, apps)
	//
	step := apps[0].Apply(m)
	assert.Equal(t, "(p y)", step.Added[0].Term().String())
	assert.Equal(t, []model.Conjunct{m.Locals()[0], m.Locals()[1]}, step.Prerequisites)
	// The original antecedent is untouched
	assert.Equal(t, "(p x)", m.Locals()[1].Term().String())
}

func Test_AntecedentSubstitution_02(t *testing.T) {
	m := newModel("goal", "(= x y)", "(p x)", "(p y)")
	s := NewAntecedentSubstitution(Local(m.Locals()[0]), parse("x"), parse("y"))
	// The only rewrite produces an existing antecedent
	assert.Equal(t, uint(0), iter.Count(s.Applications(m)))
}

func Test_AntecedentSubstitution_03(t *testing.T) {
	m := newModel("goal", "(= (is_empty T) (= (card T) 0))", "(is_empty T)")
	s := NewAntecedentSubstitution(Local(m.Locals()[0]), parse("(is_empty T)"), parse("(= (card T) 0)"))
	// The whole antecedent is rewritten
	apps := iter.Collect(s.Applications(m))
	//
	require.Len(t, apps, 1)
	checkUndo(t, m, apps)
	//
	step := apps[0].Apply(m)
	assert.Equal(t, "(= (card T) 0)", step.Added[0].Term().String())
}

func Test_ConsequentElimination_01(t *testing.T) {
	m := newModel("(and (p a) (q b))")
	m.AddGlobalTheorem("fact", parse("(p ?x)"))
	e := NewConsequentElimination(Global("fact"), parse("(p ?x)"))
	//
	apps := iter.Collect(e.Applications(m))
	//
	require.Len(t, apps, 1)
	apps[0].Apply(m)
	assert.Equal(t, "(and true (q b))", m.Consequent().Term().String())
	assert.Equal(t, uint(0), iter.Count(e.Applications(m)))
	assert.Equal(t, -1, e.ComplexityDelta())
}
