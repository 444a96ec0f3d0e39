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
package bind

import (
	"errors"
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

func newModel(consequent string, antecedents ...string) *model.ProofModel {
	m := model.NewProofModel(parse(consequent))
	//
	for _, a := range antecedents {
		m.AddAntecedent(parse(a), false)
	}
	//
	return m
}

func Test_Match_01(t *testing.T) {
	b, err := Match(parse("(f ?x (g ?y))"), parse("(f a (g (h b)))"), term.Bindings{})
	//
	require.NoError(t, err)
	assert.Equal(t, "{?x=a, ?y=(h b)}", b.String())
}

func Test_Match_02(t *testing.T) {
	var conflict *BindingConflict
	//
	_, err := Match(parse("(f ?x ?x)"), parse("(f a b)"), term.Bindings{})
	//
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "x", conflict.Name)
	// Consistent rebinding succeeds
	_, err = Match(parse("(f ?x ?x)"), parse("(f a a)"), term.Bindings{})
	assert.NoError(t, err)
}

func Test_Match_03(t *testing.T) {
	var mismatch *TypeMismatch
	//
	_, err := Match(parse("(f ?x:Set)"), parse("(f 1)"), term.Bindings{})
	//
	require.True(t, errors.As(err, &mismatch))
	// Untyped and Entity typed targets are compatible
	_, err = Match(parse("(f ?x:Set)"), parse("(f a)"), term.Bindings{})
	assert.NoError(t, err)
	_, err = Match(parse("(f ?x:Set)"), parse("(f a:Entity)"), term.Bindings{})
	assert.NoError(t, err)
}

func Test_Match_04(t *testing.T) {
	b, err := Match(parse("(?f ?x)"), parse("(card S)"), term.Bindings{})
	//
	require.NoError(t, err)
	assert.Equal(t, "(card S)", term.Substitute(parse("(?f ?x)"), b).String())
	//
	_, err = Match(parse("(?f ?x)"), parse("(card S T)"), term.Bindings{})
	assert.ErrorIs(t, err, ErrMismatch)
}

func Test_Match_05(t *testing.T) {
	initial := term.Bindings{"x": parse("a")}
	//
	_, err := Match(parse("(f ?x ?y)"), parse("(f a b)"), initial)
	//
	require.NoError(t, err)
	assert.Len(t, initial, 1)
	//
	_, err = Match(parse("(f ?x ?y)"), parse("(f c b)"), initial)
	assert.Error(t, err)
	//
	_, err = Match(parse("(f x)"), parse("(f ?x)"), initial)
	assert.ErrorIs(t, err, ErrMismatch)
}

func Test_Bind_01(t *testing.T) {
	m := newModel("goal", "(p a)", "(p b)", "(q b)")
	results := iter.Collect(Bind(m, TopLevelAntecedent(parse("(p ?x)")), TopLevelAntecedent(parse("(q ?x)"))))
	//
	require.Len(t, results, 1)
	assert.Equal(t, "{?x=b}", results[0].Bindings.String())
	assert.Equal(t, uint(3), results[0].Sites[0].Conjunct.ID())
	assert.Equal(t, uint(4), results[0].Sites[1].Conjunct.ID())
}

func Test_Bind_02(t *testing.T) {
	m := newModel("(f (g a) (g b))", "(g c)")
	binder := Antecedent(parse("(g ?x)"))
	// Deterministic and restartable
	first := iter.Collect(Bind(m, binder))
	second := iter.Collect(Bind(m, binder))
	//
	require.Len(t, first, 1)
	assert.Equal(t, first, second)
	//
	consequent := iter.Collect(Bind(m, Consequent(parse("(g ?x)"))))
	require.Len(t, consequent, 2)
	assert.Equal(t, "{?x=a}", consequent[0].Bindings.String())
	assert.Equal(t, "{?x=b}", consequent[1].Bindings.String())
}

func Test_Bind_03(t *testing.T) {
	m := newModel("goal")
	g := m.AddGlobalTheorem("fact", parse("(p ?x)"))
	// Global instances are renamed apart
	results := iter.Collect(Bind(m, TopLevelAntecedent(parse("(p ?x)"))))
	//
	require.Len(t, results, 1)
	assert.Same(t, g, results[0].Sites[0].Conjunct)
	assert.Equal(t, "{?x=?x#2.0}", results[0].Bindings.String())
	// But are never sufficient on their own
	assert.Equal(t, uint(0), iter.Count(AtLeastOneLocal(m, TopLevelAntecedent(parse("(p ?x)")))))
}

func Test_Bind_04(t *testing.T) {
	m := newModel("goal", "(p a)")
	m.AddGlobalTheorem("fact", parse("(p c)"))
	//
	results := iter.Collect(AtLeastOneLocal(m, TopLevelAntecedent(parse("(p ?x)")), TopLevelAntecedent(parse("(p ?y)"))))
	// Each binder must bind a distinct site, and one must be local.
	require.Len(t, results, 2)
	assert.Equal(t, "{?x=a, ?y=c}", results[0].Bindings.String())
	assert.Equal(t, "{?x=c, ?y=a}", results[1].Bindings.String())
}

func Test_Bind_05(t *testing.T) {
	m := newModel("goal", "(= x y)", "(p x)")
	self := m.Locals()[0]
	//
	results := iter.Collect(Bind(m, SkipOneAntecedent(parse("x"), self)))
	//
	require.Len(t, results, 1)
	assert.Equal(t, uint(3), results[0].Sites[0].Conjunct.ID())
	assert.Equal(t, term.Path{0}, results[0].Sites[0].Path)
	//
	roots := iter.Collect(Bind(m, SkipOneTopLevelAntecedent(parse("?x"), self)))
	require.Len(t, roots, 1)
}

func Test_Bind_06(t *testing.T) {
	m := newModel("(and (p a) (q b))")
	results := iter.Collect(Bind(m, ConsequentConjunct(parse("(?f ?x)"))))
	//
	require.Len(t, results, 2)
	assert.Equal(t, term.Path{1}, results[1].Sites[0].Path)
}

func Test_Bind_07(t *testing.T) {
	m := newModel("goal", "(p a)", "(p b)")
	before := m.BinderQueries()
	//
	iter.Collect(Bind(m, TopLevelAntecedent(parse("(p ?x)")), TopLevelAntecedent(parse("(p ?y)"))))
	// One query for the first binder, and one for each of its two matches.
	assert.Equal(t, before+3, m.BinderQueries())
}

func Test_Bind_08(t *testing.T) {
	m := newModel("goal")
	//
	assert.Equal(t, uint(1), iter.Count(Bind(m)))
	assert.Equal(t, uint(0), iter.Count(AtLeastOneLocal(m)))
}

func Test_Unify_01(t *testing.T) {
	initial := term.Bindings{"x": parse("a")}
	// A bound pattern symbol binds an instance symbol in turn
	b, err := Unify(parse("(q ?x)"), parse("(q ?y#3.1)"), initial)
	//
	require.NoError(t, err)
	assert.Equal(t, "{?x=a, ?y#3.1=a}", b.String())
	assert.Len(t, initial, 1)
	// But not an ordinary symbol
	_, err = Unify(parse("(q ?x)"), parse("(q b)"), initial)
	assert.Error(t, err)
}

func Test_Unify_02(t *testing.T) {
	b, err := Unify(parse("(f ?x ?x)"), parse("(f ?y#2.0 (g b))"), term.Bindings{})
	//
	require.NoError(t, err)
	assert.Equal(t, "{?x=(g b), ?y#2.0=(g b)}", Resolve(b).String())
	// Cyclic bindings are rejected
	_, err = Unify(parse("(f ?x ?x)"), parse("(f ?y#2.0 (g ?y#2.0))"), term.Bindings{})
	assert.Error(t, err)
}

func Test_Bind_09(t *testing.T) {
	m := newModel("goal", "(p a)")
	m.AddGlobalTheorem("allq", parse("(q ?y)"))
	// The local binding flows into the global instance
	results := iter.Collect(AtLeastOneLocal(m, TopLevelAntecedent(parse("(p ?x)")), TopLevelAntecedent(parse("(q ?x)"))))
	//
	require.Len(t, results, 1)
	assert.Equal(t, "{?x=a, ?y#3.1=a}", results[0].Bindings.String())
	// Regardless of binder order
	results = iter.Collect(AtLeastOneLocal(m, TopLevelAntecedent(parse("(q ?x)")), TopLevelAntecedent(parse("(p ?x)"))))
	//
	require.Len(t, results, 1)
	assert.Equal(t, "(r a)", term.Substitute(parse("(r ?x)"), results[0].Bindings).String())
}

func Test_Bind_10(t *testing.T) {
	m := newModel("goal", "(= (e T) (f T))", "(e T)")
	self := m.Locals()[0]
	// Other antecedents are rewritable at their root
	results := iter.Collect(Bind(m, SkipOneAntecedent(parse("(e T)"), self)))
	//
	require.Len(t, results, 1)
	assert.Equal(t, uint(3), results[0].Sites[0].Conjunct.ID())
	assert.Empty(t, results[0].Sites[0].Path)
}
