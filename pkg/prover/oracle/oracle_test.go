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
package oracle

import (
	"testing"

	"github.com/consensys/go-prover/pkg/term"
	"github.com/stretchr/testify/assert"
)

func decide(antecedents []string, consequent string) Verdict {
	var ants []term.Term
	//
	for _, a := range antecedents {
		ants = append(ants, term.MustParse(a))
	}
	//
	return NewCongruenceClosure().Decide(ants, term.MustParse(consequent))
}

func Test_Oracle_01(t *testing.T) {
	assert.Equal(t, Valid, decide(nil, "true"))
	assert.Equal(t, Unknown, decide(nil, "false"))
	assert.Equal(t, Valid, decide([]string{"false"}, "(p a)"))
	assert.Equal(t, Valid, decide([]string{"(p a)", "(implies (p a) (q a))"}, "(q a)"))
	assert.Equal(t, Unknown, decide([]string{"(implies (p a) (q a))"}, "(q a)"))
	assert.Equal(t, Valid, decide(nil, "(or (p a) (not (p a)))"))
	assert.Equal(t, Valid, decide([]string{"(and (p a) (q a))"}, "(and (q a) (p a))"))
	assert.Equal(t, Valid, decide([]string{"(or (p a) (q a))", "(not (p a))"}, "(q a)"))
}

func Test_Oracle_02(t *testing.T) {
	assert.Equal(t, Valid, decide(nil, "(= a a)"))
	assert.Equal(t, Valid, decide([]string{"(= a b)"}, "(= b a)"))
	assert.Equal(t, Valid, decide([]string{"(= a b)", "(= b c)"}, "(= a c)"))
	assert.Equal(t, Valid, decide([]string{"(= a b)"}, "(= (f a) (f b))"))
	assert.Equal(t, Valid, decide([]string{"(= a b)", "(p (f a))"}, "(p (f b))"))
	assert.Equal(t, Unknown, decide([]string{"(= (f a) (f b))"}, "(= a b)"))
	assert.Equal(t, Valid, decide([]string{"(/= a b)"}, "(not (= b a))"))
	assert.Equal(t, Valid, decide([]string{"(= a 1)", "(= a 2)"}, "false"))
	assert.Equal(t, Unknown, decide([]string{"(= a 1)", "(= b 2)"}, "(= a b)"))
}

func Test_Oracle_03(t *testing.T) {
	// Quantified antecedents are not used
	assert.Equal(t, Unknown, decide([]string{"(p ?x)"}, "(p a)"))
	// Quantified goals are never decided
	assert.Equal(t, Unknown, decide([]string{"(p a)"}, "(p ?x)"))
}

func Test_Oracle_04(t *testing.T) {
	var ants []term.Term
	//
	for _, a := range []string{"(= a b)", "(= b c)"} {
		ants = append(ants, term.MustParse(a))
	}
	// Transitivity is only found once the first assignment is refuted
	assert.Equal(t, Unknown, (&CongruenceClosure{MaxModels: 1}).Decide(ants, term.MustParse("(= a c)")))
	assert.Equal(t, Valid, (&CongruenceClosure{MaxModels: 2}).Decide(ants, term.MustParse("(= a c)")))
}

func Test_Oracle_05(t *testing.T) {
	// Case splits are handled by the solver, not by expansion
	assert.Equal(t, Valid, decide([]string{"(or (= a b) (= a c))", "(p b)", "(p c)"}, "(p a)"))
	assert.Equal(t, Unknown, decide([]string{"(or (= a b) (= a c))", "(p b)"}, "(p a)"))
}
