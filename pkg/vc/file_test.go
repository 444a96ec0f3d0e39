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
	"testing"

	"github.com/consensys/go-prover/pkg/term"
	"github.com/consensys/go-prover/pkg/util/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, text string) *File {
	t.Helper()
	//
	file, errs := Parse(source.NewSourceFile("test.vc", []byte(text)))
	require.Empty(t, errs)
	//
	return file
}

func parseErrors(t *testing.T, text string) []string {
	t.Helper()
	//
	var msgs []string
	//
	_, errs := Parse(source.NewSourceFile("test.vc", []byte(text)))
	for _, err := range errs {
		msgs = append(msgs, err.Message())
	}
	//
	return msgs
}

func Test_File_01(t *testing.T) {
	file := parse(t, `
; cardinality
(function card 1)
(theorem positive_nonempty (implies (> (card ?S) 0) (/= ?S Empty)))
(vc vc_1 (given (> (card T) 0)) (goal (> (card (o S T)) (card S))))
`)
	//
	require.Len(t, file.Theorems, 1)
	require.Len(t, file.VCs, 1)
	assert.Equal(t, "positive_nonempty", file.Theorems[0].Name)
	assert.Equal(t, "(implies (> (card ?S) 0) (/= ?S Empty))", file.Theorems[0].Term.String())
	//
	vc := file.VCs[0]
	assert.Equal(t, "vc_1", vc.DisplayName())
	assert.False(t, vc.Modified)
	require.Len(t, vc.Antecedents, 1)
	assert.Equal(t, "(> (card T) 0)", vc.Antecedents[0].Term.String())
	assert.Equal(t, "(> (card (o S T)) (card S))", vc.Consequent.String())
	//
	arity, declared := file.Signature.ArityOf("card")
	assert.True(t, declared)
	assert.Equal(t, term.Arity{Min: 1, Max: 1}, arity)
}

func Test_File_02(t *testing.T) {
	file := parse(t, `(vc vc_2 (given A (derived C)) (goal (implies (and P Q) B)))`)
	//
	vc, ok := file.VC("vc_2")
	require.True(t, ok)
	assert.True(t, vc.Modified)
	assert.Equal(t, "vc_2 (modified)", vc.DisplayName())
	assert.Equal(t, "B", vc.Consequent.String())
	//
	var derived []bool
	//
	for _, a := range vc.Antecedents {
		derived = append(derived, a.Derived)
	}
	//
	assert.Equal(t, []string{"A", "C", "P", "Q"}, termStrings(vc.Terms()))
	assert.Equal(t, []bool{false, true, true, true}, derived)
	assert.Equal(t, "vc_2 (modified): A, *C, *P, *Q ⊢ B", vc.String())
}

func Test_File_03(t *testing.T) {
	// Function declarations apply before their first use
	file := parse(t, `
(vc v (given) (goal (f a b)))
(function f 2)`)
	//
	assert.Empty(t, file.VCs[0].Antecedents)
	//
	msgs := parseErrors(t, `
(function f 2)
(vc v (given) (goal (f a)))`)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "expected 2 arguments")
}

func Test_File_04(t *testing.T) {
	assert.Equal(t, []string{"duplicate theorem t"}, parseErrors(t, "(theorem t A) (theorem t B)"))
	assert.Equal(t, []string{"duplicate vc v"}, parseErrors(t, "(vc v (given) (goal A)) (vc v (given) (goal B))"))
	assert.Equal(t, []string{"unknown declaration"}, parseErrors(t, "(lemma t A)"))
	assert.Equal(t, []string{"unexpected symbol"}, parseErrors(t, "t"))
	assert.Equal(t, []string{"invalid arity"}, parseErrors(t, "(function f x)"))
	assert.Equal(t, []string{"expected (goal term)"}, parseErrors(t, "(vc v (given) (goal))"))
	assert.Equal(t, []string{"expected (theorem name term)"}, parseErrors(t, "(theorem t)"))
}

func Test_File_05(t *testing.T) {
	// Multiple files share a signature
	file, errs := Parse(
		source.NewSourceFile("a.vc", []byte("(function g 1) (theorem gg (= (g ?x) ?x))")),
		source.NewSourceFile("b.vc", []byte("(vc v (given (= a (g b))) (goal (= a b)))")))
	//
	require.Empty(t, errs)
	assert.Len(t, file.Theorems, 1)
	assert.Len(t, file.VCs, 1)
	//
	_, errs = Parse(source.NewSourceFile("c.vc", []byte("(vc v (given) (goal (g a b)))")),
		source.NewSourceFile("d.vc", []byte("(function g 1)")))
	require.Len(t, errs, 1)
	assert.Equal(t, "c.vc", errs[0].SourceFile().Filename())
}

func termStrings(terms []term.Term) []string {
	var strs []string
	//
	for _, t := range terms {
		strs = append(strs, t.String())
	}
	//
	return strs
}
