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
	"errors"
	"math"
	"testing"
)

func Test_Parse_01(t *testing.T) {
	checkRoundTrip(t, "x")
}

func Test_Parse_02(t *testing.T) {
	checkRoundTrip(t, "?x")
}

func Test_Parse_03(t *testing.T) {
	checkRoundTrip(t, "(f ?x:Integer y)")
}

func Test_Parse_04(t *testing.T) {
	checkRoundTrip(t, "(implies (> (card ?S) 0) (/= ?S Empty))")
}

func Test_Parse_05(t *testing.T) {
	checkRoundTrip(t, "(= \"abc\" (?f -12 true))")
}

func Test_Parse_06(t *testing.T) {
	checkMalformed(t, "(not a b)")
}

func Test_Parse_07(t *testing.T) {
	checkMalformed(t, "(and a)")
}

func Test_Parse_08(t *testing.T) {
	checkMalformed(t, "(and 1 a)")
}

func Test_Parse_09(t *testing.T) {
	sig := NewSignature()
	//
	if err := sig.Declare("card", 1); err != nil {
		t.Fatal(err)
	}
	//
	if _, err := Parse(sig, "(card S T)"); err == nil {
		t.Errorf("expected arity mismatch")
	}
	//
	if _, err := Parse(sig, "(card S)"); err != nil {
		t.Error(err)
	}
}

func Test_Parse_10(t *testing.T) {
	for _, input := range []string{"()", "((f x) y)", "(f", ")", ""} {
		if _, err := Parse(nil, input); err == nil {
			t.Errorf("expected syntax error for %q", input)
		}
	}
}

func Test_Signature_01(t *testing.T) {
	var (
		sig *Signature
		err error
	)
	//
	_, err = sig.NewApply("f", false, "")
	//
	var malformed *MalformedTermError
	if !errors.As(err, &malformed) {
		t.Errorf("expected malformed term error, got %v", err)
	}
}

func Test_Signature_02(t *testing.T) {
	sig := NewSignature()
	//
	if err := sig.Declare("and", 3); err == nil {
		t.Errorf("expected redeclaration error")
	}
	//
	if err := sig.Declare("f", 2); err != nil {
		t.Error(err)
	} else if err := sig.Declare("f", 3); err == nil {
		t.Errorf("expected conflicting declaration error")
	}
}

func Test_Signature_03(t *testing.T) {
	sig := NewSignature()
	// Arities beyond the range of int are rejected rather than wrapped
	var malformed *MalformedTermError
	if err := sig.Declare("f", uint(math.MaxInt)+1); !errors.As(err, &malformed) {
		t.Errorf("expected malformed term error, got %v", err)
	}
	//
	if _, ok := sig.ArityOf("f"); ok {
		t.Errorf("unexpected declaration of f")
	}
}

// ============================================================================
// Structure
// ============================================================================

func Test_Cmp_01(t *testing.T) {
	checkOrdered(t, "1", "2", "false", "\"a\"", "x", "?x", "(f x)")
}

func Test_Cmp_02(t *testing.T) {
	if Equal(MustParse("x:A"), MustParse("x:B")) {
		t.Errorf("terms of different type should differ")
	}
	//
	if !Equal(MustParse("(f (g x) 1)"), MustParse("(f (g x) 1)")) {
		t.Errorf("identical terms should be equal")
	}
}

func Test_Hash_01(t *testing.T) {
	if Hash(MustParse("(f (g x) 1)")) != Hash(MustParse("(f (g x) 1)")) {
		t.Errorf("equal terms should have equal hashes")
	}
}

func Test_Path_01(t *testing.T) {
	var (
		root = MustParse("(f (g x) (h y z))")
		sub  Term
		ok   bool
	)
	//
	if sub, ok = At(root, Path{1, 1}); !ok || !Equal(sub, MustParse("z")) {
		t.Errorf("unexpected subterm %v", sub)
	}
	//
	if _, ok = At(root, Path{0, 1}); ok {
		t.Errorf("expected missing subterm")
	}
	//
	replaced := Replace(root, Path{1, 1}, MustParse("(k 1)"))
	//
	checkEqual(t, replaced, MustParse("(f (g x) (h y (k 1)))"))
	checkEqual(t, root, MustParse("(f (g x) (h y z))"))
}

func Test_Path_02(t *testing.T) {
	var (
		p = Path{1, 0}
		q = p.Extend(2)
	)
	//
	if !q.HasPrefix(p) || p.HasPrefix(q) || !p.Overlaps(q) {
		t.Errorf("unexpected prefix relationship between %s and %s", p, q)
	}
	//
	if (Path{0}).Overlaps(Path{1}) {
		t.Errorf("disjoint paths should not overlap")
	}
}

func Test_Query_01(t *testing.T) {
	var (
		tm         = MustParse("(f ?x (?g y 1) (h ?x z))")
		free       = FreeVariables(tm)
		quantified = QuantifiedVariables(tm)
		names      = SymbolNames(tm)
	)
	//
	checkStrings(t, free.ToArray(), "y", "z")
	checkStrings(t, quantified.ToArray(), "g", "x")
	checkStrings(t, names.ToArray(), "f", "h", "y", "z")
	//
	if n := FunctionApplicationCount(tm); n != 3 {
		t.Errorf("expected 3 function applications, got %d", n)
	}
}

// ============================================================================
// Substitution
// ============================================================================

func Test_Substitute_01(t *testing.T) {
	// Substituting nothing changes nothing
	for _, input := range []string{"x", "?x", "(f ?x (g ?y))", "3"} {
		tm := MustParse(input)
		checkEqual(t, Substitute(tm, Bindings{}), tm)
	}
}

func Test_Substitute_02(t *testing.T) {
	var (
		tm = MustParse("(f ?x (g ?y) ?x)")
		b  = Bindings{"x": MustParse("(h a)"), "z": MustParse("b")}
	)
	//
	checkEqual(t, Substitute(tm, b), MustParse("(f (h a) (g ?y) (h a))"))
}

func Test_Substitute_03(t *testing.T) {
	var (
		tm = MustParse("(?f a)")
		b  = Bindings{"f": MustParse("card")}
	)
	//
	checkEqual(t, Substitute(tm, b), MustParse("(card a)"))
}

func Test_Substitute_04(t *testing.T) {
	var (
		tm = MustParse("(f ?x ?y ?z)")
		b1 = Bindings{"x": MustParse("(g ?y)")}
		b2 = Bindings{"y": MustParse("a"), "z": MustParse("(h ?w)")}
	)
	//
	lhs := Substitute(Substitute(tm, b1), b2)
	rhs := Substitute(tm, Compose(b1, b2))
	//
	checkEqual(t, lhs, rhs)
	checkEqual(t, lhs, MustParse("(f (g a) a (h ?w))"))
}

func Test_Rename_01(t *testing.T) {
	var (
		tm      = MustParse("(?f ?x y)")
		renamed = RenameQuantified(tm, func(s string) string { return s + "'" })
	)
	//
	checkEqual(t, renamed, MustParse("(?f' ?x' y)"))
}

// ============================================================================
// Logic
// ============================================================================

func Test_Logic_01(t *testing.T) {
	conjuncts := SplitConjuncts(MustParse("(and a (and b c) d)"))
	//
	checkTerms(t, conjuncts, "a", "b", "c", "d")
	checkTerms(t, SplitConjuncts(MustParse("a")), "a")
}

func Test_Logic_02(t *testing.T) {
	antecedents, consequent, ok := SplitImplication(MustParse("(implies (and a b) (implies c d))"))
	//
	if !ok {
		t.Fatalf("expected implication")
	}
	//
	checkTerms(t, antecedents, "a", "b", "c")
	checkEqual(t, consequent, MustParse("d"))
}

func Test_Logic_03(t *testing.T) {
	checkEqual(t, Conjoin(), True)
	checkEqual(t, Conjoin(MustParse("a")), MustParse("a"))
	checkEqual(t, Conjoin(MustParse("a"), MustParse("b")), MustParse("(and a b)"))
}

func Test_Format_01(t *testing.T) {
	var (
		tm       = MustParse("(implies (and (p x) (q y)) (r z))")
		expected = "(implies\n  (and (p x) (q y))\n  (r z))"
	)
	//
	if actual := Format(tm, 80); actual != tm.String() {
		t.Errorf("expected %s, got %s", tm.String(), actual)
	}
	//
	if actual := Format(tm, 20); actual != expected {
		t.Errorf("expected %q, got %q", expected, actual)
	}
}

// ============================================================================
// Helpers
// ============================================================================

func checkRoundTrip(t *testing.T, input string) {
	tm, err := Parse(nil, input)
	//
	if err != nil {
		t.Fatal(err)
	} else if tm.String() != input {
		t.Errorf("expected %s, got %s", input, tm.String())
	}
}

func checkMalformed(t *testing.T, input string) {
	if _, err := Parse(nil, input); err == nil {
		t.Errorf("expected %s to be malformed", input)
	}
}

func checkOrdered(t *testing.T, inputs ...string) {
	for i := 1; i < len(inputs); i++ {
		lhs, rhs := MustParse(inputs[i-1]), MustParse(inputs[i])
		//
		if lhs.Cmp(rhs) >= 0 || rhs.Cmp(lhs) <= 0 {
			t.Errorf("expected %s < %s", lhs, rhs)
		}
	}
}

func checkEqual(t *testing.T, actual Term, expected Term) {
	t.Helper()
	//
	if !Equal(actual, expected) {
		t.Errorf("expected %s, got %s", expected, actual)
	}
}

func checkTerms(t *testing.T, actual []Term, expected ...string) {
	t.Helper()
	//
	if len(actual) != len(expected) {
		t.Fatalf("expected %d terms, got %d", len(expected), len(actual))
	}
	//
	for i := range actual {
		checkEqual(t, actual[i], MustParse(expected[i]))
	}
}

func checkStrings(t *testing.T, actual []string, expected ...string) {
	t.Helper()
	//
	if len(actual) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, actual)
	}
	//
	for i := range actual {
		if actual[i] != expected[i] {
			t.Errorf("expected %v, got %v", expected, actual)
		}
	}
}
