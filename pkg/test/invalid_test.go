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
package test

import (
	"testing"

	"github.com/consensys/go-prover/pkg/test/util"
)

// ===================================================================
// Declarations
// ===================================================================

func Test_Invalid_UnknownDeclaration(t *testing.T) {
	util.CheckInvalid(t, "unknown_declaration")
}

func Test_Invalid_UnexpectedSymbol(t *testing.T) {
	util.CheckInvalid(t, "unexpected_symbol")
}

func Test_Invalid_Unbalanced(t *testing.T) {
	util.CheckInvalid(t, "unbalanced")
}

// ===================================================================
// Functions
// ===================================================================

func Test_Invalid_InvalidArity(t *testing.T) {
	util.CheckInvalid(t, "invalid_arity")
}

func Test_Invalid_HugeArity(t *testing.T) {
	util.CheckInvalid(t, "huge_arity")
}

func Test_Invalid_BuiltinFunction(t *testing.T) {
	util.CheckInvalid(t, "builtin_function")
}

func Test_Invalid_ArityMismatch(t *testing.T) {
	util.CheckInvalid(t, "arity_mismatch")
}

// ===================================================================
// Theorems & VCs
// ===================================================================

func Test_Invalid_DuplicateTheorem(t *testing.T) {
	util.CheckInvalid(t, "duplicate_theorem")
}

func Test_Invalid_DuplicateVC(t *testing.T) {
	util.CheckInvalid(t, "duplicate_vc")
}

func Test_Invalid_MalformedVC(t *testing.T) {
	util.CheckInvalid(t, "malformed_vc")
}

func Test_Invalid_MalformedGiven(t *testing.T) {
	util.CheckInvalid(t, "malformed_given")
}

func Test_Invalid_MalformedGoal(t *testing.T) {
	util.CheckInvalid(t, "malformed_goal")
}

func Test_Invalid_MalformedDerived(t *testing.T) {
	util.CheckInvalid(t, "malformed_derived")
}

func Test_Invalid_InvalidName(t *testing.T) {
	util.CheckInvalid(t, "invalid_name")
}
