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

func Test_Prove_Trivial(t *testing.T) {
	util.CheckProve(t, "trivial")
}

func Test_Prove_ModusPonens(t *testing.T) {
	util.CheckProve(t, "modus_ponens")
}

func Test_Prove_Substitution(t *testing.T) {
	util.CheckProve(t, "substitution")
}

func Test_Prove_Card(t *testing.T) {
	util.CheckProve(t, "card")
}

func Test_Prove_Modified(t *testing.T) {
	util.CheckProve(t, "modified")
}
