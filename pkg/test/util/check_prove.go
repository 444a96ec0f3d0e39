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
package util

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/consensys/go-prover/pkg/config"
	"github.com/consensys/go-prover/pkg/prover"
	"github.com/consensys/go-prover/pkg/prover/chooser"
	"github.com/consensys/go-prover/pkg/prover/library"
	"github.com/consensys/go-prover/pkg/util/source"
	"github.com/consensys/go-prover/pkg/vc"
)

// Choosers under which every expectation is checked.
var choosers = []string{chooser.NaiveName, chooser.GuidedName}

// Expectation records the final search state expected for a named VC.
type Expectation struct {
	VC    string
	State prover.State
}

// CheckProve checks that every VC named by the leading ";;expect" attributes of
// a given file reaches its expected state, under each available chooser.  Proofs
// found are also checked to replay against a fresh model.
func CheckProve(t *testing.T, test string) {
	var (
		filename = fmt.Sprintf("%s/prove/%s.vc", TestDir, test)
		cfg      = config.DefaultConfig()
	)
	// Enable testing each file in parallel
	t.Parallel()
	//
	srcfile := readSourceFile(t, filename)
	//
	file, errs := vc.Parse(srcfile)
	if len(errs) > 0 {
		t.Fatalf("Error %s should have parsed: %s", filename, errorToString(errs[0]))
	}
	//
	expected, attrErrs := ExtractAttributes(srcfile, extractExpectation)
	if len(attrErrs) > 0 {
		t.Fatal(errors.Join(attrErrs...))
	} else if len(expected) == 0 {
		t.Fatalf("Error %s has no expectations", filename)
	}
	//
	lib, err := library.New(file.Theorems, false)
	if err != nil {
		t.Fatal(err)
	}
	//
	for _, name := range choosers {
		ch, err := chooser.New(name, lib, chooser.GuidedConfig{
			QuantifierBudget: cfg.Chooser.QuantifierBudget,
			MaxDepth:         cfg.Search.MaxDepth,
		})
		if err != nil {
			t.Fatal(err)
		}
		//
		p := prover.NewProver(lib, ch, prover.Config{MaxDepth: cfg.Search.MaxDepth, RunID: test})
		//
		for _, e := range expected {
			checkExpectation(t, file, lib, p, name, e)
		}
	}
}

func checkExpectation(t *testing.T, file *vc.File, lib *library.Library, p *prover.Prover, strategy string,
	e Expectation) {
	v, ok := file.VC(e.VC)
	if !ok {
		t.Errorf("Error unknown vc %s", e.VC)
		return
	}
	//
	result := p.Prove(context.Background(), v)
	//
	if result.State != e.State {
		t.Errorf("Error %s (%s chooser): expected %s, got %s", result.VC, strategy, e.State, result.State)
	} else if result.State == prover.Proved {
		if _, err := prover.Replay(v, lib, result.Steps); err != nil {
			t.Errorf("Error %s (%s chooser): proof does not replay (%s)", result.VC, strategy, err)
		}
	}
}

// Extract an expectation of the form ";;expect name state" from a given line.
func extractExpectation(lineno int, lines []source.Line, _ *source.File) (bool, Expectation, error) {
	var contents = lines[lineno].String()
	//
	if !strings.HasPrefix(contents, ";;expect") {
		return false, Expectation{}, nil
	}
	//
	fields := strings.Fields(contents)
	if len(fields) != 3 {
		return true, Expectation{}, fmt.Errorf("malformed expectation \"%s\", should be e.g. \";;expect name proved\"",
			contents)
	}
	//
	state, err := prover.ParseState(fields[2])
	//
	return true, Expectation{fields[1], state}, err
}
