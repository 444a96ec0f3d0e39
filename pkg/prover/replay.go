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
	"fmt"
	"slices"

	"github.com/consensys/go-prover/pkg/prover/library"
	"github.com/consensys/go-prover/pkg/prover/model"
	"github.com/consensys/go-prover/pkg/prover/transform"
	"github.com/consensys/go-prover/pkg/vc"
)

// Replay re-applies the steps of a proof to a fresh model of a given VC,
// returning the reproduced model.  Each step is matched by transformation key
// and application against the applications available at that point.  Since
// conjunct identities are deterministic, a proof found against the same VC and
// library always replays.
func Replay(v vc.VC, lib *library.Library, steps []*model.ProofStep) (*model.ProofModel, error) {
	m := Load(v, lib)
	//
	for i, step := range steps {
		app, ok := findApplication(m, lib, step.Application)
		if !ok {
			return m, fmt.Errorf("step %d (%s) cannot be replayed", i+1, step.Application)
		}
		//
		app.Apply(m)
	}
	//
	return m, nil
}

func findApplication(m *model.ProofModel, lib *library.Library, target model.Application) (transform.Application, bool) {
	var (
		key       = target.Transformation()
		signature = applicationSignature(target)
		ts        = slices.Concat(lib.Transformations(), library.LocalTransformations(m))
	)
	//
	for _, t := range ts {
		if t.Key() != key {
			continue
		}
		//
		for apps := t.Applications(m); apps.HasNext(); {
			if app := apps.Next(); applicationSignature(app) == signature {
				return app, true
			}
		}
	}
	//
	return nil, false
}

// Identify an application by its description and prerequisites.
func applicationSignature(app model.Application) string {
	return fmt.Sprintf("%s %v %v", app, conjunctNames(app.Prerequisites()), app.Involved())
}
