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
	"context"

	"github.com/consensys/go-prover/pkg/vc"
	"golang.org/x/sync/errgroup"
)

// ProveAll proves a set of independent VCs, with at most parallelism searches
// running at once.  Results are returned in the order of the given VCs.  Each
// search has its own model, and only the library is shared.
func (p *Prover) ProveAll(ctx context.Context, vcs []vc.VC, parallelism uint) []*Result {
	var (
		results = make([]*Result, len(vcs))
		group   errgroup.Group
	)
	//
	if parallelism > 0 {
		group.SetLimit(int(parallelism))
	}
	//
	for i, v := range vcs {
		group.Go(func() error {
			results[i] = p.Prove(ctx, v)
			return nil
		})
	}
	// Searches never fail
	_ = group.Wait()
	//
	return results
}
