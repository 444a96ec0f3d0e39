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
package iter

type flattenEnumerator[S, T any] struct {
	iter Enumerator[S]
	curr Enumerator[T]
	fn   func(S) Enumerator[T]
}

// NewFlattenEnumerator adapts a sequence of items S which themselves can be
// enumerated as items T, into a flat sequence of items T.  Each inner sequence
// is only constructed once the previous one is exhausted.
func NewFlattenEnumerator[S, T any](iter Enumerator[S], fn func(S) Enumerator[T]) Enumerator[T] {
	return &flattenEnumerator[S, T]{iter, nil, fn}
}

func (p *flattenEnumerator[S, T]) HasNext() bool {
	if p.curr != nil && p.curr.HasNext() {
		return true
	}
	// Find next hit
	for p.iter.HasNext() {
		p.curr = p.fn(p.iter.Next())
		if p.curr.HasNext() {
			return true
		}
	}
	// Failed
	return false
}

func (p *flattenEnumerator[S, T]) Next() T {
	if !p.HasNext() {
		panic("iterator out-of-bounds")
	}
	//
	return p.curr.Next()
}
