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

type projectEnumerator[S, T any] struct {
	iter       Enumerator[S]
	projection func(S) T
}

// NewProjectEnumerator construct an enumerator that is the projection of
// another.  The projection is applied lazily, one item at a time.
func NewProjectEnumerator[S, T any](iter Enumerator[S], projection func(S) T) Enumerator[T] {
	return &projectEnumerator[S, T]{iter, projection}
}

func (p *projectEnumerator[S, T]) HasNext() bool {
	return p.iter.HasNext()
}

func (p *projectEnumerator[S, T]) Next() T {
	return p.projection(p.iter.Next())
}

// ============================================================================
// Filter
// ============================================================================

type filterEnumerator[T any] struct {
	iter      Enumerator[T]
	predicate Predicate[T]
	next      T
	ready     bool
}

// NewFilterEnumerator constructs an enumerator over those items of another
// enumerator which satisfy a given predicate.
func NewFilterEnumerator[T any](iter Enumerator[T], predicate Predicate[T]) Enumerator[T] {
	return &filterEnumerator[T]{iter: iter, predicate: predicate}
}

func (p *filterEnumerator[T]) HasNext() bool {
	for !p.ready && p.iter.HasNext() {
		item := p.iter.Next()
		//
		if p.predicate(item) {
			p.next = item
			p.ready = true
		}
	}
	//
	return p.ready
}

func (p *filterEnumerator[T]) Next() T {
	var empty T
	//
	if !p.HasNext() {
		panic("iterator out-of-bounds")
	}
	//
	item := p.next
	p.next = empty
	p.ready = false
	//
	return item
}
