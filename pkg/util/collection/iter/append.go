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

type appendEnumerator[T any] struct {
	left  Enumerator[T]
	right Enumerator[T]
}

// NewAppendEnumerator construct an enumerator which visits all items of the
// left enumerator, and then all items of the right.
func NewAppendEnumerator[T any](left Enumerator[T], right Enumerator[T]) Enumerator[T] {
	return &appendEnumerator[T]{left, right}
}

// Concat chains zero or more enumerators together, visiting them in order.
func Concat[T any](iters ...Enumerator[T]) Enumerator[T] {
	return NewFlattenEnumerator(NewArrayEnumerator(iters), func(e Enumerator[T]) Enumerator[T] {
		return e
	})
}

func (p *appendEnumerator[T]) HasNext() bool {
	return p.left.HasNext() || p.right.HasNext()
}

func (p *appendEnumerator[T]) Next() T {
	if p.left.HasNext() {
		return p.left.Next()
	}

	return p.right.Next()
}
