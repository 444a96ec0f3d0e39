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

type unitEnumerator[T any] struct {
	item  T
	index uint
}

// NewUnitEnumerator construct an enumerator over exactly one item.
func NewUnitEnumerator[T any](item T) Enumerator[T] {
	return &unitEnumerator[T]{item, 0}
}

func (p *unitEnumerator[T]) HasNext() bool {
	return p.index < 1
}

func (p *unitEnumerator[T]) Next() T {
	p.index++
	return p.item
}
