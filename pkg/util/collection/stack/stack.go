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
package stack

import "slices"

// Stack represents a reusable LIFO stack which is implemented using an array.
// The zero value is an empty stack ready for use.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty stack
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// IsEmpty checks whether or not there are still items on the stack
func (p *Stack[T]) IsEmpty() bool {
	return p.Len() == 0
}

// Len returns the number of items on the stack.
func (p *Stack[T]) Len() uint {
	return uint(len(p.items))
}

// Peek at nth item from top of stack.
func (p *Stack[T]) Peek(offset uint) T {
	var n = len(p.items) - int(offset) - 1
	//
	if n < 0 {
		panic("peek out-of-bounds")
	}
	// Get last item
	return p.items[n]
}

// Push a new item onto the stack
func (p *Stack[T]) Push(item T) {
	p.items = append(p.items, item)
}

// PushReversed pushes zero or more items in reverse order onto the stack.
// Hence, the first item given is the first to be popped.
func (p *Stack[T]) PushReversed(items []T) {
	for i := len(items) - 1; i >= 0; i-- {
		p.items = append(p.items, items[i])
	}
}

// Pop the last item off the stack
func (p *Stack[T]) Pop() T {
	var (
		n     = len(p.items)
		empty T
	)
	//
	if n == 0 {
		panic("cannot pop from empty stack")
	}
	// Get last item
	item := p.items[n-1]
	// Clear slot so popped items can be collected
	p.items[n-1] = empty
	p.items = p.items[:n-1]
	// Done
	return item
}

// Items returns a copy of the stack contents, ordered from bottom to top.
func (p *Stack[T]) Items() []T {
	return slices.Clone(p.items)
}
