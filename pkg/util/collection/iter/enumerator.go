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

// Predicate abstracts the notion of a function which identifies something.
type Predicate[T any] func(T) bool

// Enumerator is a lazy, single pass sequence of items.  Items are produced on
// demand, hence an enumerator can be abandoned at any point without paying for
// the items which were never visited.  Enumerators are not restartable; a
// fresh sequence is obtained by constructing a fresh enumerator.
type Enumerator[T any] interface {
	// Check whether or not there are any items remaining to visit.
	HasNext() bool

	// Get the next item, and advanced the iterator.
	Next() T
}

// Source constructs a fresh enumerator on each call.  This is how restartable
// sequences are represented: re-querying a source against unchanged state
// yields the same sequence from the start.
type Source[T any] func() Enumerator[T]

// Find returns the index of the first match for a given predicate, or return
// false if no match is found.  This drains the enumerator up to (and
// including) the match.
func Find[T any](iter Enumerator[T], predicate Predicate[T]) (uint, bool) {
	index := uint(0)

	for iter.HasNext() {
		if predicate(iter.Next()) {
			return index, true
		}

		index++
	}
	// Failed to find it
	return 0, false
}

// Nth returns the nth item of an enumerator, or panics if there are
// insufficient items.
func Nth[T any](iter Enumerator[T], n uint) T {
	index := uint(0)

	for iter.HasNext() {
		ith := iter.Next()
		if index == n {
			return ith
		}

		index++
	}
	// Issue!
	panic("iterator out-of-bounds")
}

// Count the number of items remaining.  This drains the enumerator.
func Count[T any](iter Enumerator[T]) uint {
	count := uint(0)

	for iter.HasNext() {
		iter.Next()
		//
		count++
	}

	return count
}

// Collect allocates a new array containing all items of this enumerator. This
// drains the enumerator.
func Collect[T any](iter Enumerator[T]) []T {
	var items []T = make([]T, 0)
	//
	for iter.HasNext() {
		items = append(items, iter.Next())
	}
	//
	return items
}

// Take returns at most n items from the enumerator, leaving any remainder
// unvisited.
func Take[T any](iter Enumerator[T], n uint) []T {
	var items []T
	//
	for i := uint(0); i < n && iter.HasNext(); i++ {
		items = append(items, iter.Next())
	}
	//
	return items
}
