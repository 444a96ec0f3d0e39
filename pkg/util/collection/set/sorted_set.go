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
package set

import (
	"cmp"
	"slices"
	"sort"

	"github.com/consensys/go-prover/pkg/util/collection/iter"
)

// SortedSet is an array of unique sorted values (i.e. no duplicates).  The
// zero value is an empty set.
type SortedSet[T cmp.Ordered] []T

// NewSortedSet returns a sorted set holding the given items.  The given array
// is not mutated.
func NewSortedSet[T cmp.Ordered](items ...T) *SortedSet[T] {
	var nitems SortedSet[T] = slices.Clone(items)
	//
	slices.Sort(nitems)
	nitems = slices.Compact(nitems)
	//
	return &nitems
}

// Len returns the number of elements in this set.
func (p *SortedSet[T]) Len() uint {
	return uint(len(*p))
}

// ToArray extracts the underlying array from this sorted set.
func (p *SortedSet[T]) ToArray() []T {
	return *p
}

// Contains returns true if a given element is in the set.
func (p *SortedSet[T]) Contains(element T) bool {
	data := *p
	// Find index where element either does occur, or should occur.
	i := sort.Search(len(data), func(i int) bool {
		return element <= data[i]
	})
	// Check whether item existed or not.
	return i < len(data) && data[i] == element
}

// Insert an element into this sorted set.
func (p *SortedSet[T]) Insert(element T) {
	data := *p
	// Find index where element either does occur, or should occur.
	i := sort.Search(len(data), func(i int) bool {
		return element <= data[i]
	})
	// Check whether item existed or not.
	if i >= len(data) || data[i] != element {
		*p = slices.Insert(data, i, element)
	}
}

// InsertSorted inserts all elements in a given sorted set into this set.
func (p *SortedSet[T]) InsertSorted(q *SortedSet[T]) {
	left := *p
	right := *q
	// Check containment
	n := countDuplicates(left, right)
	// Check for total inclusion
	if n == len(right) {
		return
	}
	// Allocate space
	ndata := make([]T, len(left)+len(right)-n)
	// Merge
	mergeSorted(ndata, left, right)
	// Finally copy over new data
	*p = ndata
}

// Intersects checks whether this set has at least one element in common with
// another set.
func (p *SortedSet[T]) Intersects(q *SortedSet[T]) bool {
	return countDuplicates(*p, *q) > 0
}

// Iter returns an enumerator over the elements of this sorted set.
func (p *SortedSet[T]) Iter() iter.Enumerator[T] {
	return iter.NewArrayEnumerator(*p)
}

// Determine number of duplicate elements
func countDuplicates[T cmp.Ordered](left []T, right []T) int {
	i := 0
	j := 0
	n := 0

	for i < len(left) && j < len(right) {
		if left[i] < right[j] {
			i++
		} else if left[i] > right[j] {
			j++
		} else {
			i++
			j++
			n++ // duplicate detected
		}
	}

	return n
}

// Merge two sets of sorted arrays (left and right) into a target array.  This
// assumes the target array is big enough.
func mergeSorted[T cmp.Ordered](target []T, left []T, right []T) {
	i := 0
	j := 0
	k := 0
	// Merge overlap of both sets
	for ; i < len(left) && j < len(right); k++ {
		if left[i] < right[j] {
			target[k] = left[i]
			i++
		} else if left[i] > right[j] {
			target[k] = right[j]
			j++
		} else {
			target[k] = left[i]
			i++
			j++
		}
	}
	// Handle anything left
	if i < len(left) {
		copy(target[k:], left[i:])
	} else if j < len(right) {
		copy(target[k:], right[j:])
	}
}
