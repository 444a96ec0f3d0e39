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
	"math/rand/v2"
	"slices"
	"testing"
)

func Test_SortedSet_00(t *testing.T) {
	check_SortedSet_Insert(t, 5, 10)
	check_SortedSet_InsertSorted(t, 5, 10)
}

func Test_SortedSet_01(t *testing.T) {
	for i := 0; i < 1000; i++ {
		check_SortedSet_Insert(t, 10, 32)
		check_SortedSet_InsertSorted(t, 10, 32)
	}
}

func Test_SortedSet_02(t *testing.T) {
	lhs := NewSortedSet("a", "c", "e")
	rhs := NewSortedSet("b", "d")
	//
	if lhs.Intersects(rhs) {
		t.Fatal("sets should be disjoint")
	}
	//
	rhs.Insert("c")
	//
	if !lhs.Intersects(rhs) {
		t.Fatal("sets should intersect")
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_SortedSet_Insert(t *testing.T, n uint, m uint) {
	var (
		items  = randomItems(n, m)
		actual SortedSet[uint]
	)
	//
	for _, item := range items {
		actual.Insert(item)
	}
	//
	check_SortedSet(t, actual, items)
}

func check_SortedSet_InsertSorted(t *testing.T, n uint, m uint) {
	var (
		lhs = randomItems(n, m)
		rhs = randomItems(n, m)
		set = NewSortedSet(lhs...)
	)
	//
	set.InsertSorted(NewSortedSet(rhs...))
	//
	check_SortedSet(t, *set, append(lhs, rhs...))
}

func check_SortedSet(t *testing.T, actual SortedSet[uint], items []uint) {
	expected := slices.Clone(items)
	slices.Sort(expected)
	expected = slices.Compact(expected)
	//
	if !slices.Equal(actual, expected) {
		t.Errorf("expected %v, got %v", expected, actual)
	}
	//
	for _, item := range items {
		if !actual.Contains(item) {
			t.Errorf("missing item %d", item)
		}
	}
}

func randomItems(n uint, m uint) []uint {
	items := make([]uint, n)
	//
	for i := range items {
		items[i] = rand.UintN(m)
	}
	//
	return items
}
