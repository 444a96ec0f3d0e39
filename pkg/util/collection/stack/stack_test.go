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

import (
	"slices"
	"testing"
)

func Test_Stack_01(t *testing.T) {
	var s Stack[uint]
	//
	if !s.IsEmpty() {
		t.Fatal("zero stack should be empty")
	}
	//
	s.Push(1)
	s.Push(2)
	//
	if s.Len() != 2 || s.Peek(0) != 2 || s.Peek(1) != 1 {
		t.Fatalf("unexpected stack %v", s.Items())
	}
	//
	if s.Pop() != 2 || s.Pop() != 1 || !s.IsEmpty() {
		t.Fatal("unexpected pop order")
	}
}

func Test_Stack_02(t *testing.T) {
	s := NewStack[uint]()
	s.PushReversed([]uint{1, 2, 3})
	//
	if items := s.Items(); !slices.Equal(items, []uint{3, 2, 1}) {
		t.Fatalf("unexpected items %v", items)
	}
	//
	if s.Pop() != 1 {
		t.Fatal("first item should be popped first")
	}
}

func Test_Stack_03(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	//
	NewStack[uint]().Pop()
}
