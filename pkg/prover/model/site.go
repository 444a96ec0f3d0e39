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
package model

import (
	"fmt"

	"github.com/consensys/go-prover/pkg/term"
	"github.com/consensys/go-prover/pkg/util/collection/iter"
	"github.com/consensys/go-prover/pkg/util/collection/stack"
)

// Site identifies a subterm within a conjunct of a proof model.  A site is only
// valid for as long as the subterm it identifies is unchanged.
type Site struct {
	Conjunct Conjunct
	Path     term.Path
	// Term is the subterm at this site, at the time the site was produced.
	Term term.Term
}

// RootSite returns the site of the entire term of a given conjunct.
func RootSite(c Conjunct) Site {
	return Site{c, nil, c.Term()}
}

// IsRoot checks whether this site identifies an entire conjunct.
func (p Site) IsRoot() bool {
	return len(p.Path) == 0
}

// Child returns the site of the ith argument of this site's term.
func (p Site) Child(i uint) Site {
	return Site{p.Conjunct, p.Path.Extend(i), term.Children(p.Term)[i]}
}

// Overlaps checks whether two sites share (part of) a subterm.
func (p Site) Overlaps(o Site) bool {
	return p.Conjunct == o.Conjunct && p.Path.Overlaps(o.Path)
}

// Valid checks whether this site still identifies the same subterm.
func (p Site) Valid() bool {
	t, ok := term.At(p.Conjunct.Term(), p.Path)
	return ok && term.Equal(t, p.Term)
}

func (p Site) String() string {
	return fmt.Sprintf("%d%s", p.Conjunct.ID(), p.Path)
}

// Sites returns a lazy pre-order enumeration of every site within a given
// conjunct.
func Sites(c Conjunct) iter.Enumerator[Site] {
	return newSiteEnumerator(RootSite(c), true)
}

// SubSites returns a lazy pre-order enumeration of every site strictly within
// a given site (i.e. excluding the site itself).
func SubSites(site Site) iter.Enumerator[Site] {
	return newSiteEnumerator(site, false)
}

type siteEnumerator struct {
	worklist stack.Stack[Site]
}

func newSiteEnumerator(root Site, inclusive bool) iter.Enumerator[Site] {
	var enumerator siteEnumerator
	//
	if inclusive {
		enumerator.worklist.Push(root)
	} else {
		enumerator.pushChildren(root)
	}
	//
	return &enumerator
}

// HasNext implementation for Enumerator interface.
func (p *siteEnumerator) HasNext() bool {
	return !p.worklist.IsEmpty()
}

// Next implementation for Enumerator interface.
func (p *siteEnumerator) Next() Site {
	next := p.worklist.Pop()
	//
	p.pushChildren(next)
	//
	return next
}

func (p *siteEnumerator) pushChildren(site Site) {
	var (
		n        = len(term.Children(site.Term))
		children = make([]Site, n)
	)
	//
	for i := range n {
		children[i] = site.Child(uint(i))
	}
	// Reversed so that the first child is visited first.
	p.worklist.PushReversed(children)
}
