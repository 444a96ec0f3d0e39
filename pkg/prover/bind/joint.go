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
package bind

import (
	"github.com/consensys/go-prover/pkg/prover/model"
	"github.com/consensys/go-prover/pkg/term"
	"github.com/consensys/go-prover/pkg/util/collection/iter"
)

// Result is a successful joint match of one or more binders.
type Result struct {
	// Sites holds the site bound by each binder, in binder order.
	Sites []model.Site
	// Bindings holds the combined bindings of every binder.
	Bindings term.Bindings
}

// Bind lazily enumerates every way in which all of the given binders can match
// simultaneously, with bindings consistent across them.  Quantified symbols of
// global instances are unified, and the bindings of each result are resolved.  No two binders bind
// overlapping sites.  Results are produced in a deterministic order: earlier
// binders vary slowest.  Re-querying an unchanged model yields the same
// sequence.
func Bind(m *model.ProofModel, binders ...Binder) iter.Enumerator[Result] {
	return newJointEnumerator(m, binders, false)
}

// AtLeastOneLocal is like Bind, but additionally requires that at least one
// binder binds a site within a local theorem.  Results in which every site lies
// within a global theorem (or the consequent) are discarded.
func AtLeastOneLocal(m *model.ProofModel, binders ...Binder) iter.Enumerator[Result] {
	return newJointEnumerator(m, binders, true)
}

// frame records the state of a single binder within a joint attempt.
type frame struct {
	candidates iter.Enumerator[model.Site]
	// Bindings prior to this binder
	bindings term.Bindings
	// Site most recently bound by this binder
	site model.Site
	// Bindings after this binder
	result term.Bindings
}

type jointEnumerator struct {
	model        *model.ProofModel
	binders      []Binder
	requireLocal bool
	frames       []frame
	// Next result to be returned (if any)
	next *Result
	// Indicates the enumeration has been initialised
	started bool
}

func newJointEnumerator(m *model.ProofModel, binders []Binder, requireLocal bool) *jointEnumerator {
	return &jointEnumerator{model: m, binders: binders, requireLocal: requireLocal}
}

// HasNext implementation for Enumerator interface.
func (p *jointEnumerator) HasNext() bool {
	if p.next == nil {
		p.advance()
	}
	//
	return p.next != nil
}

// Next implementation for Enumerator interface.
func (p *jointEnumerator) Next() Result {
	if !p.HasNext() {
		panic("no more bindings")
	}
	//
	next := *p.next
	p.next = nil
	//
	return next
}

func (p *jointEnumerator) advance() {
	if !p.started {
		p.started = true
		//
		if len(p.binders) == 0 {
			if !p.requireLocal {
				p.next = &Result{nil, term.Bindings{}}
			}
			//
			return
		}
		//
		p.push(term.Bindings{})
	}
	//
	for len(p.frames) > 0 {
		var (
			n   = len(p.frames)
			top = &p.frames[n-1]
		)
		//
		if !top.candidates.HasNext() {
			p.frames = p.frames[:n-1]
			continue
		}
		//
		site := top.candidates.Next()
		//
		if p.overlaps(site, n-1) {
			continue
		}
		//
		bindings, err := Unify(p.binders[n-1].Pattern(), site.Term, top.bindings)
		if err != nil {
			continue
		}
		//
		top.site = site
		top.result = bindings
		//
		if n < len(p.binders) {
			p.push(bindings)
		} else if !p.requireLocal || p.hasLocal() {
			p.next = p.result()
			return
		}
	}
}

func (p *jointEnumerator) push(bindings term.Bindings) {
	var index = uint(len(p.frames))
	//
	p.model.RecordBinderQuery()
	//
	candidates := p.binders[index].Candidates(p.model, index)
	p.frames = append(p.frames, frame{candidates: candidates, bindings: bindings})
}

// Check whether a given site overlaps with the sites bound by the first n
// frames.
func (p *jointEnumerator) overlaps(site model.Site, n int) bool {
	for _, f := range p.frames[:n] {
		if f.site.Overlaps(site) {
			return true
		}
	}
	//
	return false
}

func (p *jointEnumerator) hasLocal() bool {
	for _, f := range p.frames {
		if _, ok := f.site.Conjunct.(*model.LocalTheorem); ok {
			return true
		}
	}
	//
	return false
}

func (p *jointEnumerator) result() *Result {
	var sites = make([]model.Site, len(p.frames))
	//
	for i, f := range p.frames {
		sites[i] = f.site
	}
	//
	return &Result{sites, Resolve(p.frames[len(p.frames)-1].result)}
}
