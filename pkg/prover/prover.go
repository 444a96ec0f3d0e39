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
package prover

import (
	"context"
	"errors"
	"time"

	"github.com/consensys/go-prover/pkg/metrics"
	"github.com/consensys/go-prover/pkg/prover/chooser"
	"github.com/consensys/go-prover/pkg/prover/library"
	"github.com/consensys/go-prover/pkg/prover/model"
	"github.com/consensys/go-prover/pkg/prover/oracle"
	"github.com/consensys/go-prover/pkg/prover/proofdata"
	"github.com/consensys/go-prover/pkg/prover/transform"
	"github.com/consensys/go-prover/pkg/term"
	"github.com/consensys/go-prover/pkg/util/collection/iter"
	"github.com/consensys/go-prover/pkg/util/collection/stack"
	"github.com/consensys/go-prover/pkg/vc"
	log "github.com/sirupsen/logrus"
)

// State of a proof search.
type State uint8

const (
	// Searching indicates the search has not yet terminated.
	Searching State = iota
	// Proved indicates the consequent was reduced to a trivial truth.
	Proved
	// Exhausted indicates every alternative within the depth bound failed.
	Exhausted
	// TimedOut indicates the search was abandoned when its budget expired.
	TimedOut
)

var stateNames = []string{"searching", "proved", "exhausted", "timedout"}

func (p State) String() string {
	return stateNames[p]
}

// ParseState converts a state name back into a state.
func ParseState(name string) (State, error) {
	for i, n := range stateNames {
		if n == name {
			return State(i), nil
		}
	}
	//
	return Searching, errors.New("unknown state " + name)
}

// Config determines the bounds of a proof search.
type Config struct {
	// MaxDepth bounds the number of steps in a proof, where 0 is unbounded.
	MaxDepth uint
	// Timeout bounds the wall-clock time spent on a single VC, where 0 is
	// unbounded.
	Timeout time.Duration
	// RunID identifies the enclosing run in diagnostics.
	RunID string
}

// Prover searches for proofs of verification conditions, depth first, using a
// chooser to order the alternatives at each node.  A prover holds no mutable
// state of its own, and may prove several VCs concurrently provided its store
// and metrics are safe for concurrent use (as the provided ones are).
type Prover struct {
	config  Config
	library *library.Library
	chooser chooser.Chooser
	store   proofdata.Store
	oracle  oracle.Oracle
	metrics *metrics.Metrics
}

// NewProver constructs a prover for a given library and chooser.
func NewProver(lib *library.Library, ch chooser.Chooser, config Config) *Prover {
	return &Prover{config: config, library: lib, chooser: ch}
}

// WithStore sets the store consulted for (and updated with) prior proof data.
func (p *Prover) WithStore(store proofdata.Store) *Prover {
	p.store = store
	return p
}

// WithOracle sets the decision procedure consulted when search fails.
func (p *Prover) WithOracle(o oracle.Oracle) *Prover {
	p.oracle = o
	return p
}

// WithMetrics sets the metrics updated after every search.
func (p *Prover) WithMetrics(m *metrics.Metrics) *Prover {
	p.metrics = m
	return p
}

// Load constructs the initial proof model for a VC: its antecedents as local
// theorems, followed by the theorems of a library as global theorems.
func Load(v vc.VC, lib *library.Library) *model.ProofModel {
	m := model.NewProofModel(v.Consequent)
	//
	for _, a := range v.Antecedents {
		m.AddAntecedent(a.Term, a.Derived)
	}
	//
	lib.Load(m)
	//
	return m
}

// Prove searches for a proof of a given VC.  Exhaustion and timeout are
// reported through the state of the result.
func (p *Prover) Prove(ctx context.Context, v vc.VC) *Result {
	var (
		start  = time.Now()
		cancel context.CancelFunc
		s      = &search{config: p.config, chooser: p.chooser, model: Load(v, p.library)}
	)
	//
	if p.config.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, p.config.Timeout)
		defer cancel()
	}
	//
	s.prior = p.lookup(v)
	state := s.run(ctx)
	s.metrics.BinderQueries = s.model.BinderQueries()
	//
	result := &Result{
		VC:      v.DisplayName(),
		State:   state,
		Depth:   s.metrics.MaxDepth,
		Metrics: s.metrics,
		Deepest: s.deepest,
		Model:   s.model,
		Elapsed: time.Since(start),
	}
	//
	if state == Proved {
		result.Depth = s.model.Depth()
		result.Steps = s.model.Steps()
		p.save(v, result)
	} else if p.oracle != nil {
		result.Fallback = p.decide(s.model)
	}
	//
	p.observe(result)
	//
	return result
}

// Lookup prior proof data for a VC, if any.  Store failures only lose guidance,
// so are logged rather than returned.
func (p *Prover) lookup(v vc.VC) *proofdata.Record {
	if p.store == nil {
		return nil
	}
	//
	record, ok, err := p.store.Lookup(v.Name)
	if err != nil {
		log.Warnf("reading proof data for %s: %s", v.Name, err)
		return nil
	} else if !ok {
		return nil
	}
	//
	return &record
}

func (p *Prover) save(v vc.VC, result *Result) {
	if p.store == nil {
		return
	}
	//
	record := proofdata.Record{
		VC:              v.Name,
		Transformations: TransformationKeys(result.Steps),
		Depth:           result.Depth,
		Updated:         time.Now(),
	}
	//
	if err := p.store.Save(record); err != nil {
		log.Warnf("saving proof data for %s: %s", v.Name, err)
	}
}

func (p *Prover) decide(m *model.ProofModel) oracle.Verdict {
	var antecedents []term.Term
	//
	for _, a := range m.Antecedents() {
		antecedents = append(antecedents, a.Term())
	}
	//
	return p.oracle.Decide(antecedents, m.Consequent().Term())
}

func (p *Prover) observe(result *Result) {
	log.WithFields(log.Fields{
		"vc":    result.VC,
		"state": result.State,
		"depth": result.Depth,
		"run":   p.config.RunID,
	}).Info("proof search finished")
	//
	if p.metrics != nil {
		p.metrics.Observe(metrics.Outcome{
			State:         result.State.String(),
			Steps:         result.Metrics.Steps,
			Backtracks:    result.Metrics.Backtracks,
			BinderQueries: result.Metrics.BinderQueries,
			Depth:         result.Depth,
			Seconds:       result.Elapsed.Seconds(),
		})
	}
}

// TransformationKeys returns the keys of the transformations applied by a
// sequence of proof steps.
func TransformationKeys(steps []*model.ProofStep) []string {
	var keys = make([]string, len(steps))
	//
	for i, step := range steps {
		keys[i] = step.Application.Transformation()
	}
	//
	return keys
}

// ===================================================================
// Search
// ===================================================================

// search holds the state of a depth-first search over a single model.  Each
// frame holds the remaining alternatives at one node of the search tree.  The
// alternatives of a frame are only enumerated when the model is in the state of
// that node, since enumeration is lazy.
type search struct {
	config  Config
	chooser chooser.Chooser
	model   *model.ProofModel
	prior   *proofdata.Record
	metrics chooser.Metrics
	deepest []string
}

func (p *search) run(ctx context.Context) State {
	var frames = stack.NewStack[iter.Enumerator[chooser.Suggestion]]()
	//
	if p.model.IsTriviallyTrue() {
		return Proved
	}
	//
	frames.Push(p.suggest())
	//
	for !frames.IsEmpty() {
		// Budget is only checked between steps
		if ctx.Err() != nil {
			return TimedOut
		}
		//
		top := frames.Peek(0)
		//
		if !top.HasNext() {
			frames.Pop()
			// Backtrack into the parent node
			if !frames.IsEmpty() {
				p.undo()
			}
			//
			continue
		}
		//
		suggestion := top.Next()
		p.apply(suggestion.Application)
		//
		if p.model.IsTriviallyTrue() {
			return Proved
		} else if p.config.MaxDepth != 0 && p.model.Depth() >= p.config.MaxDepth {
			p.undo()
		} else {
			frames.Push(p.suggest())
		}
	}
	//
	return Exhausted
}

func (p *search) suggest() iter.Enumerator[chooser.Suggestion] {
	p.metrics.Suggestions++
	return p.chooser.Suggest(p.model, p.model.Depth(), &p.metrics, p.prior)
}

func (p *search) apply(app transform.Application) {
	step := app.Apply(p.model)
	depth := p.model.Depth()
	//
	p.metrics.Steps++
	//
	if log.IsLevelEnabled(log.DebugLevel) {
		log.Debugf("[%d] %s", depth, step)
	}
	//
	if depth > p.metrics.MaxDepth {
		p.metrics.MaxDepth = depth
		p.deepest = stepStrings(p.model.Steps())
	}
}

func (p *search) undo() {
	step := p.model.UndoLastStep()
	p.metrics.Backtracks++
	//
	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("[%d] undo %s", p.model.Depth()+1, step.Application)
	}
}

func stepStrings(steps []*model.ProofStep) []string {
	var strs = make([]string, len(steps))
	//
	for i, step := range steps {
		strs[i] = step.String()
	}
	//
	return strs
}
