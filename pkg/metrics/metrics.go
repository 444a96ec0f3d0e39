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
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace of all metrics exported by the prover.
const Namespace = "goprover"

// Metrics holds the instrumentation of a proving run.  Every instance has its
// own registry, so independent runs (and tests) never share counters.
type Metrics struct {
	registry      *prometheus.Registry
	vcs           *prometheus.CounterVec
	steps         prometheus.Counter
	backtracks    prometheus.Counter
	binderQueries prometheus.Counter
	depth         prometheus.Histogram
	duration      prometheus.Histogram
}

// Outcome summarises the search for a single VC.
type Outcome struct {
	State         string
	Steps         uint
	Backtracks    uint
	BinderQueries uint
	Depth         uint
	Seconds       float64
}

// New constructs a fresh set of metrics, registered against a fresh registry.
func New() *Metrics {
	var (
		registry = prometheus.NewRegistry()
		factory  = promauto.With(registry)
	)
	//
	return &Metrics{
		registry: registry,
		vcs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "vcs_total",
			Help:      "Verification conditions attempted, by final state",
		}, []string{"state"}),
		steps: factory.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "steps_applied_total",
			Help:      "Proof steps applied during search",
		}),
		backtracks: factory.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "backtracks_total",
			Help:      "Proof steps undone during search",
		}),
		binderQueries: factory.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "binder_queries_total",
			Help:      "Binder queries made during search",
		}),
		depth: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "proof_depth",
			Help:      "Depth of the proof (or deepest state) reached per VC",
			Buckets:   prometheus.LinearBuckets(0, 1, 11),
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall-clock time spent searching per VC",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
	}
}

// Registry returns the registry holding these metrics.
func (p *Metrics) Registry() *prometheus.Registry {
	return p.registry
}

// Observe records the outcome of a single VC.  This is safe to call
// concurrently.
func (p *Metrics) Observe(outcome Outcome) {
	p.vcs.WithLabelValues(outcome.State).Inc()
	p.steps.Add(float64(outcome.Steps))
	p.backtracks.Add(float64(outcome.Backtracks))
	p.binderQueries.Add(float64(outcome.BinderQueries))
	p.depth.Observe(float64(outcome.Depth))
	p.duration.Observe(outcome.Seconds)
}

// WriteFile dumps the current metrics in the text exposition format.
func (p *Metrics) WriteFile(filename string) error {
	return prometheus.WriteToTextfile(filename, p.registry)
}
