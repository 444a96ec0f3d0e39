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
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/consensys/go-prover/pkg/prover/chooser"
	"github.com/consensys/go-prover/pkg/prover/model"
	"github.com/consensys/go-prover/pkg/prover/oracle"
	"github.com/consensys/go-prover/pkg/term"
	"github.com/consensys/go-prover/pkg/util/termio"
)

// Result is the outcome of searching for a proof of a single VC.
type Result struct {
	// VC is the display name of the verification condition.
	VC    string
	State State
	// Steps is the proof found (when Proved), oldest first.
	Steps []*model.ProofStep
	// Depth is the length of the proof found or, when unproved, the deepest
	// state reached.
	Depth   uint
	Metrics chooser.Metrics
	// Deepest describes the steps of the deepest state reached.
	Deepest []string
	// Fallback is the verdict of the decision procedure consulted when search
	// failed.
	Fallback oracle.Verdict
	// Model is the final proof model.
	Model   *model.ProofModel
	Elapsed time.Duration
}

// IsProved checks whether the VC was discharged, either by search or by the
// fallback decision procedure.
func (p *Result) IsProved() bool {
	return p.State == Proved || p.Fallback == oracle.Valid
}

// Report is the structured form of a result.
type Report struct {
	VC       string          `json:"vc"`
	State    string          `json:"state"`
	Proved   bool            `json:"proved"`
	Depth    uint            `json:"depth"`
	Steps    []StepReport    `json:"steps,omitempty"`
	Deepest  []string        `json:"deepest,omitempty"`
	Fallback string          `json:"fallback,omitempty"`
	Metrics  chooser.Metrics `json:"metrics"`
	Millis   int64           `json:"elapsed_ms"`
}

// StepReport is the structured form of a proof step.
type StepReport struct {
	Transformation string   `json:"transformation"`
	Application    string   `json:"application"`
	Prerequisites  []string `json:"prerequisites"`
	Added          []string `json:"added,omitempty"`
	Changed        []string `json:"changed,omitempty"`
}

// Report converts this result into its structured form.
func (p *Result) Report() Report {
	report := Report{
		VC:      p.VC,
		State:   p.State.String(),
		Proved:  p.IsProved(),
		Depth:   p.Depth,
		Deepest: p.Deepest,
		Metrics: p.Metrics,
		Millis:  p.Elapsed.Milliseconds(),
	}
	//
	if p.State != Proved {
		report.Fallback = p.Fallback.String()
	}
	//
	for _, step := range p.Steps {
		sr := StepReport{
			Transformation: step.Application.Transformation(),
			Application:    step.Application.String(),
			Prerequisites:  conjunctNames(step.Prerequisites),
		}
		//
		for _, l := range step.Added {
			sr.Added = append(sr.Added, l.String())
		}
		//
		for _, c := range step.Changes {
			sr.Changed = append(sr.Changed, fmt.Sprintf("%s %s", conjunctName(c.Conjunct), c.New))
		}
		//
		report.Steps = append(report.Steps, sr)
	}
	//
	return report
}

// WriteJSON writes the structured form of a set of results.
func WriteJSON(w io.Writer, results []*Result) error {
	var reports = make([]Report, len(results))
	//
	for i, r := range results {
		reports[i] = r.Report()
	}
	//
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	//
	return encoder.Encode(reports)
}

// RenderOptions determine how results are rendered as text.
type RenderOptions struct {
	// Width at which terms are broken over lines.
	Width uint
	// Colour enables ANSI escapes.
	Colour bool
}

// Render writes a human-readable form of a result, giving the justification of
// each step when proved and the deepest state reached otherwise.
func Render(w io.Writer, result *Result, opts RenderOptions) error {
	var builder strings.Builder
	//
	builder.WriteString(result.VC)
	builder.WriteString(": ")
	builder.WriteString(renderState(result, opts.Colour))
	//
	switch {
	case result.State == Proved:
		fmt.Fprintf(&builder, " (%d steps)\n", len(result.Steps))
		//
		for i, step := range result.Steps {
			renderStep(&builder, i+1, step, opts.Width)
		}
	default:
		fmt.Fprintf(&builder, " (depth %d, %d steps, %d backtracks, %d binder queries)\n", result.Depth,
			result.Metrics.Steps, result.Metrics.Backtracks, result.Metrics.BinderQueries)
		//
		if result.Fallback == oracle.Valid {
			builder.WriteString("  discharged by decision procedure\n")
		}
		//
		for i, s := range result.Deepest {
			fmt.Fprintf(&builder, "  %d. %s\n", i+1, indent(s, "     "))
		}
	}
	//
	_, err := io.WriteString(w, builder.String())
	//
	return err
}

func renderState(result *Result, colour bool) string {
	var (
		text   = result.State.String()
		escape termio.AnsiEscape
	)
	//
	if !colour {
		return text
	}
	//
	switch {
	case result.State == Proved:
		escape = termio.BoldAnsiEscape().FgColour(termio.TERM_GREEN)
	case result.IsProved():
		escape = termio.NewAnsiEscape().FgColour(termio.TERM_YELLOW)
	default:
		escape = termio.NewAnsiEscape().FgColour(termio.TERM_RED)
	}
	//
	return escape.Wrap(text)
}

func renderStep(builder *strings.Builder, index int, step *model.ProofStep, width uint) {
	fmt.Fprintf(builder, "  %d. %s\n", index, step.Application)
	//
	if len(step.Prerequisites) > 0 {
		fmt.Fprintf(builder, "     from %s\n", strings.Join(conjunctNames(step.Prerequisites), ", "))
	}
	//
	for _, l := range step.Added {
		fmt.Fprintf(builder, "     + L%d: %s\n", l.ID(), indent(term.Format(l.Term(), width), "       "))
	}
	//
	for _, c := range step.Changes {
		fmt.Fprintf(builder, "     ~ %s: %s\n", conjunctName(c.Conjunct), indent(term.Format(c.New, width), "       "))
	}
}

func conjunctNames(conjuncts []model.Conjunct) []string {
	var names = make([]string, len(conjuncts))
	//
	for i, c := range conjuncts {
		names[i] = conjunctName(c)
	}
	//
	return names
}

// Name a conjunct by its role and identity.  Global theorems are named by
// their library name.
func conjunctName(c model.Conjunct) string {
	switch c := c.(type) {
	case *model.LocalTheorem:
		return fmt.Sprintf("L%d", c.ID())
	case *model.GlobalTheorem:
		return c.Name()
	case *model.Consequent:
		return fmt.Sprintf("C%d", c.ID())
	default:
		panic(fmt.Sprintf("unknown conjunct encountered (%T)", c))
	}
}

// Indent every line after the first.
func indent(text string, prefix string) string {
	return strings.ReplaceAll(text, "\n", "\n"+prefix)
}
