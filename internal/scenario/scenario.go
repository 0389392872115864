// Package scenario runs scripted hypercube experiments read from YAML.
//
// A scenario builds one cube, then applies its steps in order: damage
// (subgraph, isolate, remove), searches (greedy, shortest, distance) and
// inspection (components). A step may state the outcome it expects; Run
// records every step and reports ErrExpectationFailed if any expectation
// does not hold.
//
//	dimension: 3
//	seed: 0
//	steps:
//	  - op: isolate
//	    node: "000"
//	  - op: greedy
//	    from: "000"
//	    to: "111"
//	    expect: no-path
package scenario

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hypercube"
	"github.com/katalvlaran/hypercube/core"
)

// Step operations.
const (
	OpSubgraph   = "subgraph"
	OpIsolate    = "isolate"
	OpRemove     = "remove"
	OpGreedy     = "greedy"
	OpShortest   = "shortest"
	OpDistance   = "distance"
	OpComponents = "components"
)

// Outcomes a step can expect and report.
const (
	OutcomeOK                = "ok"
	OutcomeNoPath            = "no-path"
	OutcomeInsufficientEdges = "insufficient-edges"
	OutcomeInvalidBitstring  = "invalid-bitstring"
	OutcomeEdgeNotFound      = "edge-not-found"
	OutcomeError             = "error"

	// OutcomeAny accepts whatever the step produces.
	OutcomeAny = "any"
)

var (
	// ErrInvalidScenario indicates a malformed scenario document.
	ErrInvalidScenario = errors.New("scenario: invalid scenario")

	// ErrExpectationFailed indicates that at least one step's outcome or
	// edge count differed from what the step expected.
	ErrExpectationFailed = errors.New("scenario: expectation failed")
)

// Scenario is one cube and the steps applied to it.
type Scenario struct {
	Name      string `yaml:"name"`
	Dimension int    `yaml:"dimension"`
	Seed      int64  `yaml:"seed"`
	Steps     []Step `yaml:"steps"`
}

// Step is a single operation.
type Step struct {
	Op   string `yaml:"op"`
	From string `yaml:"from,omitempty"`
	To   string `yaml:"to,omitempty"`
	Node string `yaml:"node,omitempty"`

	// Edges is the removal count for subgraph.
	Edges int `yaml:"edges,omitempty"`

	// Expect is the expected outcome; empty means "ok".
	Expect string `yaml:"expect,omitempty"`

	// EdgeCount, if set, is the expected hop count of a search or distance,
	// the expected number of removed edges of isolate, or the expected number
	// of components.
	EdgeCount *int `yaml:"edgeCount,omitempty"`
}

// StepResult records what a step did.
type StepResult struct {
	Index      int      `json:"index"`
	Op         string   `json:"op"`
	Outcome    string   `json:"outcome"`
	EdgeCount  int      `json:"edgeCount"`
	Path       []string `json:"path,omitempty"`
	Error      string   `json:"error,omitempty"`
	Pass       bool     `json:"pass"`
	GraphEdges int      `json:"graphEdges"`
}

// Report is the outcome of a whole scenario.
type Report struct {
	Name       string       `json:"name"`
	Dimension  int          `json:"dimension"`
	Seed       int64        `json:"seed"`
	Steps      []StepResult `json:"steps"`
	Passed     int          `json:"passed"`
	Failed     int          `json:"failed"`
	FinalEdges int          `json:"finalEdges"`
}

// Parse decodes a YAML scenario from r and validates its operations.
func Parse(r io.Reader) (*Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if err := sc.validate(); err != nil {
		return nil, err
	}

	return &sc, nil
}

func (sc *Scenario) validate() error {
	for i, st := range sc.Steps {
		switch st.Op {
		case OpSubgraph, OpIsolate, OpRemove, OpGreedy, OpShortest, OpDistance, OpComponents:
		default:
			return fmt.Errorf("%w: step %d: unknown op %q", ErrInvalidScenario, i, st.Op)
		}
		switch st.Expect {
		case "", OutcomeOK, OutcomeNoPath, OutcomeInsufficientEdges, OutcomeInvalidBitstring, OutcomeEdgeNotFound, OutcomeError, OutcomeAny:
		default:
			return fmt.Errorf("%w: step %d: unknown expect %q", ErrInvalidScenario, i, st.Expect)
		}
	}

	return nil
}

// Run builds the cube and applies every step, even after a failed one.
// It returns ErrExpectationFailed alongside the full report when any step
// failed; other errors (such as an invalid dimension) abort before any step.
func Run(sc *Scenario, opts ...core.Option) (*Report, error) {
	g, err := hypercube.BuildGraph(sc.Dimension, sc.Seed, opts...)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}

	rep := &Report{Name: sc.Name, Dimension: sc.Dimension, Seed: sc.Seed, Steps: make([]StepResult, 0, len(sc.Steps))}
	for i, st := range sc.Steps {
		res := apply(g, st)
		res.Index = i
		res.GraphEdges = g.EdgeCount()
		res.Pass = matches(st, res)
		if res.Pass {
			rep.Passed++
		} else {
			rep.Failed++
		}
		rep.Steps = append(rep.Steps, res)
	}
	rep.FinalEdges = g.EdgeCount()

	if rep.Failed > 0 {
		return rep, fmt.Errorf("%w: %d of %d steps", ErrExpectationFailed, rep.Failed, len(sc.Steps))
	}

	return rep, nil
}

// apply runs one step; errors become outcomes.
func apply(g *hypercube.Graph, st Step) StepResult {
	res := StepResult{Op: st.Op}

	var err error
	switch st.Op {
	case OpSubgraph:
		err = g.Subgraph(st.Edges)
		if err == nil {
			res.EdgeCount = st.Edges
		}
	case OpIsolate:
		res.EdgeCount, err = g.Isolate(st.Node)
	case OpRemove:
		err = g.RemoveEdge(st.From, st.To)
	case OpGreedy, OpShortest:
		var p *hypercube.PathResult
		if st.Op == OpGreedy {
			p, err = g.GreedyPath(st.From, st.To)
		} else {
			p, err = g.ShortestPath(st.From, st.To)
		}
		if err == nil {
			res.EdgeCount, res.Path = p.EdgeCount, p.Path
		}
	case OpDistance:
		res.EdgeCount, err = g.HopDistance(st.From, st.To)
	case OpComponents:
		res.EdgeCount = len(g.Components())
	}

	res.Outcome = outcome(err)
	if err != nil {
		res.Error = err.Error()
	}

	return res
}

// matches reports whether res satisfies st's expectations.
func matches(st Step, res StepResult) bool {
	want := st.Expect
	if want == "" {
		want = OutcomeOK
	}
	if want != OutcomeAny && want != res.Outcome {
		return false
	}

	return st.EdgeCount == nil || *st.EdgeCount == res.EdgeCount
}

// outcome classifies err by sentinel.
func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, hypercube.ErrNoPathFound):
		return OutcomeNoPath
	case errors.Is(err, hypercube.ErrInsufficientEdges):
		return OutcomeInsufficientEdges
	case errors.Is(err, hypercube.ErrInvalidBitstring):
		return OutcomeInvalidBitstring
	case errors.Is(err, hypercube.ErrEdgeNotFound):
		return OutcomeEdgeNotFound
	default:
		return OutcomeError
	}
}
