package scenario_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypercube"
	"github.com/katalvlaran/hypercube/internal/scenario"
)

const island = `
name: island
dimension: 3
seed: 0
steps:
  - op: isolate
    node: "000"
    edgeCount: 3
  - op: greedy
    from: "000"
    to: "111"
    expect: no-path
  - op: shortest
    from: "001"
    to: "111"
    edgeCount: 2
  - op: components
    edgeCount: 2
  - op: remove
    from: "000"
    to: "100"
    expect: edge-not-found
  - op: subgraph
    edges: 10
    expect: insufficient-edges
`

func TestRun_Island(t *testing.T) {
	sc, err := scenario.Parse(strings.NewReader(island))
	require.NoError(t, err)
	require.Len(t, sc.Steps, 6)

	rep, err := scenario.Run(sc)
	require.NoError(t, err)
	assert.Equal(t, 6, rep.Passed)
	assert.Zero(t, rep.Failed)
	assert.Equal(t, 9, rep.FinalEdges)

	assert.Equal(t, scenario.OutcomeNoPath, rep.Steps[1].Outcome)
	assert.Contains(t, rep.Steps[1].Error, "no path found")
	assert.Len(t, rep.Steps[2].Path, 3)
}

func TestRun_FailedExpectation(t *testing.T) {
	sc, err := scenario.Parse(strings.NewReader(`
dimension: 2
steps:
  - op: shortest
    from: "00"
    to: "11"
    edgeCount: 1
  - op: distance
    from: "00"
    to: "11"
    edgeCount: 2
`))
	require.NoError(t, err)

	rep, err := scenario.Run(sc)
	require.ErrorIs(t, err, scenario.ErrExpectationFailed)
	require.NotNil(t, rep)
	assert.False(t, rep.Steps[0].Pass)
	assert.Equal(t, 2, rep.Steps[0].EdgeCount)
	assert.True(t, rep.Steps[1].Pass)
	assert.Equal(t, 1, rep.Failed)
}

func TestRun_InvalidDimension(t *testing.T) {
	_, err := scenario.Run(&scenario.Scenario{Dimension: 0})
	require.ErrorIs(t, err, hypercube.ErrInvalidDimension)
}

func TestParse_Rejects(t *testing.T) {
	for name, doc := range map[string]string{
		"unknown op":     "dimension: 2\nsteps:\n  - op: teleport\n",
		"unknown expect": "dimension: 2\nsteps:\n  - op: components\n    expect: maybe\n",
		"unknown field":  "dimension: 2\ncolour: red\n",
		"not yaml":       "dimension: [",
	} {
		_, err := scenario.Parse(strings.NewReader(doc))
		assert.ErrorIs(t, err, scenario.ErrInvalidScenario, name)
	}
}

// TestRun_Deterministic replays a damaged scenario and expects identical reports.
func TestRun_Deterministic(t *testing.T) {
	doc := `
dimension: 6
seed: 42
steps:
  - op: subgraph
    edges: 80
  - op: greedy
    from: "000000"
    to: "111111"
    expect: any
  - op: shortest
    from: "000000"
    to: "111111"
    expect: any
`
	sc, err := scenario.Parse(strings.NewReader(doc))
	require.NoError(t, err)

	a, err := scenario.Run(sc)
	require.NoError(t, err)
	b, err := scenario.Run(sc)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDemo(t *testing.T) {
	sc, err := scenario.Demo()
	require.NoError(t, err)

	rep, err := scenario.Run(sc)
	require.NoError(t, err)
	assert.Equal(t, len(sc.Steps), rep.Passed)
	assert.Equal(t, []string{"0000", "1000", "1100", "1110", "1111"}, rep.Steps[0].Path)
}
