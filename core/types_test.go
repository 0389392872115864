// SPDX-License-Identifier: MIT
// Package core_test verifies Node construction and distances.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/hypercube/core"
)

func TestNewNode(t *testing.T) {
	cases := []struct {
		value, dim int
		bits       string
		weight     int
	}{
		{0, 1, "0", 0},
		{1, 1, "1", 1},
		{5, 4, "0101", 2},
		{0, 6, "000000", 0},
		{63, 6, "111111", 6},
		{1 << 14, 15, "100000000000000", 1},
	}
	for _, tc := range cases {
		n := core.NewNode(tc.value, tc.dim)
		assert.Equal(t, tc.value, n.Value)
		assert.Equal(t, tc.bits, n.Bits)
		assert.Equal(t, tc.bits, n.String())
		assert.Equal(t, tc.weight, n.Weight)
	}
}

// TestNode_Distances contrasts the weight heuristic with the true bit distance.
func TestNode_Distances(t *testing.T) {
	a := core.NewNode(0b0011, 4)
	b := core.NewNode(0b1100, 4)
	c := core.NewNode(0b1111, 4)

	// Same weight, every bit different.
	assert.Equal(t, 0, a.HammingDistance(b))
	assert.Equal(t, 4, a.BitDistance(b))

	assert.Equal(t, 2, a.HammingDistance(c))
	assert.Equal(t, 2, c.HammingDistance(a))
	assert.Equal(t, 2, a.BitDistance(c))

	// The heuristic never exceeds the bit distance.
	for u := 0; u < 16; u++ {
		for v := 0; v < 16; v++ {
			nu, nv := core.NewNode(u, 4), core.NewNode(v, 4)
			assert.LessOrEqual(t, nu.HammingDistance(nv), nu.BitDistance(nv))
		}
	}
}

// TestNode_Equality relies on Value determining the other fields.
func TestNode_Equality(t *testing.T) {
	assert.Equal(t, core.NewNode(9, 5), core.NewNode(9, 5))
	assert.True(t, core.NewNode(9, 5) == core.NewNode(9, 5))
	assert.NotEqual(t, core.NewNode(9, 5), core.NewNode(10, 5))

	seen := map[core.Node]bool{core.NewNode(3, 3): true}
	assert.True(t, seen[core.NewNode(3, 3)])
}
