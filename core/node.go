// SPDX-License-Identifier: MIT
//
// File: node.go
// Role: Node construction, bit-string parsing and the two node distances.
// Determinism:
//   - Bits are MSB first and always exactly dim runes wide.

package core

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// NewNode builds the Node for value in a cube of dimension dim.
// The caller guarantees 0 ≤ value < 2^dim.
func NewNode(value, dim int) Node {
	raw := strconv.FormatUint(uint64(value), 2)
	if pad := dim - len(raw); pad > 0 {
		raw = strings.Repeat("0", pad) + raw
	}

	return Node{
		Value:  value,
		Bits:   raw,
		Weight: bits.OnesCount(uint(value)),
	}
}

// String returns the node bit-string.
func (n Node) String() string { return n.Bits }

// HammingDistance returns |n.Weight − other.Weight|.
//
// This is the search heuristic, not the bit-differing count: it never
// exceeds BitDistance, and it changes by at most one across an edge, which
// makes it admissible and consistent for unit-cost hops.
func (n Node) HammingDistance(other Node) int {
	d := n.Weight - other.Weight
	if d < 0 {
		return -d
	}

	return d
}

// BitDistance returns the number of bit positions in which n and other
// differ, i.e. the hop distance between them in an undamaged cube.
func (n Node) BitDistance(other Node) int {
	return bits.OnesCount(uint(n.Value ^ other.Value))
}

// parseBits validates s as a dim-wide bit-string and returns its value.
func parseBits(s string, dim int) (int, error) {
	if len(s) != dim {
		return 0, fmt.Errorf("%w: %q has length %d, want %d", ErrInvalidBitstring, s, len(s), dim)
	}
	v := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			v <<= 1
		case '1':
			v = v<<1 | 1
		default:
			return 0, fmt.Errorf("%w: %q has %q at position %d", ErrInvalidBitstring, s, s[i], i)
		}
	}

	return v, nil
}
