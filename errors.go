package hypercube

import "github.com/katalvlaran/hypercube/core"

// Error kinds re-exported from core so callers need a single import.
var (
	ErrInvalidDimension  = core.ErrInvalidDimension
	ErrInvalidBitstring  = core.ErrInvalidBitstring
	ErrNoPathFound       = core.ErrNoPathFound
	ErrInsufficientEdges = core.ErrInsufficientEdges
	ErrInvalidEdgeCount  = core.ErrInvalidEdgeCount
	ErrEdgeNotFound      = core.ErrEdgeNotFound
)
