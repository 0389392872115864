// Package greedy defines options, sentinel errors and the walk result.
package greedy

import (
	"context"
	"errors"

	"github.com/katalvlaran/hypercube/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Path.
	ErrGraphNil = errors.New("greedy: graph is nil")

	// ErrStepLimit indicates that the walk used up its MaxSteps budget
	// before reaching the target or giving up.
	ErrStepLimit = errors.New("greedy: step limit exceeded")
)

// Option configures Path.
type Option func(*Options)

// Options holds the walk's hooks and limits.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked for every node the walker enters,
	// starting with the start node. Returning an error aborts the walk.
	OnVisit func(n core.Node) error

	// OnBacktrack, if non-nil, is invoked for every node marked as a dead end,
	// just before the walker retreats from it.
	OnBacktrack func(n core.Node) error

	// MaxSteps bounds advances plus retreats. Zero means unbounded.
	MaxSteps int
}

// DefaultOptions returns a background context, no hooks and no step limit.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the enter hook.
func WithOnVisit(fn func(n core.Node) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnBacktrack installs fn as the dead-end hook.
func WithOnBacktrack(fn func(n core.Node) error) Option {
	return func(o *Options) {
		o.OnBacktrack = fn
	}
}

// WithMaxSteps limits advances plus retreats to limit.
// Panics if limit < 0.
func WithMaxSteps(limit int) Option {
	if limit < 0 {
		panic("greedy: WithMaxSteps(limit) requires limit >= 0")
	}

	return func(o *Options) {
		o.MaxSteps = limit
	}
}

// Result describes a successful walk.
type Result struct {
	// Path is the final route from start to end inclusive.
	Path core.Path

	// Steps counts advances and retreats taken.
	Steps int

	// Backtracks counts retreats.
	Backtracks int

	// DeadEnds counts nodes abandoned during the walk.
	DeadEnds int
}

// EdgeCount returns the number of hops on the route.
func (r *Result) EdgeCount() int { return r.Path.EdgeCount() }
