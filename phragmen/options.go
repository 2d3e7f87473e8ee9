package phragmen

import (
	"context"

	"github.com/mdbrnowski/pabumeasures/election"
)

// Option configures Rule's ambient behavior via functional arguments.
type Option func(*Options)

// Options holds cancellation and round-instrumentation settings for Rule.
// It carries no knob over the math itself (EPS, the max-load key) —
// those are fixed by the rule, not tunable.
type Options struct {
	// Ctx allows a long-running Rule call to be aborted between rounds.
	Ctx context.Context

	// OnRoundSelected is called once per round with that round's winner,
	// after it is chosen and its approvers' loads are raised, but before its
	// cost is deducted from the remaining budget.
	OnRoundSelected func(election.Project)
}

// DefaultOptions returns Options with context.Background() and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:             context.Background(),
		OnRoundSelected: func(election.Project) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnRoundSelected registers a callback invoked with each round's winner.
func WithOnRoundSelected(fn func(election.Project)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRoundSelected = fn
		}
	}
}
