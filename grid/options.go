package grid

import (
	"github.com/YuminosukeSato/modelgrid/pkg/log"
)

// Option is a function that configures a Grid
type Option func(*Grid)

// WithLogger sets the structured logger used during grid operations
func WithLogger(logger log.Logger) Option {
	return func(g *Grid) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithObserver sets the observer notified around each experiment's execution
func WithObserver(obs Observer) Option {
	return func(g *Grid) {
		if obs != nil {
			g.observer = obs
		}
	}
}

// WithRunIDFunc overrides how run IDs are generated, e.g. for deterministic
// IDs in tests
func WithRunIDFunc(fn func() string) Option {
	return func(g *Grid) {
		if fn != nil {
			g.runID = fn
		}
	}
}

// WithShared sets the initial shared settings
func WithShared(shared Settings) Option {
	return func(g *Grid) {
		g.shared = shared.Clone()
	}
}
