// Package recipe describes preprocessing pipelines declaratively.
//
// A Recipe is an ordered chain of step descriptors over a closed set of known
// preprocessing operations (centering, scaling, PCA, correlation filtering,
// zero-variance filtering, log transform). The package never transforms any
// data itself: a Recipe is an opaque handle the grid passes untouched to the
// caller-supplied Preprocessor, which estimates the actual transform on
// reference data and reapplies it consistently.
//
// Recipe identity matters. A Preprocessor may cache its estimated transform
// keyed by the *Recipe pointer, so handing the same Recipe to several
// experiments lets later experiments reuse the transform estimated for an
// earlier one.
package recipe

import (
	"fmt"
	"strings"

	"github.com/YuminosukeSato/modelgrid/pkg/errors"
)

// StepOp identifies one of the known preprocessing operations.
type StepOp string

const (
	// OpCenter subtracts the per-column mean.
	OpCenter StepOp = "center"
	// OpScale divides by the per-column standard deviation.
	OpScale StepOp = "scale"
	// OpPCA projects onto the leading principal components.
	OpPCA StepOp = "pca"
	// OpCorrFilter drops one of every feature pair whose absolute pairwise
	// correlation exceeds the threshold.
	OpCorrFilter StepOp = "corr_filter"
	// OpZeroVar drops features with zero variance in the reference data.
	OpZeroVar StepOp = "zero_var"
	// OpLog applies a natural log transform to the named columns.
	OpLog StepOp = "log"
)

// Step is one declarative preprocessing operation. Only the fields relevant
// to the Op are set; the rest stay zero.
type Step struct {
	Op StepOp

	// Columns restricts the step to the named features. Empty means all
	// numeric features. Used by OpLog and optionally by OpCenter/OpScale.
	Columns []string

	// Threshold is the absolute correlation cutoff for OpCorrFilter, in (0, 1].
	Threshold float64

	// NumComponents is the number of components kept by OpPCA.
	NumComponents int
}

// String renders the step compactly for logs and error messages.
func (s Step) String() string {
	switch s.Op {
	case OpPCA:
		return fmt.Sprintf("pca(%d)", s.NumComponents)
	case OpCorrFilter:
		return fmt.Sprintf("corr_filter(%.2f)", s.Threshold)
	case OpLog:
		if len(s.Columns) > 0 {
			return fmt.Sprintf("log(%s)", strings.Join(s.Columns, ","))
		}
		return "log"
	default:
		return string(s.Op)
	}
}

// Recipe is an ordered, declarative sequence of preprocessing steps. Build it
// fluently and hand it to grid.Add; the chain mutates the receiver and
// returns it so calls compose:
//
//	rec := recipe.New().Center().Scale().PCA(10)
type Recipe struct {
	steps []Step
}

// New returns an empty recipe.
func New() *Recipe {
	return &Recipe{}
}

// Center appends a centering step for the given columns (all when empty).
func (r *Recipe) Center(columns ...string) *Recipe {
	r.steps = append(r.steps, Step{Op: OpCenter, Columns: columns})
	return r
}

// Scale appends a scaling step for the given columns (all when empty).
func (r *Recipe) Scale(columns ...string) *Recipe {
	r.steps = append(r.steps, Step{Op: OpScale, Columns: columns})
	return r
}

// PCA appends a principal-component projection keeping numComponents components.
func (r *Recipe) PCA(numComponents int) *Recipe {
	r.steps = append(r.steps, Step{Op: OpPCA, NumComponents: numComponents})
	return r
}

// CorrFilter appends a pairwise-correlation filter with the given absolute
// correlation threshold.
func (r *Recipe) CorrFilter(threshold float64) *Recipe {
	r.steps = append(r.steps, Step{Op: OpCorrFilter, Threshold: threshold})
	return r
}

// ZeroVar appends a zero-variance filter.
func (r *Recipe) ZeroVar() *Recipe {
	r.steps = append(r.steps, Step{Op: OpZeroVar})
	return r
}

// Log appends a natural log transform for the named columns (all when empty).
func (r *Recipe) Log(columns ...string) *Recipe {
	r.steps = append(r.steps, Step{Op: OpLog, Columns: columns})
	return r
}

// Append adds an already-built step, for callers constructing recipes from
// configuration rather than the fluent API.
func (r *Recipe) Append(s Step) *Recipe {
	r.steps = append(r.steps, s)
	return r
}

// Steps returns a copy of the step chain in declaration order.
func (r *Recipe) Steps() []Step {
	out := make([]Step, len(r.steps))
	copy(out, r.steps)
	return out
}

// Len returns the number of steps.
func (r *Recipe) Len() int {
	return len(r.steps)
}

// Validate checks the declarative structure of the recipe. It cannot detect
// data-dependent failures (a singular covariance matrix, say); those surface
// from the Preprocessor at run time.
func (r *Recipe) Validate() error {
	if len(r.steps) == 0 {
		return errors.NewValidationError("steps", "recipe must contain at least one step", 0)
	}
	for i, s := range r.steps {
		switch s.Op {
		case OpCenter, OpScale, OpZeroVar, OpLog:
			// No structural constraints.
		case OpPCA:
			if s.NumComponents < 1 {
				return errors.NewValidationError(
					fmt.Sprintf("steps[%d].num_components", i),
					"PCA must keep at least one component", s.NumComponents)
			}
		case OpCorrFilter:
			if s.Threshold <= 0 || s.Threshold > 1 {
				return errors.NewValidationError(
					fmt.Sprintf("steps[%d].threshold", i),
					"correlation threshold must be in (0, 1]", s.Threshold)
			}
		default:
			return errors.NewValidationError(
				fmt.Sprintf("steps[%d].op", i),
				"unknown preprocessing operation", string(s.Op))
		}
	}
	return nil
}

// String renders the whole chain, e.g. "center -> scale -> pca(10)".
func (r *Recipe) String() string {
	if len(r.steps) == 0 {
		return "(empty recipe)"
	}
	parts := make([]string, len(r.steps))
	for i, s := range r.steps {
		parts[i] = s.String()
	}
	return strings.Join(parts, " -> ")
}
