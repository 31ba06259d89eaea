// Package config loads grid declarations from YAML files, environment
// variables, and in-process maps, and builds ready-to-train grids from them.
// The core registry in package grid keeps no file surface of its own; this
// package is the convenience layer on top of it for callers that prefer
// declaring a grid next to their data rather than in code.
package config

import (
	"fmt"

	"github.com/YuminosukeSato/modelgrid/core/model"
	"github.com/YuminosukeSato/modelgrid/grid"
	"github.com/YuminosukeSato/modelgrid/pkg/errors"
	"github.com/YuminosukeSato/modelgrid/recipe"
)

// Declaration is the on-disk shape of a grid:
//
//	shared:
//	  resampling: cv-5
//	  metric: AUC
//	  method: glm
//	experiments:
//	  - name: glm_base
//	  - name: glm_pca
//	    recipe:
//	      - op: center
//	      - op: scale
//	      - op: pca
//	        num_components: 10
//	  - name: rf_corr90
//	    overrides:
//	      method: rf
//	    recipe:
//	      - op: corr_filter
//	        threshold: 0.9
type Declaration struct {
	Shared      map[string]any   `koanf:"shared"`
	Experiments []ExperimentDecl `koanf:"experiments"`
}

// ExperimentDecl declares one named experiment.
type ExperimentDecl struct {
	Name      string         `koanf:"name"`
	Overrides map[string]any `koanf:"overrides"`
	Recipe    []StepDecl     `koanf:"recipe"`
}

// StepDecl declares one preprocessing step. Op must be one of the recipe
// package's known operations.
type StepDecl struct {
	Op            string   `koanf:"op"`
	Columns       []string `koanf:"columns"`
	Threshold     float64  `koanf:"threshold"`
	NumComponents int      `koanf:"num_components"`
}

// Validate checks the declaration's structure: every experiment named,
// names unique, every declared recipe structurally valid.
func (d *Declaration) Validate() error {
	if len(d.Experiments) == 0 {
		return errors.WithStack(errors.ErrNoExperiments)
	}
	seen := make(map[string]bool, len(d.Experiments))
	for i, exp := range d.Experiments {
		if exp.Name == "" {
			return errors.NewValidationError(
				fmt.Sprintf("experiments[%d].name", i),
				"experiment name must not be empty", exp.Name)
		}
		if seen[exp.Name] {
			return errors.NewDuplicateNameError(exp.Name)
		}
		seen[exp.Name] = true

		if len(exp.Recipe) > 0 {
			if _, err := exp.buildRecipe(); err != nil {
				return err
			}
		}
	}
	return nil
}

// buildRecipe converts the declared steps into a *recipe.Recipe and validates it.
func (e *ExperimentDecl) buildRecipe() (*recipe.Recipe, error) {
	if len(e.Recipe) == 0 {
		return nil, nil
	}
	rec := recipe.New()
	for _, s := range e.Recipe {
		rec.Append(recipe.Step{
			Op:            recipe.StepOp(s.Op),
			Columns:       s.Columns,
			Threshold:     s.Threshold,
			NumComponents: s.NumComponents,
		})
	}
	if err := rec.Validate(); err != nil {
		return nil, errors.Wrapf(err, "experiment %q", e.Name)
	}
	return rec, nil
}

// Build constructs a grid from the declaration, wired to the given
// collaborators. Experiments are registered in declaration order, which
// becomes their execution and reporting order.
func (d *Declaration) Build(pre model.Preprocessor, trainer model.Trainer, opts ...grid.Option) (*grid.Grid, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	g := grid.New(pre, trainer, opts...)
	g.SetShared(grid.Settings(d.Shared))
	for _, exp := range d.Experiments {
		rec, err := exp.buildRecipe()
		if err != nil {
			return nil, err
		}
		if err := g.Add(exp.Name, grid.Settings(exp.Overrides), rec); err != nil {
			return nil, err
		}
	}
	return g, nil
}
