// Package modelgrid provides an experiment registry for organizing repeated
// model-training experiments in Go.
//
// ModelGrid lets you declare settings shared by every experiment variant,
// register named variants that each carry their own preprocessing recipe and
// configuration overrides, and train all of them in one call, collecting a
// name-keyed set of artifacts (fitted model + effective configuration +
// resampled performance) ready for side-by-side comparison.
//
// # Features
//
// - Two-level configuration: shared settings with key-wise per-experiment overrides
// - Declarative preprocessing recipes over a closed set of known operations
// - Partial-failure runs: one broken experiment never blocks the rest
// - Structured logging and stack-traced errors throughout
// - Declaration files: describe a whole grid in YAML and build it in one call
//
// # Quick Start
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//
//	    "github.com/YuminosukeSato/modelgrid/grid"
//	    "github.com/YuminosukeSato/modelgrid/recipe"
//	)
//
//	func main() {
//	    g := grid.New(myPreprocessor, myTrainer)
//	    g.SetShared(grid.Settings{"resampling": "cv-5", "metric": "AUC", "method": "glm"})
//
//	    _ = g.Add("glm_base", nil, nil)
//	    _ = g.Add("glm_pca", nil, recipe.New().Center().Scale().PCA(10))
//	    _ = g.Add("rf_corr90", grid.Settings{"method": "rf"}, recipe.New().CorrFilter(0.9))
//
//	    report, err := g.Train(context.Background(), data)
//	    if err != nil {
//	        panic(err)
//	    }
//	    for _, a := range g.Artifacts() {
//	        fmt.Println(a.Name, a.Profile.Metric, a.Profile.Mean())
//	    }
//	    if failed := report.Failed(); len(failed) > 0 {
//	        fmt.Println("failed:", failed)
//	    }
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - grid: the experiment registry (shared settings, named experiments, artifacts)
//   - recipe: declarative preprocessing step chains
//   - config: YAML/env declaration loading
//   - core/model: collaborator contracts (Preprocessor, Trainer) and data handles
//   - pkg/errors: structured error types with stack traces
//   - pkg/log: structured logging interface and attribute keys
//
// The actual preprocessing and model-fitting algorithms live outside this
// module: you supply a Preprocessor and a Trainer and ModelGrid orchestrates
// them across every registered experiment.
package modelgrid
