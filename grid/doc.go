// Package grid implements an experiment registry ("model grid") for repeated
// model-training experiments.
//
// A Grid holds settings shared by every experiment, a set of named experiment
// variants that each carry their own configuration overrides and an optional
// declarative preprocessing recipe, and, after a run, a name-keyed
// collection of trained artifacts. The actual preprocessing and model fitting
// are performed by externally supplied collaborators (model.Preprocessor and
// model.Trainer); the grid merges configuration, orchestrates the run, and
// collects outcomes.
//
// Basic usage:
//
//	g := grid.New(pre, trainer)
//	g.SetShared(grid.Settings{"resampling": "cv-5", "metric": "AUC"})
//
//	_ = g.Add("glm_base", nil, nil)
//	_ = g.Add("glm_pca", nil, recipe.New().Center().Scale().PCA(10))
//	_ = g.Add("rf_corr90", grid.Settings{"method": "rf"}, recipe.New().CorrFilter(0.9))
//
//	report, err := g.Train(ctx, data)
//	if err != nil {
//	    // the grid itself was unusable (nil trainer, nothing registered)
//	}
//	for _, a := range g.Artifacts() {
//	    fmt.Println(a.Name, a.Profile.Metric, a.Profile.Mean())
//	}
//
// Experiments run strictly in registration order, one at a time. This
// ordering is an observable contract: a Preprocessor may cache an estimated
// transform keyed by recipe identity so later experiments reuse it, and
// reporting layers rely on a stable, reproducible row order.
//
// Train uses partial-failure semantics. A failing experiment never prevents
// the remaining ones from being attempted; per-experiment failures are
// recorded in the returned Report and the artifacts of the experiments that
// succeeded stay retrievable. Train's error return is reserved for
// registry-level misuse.
package grid
