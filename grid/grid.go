package grid

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/YuminosukeSato/modelgrid/core/model"
	"github.com/YuminosukeSato/modelgrid/pkg/errors"
	"github.com/YuminosukeSato/modelgrid/pkg/log"
	"github.com/YuminosukeSato/modelgrid/recipe"
)

// Experiment is one named variant registered in a Grid: configuration
// overrides layered on the shared settings, plus an optional preprocessing
// recipe. The recipe is an opaque handle; the grid passes it to the
// Preprocessor untouched.
type Experiment struct {
	Name      string
	Overrides Settings
	Recipe    *recipe.Recipe
}

// Artifact is the product of training one experiment: the fitted model, the
// effective configuration it ran with, and its resampled performance profile.
// An Artifact is immutable once produced and replaced wholesale when the
// experiment is re-run.
type Artifact struct {
	Name      string
	Model     model.Fitted
	Effective Settings
	Profile   model.ResampleProfile
	TrainedAt time.Time
}

// Grid is the experiment registry. It owns the shared settings, the
// registered experiments (insertion order preserved), and the artifacts of
// the last run. A Grid is not safe for concurrent use; all mutation happens
// through its methods on a single goroutine.
type Grid struct {
	pre       model.Preprocessor
	trainer   model.Trainer
	shared    Settings
	order     []string
	specs     map[string]Experiment
	artifacts map[string]Artifact
	logger    log.Logger
	observer  Observer
	runID     func() string
}

// New creates an empty grid wired to the given collaborators. The trainer is
// required; the preprocessor may be nil as long as no registered experiment
// carries a recipe.
func New(pre model.Preprocessor, trainer model.Trainer, opts ...Option) *Grid {
	g := &Grid{
		pre:       pre,
		trainer:   trainer,
		shared:    Settings{},
		specs:     make(map[string]Experiment),
		artifacts: make(map[string]Artifact),
		logger:    log.NopLogger{},
		observer:  NopObserver{},
		runID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SetShared replaces the shared settings wholesale. No validation happens
// here; option keys only gain meaning inside the Trainer, so invalid
// combinations surface from Train. Returns the grid for chaining.
func (g *Grid) SetShared(opts Settings) *Grid {
	g.shared = opts.Clone()
	return g
}

// UpdateShared merges the supplied keys into the shared settings, supplied
// keys winning on conflict. Returns the grid for chaining.
func (g *Grid) UpdateShared(opts Settings) *Grid {
	g.shared = Merge(g.shared, opts)
	return g
}

// Shared returns a copy of the current shared settings.
func (g *Grid) Shared() Settings {
	return g.shared.Clone()
}

// Add registers a named experiment. overrides are merged on top of the shared
// settings at run time, override keys winning; rec is optional and passed to
// the Preprocessor untouched. Add never executes anything.
//
// Add fails with *errors.ValidationError for an empty name and
// *errors.DuplicateNameError when the name is taken; the registry is
// unchanged after a failed call.
func (g *Grid) Add(name string, overrides Settings, rec *recipe.Recipe) error {
	if name == "" {
		return errors.NewValidationError("name", "experiment name must not be empty", name)
	}
	if _, exists := g.specs[name]; exists {
		return errors.NewDuplicateNameError(name)
	}

	g.specs[name] = Experiment{
		Name:      name,
		Overrides: overrides.Clone(),
		Recipe:    rec,
	}
	g.order = append(g.order, name)

	steps := 0
	if rec != nil {
		steps = rec.Len()
	}
	g.logger.Debug("experiment registered",
		log.OperationKey, "add",
		log.ExperimentKey, name,
		log.RecipeStepsKey, steps,
	)
	return nil
}

// Remove drops the named experiment and any artifact produced for it. It
// returns *errors.NotFoundError when the name is not registered: silently
// ignoring a typo in a grid of near-identical experiment names is how stale
// artifacts survive.
func (g *Grid) Remove(name string) error {
	if _, exists := g.specs[name]; !exists {
		return errors.NewNotFoundError("Remove", name)
	}

	delete(g.specs, name)
	delete(g.artifacts, name)
	for i, n := range g.order {
		if n == name {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}

	g.logger.Debug("experiment removed",
		log.OperationKey, "remove",
		log.ExperimentKey, name,
	)
	return nil
}

// Names returns the registered experiment names in registration order.
func (g *Grid) Names() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Len returns the number of registered experiments.
func (g *Grid) Len() int {
	return len(g.order)
}

// Train runs every registered experiment in registration order, synchronously
// and one at a time. For each experiment it merges the shared settings with
// the experiment's overrides, applies the recipe through the Preprocessor
// when one is present, fits through the Trainer, and stores the resulting
// Artifact under the experiment's name, overwriting any artifact from a
// previous run.
//
// Train uses partial-failure semantics: a failure in one experiment is
// recorded in the Report and the remaining experiments are still attempted.
// The error return is non-nil only when the run could not start at all: nil
// trainer, a recipe registered without a preprocessor, an empty grid, or a
// context that was already done. Use Report.Err for an aggregate of the
// per-experiment failures.
func (g *Grid) Train(ctx context.Context, data model.Dataset) (*Report, error) {
	if g.trainer == nil {
		return nil, errors.WithStack(errors.ErrNilTrainer)
	}
	if len(g.order) == 0 {
		return nil, errors.WithStack(errors.ErrNoExperiments)
	}
	if g.pre == nil {
		for _, name := range g.order {
			if g.specs[name].Recipe != nil {
				return nil, errors.Wrapf(errors.ErrNilPreprocessor,
					"experiment %q carries a recipe", name)
			}
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	report := &Report{
		RunID:     g.runID(),
		StartedAt: time.Now(),
		Outcomes:  make([]Outcome, 0, len(g.order)),
	}

	samples, features := data.Dims()
	runLogger := g.logger.With(log.RunIDKey, report.RunID)
	runLogger.Info("grid run started",
		log.OperationKey, "train",
		log.GridSizeKey, len(g.order),
		log.SamplesKey, samples,
		log.FeaturesKey, features,
	)

	for _, name := range g.order {
		outcome := g.runOne(ctx, g.specs[name], data, runLogger)
		report.Outcomes = append(report.Outcomes, outcome)
	}

	report.FinishedAt = time.Now()
	runLogger.Info("grid run finished",
		log.OperationKey, "train",
		log.FailedCountKey, len(report.Failed()),
		log.DurationMsKey, report.FinishedAt.Sub(report.StartedAt).Milliseconds(),
	)
	return report, nil
}

// runOne executes a single experiment and returns its outcome. Panics in the
// collaborators are recovered and reported as that experiment's failure.
func (g *Grid) runOne(ctx context.Context, sp Experiment, data model.Dataset, runLogger log.Logger) Outcome {
	started := time.Now()
	effective := Merge(g.shared, sp.Overrides)
	expLogger := runLogger.With(log.ExperimentKey, sp.Name)

	g.observer.BeforeExperiment(sp.Name, effective)

	outcome := Outcome{
		Name:      sp.Name,
		Status:    StatusOK,
		Effective: effective,
	}

	prepared := data
	if sp.Recipe != nil {
		expLogger.Debug("applying recipe",
			log.StageKey, "preprocess",
			log.RecipeStepsKey, sp.Recipe.Len(),
		)
		err := errors.SafeExecute("preprocessor.Apply", func() error {
			var applyErr error
			prepared, applyErr = g.pre.Apply(ctx, sp.Recipe, data, effective)
			return applyErr
		})
		if err != nil {
			outcome.Status = StatusFailed
			outcome.Err = errors.NewPreprocessingError(sp.Name, err)
			outcome.Duration = time.Since(started)
			g.failExperiment(expLogger, outcome, "preprocess")
			return outcome
		}
	}

	var fitted model.Fitted
	var profile model.ResampleProfile
	err := errors.SafeExecute("trainer.Fit", func() error {
		var fitErr error
		fitted, profile, fitErr = g.trainer.Fit(ctx, prepared, effective)
		return fitErr
	})
	if err != nil {
		outcome.Status = StatusFailed
		outcome.Err = errors.NewTrainingError(sp.Name, err)
		outcome.Duration = time.Since(started)
		g.failExperiment(expLogger, outcome, "train")
		return outcome
	}

	outcome.Duration = time.Since(started)
	g.artifacts[sp.Name] = Artifact{
		Name:      sp.Name,
		Model:     fitted,
		Effective: effective.Clone(),
		Profile:   profile,
		TrainedAt: time.Now(),
	}

	expLogger.Info("experiment trained",
		log.StatusKey, string(StatusOK),
		log.MetricKey, profile.Metric,
		log.MetricMeanKey, profile.Mean(),
		log.DurationMsKey, outcome.Duration.Milliseconds(),
	)
	g.observer.AfterExperiment(outcome)
	return outcome
}

// failExperiment records a per-experiment failure without aborting the run.
func (g *Grid) failExperiment(expLogger log.Logger, outcome Outcome, stage string) {
	errors.Warn(errors.NewExperimentFailedWarning(outcome.Name, stage, outcome.Err))
	expLogger.Warn("experiment failed",
		log.StatusKey, string(StatusFailed),
		log.StageKey, stage,
		log.ErrAttrKey, outcome.Err,
	)
	g.observer.AfterExperiment(outcome)
}

// Artifacts returns the artifacts of the last run in registration order of
// their experiments. Experiments that failed (or were never run) are absent.
func (g *Grid) Artifacts() []Artifact {
	out := make([]Artifact, 0, len(g.artifacts))
	for _, name := range g.order {
		if a, ok := g.artifacts[name]; ok {
			out = append(out, a)
		}
	}
	return out
}

// Artifact returns the artifact for the named experiment, or
// *errors.NotFoundError when the experiment is unknown or has not produced
// one.
func (g *Grid) Artifact(name string) (Artifact, error) {
	a, ok := g.artifacts[name]
	if !ok {
		return Artifact{}, errors.NewNotFoundError("Artifact", name)
	}
	return a, nil
}
