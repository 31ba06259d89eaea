package grid

import (
	"time"

	"github.com/YuminosukeSato/modelgrid/pkg/errors"
)

// Status is the outcome of one experiment within a run.
type Status string

const (
	// StatusOK means the experiment produced an artifact.
	StatusOK Status = "ok"
	// StatusFailed means preprocessing or training failed; the error in the
	// Outcome says which.
	StatusFailed Status = "failed"
)

// Outcome records what happened to one experiment during a Train call.
type Outcome struct {
	// Name is the experiment's registered name.
	Name string

	// Status is StatusOK or StatusFailed.
	Status Status

	// Err is the PreprocessingError or TrainingError for a failed
	// experiment, nil otherwise.
	Err error

	// Duration covers preprocessing and fitting for this experiment.
	Duration time.Duration

	// Effective is the merged configuration the experiment ran with.
	Effective Settings
}

// Report summarizes one Train call: every registered experiment in
// registration order, whether it succeeded, and how long it took. A Report
// with failures still coexists with the artifacts of the experiments that
// succeeded; retrieve those through Grid.Artifacts as usual.
type Report struct {
	// RunID uniquely identifies this Train invocation. Log records emitted
	// during the run carry the same ID.
	RunID string

	// StartedAt and FinishedAt bound the whole run.
	StartedAt  time.Time
	FinishedAt time.Time

	// Outcomes holds one entry per registered experiment, in registration order.
	Outcomes []Outcome
}

// Succeeded returns the outcomes of experiments that produced artifacts, in
// registration order.
func (r *Report) Succeeded() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Status == StatusOK {
			out = append(out, o)
		}
	}
	return out
}

// Failed returns the outcomes of failed experiments, in registration order.
func (r *Report) Failed() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Status == StatusFailed {
			out = append(out, o)
		}
	}
	return out
}

// Outcome returns the outcome for the named experiment.
func (r *Report) Outcome(name string) (Outcome, error) {
	for _, o := range r.Outcomes {
		if o.Name == name {
			return o, nil
		}
	}
	return Outcome{}, errors.NewNotFoundError("Report.Outcome", name)
}

// Err aggregates the failures of the run into a single error, nil when every
// experiment succeeded. Each per-experiment error remains reachable through
// errors.As on the combined error.
func (r *Report) Err() error {
	var err error
	for _, o := range r.Outcomes {
		if o.Status == StatusFailed {
			err = errors.CombineErrors(err, o.Err)
		}
	}
	return err
}
