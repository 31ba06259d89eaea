package model

import "math"

// ResampleProfile is the performance report a Trainer returns alongside a
// fitted model: the distribution of one named scalar metric across resamples
// (cross-validation folds, bootstrap repeats). The grid stores it verbatim in
// the experiment's Artifact; computing the scores is entirely the Trainer's
// concern.
type ResampleProfile struct {
	// Metric names the scalar being reported, e.g. "AUC" or "RMSE".
	Metric string

	// Scores holds one value per resample, in resample order.
	Scores []float64
}

// Mean returns the mean score across resamples, 0 when empty.
func (p ResampleProfile) Mean() float64 {
	if len(p.Scores) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, score := range p.Scores {
		sum += score
	}
	return sum / float64(len(p.Scores))
}

// Std returns the sample standard deviation of the scores, 0 with fewer than
// two resamples.
func (p ResampleProfile) Std() float64 {
	if len(p.Scores) <= 1 {
		return 0.0
	}

	mean := p.Mean()
	sumSq := 0.0
	for _, score := range p.Scores {
		diff := score - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(p.Scores)-1))
}
