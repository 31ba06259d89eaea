package model

import (
	"math"
	"testing"
)

func TestResampleProfileMean(t *testing.T) {
	tests := []struct {
		name      string
		scores    []float64
		want      float64
		tolerance float64
	}{
		{
			name:      "typical fold scores",
			scores:    []float64{0.80, 0.85, 0.90},
			want:      0.85,
			tolerance: 1e-10,
		},
		{
			name:      "single score",
			scores:    []float64{0.7},
			want:      0.7,
			tolerance: 1e-10,
		},
		{
			name:      "empty",
			scores:    nil,
			want:      0.0,
			tolerance: 1e-10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ResampleProfile{Metric: "AUC", Scores: tt.scores}
			if got := p.Mean(); math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("Mean() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResampleProfileStd(t *testing.T) {
	tests := []struct {
		name      string
		scores    []float64
		want      float64
		tolerance float64
	}{
		{
			name:      "known sample std",
			scores:    []float64{2, 4, 4, 4, 5, 5, 7, 9},
			want:      math.Sqrt(32.0 / 7.0), // sample variance with n-1
			tolerance: 1e-10,
		},
		{
			name:      "identical scores",
			scores:    []float64{0.5, 0.5, 0.5},
			want:      0.0,
			tolerance: 1e-10,
		},
		{
			name:      "single score has no spread",
			scores:    []float64{0.9},
			want:      0.0,
			tolerance: 1e-10,
		},
		{
			name:      "empty",
			scores:    nil,
			want:      0.0,
			tolerance: 1e-10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ResampleProfile{Metric: "RMSE", Scores: tt.scores}
			if got := p.Std(); math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("Std() = %v, want %v", got, tt.want)
			}
		})
	}
}
