package model

import "testing"

type glmOptions struct {
	Metric string  `grid:"metric"`
	Folds  int     `grid:"folds"`
	Lambda float64 `grid:"lambda"`
	Seed   int64   `grid:"seed"`
}

func TestDecodeOptions(t *testing.T) {
	effective := map[string]any{
		KeyMetric: "AUC",
		KeyFolds:  5,
		"lambda":  0.01,
		KeySeed:   42,
		// ignored: keys meant for other trainers
		"num_trees": 500,
	}

	var opts glmOptions
	if err := DecodeOptions(effective, &opts); err != nil {
		t.Fatalf("DecodeOptions failed: %v", err)
	}

	if opts.Metric != "AUC" {
		t.Errorf("Metric = %q, want AUC", opts.Metric)
	}
	if opts.Folds != 5 {
		t.Errorf("Folds = %d, want 5", opts.Folds)
	}
	if opts.Lambda != 0.01 {
		t.Errorf("Lambda = %v, want 0.01", opts.Lambda)
	}
	if opts.Seed != 42 {
		t.Errorf("Seed = %d, want 42", opts.Seed)
	}
}

func TestDecodeOptionsWeaklyTyped(t *testing.T) {
	// YAMLや環境変数由来の文字列値も数値フィールドへデコードできること
	effective := map[string]any{
		"folds":  "10",
		"lambda": "0.5",
	}

	var opts glmOptions
	if err := DecodeOptions(effective, &opts); err != nil {
		t.Fatalf("DecodeOptions failed: %v", err)
	}
	if opts.Folds != 10 {
		t.Errorf("Folds = %d, want 10", opts.Folds)
	}
	if opts.Lambda != 0.5 {
		t.Errorf("Lambda = %v, want 0.5", opts.Lambda)
	}
}

func TestDecodeOptionsInvalidValue(t *testing.T) {
	effective := map[string]any{
		"folds": "not a number",
	}

	var opts glmOptions
	if err := DecodeOptions(effective, &opts); err == nil {
		t.Error("expected decode error for non-numeric folds")
	}
}
