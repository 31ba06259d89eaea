package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/YuminosukeSato/modelgrid/pkg/errors"
)

func TestTestLoggerCapture(t *testing.T) {
	logger, _ := NewTestLogger(LevelDebug)

	logger.Info("experiment trained",
		ExperimentKey, "glm_pca",
		MetricKey, "AUC",
	)
	logger.Debug("applying recipe", RecipeStepsKey, 3)

	entries, err := logger.GetLogEntries()
	if err != nil {
		t.Fatalf("GetLogEntries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("captured %d entries, want 2", len(entries))
	}

	if !logger.ContainsMessage("experiment trained") {
		t.Error("expected message to be captured")
	}
	if !logger.ContainsField(ExperimentKey, "glm_pca") {
		t.Error("expected experiment.name field to be captured")
	}
}

func TestTestLoggerLevelFiltering(t *testing.T) {
	logger, _ := NewTestLogger(LevelWarn)

	logger.Debug("dropped")
	logger.Info("dropped too")
	logger.Warn("kept")

	entries, err := logger.GetLogEntries()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("captured %d entries, want 1", len(entries))
	}
	if entries[0]["message"] != "kept" {
		t.Errorf("message = %v, want kept", entries[0]["message"])
	}
}

func TestTestLoggerWith(t *testing.T) {
	logger, _ := NewTestLogger(LevelInfo)
	runLogger := logger.With(RunIDKey, "run-42")

	runLogger.Info("grid run started", GridSizeKey, 3)

	tl, ok := runLogger.(*TestLogger)
	if !ok {
		t.Fatal("With should return a *TestLogger")
	}
	if !tl.ContainsField(RunIDKey, "run-42") {
		t.Error("pre-populated run.id should appear in log entries")
	}
}

func TestSlogLoggerRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlogLogger(slog.New(WrapByErrFmtHandler(handler)))

	logger.Info("experiment failed",
		ExperimentKey, "rf_corr90",
		ErrAttrKey, errors.NewTrainingError("rf_corr90", errors.New("boom")),
	)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v\n%s", err, buf.String())
	}
	if entry[ExperimentKey] != "rf_corr90" {
		t.Errorf("experiment.name = %v, want rf_corr90", entry[ExperimentKey])
	}
	if _, ok := entry[ErrAttrKey]; !ok {
		t.Error("error attribute missing from log entry")
	}
}

func TestNopLogger(t *testing.T) {
	logger := NopLogger{}
	// いずれの呼び出しもパニックしないこと
	logger.Debug("x")
	logger.Info("x", "k", "v")
	logger.Warn("x")
	logger.Error("x", ErrAttrKey, errors.New("boom"))
	if logger.Enabled(context.Background(), LevelError) {
		t.Error("NopLogger should report disabled at every level")
	}
	if logger.With("k", "v").Enabled(context.Background(), LevelInfo) {
		t.Error("With should keep discarding")
	}
}
