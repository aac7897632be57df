package log

import (
	"bytes"
	"context"
	"strings"
	"testing"

	moerrors "github.com/Vacek-Ace/moe/pkg/errors"
)

func TestTestLoggerCapture(t *testing.T) {
	logger, buffer := NewTestLogger(LevelDebug)

	logger.Info("search started", CandidatesKey, 3, FoldsKey, 5)
	logger.Debug("fold split", "fold", 0)

	out := buffer.String()
	if !strings.Contains(out, "search started") {
		t.Errorf("missing info message in output: %q", out)
	}
	if !strings.Contains(out, "search.candidates=3") {
		t.Errorf("missing candidates attribute in output: %q", out)
	}
	if !strings.Contains(out, "DEBUG fold split") {
		t.Errorf("missing debug message in output: %q", out)
	}
}

func TestTestLoggerLevelFiltering(t *testing.T) {
	logger, buffer := NewTestLogger(LevelWarn)

	logger.Info("should be dropped")
	logger.Warn("kept")

	out := buffer.String()
	if strings.Contains(out, "should be dropped") {
		t.Errorf("info message leaked through warn-level logger: %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("warn message missing: %q", out)
	}
}

func TestTestLoggerWith(t *testing.T) {
	logger, buffer := NewTestLogger(LevelInfo)

	scoped := logger.With(ComponentKey, "model_selection")
	scoped.Info("fitting")

	if !strings.Contains(buffer.String(), "ml.component=model_selection") {
		t.Errorf("With() field missing: %q", buffer.String())
	}

	if !scoped.Enabled(context.Background(), LevelError) {
		t.Error("Enabled(LevelError) = false, want true")
	}
}

func TestInstallZerologWarnings(t *testing.T) {
	var buf bytes.Buffer
	InstallZerologWarnings(&buf)
	defer moerrors.SetZerologWarnFunc(nil)

	moerrors.Warn(moerrors.NewUndefinedMetricWarning("matthews_corrcoef", "a zero denominator", 0.0))

	out := buf.String()
	if !strings.Contains(out, "matthews_corrcoef") {
		t.Errorf("structured warning fields missing: %q", out)
	}
	if !strings.Contains(out, "UndefinedMetricWarning") {
		t.Errorf("warning type missing: %q", out)
	}
}
