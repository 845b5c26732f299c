package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/YuminosukeSato/nbayes/pkg/errors"
)

// TestLoggerInterface tests the Logger interface implementation
func TestLoggerInterface(t *testing.T) {
	testLogger, buffer := NewTestLogger(LevelDebug)

	testLogger.Debug("debug message", "key1", "value1", "number", 42)
	testLogger.Info("info message", OperationKey, "fit")
	testLogger.Warn("warning message", "warning_code", "ZERO_VARIANCE")
	testLogger.Error("error message", "error", errors.ErrEmptyData)

	if buffer.String() == "" {
		t.Fatal("Expected log output, got empty string")
	}

	for _, msg := range []string{"debug message", "info message", "warning message", "error message"} {
		if !testLogger.ContainsMessage(msg) {
			t.Errorf("%q not found in output", msg)
		}
	}

	if !testLogger.ContainsField("key1", "value1") {
		t.Error("Expected field key1=value1 not found")
	}
	if !testLogger.ContainsField("number", 42.0) { // JSON unmarshaling converts numbers to float64
		t.Error("Expected field number=42 not found")
	}
}

// TestLoggerWith tests the With method for context-aware logging
func TestLoggerWith(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelDebug)

	contextLogger := testLogger.With(
		ModelNameKey, "GaussianNB",
		ComponentKey, "naive_bayes",
	)
	contextLogger.Info("contextual message", OperationKey, "predict")

	if !testLogger.ContainsField(ModelNameKey, "GaussianNB") {
		t.Error("Model name context not found")
	}
	if !testLogger.ContainsField(ComponentKey, "naive_bayes") {
		t.Error("Component context not found")
	}
	if !testLogger.ContainsField(OperationKey, "predict") {
		t.Error("Operation field not found")
	}
}

// TestLoggerEnabled tests the Enabled method
func TestLoggerEnabled(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelInfo)
	ctx := context.Background()

	if !testLogger.Enabled(ctx, LevelInfo) {
		t.Error("Logger should be enabled for Info level")
	}
	if !testLogger.Enabled(ctx, LevelError) {
		t.Error("Logger should be enabled for Error level")
	}
	if testLogger.Enabled(ctx, LevelDebug) {
		t.Error("Logger should not be enabled for Debug level")
	}

	testLogger.Debug("this should not appear")
	testLogger.Info("this should appear")

	if testLogger.ContainsMessage("this should not appear") {
		t.Error("Debug message should not appear when level is Info")
	}
	if !testLogger.ContainsMessage("this should appear") {
		t.Error("Info message should appear when level is Info")
	}
}

// TestMLAttributeKeys tests ML-specific attribute keys
func TestMLAttributeKeys(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelInfo)

	testLogger.Info("training completed",
		OperationKey, "fit",
		SamplesKey, 1000,
		FeaturesKey, 10,
		ClassesKey, 3,
		ModelNameKey, "GaussianNB",
		DurationMsKey, 250,
	)

	entries, err := testLogger.GetLogEntries()
	if err != nil {
		t.Fatalf("Failed to parse log entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 log entry, got %d", len(entries))
	}

	// JSON numbers are float64
	expectedFields := map[string]interface{}{
		OperationKey:  "fit",
		SamplesKey:    1000.0,
		FeaturesKey:   10.0,
		ClassesKey:    3.0,
		ModelNameKey:  "GaussianNB",
		DurationMsKey: 250.0,
	}
	for key, expectedValue := range expectedFields {
		if actualValue, exists := entries[0][key]; !exists {
			t.Errorf("Expected field %s not found", key)
		} else if actualValue != expectedValue {
			t.Errorf("Field %s: expected %v, got %v", key, expectedValue, actualValue)
		}
	}
}

// TestGetLoggerWithName tests the slog-backed named logger
func TestGetLoggerWithName(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	defer slog.SetDefault(prev)
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))

	logger := GetLoggerWithName("naive_bayes.gaussian")
	logger.Info("fit complete", SamplesKey, 4)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse slog output: %v", err)
	}
	if entry[ComponentKey] != "naive_bayes.gaussian" {
		t.Errorf("component = %v, want naive_bayes.gaussian", entry[ComponentKey])
	}
	if entry[SamplesKey] != 4.0 {
		t.Errorf("samples = %v, want 4", entry[SamplesKey])
	}
}

// TestErrFmtHandler tests stacktrace extraction from wrapped errors
func TestErrFmtHandler(t *testing.T) {
	var buf bytes.Buffer
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(&buf, nil))
	logger := slog.New(handler)

	err := errors.New("boom")
	logger.Error("operation failed", ErrAttr(err))

	var entry map[string]interface{}
	if jsonErr := json.Unmarshal(buf.Bytes(), &entry); jsonErr != nil {
		t.Fatalf("failed to parse output: %v", jsonErr)
	}
	stacktrace, ok := entry[StacktraceAttrKey].(string)
	if !ok || stacktrace == "" {
		t.Fatal("stacktrace attribute missing")
	}
	if !strings.Contains(stacktrace, "integration_test.go") {
		t.Errorf("stacktrace should reference the call site, got: %s", stacktrace)
	}
}

// TestToLogLevel tests level string parsing
func TestToLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		if got := ToLogLevel(tt.in); got != tt.want {
			t.Errorf("ToLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("invalid level should panic")
		}
	}()
	ToLogLevel("bogus")
}

// TestEnableZerologWarnings tests the structured warning bridge
func TestEnableZerologWarnings(t *testing.T) {
	var buf bytes.Buffer
	EnableZerologWarnings(&buf)
	defer errors.SetZerologWarnFunc(nil)

	errors.Warn(&errors.ZeroVarianceWarning{
		Model:      "GaussianNB",
		ClassIndex: 0,
		Feature:    2,
		Variance:   0,
	})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse zerolog output: %v", err)
	}
	if entry["level"] != "warn" {
		t.Errorf("level = %v, want warn", entry["level"])
	}
	if entry["model"] != "GaussianNB" {
		t.Errorf("model = %v, want GaussianNB", entry["model"])
	}
	if entry["feature"] != 2.0 {
		t.Errorf("feature = %v, want 2", entry["feature"])
	}
}
