package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/YuminosukeSato/sparsego/pkg/errors"
)

// TestLoggerInterface tests the Logger interface implementation
func TestLoggerInterface(t *testing.T) {
	testLogger, buffer := NewTestLogger(LevelDebug)

	testLogger.Debug("debug message", "key1", "value1", "number", 42)
	testLogger.Info("info message", OperationKey, OperationDecode)
	testLogger.Warn("warning message", "warning_code", "UNSORTED")
	testLogger.Error("error message", fmt.Errorf("test error"), SourceKey, "train.svm")

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
	if !testLogger.ContainsField(ErrAttrKey, "test error") {
		t.Error("Expected error field not found")
	}
}

// TestLoggerWith tests the With method for context-aware logging
func TestLoggerWith(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelDebug)

	contextLogger := testLogger.With(
		ComponentKey, "libsvm",
		SourceKey, "train.svm",
	)
	contextLogger.Info("decoded", ColsKey, 10, RowsKey, 11)

	if !testLogger.ContainsField(ComponentKey, "libsvm") {
		t.Error("Component context not found")
	}
	if !testLogger.ContainsField(ColsKey, 10.0) {
		t.Error("cols field not found")
	}
}

// TestLoggerEnabled tests the Enabled method
func TestLoggerEnabled(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelInfo)
	ctx := context.Background()

	if !testLogger.Enabled(ctx, LevelInfo) {
		t.Error("Logger should be enabled for Info level")
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

func TestGlobalProvider(t *testing.T) {
	provider, buffer := NewTestLoggerProvider(LevelDebug)
	SetLoggerProvider(provider)
	defer SetLoggerProvider(NewSlogProvider(&bytes.Buffer{}, LevelInfo))

	GetLogger().Debug("global message")
	GetLoggerWithName("sparse").Debug("named message", NNZKey, 5)

	out := buffer.String()
	if !strings.Contains(out, "global message") || !strings.Contains(out, "named message") {
		t.Fatalf("messages missing from provider output: %s", out)
	}
	if !provider.Logger().ContainsField(ComponentKey, "sparse") {
		t.Error("component name not found in named logger output")
	}
}

func TestSlogProvider(t *testing.T) {
	var buf bytes.Buffer
	p := NewSlogProvider(&buf, LevelInfo)
	logger := p.GetLoggerWithName("libsvm")

	logger.Debug("hidden")
	logger.Error("decode failed", errors.NewFormatError("a.svm", 2, "x", "bad token", nil), LinesKey, 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug record should be filtered at info level")
	}

	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &entry); err != nil {
		t.Fatalf("output is not a single JSON record: %v\n%s", err, out)
	}
	if entry["severity"] != "ERROR" {
		t.Errorf("severity = %v, want ERROR", entry["severity"])
	}
	if entry["message"] != "decode failed" {
		t.Errorf("message = %v", entry["message"])
	}
	if _, ok := entry[StacktraceAttrKey]; !ok {
		t.Error("expected stacktrace attribute for an error carrying a stack")
	}
	if entry[ErrorTypeKey] != "*errors.FormatError" {
		t.Errorf("error type = %v", entry[ErrorTypeKey])
	}

	p.SetLevel(LevelDebug)
	if !logger.Enabled(context.Background(), LevelDebug) {
		t.Error("SetLevel should lower the threshold of existing loggers")
	}
}

func TestZerologProvider(t *testing.T) {
	var buf bytes.Buffer
	p := NewZerologProvider(&buf, LevelDebug)
	logger := p.GetLogger().With(ComponentKey, "sparse")

	logger.Debug("transposed", RowsKey, 3, ColsKey, 4)
	logger.Error("multiply failed", errors.NewDimensionError("Mul", 4, 3, 0))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 records, got %d: %s", len(lines), buf.String())
	}

	var first map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatal(err)
	}
	if first["level"] != "debug" || first[RowsKey] != 3.0 || first[ComponentKey] != "sparse" {
		t.Errorf("unexpected first record: %v", first)
	}

	var second map[string]interface{}
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatal(err)
	}
	detail, ok := second["detail"].(map[string]interface{})
	if !ok || detail["type"] != "DimensionError" {
		t.Errorf("expected structured error detail, got %v", second)
	}
}

func TestZerologRouteWarnings(t *testing.T) {
	var buf bytes.Buffer
	p := NewZerologProvider(&buf, LevelDebug)
	p.RouteWarnings()
	defer errors.SetZerologWarnFunc(nil)

	errors.Warn(errors.NewUnsortedColumnWarning("libsvm.Encode", 3))

	out := buf.String()
	if !strings.Contains(out, `"type":"UnsortedColumnWarning"`) || !strings.Contains(out, `"column":3`) {
		t.Errorf("warning not routed to zerolog: %s", out)
	}
}

func TestToLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"error", LevelError, false},
		{"verbose", LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ToLogLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ToLogLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ToLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
