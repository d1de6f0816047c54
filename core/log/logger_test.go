// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger configuration, level filtering, derived
//              loggers, formatters and the timer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-10-18
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation
// - 2026-10-03 v0.1.1: Timer and severity mapping tests
// - 2026-10-18 v0.1.2: SetLevel, Trace and error-carrying entries

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/extkit/core/error"
)

func TestNew(t *testing.T) {
	logger := New()

	if logger == nil {
		t.Fatal("New() should not return nil")
	}

	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}

	if logger.contextFields == nil {
		t.Error("New() should initialize context fields")
	}
}

func TestNewWithConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelError,
		Format: FormatText,
		Output: &buf,
		Name:   "test-logger",
	})

	if logger.GetLevel() != LevelError {
		t.Errorf("NewWithConfig() level = %v, want %v", logger.GetLevel(), LevelError)
	}

	logger.Warn("filtered")
	if buf.Len() != 0 {
		t.Errorf("Warn below level wrote %q", buf.String())
	}

	logger.Error("written")
	if !strings.Contains(buf.String(), "{test-logger} written") {
		t.Errorf("Error output = %q, want logger name and message", buf.String())
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelDebug, Format: FormatJSON, Output: &buf}).
		WithName("tablex").
		WithCorrelationID("run-1").
		WithField("table", "people")

	logger.Debug("column added", Fields{"column": "Age"})

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}

	want := map[string]interface{}{
		"level":          "debug",
		"message":        "column added",
		"logger":         "tablex",
		"correlation_id": "run-1",
		"table":          "people",
		"column":         "Age",
	}
	for k, v := range want {
		if data[k] != v {
			t.Errorf("%s = %v, want %v", k, data[k], v)
		}
	}
}

func TestDerivedLoggersAreIndependent(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithConfig(Config{Level: LevelInfo, Format: FormatLogfmt, Output: &buf})
	child := base.WithField("component", "csv")

	base.Info("from base")
	if strings.Contains(buf.String(), "component") {
		t.Errorf("base logger picked up child field: %q", buf.String())
	}

	buf.Reset()
	child.Info("from child")
	if !strings.Contains(buf.String(), `component="csv"`) {
		t.Errorf("child output = %q, want component field", buf.String())
	}
}

func TestAuditAlwaysLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelFatal, Format: FormatText, Output: &buf})

	logger.Audit("snapshot deleted")
	if !strings.Contains(buf.String(), "[AUD] snapshot deleted") {
		t.Errorf("Audit output = %q", buf.String())
	}
}

func TestLogErrorUsesSeverity(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
	}{
		{"low severity", mdwerror.New("bad marker").WithCode(mdwerror.CodeInvalidInput), "info"},
		{"medium severity", mdwerror.New("odd").WithSeverity(mdwerror.SeverityMedium), "warn"},
		{"high severity", mdwerror.New("db").WithCode(mdwerror.CodeDatabaseError), "error"},
		{"plain error", errors.New("plain"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewWithConfig(Config{Level: LevelTrace, Format: FormatJSON, Output: &buf})

			logger.LogError(tt.err)

			var data map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
				t.Fatalf("output is not JSON: %v", err)
			}
			if data["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", data["level"], tt.wantLevel)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{" WARNING ", LevelWarn, false},
		{"err", LevelError, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("logfmt"); err != nil || f != FormatLogfmt {
		t.Errorf("ParseFormat(logfmt) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) error = nil, want error")
	}
}

func TestTextFormatterSortsFields(t *testing.T) {
	f := &TextFormatter{DisableTimestamp: true}
	entry := NewEntry(LevelInfo, "row padded")
	entry.Fields = Fields{"b": 2, "a": 1}

	out, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if got, want := string(out), "[INF] row padded [a=1 b=2]\n"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestTimer(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelDebug, Format: FormatLogfmt, Output: &buf})

	timer := logger.StartTimer("save_snapshot")
	timer.Stop()

	if !strings.Contains(buf.String(), `message="save_snapshot completed"`) {
		t.Errorf("timer output = %q", buf.String())
	}
	if timer.Stop() != 0 {
		t.Error("second Stop() should return 0")
	}

	buf.Reset()
	logger.StartTimer("load_snapshot").StopWithError(errors.New("locked"))
	if !strings.Contains(buf.String(), "level=error") || !strings.Contains(buf.String(), `error="locked"`) {
		t.Errorf("failed timer output = %q", buf.String())
	}
}

func TestSetLevelAndTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelInfo, Format: FormatLogfmt, Output: &buf}).
		WithFields(Fields{"file": "people.csv", "separator": ";"})

	logger.Trace("csv targets resolved")
	if buf.Len() != 0 {
		t.Fatalf("Trace at info level wrote %q", buf.String())
	}

	logger.SetLevel(LevelTrace)
	if logger.GetLevel() != LevelTrace {
		t.Fatalf("GetLevel() = %v, want %v", logger.GetLevel(), LevelTrace)
	}

	logger.Trace("csv targets resolved")
	for _, want := range []string{"level=trace", `file="people.csv"`, `separator=";"`} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output = %q, want %s", buf.String(), want)
		}
	}
}

func TestWithErrLevels(t *testing.T) {
	tests := []struct {
		name      string
		logFn     func(*Logger, error)
		wantLevel string
	}{
		{"warn", func(l *Logger, err error) { l.WarnWithErr("config reload failed", err) }, "warn"},
		{"error", func(l *Logger, err error) { l.ErrorWithErr("command failed", err) }, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewWithConfig(Config{Level: LevelDebug, Format: FormatJSON, Output: &buf})

			tt.logFn(logger, errors.New("toml: bare keys cannot contain '['"))

			var data map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
				t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
			}
			if data["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", data["level"], tt.wantLevel)
			}
			if !strings.Contains(buf.String(), "bare keys") {
				t.Errorf("output = %q, want the error text", buf.String())
			}
		})
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("dropped")
	if logger.IsLevelEnabled(LevelError) {
		t.Error("Discard() logger should not enable error level")
	}
}
