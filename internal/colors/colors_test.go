package colors

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w
	defer func() { os.Stderr = oldStderr }()

	fn()
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	defer func() { os.Stdout = oldStdout }()

	fn()
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestError(t *testing.T) {
	output := captureStderr(t, func() { Error("something went wrong") })
	if !strings.Contains(output, "Error:") {
		t.Errorf("Error output missing 'Error:' prefix: %q", output)
	}
	if !strings.Contains(output, "something went wrong") {
		t.Errorf("Error output missing message: %q", output)
	}
	if !strings.Contains(output, "\033[0;31m") {
		t.Errorf("Error output missing red color code: %q", output)
	}
}

func TestSuccess(t *testing.T) {
	output := captureStdout(t, func() { Success("exchange completed") })
	if !strings.Contains(output, "✓") {
		t.Errorf("Success output missing checkmark: %q", output)
	}
	if !strings.Contains(output, "exchange completed") {
		t.Errorf("Success output missing message: %q", output)
	}
	if !strings.Contains(output, "\033[0;32m") {
		t.Errorf("Success output missing green color code: %q", output)
	}
}

func TestWarning(t *testing.T) {
	output := captureStderr(t, func() { Warning("fill level high") })
	if !strings.Contains(output, "Warning:") {
		t.Errorf("Warning output missing 'Warning:' prefix: %q", output)
	}
	if !strings.Contains(output, "fill level high") {
		t.Errorf("Warning output missing message: %q", output)
	}
	if !strings.Contains(output, "\033[1;33m") {
		t.Errorf("Warning output missing yellow color code: %q", output)
	}
}

func TestInfo(t *testing.T) {
	output := captureStdout(t, func() { Info("refresh started") })
	if !strings.Contains(output, "refresh started") {
		t.Errorf("Info output missing message: %q", output)
	}
	if !strings.Contains(output, "\033[0;36m") {
		t.Errorf("Info output missing cyan color code: %q", output)
	}
}

func TestDebugRespectsFlag(t *testing.T) {
	SetDebug(false)
	output := captureStderr(t, func() { Debug("hidden") })
	if strings.Contains(output, "hidden") {
		t.Errorf("Debug printed while disabled: %q", output)
	}

	SetDebug(true)
	defer SetDebug(false)
	output = captureStderr(t, func() { Debug("visible") })
	if !strings.Contains(output, "Debug:") || !strings.Contains(output, "visible") {
		t.Errorf("Debug output missing while enabled: %q", output)
	}
}

type recordingLogger struct {
	level string
	msg   string
}

func (l *recordingLogger) Debug(msg string, args ...any) { l.level, l.msg = "debug", msg }
func (l *recordingLogger) Info(msg string, args ...any)  { l.level, l.msg = "info", msg }
func (l *recordingLogger) Warn(msg string, args ...any)  { l.level, l.msg = "warn", msg }
func (l *recordingLogger) Error(msg string, args ...any) { l.level, l.msg = "error", msg }

func TestConsoleOutputMirrorsToLogger(t *testing.T) {
	rec := &recordingLogger{}
	SetLogger(rec)
	defer SetLogger(nil)

	_ = captureStderr(t, func() { Warning("low disk") })
	if rec.level != "warn" || rec.msg != "low disk" {
		t.Errorf("expected warn mirror, got %s %q", rec.level, rec.msg)
	}

	_ = captureStdout(t, func() { Success("done") })
	if rec.level != "info" || rec.msg != "done" {
		t.Errorf("expected info mirror, got %s %q", rec.level, rec.msg)
	}
}
