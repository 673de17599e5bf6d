package debug

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// captureStderr runs fn with stderr redirected and returns what was written.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stderr = w

	fn()

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestSetDebug(t *testing.T) {
	SetDebug(false)
	if IsEnabled() {
		t.Error("Debug should be disabled after SetDebug(false)")
	}

	SetDebug(true)
	if !IsEnabled() {
		t.Error("Debug should be enabled after SetDebug(true)")
	}

	SetDebug(false)
	if IsEnabled() {
		t.Error("Debug should be disabled again")
	}
}

func TestDebugOutput(t *testing.T) {
	output := captureStderr(t, func() {
		SetDebug(true)
		SetNoColor(true)
		Debug("normalized %d node(s)", 7)
	})
	SetDebug(false)

	if !strings.Contains(output, "[DEBUG]") {
		t.Errorf("Output should contain [DEBUG] prefix, got: %s", output)
	}
	if !strings.Contains(output, "normalized 7 node(s)") {
		t.Errorf("Output should contain formatted message, got: %s", output)
	}
}

func TestDebugDisabled(t *testing.T) {
	output := captureStderr(t, func() {
		SetDebug(false)
		Debug("this should not appear")
	})

	if output != "" {
		t.Errorf("Debug output should be empty when disabled, got: %s", output)
	}
}

func TestDebugSection(t *testing.T) {
	output := captureStderr(t, func() {
		SetDebug(true)
		SetNoColor(true)
		DebugSection("Build pages")
	})
	SetDebug(false)

	if !strings.Contains(output, "=== Build pages ===") {
		t.Errorf("Output should contain section header, got: %s", output)
	}
}

func TestDebugValue(t *testing.T) {
	output := captureStderr(t, func() {
		SetDebug(true)
		SetNoColor(true)
		DebugValue("pages", 3)
	})
	SetDebug(false)

	if !strings.Contains(output, "pages = 3") {
		t.Errorf("Output should contain key = value, got: %s", output)
	}
}
