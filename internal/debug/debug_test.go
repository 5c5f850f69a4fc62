package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLog_WritesAfterInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")

	if err := Init(path); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { Close() })

	if !Enabled() {
		t.Fatal("Enabled() = false after Init, want true")
	}

	Log("activate %s", "viewA.top == viewB.top + 0")
	Log("reject %d", 1)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	got := string(data)
	if !strings.Contains(got, "activate viewA.top == viewB.top + 0") {
		t.Errorf("log = %q, want activate line", got)
	}
	if !strings.Contains(got, "reject 1") {
		t.Errorf("log = %q, want reject line", got)
	}
	if n := strings.Count(got, "\n"); n != 2 {
		t.Errorf("log has %d lines, want 2", n)
	}
}

func TestLog_NoopAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	Log("dropped")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(data) != 0 {
		t.Errorf("log = %q, want empty", data)
	}
	if err := Close(); err != nil {
		t.Errorf("second Close() error = %v, want nil", err)
	}
}
