package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_EmptyPathIsNoop(t *testing.T) {
	logger, closeFn, err := New("")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info("goes nowhere")
	if err := closeFn(); err != nil {
		t.Errorf("close error = %v", err)
	}
}

func TestNew_WritesLogfmtToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tcrdo.log")

	logger, closeFn, err := New(path)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info("added task", "task", "Write docs")
	if err := closeFn(); err != nil {
		t.Fatalf("close error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "added task") || !strings.Contains(string(data), "Write docs") {
		t.Errorf("log content = %q", data)
	}
}

func TestNew_UnwritablePathIsAnError(t *testing.T) {
	if _, _, err := New(filepath.Join(t.TempDir(), "no", "such", "dir", "x.log")); err == nil {
		t.Fatal("New() succeeded on an unwritable path")
	}
}
