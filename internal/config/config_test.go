package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "tcrdo.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.TaskFile != "tasks.md" {
		t.Errorf("TaskFile = %q, want tasks.md", cfg.TaskFile)
	}
	if cfg.ExportFile != "tasks.json" {
		t.Errorf("ExportFile = %q, want tasks.json", cfg.ExportFile)
	}
	if cfg.TestCommand != "" || cfg.LogFile != "" {
		t.Errorf("cfg = %+v, want empty command and log file", cfg)
	}
}

func TestLoad_ParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tcrdo.toml")
	content := `
task_file = "todo.md"
export_file = "out/tasks.json"
log_file = "tcrdo.log"
test_command = "go test ./..."
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.TaskFile != "todo.md" {
		t.Errorf("TaskFile = %q", cfg.TaskFile)
	}
	if cfg.ExportFile != "out/tasks.json" {
		t.Errorf("ExportFile = %q", cfg.ExportFile)
	}
	if cfg.LogFile != "tcrdo.log" {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
	if cfg.TestCommand != "go test ./..." {
		t.Errorf("TestCommand = %q", cfg.TestCommand)
	}
}

func TestLoad_PartialFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tcrdo.toml")
	if err := os.WriteFile(path, []byte(`test_command = "make check"`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.TaskFile != "tasks.md" || cfg.ExportFile != "tasks.json" {
		t.Errorf("cfg = %+v, want default paths", cfg)
	}
	if cfg.TestCommand != "make check" {
		t.Errorf("TestCommand = %q", cfg.TestCommand)
	}
}

func TestLoad_BadTOMLIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tcrdo.toml")
	if err := os.WriteFile(path, []byte("task_file = [broken"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() succeeded on invalid TOML")
	}
	if !strings.Contains(err.Error(), "parse config file") {
		t.Errorf("error = %v", err)
	}
}
