package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "taskpad.log")

	logger, file, err := New(Options{Level: "info", Path: path, Prefix: "taskpad"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Info("starting", "tasks", 3)
	if err := file.Close(); err != nil {
		t.Fatalf("close log file: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "starting") {
		t.Errorf("log file does not contain message: %q", data)
	}
}

func TestNewLevelFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskpad.log")

	logger, file, err := New(Options{Level: "warn", Path: path})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Info("quiet")
	logger.Warn("loud")
	if err := file.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "quiet") {
		t.Error("info message logged despite warn level")
	}
	if !strings.Contains(string(data), "loud") {
		t.Error("warn message missing from log")
	}
}

func TestNewBadLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskpad.log")

	if _, _, err := New(Options{Level: "shouty", Path: path}); err == nil {
		t.Fatal("New accepted invalid level, want error")
	}
}
