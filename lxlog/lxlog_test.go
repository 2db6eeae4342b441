package lxlog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewStderrOnly(t *testing.T) {
	logger, err := New("lxinfo-test", InfoLevelStr, "", false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if logger.Logger == nil {
		t.Fatal("New returned a nil sugared logger")
	}

	logger.Logger.Infow("stderr only smoke", "key", "value")
}

func TestNewUnknownLevel(t *testing.T) {
	if _, err := New("lxinfo-test", "loud", "", false); err == nil {
		t.Error("unknown level produced no error")
	}
}

func TestNewLevels(t *testing.T) {
	for _, level := range []string{DebugLevelStr, InfoLevelStr, WarningLevelStr, ErrorLevelStr} {
		if _, err := New("lxinfo-test", level, "", false); err != nil {
			t.Errorf("New(%q) failed: %v", level, err)
		}
	}
}

func TestNewWithRotatingFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "lxinfo.log")

	logger, err := New("lxinfo-test", DebugLevelStr, file, true)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Logger.Infow("file sink smoke", "key", 1)

	if _, err := os.Stat(file); err != nil {
		t.Errorf("log file was not created: %v", err)
	}
}
