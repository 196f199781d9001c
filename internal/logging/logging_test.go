package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"runcalc/internal/config"
)

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "runcalc.log")

	logger, closer, err := New(config.LoggingConfig{Level: "debug", File: path})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", logger.GetLevel())
	}

	logger.WithField("mode", "vdot").Debug("calculated")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "mode=vdot") {
		t.Errorf("log file %q missing field", string(data))
	}
}

func TestNew_Disabled(t *testing.T) {
	for _, file := range []string{"", config.LogFileNone} {
		logger, closer, err := New(config.LoggingConfig{File: file})
		if err != nil {
			t.Fatalf("New(%q) error: %v", file, err)
		}
		if logger.GetLevel() != logrus.InfoLevel {
			t.Errorf("default level = %v, want info", logger.GetLevel())
		}
		if err := closer.Close(); err != nil {
			t.Errorf("Close() error: %v", err)
		}
	}
}

func TestNew_BadLevel(t *testing.T) {
	if _, _, err := New(config.LoggingConfig{Level: "chatty"}); err == nil {
		t.Error("expected error for unknown level")
	}
}
