package applog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crest.log")
	logger, closeLog, err := New(false, path)
	if err != nil {
		t.Fatal(err)
	}
	logger.Info().Str("component", "test").Msg("hello from the test")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello from the test") {
		t.Errorf("log file missing message, got: %s", data)
	}
}

func TestNewDebugLowersLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crest.log")
	logger, closeLog, err := New(true, path)
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug().Msg("debug visible")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "debug visible") {
		t.Error("debug message was filtered at debug level")
	}

	quiet, closeQuiet, err := New(false, path+".2")
	if err != nil {
		t.Fatal(err)
	}
	quiet.Debug().Msg("should be filtered")
	closeQuiet()
	data, err = os.ReadFile(path + ".2")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "should be filtered") {
		t.Error("debug message leaked at info level")
	}
}

func TestNewBadPathFails(t *testing.T) {
	_, _, err := New(false, filepath.Join(t.TempDir(), "missing", "dir", "crest.log"))
	if err == nil {
		t.Error("expected error for unwritable log path")
	}
}
