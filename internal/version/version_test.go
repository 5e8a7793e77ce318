package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestGetInfo(t *testing.T) {
	origVersion := Version
	origCommit := Commit
	origDate := Date

	Version = "1.0.0"
	Commit = "abc123def456"
	Date = "2026-01-01T12:00:00Z"

	defer func() {
		Version = origVersion
		Commit = origCommit
		Date = origDate
	}()

	info := GetInfo()

	if info.Version != "1.0.0" {
		t.Errorf("expected version 1.0.0, got %s", info.Version)
	}
	if info.Commit != "abc123def456" {
		t.Errorf("expected commit abc123def456, got %s", info.Commit)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("expected go version %s, got %s", runtime.Version(), info.GoVersion)
	}
	if !strings.Contains(info.Platform, runtime.GOOS) {
		t.Errorf("expected platform to contain %s, got %s", runtime.GOOS, info.Platform)
	}
}

func TestString(t *testing.T) {
	info := Info{
		Version:   "2.1.0",
		Commit:    "abcdef1234567890",
		Date:      "2026-01-01",
		GoVersion: "go1.24",
		Platform:  "linux/amd64",
	}

	s := info.String()

	if !strings.Contains(s, "tybotctl 2.1.0") {
		t.Errorf("expected formatted string to contain name and version, got %q", s)
	}
	// Commit is shortened to 8 characters.
	if !strings.Contains(s, "abcdef12") || strings.Contains(s, "abcdef1234567890") {
		t.Errorf("expected shortened commit hash, got %q", s)
	}
}

func TestShort(t *testing.T) {
	info := Info{Version: "3.0.0"}
	if info.Short() != "3.0.0" {
		t.Errorf("expected 3.0.0, got %s", info.Short())
	}
}
