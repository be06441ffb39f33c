package version

import (
	"encoding/json"
	"runtime"
	"strings"
	"testing"
)

func TestNewInfo(t *testing.T) {
	info := NewInfo("1.0.0", "abc123", "2024-01-01")

	if info.Version != "1.0.0" {
		t.Errorf("Version = %q, want %q", info.Version, "1.0.0")
	}
	if info.Commit != "abc123" {
		t.Errorf("Commit = %q, want %q", info.Commit, "abc123")
	}
	if info.Date != "2024-01-01" {
		t.Errorf("Date = %q, want %q", info.Date, "2024-01-01")
	}
	if info.GoVer != runtime.Version() {
		t.Errorf("GoVer = %q, want %q", info.GoVer, runtime.Version())
	}
	if info.OS != runtime.GOOS || info.Arch != runtime.GOARCH {
		t.Errorf("OS/Arch = %s/%s, want %s/%s", info.OS, info.Arch, runtime.GOOS, runtime.GOARCH)
	}
}

func TestInfoString(t *testing.T) {
	info := NewInfo("1.0.0", "abc123", "2024-01-01")
	s := info.String()

	if s != "devtracker 1.0.0 (commit: abc123, built: 2024-01-01)" {
		t.Errorf("String() = %q, unexpected format", s)
	}
}

func TestInfoFullString(t *testing.T) {
	info := NewInfo("1.0.0", "abc123", "2024-01-01")
	s := info.FullString()

	for _, want := range []string{"devtracker 1.0.0", "abc123", "2024-01-01", runtime.Version(), runtime.GOOS} {
		if !strings.Contains(s, want) {
			t.Errorf("FullString() missing %q", want)
		}
	}
}

func TestInfoJSON(t *testing.T) {
	data, err := json.Marshal(NewInfo("1.0.0", "abc123", "2024-01-01"))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"go_version"`) {
		t.Errorf("JSON should use snake_case keys: %s", data)
	}
}

func TestCurrent(t *testing.T) {
	old := Version
	defer func() { Version = old }()

	Version = "2.3.4"
	if got := Current().Version; got != "2.3.4" {
		t.Errorf("Current().Version = %q, want %q", got, "2.3.4")
	}

	Version = "dev"
	if Current().Version == "" {
		t.Error("Current().Version should never be empty")
	}
}
