package version

import (
	"strings"
	"testing"
)

func saveAndRestore() func() {
	origVersion, origCommit, origBuildTime := Version, GitCommit, BuildTime
	return func() {
		Version = origVersion
		GitCommit = origCommit
		BuildTime = origBuildTime
	}
}

func TestGetDefaults(t *testing.T) {
	defer saveAndRestore()()
	Version = "dev"

	info := Get()
	if info.Version != "dev" {
		t.Errorf("expected version 'dev', got %q", info.Version)
	}
	if info.IsRelease {
		t.Error("dev should not be a release")
	}
}

func TestGetRelease(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.2.0"
	GitCommit = "abc1234"
	BuildTime = "2026-01-02T03:04:05Z"

	info := Get()
	if !info.IsRelease {
		t.Error("expected 1.2.0 to be a release")
	}
	if info.GitCommit != "abc1234" {
		t.Errorf("expected commit from ldflags, got %q", info.GitCommit)
	}
}

func TestInfoString(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{"version only", Info{Version: "dev"}, "dev"},
		{"with commit", Info{Version: "1.0.0", GitCommit: "abc1234"}, "1.0.0-abc1234"},
		{"dirty", Info{Version: "1.0.0", GitCommit: "abc1234", IsDirty: true}, "1.0.0-abc1234-dirty"},
		{"build time", Info{Version: "1.0.0", BuildTime: "2026-01-02T03:04:05Z"}, "1.0.0 (built 2026-01-02T03:04:05Z)"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.info.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestInfoStringUsesVersion(t *testing.T) {
	defer saveAndRestore()()
	Version = "9.9.9"
	if !strings.HasPrefix(Get().String(), "9.9.9") {
		t.Errorf("expected string to start with version, got %q", Get().String())
	}
}
