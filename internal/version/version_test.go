package version

import (
	"testing"
)

func TestInfo(t *testing.T) {
	origVersion, origBuild, origCommit := Version, BuildTime, GitCommit
	t.Cleanup(func() { Version, BuildTime, GitCommit = origVersion, origBuild, origCommit })

	tests := []struct {
		version   string
		buildTime string
		commit    string
		expected  string
	}{
		{"dev", "unknown", "unknown", "dev (development build)"},
		{"v1.2.0", "yesterday", "abc", "v1.2.0 (built yesterday)"},
		{"v1.2.0", "2026-01-02T03:04:05Z", "0123456789abcdef", "v1.2.0 (built 2026-01-02 03:04:05 UTC, commit 01234567)"},
		{"v1.2.0", "2026-01-02T03:04:05Z", "abc", "v1.2.0 (built 2026-01-02 03:04:05 UTC, commit abc)"},
	}

	for _, tt := range tests {
		Version, BuildTime, GitCommit = tt.version, tt.buildTime, tt.commit
		if result := Info(); result != tt.expected {
			t.Errorf("Info() with %s/%s/%s = %q; want %q", tt.version, tt.buildTime, tt.commit, result, tt.expected)
		}
	}
}
