package app

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestVcsStamp(t *testing.T) {
	settings := []debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef0123"},
		{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
	}

	tests := []struct {
		name       string
		commit     string
		built      string
		wantCommit string
		wantBuilt  string
	}{
		{"unknown uses vcs", "unknown", "unknown", "0123456789ab", "2026-01-02T03:04:05Z"},
		{"ldflags win", "abc123", "yesterday", "abc123", "yesterday"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			commit, built := vcsStamp(settings, tt.commit, tt.built)
			if commit != tt.wantCommit || built != tt.wantBuilt {
				t.Errorf("got (%q, %q), want (%q, %q)", commit, built, tt.wantCommit, tt.wantBuilt)
			}
		})
	}
}

func TestBuildVersion_StartsWithVersion(t *testing.T) {
	if got := BuildVersion(); !strings.HasPrefix(got, Version+" (commit: ") {
		t.Errorf("BuildVersion() = %q", got)
	}
}
