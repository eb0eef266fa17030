package version

import (
	"strings"
	"testing"
)

func TestGet_DefaultVersion(t *testing.T) {
	info := Get()
	if info.Version != "dev" {
		t.Errorf("version = %q, want dev", info.Version)
	}
}

func TestShort_IncludesCommitWhenSet(t *testing.T) {
	origCommit := GitCommit
	defer func() { GitCommit = origCommit }()

	GitCommit = "0123456789abcdef"
	s := Short()
	if !strings.Contains(s, "0123456") {
		t.Errorf("Short() = %q, want short commit included", s)
	}
	if strings.Contains(s, "789abcdef") {
		t.Errorf("Short() = %q, commit must be truncated", s)
	}
}

func TestShorten(t *testing.T) {
	if got := shorten("abc"); got != "abc" {
		t.Errorf("shorten(abc) = %q", got)
	}
	if got := shorten("0123456789"); got != "0123456" {
		t.Errorf("shorten long = %q", got)
	}
}
