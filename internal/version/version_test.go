package version

import (
	"strings"
	"testing"
)

func TestStringDefault(t *testing.T) {
	s := String()
	if !strings.HasPrefix(s, "doclint ") {
		t.Errorf("version line %q lacks the binary name", s)
	}
	if !strings.Contains(s, Version) {
		t.Errorf("version line %q lacks the version", s)
	}
}

func TestStringWithBuildMetadata(t *testing.T) {
	origCommit, origDate := GitCommit, BuildDate
	defer func() {
		GitCommit, BuildDate = origCommit, origDate
	}()

	GitCommit = "abc123"
	BuildDate = "2026-08-31T00:00:00Z"

	s := String()
	if !strings.Contains(s, "(abc123)") {
		t.Errorf("version line %q lacks the commit", s)
	}
	if !strings.Contains(s, "built 2026-08-31T00:00:00Z") {
		t.Errorf("version line %q lacks the build date", s)
	}
}
