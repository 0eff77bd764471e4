package version

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()

	if info.Version == "" {
		t.Error("embedded version is empty")
	}
	if strings.TrimSpace(info.Version) != info.Version {
		t.Errorf("version %q carries whitespace", info.Version)
	}
	if info.GitCommit == "" {
		t.Error("git commit is empty, expected at least a placeholder")
	}
}

func TestInfoString(t *testing.T) {
	s := Info{Version: "1.2.3", GitCommit: "abc1234", BuildDate: "2026-01-01"}.String()

	for _, want := range []string{"Version:", "1.2.3", "Git Commit:", "abc1234", "Build Date:", "2026-01-01"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q: %s", want, s)
		}
	}
}
