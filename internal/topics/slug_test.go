package topics

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Executive Summary", "executive_summary"},
		{"punctuation stripped", "Q3: Results & Analysis!", "q3_results_analysis"},
		{"hyphens collapse", "multi-word - topic", "multi_word_topic"},
		{"already slug", "already_a_slug", "already_a_slug"},
		{"whitespace runs", "  spaced   out  ", "spaced_out"},
		{"empty", "", ""},
		{"symbols only", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.in); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSlugifyTruncates(t *testing.T) {
	long := strings.Repeat("verylongword ", 10)
	got := Slugify(long)
	if len(got) > 50 {
		t.Errorf("Slugify produced %d chars, want at most 50", len(got))
	}
	if strings.HasSuffix(got, "_") {
		t.Errorf("Slugify left a trailing underscore: %q", got)
	}
}

func TestUniqueNames(t *testing.T) {
	got := uniqueNames([]string{"intro", "body", "intro", "intro", "body"})

	want := []string{"intro", "body", "intro_2", "intro_3", "body_2"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("uniqueNames[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
