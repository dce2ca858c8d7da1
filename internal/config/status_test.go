package config

import "testing"

func TestContentStatusNormalization(t *testing.T) {
	cases := []struct {
		in   string
		want ContentStatus
	}{
		{"draft", StatusDraft},
		{"Draft", StatusDraft},
		{"  PUBLISHED  ", StatusPublished},
		{"hidden", StatusHidden},
		{"skip", StatusSkip},
		{"unknown", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeContentStatus(c.in); got != c.want {
			t.Errorf("NormalizeContentStatus(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestLinkIsPlaceholder(t *testing.T) {
	cases := []struct {
		url  string
		want bool
	}{
		{"#", true},
		{" # ", true},
		{"https://example.com", false},
		{"", false},
	}
	for _, c := range cases {
		l := Link{Label: "x", URL: c.url}
		if got := l.IsPlaceholder(); got != c.want {
			t.Errorf("IsPlaceholder(%q) = %v, want %v", c.url, got, c.want)
		}
	}
}
