package util

import "testing"

func TestTruncateRunes(t *testing.T) {
	if got := TruncateRunes("short", 10); got != "short" {
		t.Fatalf("expected untouched string, got %q", got)
	}
	if got := TruncateRunes("abcdef", 3); got != "abc…" {
		t.Fatalf("expected truncated string with ellipsis, got %q", got)
	}
	// Rune-aware: multi-byte characters count as one.
	if got := TruncateRunes("日本語テスト", 3); got != "日本語…" {
		t.Fatalf("expected rune-safe truncation, got %q", got)
	}
}

func TestCollapseWhitespace(t *testing.T) {
	in := "line one\n\tline   two\r\nline three"
	want := "line one line two line three"
	if got := CollapseWhitespace(in); got != want {
		t.Fatalf("CollapseWhitespace(%q) = %q, want %q", in, got, want)
	}
}
