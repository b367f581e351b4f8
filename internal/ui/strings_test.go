package ui

import "testing"

func TestTruncate(t *testing.T) {
	if got := truncate("  dashboard  ", 20); got != "dashboard" {
		t.Fatalf("truncate = %q, want trimmed original", got)
	}
	if got := truncate("dashboard", 6); got != "das..." {
		t.Fatalf("truncate = %q, want %q", got, "das...")
	}
	if got := truncate("dashboard", 2); got != "da" {
		t.Fatalf("truncate limit<=3 = %q, want da", got)
	}
	if got := truncate("dashboard", 0); got != "" {
		t.Fatalf("truncate limit 0 = %q, want empty", got)
	}
}

func TestTruncateMiddle(t *testing.T) {
	if got := truncateMiddle("  ", 10); got != "" {
		t.Fatalf("truncateMiddle blank = %q, want empty", got)
	}
	if got := truncateMiddle("abcd", 2); got != "ab" {
		t.Fatalf("truncateMiddle limit<=3 = %q, want ab", got)
	}
	got := truncateMiddle("/settings/profile/avatar", 12)
	if got == "/settings/profile/avatar" {
		t.Fatalf("expected truncation")
	}
	if n := len([]rune(got)); n > 12 {
		t.Fatalf("got %q (%d runes), want <=12", got, n)
	}
	if got[0] != '/' {
		t.Fatalf("got %q, want leading slash preserved", got)
	}
}
