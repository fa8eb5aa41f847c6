package util

import "testing"

func TestSanitizeLineStripsNewlines(t *testing.T) {
	got := SanitizeLine("Dana\r\nBcc: spam@evil.test", 100)
	want := "DanaBcc: spam@evil.test"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSanitizeTextKeepsNewlines(t *testing.T) {
	got := SanitizeText("line one\nline two\r\x00", 100)
	want := "line one\nline two"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSanitizeCapsRunes(t *testing.T) {
	got := SanitizeLine("héllo world", 5)
	if got != "héllo" {
		t.Fatalf("got %q", got)
	}
}
