package logger

import (
	"errors"
	"strings"
	"testing"
)

func TestSanitizeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		maxLength int
		want      string
	}{
		{name: "empty", input: "", maxLength: 10, want: ""},
		{name: "plain passthrough", input: "hello", maxLength: 10, want: "hello"},
		{name: "strips control chars", input: "a\x00b\x1bc", maxLength: 10, want: "abc"},
		{name: "keeps whitespace", input: "a b\tc", maxLength: 10, want: "a b\tc"},
		{name: "truncates", input: "abcdefghij", maxLength: 5, want: "abcde..."},
		{name: "zero max uses default", input: "short", maxLength: 0, want: "short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SanitizeString(tt.input, tt.maxLength); got != tt.want {
				t.Errorf("SanitizeString(%q, %d) = %q, want %q", tt.input, tt.maxLength, got, tt.want)
			}
		})
	}
}

func TestSanitizeUsername(t *testing.T) {
	t.Parallel()

	injected := SanitizeUsername("user\nlevel=error msg=forged")
	if strings.Contains(injected, "\x00") {
		t.Errorf("control characters should be stripped: %q", injected)
	}

	long := SanitizeUsername(strings.Repeat("a", 200))
	if len(long) > MaxUsernameLength+len("...") {
		t.Errorf("long username not truncated: %d chars", len(long))
	}
}

func TestSanitizeError(t *testing.T) {
	t.Parallel()

	if got := SanitizeError(nil); got != "" {
		t.Errorf("SanitizeError(nil) = %q, want empty", got)
	}
	if got := SanitizeError(errors.New("boom\x00")); got != "boom" {
		t.Errorf("SanitizeError = %q, want %q", got, "boom")
	}
}
