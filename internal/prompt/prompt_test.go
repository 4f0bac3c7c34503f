package prompt

import (
	"bytes"
	"strings"
	"testing"
)

// TestLine tests sequential labelled reads.
func TestLine(t *testing.T) {
	t.Run("reads consecutive lines without losing input", func(t *testing.T) {
		in := strings.NewReader("first value\nsecond value\n")
		var out bytes.Buffer
		p := New(in, &out)

		got1, err := p.Line("First: ")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		got2, err := p.Line("Second: ")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if got1 != "first value" || got2 != "second value" {
			t.Errorf("got %q and %q", got1, got2)
		}
		if !strings.Contains(out.String(), "First: ") || !strings.Contains(out.String(), "Second: ") {
			t.Errorf("expected labels written, got %q", out.String())
		}
	})

	t.Run("trims whitespace", func(t *testing.T) {
		p := New(strings.NewReader("  padded  \n"), &bytes.Buffer{})
		got, err := p.Line("")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got != "padded" {
			t.Errorf("expected trimmed value, got %q", got)
		}
	})

	t.Run("accepts a final line without newline", func(t *testing.T) {
		p := New(strings.NewReader("no newline"), &bytes.Buffer{})
		got, err := p.Line("")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got != "no newline" {
			t.Errorf("expected value, got %q", got)
		}
	})
}

// TestPassword tests the non-TTY fallback path.
func TestPassword(t *testing.T) {
	p := New(strings.NewReader("s3cret\n"), &bytes.Buffer{})
	got, err := p.Password("Password: ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != "s3cret" {
		t.Errorf("expected fallback read, got %q", got)
	}
}
