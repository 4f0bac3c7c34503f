package core

import (
	"strings"
	"testing"
)

// TestExtractArticle tests plain-text conversion of stored article HTML.
func TestExtractArticle(t *testing.T) {
	t.Run("extracts title and body text", func(t *testing.T) {
		html := `<html><head><title> My Article </title>
			<style>p { color: red }</style></head>
			<body><h1>My Article</h1><p>First   paragraph.</p>
			<script>alert("hi")</script>
			<p>Second paragraph.</p></body></html>`

		a, err := ExtractArticle(html)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if a.Title != "My Article" {
			t.Errorf("expected title 'My Article', got %q", a.Title)
		}
		if !strings.Contains(a.Text, "First paragraph.") {
			t.Errorf("expected collapsed body text, got %q", a.Text)
		}
		if strings.Contains(a.Text, "alert") {
			t.Errorf("expected scripts stripped, got %q", a.Text)
		}
		if strings.Contains(a.Text, "color: red") {
			t.Errorf("expected styles stripped, got %q", a.Text)
		}
	})

	t.Run("handles fragments without body or title", func(t *testing.T) {
		a, err := ExtractArticle(`<p>just a fragment</p>`)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if a.Title != "" {
			t.Errorf("expected empty title, got %q", a.Title)
		}
		if !strings.Contains(a.Text, "just a fragment") {
			t.Errorf("expected fragment text, got %q", a.Text)
		}
	})

	t.Run("empty input yields empty article", func(t *testing.T) {
		a, err := ExtractArticle("")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if a.Text != "" {
			t.Errorf("expected empty text, got %q", a.Text)
		}
	})
}
