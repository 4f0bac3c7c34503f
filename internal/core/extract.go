package core

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Article is the readable form of a stored text payload.
type Article struct {
	Title string
	Text  string
}

// ExtractArticle turns the HTML the API returned into plain text for
// console display. Scripts and styles are dropped; whitespace within a
// line collapses, blank lines are removed.
func ExtractArticle(html string) (Article, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Article{}, fmt.Errorf("failed to parse article HTML: %w", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	doc.Find("script, style, noscript").Remove()
	content := doc.Selection
	if body := doc.Find("body"); body.Length() > 0 {
		content = body
	}

	return Article{
		Title: title,
		Text:  collapseWhitespace(content.Text()),
	}, nil
}

func collapseWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
