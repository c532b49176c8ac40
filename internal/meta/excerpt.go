package meta

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Excerpt renders content HTML down to a plain-text snippet of at most
// maxLen runes, cut on a word boundary. Empty on any parse trouble.
func Excerpt(content string, maxLen int) string {
	if strings.TrimSpace(content) == "" || maxLen <= 0 {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return ""
	}

	text := CleanText(doc.Text())
	if text == "" {
		return ""
	}

	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}

	cut := string(runes[:maxLen])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " .,;:") + "…"
}
