// Package sanitizer cleans translated text before it is persisted.
package sanitizer

import (
	"io"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

var ugcPolicy = bluemonday.UGCPolicy()

// SanitizeRichText filters rich-text translations through a UGC policy:
// common formatting tags survive, scripts and event handlers do not.
func SanitizeRichText(input string) string {
	return strings.TrimSpace(ugcPolicy.Sanitize(input))
}

// StripTags removes all HTML/XML tags from a string, keeping only text
// content. Used for plain-text translation fields where markup is never
// legitimate.
//
// Examples:
//   - "<p>Hello <strong>World</strong></p>" -> "Hello World"
//   - "Plain text" -> "Plain text"
func StripTags(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	if !strings.Contains(input, "<") {
		return input
	}

	tokenizer := html.NewTokenizer(strings.NewReader(input))
	var buf strings.Builder

	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			if tokenizer.Err() == io.EOF {
				break
			}
			// Parse error: fail closed
			return ""
		}

		if tt == html.TextToken {
			buf.WriteString(tokenizer.Token().Data)
		}
	}

	return strings.TrimSpace(buf.String())
}
