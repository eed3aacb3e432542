package engine

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// CollapseWhitespace folds runs of whitespace into single spaces and trims.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// StripHTML extracts the visible text of an HTML fragment, dropping
// script/style content, and normalises whitespace. Markup is replaced by
// spaces so adjacent elements never glue words together. Plain text passes
// through with whitespace normalisation only.
func StripHTML(s string) string {
	if !strings.Contains(s, "<") {
		return CollapseWhitespace(s)
	}

	tok := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	skip := 0
	for {
		switch tok.Next() {
		case html.ErrorToken:
			// io.EOF or malformed tail; either way return what we have.
			return CollapseWhitespace(b.String())
		case html.StartTagToken:
			if name, _ := tok.TagName(); isSkippedTag(name) {
				skip++
			}
		case html.EndTagToken:
			if name, _ := tok.TagName(); isSkippedTag(name) && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip == 0 {
				b.Write(tok.Text())
				b.WriteByte(' ')
			}
		}
	}
}

func isSkippedTag(name []byte) bool {
	return string(name) == "script" || string(name) == "style"
}

// Truncate returns the first n bytes of s.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
