// Package text provides the plain-text helpers used when demoting documents
// to stubs: HTML stripping and word-boundary truncation.
package text

import (
	"strings"

	"golang.org/x/net/html"
)

// StripHTML removes markup from s, returning the concatenated text content.
// Script and style bodies are dropped along with their tags.
func StripHTML(s string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	skip := 0
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return b.String()
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if tag := string(name); tag == "script" || tag == "style" {
				skip++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if tag := string(name); (tag == "script" || tag == "style") && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip == 0 {
				b.Write(tokenizer.Text())
			}
		}
	}
}

// Truncate shortens s to at most max runes, cutting back to the previous word
// boundary and appending suffix when anything was removed. Runs of whitespace
// collapse to single spaces first.
func Truncate(s string, max int, suffix string) string {
	s = strings.Join(strings.Fields(s), " ")
	if len([]rune(s)) <= max {
		return s
	}
	runes := []rune(s)[:max]
	cut := strings.LastIndexByte(string(runes), ' ')
	if cut > 0 {
		runes = []rune(string(runes)[:cut])
	}
	return strings.TrimRight(string(runes), " ") + suffix
}
