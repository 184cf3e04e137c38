// Package htmlsanitize cleans HTML before it reaches a page.
//
// Two policies are used: a user-generated-content policy for operator
// supplied HTML fragments (the site footer), and a strict policy that strips
// every tag from catalog text fields.
package htmlsanitize

import (
	"html"
	"html/template"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ugc    = newUGCPolicy()
	strict = bluemonday.StrictPolicy()
)

// tagPattern matches an opening, closing or self-closing tag whose
// attributes all carry values, or the start of a comment. "a<b and c>d" is
// not a tag.
var tagPattern = regexp.MustCompile(`(?i)<(?:/?[a-z][a-z0-9-]*(?:\s+[a-z_:][-a-z0-9_:.]*\s*=\s*(?:"[^"]*"|'[^']*'|[^\s"'=<>` + "`" + `]+))*\s*/?>|!--)`)

func newUGCPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").OnElements("table", "tr", "td", "th")
	p.AllowAttrs("colspan", "rowspan").Matching(bluemonday.Integer).OnElements("td", "th")
	p.AllowElements("u", "s", "sub", "sup", "mark")
	return p
}

// Sanitize returns s with unsafe elements and attributes removed.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return ugc.Sanitize(s)
}

// SanitizeToHTML sanitizes s and marks the result safe for templates.
func SanitizeToHTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}

// StripTags removes all markup from s and returns plain text. Entities are
// decoded so "Tools &amp; Libraries" and "Tools & Libraries" come out equal;
// templates escape the text again when it is rendered.
func StripTags(s string) string {
	if IsPlainText(s) {
		return s
	}
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// IsPlainText reports whether s contains no markup.
func IsPlainText(s string) bool {
	if !strings.Contains(s, "<") {
		return true
	}
	return !tagPattern.MatchString(s)
}
