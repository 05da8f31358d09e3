// Package sanitizer turns user supplied market text into plain text.
package sanitizer

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// tagStart matches a complete tag at the start of the input.
var tagStart = regexp.MustCompile(`^<[A-Za-z/!?][^<>]*>`)

// HTMLStripperer removes markup from user supplied text
type HTMLStripperer interface {
	StripHTML(s string) string
	// PlainText strips markup, decodes entities and collapses whitespace
	PlainText(s string) string
}

type HTMLStripper struct {
	bm *bluemonday.Policy
}

func NewHTMLStripper() *HTMLStripper {
	return &HTMLStripper{bm: bluemonday.StrictPolicy()}
}

// StripHTML drops every tag. Entities stay escaped.
func (hs *HTMLStripper) StripHTML(s string) string {
	return hs.bm.Sanitize(s)
}

// PlainText keeps a '<' that does not open a complete tag, so "x<y" survives.
func (hs *HTMLStripper) PlainText(s string) string {
	return strings.Join(strings.Fields(html.UnescapeString(hs.StripHTML(escapeStrayLT(s)))), " ")
}

func escapeStrayLT(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '<' && !tagStart.MatchString(s[i:]) {
			b.WriteString("&lt;")
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
