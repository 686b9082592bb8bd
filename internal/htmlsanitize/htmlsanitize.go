// Package htmlsanitize cleans the rich-text fields of a job posting.
//
// Employers write descriptions in an HTML editor. Formatting, lists, tables
// and links survive; scripts, event handlers and javascript: URLs do not.
// Text is HTML-escaped on output, so stored values are always safe to render.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = newPolicy()

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").OnElements("table", "thead", "tbody", "tr", "th", "td")
	p.AllowElements("u", "s", "mark")
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

// Sanitize returns s with unsafe markup removed and surrounding space trimmed.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(policy.Sanitize(s))
}

// SanitizePtr sanitizes *s in place. A value that sanitizes to nothing
// becomes nil.
func SanitizePtr(s **string) {
	if *s == nil {
		return
	}
	clean := Sanitize(**s)
	if clean == "" {
		*s = nil
		return
	}
	*s = &clean
}
