package htmlsanitize

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain text", "Build and run the jobs platform.", "Build and run the jobs platform."},
		{"formatting kept", "<p><strong>Go</strong> and <em>SQL</em></p>", "<p><strong>Go</strong> and <em>SQL</em></p>"},
		{"lists kept", "<ul><li>Go</li><li>Redis</li></ul>", "<ul><li>Go</li><li>Redis</li></ul>"},
		{"script removed", "<p>Hello</p><script>alert('x')</script>", "<p>Hello</p>"},
		{"only script", "<script>alert('x')</script>", ""},
		{"trimmed", "  <p>Hi</p>  ", "<p>Hi</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitize_StripsHandlersAndJavascriptLinks(t *testing.T) {
	got := Sanitize(`<a href="javascript:alert(1)" onclick="steal()">Apply</a>`)
	if strings.Contains(got, "javascript:") || strings.Contains(got, "onclick") {
		t.Errorf("unsafe attributes survived: %q", got)
	}
	if !strings.Contains(got, "Apply") {
		t.Errorf("link text lost: %q", got)
	}
}

func TestSanitize_SafeLinksGetNoFollow(t *testing.T) {
	got := Sanitize(`<a href="https://example.com/apply">Apply</a>`)
	if !strings.Contains(got, `href="https://example.com/apply"`) {
		t.Errorf("safe link lost: %q", got)
	}
	if !strings.Contains(got, "nofollow") {
		t.Errorf("expected rel=nofollow, got %q", got)
	}
}

func TestSanitizePtr(t *testing.T) {
	var nilPtr *string
	SanitizePtr(&nilPtr)
	if nilPtr != nil {
		t.Error("nil pointer should stay nil")
	}

	onlyScript := "<script>x()</script>"
	p := &onlyScript
	SanitizePtr(&p)
	if p != nil {
		t.Errorf("expected nil for markup with no text, got %q", *p)
	}

	bold := "<b>Benefits</b>"
	p = &bold
	SanitizePtr(&p)
	if p == nil || *p != "<b>Benefits</b>" {
		t.Errorf("unexpected result %v", p)
	}
}
