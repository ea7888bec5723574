package markdown

import (
	"strings"
	"testing"
)

func TestToHTMLStripsScripts(t *testing.T) {
	r := NewRenderer()
	out, err := r.ToHTML("# Week 1\n\nHello <script>alert(1)</script> **world**")
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}
	if strings.Contains(out, "<script>") {
		t.Errorf("script tag survived: %s", out)
	}
	if !strings.Contains(out, "<strong>world</strong>") {
		t.Errorf("emphasis lost: %s", out)
	}
	if !strings.Contains(out, `id="week-1"`) {
		t.Errorf("heading id missing: %s", out)
	}
}

func TestEscapeInline(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain text #Bakery", "plain text #Bakery"},
		{"2*3 = 6_ish", `2\*3 = 6\_ish`},
		{"<b>[x]</b>", `\<b\>\[x\]\</b\>`},
		{"a|b", `a\|b`},
	}
	for _, tt := range tests {
		if got := EscapeInline(tt.in); got != tt.want {
			t.Errorf("EscapeInline(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
