package parser_test

import (
	"strings"
	"testing"

	"github.com/KaramelBytes/postkit/internal/parser"
)

func TestMarkdownParagraphAndEmphasis(t *testing.T) {
	out := parser.Markdown.Parse([]byte("\nBody **text**"))
	if out != "<p>Body <strong>text</strong></p>\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestMarkdownFeatures(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"heading ids", "# Hello World\n", `<h1 id="hello-world">Hello World</h1>`},
		{"raw html", "<div class=\"note\">hi</div>\n", `<div class="note">hi</div>`},
		{"table", "| a | b |\n|---|---|\n| 1 | 2 |\n", "<table>"},
		{"footnote", "Text[^1]\n\n[^1]: The note.\n", "fnref:1"},
	}
	for _, c := range cases {
		out := parser.Markdown.Parse([]byte(c.in))
		if !strings.Contains(out, c.want) {
			t.Errorf("%s: expected %q in %q", c.name, c.want, out)
		}
	}
}

func TestMarkdownLeavesOtherExtensionsOff(t *testing.T) {
	out := parser.Markdown.Parse([]byte("~~gone~~ see https://example.com\n"))
	if strings.Contains(out, "<del>") {
		t.Fatalf("strikethrough should be disabled: %q", out)
	}
	if strings.Contains(out, "<a ") {
		t.Fatalf("linkify should be disabled: %q", out)
	}
}

func TestMarkdownDeterministic(t *testing.T) {
	src := []byte("# Title\n\nSome *body* with a table\n\n| x |\n|---|\n| 1 |\n")
	a := parser.Markdown.Parse(src)
	b := parser.NewMarkdown().Parse(src)
	if a != b {
		t.Fatalf("renders differ:\n%q\n%q", a, b)
	}
}
