package parser

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmparser "github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

type markdownParser struct {
	md goldmark.Markdown
}

// NewMarkdown builds the site's markdown renderer: raw HTML passes through,
// headings get generated ids, and footnotes and tables are enabled. Every
// other extension stays off.
func NewMarkdown() Parser {
	return markdownParser{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Footnote, extension.Table),
			goldmark.WithParserOptions(gmparser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

func (p markdownParser) Parse(content []byte) string {
	var buf bytes.Buffer
	// Convert only fails when the writer does, and a bytes.Buffer never does.
	_ = p.md.Convert(content, &buf)
	return buf.String()
}
