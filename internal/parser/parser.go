// Package parser renders markup bodies into HTML.
package parser

// Parser renders a markup body into HTML. Implementations never fail: input
// that is not well formed degrades to whatever the markup rules produce.
type Parser interface {
	Parse(content []byte) string
}

// Markdown is the renderer used for every post and page body. It is safe for
// concurrent use.
var Markdown Parser = NewMarkdown()
