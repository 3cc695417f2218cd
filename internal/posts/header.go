package posts

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/KaramelBytes/postkit/internal/parser"
	"gopkg.in/yaml.v3"
)

const (
	openDelimiter = "---\n"
	closeMarker   = "---"
	// The body starts a fixed distance past the closing marker: the marker
	// itself plus one separator byte. A blank line after the marker is kept
	// and is harmless to markdown.
	bodySkip     = len(closeMarker) + 1
	minSourceLen = len(openDelimiter) + 1
)

// Header is the decoded front matter shared by posts and pages.
type Header struct {
	Title  string
	Tags   []string
	Layout string
}

type yamlHeader struct {
	Title  *string  `yaml:"title"`
	Tags   []string `yaml:"tags"`
	Layout *string  `yaml:"layout"`
}

// source is a file split into validated front matter and rendered body.
type source struct {
	header   Header
	contents string
}

// readSource reads path, decodes its front matter, checks that the layout
// equals want, and renders the body.
func readSource(path, want string) (source, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return source{}, &IOError{Path: path, Err: err}
	}
	block, body, err := SplitFrontMatter(string(b))
	if err != nil {
		if errors.Is(err, ErrMissingOpenDelimiter) {
			return source{}, &InvalidHeaderError{Path: path, Err: err}
		}
		return source{}, fmt.Errorf("%s: %w", path, err)
	}
	h, err := DecodeHeader(block)
	if err != nil {
		return source{}, &InvalidHeaderError{Path: path, Err: err}
	}
	if h.Layout != want {
		return source{}, &UnexpectedLayoutError{Expected: want, Actual: h.Layout, Path: path}
	}
	return source{
		header:   h,
		contents: parser.Markdown.Parse([]byte(body)),
	}, nil
}

// SplitFrontMatter separates text into its front matter block, opening
// delimiter included, and the body that follows the closing marker.
func SplitFrontMatter(text string) (block, body string, err error) {
	if len(text) < minSourceLen {
		return "", "", ErrEmptyOrTruncated
	}
	if !strings.HasPrefix(text, openDelimiter) {
		return "", "", ErrMissingOpenDelimiter
	}
	idx := strings.Index(text[len(openDelimiter):], closeMarker)
	if idx < 0 {
		return "", "", ErrMissingHeaderTerminator
	}
	end := idx + len(openDelimiter)
	start := min(end+bodySkip, len(text))
	return text[:end], text[start:], nil
}

// DecodeHeader parses a front matter block. title and layout are required;
// tags default to an empty list and unknown keys are ignored.
func DecodeHeader(block string) (Header, error) {
	var raw yamlHeader
	if err := yaml.Unmarshal([]byte(block), &raw); err != nil {
		return Header{}, fmt.Errorf("parse yaml: %w", err)
	}
	if raw.Title == nil {
		return Header{}, errors.New("missing field title")
	}
	if raw.Layout == nil {
		return Header{}, errors.New("missing field layout")
	}
	tags := raw.Tags
	if tags == nil {
		tags = []string{}
	}
	return Header{Title: *raw.Title, Tags: tags, Layout: *raw.Layout}, nil
}
