// Package posts turns front matter text files into the records a static site
// is built from: dated posts and undated pages.
package posts

import (
	"fmt"

	"github.com/KaramelBytes/postkit/internal/config"
)

// LayoutPost is the layout tag every post must carry.
const LayoutPost = "post"

// Post is a dated entry read from a YYYY-M-D-slug file. ShowYear is left
// false here; listing templates set it on the first post of each year.
type Post struct {
	Filename  string   `json:"filename"`
	Layout    string   `json:"layout"`
	Title     string   `json:"title"`
	Tags      []string `json:"tags"`
	Year      int      `json:"year"`
	ShowYear  bool     `json:"show_year"`
	Month     uint32   `json:"month"`
	Day       uint32   `json:"day"`
	Contents  string   `json:"contents"`
	URL       string   `json:"url"`
	Published string   `json:"published"`
	Updated   string   `json:"updated"`
}

// OpenPost reads the post at path. The manifest is accepted for site-wide
// settings but no post field depends on it yet; nil is allowed.
func OpenPost(path string, manifest *config.Manifest) (*Post, error) {
	parts, err := DecodeFilename(path)
	if err != nil {
		return nil, err
	}
	src, err := readSource(path, LayoutPost)
	if err != nil {
		return nil, err
	}
	published, err := FormatTimestamp(parts.Year, parts.Month, parts.Day, 0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slug := stripExt(parts.Slug)
	return &Post{
		Filename:  slug,
		Layout:    src.header.Layout,
		Title:     src.header.Title,
		Tags:      src.header.Tags,
		Year:      parts.Year,
		Month:     parts.Month,
		Day:       parts.Day,
		Contents:  src.contents,
		URL:       fmt.Sprintf("%04d/%02d/%02d/%s.html", parts.Year, parts.Month, parts.Day, slug),
		Published: published,
		Updated:   published,
	}, nil
}

// SetUpdated moves Updated to the post's date plus seconds. The post is left
// unchanged on error.
func (p *Post) SetUpdated(seconds uint32) error {
	updated, err := FormatTimestamp(p.Year, p.Month, p.Day, seconds)
	if err != nil {
		return err
	}
	p.Updated = updated
	return nil
}
