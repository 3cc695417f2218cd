package posts

import "path/filepath"

// LayoutPage is the layout tag every static page must carry.
const LayoutPage = "aboutme"

// StaticPage is an undated page such as "about".
type StaticPage struct {
	Filename string `json:"filename"`
	Layout   string `json:"layout"`
	Title    string `json:"title"`
	Contents string `json:"contents"`
	URL      string `json:"url"`
}

// OpenPage reads the static page at path.
func OpenPage(path string) (*StaticPage, error) {
	src, err := readSource(path, LayoutPage)
	if err != nil {
		return nil, err
	}
	name := stripExt(filepath.Base(path))
	return &StaticPage{
		Filename: name,
		Layout:   src.header.Layout,
		Title:    src.header.Title,
		Contents: src.contents,
		URL:      name + ".html",
	}, nil
}
