package posts

import (
	"path/filepath"
	"strconv"
	"strings"
)

// FilenameParts is the date and slug encoded in a post filename.
type FilenameParts struct {
	Year  int
	Month uint32
	Day   uint32
	// Slug is everything after the third hyphen, extension included.
	Slug string
}

// DecodeFilename reads YYYY-M-D-slug from the last element of path. The slug
// may contain hyphens. Date parts are only checked to be integers.
func DecodeFilename(path string) (FilenameParts, error) {
	name := filepath.Base(path)
	parts := strings.SplitN(name, "-", 4)
	if len(parts) < 4 {
		return FilenameParts{}, &MalformedFilenameError{Name: name}
	}
	year, err := strconv.ParseInt(parts[0], 10, 32)
	if err != nil {
		return FilenameParts{}, &MalformedFilenameError{Name: name, Err: err}
	}
	month, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return FilenameParts{}, &MalformedFilenameError{Name: name, Err: err}
	}
	day, err := strconv.ParseUint(parts[2], 10, 32)
	if err != nil {
		return FilenameParts{}, &MalformedFilenameError{Name: name, Err: err}
	}
	return FilenameParts{
		Year:  int(year),
		Month: uint32(month),
		Day:   uint32(day),
		Slug:  parts[3],
	}, nil
}

// stripExt drops the last extension of name, if any. A leading dot marks a
// hidden name, not an extension, so ".about" is kept whole.
func stripExt(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		return name
	}
	return strings.TrimSuffix(name, ext)
}
