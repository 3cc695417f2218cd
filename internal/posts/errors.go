package posts

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyOrTruncated indicates a source too short to hold a front matter block.
	ErrEmptyOrTruncated = errors.New("empty, or too short to have valid front matter")
	// ErrMissingHeaderTerminator indicates the front matter block is never closed.
	ErrMissingHeaderTerminator = errors.New("front matter has no closing ---")
	// ErrMissingOpenDelimiter indicates the source does not start with "---\n".
	ErrMissingOpenDelimiter = errors.New("front matter must start with ---")
)

// IOError wraps a failed read of a source file.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string { return fmt.Sprintf("read %s: %v", e.Path, e.Err) }

func (e *IOError) Unwrap() error { return e.Err }

// MalformedFilenameError indicates a post filename that does not decode into
// YYYY-M-D-slug.
type MalformedFilenameError struct {
	Name string
	Err  error
}

func (e *MalformedFilenameError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed post filename %q (want YYYY-M-D-slug): %v", e.Name, e.Err)
	}
	return fmt.Sprintf("malformed post filename %q (want YYYY-M-D-slug)", e.Name)
}

func (e *MalformedFilenameError) Unwrap() error { return e.Err }

// InvalidHeaderError indicates a front matter block that is not valid YAML or
// lacks a required key.
type InvalidHeaderError struct {
	Path string
	Err  error
}

func (e *InvalidHeaderError) Error() string {
	return fmt.Sprintf("invalid front matter in %s: %v", e.Path, e.Err)
}

func (e *InvalidHeaderError) Unwrap() error { return e.Err }

// UnexpectedLayoutError indicates a layout tag that does not match the kind
// of record being extracted.
type UnexpectedLayoutError struct {
	Expected string
	Actual   string
	Path     string
}

func (e *UnexpectedLayoutError) Error() string {
	return fmt.Sprintf("%s should have layout %q, got %q", e.Path, e.Expected, e.Actual)
}

// InvalidDateError indicates a date and time-of-day that cannot be built.
type InvalidDateError struct {
	Year    int
	Month   uint32
	Day     uint32
	Seconds uint32
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %04d-%02d-%02d 00:00:%02d", e.Year, e.Month, e.Day, e.Seconds)
}
