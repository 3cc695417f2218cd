package collect_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KaramelBytes/postkit/internal/collect"
	"github.com/KaramelBytes/postkit/internal/posts"
	"github.com/rs/zerolog"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestPostsKeepsOrderAndReportsEveryFailure(t *testing.T) {
	dir := t.TempDir()
	good := "---\ntitle: %s\nlayout: post\n---\nbody\n"
	paths := []string{
		writeFile(t, dir, "2023-1-1-first.md", strings.Replace(good, "%s", "First", 1)),
		writeFile(t, dir, "notadate.md", strings.Replace(good, "%s", "Bad", 1)),
		writeFile(t, dir, "2023-1-2-second.md", strings.Replace(good, "%s", "Second", 1)),
		writeFile(t, dir, "2023-1-3-wrong.md", "---\ntitle: W\nlayout: page\n---\n"),
		writeFile(t, dir, "2023-1-4-third.md", strings.Replace(good, "%s", "Third", 1)),
	}

	res := collect.Posts(context.Background(), paths, nil, collect.Options{Workers: 3, Logger: zerolog.Nop()})
	if res.RunID == "" {
		t.Fatalf("expected run id")
	}
	var titles []string
	for _, p := range res.Records {
		titles = append(titles, p.Title)
	}
	if strings.Join(titles, ",") != "First,Second,Third" {
		t.Fatalf("records = %v", titles)
	}
	if len(res.Failures) != 2 || res.Failures[0].Path != paths[1] || res.Failures[1].Path != paths[3] {
		t.Fatalf("failures = %+v", res.Failures)
	}

	err := res.Err()
	var fnErr *posts.MalformedFilenameError
	var layoutErr *posts.UnexpectedLayoutError
	if !errors.As(err, &fnErr) || !errors.As(err, &layoutErr) {
		t.Fatalf("joined error should carry both failures: %v", err)
	}
}

func TestPagesNoFailures(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "about.md", "---\ntitle: About\nlayout: aboutme\n---\nhi\n")
	res := collect.Pages(context.Background(), []string{p}, collect.Options{Logger: zerolog.Nop()})
	if res.Err() != nil {
		t.Fatalf("unexpected error: %v", res.Err())
	}
	if len(res.Records) != 1 || res.Records[0].URL != "about.html" {
		t.Fatalf("records = %+v", res.Records)
	}
}

func TestCancelledContextFailsRemainingFiles(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "about.md", "---\ntitle: About\nlayout: aboutme\n---\nhi\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := collect.Pages(ctx, []string{p}, collect.Options{Logger: zerolog.Nop()})
	if len(res.Failures) != 1 || !errors.Is(res.Err(), context.Canceled) {
		t.Fatalf("expected cancellation failure, got %+v", res.Failures)
	}
}

func TestExpandPaths(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "2023-1-2-b.md", "x")
	b := writeFile(t, dir, "2023-1-1-a.md", "x")
	if err := os.Mkdir(filepath.Join(dir, "sub.md"), 0o755); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "missing.md")

	got, err := collect.ExpandPaths([]string{filepath.Join(dir, "*.md"), a, missing})
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	want := []string{b, a, missing}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExpandPathsNothing(t *testing.T) {
	if _, err := collect.ExpandPaths(nil); err == nil {
		t.Fatalf("expected error")
	}
}
