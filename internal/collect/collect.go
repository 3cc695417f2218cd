// Package collect runs extraction over many files, keeping going past
// failures so every bad file can be reported in one pass.
package collect

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/KaramelBytes/postkit/internal/config"
	"github.com/KaramelBytes/postkit/internal/posts"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Options controls a batch run.
type Options struct {
	// Workers bounds concurrent extractions; values below 1 mean 1.
	Workers int
	Logger  zerolog.Logger
}

// Failure records a file that could not be extracted.
type Failure struct {
	Path string `json:"path"`
	Err  error  `json:"-"`
}

// Error returns the cause; extraction errors already name the file.
func (f Failure) Error() string { return f.Err.Error() }

func (f Failure) Unwrap() error { return f.Err }

// Result holds the records that were extracted, in input order, and every
// failure.
type Result[T any] struct {
	RunID    string
	Records  []T
	Failures []Failure
}

// Err joins all failures, or returns nil when there were none.
func (r Result[T]) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	errs := make([]error, 0, len(r.Failures))
	for _, f := range r.Failures {
		errs = append(errs, f)
	}
	return errors.Join(errs...)
}

// Posts extracts every path as a post.
func Posts(ctx context.Context, paths []string, manifest *config.Manifest, opts Options) Result[*posts.Post] {
	return run(ctx, paths, opts, func(path string) (*posts.Post, error) {
		return posts.OpenPost(path, manifest)
	})
}

// Pages extracts every path as a static page.
func Pages(ctx context.Context, paths []string, opts Options) Result[*posts.StaticPage] {
	return run(ctx, paths, opts, posts.OpenPage)
}

func run[T any](ctx context.Context, paths []string, opts Options, open func(string) (T, error)) Result[T] {
	runID := uuid.NewString()
	log := opts.Logger.With().Str("run_id", runID).Logger()

	type slot struct {
		rec T
		err error
	}
	slots := make([]slot, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				slots[i].err = err
				return nil
			}
			log.Debug().Str("path", path).Msg("extracting")
			slots[i].rec, slots[i].err = open(path)
			return nil
		})
	}
	_ = g.Wait()

	res := Result[T]{RunID: runID}
	for i, s := range slots {
		if s.err != nil {
			log.Warn().Err(s.err).Str("path", paths[i]).Msg("extraction failed")
			res.Failures = append(res.Failures, Failure{Path: paths[i], Err: s.err})
			continue
		}
		res.Records = append(res.Records, s.rec)
	}
	log.Info().Int("ok", len(res.Records)).Int("failed", len(res.Failures)).Msg("batch done")
	return res
}

// ExpandPaths resolves literal paths and shell-style globs into a sorted,
// de-duplicated file list. Directories are not descended into.
func ExpandPaths(args []string) ([]string, error) {
	var files []string
	seen := map[string]struct{}{}
	for _, arg := range args {
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			// treat as literal path so a missing file is reported as a failure
			matches = []string{arg}
		}
		for _, m := range matches {
			if info, err := os.Stat(m); err == nil && info.IsDir() {
				continue
			}
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			files = append(files, m)
		}
	}
	if len(files) == 0 {
		return nil, errors.New("no input files matched")
	}
	sort.Strings(files)
	return files, nil
}
