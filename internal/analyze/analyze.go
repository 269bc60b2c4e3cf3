// Package analyze runs the extractor over a batch of SQL files. Per-file
// parses are independent, so they run on a bounded worker pool; the merge
// at the end is a pure union/sum reduction and does not depend on
// completion order.
package analyze

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"sqlxref/internal/extract"
	"sqlxref/internal/sqlscan"
)

// FileResult pairs one input path with its extraction result.
type FileResult struct {
	Path   string
	Result *extract.Result
}

// Options configures a batch run.
type Options struct {
	// Workers bounds the number of files parsed concurrently. Values < 1
	// mean one worker.
	Workers int
	// Split is forwarded to the statement splitter.
	Split sqlscan.Options
	// Logger receives per-file progress at debug level. Nil means the
	// default slog logger.
	Logger *slog.Logger
}

// Files parses every path and returns the per-file results in input order
// together with the merged aggregate. An unreadable file fails the whole
// batch; extraction itself never fails.
func Files(ctx context.Context, paths []string, opts Options) ([]FileResult, *extract.Result, error) {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	results := make([]FileResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("analyze: read %q: %w", path, err)
			}
			res := extract.ParseWithOptions(string(data), opts.Split)
			logger.DebugContext(ctx, "parsed file",
				"path", path,
				"statements", len(res.Statements),
				"tables", len(res.TableOccurrences),
				"fields", len(res.FieldOccurrences))
			results[i] = FileResult{Path: path, Result: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	partials := make([]*extract.Result, len(results))
	for i, fr := range results {
		partials[i] = fr.Result
	}
	merged := extract.Merge(partials...)

	logger.DebugContext(ctx, "merged batch",
		"files", len(paths),
		"statements", len(merged.Statements),
		"tables", len(merged.TableOccurrences),
		"fields", len(merged.FieldOccurrences))

	return results, merged, nil
}
