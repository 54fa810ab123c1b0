// Package ingest finds event-log files on disk and folds them into a CountTree.
package ingest

import (
	"context"
	"fmt"
	"time"

	"drilldown/internal/analytics"
	"drilldown/internal/logging"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is how many files are read at once when Options leaves it unset.
const DefaultConcurrency = 4

// Options configures Load.
type Options struct {
	Source      Source
	Prefix      string // file-name prefix before the date
	Concurrency int
	Progress    Progress
}

// Stats summarises one Load.
type Stats struct {
	RunID       string
	Directories int
	Files       int
	Records     int
	Skipped     int
	Days        int
	Replaced    int
	Compressed  int
	Elapsed     time.Duration
}

// Result is a finished tree and how it was built.
type Result struct {
	Tree  analytics.CountTree
	Stats Stats
}

type decoded struct {
	records []analytics.EventRecord
	kind    Compression
}

// Load discovers the files of opts.Source and builds the tree.
//
// Every file name is checked before any file is read, so a misnamed file fails the
// run without partial work. Files are read and decoded in parallel; the first error
// cancels the rest. Results are then folded one at a time in discovery order, so a
// later file for an already-seen day replaces the earlier one.
func Load(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	runID := uuid.NewString()
	log := logging.Get(logging.CategoryIngest).With("run_id", runID)

	progress := opts.Progress
	if progress == nil {
		progress = nopProgress{}
	}
	limit := opts.Concurrency
	if limit < 1 {
		limit = DefaultConcurrency
	}
	parser := analytics.NewParser(opts.Prefix)

	scan, err := Discover(opts.Source)
	if err != nil {
		return nil, err
	}
	log.Infow("scan complete",
		"dir", scan.Root,
		"recursive", opts.Source.Recursive,
		"directories", len(scan.Dirs),
		"files", len(scan.Files),
	)
	for range scan.Dirs {
		progress.Increment(TaskDirectories, share(len(scan.Dirs)))
	}

	dates := make([]analytics.FileDate, len(scan.Files))
	for i, path := range scan.Files {
		date, err := analytics.ParseFileDate(path, parser.Prefix)
		if err != nil {
			return nil, err
		}
		dates[i] = date
	}

	step := share(len(scan.Files))
	if len(scan.Files) == 0 {
		progress.Increment(TaskFiles, step)
		progress.Increment(TaskProcessing, step)
	}

	payloads := make([]decoded, len(scan.Files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, path := range scan.Files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, kind, err := ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			records, err := analytics.DecodeRecords(data)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			payloads[i] = decoded{records: records, kind: kind}
			progress.Increment(TaskFiles, step)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Errorw("ingest failed", "error", err)
		return nil, err
	}

	agg := analytics.NewAggregator()
	stats := Stats{
		RunID:       runID,
		Directories: len(scan.Dirs),
		Files:       len(scan.Files),
	}
	for i, path := range scan.Files {
		res := parser.ParseRecords(path, dates[i], payloads[i].records)
		agg.AddResult(res)
		stats.Records += res.Records
		stats.Skipped += res.Skipped()
		if payloads[i].kind != CompressionNone {
			stats.Compressed++
		}
		progress.Increment(TaskProcessing, step)
	}

	stats.Days = agg.Days()
	stats.Replaced = agg.Replaced()
	stats.Elapsed = time.Since(start)
	log.Infow("ingest complete",
		"days", stats.Days,
		"records", stats.Records,
		"skipped", stats.Skipped,
		"replaced", stats.Replaced,
		"compressed", stats.Compressed,
		"elapsed", stats.Elapsed,
	)
	return &Result{Tree: agg.Tree(), Stats: stats}, nil
}
