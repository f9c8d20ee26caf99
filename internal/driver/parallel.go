package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// FixtureSuffix is the file extension batch decoration picks up.
const FixtureSuffix = ".brec.toml"

// Event is one progress notification of a batch run.
type Event struct {
	Path  string
	Done  int
	Total int
	Err   error
}

// DirOptions configures a batch decoration run.
type DirOptions struct {
	Options
	// Jobs caps worker parallelism; 0 means GOMAXPROCS.
	Jobs int
	// Events receives one notification per finished fixture when non-nil.
	// The channel is never closed by the driver.
	Events chan<- Event
}

// ListFixtures returns the sorted list of all fixture files under dir.
func ListFixtures(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, FixtureSuffix) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Deterministic order
	sort.Strings(files)
	return files, nil
}

// DecorateDir decorates every fixture under dir in parallel. Results come
// back in the same order as the sorted fixture list; per-fixture problems
// live in each result's bag, and only I/O on the directory itself or a
// canceled context fail the batch.
func DecorateDir(ctx context.Context, dir string, opts DirOptions) ([]*Result, error) {
	files, err := ListFixtures(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Indexes are unique per goroutine, no mutex needed.
	results := make([]*Result, len(files))
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			res, err := DecorateFile(path, opts.Options)
			if err != nil {
				notify(opts.Events, Event{Path: path, Done: int(done.Add(1)), Total: len(files), Err: err})
				return err
			}
			results[i] = res
			notify(opts.Events, Event{Path: path, Done: int(done.Add(1)), Total: len(files)})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// notify sends without blocking; a slow consumer drops events rather than
// stalling workers.
func notify(ch chan<- Event, ev Event) {
	if ch == nil {
		return
	}
	select {
	case ch <- ev:
	default:
	}
}
