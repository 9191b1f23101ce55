package fastqa

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/scttfrdmn/fastqa-go/pkg/fastq"
)

// File is a loaded FASTQ file with a lazily computed, memoized
// Snapshot. The first query runs one aggregation pass; later queries
// are served from the cache. Queries are safe for concurrent use: at
// most one pass runs at a time, and callers racing the first pass
// block until it finishes and then share its snapshot.
//
// Returned slices and maps are views into the cached snapshot and
// must be treated as read-only.
type File struct {
	path string
	id   string
	opts Options

	mu     sync.Mutex
	snap   *Snapshot
	passes int
}

// Open prepares path for analysis with default options. The file is
// probed immediately so that a missing or unreadable file fails here
// rather than on the first query; the streaming pass re-opens it.
func Open(path string) (*File, error) {
	return OpenWithOptions(path, DefaultOptions())
}

// OpenWithOptions is Open with an explicit pass configuration.
func OpenWithOptions(path string, opts Options) (*File, error) {
	r, err := fastq.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fastqa: open %s: %w", path, err)
	}
	_ = r.Close()

	return &File{
		path: path,
		id:   uuid.NewString(),
		opts: opts,
	}, nil
}

// Path returns the file path this handle was opened with.
func (f *File) Path() string { return f.path }

// ID returns the unique handle identifier, stamped into reports.
func (f *File) ID() string { return f.id }

// Passes reports how many aggregation passes have scanned the file.
// Repeated queries on a cached handle leave it at 1.
func (f *File) Passes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.passes
}

// Reload drops the cached snapshot wholesale. The next query triggers
// a fresh pass. There is no partial invalidation.
func (f *File) Reload() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snap = nil
}

// Snapshot returns the cached snapshot, running the aggregation pass
// if none exists. A failed pass caches nothing: every aggregate is
// all-or-nothing, and the error propagates to the caller unchanged.
func (f *File) Snapshot(ctx context.Context) (*Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.snap != nil {
		return f.snap, nil
	}

	r, err := fastq.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("fastqa: open %s: %w", f.path, err)
	}
	defer r.Close()

	f.passes++
	snap, err := Aggregate(ctx, r, f.opts)
	if err != nil {
		return nil, fmt.Errorf("fastqa: aggregate %s: %w", f.path, err)
	}
	f.snap = snap
	return snap, nil
}

// SequenceCount returns the number of records in the file.
func (f *File) SequenceCount(ctx context.Context) (int, error) {
	snap, err := f.Snapshot(ctx)
	if err != nil {
		return 0, err
	}
	return snap.SequenceCount, nil
}

// AverageLength returns the mean read length, 0 for an empty file.
func (f *File) AverageLength(ctx context.Context) (float64, error) {
	snap, err := f.Snapshot(ctx)
	if err != nil {
		return 0, err
	}
	return snap.AverageLength(), nil
}

// LengthDistribution returns each record's length in input order.
func (f *File) LengthDistribution(ctx context.Context) ([]int, error) {
	snap, err := f.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Lengths, nil
}

// QualityProfile returns the mean Phred score per position.
func (f *File) QualityProfile(ctx context.Context) ([]float64, error) {
	snap, err := f.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.QualityProfile(), nil
}

// ContentProfile returns the per-position base percentages keyed by
// "A", "C", "G", "T".
func (f *File) ContentProfile(ctx context.Context) (map[string][]float64, error) {
	snap, err := f.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.ContentProfile(), nil
}
