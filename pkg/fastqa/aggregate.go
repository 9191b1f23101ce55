package fastqa

import (
	"context"
	"errors"
	"io"

	"github.com/scttfrdmn/fastqa-go/pkg/fastq"
)

// Options configures an aggregation pass.
type Options struct {
	// CountAmbiguous counts bases outside {A,C,G,T} toward the
	// per-position content denominator. They never count toward a
	// base's numerator. Off, ambiguous bases are excluded from both.
	CountAmbiguous bool

	// StrictQuality rejects quality bytes outside the printable
	// Phred+33 range ('!' through '~') with a format error.
	StrictQuality bool
}

// DefaultOptions returns the default pass configuration: ambiguous
// bases excluded from the denominator, quality range enforced.
func DefaultOptions() Options {
	return Options{StrictQuality: true}
}

// RecordSource yields FASTQ records until io.EOF. *fastq.Reader and
// *fastq.FileReader satisfy it.
type RecordSource interface {
	Read() (fastq.Record, error)
}

// Aggregate consumes src exactly once and folds all statistics in a
// single traversal: record count, total bases, per-record lengths,
// per-position quality sums/counts, and per-position base counts.
//
// The pass is all-or-nothing: a malformed record or a canceled
// context aborts with an error and no snapshot. The context is
// checked between records, so a long pass over a large file can be
// abandoned at record granularity.
//
// Time is O(total bytes); auxiliary memory is O(longest read ×
// alphabet) plus the per-record length list.
func Aggregate(ctx context.Context, src RecordSource, opts Options) (*Snapshot, error) {
	var (
		count      int
		totalBases int64
		lengths    []int
		qSums      []int64
		qCounts    []int64
		posTotals  []int64
	)
	baseCounts := map[byte][]int64{'A': nil, 'C': nil, 'G': nil, 'T': nil}

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		rec, err := src.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		n := rec.Length()
		count++
		totalBases += int64(n)
		lengths = append(lengths, n)

		qSums = grow(qSums, n)
		qCounts = grow(qCounts, n)
		for i := 0; i < len(rec.Quality); i++ {
			q := rec.Quality[i]
			if opts.StrictQuality && !fastq.ValidQuality(q) {
				return nil, &fastq.FormatError{Record: count, Err: fastq.ErrQualityOutOfRange}
			}
			qSums[i] += int64(q) - fastq.PhredOffset
			qCounts[i]++
		}

		posTotals = grow(posTotals, n)
		for b := range baseCounts {
			baseCounts[b] = grow(baseCounts[b], n)
		}
		for i := 0; i < n; i++ {
			b := rec.Sequence[i]
			if b >= 'a' && b <= 'z' {
				b -= 'a' - 'A'
			}
			counts, recognized := baseCounts[b]
			if !recognized {
				if opts.CountAmbiguous {
					posTotals[i]++
				}
				continue
			}
			counts[i]++
			posTotals[i]++
		}
	}

	snap := &Snapshot{
		SequenceCount:  count,
		TotalBases:     totalBases,
		Lengths:        lengths,
		QualitySums:    qSums,
		QualityCounts:  qCounts,
		BaseCounts:     make(map[string][]int64, len(baseCounts)),
		PositionTotals: posTotals,
	}
	for b, counts := range baseCounts {
		snap.BaseCounts[string(b)] = counts
	}
	return snap, nil
}

// grow pads s with zeros up to length n.
func grow(s []int64, n int) []int64 {
	for len(s) < n {
		s = append(s, 0)
	}
	return s
}
