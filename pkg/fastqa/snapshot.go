// Package fastqa computes streaming statistics over FASTQ read files.
//
// A single pass over a file produces an immutable Snapshot holding
// every raw aggregate; the derived views (average length, per-position
// quality, per-position base content) are pure functions of the
// snapshot. The File type memoizes one snapshot per loaded file so
// repeated queries never re-scan.
package fastqa

// Bases recognized by the per-position content profile. Anything else
// (N, IUPAC ambiguity codes) is ambiguous.
const Bases = "ACGT"

// Snapshot is the immutable result of one full aggregation pass.
// Per-position slices are indexed by 0-based offset within a read;
// with ragged read lengths, positions beyond a short read simply have
// fewer contributing counts.
type Snapshot struct {
	SequenceCount int   `json:"sequence_count"`
	TotalBases    int64 `json:"total_bases"`

	// Lengths holds one entry per record, in input order.
	Lengths []int `json:"lengths"`

	QualitySums   []int64 `json:"quality_sums"`
	QualityCounts []int64 `json:"quality_counts"`

	// BaseCounts maps "A"/"C"/"G"/"T" to per-position counts.
	// PositionTotals is the per-position denominator: recognized bases
	// only, unless the pass ran with CountAmbiguous.
	BaseCounts     map[string][]int64 `json:"base_counts"`
	PositionTotals []int64            `json:"position_totals"`
}

// AverageLength returns the mean read length, 0 for an empty file.
func (s *Snapshot) AverageLength() float64 {
	if s.SequenceCount == 0 {
		return 0
	}
	return float64(s.TotalBases) / float64(s.SequenceCount)
}

// MinLength returns the shortest read length, 0 for an empty file.
func (s *Snapshot) MinLength() int {
	min := 0
	for i, n := range s.Lengths {
		if i == 0 || n < min {
			min = n
		}
	}
	return min
}

// MaxLength returns the longest read length, 0 for an empty file.
func (s *Snapshot) MaxLength() int {
	max := 0
	for _, n := range s.Lengths {
		if n > max {
			max = n
		}
	}
	return max
}

// QualityProfile returns the mean Phred score per position, averaged
// over the records whose read reaches that position.
func (s *Snapshot) QualityProfile() []float64 {
	profile := make([]float64, len(s.QualitySums))
	for i, sum := range s.QualitySums {
		if s.QualityCounts[i] > 0 {
			profile[i] = float64(sum) / float64(s.QualityCounts[i])
		}
	}
	return profile
}

// ContentProfile returns the per-position percentage of each
// recognized base, 0 where the position denominator is 0.
func (s *Snapshot) ContentProfile() map[string][]float64 {
	profile := make(map[string][]float64, len(Bases))
	for _, b := range Bases {
		counts := s.BaseCounts[string(b)]
		pcts := make([]float64, len(s.PositionTotals))
		for i := range pcts {
			if s.PositionTotals[i] > 0 && i < len(counts) {
				pcts[i] = float64(counts[i]) / float64(s.PositionTotals[i]) * 100
			}
		}
		profile[string(b)] = pcts
	}
	return profile
}

// GCContent returns the overall G+C percentage across recognized
// bases, 0 for an empty file.
func (s *Snapshot) GCContent() float64 {
	var gc, total int64
	for base, counts := range s.BaseCounts {
		for _, n := range counts {
			total += n
			if base == "G" || base == "C" {
				gc += n
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(gc) / float64(total) * 100
}

// Statistics summarizes a snapshot for display and report export.
type Statistics struct {
	SequenceCount int     `json:"sequence_count"`
	TotalBases    int64   `json:"total_bases"`
	AverageLength float64 `json:"average_length"`
	MinLength     int     `json:"min_length"`
	MaxLength     int     `json:"max_length"`
	GCContent     float64 `json:"gc_content"`
}

// Statistics derives the summary view of the snapshot.
func (s *Snapshot) Statistics() Statistics {
	return Statistics{
		SequenceCount: s.SequenceCount,
		TotalBases:    s.TotalBases,
		AverageLength: s.AverageLength(),
		MinLength:     s.MinLength(),
		MaxLength:     s.MaxLength(),
		GCContent:     s.GCContent(),
	}
}
