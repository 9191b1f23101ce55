// Package fastq provides streaming access to FASTQ read files.
//
// A FASTQ record is four lines: a header line, the sequence, a
// separator line (ignored), and a quality string encoding one
// Phred+33 score per base. The Reader yields one record at a time
// without materializing the file.
package fastq

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// PhredOffset is the Phred+33 encoding offset: score = byte - 33.
const PhredOffset = 33

// ValidQuality reports whether q is within the printable Phred+33
// range ('!' through '~').
func ValidQuality(q byte) bool {
	return q >= '!' && q <= '~'
}

// Format-level errors. All surface wrapped in a *FormatError that
// carries the offending record number.
var (
	// ErrTruncatedRecord means a non-empty header line was followed by
	// a missing sequence, separator, or quality line. This is distinct
	// from end of input, which is only signaled when the header line
	// slot itself is empty or absent.
	ErrTruncatedRecord = errors.New("truncated record")

	// ErrLengthMismatch means the quality string length does not match
	// the sequence length.
	ErrLengthMismatch = errors.New("sequence and quality lengths differ")

	// ErrQualityOutOfRange means a quality byte falls outside the
	// printable Phred+33 range ('!' through '~').
	ErrQualityOutOfRange = errors.New("quality score outside Phred+33 range")
)

// FormatError reports a malformed record and its 1-based position in
// the input.
type FormatError struct {
	Record int
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("fastq: record %d: %v", e.Record, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Record is a single FASTQ entry. The separator line is discarded
// during parsing. Header content and sequence alphabet are passed
// through unvalidated.
type Record struct {
	Header   string
	Sequence string
	Quality  string
}

// Length returns the read length in bases.
func (r Record) Length() int { return len(r.Sequence) }

// Name returns the read name: the header with the leading '@' marker
// stripped, truncated at the first whitespace.
func (r Record) Name() string {
	name := strings.TrimPrefix(r.Header, "@")
	if i := strings.IndexAny(name, " \t"); i >= 0 {
		name = name[:i]
	}
	return name
}

// Reader streams FASTQ records from an input stream.
type Reader struct {
	sc *bufio.Scanner
	n  int // records delivered so far
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	// Allow very long reads (long-read platforms); 16 MiB per line.
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, 16*1024*1024)
	return &Reader{sc: sc}
}

// Read returns the next record, io.EOF at end of input, or a
// *FormatError for a malformed record. End of input is recognized
// only at the header line position; a record cut off mid-group is
// ErrTruncatedRecord.
func (r *Reader) Read() (Record, error) {
	header, ok, err := r.line()
	if err != nil {
		return Record{}, err
	}
	if !ok || header == "" {
		return Record{}, io.EOF
	}
	r.n++

	seq, ok, err := r.line()
	if err != nil {
		return Record{}, err
	}
	if !ok {
		return Record{}, &FormatError{Record: r.n, Err: ErrTruncatedRecord}
	}

	// Separator line, content ignored.
	if _, ok, err = r.line(); err != nil {
		return Record{}, err
	} else if !ok {
		return Record{}, &FormatError{Record: r.n, Err: ErrTruncatedRecord}
	}

	qual, ok, err := r.line()
	if err != nil {
		return Record{}, err
	}
	if !ok {
		return Record{}, &FormatError{Record: r.n, Err: ErrTruncatedRecord}
	}

	if len(seq) != len(qual) {
		return Record{}, &FormatError{Record: r.n, Err: ErrLengthMismatch}
	}

	return Record{Header: header, Sequence: seq, Quality: qual}, nil
}

// line scans one line with trailing whitespace stripped. ok is false
// at end of input.
func (r *Reader) line() (string, bool, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", false, fmt.Errorf("fastq: scan: %w", err)
		}
		return "", false, nil
	}
	return strings.TrimRight(r.sc.Text(), " \t\r"), true, nil
}

// FileReader is a Reader bound to an opened file.
type FileReader struct {
	*Reader
	f *os.File
}

// Open opens path for streaming. Open errors (missing file,
// permission denied) are surfaced immediately.
func Open(path string) (*FileReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &FileReader{Reader: NewReader(f), f: f}, nil
}

// Path returns the name of the underlying file.
func (fr *FileReader) Path() string { return fr.f.Name() }

// Close closes the underlying file.
func (fr *FileReader) Close() error { return fr.f.Close() }
