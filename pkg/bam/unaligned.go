// Package bam exports FASTQ record streams as unaligned BAM files.
package bam

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"

	"github.com/scttfrdmn/fastqa-go/pkg/fastq"
)

// RecordSource yields FASTQ records until io.EOF.
type RecordSource interface {
	Read() (fastq.Record, error)
}

// WriteUnaligned streams records from src into w as unaligned BAM:
// no reference, the unmapped flag set, and Phred scores decoded from
// the Phred+33 quality string. It returns the number of records
// written. A malformed input record aborts the export.
func WriteUnaligned(ctx context.Context, src RecordSource, w io.Writer) (int, error) {
	header, err := sam.NewHeader(nil, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create header: %w", err)
	}
	header.SortOrder = sam.Unsorted

	bw, err := bam.NewWriter(w, header, 1)
	if err != nil {
		return 0, fmt.Errorf("failed to create BAM writer: %w", err)
	}

	count := 0
	for {
		select {
		case <-ctx.Done():
			return count, ctx.Err()
		default:
		}

		rec, err := src.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return count, err
		}

		record, err := convertRecord(rec, count+1)
		if err != nil {
			return count, fmt.Errorf("failed to convert read %s: %w", rec.Name(), err)
		}

		if err := bw.Write(record); err != nil {
			return count, fmt.Errorf("failed to write read: %w", err)
		}
		count++
	}

	if err := bw.Close(); err != nil {
		return count, fmt.Errorf("failed to close BAM writer: %w", err)
	}
	return count, nil
}

// convertRecord converts a FASTQ record to an unaligned sam.Record.
func convertRecord(rec fastq.Record, recNum int) (*sam.Record, error) {
	record := &sam.Record{
		Name:    rec.Name(),
		Flags:   sam.Unmapped,
		Ref:     nil,
		Pos:     -1,
		MateRef: nil,
		MatePos: -1,
	}

	record.Seq = sam.NewSeq([]byte(rec.Sequence))

	qual := make([]byte, len(rec.Quality))
	for i := 0; i < len(rec.Quality); i++ {
		q := rec.Quality[i]
		if !fastq.ValidQuality(q) {
			return nil, &fastq.FormatError{Record: recNum, Err: fastq.ErrQualityOutOfRange}
		}
		qual[i] = q - fastq.PhredOffset
	}
	record.Qual = qual

	return record, nil
}

// ConvertFastqToBAM streams inPath into an unaligned BAM at outPath
// ("-" for stdout) and returns the number of records written.
func ConvertFastqToBAM(ctx context.Context, inPath, outPath string) (int, error) {
	r, err := fastq.Open(inPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open FASTQ file: %w", err)
	}
	defer r.Close()

	var w io.Writer
	if outPath == "-" {
		w = os.Stdout
	} else {
		f, err := os.Create(outPath)
		if err != nil {
			return 0, fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	return WriteUnaligned(ctx, r, w)
}
