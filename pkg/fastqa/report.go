package fastqa

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/shenwei356/xopen"
)

// Report format identification.
const (
	ReportFormat  = "fastqa"
	ReportVersion = "1.0"
)

// Version is the fastqa-go release version.
const Version = "0.1.0"

// Source describes the analyzed input file.
type Source struct {
	File   string `json:"file"`
	Format string `json:"format"`
}

// ReportMetadata is the report envelope.
type ReportMetadata struct {
	Format    string    `json:"format"`
	Version   string    `json:"version"`
	Created   time.Time `json:"created"`
	CreatedBy string    `json:"created_by"`
	Source    Source    `json:"source"`
	HandleID  string    `json:"handle_id"`
}

// Report is the full machine-readable analysis document: summary
// statistics, the raw snapshot, and both derived profiles.
type Report struct {
	Metadata       ReportMetadata       `json:"metadata"`
	Statistics     Statistics           `json:"statistics"`
	Snapshot       *Snapshot            `json:"snapshot"`
	QualityProfile []float64            `json:"quality_profile"`
	ContentProfile map[string][]float64 `json:"content_profile"`
}

// BuildReport runs (or reuses) the file's aggregation pass and
// assembles the report document.
func BuildReport(ctx context.Context, f *File) (*Report, error) {
	snap, err := f.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return &Report{
		Metadata: ReportMetadata{
			Format:    ReportFormat,
			Version:   ReportVersion,
			Created:   time.Now().UTC(),
			CreatedBy: "fastqa-go " + Version,
			Source:    Source{File: filepath.Base(f.Path()), Format: "FASTQ"},
			HandleID:  f.ID(),
		},
		Statistics:     snap.Statistics(),
		Snapshot:       snap,
		QualityProfile: snap.QualityProfile(),
		ContentProfile: snap.ContentProfile(),
	}, nil
}

// EncodeReport writes the report to w as indented JSON, zstd-framed
// when compressed is set.
func EncodeReport(w io.Writer, rep *Report, compressed bool) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if compressed {
		if data, err = compress(data); err != nil {
			return fmt.Errorf("failed to compress report: %w", err)
		}
	} else {
		data = append(data, '\n')
	}

	_, err = w.Write(data)
	return err
}

// WriteReport writes the report to path ("-" for stdout). A .zst or
// .gz suffix selects the matching compression, applied by the output
// layer; the compressed flag selects zstd framing for paths the
// output layer leaves plain, such as "-".
func WriteReport(path string, rep *Report, compressed bool) error {
	// xopen already zstd-frames a .zst path; compressing the payload
	// here as well would nest two frames.
	if strings.HasSuffix(path, ".zst") {
		compressed = false
	}

	w, err := xopen.Wopen(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer w.Close()

	return EncodeReport(w, rep, compressed)
}

// ReadReport reads a report written by WriteReport, sniffing the zstd
// frame magic to decide whether to decompress.
func ReadReport(path string) (*Report, error) {
	r, err := xopen.Ropen(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open report file: %w", err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}

	if isZstd(data) {
		if data, err = decompress(data); err != nil {
			return nil, fmt.Errorf("failed to decompress report: %w", err)
		}
	}

	var rep Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("failed to parse report: %w", err)
	}
	return &rep, nil
}
