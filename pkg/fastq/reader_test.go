package fastq

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPhredEncoding(t *testing.T) {
	require.Equal(t, 0, int('!')-PhredOffset)
	require.Equal(t, 2, int('#')-PhredOffset)
	require.Equal(t, 40, int('I')-PhredOffset)

	require.True(t, ValidQuality('!'))
	require.True(t, ValidQuality('~'))
	require.False(t, ValidQuality(' '))
	require.False(t, ValidQuality(0x7f))
}

func TestReadTwoRecords(t *testing.T) {
	in := "@r1\nACGT\n+\n!!!!\n@r2 comment\nAC\n+\n##\n"
	r := NewReader(strings.NewReader(in))

	rec, err := r.Read()
	require.NoError(t, err)
	require.Equal(t, "@r1", rec.Header)
	require.Equal(t, "ACGT", rec.Sequence)
	require.Equal(t, "!!!!", rec.Quality)
	require.Equal(t, 4, rec.Length())
	require.Equal(t, "r1", rec.Name())

	rec, err = r.Read()
	require.NoError(t, err)
	require.Equal(t, "@r2 comment", rec.Header)
	require.Equal(t, "r2", rec.Name())
	require.Equal(t, "AC", rec.Sequence)

	_, err = r.Read()
	require.ErrorIs(t, err, io.EOF)

	// EOF is sticky.
	_, err = r.Read()
	require.ErrorIs(t, err, io.EOF)
}

func TestReadStripsTrailingWhitespace(t *testing.T) {
	in := "@r1  \r\nACGT\r\n+\r\n!!!! \r\n"
	r := NewReader(strings.NewReader(in))

	rec, err := r.Read()
	require.NoError(t, err)
	require.Equal(t, "@r1", rec.Header)
	require.Equal(t, "ACGT", rec.Sequence)
	require.Equal(t, "!!!!", rec.Quality)
}

func TestReadEmptyInput(t *testing.T) {
	r := NewReader(strings.NewReader(""))
	_, err := r.Read()
	require.ErrorIs(t, err, io.EOF)
}

func TestReadBlankHeaderIsEndOfStream(t *testing.T) {
	// An empty header slot signals end of stream, not a bad record.
	in := "@r1\nACGT\n+\n!!!!\n\n"
	r := NewReader(strings.NewReader(in))

	_, err := r.Read()
	require.NoError(t, err)

	_, err = r.Read()
	require.ErrorIs(t, err, io.EOF)
}

func TestReadTruncatedRecord(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"header only", "@r1\nACGT\n+\n!!!!\n@r2\n"},
		{"missing separator", "@r1\nACGT\n+\n!!!!\n@r2\nAC\n"},
		{"missing quality", "@r1\nACGT\n+\n!!!!\n@r2\nAC\n+\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(strings.NewReader(tt.in))

			_, err := r.Read()
			require.NoError(t, err)

			_, err = r.Read()
			require.ErrorIs(t, err, ErrTruncatedRecord)

			var ferr *FormatError
			require.ErrorAs(t, err, &ferr)
			require.Equal(t, 2, ferr.Record)
		})
	}
}

func TestReadLengthMismatch(t *testing.T) {
	in := "@r1\nACGT\n+\n!!!\n"
	r := NewReader(strings.NewReader(in))

	_, err := r.Read()
	require.ErrorIs(t, err, ErrLengthMismatch)

	var ferr *FormatError
	require.ErrorAs(t, err, &ferr)
	require.Equal(t, 1, ferr.Record)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.fastq"))
	require.Error(t, err)
	require.True(t, os.IsNotExist(err))
}

func TestOpenAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reads.fastq")
	require.NoError(t, os.WriteFile(path, []byte("@r1\nACGT\n+\n!!!!\n"), 0644))

	fr, err := Open(path)
	require.NoError(t, err)
	defer fr.Close()

	require.Equal(t, path, fr.Path())

	rec, err := fr.Read()
	require.NoError(t, err)
	require.Equal(t, "ACGT", rec.Sequence)

	_, err = fr.Read()
	require.ErrorIs(t, err, io.EOF)
}
