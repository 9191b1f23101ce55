package bam

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scttfrdmn/fastqa-go/pkg/fastq"
)

func TestWriteUnalignedRoundTrip(t *testing.T) {
	in := "@r1 lane1\nACGT\n+\n!!#I\n@r2\nAC\n+\n##\n"
	src := fastq.NewReader(strings.NewReader(in))

	var buf bytes.Buffer
	count, err := WriteUnaligned(context.Background(), src, &buf)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	br, err := bam.NewReader(bytes.NewReader(buf.Bytes()), 1)
	require.NoError(t, err)
	defer br.Close()

	rec, err := br.Read()
	require.NoError(t, err)
	assert.Equal(t, "r1", rec.Name)
	assert.NotZero(t, rec.Flags&sam.Unmapped)
	assert.Equal(t, []byte("ACGT"), rec.Seq.Expand())
	assert.Equal(t, []byte{0, 0, 2, 40}, rec.Qual)

	rec, err = br.Read()
	require.NoError(t, err)
	assert.Equal(t, "r2", rec.Name)
	assert.Equal(t, []byte("AC"), rec.Seq.Expand())

	_, err = br.Read()
	require.ErrorIs(t, err, io.EOF)
}

func TestWriteUnalignedEmptyInput(t *testing.T) {
	var buf bytes.Buffer
	count, err := WriteUnaligned(context.Background(), fastq.NewReader(strings.NewReader("")), &buf)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestWriteUnalignedMalformedInput(t *testing.T) {
	in := "@r1\nACGT\n+\n!!!!\n@r2\nAC\n"
	var buf bytes.Buffer
	_, err := WriteUnaligned(context.Background(), fastq.NewReader(strings.NewReader(in)), &buf)
	require.ErrorIs(t, err, fastq.ErrTruncatedRecord)
}

func TestWriteUnalignedQualityOutOfRange(t *testing.T) {
	in := "@r1\nACG\n+\n! !\n"
	var buf bytes.Buffer
	_, err := WriteUnaligned(context.Background(), fastq.NewReader(strings.NewReader(in)), &buf)
	require.ErrorIs(t, err, fastq.ErrQualityOutOfRange)
}

func TestWriteUnalignedCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	_, err := WriteUnaligned(ctx, fastq.NewReader(strings.NewReader("")), &buf)
	require.True(t, errors.Is(err, context.Canceled))
}
