package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scttfrdmn/fastqa-go/pkg/bam"
)

var toBamCmd = &cobra.Command{
	Use:   "to-bam <reads.fastq> <output.bam>",
	Short: "Convert a FASTQ file to unaligned BAM",
	Long: `Convert a FASTQ file to an unaligned BAM file.

Records are written with no reference, the unmapped flag set, and
Phred scores decoded from the Phred+33 quality string. Use "-" as the
output path to stream BAM to stdout:

  fastqa to-bam reads.fastq - | samtools view -`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		inPath := args[0]
		outPath := args[1]
		isStdout := (outPath == "-")

		if !isStdout {
			fmt.Fprintf(os.Stderr, "Converting %s to unaligned BAM...\n", inPath)
		}

		count, err := bam.ConvertFastqToBAM(cmd.Context(), inPath, outPath)
		if err != nil {
			return fmt.Errorf("conversion failed: %w", err)
		}

		if !isStdout {
			fmt.Fprintf(os.Stderr, "Reads written: %d\n", count)
			fmt.Fprintf(os.Stderr, "Output: %s\n", outPath)
		}
		return nil
	},
}
