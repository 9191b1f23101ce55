package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <reads.fastq>",
	Short: "Show summary statistics for a FASTQ file",
	Long: `Display summary statistics for a FASTQ file.

The file is scanned once; sequence count, length summary, total data
volume, and GC content all come from the same pass.

Example:
  fastqa stats sample.fastq`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := openFile(args[0])
		if err != nil {
			return err
		}

		snap, err := f.Snapshot(cmd.Context())
		if err != nil {
			return err
		}
		stats := snap.Statistics()

		fmt.Println("===========================================")
		fmt.Println("FASTQ File Statistics")
		fmt.Println("===========================================")
		fmt.Println()
		fmt.Printf("File: %s\n", f.Path())
		fmt.Println()
		fmt.Printf("  Sequence count: %d\n", stats.SequenceCount)
		fmt.Printf("  Total bases: %d\n", stats.TotalBases)
		fmt.Printf("  Average length: %.2f bp\n", stats.AverageLength)
		fmt.Printf("  Min length: %d bp\n", stats.MinLength)
		fmt.Printf("  Max length: %d bp\n", stats.MaxLength)
		fmt.Printf("  GC content: %.2f%%\n", stats.GCContent)

		return nil
	},
}

func init() {
	addAnalysisFlags(statsCmd)
}
