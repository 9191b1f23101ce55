package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var qualityCmd = &cobra.Command{
	Use:   "quality <reads.fastq>",
	Short: "Show the per-position quality profile",
	Long: `Display the mean Phred quality score per read position.

With ragged read lengths, each position is averaged over the reads
that reach it; the reads column shows how many contributed.

Example:
  fastqa quality sample.fastq`,
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

		profile := snap.QualityProfile()
		if len(profile) == 0 {
			fmt.Println("No reads in file")
			return nil
		}

		fmt.Printf("%-10s %-12s %s\n", "position", "mean_qual", "reads")
		for i, q := range profile {
			fmt.Printf("%-10d %-12.2f %d\n", i, q, snap.QualityCounts[i])
		}

		return nil
	},
}

func init() {
	addAnalysisFlags(qualityCmd)
}
