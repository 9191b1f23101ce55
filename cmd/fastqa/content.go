package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var contentCmd = &cobra.Command{
	Use:   "content <reads.fastq>",
	Short: "Show the per-position nucleotide composition",
	Long: `Display the percentage of A, C, G, and T at each read position.

Bases outside {A,C,G,T} are excluded from both numerator and
denominator unless --count-ambiguous is set, in which case they still
count toward the denominator and the four columns sum below 100%.

Example:
  fastqa content sample.fastq`,
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

		profile := snap.ContentProfile()
		if len(snap.PositionTotals) == 0 {
			fmt.Println("No reads in file")
			return nil
		}

		fmt.Printf("%-10s %-8s %-8s %-8s %-8s %s\n",
			"position", "%A", "%C", "%G", "%T", "bases")
		for i := range snap.PositionTotals {
			fmt.Printf("%-10d %-8.2f %-8.2f %-8.2f %-8.2f %d\n",
				i,
				profile["A"][i], profile["C"][i],
				profile["G"][i], profile["T"][i],
				snap.PositionTotals[i])
		}

		return nil
	},
}

func init() {
	addAnalysisFlags(contentCmd)
}
