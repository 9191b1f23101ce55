package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var lengthCmd = &cobra.Command{
	Use:   "length <reads.fastq>",
	Short: "Show the read-length distribution",
	Long: `Display the read-length distribution of a FASTQ file as a
length/count table, in ascending length order.

Example:
  fastqa length sample.fastq`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := openFile(args[0])
		if err != nil {
			return err
		}

		lengths, err := f.LengthDistribution(cmd.Context())
		if err != nil {
			return err
		}

		if len(lengths) == 0 {
			fmt.Println("No reads in file")
			return nil
		}

		hist := make(map[int]int)
		for _, n := range lengths {
			hist[n]++
		}
		keys := make([]int, 0, len(hist))
		for n := range hist {
			keys = append(keys, n)
		}
		sort.Ints(keys)

		fmt.Printf("%-10s %s\n", "length", "reads")
		for _, n := range keys {
			fmt.Printf("%-10d %d\n", n, hist[n])
		}

		return nil
	},
}

func init() {
	addAnalysisFlags(lengthCmd)
}
