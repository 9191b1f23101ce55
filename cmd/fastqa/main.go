package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scttfrdmn/fastqa-go/pkg/fastqa"
)

var rootCmd = &cobra.Command{
	Use:   "fastqa",
	Short: "fastqa - streaming FASTQ statistics",
	Long: `fastqa computes statistics over FASTQ read files in a single
streaming pass: sequence count, read-length distribution, per-position
quality profile, and per-position nucleotide composition.

Files of any size are handled in bounded memory; each command scans
the input at most once.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(lengthCmd)
	rootCmd.AddCommand(qualityCmd)
	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(toBamCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("fastqa-go version " + fastqa.Version)
		fmt.Println("Streaming FASTQ statistics")
	},
}

var (
	countAmbiguous bool
	lenientQuality bool
)

// addAnalysisFlags registers the flags shared by the commands that
// run an aggregation pass.
func addAnalysisFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&countAmbiguous, "count-ambiguous", false,
		"Count ambiguous bases (N etc.) toward the per-position content denominator")
	cmd.Flags().BoolVar(&lenientQuality, "no-strict-quality", false,
		"Accept quality bytes outside the printable Phred+33 range")
}

// openFile opens path with the options selected by the shared flags.
func openFile(path string) (*fastqa.File, error) {
	opts := fastqa.Options{
		CountAmbiguous: countAmbiguous,
		StrictQuality:  !lenientQuality,
	}
	f, err := fastqa.OpenWithOptions(path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open FASTQ file: %w", err)
	}
	return f, nil
}
