package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scttfrdmn/fastqa-go/pkg/fastqa"
)

var compressReport bool

var reportCmd = &cobra.Command{
	Use:   "report <reads.fastq> <report.json>",
	Short: "Write a full analysis report as JSON",
	Long: `Run the full analysis pass and write a machine-readable JSON
report: summary statistics, the raw aggregate snapshot, and the
derived quality and content profiles.

Use "-" as the output path to write to stdout. A .zst suffix (or
--compress) selects zstd compression; a .gz suffix selects gzip.

Examples:
  fastqa report sample.fastq sample.json
  fastqa report sample.fastq sample.json.zst
  fastqa report sample.fastq - | jq .statistics`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := openFile(args[0])
		if err != nil {
			return err
		}

		rep, err := fastqa.BuildReport(cmd.Context(), f)
		if err != nil {
			return err
		}

		if err := fastqa.WriteReport(args[1], rep, compressReport); err != nil {
			return err
		}

		if args[1] != "-" {
			fmt.Printf("Report written: %s (%d reads)\n",
				args[1], rep.Statistics.SequenceCount)
		}
		return nil
	},
}

func init() {
	addAnalysisFlags(reportCmd)
	reportCmd.Flags().BoolVar(&compressReport, "compress", false,
		"Compress the report with zstd")
}
