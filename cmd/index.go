package cmd

import (
	"github.com/Georgakopoulos-Soares-lab/Minimum-cost-Genome-Planner/internal/genoplan"
	"github.com/spf13/cobra"
)

// indexCmd builds the reusable match index over a source genome.
var indexCmd = &cobra.Command{
	Use:                        "index",
	Short:                      "Build a match index over a source genome",
	Run:                        genoplan.IndexCmd,
	SuggestionsMinimumDistance: 2,
	Long: `
Build the exact-substring match index used by the plan and greedy commands
and serialize it to disk. Non-ACGT symbols are stripped before indexing.

Indexing is the dominant one-time setup cost: build the index once per
source genome and reuse it across planning runs.`,
}

// set flags
func init() {
	rootCmd.AddCommand(indexCmd)

	indexCmd.Flags().StringP("in", "i", "", "Input file with the source genome <FASTA>")
	indexCmd.Flags().StringP("out", "o", "", "Output file name for the serialized index")

	indexCmd.MarkFlagRequired("in")
	indexCmd.MarkFlagRequired("out")
}
