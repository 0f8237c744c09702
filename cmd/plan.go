package cmd

import (
	"github.com/Georgakopoulos-Soares-lab/Minimum-cost-Genome-Planner/config"
	"github.com/Georgakopoulos-Soares-lab/Minimum-cost-Genome-Planner/internal/genoplan"
	"github.com/spf13/cobra"
)

// planCmd computes the exact minimum-cost construction plan per target record.
var planCmd = &cobra.Command{
	Use:                        "plan",
	Short:                      "Compute the minimum-cost construction plan for a target genome",
	Run:                        genoplan.PlanCmd,
	SuggestionsMinimumDistance: 2,
	Long: `
Partition each record of the target genome into blocks of at most --window
bases, each either reused from a source genome (when the block occurs there
verbatim) or synthesized from scratch, so that the summed acquisition and
junction costs are globally minimal.

Emits one CSV row per record (filename, chromosome, length_bp, total_cost),
a STATS_TOTAL row with run-wide move counts, and a final TOTAL row.`,
}

// set flags
func init() {
	rootCmd.AddCommand(planCmd)
	addPlannerFlags(planCmd)
}

// addPlannerFlags registers the flags shared by the plan and greedy commands.
func addPlannerFlags(c *cobra.Command) {
	c.Flags().StringP("target", "t", "", "Input file with the genome to construct <FASTA>")
	c.Flags().StringP("indexes", "x", "", "Comma/space separated list of source indexes (see 'genoplan index')")
	c.Flags().StringP("out", "o", "", "Output file name for the CSV report (default stdout)")
	c.Flags().IntP("window", "w", config.DefaultWindow, "Maximum block length in bp")
	c.Flags().Float64("reuse-cost", config.DefaultReuseCost, "Fixed cost per reused block, regardless of length")
	c.Flags().Float64("join-cost", config.DefaultJoinCost, "Fixed cost per junction between adjacent blocks")
	c.Flags().Float64("synth-cost", config.DefaultSynthCost, "Per-base synthesis cost (linear term)")
	c.Flags().Float64("synth-cost-quad", config.DefaultSynthCostQuad, "Quadratic synthesis cost coefficient (0 for purely linear)")
	c.Flags().Int("workers", 0, "Number of records to plan in parallel (default all CPUs)")

	c.MarkFlagRequired("target")
	c.MarkFlagRequired("indexes")
}
