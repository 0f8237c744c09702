package cmd

import (
	"github.com/Georgakopoulos-Soares-lab/Minimum-cost-Genome-Planner/internal/genoplan"
	"github.com/spf13/cobra"
)

// greedyCmd plans each target record with a fast heuristic policy.
var greedyCmd = &cobra.Command{
	Use:                        "greedy",
	Short:                      "Plan a target genome with a greedy heuristic",
	Run:                        genoplan.GreedyCmd,
	SuggestionsMinimumDistance: 2,
	Long: `
Plan each record of the target genome left to right with a myopic block
selection policy. Much faster than 'plan' but with no optimality guarantee;
intended as a baseline for the exact planner.

Policies:
  replication-first   reuse the longest block available at each position
  max-block           reuse only blocks that fill the whole window`,
}

// set flags
func init() {
	rootCmd.AddCommand(greedyCmd)
	addPlannerFlags(greedyCmd)

	greedyCmd.Flags().String("policy", "replication-first", "Block selection policy: replication-first or max-block")
}
