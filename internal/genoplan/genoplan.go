// Package genoplan wires the planners, the match index, and the report
// writer behind the genoplan commands.
package genoplan

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/Georgakopoulos-Soares-lab/Minimum-cost-Genome-Planner/internal/fasta"
	"github.com/Georgakopoulos-Soares-lab/Minimum-cost-Genome-Planner/internal/fmindex"
	"github.com/Georgakopoulos-Soares-lab/Minimum-cost-Genome-Planner/internal/planner"
	"github.com/spf13/cobra"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// IndexCmd builds the forward/reverse match index over a source genome
// FASTA and serializes it for reuse across planning runs.
func IndexCmd(cmd *cobra.Command, args []string) {
	in, _ := cmd.Flags().GetString("in")
	out, _ := cmd.Flags().GetString("out")

	records, err := fasta.Read(in)
	if err != nil {
		stderr.Fatalln(err)
	}

	seqs := make([][]byte, 0, len(records))
	bases := 0
	for _, r := range records {
		if len(r.Seq) == 0 {
			continue
		}
		seqs = append(seqs, r.Seq)
		bases += len(r.Seq)
	}
	if len(seqs) == 0 {
		stderr.Fatalf("no usable records in %s", in)
	}

	handle := fmindex.New(filepath.Base(in), seqs)
	if err := handle.Save(out); err != nil {
		stderr.Fatalln(err)
	}
	stderr.Printf("indexed %d records (%d bp) from %s into %s", len(seqs), bases, in, out)
}

// PlanCmd runs the exact DP planner over every record of the target FASTA.
func PlanCmd(cmd *cobra.Command, args []string) {
	flags, conf := parseFlags(cmd)
	model := costModel(conf)

	err := run(flags, conf, func(seq []byte, sources []planner.Source) (planner.Plan, planner.Stats, error) {
		return planner.DP(seq, sources, model)
	})
	if err != nil {
		stderr.Fatalln(err)
	}
}

// GreedyCmd runs the heuristic planner selected by --policy.
func GreedyCmd(cmd *cobra.Command, args []string) {
	flags, conf := parseFlags(cmd)

	name, _ := cmd.Flags().GetString("policy")
	policy, err := policyByName(name)
	if err != nil {
		cmd.Help()
		stderr.Fatalf("\n%v", err)
	}
	model := costModel(conf)

	err = run(flags, conf, func(seq []byte, sources []planner.Source) (planner.Plan, planner.Stats, error) {
		plan, stats := planner.Greedy(seq, sources, model, policy)
		return plan, stats, nil
	})
	if err != nil {
		stderr.Fatalln(err)
	}
}

// policyByName resolves a --policy flag value.
func policyByName(name string) (planner.Policy, error) {
	switch name {
	case planner.ReplicationFirst.Name():
		return planner.ReplicationFirst, nil
	case planner.MaxBlock.Name():
		return planner.MaxBlock, nil
	}
	return nil, fmt.Errorf("unknown policy %q (want %q or %q)",
		name, planner.ReplicationFirst.Name(), planner.MaxBlock.Name())
}
