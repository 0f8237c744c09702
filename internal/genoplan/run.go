package genoplan

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Georgakopoulos-Soares-lab/Minimum-cost-Genome-Planner/config"
	"github.com/Georgakopoulos-Soares-lab/Minimum-cost-Genome-Planner/internal/fasta"
	"github.com/Georgakopoulos-Soares-lab/Minimum-cost-Genome-Planner/internal/fmindex"
	"github.com/Georgakopoulos-Soares-lab/Minimum-cost-Genome-Planner/internal/planner"
	"github.com/spf13/cobra"
)

// runFlags are the parsed file arguments shared by the planning commands.
type runFlags struct {
	// the target genome FASTA to plan
	target string

	// paths of the serialized source indexes to plan against
	indexes []string

	// the report destination; empty means stdout
	out string
}

// solver plans one record against the loaded sources.
type solver func(seq []byte, sources []planner.Source) (planner.Plan, planner.Stats, error)

// parseFlags reads the shared planner flags off cmd, overlaying any value
// the user set on the viper-backed settings, and fails fast on invalid
// parameters before any planning begins.
func parseFlags(cmd *cobra.Command) (runFlags, *config.Config) {
	conf, err := config.New()
	if err != nil {
		stderr.Fatalln(err)
	}

	f := cmd.Flags()
	if f.Changed("window") {
		conf.Window, _ = f.GetInt("window")
	}
	if f.Changed("reuse-cost") {
		conf.ReuseCost, _ = f.GetFloat64("reuse-cost")
	}
	if f.Changed("join-cost") {
		conf.JoinCost, _ = f.GetFloat64("join-cost")
	}
	if f.Changed("synth-cost") {
		conf.SynthCost, _ = f.GetFloat64("synth-cost")
	}
	if f.Changed("synth-cost-quad") {
		conf.SynthCostQuad, _ = f.GetFloat64("synth-cost-quad")
	}
	if f.Changed("workers") {
		conf.Workers, _ = f.GetInt("workers")
	}
	if err := conf.Validate(); err != nil {
		cmd.Help()
		stderr.Fatalf("\n%v", err)
	}

	target, _ := f.GetString("target")
	out, _ := f.GetString("out")
	dbs, _ := f.GetString("indexes")
	indexes := strings.FieldsFunc(dbs, func(r rune) bool { return r == ',' || r == ' ' })
	if len(indexes) == 0 {
		cmd.Help()
		stderr.Fatalln("\nno source indexes passed")
	}

	return runFlags{target: target, indexes: indexes, out: out}, conf
}

// costModel maps run settings onto the planner's cost model.
func costModel(c *config.Config) planner.CostModel {
	return planner.CostModel{
		Window:      c.Window,
		ReuseCost:   c.ReuseCost,
		JoinCost:    c.JoinCost,
		SynthLinear: c.SynthCost,
		SynthQuad:   c.SynthCostQuad,
	}
}

// run loads the source oracles, plans every record of the target FASTA,
// and writes the CSV report. Any failure aborts the whole run: partial
// results are never reported as complete.
func run(flags runFlags, conf *config.Config, solve solver) error {
	sources := make([]planner.Source, 0, len(flags.indexes))
	for _, path := range flags.indexes {
		h, err := fmindex.Load(path)
		if err != nil {
			return err
		}
		sources = append(sources, h)
	}

	records, err := fasta.Read(flags.target)
	if err != nil {
		return err
	}

	results, err := planRecords(records, sources, conf.Workers, solve)
	if err != nil {
		return err
	}

	w := io.Writer(os.Stdout)
	if flags.out != "" {
		f, err := os.Create(flags.out)
		if err != nil {
			return fmt.Errorf("failed to create report file %q: %w", flags.out, err)
		}
		defer f.Close()
		w = f
	}
	return writeReport(w, filepath.Base(flags.target), records, results)
}

// planRecords plans independent records on a bounded pool of workers.
// Sources are shared read-only across workers; each worker owns the full
// planning state of its record. Results land in per-record slots, so the
// report order stays deterministic regardless of scheduling.
func planRecords(records []fasta.Record, sources []planner.Source, workers int, solve solver) ([]planner.Stats, error) {
	if workers < 1 {
		workers = 1
	}

	results := make([]planner.Stats, len(records))
	errs := make([]error, len(records))
	limit := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for k := range records {
		if len(records[k].Seq) == 0 {
			continue
		}
		wg.Add(1)
		limit <- struct{}{}
		go func(k int) {
			defer func() {
				<-limit
				wg.Done()
			}()
			_, results[k], errs[k] = solve(records[k].Seq, sources)
		}(k)
	}
	wg.Wait()

	for k, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("planning %s: %w", records[k].ID, err)
		}
	}
	return results, nil
}
