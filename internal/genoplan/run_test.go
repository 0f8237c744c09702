package genoplan

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Georgakopoulos-Soares-lab/Minimum-cost-Genome-Planner/config"
	"github.com/Georgakopoulos-Soares-lab/Minimum-cost-Genome-Planner/internal/fasta"
	"github.com/Georgakopoulos-Soares-lab/Minimum-cost-Genome-Planner/internal/fmindex"
	"github.com/Georgakopoulos-Soares-lab/Minimum-cost-Genome-Planner/internal/planner"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// End to end: index a source FASTA, plan a target against it with the
// exact planner, and check the written report.
func TestRun_planReport(t *testing.T) {
	dir := t.TempDir()

	index := filepath.Join(dir, "source.fm")
	if err := fmindex.New("source.fa", [][]byte{[]byte("ACGTACGT")}).Save(index); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	target := writeFile(t, dir, "target.fa", ">chr1\nACGTACGT\n>chr2\nTTTT\n")
	out := filepath.Join(dir, "report.csv")

	conf := &config.Config{
		Window:    8,
		ReuseCost: 5,
		JoinCost:  1.5,
		SynthCost: 0.2,
		Workers:   2,
	}
	model := costModel(conf)
	flags := runFlags{target: target, indexes: []string{index}, out: out}

	err := run(flags, conf, func(seq []byte, sources []planner.Source) (planner.Plan, planner.Stats, error) {
		return planner.DP(seq, sources, model)
	})
	if err != nil {
		t.Fatalf("run() error: %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	// chr1 is the source verbatim: one reuse. chr2 shares no 2-mer with the
	// source, so one synthesized block is cheapest.
	want := "target.fa,chr1,8,5\n" +
		"target.fa,chr2,4,0.8\n" +
		"STATS_TOTAL,1,1,0,2,8,4\n" +
		"target.fa,TOTAL,12,5.8\n"
	if string(got) != want {
		t.Errorf("report =\n%s\nwant\n%s", got, want)
	}
}

func TestRun_missingIndex(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "target.fa", ">chr1\nACGT\n")

	flags := runFlags{target: target, indexes: []string{filepath.Join(dir, "nope.fm")}}
	err := run(flags, &config.Config{Window: 4, Workers: 1}, nil)
	if err == nil {
		t.Error("run() with a missing index should fail")
	}
}

func TestPlanRecords(t *testing.T) {
	records := []fasta.Record{
		{ID: "a", Seq: []byte("AC")},
		{ID: "skip", Seq: nil},
		{ID: "b", Seq: []byte("GGGG")},
	}

	results, err := planRecords(records, nil, 3, func(seq []byte, sources []planner.Source) (planner.Plan, planner.Stats, error) {
		return nil, planner.Stats{Length: uint64(len(seq))}, nil
	})
	if err != nil {
		t.Fatalf("planRecords() error: %v", err)
	}

	want := []uint64{2, 0, 4}
	for k, st := range results {
		if st.Length != want[k] {
			t.Errorf("results[%d].Length = %d, want %d", k, st.Length, want[k])
		}
	}
}

// A failing record aborts the run and names the record in the error.
func TestPlanRecords_solverError(t *testing.T) {
	boom := errors.New("boom")
	records := []fasta.Record{
		{ID: "good", Seq: []byte("AC")},
		{ID: "bad", Seq: []byte("GT")},
	}

	_, err := planRecords(records, nil, 1, func(seq []byte, sources []planner.Source) (planner.Plan, planner.Stats, error) {
		if string(seq) == "GT" {
			return nil, planner.Stats{}, boom
		}
		return nil, planner.Stats{}, nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("planRecords() error = %v, want wrapped boom", err)
	}
	if !strings.Contains(err.Error(), "bad") {
		t.Errorf("error %q does not name the failing record", err)
	}
}

func TestPolicyByName(t *testing.T) {
	for _, name := range []string{"replication-first", "max-block"} {
		p, err := policyByName(name)
		if err != nil {
			t.Errorf("policyByName(%q) error: %v", name, err)
			continue
		}
		if p.Name() != name {
			t.Errorf("policyByName(%q).Name() = %q", name, p.Name())
		}
	}
	if _, err := policyByName("random"); err == nil {
		t.Error("policyByName(random) should fail")
	}
}
