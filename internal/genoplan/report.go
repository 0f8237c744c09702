package genoplan

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/Georgakopoulos-Soares-lab/Minimum-cost-Genome-Planner/internal/fasta"
	"github.com/Georgakopoulos-Soares-lab/Minimum-cost-Genome-Planner/internal/planner"
)

// writeReport emits the script-parseable report: one detail row per
// non-empty record (filename, chromosome, length_bp, total_cost), a
// STATS_TOTAL row with the run-wide move counts, and a final TOTAL row in
// the detail rows' four-column schema. Empty records contribute nothing.
func writeReport(w io.Writer, file string, records []fasta.Record, results []planner.Stats) error {
	cw := csv.NewWriter(w)

	var total planner.Stats
	for k, r := range records {
		if len(r.Seq) == 0 {
			continue
		}
		st := results[k]
		total.Add(st)
		row := []string{file, r.ID, strconv.FormatUint(st.Length, 10), formatCost(st.Cost)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	statsRow := []string{
		"STATS_TOTAL",
		strconv.FormatUint(total.ReuseMoves, 10),
		strconv.FormatUint(total.SynthMoves, 10),
		strconv.FormatUint(total.Joins, 10),
		strconv.FormatUint(total.Segments, 10),
		strconv.FormatUint(total.ReuseBases, 10),
		strconv.FormatUint(total.SynthBases, 10),
	}
	if err := cw.Write(statsRow); err != nil {
		return err
	}

	totalRow := []string{file, "TOTAL", strconv.FormatUint(total.Length, 10), formatCost(total.Cost)}
	if err := cw.Write(totalRow); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}

func formatCost(cost float64) string {
	return strconv.FormatFloat(cost, 'g', -1, 64)
}
