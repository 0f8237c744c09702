// Package fasta reads nucleotide FASTA files and cleans the records down
// to the ACGT alphabet the planners and the match index expect.
package fasta

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// Record is one cleaned sequence keyed by its header.
type Record struct {
	ID  string
	Seq []byte
}

// Read parses every record in a FASTA file. Sequences are upper-cased and
// stripped of non-ACGT symbols, headers are cleaned for the CSV report,
// and records are returned sorted by ID so runs are reproducible.
func Read(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open FASTA file %q: %w", path, err)
	}
	defer f.Close()

	var records []Record
	r := fasta.NewReader(f, linear.NewSeq("", nil, alphabet.DNAredundant))
	sc := seqio.NewScanner(r)
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		id := s.Name()
		if desc := s.Description(); desc != "" {
			id += " " + desc
		}
		records = append(records, Record{
			ID:  CleanID(id),
			Seq: Clean([]byte(s.Seq.String())),
		})
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("failed to read FASTA file %q: %w", path, err)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}

// Clean upper-cases seq and drops every symbol outside ACGT, including
// IUPAC ambiguity codes and gaps.
func Clean(seq []byte) []byte {
	cleaned := make([]byte, 0, len(seq))
	for _, b := range seq {
		switch b {
		case 'a', 'c', 'g', 't':
			b -= 'a' - 'A'
		case 'A', 'C', 'G', 'T':
		default:
			continue
		}
		cleaned = append(cleaned, b)
	}
	return cleaned
}

// CleanID replaces the header symbols that would break the CSV report.
func CleanID(id string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == ',' {
			return '_'
		}
		return r
	}, id)
}
