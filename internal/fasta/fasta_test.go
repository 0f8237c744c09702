package fasta

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.fasta")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRead(t *testing.T) {
	path := writeTemp(t, `>chr2 some description, with a comma
acgtACGT
nnACGTnn
>chr1
ACGT
AcGt
`)

	records, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}

	want := []Record{
		{ID: "chr1", Seq: []byte("ACGTACGT")},
		{ID: "chr2_some_description__with_a_comma", Seq: []byte("ACGTACGT")},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("Read() = %+v, want %+v", records, want)
	}
}

func TestRead_missingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "nope.fasta")); err == nil {
		t.Error("Read() of a missing file should fail")
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already clean", "ACGT", "ACGT"},
		{"lower case", "acgt", "ACGT"},
		{"mixed case", "AcGt", "ACGT"},
		{"ambiguity codes dropped", "ANCRGYT", "ACGT"},
		{"gaps and whitespace dropped", "AC-G T\n", "ACGT"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(Clean([]byte(tt.in))); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanID(t *testing.T) {
	if got := CleanID("chrI left arm, 2R"); got != "chrI_left_arm__2R" {
		t.Errorf("CleanID() = %q", got)
	}
}
