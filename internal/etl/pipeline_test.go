package etl

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/osmwrangle/internal/normalize"
	"github.com/osmwrangle/internal/osm"
)

func testSet() *osm.Set {
	highway := osm.Tag{Key: "highway", Value: "residential"}
	name := osm.Tag{Key: "name", Value: "Bedok North road"}
	return &osm.Set{
		Nodes: []osm.Node{
			{ID: "1", Lat: "1.30", Lon: "103.85", Tags: []osm.Tag{
				{Key: "addr:street", Value: "Eunos Ave 7A"},
				{Key: "addr:postcode", Value: "Singapore 408564"},
			}},
			{ID: "2", Tags: []osm.Tag{
				{Key: "addr:street", Value: "2"},
				{Key: "addr:postcode", Value: "135"},
			}},
		},
		Ways: []osm.Way{
			{ID: "3", Children: []osm.Child{
				{Tag: &highway},
				{Tag: &name},
				{NodeRef: "1"},
				{NodeRef: "2"},
			}},
		},
	}
}

func TestCleanCorrectsCopy(t *testing.T) {
	set := testSet()
	cleaned := Clean(set, false)

	if got := cleaned.Set().Nodes[0].Tags[0].Value; got != "Eunos Avenue 7A" {
		t.Errorf("cleaned street = %q, want %q", got, "Eunos Avenue 7A")
	}
	if got := cleaned.Set().Nodes[0].Tags[1].Value; got != "408564" {
		t.Errorf("cleaned postcode = %q, want %q", got, "408564")
	}
	if got := cleaned.Set().Ways[0].Tags()[1].Value; got != "Bedok North Road" {
		t.Errorf("cleaned way street = %q, want %q", got, "Bedok North Road")
	}

	// The decoded input must stay untouched.
	if got := set.Nodes[0].Tags[0].Value; got != "Eunos Ave 7A" {
		t.Errorf("input mutated: street = %q", got)
	}
	if got := set.Ways[0].Tags()[1].Value; got != "Bedok North road" {
		t.Errorf("input mutated: way street = %q", got)
	}
}

func TestCleanProblemOrder(t *testing.T) {
	cleaned := Clean(testSet(), false)

	problems := cleaned.Problems()
	if len(problems) != 2 {
		t.Fatalf("problems = %+v, want 2 entries", problems)
	}
	if problems[0].Category != normalize.CategoryStreetName || problems[0].Value != "2" {
		t.Errorf("first problem = %+v, want street name entry", problems[0])
	}
	if problems[1].Category != normalize.CategoryPostcode || problems[1].Value != "135" {
		t.Errorf("second problem = %+v, want postcode entry", problems[1])
	}
}

func TestExportCSV(t *testing.T) {
	dir := t.TempDir()
	cleaned := Clean(testSet(), false)
	out := Shape(cleaned)

	if err := ExportCSV(dir, out); err != nil {
		t.Fatalf("ExportCSV() error: %v", err)
	}
	if err := ExportProblemsCSV(dir, cleaned.Problems()); err != nil {
		t.Fatalf("ExportProblemsCSV() error: %v", err)
	}

	tests := []struct {
		file     string
		wantRows int
		wantCols int
	}{
		{NodesCSV, 2, 8},
		{NodeTagsCSV, 4, 4},
		{WaysCSV, 1, 6},
		{WayNodesCSV, 2, 3},
		{WayTagsCSV, 2, 4},
		{"problems.csv", 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			f, err := os.Open(filepath.Join(dir, tt.file))
			if err != nil {
				t.Fatalf("missing export: %v", err)
			}
			defer f.Close()

			records, err := csv.NewReader(f).ReadAll()
			if err != nil {
				t.Fatalf("failed to read %s: %v", tt.file, err)
			}
			if len(records) != tt.wantRows+1 {
				t.Errorf("%s has %d data rows, want %d", tt.file, len(records)-1, tt.wantRows)
			}
			if len(records[0]) != tt.wantCols {
				t.Errorf("%s has %d columns, want %d", tt.file, len(records[0]), tt.wantCols)
			}
		})
	}
}

func TestWayMemberPositionsSurviveExport(t *testing.T) {
	cleaned := Clean(testSet(), false)
	out := Shape(cleaned)

	if len(out.WayNodes) != 2 {
		t.Fatalf("way nodes = %+v, want 2", out.WayNodes)
	}
	// Two tags precede the members, so positions start at 2.
	if out.WayNodes[0].Position != 2 || out.WayNodes[1].Position != 3 {
		t.Errorf("member positions = %d, %d, want 2, 3",
			out.WayNodes[0].Position, out.WayNodes[1].Position)
	}
}
