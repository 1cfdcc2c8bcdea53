package normalize

import (
	"testing"

	"github.com/osmwrangle/internal/osm"
)

func TestFixPostcode(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "Singapore 408564", want: "408564"},
		{input: "S118556", want: "118556"},
		{input: "408564", want: "408564"},
		{input: "135", wantErr: true},       // too short to repair
		{input: "740000", wantErr: true},    // sector 74 is unassigned
		{input: "810000", wantErr: true},    // sector above 80
		{input: "Singapore", wantErr: true},
		{input: "S 058840 Singapore", want: "058840"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := FixPostcode(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("FixPostcode(%q) = %q, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("FixPostcode(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("FixPostcode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCorrectPostcodes(t *testing.T) {
	set := &osm.Set{
		Nodes: []osm.Node{
			{ID: "n1", Tags: []osm.Tag{{Key: "addr:postcode", Value: "Singapore 408564"}}},
			{ID: "n2", Tags: []osm.Tag{{Key: "addr:postcode", Value: "118556"}}},
			{ID: "n3", Tags: []osm.Tag{{Key: "addr:postcode", Value: "135"}}},
		},
		Ways: []osm.Way{
			testWay("w1", osm.Tag{Key: "addr:postcode", Value: "S058840"}),
		},
	}

	report := CorrectPostcodes(set)

	if got := set.Nodes[0].Tags[0].Value; got != "408564" {
		t.Errorf("node n1 postcode = %q, want %q", got, "408564")
	}
	if got := set.Nodes[1].Tags[0].Value; got != "118556" {
		t.Errorf("node n2 postcode = %q, want unchanged %q", got, "118556")
	}
	if got := set.Nodes[2].Tags[0].Value; got != "135" {
		t.Errorf("node n3 postcode = %q, want left as %q", got, "135")
	}
	if got := set.Ways[0].Tags()[0].Value; got != "058840" {
		t.Errorf("way w1 postcode = %q, want %q", got, "058840")
	}

	if len(report.Changes) != 2 {
		t.Errorf("changes = %v, want 2 entries", report.Changes)
	}
	if got := report.Changes["Singapore 408564"]; got != "408564" {
		t.Errorf("change for %q = %q, want %q", "Singapore 408564", got, "408564")
	}
	if _, ok := report.Changes["118556"]; ok {
		t.Error("already-valid postcode must not be reported as changed")
	}

	wantProblem := ProblemEntry{RecordID: "n3", Category: CategoryPostcode, Value: "135"}
	if len(report.Problems) != 1 || report.Problems[0] != wantProblem {
		t.Errorf("problems = %+v, want [%+v]", report.Problems, wantProblem)
	}
}
