package audit

import (
	"reflect"
	"testing"

	"github.com/osmwrangle/internal/normalize"
	"github.com/osmwrangle/internal/osm"
)

func TestStreetNames(t *testing.T) {
	highway := osm.Tag{Key: "highway", Value: "primary"}
	name := osm.Tag{Key: "name", Value: "Orchard Road"}
	footway := osm.Tag{Key: "highway", Value: "footway"}
	bridge := osm.Tag{Key: "name", Value: "Helix Bridge"}

	set := &osm.Set{
		Nodes: []osm.Node{
			{ID: "n1", Tags: []osm.Tag{{Key: "addr:street", Value: "Sultan Gate"}}},
			{ID: "n2", Tags: []osm.Tag{{Key: "amenity", Value: "atm"}}},
		},
		Ways: []osm.Way{
			{ID: "w1", Children: []osm.Child{{Tag: &highway}, {Tag: &name}}},
			{ID: "w2", Children: []osm.Child{{Tag: &footway}, {Tag: &bridge}}},
		},
	}

	got := StreetNames(set)
	want := map[string]string{
		"n1": "Sultan Gate",
		"w1": "Orchard Road",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("StreetNames() = %v, want %v", got, want)
	}
}

func TestSurveyTypesAndRanking(t *testing.T) {
	names := map[string]string{
		"1": "Serangoon Road",
		"2": "Bedok North Road",
		"3": "Arab Street",
		"4": "Eunos Ave 7A",
		"5": "2",
	}

	survey := SurveyTypes(names)

	if got := len(survey.Streets["Road"]); got != 2 {
		t.Errorf("Road street names = %d, want 2", got)
	}
	if got := len(survey.Streets["Street"]); got != 1 {
		t.Errorf("Street street names = %d, want 1", got)
	}

	ranked := survey.RankTypes()
	if ranked[0].Type != "Road" || ranked[0].Count != 2 {
		t.Errorf("top ranked type = %+v, want Road x2", ranked[0])
	}

	if got := survey.Expected(2); !reflect.DeepEqual(got, []string{"Road", "Ave"}) {
		// "Ave" and "Street" tie at one name each; alphabetical break.
		t.Errorf("Expected(2) = %v, want [Road Ave]", got)
	}

	wantProblem := normalize.ProblemEntry{
		RecordID: "5",
		Category: normalize.CategoryStreetName,
		Value:    "2",
	}
	if len(survey.Problems) != 1 || survey.Problems[0] != wantProblem {
		t.Errorf("problems = %+v, want [%+v]", survey.Problems, wantProblem)
	}
}

func TestSurveyTypesDistinctNamesOnly(t *testing.T) {
	names := map[string]string{
		"1": "Serangoon Road",
		"2": "Serangoon Road",
	}
	survey := SurveyTypes(names)
	if got := len(survey.Streets["Road"]); got != 1 {
		t.Errorf("duplicate street names counted %d times, want 1", got)
	}
}
