// Package audit surveys street-type usage across a dataset. Its ranking of
// type tokens by frequency is what anchors the correction table: the most
// frequent spellings are taken as canonical and everything similar to them
// is a correction candidate.
package audit

import (
	"sort"

	"github.com/osmwrangle/internal/normalize"
	"github.com/osmwrangle/internal/osm"
)

// TypeCount pairs a street-type token with the number of distinct street
// names that end in it.
type TypeCount struct {
	Type  string
	Count int
}

// Survey is the outcome of auditing a dataset's street names.
type Survey struct {
	// Streets groups the distinct street names under their extracted type.
	Streets map[string]map[string]bool

	// Problems lists records whose street name had no extractable type.
	Problems []normalize.ProblemEntry
}

// StreetNames collects every record's street name via the shared locator,
// keyed by record id.
func StreetNames(set *osm.Set) map[string]string {
	names := make(map[string]string)
	for i := range set.Nodes {
		if tag := normalize.NodeStreet(&set.Nodes[i]); tag != nil {
			names[set.Nodes[i].ID] = tag.Value
		}
	}
	for i := range set.Ways {
		if tag := normalize.WayStreet(&set.Ways[i]); tag != nil {
			names[set.Ways[i].ID] = tag.Value
		}
	}
	return names
}

// SurveyTypes groups street names by their extracted type token. Names with
// no extractable type are queued as problems; the survey itself never fails.
func SurveyTypes(names map[string]string) Survey {
	survey := Survey{Streets: make(map[string]map[string]bool)}
	for id, name := range names {
		streetType, err := normalize.ExtractStreetType(name)
		if err != nil {
			survey.Problems = append(survey.Problems, normalize.ProblemEntry{
				RecordID: id,
				Category: normalize.CategoryStreetName,
				Value:    name,
			})
			continue
		}
		if survey.Streets[streetType] == nil {
			survey.Streets[streetType] = make(map[string]bool)
		}
		survey.Streets[streetType][name] = true
	}
	return survey
}

// RankTypes sorts the surveyed types by how many distinct street names use
// them, most frequent first. Ties break alphabetically so output is stable.
func (s Survey) RankTypes() []TypeCount {
	ranked := make([]TypeCount, 0, len(s.Streets))
	for streetType, names := range s.Streets {
		ranked = append(ranked, TypeCount{Type: streetType, Count: len(names)})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Type < ranked[j].Type
	})
	return ranked
}

// Expected returns the n most frequent type tokens. These act as the
// canonical anchors when regenerating the correction table.
func (s Survey) Expected(n int) []string {
	ranked := s.RankTypes()
	if n > len(ranked) {
		n = len(ranked)
	}
	expected := make([]string, 0, n)
	for _, tc := range ranked[:n] {
		expected = append(expected, tc.Type)
	}
	return expected
}
