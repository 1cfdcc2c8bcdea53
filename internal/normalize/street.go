package normalize

import (
	"errors"
	"regexp"
	"strings"

	"github.com/osmwrangle/internal/osm"
)

// ErrNoStreetType means the street name has no extractable trailing type
// token (single-token or degenerate names like a bare number).
var ErrNoStreetType = errors.New("no street type in name")

// Street names in Singapore usually end with the street type, but a fair
// number end with a block number instead ("Bedok North Avenue 1"). The
// pattern picks runs of letters not terminated by a digit; the last such run
// is the type word.
var reStreetType = regexp.MustCompile(`[a-zA-Z]+[^0-9]\b\.?`)

// Highway classes whose way name doubles as a street name.
var highwayTypes = map[string]bool{
	"living_street": true,
	"motorway":      true,
	"primary":       true,
	"residential":   true,
	"secondary":     true,
	"tertiary":      true,
}

// StreetMapping maps the street-type variants observed in the corpus to
// their canonical forms. The keys are exact and case-sensitive. The table
// was derived offline by fuzzy-matching extracted types against the twelve
// most frequent ones (see cmd/mapgen); it is shipped as static data so
// output stays reproducible.
var StreetMapping = map[string]string{
	"road":     "Road",
	"Rd":       "Road",
	"street":   "Street",
	"Ave":      "Avenue",
	"Avebue":   "Avenue",
	"Aenue":    "Avenue",
	"park":     "Park",
	"walk":     "Walk",
	"link":     "Link",
	"Cresent":  "Crescent",
	"Terrance": "Terrace",
	"Ter":      "Terrace",
}

// NodeStreet returns the node's street tag, or nil. Nodes only carry street
// names via addr:street.
func NodeStreet(n *osm.Node) *osm.Tag {
	for i := range n.Tags {
		if n.Tags[i].Key == "addr:street" {
			return &n.Tags[i]
		}
	}
	return nil
}

// WayStreet returns the way's street tag, or nil. An addr:street tag wins;
// failing that, a way classified as a street-like highway carries its street
// name in the plain name tag. Audit and correction both go through here so
// the two can never disagree about what counts as a street name.
func WayStreet(w *osm.Way) *osm.Tag {
	tags := w.Tags()
	for _, t := range tags {
		if t.Key == "addr:street" {
			return t
		}
	}
	for _, t := range tags {
		if t.Key == "highway" && highwayTypes[t.Value] {
			for _, nt := range tags {
				if nt.Key == "name" {
					return nt
				}
			}
			return nil
		}
	}
	return nil
}

// ExtractStreetType returns the trailing type token of a street name.
func ExtractStreetType(streetName string) (string, error) {
	matches := reStreetType.FindAllString(streetName, -1)
	if len(matches) == 0 {
		return "", ErrNoStreetType
	}
	return strings.TrimSpace(matches[len(matches)-1]), nil
}

// StreetChange records the correction applied to one distinct original
// street name and how many records shared it.
type StreetChange struct {
	Corrected string
	Count     int
}

// StreetReport is the outcome of a street-correction pass.
type StreetReport struct {
	Changes  map[string]StreetChange
	Problems []ProblemEntry
}

// Fixed returns the total number of street names rewritten.
func (r StreetReport) Fixed() int {
	total := 0
	for _, c := range r.Changes {
		total += c.Count
	}
	return total
}

// CorrectStreets rewrites non-canonical street-type tokens across the whole
// set, mutating tag values in place. Records whose street name has no
// extractable type are queued as problems and left untouched; the pass never
// fails. Canonical tokens are not themselves mapping keys, so a second run
// is a no-op.
func CorrectStreets(set *osm.Set) StreetReport {
	report := StreetReport{Changes: make(map[string]StreetChange)}

	for i := range set.Nodes {
		n := &set.Nodes[i]
		correctStreetTag(NodeStreet(n), n.ID, &report)
	}
	for i := range set.Ways {
		w := &set.Ways[i]
		correctStreetTag(WayStreet(w), w.ID, &report)
	}

	return report
}

func correctStreetTag(tag *osm.Tag, recordID string, report *StreetReport) {
	if tag == nil {
		return
	}

	original := tag.Value
	streetType, err := ExtractStreetType(original)
	if err != nil {
		report.Problems = append(report.Problems, ProblemEntry{
			RecordID: recordID,
			Category: CategoryStreetName,
			Value:    original,
		})
		return
	}

	canonical, ok := StreetMapping[streetType]
	if !ok {
		return
	}

	tag.Value = strings.Replace(original, streetType, canonical, 1)

	change := report.Changes[original]
	change.Corrected = tag.Value
	change.Count++
	report.Changes[original] = change
}
