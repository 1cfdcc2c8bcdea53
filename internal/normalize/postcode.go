package normalize

import (
	"errors"
	"regexp"

	"github.com/osmwrangle/internal/osm"
)

// ErrNoPostcode means no valid six-digit postal code could be found
// anywhere in the value.
var ErrNoPostcode = errors.New("no valid postcode in value")

// Singapore postal codes are six digits whose leading two-digit sector runs
// 00-80 with 74 unassigned.
var rePostcode = regexp.MustCompile(`(([0-6][0-9])|(7([0-3]|[5-9]))|80)[0-9]{4}`)

// FixPostcode extracts the first valid postal code embedded in the value.
// This silently strips country prefixes ("Singapore 408564", "S118556") and
// trailing noise. It only ever extracts; a fragment with too few digits
// cannot be repaired and fails instead.
func FixPostcode(value string) (string, error) {
	match := rePostcode.FindString(value)
	if match == "" {
		return "", ErrNoPostcode
	}
	return match, nil
}

// PostcodeReport is the outcome of a postcode-correction pass.
type PostcodeReport struct {
	Changes  map[string]string
	Problems []ProblemEntry
}

// CorrectPostcodes fixes every addr:postcode tag in the set in place.
// Values with no extractable postcode are queued as problems and left
// unmodified.
func CorrectPostcodes(set *osm.Set) PostcodeReport {
	report := PostcodeReport{Changes: make(map[string]string)}

	for i := range set.Nodes {
		n := &set.Nodes[i]
		for j := range n.Tags {
			if n.Tags[j].Key == "addr:postcode" {
				correctPostcodeTag(&n.Tags[j], n.ID, &report)
			}
		}
	}
	for i := range set.Ways {
		w := &set.Ways[i]
		for _, t := range w.Tags() {
			if t.Key == "addr:postcode" {
				correctPostcodeTag(t, w.ID, &report)
			}
		}
	}

	return report
}

func correctPostcodeTag(tag *osm.Tag, recordID string, report *PostcodeReport) {
	fixed, err := FixPostcode(tag.Value)
	if err != nil {
		report.Problems = append(report.Problems, ProblemEntry{
			RecordID: recordID,
			Category: CategoryPostcode,
			Value:    tag.Value,
		})
		return
	}
	if fixed != tag.Value {
		report.Changes[tag.Value] = fixed
		tag.Value = fixed
	}
}
