// Package etl wires the correction passes, the shaper, and the sinks into
// one batch pipeline.
package etl

import (
	"github.com/osmwrangle/internal/debug"
	"github.com/osmwrangle/internal/normalize"
	"github.com/osmwrangle/internal/osm"
	"github.com/osmwrangle/internal/shape"
)

// Cleaned is a dataset that has been through both correction passes. Only
// Clean produces one, and Shape accepts nothing else, so shaping an
// uncorrected dataset is a compile error rather than a pass-ordering bug.
type Cleaned struct {
	set       *osm.Set
	Streets   normalize.StreetReport
	Postcodes normalize.PostcodeReport
}

// Set exposes the corrected dataset.
func (c Cleaned) Set() *osm.Set {
	return c.set
}

// Problems returns the combined manual-resolution queue in append order:
// street-name problems first, then postcode problems, as the passes ran.
func (c Cleaned) Problems() []normalize.ProblemEntry {
	problems := make([]normalize.ProblemEntry, 0,
		len(c.Streets.Problems)+len(c.Postcodes.Problems))
	problems = append(problems, c.Streets.Problems...)
	problems = append(problems, c.Postcodes.Problems...)
	return problems
}

// Clean runs the street-type pass then the postcode pass over a copy of the
// input. The decoded input is left untouched.
func Clean(set *osm.Set, localDebug bool) Cleaned {
	defer debug.Timing(localDebug, "correction passes")()

	corrected := set.Clone()
	streets := normalize.CorrectStreets(corrected)
	debug.Output(localDebug, "street pass: %d names fixed, %d queued",
		streets.Fixed(), len(streets.Problems))

	postcodes := normalize.CorrectPostcodes(corrected)
	debug.Output(localDebug, "postcode pass: %d values fixed, %d queued",
		len(postcodes.Changes), len(postcodes.Problems))

	return Cleaned{set: corrected, Streets: streets, Postcodes: postcodes}
}

// Shape flattens a cleaned dataset into the five output streams.
func Shape(c Cleaned) *shape.Output {
	return shape.All(c.set)
}
