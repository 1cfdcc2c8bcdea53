package normalize

// Problem categories. These end up verbatim in the manual-resolution report,
// so the wording is part of the interface.
const (
	CategoryStreetName = "street name"
	CategoryPostcode   = "postcode"
)

// ProblemEntry flags a record whose value could not be resolved
// automatically. Entries are append-only and never merged, even when the
// same tuple recurs.
type ProblemEntry struct {
	RecordID string
	Category string
	Value    string
}
