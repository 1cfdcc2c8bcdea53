package normalize

import (
	"regexp"
	"strings"
)

// Characters that disqualify a tag key outright. A key containing any of
// these would produce a broken row downstream, so the whole tag is dropped.
var reProblemChars = regexp.MustCompile("[=+/&<>;'\"?%#$@,.\t\r\n]")

// ClassifyKey splits a raw tag key into its namespace ("type") and bare key.
// Keys without a namespace separator classify as "regular". Keys containing
// disallowed characters are rejected; the caller must drop the tag entirely,
// not just the classification.
//
// A key with more than one ':' keeps everything after the first colon as the
// bare key; only the portion before it becomes the type.
func ClassifyKey(rawKey string) (typ, key string, ok bool) {
	if reProblemChars.MatchString(rawKey) {
		return "", "", false
	}
	if before, after, found := strings.Cut(rawKey, ":"); found {
		return before, after, true
	}
	return "regular", rawKey, true
}
