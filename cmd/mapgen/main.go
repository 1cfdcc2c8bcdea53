// mapgen proposes a street-type correction table from a fresh corpus.
//
// It ranks the extracted type tokens by frequency, takes the most frequent
// ones as canonical anchors, and fuzzy-matches every other token against
// them. The output is a Go map literal to review and paste over
// normalize.StreetMapping — the shipped table is static so pipeline output
// stays reproducible.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/osmwrangle/internal/audit"
	"github.com/osmwrangle/internal/fuzzy"
	"github.com/osmwrangle/internal/osm"
)

func main() {
	var (
		anchors = flag.Int("anchors", 12, "number of top-frequency types to treat as canonical")
		cutoff  = flag.Float64("cutoff", 0.5, "similarity cutoff for correction candidates")
		limit   = flag.Int("matches", 4, "candidates to keep per anchor")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: mapgen [flags] file.osm\n")
		flag.PrintDefaults()
		os.Exit(2)
	}

	file, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatalf("failed to open input: %v", err)
	}
	defer file.Close()

	set, err := osm.Decode(file)
	if err != nil {
		log.Fatalf("failed to decode input: %v", err)
	}

	survey := audit.SurveyTypes(audit.StreetNames(set))
	expected := survey.Expected(*anchors)

	allTypes := make([]string, 0, len(survey.Streets))
	for streetType := range survey.Streets {
		allTypes = append(allTypes, streetType)
	}

	fmt.Printf("// Generated from %s: top %d types as anchors, cutoff %.2f.\n",
		flag.Arg(0), *anchors, *cutoff)
	fmt.Println("var StreetMapping = map[string]string{")
	for _, anchor := range expected {
		for _, match := range fuzzy.CloseMatches(anchor, allTypes, *limit, *cutoff) {
			fmt.Printf("\t%q: %q, // similarity %.2f\n", match.Word, anchor, match.Score)
		}
	}
	fmt.Println("}")

	if len(survey.Problems) > 0 {
		fmt.Printf("// %d street names had no extractable type.\n", len(survey.Problems))
	}
}
