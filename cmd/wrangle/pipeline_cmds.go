package main

import (
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/osmwrangle/internal/audit"
	"github.com/osmwrangle/internal/db"
	"github.com/osmwrangle/internal/etl"
	"github.com/osmwrangle/internal/osm"
)

func decodeFile(path string) (*osm.Set, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	set, err := osm.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return set, nil
}

func createAuditCmd() *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "audit [file.osm]",
		Short: "Survey street-type usage in an export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := decodeFile(args[0])
			if err != nil {
				return err
			}

			survey := audit.SurveyTypes(audit.StreetNames(set))

			fmt.Printf("%-20s %s\n", "STREET TYPE", "DISTINCT NAMES")
			ranked := survey.RankTypes()
			if top > 0 && top < len(ranked) {
				ranked = ranked[:top]
			}
			for _, tc := range ranked {
				fmt.Printf("%-20s %d\n", tc.Type, tc.Count)
			}

			if len(survey.Problems) > 0 {
				fmt.Printf("\n%d street names need manual attention:\n", len(survey.Problems))
				for _, p := range survey.Problems {
					fmt.Printf("  %s: %q\n", p.RecordID, p.Value)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&top, "top", 0, "show only the N most frequent types")
	return cmd
}

func createCleanCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "clean [file.osm]",
		Short: "Correct street types and postcodes, export the five CSV streams",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := decodeFile(args[0])
			if err != nil {
				return err
			}

			cleaned := etl.Clean(set, verbose)
			printChangeReport(cleaned)

			out := etl.Shape(cleaned)
			if err := etl.ExportCSV(outDir, out); err != nil {
				return err
			}
			if err := etl.ExportProblemsCSV(outDir, cleaned.Problems()); err != nil {
				return err
			}

			fmt.Printf("exported %d nodes, %d ways to %s\n", len(out.Nodes), len(out.Ways), outDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "output", "directory for the exported CSV files")
	return cmd
}

func printChangeReport(cleaned etl.Cleaned) {
	originals := make([]string, 0, len(cleaned.Streets.Changes))
	for original := range cleaned.Streets.Changes {
		originals = append(originals, original)
	}
	sort.Strings(originals)

	for _, original := range originals {
		change := cleaned.Streets.Changes[original]
		if change.Count == 1 {
			fmt.Printf("%s ==> %s\n", original, change.Corrected)
		} else {
			fmt.Printf("%s ==> %s (%d occurrences)\n", original, change.Corrected, change.Count)
		}
	}
	fmt.Printf("%d street names were fixed\n", cleaned.Streets.Fixed())

	postcodes := make([]string, 0, len(cleaned.Postcodes.Changes))
	for original := range cleaned.Postcodes.Changes {
		postcodes = append(postcodes, original)
	}
	sort.Strings(postcodes)

	for _, original := range postcodes {
		fmt.Printf("%s ==> %s\n", original, cleaned.Postcodes.Changes[original])
	}
	fmt.Printf("%d postcodes were fixed, %d need manual resolution\n",
		len(cleaned.Postcodes.Changes), len(cleaned.Postcodes.Problems))
}

func createLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load [file.osm]",
		Short: "Clean an export and bulk-load it into Postgres",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := decodeFile(args[0])
			if err != nil {
				return err
			}

			cleaned := etl.Clean(set, verbose)
			out := etl.Shape(cleaned)

			conn, err := db.NewConnection()
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := db.CreateSchema(conn.DB); err != nil {
				return err
			}
			if err := etl.Load(conn.DB, out, cleaned.Problems(), verbose); err != nil {
				return err
			}
			if err := db.CreateIndexes(conn.DB); err != nil {
				return err
			}

			log.Printf("loaded %d nodes, %d ways, %d problems queued",
				len(out.Nodes), len(out.Ways), len(cleaned.Problems()))
			return nil
		},
	}
}

func createProblemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "problems",
		Short: "Print the stored manual-resolution report",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := db.NewConnection()
			if err != nil {
				return err
			}
			defer conn.Close()

			rows, err := conn.DB.Query(`
				SELECT record_id, category, value
				FROM problems
				ORDER BY problem_id
			`)
			if err != nil {
				return fmt.Errorf("failed to query problems: %w", err)
			}
			defer rows.Close()

			count := 0
			for rows.Next() {
				var recordID, category, value string
				if err := rows.Scan(&recordID, &category, &value); err != nil {
					return fmt.Errorf("failed to scan problem: %w", err)
				}
				fmt.Printf("%-12s %-12s %q\n", recordID, category, value)
				count++
			}
			if err := rows.Err(); err != nil {
				return err
			}
			fmt.Printf("%d records pending manual resolution\n", count)
			return nil
		},
	}
}
