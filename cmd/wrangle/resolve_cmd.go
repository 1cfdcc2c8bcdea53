package main

import (
	"fmt"
	"strings"

	postal "github.com/openvenues/gopostal/parser"
	"github.com/spf13/cobra"

	"github.com/osmwrangle/internal/config"
	"github.com/osmwrangle/internal/db"
	"github.com/osmwrangle/internal/resolve"
)

func createResolveCmd() *cobra.Command {
	var recordID string
	var address string

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Ask the geocoding oracle about a flagged record or address",
		Long: `Looks up a partial address with the Google geocoding API and prints the
best-effort full address plus its parsed components, so a flagged record can
be corrected in the store by hand.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if recordID == "" && address == "" {
				return fmt.Errorf("one of --id or --address is required")
			}

			query := address
			if recordID != "" {
				conn, err := db.NewConnection()
				if err != nil {
					return err
				}
				defer conn.Close()

				kind, tags, err := resolve.LookupTags(conn.DB, recordID)
				if err != nil {
					return err
				}

				fmt.Printf("%s %s carries:\n", kind, recordID)
				for _, t := range tags {
					fmt.Printf("  %s:%s = %q\n", t.Type, t.Key, t.Value)
				}
				query = partialAddress(tags)
				if query == "" {
					return fmt.Errorf("record %s has no address tags to query with", recordID)
				}
			}

			apiKey := config.GetEnv("GOOGLE_MAPS_API_KEY", "")
			if apiKey == "" {
				return fmt.Errorf("GOOGLE_MAPS_API_KEY is not set")
			}

			oracle, err := resolve.NewGoogleOracle(apiKey)
			if err != nil {
				return err
			}

			found, err := resolve.NewResolver(oracle).CompleteAddress(cmd.Context(), query)
			if err != nil {
				return fmt.Errorf("oracle lookup failed: %w", err)
			}

			fmt.Printf("oracle: %s\n", found)
			printComponents(found)
			return nil
		},
	}

	cmd.Flags().StringVar(&recordID, "id", "", "flagged record id to resolve")
	cmd.Flags().StringVar(&address, "address", "", "partial address to resolve directly")
	return cmd
}

// partialAddress assembles a geocoding query from a record's address tags.
func partialAddress(tags []resolve.TagInfo) string {
	var housenumber, street string
	for _, t := range tags {
		if t.Type != "addr" {
			continue
		}
		switch t.Key {
		case "housenumber":
			housenumber = t.Value
		case "street":
			street = t.Value
		}
	}
	if street == "" {
		return ""
	}
	parts := []string{}
	if housenumber != "" {
		parts = append(parts, housenumber)
	}
	parts = append(parts, street, "Singapore")
	return strings.Join(parts, " ")
}

func printComponents(address string) {
	for _, component := range postal.ParseAddress(address) {
		fmt.Printf("  %-14s %s\n", component.Label, component.Value)
	}
}
