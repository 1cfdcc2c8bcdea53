// Package resolve supports the manual-resolution phase: looking up the
// flagged record's context and asking an external geocoding oracle for a
// best-effort address.
package resolve

import (
	"context"
	"errors"
	"fmt"
	"net"

	"googlemaps.github.io/maps"
)

// ErrNotFound means the oracle answered but had no address for the query.
var ErrNotFound = errors.New("no address found")

// Oracle returns a best-effort formatted address for a partial address
// string. Implementations may fail transiently (timeouts, retried by the
// caller) or permanently (surfaced to the operator).
type Oracle interface {
	Locate(ctx context.Context, query string) (string, error)
}

// GoogleOracle asks the Google Maps Geocoding API.
type GoogleOracle struct {
	client *maps.Client
}

// NewGoogleOracle builds an oracle from an API key.
func NewGoogleOracle(apiKey string) (*GoogleOracle, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GoogleOracle{client: client}, nil
}

// Locate geocodes the query and returns the first formatted address.
func (g *GoogleOracle) Locate(ctx context.Context, query string) (string, error) {
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: query})
	if err != nil {
		return "", fmt.Errorf("geocode %q: %w", query, err)
	}
	if len(results) == 0 {
		return "", fmt.Errorf("geocode %q: %w", query, ErrNotFound)
	}
	return results[0].FormattedAddress, nil
}

// isTimeout reports whether an oracle failure is the transient-timeout class
// that warrants a retry.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
