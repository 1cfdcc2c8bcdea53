package resolve

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// DefaultMaxAttempts bounds the retry loop around a flaky oracle. The
// timeout class used to be retried forever; a ceiling keeps a dead network
// from hanging the operator.
const DefaultMaxAttempts = 5

// Resolver wraps an oracle with the retry policy.
type Resolver struct {
	oracle      Oracle
	maxAttempts uint64
	interval    time.Duration
}

// NewResolver builds a resolver with the default retry policy.
func NewResolver(oracle Oracle) *Resolver {
	return &Resolver{
		oracle:      oracle,
		maxAttempts: DefaultMaxAttempts,
		interval:    500 * time.Millisecond,
	}
}

// CompleteAddress asks the oracle for the full address of a partial one.
// Timeouts are retried with exponential backoff up to the attempt ceiling;
// any other failure stops immediately and propagates to the operator.
func (r *Resolver) CompleteAddress(ctx context.Context, partial string) (string, error) {
	var address string

	operation := func() error {
		found, err := r.oracle.Locate(ctx, partial)
		if err != nil {
			if isTimeout(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		address = found
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = r.interval

	err := backoff.Retry(operation,
		backoff.WithContext(backoff.WithMaxRetries(policy, r.maxAttempts-1), ctx))
	if err != nil {
		return "", err
	}
	return address, nil
}
