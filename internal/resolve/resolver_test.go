package resolve

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeOracle struct {
	failures []error
	calls    int
	address  string
}

func (f *fakeOracle) Locate(ctx context.Context, query string) (string, error) {
	f.calls++
	if f.calls <= len(f.failures) {
		return "", f.failures[f.calls-1]
	}
	return f.address, nil
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "request timed out" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func fastResolver(oracle Oracle) *Resolver {
	r := NewResolver(oracle)
	r.interval = time.Millisecond
	return r
}

func TestCompleteAddressRetriesTimeouts(t *testing.T) {
	oracle := &fakeOracle{
		failures: []error{timeoutErr{}, timeoutErr{}},
		address:  "6 Sago Street, Singapore 059011",
	}

	got, err := fastResolver(oracle).CompleteAddress(context.Background(), "6 Sago Street, Singapore")
	if err != nil {
		t.Fatalf("CompleteAddress() error: %v", err)
	}
	if got != oracle.address {
		t.Errorf("CompleteAddress() = %q, want %q", got, oracle.address)
	}
	if oracle.calls != 3 {
		t.Errorf("oracle called %d times, want 3", oracle.calls)
	}
}

func TestCompleteAddressStopsOnPermanentFailure(t *testing.T) {
	permanent := errors.New("quota exceeded")
	oracle := &fakeOracle{
		failures: []error{permanent, timeoutErr{}},
		address:  "unreachable",
	}

	_, err := fastResolver(oracle).CompleteAddress(context.Background(), "anything")
	if !errors.Is(err, permanent) {
		t.Fatalf("CompleteAddress() error = %v, want %v", err, permanent)
	}
	if oracle.calls != 1 {
		t.Errorf("oracle called %d times after permanent failure, want 1", oracle.calls)
	}
}

func TestCompleteAddressBoundedAttempts(t *testing.T) {
	failures := make([]error, DefaultMaxAttempts+3)
	for i := range failures {
		failures[i] = timeoutErr{}
	}
	oracle := &fakeOracle{failures: failures}

	_, err := fastResolver(oracle).CompleteAddress(context.Background(), "anything")
	if err == nil {
		t.Fatal("CompleteAddress() succeeded, want exhausted retries")
	}
	if oracle.calls != DefaultMaxAttempts {
		t.Errorf("oracle called %d times, want %d", oracle.calls, DefaultMaxAttempts)
	}
}
