package contract

//go:generate mockgen -source=contract.go -destination=mocks/mocks.go -package=mocks APIClient

import (
	"context"
	"fmt"
	"strconv"

	"vaxcheck/internal/wcg"
)

// APIClient is the seam between checks and the HTTP client, kept narrow so
// runner tests can substitute a mock.
type APIClient interface {
	Register(ctx context.Context, info wcg.RegistrationInfo) (*wcg.Response, error)
	Reserve(ctx context.Context, info wcg.ReservationInfo) (*wcg.Response, error)
	DeleteRegistration(ctx context.Context, citizenID string) (*wcg.Response, error)
}

// Check is a single named conformance check. Run returns nil when the
// deployment honored the contract and a descriptive error otherwise.
type Check struct {
	Name        string
	Description string
	Run         func(ctx context.Context, api APIClient) error
}

// Mismatch reports an observed value differing from the contract, carrying
// both sides so the failure is actionable without re-running.
func Mismatch(what, expected, actual string) error {
	return fmt.Errorf("%s: expected %q, got %q", what, expected, actual)
}

func expectFeedback(res *wcg.Response, expected string) error {
	if res.Feedback != expected {
		actual := res.Feedback
		if actual == "" {
			actual = string(res.Body)
		}
		return Mismatch("feedback", expected, actual)
	}
	return nil
}

func expectStatus(res *wcg.Response, expected int) error {
	if res.StatusCode != expected {
		return Mismatch("status code", strconv.Itoa(expected), strconv.Itoa(res.StatusCode))
	}
	return nil
}
