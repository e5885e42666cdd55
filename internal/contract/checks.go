package contract

import (
	"context"
	"fmt"
	"net/http"

	"vaxcheck/internal/wcg"
	"vaxcheck/pkg/testutil"
)

// Suite returns the fixed list of conformance checks, in execution order.
// Checks share the default citizen, so the runner resets upstream state
// before each one and never runs them concurrently.
func Suite() []Check {
	return []Check{
		{
			Name:        "reserve-registered-citizen",
			Description: "registration followed by a matching reservation succeeds with HTTP 201",
			Run:         checkReserveRegisteredCitizen,
		},
		{
			Name:        "reserve-missing-attribute",
			Description: "reservation payloads with an empty citizen_id or site_name are rejected",
			Run:         checkReserveMissingAttribute,
		},
		{
			Name:        "reserve-twice",
			Description: "a second reservation for the same citizen is rejected",
			Run:         checkReserveTwice,
		},
		{
			Name:        "reserve-unregistered-citizen",
			Description: "reserving a citizen the service has never registered is rejected",
			Run:         checkReserveUnregisteredCitizen,
		},
		{
			Name:        "reserve-malformed-citizen-id",
			Description: "citizen IDs that are not exactly 13 digits are rejected",
			Run:         checkReserveMalformedCitizenID,
		},
		{
			Name:        "reserve-unknown-vaccine",
			Description: "vaccine names outside the service's catalog are rejected",
			Run:         checkReserveUnknownVaccine,
		},
	}
}

func checkReserveRegisteredCitizen(ctx context.Context, api APIClient) error {
	reg, err := api.Register(ctx, testutil.NewRegistrationBuilder().Build())
	if err != nil {
		return err
	}
	if err := expectFeedback(reg, wcg.FeedbackRegistrationSuccess); err != nil {
		return fmt.Errorf("registration: %w", err)
	}

	res, err := api.Reserve(ctx, testutil.NewReservationBuilder().Build())
	if err != nil {
		return err
	}
	if err := expectStatus(res, http.StatusCreated); err != nil {
		return err
	}
	return expectFeedback(res, wcg.FeedbackReservationSuccess)
}

func checkReserveMissingAttribute(ctx context.Context, api APIClient) error {
	cases := []struct {
		name string
		info wcg.ReservationInfo
	}{
		{"empty citizen_id", testutil.NewReservationBuilder().WithCitizenID("").Build()},
		{"empty site_name", testutil.NewReservationBuilder().WithSiteName("").Build()},
	}

	for _, tc := range cases {
		res, err := api.Reserve(ctx, tc.info)
		if err != nil {
			return fmt.Errorf("%s: %w", tc.name, err)
		}
		if err := expectFeedback(res, wcg.FeedbackMissingAttribute); err != nil {
			return fmt.Errorf("%s: %w", tc.name, err)
		}
	}
	return nil
}

func checkReserveTwice(ctx context.Context, api APIClient) error {
	reg, err := api.Register(ctx, testutil.NewRegistrationBuilder().Build())
	if err != nil {
		return err
	}
	if err := expectFeedback(reg, wcg.FeedbackRegistrationSuccess); err != nil {
		return fmt.Errorf("registration: %w", err)
	}

	first, err := api.Reserve(ctx, testutil.NewReservationBuilder().Build())
	if err != nil {
		return err
	}
	if err := expectFeedback(first, wcg.FeedbackReservationSuccess); err != nil {
		return fmt.Errorf("first reservation: %w", err)
	}

	second, err := api.Reserve(ctx, testutil.NewReservationBuilder().Build())
	if err != nil {
		return err
	}
	if err := expectFeedback(second, wcg.FeedbackAlreadyReserved); err != nil {
		return fmt.Errorf("second reservation: %w", err)
	}
	return nil
}

func checkReserveUnregisteredCitizen(ctx context.Context, api APIClient) error {
	// the runner deleted the default citizen's registration right before this
	res, err := api.Reserve(ctx, testutil.NewReservationBuilder().Build())
	if err != nil {
		return err
	}
	return expectFeedback(res, wcg.FeedbackNotRegistered)
}

func checkReserveMalformedCitizenID(ctx context.Context, api APIClient) error {
	cases := []struct {
		name string
		id   string
	}{
		{"3 digits", "123"},
		{"20 digits", "12345678901234567890"},
		{"alphabetic characters", "1abc2bcd3"},
		{"decimal point", "112233.44"},
	}

	for _, tc := range cases {
		res, err := api.Reserve(ctx, testutil.NewReservationBuilder().WithCitizenID(tc.id).Build())
		if err != nil {
			return fmt.Errorf("%s: %w", tc.name, err)
		}
		if err := expectFeedback(res, wcg.FeedbackInvalidCitizenID); err != nil {
			return fmt.Errorf("%s: %w", tc.name, err)
		}
	}
	return nil
}

func checkReserveUnknownVaccine(ctx context.Context, api APIClient) error {
	reg, err := api.Register(ctx, testutil.NewRegistrationBuilder().Build())
	if err != nil {
		return err
	}
	if err := expectFeedback(reg, wcg.FeedbackRegistrationSuccess); err != nil {
		return fmt.Errorf("registration: %w", err)
	}

	for _, vaccine := range []string{"123", "Taksin"} {
		res, err := api.Reserve(ctx, testutil.NewReservationBuilder().WithVaccineName(vaccine).Build())
		if err != nil {
			return fmt.Errorf("vaccine %q: %w", vaccine, err)
		}
		if err := expectFeedback(res, wcg.FeedbackInvalidVaccineName); err != nil {
			return fmt.Errorf("vaccine %q: %w", vaccine, err)
		}
	}
	return nil
}
