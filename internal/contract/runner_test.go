package contract

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"vaxcheck/internal/contract/mocks"
	"vaxcheck/internal/wcg"
	"vaxcheck/pkg/testutil"
)

func okResponse(feedback string) *wcg.Response {
	return &wcg.Response{StatusCode: http.StatusOK, Feedback: feedback}
}

func TestRunnerResetsBeforeEachCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPIClient(ctrl)

	api.EXPECT().
		DeleteRegistration(gomock.Any(), testutil.DefaultCitizenID).
		Return(okResponse("deleted"), nil).
		Times(2)

	ran := 0
	noop := Check{
		Name: "noop",
		Run: func(ctx context.Context, api APIClient) error {
			ran++
			return nil
		},
	}

	runner := NewRunner(api, WithChecks([]Check{noop, noop}))
	report := runner.Run(context.Background())

	assert.Equal(t, 2, ran)
	assert.True(t, report.Passed())
	assert.Equal(t, 0, report.Failed())
	assert.Len(t, report.Results, 2)
	assert.NotEqual(t, "", report.RunID.String())
}

func TestRunnerFailsCheckWhenResetFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPIClient(ctrl)

	api.EXPECT().
		DeleteRegistration(gomock.Any(), testutil.DefaultCitizenID).
		Return(nil, errors.New("connection refused"))

	ran := false
	check := Check{
		Name: "never-runs",
		Run: func(ctx context.Context, api APIClient) error {
			ran = true
			return nil
		},
	}

	runner := NewRunner(api, WithChecks([]Check{check}))
	report := runner.Run(context.Background())

	assert.False(t, ran, "check must not run when state reset fails")
	assert.False(t, report.Passed())
	require.Equal(t, 1, report.Failed())
	assert.ErrorContains(t, report.Results[0].Err, "reset state")
}

func TestRunnerContinuesAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPIClient(ctrl)

	api.EXPECT().
		DeleteRegistration(gomock.Any(), gomock.Any()).
		Return(okResponse("deleted"), nil).
		Times(2)

	failing := Check{
		Name: "failing",
		Run: func(ctx context.Context, api APIClient) error {
			return Mismatch("feedback", wcg.FeedbackReservationSuccess, "oops")
		},
	}
	passing := Check{
		Name: "passing",
		Run: func(ctx context.Context, api APIClient) error {
			return nil
		},
	}

	runner := NewRunner(api, WithChecks([]Check{failing, passing}))
	report := runner.Run(context.Background())

	require.Len(t, report.Results, 2)
	assert.False(t, report.Results[0].Passed())
	assert.True(t, report.Results[1].Passed())
	assert.Equal(t, 1, report.Failed())
}

func TestCheckSurfacesTransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPIClient(ctrl)

	api.EXPECT().
		DeleteRegistration(gomock.Any(), gomock.Any()).
		Return(okResponse("deleted"), nil)
	api.EXPECT().
		Reserve(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("dial tcp: connection refused"))

	runner := NewRunner(api, WithChecks([]Check{{
		Name: "reserve-unregistered-citizen",
		Run:  checkReserveUnregisteredCitizen,
	}}))
	report := runner.Run(context.Background())

	require.Equal(t, 1, report.Failed())
	assert.ErrorContains(t, report.Results[0].Err, "connection refused")
}

func TestMismatchCarriesBothValues(t *testing.T) {
	err := Mismatch("feedback", "reservation success!", "reservation failed: invalid vaccine name")
	assert.EqualError(t, err,
		`feedback: expected "reservation success!", got "reservation failed: invalid vaccine name"`)
}
