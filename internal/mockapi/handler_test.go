package mockapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaxcheck/internal/wcg"
)

func setupHandler(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(NewStore(), logger).Router()
}

func postForm(t *testing.T, h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func deleteCitizen(t *testing.T, h http.Handler, citizenID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodDelete, "/registration/"+citizenID, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func feedbackOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body["feedback"]
}

func defaultRegistration() url.Values {
	return wcg.RegistrationInfo{
		CitizenID:   "1102543765123",
		Name:        "Somchai",
		Surname:     "Jaidee",
		BirthDate:   "10 Oct 2000",
		Occupation:  "Student",
		PhoneNumber: "0865194261",
		IsRisk:      "false",
		Address:     "66/6 Moodaeng rd. 10220",
	}.Values()
}

func defaultReservation() url.Values {
	return wcg.ReservationInfo{
		CitizenID:   "1102543765123",
		SiteName:    "Chakkrapan",
		VaccineName: "Astra",
	}.Values()
}

func TestRegisterCitizen(t *testing.T) {
	h := setupHandler(t)

	rec := postForm(t, h, "/registration", defaultRegistration())
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, wcg.FeedbackRegistrationSuccess, feedbackOf(t, rec))
}

func TestRegisterDuplicateCitizen(t *testing.T) {
	h := setupHandler(t)

	postForm(t, h, "/registration", defaultRegistration())
	rec := postForm(t, h, "/registration", defaultRegistration())
	assert.Equal(t, wcg.FeedbackRegistrationDuplicate, feedbackOf(t, rec))
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(url.Values)
		feedback string
	}{
		{
			name:     "missing name",
			mutate:   func(f url.Values) { f.Set("name", "") },
			feedback: wcg.FeedbackRegistrationMissing,
		},
		{
			name:     "missing address",
			mutate:   func(f url.Values) { f.Set("address", "") },
			feedback: wcg.FeedbackRegistrationMissing,
		},
		{
			name:     "short citizen id",
			mutate:   func(f url.Values) { f.Set("citizen_id", "123") },
			feedback: wcg.FeedbackRegistrationInvalidID,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := setupHandler(t)
			form := defaultRegistration()
			tc.mutate(form)

			rec := postForm(t, h, "/registration", form)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tc.feedback, feedbackOf(t, rec))
		})
	}
}

func TestReserveRegisteredCitizen(t *testing.T) {
	h := setupHandler(t)

	postForm(t, h, "/registration", defaultRegistration())
	rec := postForm(t, h, "/reservation", defaultReservation())

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, wcg.FeedbackReservationSuccess, feedbackOf(t, rec))
}

func TestReserveValidationOrder(t *testing.T) {
	tests := []struct {
		name     string
		register bool
		mutate   func(url.Values)
		feedback string
	}{
		{
			name:     "empty citizen id is missing, not invalid",
			mutate:   func(f url.Values) { f.Set("citizen_id", "") },
			feedback: wcg.FeedbackMissingAttribute,
		},
		{
			name:     "empty site name",
			register: true,
			mutate:   func(f url.Values) { f.Set("site_name", "") },
			feedback: wcg.FeedbackMissingAttribute,
		},
		{
			name:     "alphabetic citizen id",
			mutate:   func(f url.Values) { f.Set("citizen_id", "1abc2bcd3") },
			feedback: wcg.FeedbackInvalidCitizenID,
		},
		{
			name:     "decimal citizen id",
			mutate:   func(f url.Values) { f.Set("citizen_id", "112233.44") },
			feedback: wcg.FeedbackInvalidCitizenID,
		},
		{
			name:     "20 digit citizen id",
			mutate:   func(f url.Values) { f.Set("citizen_id", "12345678901234567890") },
			feedback: wcg.FeedbackInvalidCitizenID,
		},
		{
			name:     "unregistered citizen",
			mutate:   func(url.Values) {},
			feedback: wcg.FeedbackNotRegistered,
		},
		{
			name:     "unknown vaccine name",
			register: true,
			mutate:   func(f url.Values) { f.Set("vaccine_name", "Taksin") },
			feedback: wcg.FeedbackInvalidVaccineName,
		},
		{
			name:     "numeric vaccine name",
			register: true,
			mutate:   func(f url.Values) { f.Set("vaccine_name", "123") },
			feedback: wcg.FeedbackInvalidVaccineName,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := setupHandler(t)
			if tc.register {
				postForm(t, h, "/registration", defaultRegistration())
			}
			form := defaultReservation()
			tc.mutate(form)

			rec := postForm(t, h, "/reservation", form)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tc.feedback, feedbackOf(t, rec))
		})
	}
}

func TestReserveTwice(t *testing.T) {
	h := setupHandler(t)

	postForm(t, h, "/registration", defaultRegistration())

	first := postForm(t, h, "/reservation", defaultReservation())
	assert.Equal(t, wcg.FeedbackReservationSuccess, feedbackOf(t, first))

	second := postForm(t, h, "/reservation", defaultReservation())
	assert.Equal(t, http.StatusBadRequest, second.Code)
	assert.Equal(t, wcg.FeedbackAlreadyReserved, feedbackOf(t, second))
}

func TestDeleteClearsReservationToo(t *testing.T) {
	h := setupHandler(t)

	postForm(t, h, "/registration", defaultRegistration())
	postForm(t, h, "/reservation", defaultReservation())

	rec := deleteCitizen(t, h, "1102543765123")
	assert.Equal(t, http.StatusOK, rec.Code)

	// the citizen is gone entirely, including the reservation
	res := postForm(t, h, "/reservation", defaultReservation())
	assert.Equal(t, wcg.FeedbackNotRegistered, feedbackOf(t, res))

	// re-registering starts from a clean slate
	postForm(t, h, "/registration", defaultRegistration())
	res = postForm(t, h, "/reservation", defaultReservation())
	assert.Equal(t, wcg.FeedbackReservationSuccess, feedbackOf(t, res))
}

func TestDeleteUnknownCitizen(t *testing.T) {
	h := setupHandler(t)

	rec := deleteCitizen(t, h, "9999999999999")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealth(t *testing.T) {
	h := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}
