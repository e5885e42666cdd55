package mockapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"vaxcheck/internal/platform/middleware"
	"vaxcheck/internal/wcg"
)

// knownVaccines is the stub's fixed vaccine catalog, matching what the
// upstream deployment accepts.
var knownVaccines = map[string]bool{
	"Pfizer":    true,
	"Astra":     true,
	"Sinopharm": true,
	"Sinovac":   true,
}

// Handler implements the subset of the WCG API the conformance suite
// exercises. It exists as test infrastructure: the suite and the e2e tests
// can run against it without a live deployment.
type Handler struct {
	store  *Store
	logger *slog.Logger
}

// NewHandler creates a Handler backed by the given store.
func NewHandler(store *Store, logger *slog.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// Router wires the stub endpoints with the platform middleware stack.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(h.logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(h.logger))

	r.Get("/health", h.handleHealth)
	r.Post("/registration", h.handleRegister)
	r.Delete("/registration/{citizenID}", h.handleDeleteRegistration)
	r.Post("/reservation", h.handleReserve)

	return r
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "mock-wcg",
	})
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	req := registrationFromForm(r)

	switch classify(validate.Struct(req)) {
	case failMissing:
		feedback(w, http.StatusBadRequest, wcg.FeedbackRegistrationMissing)
		return
	case failCitizenID:
		feedback(w, http.StatusBadRequest, wcg.FeedbackRegistrationInvalidID)
		return
	}

	if !h.store.Register(req.registration()) {
		feedback(w, http.StatusOK, wcg.FeedbackRegistrationDuplicate)
		return
	}
	feedback(w, http.StatusCreated, wcg.FeedbackRegistrationSuccess)
}

func (h *Handler) handleReserve(w http.ResponseWriter, r *http.Request) {
	req := reservationFromForm(r)

	// Validation order mirrors the upstream service: request shape first,
	// then registration existence, vaccine catalog, and finally the
	// one-reservation-per-citizen rule.
	switch classify(validate.Struct(req)) {
	case failMissing:
		feedback(w, http.StatusBadRequest, wcg.FeedbackMissingAttribute)
		return
	case failCitizenID:
		feedback(w, http.StatusBadRequest, wcg.FeedbackInvalidCitizenID)
		return
	}

	if !h.store.Registered(req.CitizenID) {
		feedback(w, http.StatusBadRequest, wcg.FeedbackNotRegistered)
		return
	}
	if !knownVaccines[req.VaccineName] {
		feedback(w, http.StatusBadRequest, wcg.FeedbackInvalidVaccineName)
		return
	}
	if !h.store.Reserve(req.reservation()) {
		feedback(w, http.StatusBadRequest, wcg.FeedbackAlreadyReserved)
		return
	}
	feedback(w, http.StatusCreated, wcg.FeedbackReservationSuccess)
}

func (h *Handler) handleDeleteRegistration(w http.ResponseWriter, r *http.Request) {
	citizenID := chi.URLParam(r, "citizenID")

	if !h.store.Delete(citizenID) {
		feedback(w, http.StatusNotFound, "citizen not found")
		return
	}
	feedback(w, http.StatusOK, "deleted the citizen successfully")
}

func feedback(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"feedback": msg})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
