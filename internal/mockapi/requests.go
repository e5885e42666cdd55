package mockapi

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var citizenIDPattern = regexp.MustCompile(`^[0-9]{13}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("citizenid", func(fl validator.FieldLevel) bool {
		return citizenIDPattern.MatchString(fl.Field().String())
	})
	return v
}

// registrationRequest mirrors the form fields of POST /registration.
type registrationRequest struct {
	CitizenID   string `validate:"required,citizenid"`
	Name        string `validate:"required"`
	Surname     string `validate:"required"`
	BirthDate   string `validate:"required"`
	Occupation  string `validate:"required"`
	PhoneNumber string `validate:"required"`
	IsRisk      string `validate:"required"`
	Address     string `validate:"required"`
}

func registrationFromForm(r *http.Request) registrationRequest {
	return registrationRequest{
		CitizenID:   r.PostFormValue("citizen_id"),
		Name:        r.PostFormValue("name"),
		Surname:     r.PostFormValue("surname"),
		BirthDate:   r.PostFormValue("birth_date"),
		Occupation:  r.PostFormValue("occupation"),
		PhoneNumber: r.PostFormValue("phone_number"),
		IsRisk:      r.PostFormValue("is_risk"),
		Address:     r.PostFormValue("address"),
	}
}

func (r registrationRequest) registration() Registration {
	return Registration{
		CitizenID:   r.CitizenID,
		Name:        r.Name,
		Surname:     r.Surname,
		BirthDate:   r.BirthDate,
		Occupation:  r.Occupation,
		PhoneNumber: r.PhoneNumber,
		IsRisk:      r.IsRisk,
		Address:     r.Address,
	}
}

// reservationRequest mirrors the form fields of POST /reservation.
type reservationRequest struct {
	CitizenID   string `validate:"required,citizenid"`
	SiteName    string `validate:"required"`
	VaccineName string `validate:"required"`
}

func reservationFromForm(r *http.Request) reservationRequest {
	return reservationRequest{
		CitizenID:   r.PostFormValue("citizen_id"),
		SiteName:    r.PostFormValue("site_name"),
		VaccineName: r.PostFormValue("vaccine_name"),
	}
}

func (r reservationRequest) reservation() Reservation {
	return Reservation{
		CitizenID:   r.CitizenID,
		SiteName:    r.SiteName,
		VaccineName: r.VaccineName,
	}
}

type failure int

const (
	failNone failure = iota
	failMissing
	failCitizenID
)

// classify maps validator output onto the contract's two request-shape
// failures. A missing attribute anywhere in the payload takes precedence
// over a malformed citizen ID, matching the upstream service's ordering.
func classify(err error) failure {
	if err == nil {
		return failNone
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return failMissing
	}

	result := failNone
	for _, fe := range verrs {
		switch fe.ActualTag() {
		case "required":
			return failMissing
		case "citizenid":
			result = failCitizenID
		}
	}
	return result
}
