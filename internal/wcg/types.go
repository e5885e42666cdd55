package wcg

import "net/url"

// RegistrationInfo is the form payload for POST /registration. Values are
// passed through as-is: the harness never validates locally, so deliberately
// invalid values reach the remote validation they exist to exercise.
type RegistrationInfo struct {
	CitizenID   string
	Name        string
	Surname     string
	BirthDate   string
	Occupation  string
	PhoneNumber string
	IsRisk      string
	Address     string
}

// Values encodes the payload as a form body. Empty fields are sent as empty
// strings rather than omitted, matching how the upstream API is exercised.
func (r RegistrationInfo) Values() url.Values {
	return url.Values{
		"citizen_id":   {r.CitizenID},
		"name":         {r.Name},
		"surname":      {r.Surname},
		"birth_date":   {r.BirthDate},
		"occupation":   {r.Occupation},
		"phone_number": {r.PhoneNumber},
		"is_risk":      {r.IsRisk},
		"address":      {r.Address},
	}
}

// ReservationInfo is the form payload for POST /reservation. A reservation
// is only meaningful for a citizen_id the service has already registered.
type ReservationInfo struct {
	CitizenID   string
	SiteName    string
	VaccineName string
}

// Values encodes the payload as a form body.
func (r ReservationInfo) Values() url.Values {
	return url.Values{
		"citizen_id":   {r.CitizenID},
		"site_name":    {r.SiteName},
		"vaccine_name": {r.VaccineName},
	}
}
