package testutil

import "vaxcheck/internal/wcg"

// Default fixture values. The whole suite shares one well-known citizen,
// which is why checks run sequentially and reset upstream state first.
const (
	DefaultCitizenID = "1102543765123"
	DefaultSiteName  = "Chakkrapan"
	DefaultVaccine   = "Astra"
)

// RegistrationBuilder provides a fluent interface for building registration payloads.
type RegistrationBuilder struct {
	info wcg.RegistrationInfo
}

// NewRegistrationBuilder creates a RegistrationBuilder with sensible defaults.
func NewRegistrationBuilder() *RegistrationBuilder {
	return &RegistrationBuilder{
		info: wcg.RegistrationInfo{
			CitizenID:   DefaultCitizenID,
			Name:        "Somchai",
			Surname:     "Jaidee",
			BirthDate:   "10 Oct 2000",
			Occupation:  "Student",
			PhoneNumber: "0865194261",
			IsRisk:      "false",
			Address:     "66/6 Moodaeng rd. 10220",
		},
	}
}

func (b *RegistrationBuilder) WithCitizenID(id string) *RegistrationBuilder {
	b.info.CitizenID = id
	return b
}

func (b *RegistrationBuilder) WithName(name, surname string) *RegistrationBuilder {
	b.info.Name = name
	b.info.Surname = surname
	return b
}

func (b *RegistrationBuilder) WithBirthDate(birthDate string) *RegistrationBuilder {
	b.info.BirthDate = birthDate
	return b
}

func (b *RegistrationBuilder) WithOccupation(occupation string) *RegistrationBuilder {
	b.info.Occupation = occupation
	return b
}

func (b *RegistrationBuilder) WithPhoneNumber(phone string) *RegistrationBuilder {
	b.info.PhoneNumber = phone
	return b
}

// AtRisk sets the boolean-as-string risk flag the API expects.
func (b *RegistrationBuilder) AtRisk(risk bool) *RegistrationBuilder {
	if risk {
		b.info.IsRisk = "true"
	} else {
		b.info.IsRisk = "false"
	}
	return b
}

func (b *RegistrationBuilder) WithAddress(address string) *RegistrationBuilder {
	b.info.Address = address
	return b
}

func (b *RegistrationBuilder) Build() wcg.RegistrationInfo {
	return b.info
}

// ReservationBuilder provides a fluent interface for building reservation payloads.
type ReservationBuilder struct {
	info wcg.ReservationInfo
}

// NewReservationBuilder creates a ReservationBuilder with sensible defaults.
func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		info: wcg.ReservationInfo{
			CitizenID:   DefaultCitizenID,
			SiteName:    DefaultSiteName,
			VaccineName: DefaultVaccine,
		},
	}
}

func (b *ReservationBuilder) WithCitizenID(id string) *ReservationBuilder {
	b.info.CitizenID = id
	return b
}

func (b *ReservationBuilder) WithSiteName(site string) *ReservationBuilder {
	b.info.SiteName = site
	return b
}

func (b *ReservationBuilder) WithVaccineName(vaccine string) *ReservationBuilder {
	b.info.VaccineName = vaccine
	return b
}

func (b *ReservationBuilder) Build() wcg.ReservationInfo {
	return b.info
}
