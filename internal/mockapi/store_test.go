package mockapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreRegisterOnce(t *testing.T) {
	s := NewStore()

	assert.True(t, s.Register(Registration{CitizenID: "1102543765123"}))
	assert.False(t, s.Register(Registration{CitizenID: "1102543765123"}))
	assert.True(t, s.Registered("1102543765123"))
	assert.False(t, s.Registered("9999999999999"))
}

func TestStoreSingleReservationPerCitizen(t *testing.T) {
	s := NewStore()
	s.Register(Registration{CitizenID: "1102543765123"})

	assert.True(t, s.Reserve(Reservation{CitizenID: "1102543765123", VaccineName: "Astra"}))
	assert.False(t, s.Reserve(Reservation{CitizenID: "1102543765123", VaccineName: "Pfizer"}))
}

func TestStoreDeleteRemovesEverything(t *testing.T) {
	s := NewStore()
	s.Register(Registration{CitizenID: "1102543765123"})
	s.Reserve(Reservation{CitizenID: "1102543765123"})

	assert.True(t, s.Delete("1102543765123"))
	assert.False(t, s.Registered("1102543765123"))
	assert.True(t, s.Reserve(Reservation{CitizenID: "1102543765123"}))

	assert.False(t, s.Delete("9999999999999"))
}
