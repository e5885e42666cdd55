package mockapi

import "sync"

// Registration is one citizen's registration record.
type Registration struct {
	CitizenID   string
	Name        string
	Surname     string
	BirthDate   string
	Occupation  string
	PhoneNumber string
	IsRisk      string
	Address     string
}

// Reservation is one citizen's active vaccine reservation. The service keeps
// at most one per citizen.
type Reservation struct {
	CitizenID   string
	SiteName    string
	VaccineName string
}

// Store keeps stub state in memory behind a mutex. The real service owns
// this state; the stub only holds enough of it to honor the contract.
type Store struct {
	mu            sync.Mutex
	registrations map[string]Registration
	reservations  map[string]Reservation
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		registrations: make(map[string]Registration),
		reservations:  make(map[string]Reservation),
	}
}

// Register records a registration. Returns false when the citizen is
// already registered.
func (s *Store) Register(reg Registration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.registrations[reg.CitizenID]; ok {
		return false
	}
	s.registrations[reg.CitizenID] = reg
	return true
}

// Registered reports whether the citizen has a registration.
func (s *Store) Registered(citizenID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.registrations[citizenID]
	return ok
}

// Reserve records a reservation. Returns false when the citizen already has
// an active one.
func (s *Store) Reserve(res Reservation) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reservations[res.CitizenID]; ok {
		return false
	}
	s.reservations[res.CitizenID] = res
	return true
}

// Delete removes a citizen's registration and any reservation with it.
// Returns false when the citizen was not registered.
func (s *Store) Delete(citizenID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.registrations[citizenID]; !ok {
		return false
	}
	delete(s.registrations, citizenID)
	delete(s.reservations, citizenID)
	return true
}
