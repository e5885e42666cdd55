package wcg

// Feedback strings returned by the WCG API under the "feedback" key. These
// are an external contract fixture: the upstream service's exact wording,
// never derived locally. Any change upstream is a contract break.
const (
	FeedbackRegistrationSuccess = "registration success!"
	FeedbackReservationSuccess  = "reservation success!"

	FeedbackMissingAttribute   = "reservation failed: missing some attribute"
	FeedbackAlreadyReserved    = "reservation failed: there is already a reservation for this citizen"
	FeedbackInvalidCitizenID   = "reservation failed: invalid citizen ID"
	FeedbackNotRegistered      = "reservation failed: citizen ID is not registered"
	FeedbackInvalidVaccineName = "reservation failed: invalid vaccine name"
)

// Registration-side failure wording. The conformance suite does not assert
// on these, but the stub service returns them to stay faithful to upstream.
const (
	FeedbackRegistrationMissing   = "registration failed: missing some attribute"
	FeedbackRegistrationInvalidID = "registration failed: invalid citizen ID"
	FeedbackRegistrationDuplicate = "registration failed: this person already registered"
)
