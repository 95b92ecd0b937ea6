package constvars

const (
	CreateSessionSuccessMessage = "Successfully created booking session"
	DeleteSessionSuccessMessage = "Successfully logged out"

	GetSpecialtiesSuccessMessage = "Successfully retrieved specialties"
	GetDoctorsSuccessMessage     = "Successfully retrieved doctors"

	CreateDraftSuccessMessage      = "Successfully created booking draft"
	GetDraftSuccessMessage         = "Successfully retrieved booking draft"
	UpdateDraftSuccessMessage      = "Successfully updated booking draft"
	GetAvailabilitySuccessMessage  = "Successfully resolved availability"
	AdvanceStageSuccessMessage     = "Successfully advanced to the next step"
	ReturnStageSuccessMessage      = "Successfully returned to the previous step"
	SubmitBookingSuccessMessage    = "Successfully booked the appointment"
	AttachReferralSuccessMessage   = "Successfully attached referral document"
	BookingValidationFailedMessage = "Some fields are missing or invalid"
)
