package responses

// BookingDraft is the client view of a draft: everything the form needs to
// render the current step.
type BookingDraft struct {
	ID       string `json:"id"`
	Stage    string `json:"stage"`
	Revision int    `json:"revision"`

	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`

	ConsultationType string `json:"consultation_type"`
	Specialty        string `json:"specialty"`
	DoctorID         string `json:"doctor_id"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	SlotID           string `json:"slot_id,omitempty"`

	Reason string `json:"reason"`

	AvailableTimes []string `json:"available_times"`
	HasReferral    bool     `json:"has_referral"`
	Warning        string   `json:"warning,omitempty"`
	LastError      string   `json:"last_error,omitempty"`
}

// DayAvailability lists the bookable slots for one doctor on one date. Slots
// keep backend order; SlotID is the selection key.
type DayAvailability struct {
	Date      string          `json:"date"`
	Weekday   string          `json:"weekday"`
	Available bool            `json:"available"`
	Times     []string        `json:"times"`
	Slots     []AvailableSlot `json:"slots"`
	Warning   string          `json:"warning,omitempty"`
}

type AvailableSlot struct {
	Time   string `json:"time"`
	SlotID string `json:"slot_id"`
}

type BookingSubmission struct {
	Stage         string        `json:"stage"`
	AppointmentID string        `json:"appointment_id,omitempty"`
	Message       string        `json:"message,omitempty"`
	Draft         *BookingDraft `json:"draft,omitempty"`
}

type ReferralAttachment struct {
	ObjectName string `json:"object_name"`
	URL        string `json:"url"`
}

type DoctorSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

type CreateSession struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at,omitempty"`
}
