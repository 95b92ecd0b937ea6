package requests

// BookingConfirmedEvent is published to the notification queue after the
// clinic backend accepts a booking.
type BookingConfirmedEvent struct {
	DraftID      string `json:"draft_id"`
	PatientName  string `json:"patient_name"`
	PatientEmail string `json:"patient_email"`
	DoctorName   string `json:"doctor_name"`
	Specialty    string `json:"specialty"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	SlotID       string `json:"slot_id"`
}
