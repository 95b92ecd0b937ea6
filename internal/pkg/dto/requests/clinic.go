package requests

// ClinicAppointment is the wire payload the clinic backend expects on
// appointment creation. Field names follow the backend contract.
type ClinicAppointment struct {
	PersonalInfo    ClinicPersonalInfo    `json:"personalInfo"`
	AppointmentInfo ClinicAppointmentInfo `json:"appointmentInfo"`
	Reason          string                `json:"reason"`
}

type ClinicPersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
}

type ClinicAppointmentInfo struct {
	ConsultationType string `json:"consultationType"`
	Specialty        string `json:"specialite"`
	Doctor           string `json:"doctor"`
	Date             string `json:"date"`
	Time             string `json:"heure"`
	SlotID           string `json:"creneauId"`
}
