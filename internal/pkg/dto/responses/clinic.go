package responses

// ClinicDoctor is the doctor record as the clinic backend serves it. Schedule
// keys are locale day names; ingestion translates them to the internal
// weekday enum.
type ClinicDoctor struct {
	ID              string                          `json:"id"`
	FirstName       string                          `json:"prenom"`
	LastName        string                          `json:"nom"`
	Specialty       string                          `json:"specialite"`
	HorairesParJour map[string][]ClinicScheduleSlot `json:"horaires_par_jour"`
}

type ClinicScheduleSlot struct {
	Time   string `json:"heure"`
	SlotID string `json:"idCreneau"`
}

type ClinicAppointment struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ClinicError is the error envelope the clinic backend returns on non-2xx.
type ClinicError struct {
	Message string `json:"message"`
}
