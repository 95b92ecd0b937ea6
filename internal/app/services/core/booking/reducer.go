package booking

import (
	"clinibook-service/internal/app/models"
	"clinibook-service/internal/pkg/constvars"
)

// ApplyFieldChange is the single place the cascading resets live. Changing a
// field invalidates everything derived from it:
//
//	specialty -> doctor, date, time, slot id, available times
//	doctor    -> date, time, slot id, available times
//	date      -> slot id (time survives until the recompute proves it gone;
//	             clearing the date drops the time and the offered list too)
//	time      -> slot id (re-resolved against the fresh schedule)
//
// It returns true when the doctor/date selection changed in a way that
// requires the available times to be recomputed.
func ApplyFieldChange(draft *models.Draft, field, value string) bool {
	switch field {
	case constvars.FieldFullName:
		draft.PersonalInfo.FullName = value
	case constvars.FieldEmail:
		draft.PersonalInfo.Email = value
	case constvars.FieldPhone:
		draft.PersonalInfo.Phone = value
	case constvars.FieldReason:
		draft.Reason = value
	case constvars.FieldConsultationType:
		draft.Appointment.ConsultationType = value
	case constvars.FieldSpecialty:
		draft.Appointment.Specialty = value
		draft.Appointment.DoctorID = ""
		draft.Appointment.Date = ""
		draft.Appointment.Time = ""
		draft.Appointment.SlotID = ""
		draft.AvailableTimes = nil
	case constvars.FieldDoctor:
		draft.Appointment.DoctorID = value
		draft.Appointment.Date = ""
		draft.Appointment.Time = ""
		draft.Appointment.SlotID = ""
		draft.AvailableTimes = nil
	case constvars.FieldDate:
		draft.Appointment.Date = value
		draft.Appointment.SlotID = ""
		if value == "" {
			draft.Appointment.Time = ""
			draft.AvailableTimes = nil
			return false
		}
		return draft.Appointment.DoctorID != ""
	case constvars.FieldTime:
		draft.Appointment.Time = value
		draft.Appointment.SlotID = ""
	}
	return false
}
