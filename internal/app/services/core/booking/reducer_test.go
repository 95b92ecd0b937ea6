package booking

import (
	"clinibook-service/internal/app/models"
	"clinibook-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func filledDraft() *models.Draft {
	return &models.Draft{
		ID:        "draft-1",
		SessionID: "session-1",
		Stage:     models.StageAppointment,
		PersonalInfo: models.PersonalInfo{
			FullName: "Claire Dubois",
			Email:    "claire@example.com",
			Phone:    "0612345678",
		},
		Appointment: models.AppointmentSelection{
			ConsultationType: constvars.ConsultationTypeCabinet,
			Specialty:        "Cardiologie",
			DoctorID:         "doc-1",
			Date:             "2024-01-01",
			Time:             "09:00",
			SlotID:           "c1",
		},
		Reason:         "Contrôle annuel de routine",
		AvailableTimes: []string{"09:00", "10:00"},
	}
}

func TestApplyFieldChange_SpecialtyResetsEverythingDownstream(t *testing.T) {
	draft := filledDraft()

	recompute := ApplyFieldChange(draft, constvars.FieldSpecialty, "Dermatologie")

	assert.False(t, recompute)
	assert.Equal(t, "Dermatologie", draft.Appointment.Specialty)
	assert.Empty(t, draft.Appointment.DoctorID)
	assert.Empty(t, draft.Appointment.Date)
	assert.Empty(t, draft.Appointment.Time)
	assert.Empty(t, draft.Appointment.SlotID)
	assert.Empty(t, draft.AvailableTimes)

	// Fields upstream of the specialty survive.
	assert.Equal(t, "Claire Dubois", draft.PersonalInfo.FullName)
	assert.Equal(t, constvars.ConsultationTypeCabinet, draft.Appointment.ConsultationType)
	assert.Equal(t, "Contrôle annuel de routine", draft.Reason)
}

func TestApplyFieldChange_DoctorResetsDateTimeAndSlot(t *testing.T) {
	draft := filledDraft()

	recompute := ApplyFieldChange(draft, constvars.FieldDoctor, "doc-2")

	assert.False(t, recompute)
	assert.Equal(t, "doc-2", draft.Appointment.DoctorID)
	assert.Equal(t, "Cardiologie", draft.Appointment.Specialty)
	assert.Empty(t, draft.Appointment.Date)
	assert.Empty(t, draft.Appointment.Time)
	assert.Empty(t, draft.Appointment.SlotID)
	assert.Empty(t, draft.AvailableTimes)
}

func TestApplyFieldChange_DateClearsSlotAndRequestsRecompute(t *testing.T) {
	draft := filledDraft()

	recompute := ApplyFieldChange(draft, constvars.FieldDate, "2024-01-08")

	assert.True(t, recompute)
	assert.Equal(t, "2024-01-08", draft.Appointment.Date)
	assert.Empty(t, draft.Appointment.SlotID)
	// The selected time is only dropped once the recompute proves it gone.
	assert.Equal(t, "09:00", draft.Appointment.Time)
}

func TestApplyFieldChange_ClearingDateDropsTimeAndOfferedList(t *testing.T) {
	draft := filledDraft()

	recompute := ApplyFieldChange(draft, constvars.FieldDate, "")

	assert.False(t, recompute)
	assert.Empty(t, draft.Appointment.Date)
	assert.Empty(t, draft.Appointment.Time)
	assert.Empty(t, draft.Appointment.SlotID)
	assert.Empty(t, draft.AvailableTimes)
}

func TestApplyFieldChange_DateWithoutDoctorDoesNotRecompute(t *testing.T) {
	draft := filledDraft()
	draft.Appointment.DoctorID = ""

	recompute := ApplyFieldChange(draft, constvars.FieldDate, "2024-01-08")
	assert.False(t, recompute)
}

func TestApplyFieldChange_TimeClearsSlotID(t *testing.T) {
	draft := filledDraft()

	recompute := ApplyFieldChange(draft, constvars.FieldTime, "10:00")

	assert.False(t, recompute)
	assert.Equal(t, "10:00", draft.Appointment.Time)
	assert.Empty(t, draft.Appointment.SlotID)
	assert.Equal(t, []string{"09:00", "10:00"}, draft.AvailableTimes)
}

func TestApplyFieldChange_PersonalFieldsLeaveSelectionAlone(t *testing.T) {
	for _, field := range []string{constvars.FieldFullName, constvars.FieldEmail, constvars.FieldPhone, constvars.FieldReason} {
		draft := filledDraft()

		recompute := ApplyFieldChange(draft, field, "new value")

		assert.False(t, recompute, field)
		assert.Equal(t, "doc-1", draft.Appointment.DoctorID, field)
		assert.Equal(t, "09:00", draft.Appointment.Time, field)
		assert.Equal(t, "c1", draft.Appointment.SlotID, field)
	}
}
