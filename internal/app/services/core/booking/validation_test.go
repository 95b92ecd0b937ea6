package booking

import (
	"clinibook-service/internal/app/models"
	"clinibook-service/internal/pkg/constvars"
	"clinibook-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertStatusCode(t *testing.T, err error, expected int) {
	t.Helper()
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok, "expected a CustomError, got %T", err)
	assert.Equal(t, expected, customErr.StatusCode)
}

func TestValidateStage_PersonalInfo(t *testing.T) {
	testCases := []struct {
		name     string
		fullName string
		email    string
		phone    string
		valid    bool
	}{
		{"all fields valid", "Ali Benali", "ali@example.com", "0612345678", true},
		{"two letter name rejected", "Al", "ali@example.com", "", false},
		{"three letter name accepted", "Ali", "ali@example.com", "", true},
		{"missing name", "", "ali@example.com", "", false},
		{"malformed email", "Ali Benali", "not-an-email", "", false},
		{"missing email", "Ali Benali", "", "", false},
		{"phone is optional", "Ali Benali", "ali@example.com", "", true},
		{"phone too short", "Ali Benali", "ali@example.com", "06123", false},
		{"phone with separators", "Ali Benali", "ali@example.com", "06 12 34 56 78", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			draft := &models.Draft{
				PersonalInfo: models.PersonalInfo{
					FullName: tc.fullName,
					Email:    tc.email,
					Phone:    tc.phone,
				},
			}
			err := validateStage(draft, models.StagePersonalInfo)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assertStatusCode(t, err, constvars.StatusUnprocessable)
			}
		})
	}
}

func TestValidateStage_Appointment(t *testing.T) {
	validDraft := func() *models.Draft {
		return &models.Draft{
			Appointment: models.AppointmentSelection{
				ConsultationType: constvars.ConsultationTypeCabinet,
				Specialty:        "Cardiologie",
				DoctorID:         "doc-1",
				Date:             "2024-01-01",
				Time:             "09:00",
			},
			AvailableTimes: []string{"09:00", "10:00"},
		}
	}

	t.Run("complete selection passes", func(t *testing.T) {
		assert.NoError(t, validateStage(validDraft(), models.StageAppointment))
	})

	t.Run("missing doctor fails", func(t *testing.T) {
		draft := validDraft()
		draft.Appointment.DoctorID = ""
		assertStatusCode(t, validateStage(draft, models.StageAppointment), constvars.StatusUnprocessable)
	})

	t.Run("bad date format fails", func(t *testing.T) {
		draft := validDraft()
		draft.Appointment.Date = "01/01/2024"
		assertStatusCode(t, validateStage(draft, models.StageAppointment), constvars.StatusUnprocessable)
	})

	t.Run("time outside the offered list fails", func(t *testing.T) {
		draft := validDraft()
		draft.Appointment.Time = "16:00"
		assertStatusCode(t, validateStage(draft, models.StageAppointment), constvars.StatusUnprocessable)
	})

	t.Run("empty available times fails even with a time set", func(t *testing.T) {
		draft := validDraft()
		draft.AvailableTimes = nil
		assertStatusCode(t, validateStage(draft, models.StageAppointment), constvars.StatusUnprocessable)
	})
}

func TestValidateStage_Reason(t *testing.T) {
	t.Run("long enough reason passes", func(t *testing.T) {
		draft := &models.Draft{Reason: "Contrôle annuel de routine"}
		assert.NoError(t, validateStage(draft, models.StageReason))
	})

	t.Run("short reason fails", func(t *testing.T) {
		draft := &models.Draft{Reason: "mal"}
		assertStatusCode(t, validateStage(draft, models.StageReason), constvars.StatusUnprocessable)
	})

	t.Run("empty reason fails", func(t *testing.T) {
		draft := &models.Draft{}
		assertStatusCode(t, validateStage(draft, models.StageReason), constvars.StatusUnprocessable)
	})
}

func TestValidateAllStages(t *testing.T) {
	draft := filledDraft()
	assert.NoError(t, validateAllStages(draft))

	draft.PersonalInfo.Email = "broken"
	assertStatusCode(t, validateAllStages(draft), constvars.StatusUnprocessable)
}
