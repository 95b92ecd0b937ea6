package availability

import (
	"clinibook-service/internal/app/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cardiologist() *models.Doctor {
	return &models.Doctor{
		ID:        "doc-1",
		FirstName: "Marie",
		LastName:  "Curie",
		Specialty: "Cardiologie",
		WeeklyAvailability: map[models.Weekday][]models.ScheduleSlot{
			models.Monday: {
				{Time: "09:00", SlotID: "c1"},
				{Time: "10:00", SlotID: "c2"},
			},
			models.Wednesday: {
				{Time: "14:00", SlotID: "c3"},
			},
		},
	}
}

func TestSlotsForDoctorOnDate(t *testing.T) {
	doctor := cardiologist()

	t.Run("monday resolves to the monday schedule", func(t *testing.T) {
		// 2024-01-01 was a Monday.
		monday := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

		day, err := SlotsForDoctorOnDate(doctor, monday)
		require.NoError(t, err)

		assert.Equal(t, models.Monday, day.Weekday)
		assert.Equal(t, []string{"09:00", "10:00"}, day.Times)

		slotID, ok := day.SlotIDFor("09:00")
		require.True(t, ok)
		assert.Equal(t, "c1", slotID)
	})

	t.Run("tuesday has no schedule entry", func(t *testing.T) {
		tuesday := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

		day, err := SlotsForDoctorOnDate(doctor, tuesday)
		assert.Nil(t, day)
		require.Error(t, err)
		assert.True(t, IsUnavailable(err))
		assert.Contains(t, err.Error(), "Marie Curie")
		assert.Contains(t, err.Error(), "Mardi")
	})

	t.Run("doctor with no availability at all", func(t *testing.T) {
		emptyDoctor := &models.Doctor{ID: "doc-2", FirstName: "Jean", LastName: "Martin"}
		monday := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

		_, err := SlotsForDoctorOnDate(emptyDoctor, monday)
		assert.True(t, IsUnavailable(err))
	})
}

func TestSlotsForDoctorOnWeekday_DuplicateTimes(t *testing.T) {
	doctor := &models.Doctor{
		ID:        "doc-3",
		FirstName: "Anne",
		LastName:  "Petit",
		WeeklyAvailability: map[models.Weekday][]models.ScheduleSlot{
			models.Friday: {
				{Time: "09:00", SlotID: "f1"},
				{Time: "09:00", SlotID: "f2"},
				{Time: "11:00", SlotID: "f3"},
			},
		},
	}

	day, err := SlotsForDoctorOnWeekday(doctor, models.Friday)
	require.NoError(t, err)

	// Both entries stay visible but the first schedule entry wins the lookup.
	assert.Equal(t, []string{"09:00", "09:00", "11:00"}, day.Times)
	slotID, ok := day.SlotIDFor("09:00")
	require.True(t, ok)
	assert.Equal(t, "f1", slotID)
}

func TestResolveSlotID(t *testing.T) {
	doctor := cardiologist()

	t.Run("known time on an offered weekday", func(t *testing.T) {
		slotID, ok := ResolveSlotID(doctor, models.Monday, "10:00")
		require.True(t, ok)
		assert.Equal(t, "c2", slotID)
	})

	t.Run("time absent from the schedule", func(t *testing.T) {
		_, ok := ResolveSlotID(doctor, models.Monday, "16:00")
		assert.False(t, ok)
	})

	t.Run("weekday without schedule", func(t *testing.T) {
		_, ok := ResolveSlotID(doctor, models.Sunday, "09:00")
		assert.False(t, ok)
	})
}

func TestDayAvailability_HasTime(t *testing.T) {
	doctor := cardiologist()
	day, err := SlotsForDoctorOnWeekday(doctor, models.Wednesday)
	require.NoError(t, err)

	assert.True(t, day.HasTime("14:00"))
	assert.False(t, day.HasTime("09:00"))
}
