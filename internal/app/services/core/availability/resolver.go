package availability

import (
	"clinibook-service/internal/app/models"
	"errors"
	"fmt"
	"time"
)

// UnavailableError reports that a doctor has no schedule entry on the
// resolved weekday. Callers surface it as a warning naming both.
type UnavailableError struct {
	DoctorName string
	Weekday    models.Weekday
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("Dr %s is not available on %s", e.DoctorName, e.Weekday.DisplayName())
}

func IsUnavailable(err error) bool {
	var unavailableErr *UnavailableError
	return errors.As(err, &unavailableErr)
}

// DayAvailability holds the bookable slots for one doctor on one weekday.
// Times keeps the backend's schedule order; slot ids are the selection key.
type DayAvailability struct {
	Weekday models.Weekday
	Times   []string
	Slots   []models.ScheduleSlot

	slotIDByTime map[string]string
}

// SlotIDFor recovers the slot identifier for a chosen display time. On
// duplicate time strings the first schedule entry wins.
func (a *DayAvailability) SlotIDFor(timeStr string) (string, bool) {
	slotID, ok := a.slotIDByTime[timeStr]
	return slotID, ok
}

// HasTime reports whether timeStr is currently offered.
func (a *DayAvailability) HasTime(timeStr string) bool {
	_, ok := a.slotIDByTime[timeStr]
	return ok
}

// SlotsForDoctorOnDate resolves the weekday for date and looks it up in the
// doctor's weekly availability. A missing or empty entry yields an
// UnavailableError; a doctor with no availability at all is unavailable on
// every date.
func SlotsForDoctorOnDate(doctor *models.Doctor, date time.Time) (*DayAvailability, error) {
	weekday := models.WeekdayOfDate(date)
	return SlotsForDoctorOnWeekday(doctor, weekday)
}

func SlotsForDoctorOnWeekday(doctor *models.Doctor, weekday models.Weekday) (*DayAvailability, error) {
	slots := doctor.WeeklyAvailability[weekday]
	if len(slots) == 0 {
		return nil, &UnavailableError{DoctorName: doctor.DisplayName(), Weekday: weekday}
	}

	day := &DayAvailability{
		Weekday:      weekday,
		Times:        make([]string, 0, len(slots)),
		Slots:        slots,
		slotIDByTime: make(map[string]string, len(slots)),
	}
	for _, slot := range slots {
		day.Times = append(day.Times, slot.Time)
		if _, exists := day.slotIDByTime[slot.Time]; !exists {
			day.slotIDByTime[slot.Time] = slot.SlotID
		}
	}
	return day, nil
}

// ResolveSlotID re-derives the slot id for a time on a weekday, fresh from
// the doctor's schedule. ok is false when the time is no longer present;
// callers must treat that as a hard failure blocking submission.
func ResolveSlotID(doctor *models.Doctor, weekday models.Weekday, timeStr string) (string, bool) {
	day, err := SlotsForDoctorOnWeekday(doctor, weekday)
	if err != nil {
		return "", false
	}
	return day.SlotIDFor(timeStr)
}
