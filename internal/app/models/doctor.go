package models

import "fmt"

// ScheduleSlot is one bookable time unit on one weekday. SlotID is the only
// backend-meaningful handle; Time is for display and matching.
type ScheduleSlot struct {
	Time   string `json:"time"`
	SlotID string `json:"slot_id"`
}

type Doctor struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Specialty string `json:"specialty"`

	// WeeklyAvailability keys schedules by the internal weekday enum; the
	// clinic wire format's locale day names are translated on ingestion.
	WeeklyAvailability map[Weekday][]ScheduleSlot `json:"weekly_availability"`
}

func (d Doctor) DisplayName() string {
	return fmt.Sprintf("%s %s", d.FirstName, d.LastName)
}
