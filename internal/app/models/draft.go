package models

import "time"

// Stage enumerates the booking wizard states. Transitions must go through
// CanTransitionTo; there is deliberately no arithmetic on stages.
type Stage int

const (
	StagePersonalInfo Stage = iota + 1
	StageAppointment
	StageReason
	StageSubmitting
	StageDone
	StageFailed
)

var stageNames = map[Stage]string{
	StagePersonalInfo: "personal_info",
	StageAppointment:  "appointment",
	StageReason:       "reason",
	StageSubmitting:   "submitting",
	StageDone:         "done",
	StageFailed:       "failed",
}

func (s Stage) String() string {
	name, ok := stageNames[s]
	if !ok {
		return "unknown"
	}
	return name
}

var allowedStageTransitions = map[Stage][]Stage{
	StagePersonalInfo: {StageAppointment},
	StageAppointment:  {StagePersonalInfo, StageReason},
	StageReason:       {StageAppointment, StageSubmitting},
	StageSubmitting:   {StageDone, StageFailed, StageAppointment},
	StageFailed:       {StageReason, StageSubmitting},
}

func (s Stage) CanTransitionTo(next Stage) bool {
	for _, allowed := range allowedStageTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type PersonalInfo struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
}

type AppointmentSelection struct {
	ConsultationType string `json:"consultation_type"`
	Specialty        string `json:"specialty"`
	DoctorID         string `json:"doctor_id"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	SlotID           string `json:"slot_id"`
}

// Draft is the in-progress appointment request. It lives in the draft store
// under a TTL and is discarded on successful submission.
type Draft struct {
	ID        string `json:"id"`
	SessionID string `json:"session_id"`
	Stage     Stage  `json:"stage"`

	// Revision increases on every mutation; requests built against an older
	// revision are rejected so a superseded interaction cannot clobber newer
	// selections.
	Revision int `json:"revision"`

	PersonalInfo PersonalInfo         `json:"personal_info"`
	Appointment  AppointmentSelection `json:"appointment"`
	Reason       string               `json:"reason"`

	AvailableTimes []string `json:"available_times"`
	ReferralObject string   `json:"referral_object,omitempty"`
	LastError      string   `json:"last_error,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
