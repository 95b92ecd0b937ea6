package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageTransitions(t *testing.T) {
	testCases := []struct {
		name    string
		from    Stage
		to      Stage
		allowed bool
	}{
		{"personal info advances to appointment", StagePersonalInfo, StageAppointment, true},
		{"personal info cannot skip to reason", StagePersonalInfo, StageReason, false},
		{"appointment goes back to personal info", StageAppointment, StagePersonalInfo, true},
		{"appointment advances to reason", StageAppointment, StageReason, true},
		{"reason advances to submitting", StageReason, StageSubmitting, true},
		{"reason cannot jump to done", StageReason, StageDone, false},
		{"submitting resolves to done", StageSubmitting, StageDone, true},
		{"submitting resolves to failed", StageSubmitting, StageFailed, true},
		{"submitting falls back to appointment", StageSubmitting, StageAppointment, true},
		{"failed goes back to reason", StageFailed, StageReason, true},
		{"failed retries submission", StageFailed, StageSubmitting, true},
		{"done is terminal", StageDone, StagePersonalInfo, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "personal_info", StagePersonalInfo.String())
	assert.Equal(t, "submitting", StageSubmitting.String())
	assert.Equal(t, "unknown", Stage(99).String())
}
