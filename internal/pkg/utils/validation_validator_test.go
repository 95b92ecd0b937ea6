package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type timeField struct {
	Time string `validate:"time_hhmm"`
}

func TestValidateStruct_TimeHHMM(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"morning slot", "09:00", true},
		{"last minute of the day", "23:59", true},
		{"hour out of range", "24:00", false},
		{"minute out of range", "09:60", false},
		{"missing leading zero", "9:00", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(timeField{Time: tt.value})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
