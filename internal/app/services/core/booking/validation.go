package booking

import (
	"clinibook-service/internal/app/models"
	"clinibook-service/internal/pkg/exceptions"
	"clinibook-service/internal/pkg/utils"
	"slices"
)

type personalInfoView struct {
	FullName string `validate:"required,min=3"`
	Email    string `validate:"required,email"`
	Phone    string `validate:"phone_digits"`
}

type appointmentView struct {
	ConsultationType string `validate:"required"`
	Specialty        string `validate:"required"`
	Doctor           string `validate:"required"`
	Date             string `validate:"required,datetime=2006-01-02"`
	Time             string `validate:"required,time_hhmm"`
}

type reasonView struct {
	Reason string `validate:"required,min=10"`
}

// validateStage gates stage advancement. Failures stay on the stage and are
// reported as one field-naming message.
func validateStage(draft *models.Draft, stage models.Stage) error {
	switch stage {
	case models.StagePersonalInfo:
		view := personalInfoView{
			FullName: draft.PersonalInfo.FullName,
			Email:    draft.PersonalInfo.Email,
			Phone:    draft.PersonalInfo.Phone,
		}
		if err := utils.ValidateStruct(view); err != nil {
			return exceptions.ErrStageValidation(err)
		}
	case models.StageAppointment:
		view := appointmentView{
			ConsultationType: draft.Appointment.ConsultationType,
			Specialty:        draft.Appointment.Specialty,
			Doctor:           draft.Appointment.DoctorID,
			Date:             draft.Appointment.Date,
			Time:             draft.Appointment.Time,
		}
		if err := utils.ValidateStruct(view); err != nil {
			return exceptions.ErrStageValidation(err)
		}
		if !slices.Contains(draft.AvailableTimes, draft.Appointment.Time) {
			return exceptions.ErrTimeNotOffered(draft.Appointment.Time)
		}
	case models.StageReason:
		view := reasonView{Reason: draft.Reason}
		if err := utils.ValidateStruct(view); err != nil {
			return exceptions.ErrStageValidation(err)
		}
	}
	return nil
}

// validateAllStages re-checks every stage before submission; derived state
// may have gone stale since the stages were passed.
func validateAllStages(draft *models.Draft) error {
	for _, stage := range []models.Stage{models.StagePersonalInfo, models.StageAppointment, models.StageReason} {
		if err := validateStage(draft, stage); err != nil {
			return err
		}
	}
	return nil
}
