package booking

import (
	"clinibook-service/internal/app/config"
	"clinibook-service/internal/app/contracts"
	"clinibook-service/internal/app/models"
	"clinibook-service/internal/app/services/core/availability"
	"clinibook-service/internal/pkg/constvars"
	"clinibook-service/internal/pkg/dto/requests"
	"clinibook-service/internal/pkg/dto/responses"
	"clinibook-service/internal/pkg/exceptions"
	"clinibook-service/internal/pkg/utils"
	"context"
	"errors"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"
)

type bookingUsecase struct {
	drafts       contracts.DraftRepository
	doctors      contracts.DoctorClient
	appointments contracts.AppointmentClient
	notifier     contracts.NotificationPublisher
	storage      contracts.StorageService
	config       *config.InternalConfig
	logger       *zap.Logger
}

func NewBookingUsecase(
	drafts contracts.DraftRepository,
	doctors contracts.DoctorClient,
	appointments contracts.AppointmentClient,
	notifier contracts.NotificationPublisher,
	storage contracts.StorageService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BookingUsecase {
	return &bookingUsecase{
		drafts:       drafts,
		doctors:      doctors,
		appointments: appointments,
		notifier:     notifier,
		storage:      storage,
		config:       internalConfig,
		logger:       logger,
	}
}

func (u *bookingUsecase) CreateDraft(ctx context.Context, sessionID string) (*responses.BookingDraft, error) {
	now := time.Now()
	draft := &models.Draft{
		ID:        utils.GenerateDraftID(),
		SessionID: sessionID,
		Stage:     models.StagePersonalInfo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	u.logger.Info("booking draft created",
		zap.String(constvars.LoggingDraftIDKey, draft.ID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return draftToResponse(draft, ""), nil
}

func (u *bookingUsecase) GetDraft(ctx context.Context, sessionID, draftID string) (*responses.BookingDraft, error) {
	draft, err := u.loadOwnedDraft(ctx, sessionID, draftID)
	if err != nil {
		return nil, err
	}
	return draftToResponse(draft, ""), nil
}

func (u *bookingUsecase) ApplyFieldChange(ctx context.Context, sessionID, draftID string, request *requests.FieldChange) (*responses.BookingDraft, error) {
	draft, err := u.loadOwnedDraft(ctx, sessionID, draftID)
	if err != nil {
		return nil, err
	}
	if request.Revision != draft.Revision {
		return nil, exceptions.ErrDraftRevisionStale(request.Revision, draft.Revision)
	}

	if request.Field == constvars.FieldTime && request.Value != "" &&
		!slices.Contains(draft.AvailableTimes, request.Value) {
		return nil, exceptions.ErrTimeNotOffered(request.Value)
	}

	warning := ""
	recompute := ApplyFieldChange(draft, request.Field, request.Value)
	if recompute {
		warning, err = u.recomputeAvailableTimes(ctx, draft)
		if err != nil {
			return nil, err
		}
	}
	if request.Field == constvars.FieldTime && draft.Appointment.Time != "" {
		if err := u.resolveSelectedSlot(ctx, draft); err != nil {
			return nil, err
		}
	}

	draft.Revision++
	draft.UpdatedAt = time.Now()
	if err := u.drafts.Save(ctx, draft); err != nil {
		return nil, err
	}

	u.logger.Info("booking draft field changed",
		zap.String(constvars.LoggingDraftIDKey, draft.ID),
		zap.String(constvars.LoggingFieldKey, request.Field),
		zap.Int("revision", draft.Revision),
	)
	return draftToResponse(draft, warning), nil
}

func (u *bookingUsecase) ResolveAvailability(ctx context.Context, sessionID, draftID, date string) (*responses.DayAvailability, error) {
	draft, err := u.loadOwnedDraft(ctx, sessionID, draftID)
	if err != nil {
		return nil, err
	}
	if draft.Appointment.DoctorID == "" {
		return nil, exceptions.ErrStageValidation(nil)
	}

	doctor, err := u.doctors.FindByID(ctx, draft.Appointment.DoctorID)
	if err != nil {
		return nil, err
	}
	parsedDate, err := time.Parse(constvars.DateLayoutISO, date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	day, err := availability.SlotsForDoctorOnDate(doctor, parsedDate)
	if err != nil {
		var unavailableErr *availability.UnavailableError
		if errors.As(err, &unavailableErr) {
			return &responses.DayAvailability{
				Date:    date,
				Weekday: unavailableErr.Weekday.DisplayName(),
				Warning: unavailableErr.Error(),
			}, nil
		}
		return nil, err
	}

	response := &responses.DayAvailability{
		Date:      date,
		Weekday:   day.Weekday.DisplayName(),
		Available: true,
		Times:     day.Times,
	}
	for _, slot := range day.Slots {
		response.Slots = append(response.Slots, responses.AvailableSlot{Time: slot.Time, SlotID: slot.SlotID})
	}
	return response, nil
}

func (u *bookingUsecase) Next(ctx context.Context, sessionID, draftID string, request *requests.StageTransition) (*responses.BookingDraft, error) {
	draft, err := u.loadOwnedDraft(ctx, sessionID, draftID)
	if err != nil {
		return nil, err
	}
	if request.Revision != draft.Revision {
		return nil, exceptions.ErrDraftRevisionStale(request.Revision, draft.Revision)
	}

	var next models.Stage
	switch draft.Stage {
	case models.StagePersonalInfo:
		next = models.StageAppointment
	case models.StageAppointment:
		next = models.StageReason
	default:
		return nil, exceptions.ErrStageTransition(draft.Stage.String(), "next")
	}

	if err := validateStage(draft, draft.Stage); err != nil {
		return nil, err
	}
	if !draft.Stage.CanTransitionTo(next) {
		return nil, exceptions.ErrStageTransition(draft.Stage.String(), next.String())
	}

	draft.Stage = next
	draft.Revision++
	draft.UpdatedAt = time.Now()
	if err := u.drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draftToResponse(draft, ""), nil
}

func (u *bookingUsecase) Back(ctx context.Context, sessionID, draftID string, request *requests.StageTransition) (*responses.BookingDraft, error) {
	draft, err := u.loadOwnedDraft(ctx, sessionID, draftID)
	if err != nil {
		return nil, err
	}
	if request.Revision != draft.Revision {
		return nil, exceptions.ErrDraftRevisionStale(request.Revision, draft.Revision)
	}

	var previous models.Stage
	switch draft.Stage {
	case models.StageAppointment:
		previous = models.StagePersonalInfo
	case models.StageReason:
		previous = models.StageAppointment
	case models.StageFailed:
		previous = models.StageReason
	default:
		return nil, exceptions.ErrStageTransition(draft.Stage.String(), "back")
	}
	if !draft.Stage.CanTransitionTo(previous) {
		return nil, exceptions.ErrStageTransition(draft.Stage.String(), previous.String())
	}

	// Back-navigation never clears entered data.
	draft.Stage = previous
	draft.Revision++
	draft.UpdatedAt = time.Now()
	if err := u.drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draftToResponse(draft, ""), nil
}

func (u *bookingUsecase) Submit(ctx context.Context, sessionID, draftID string, request *requests.StageTransition) (*responses.BookingSubmission, error) {
	draft, err := u.loadOwnedDraft(ctx, sessionID, draftID)
	if err != nil {
		return nil, err
	}
	if request.Revision != draft.Revision {
		return nil, exceptions.ErrDraftRevisionStale(request.Revision, draft.Revision)
	}
	if draft.Stage != models.StageReason && draft.Stage != models.StageFailed {
		return nil, exceptions.ErrStageTransition(draft.Stage.String(), models.StageSubmitting.String())
	}

	// Derived state may have gone stale since the stages were passed.
	if err := validateAllStages(draft); err != nil {
		return nil, err
	}

	draft.Stage = models.StageSubmitting

	doctor, weekday, slotID, err := u.freshSlotID(ctx, draft)
	if err != nil {
		// Fatal to the attempt: force the draft back to the appointment
		// stage so the user picks a valid slot again.
		draft.Stage = models.StageAppointment
		draft.Appointment.Time = ""
		draft.Appointment.SlotID = ""
		draft.Revision++
		draft.UpdatedAt = time.Now()
		if saveErr := u.drafts.Save(ctx, draft); saveErr != nil {
			u.logger.Error("failed to persist draft after slot resolution failure",
				zap.String(constvars.LoggingDraftIDKey, draft.ID),
				zap.Error(saveErr),
			)
		}
		return nil, err
	}
	draft.Appointment.SlotID = slotID

	payload := &requests.ClinicAppointment{
		PersonalInfo: requests.ClinicPersonalInfo{
			FullName: draft.PersonalInfo.FullName,
			Email:    draft.PersonalInfo.Email,
			Phone:    draft.PersonalInfo.Phone,
		},
		AppointmentInfo: requests.ClinicAppointmentInfo{
			ConsultationType: draft.Appointment.ConsultationType,
			Specialty:        draft.Appointment.Specialty,
			Doctor:           doctor.DisplayName(),
			Date:             draft.Appointment.Date,
			Time:             draft.Appointment.Time,
			SlotID:           slotID,
		},
		Reason: draft.Reason,
	}

	created, err := u.appointments.CreateAppointment(ctx, payload)
	if err != nil {
		draft.Stage = models.StageFailed
		draft.LastError = clientMessageOf(err)
		draft.Revision++
		draft.UpdatedAt = time.Now()
		if saveErr := u.drafts.Save(ctx, draft); saveErr != nil {
			u.logger.Error("failed to persist draft after submission failure",
				zap.String(constvars.LoggingDraftIDKey, draft.ID),
				zap.Error(saveErr),
			)
		}
		u.logger.Error("booking submission failed",
			zap.String(constvars.LoggingDraftIDKey, draft.ID),
			zap.String(constvars.LoggingDoctorIDKey, draft.Appointment.DoctorID),
			zap.Error(err),
		)
		return nil, err
	}

	draft.Stage = models.StageDone
	if err := u.drafts.Delete(ctx, draft.ID); err != nil {
		u.logger.Error("failed to discard submitted draft",
			zap.String(constvars.LoggingDraftIDKey, draft.ID),
			zap.Error(err),
		)
	}

	event := &requests.BookingConfirmedEvent{
		DraftID:      draft.ID,
		PatientName:  draft.PersonalInfo.FullName,
		PatientEmail: draft.PersonalInfo.Email,
		DoctorName:   doctor.DisplayName(),
		Specialty:    draft.Appointment.Specialty,
		Date:         draft.Appointment.Date,
		Time:         draft.Appointment.Time,
		SlotID:       slotID,
	}
	if err := u.notifier.PublishBookingConfirmed(ctx, event); err != nil {
		// The booking already exists on the backend; a lost notification
		// must not fail the submission.
		u.logger.Error("failed to publish booking confirmation",
			zap.String(constvars.LoggingDraftIDKey, draft.ID),
			zap.Error(err),
		)
	}

	u.logger.Info("booking submitted",
		zap.String(constvars.LoggingDraftIDKey, draft.ID),
		zap.String(constvars.LoggingDoctorIDKey, draft.Appointment.DoctorID),
		zap.String("slot_id", slotID),
		zap.String("weekday", weekday.DisplayName()),
	)

	return &responses.BookingSubmission{
		Stage:         models.StageDone.String(),
		AppointmentID: created.ID,
		Message:       created.Message,
	}, nil
}

func (u *bookingUsecase) AttachReferral(ctx context.Context, sessionID, draftID, fileName string, size int64, content io.Reader) (*responses.ReferralAttachment, error) {
	draft, err := u.loadOwnedDraft(ctx, sessionID, draftID)
	if err != nil {
		return nil, err
	}

	maxSize := u.config.Minio.ReferralMaxUploadSizeInMB * 1024 * 1024
	if size <= 0 || size > maxSize {
		return nil, exceptions.ErrReferralTooLarge(nil)
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	contentType, ok := referralContentTypes[ext]
	if !ok {
		return nil, exceptions.ErrReferralBadFormat(nil)
	}

	objectName := constvars.ReferralObjectPrefix + draft.ID + ext
	if err := u.storage.UploadObject(ctx, objectName, contentType, size, content); err != nil {
		return nil, err
	}
	url, err := u.storage.PresignedGetURL(ctx, objectName)
	if err != nil {
		return nil, err
	}

	draft.ReferralObject = objectName
	draft.Revision++
	draft.UpdatedAt = time.Now()
	if err := u.drafts.Save(ctx, draft); err != nil {
		return nil, err
	}

	return &responses.ReferralAttachment{ObjectName: objectName, URL: url}, nil
}

var referralContentTypes = map[string]string{
	".pdf":  "application/pdf",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

func (u *bookingUsecase) loadOwnedDraft(ctx context.Context, sessionID, draftID string) (*models.Draft, error) {
	draft, err := u.drafts.Find(ctx, draftID)
	if err != nil {
		return nil, err
	}
	// A draft from another session is reported as missing, not forbidden.
	if draft.SessionID != sessionID {
		return nil, exceptions.ErrDraftNotFound(nil, draftID)
	}
	return draft, nil
}

// recomputeAvailableTimes refreshes the derived time list after a doctor or
// date change. A previously selected time that the new list no longer offers
// is cleared. Returns a user-facing warning when the doctor is unavailable.
func (u *bookingUsecase) recomputeAvailableTimes(ctx context.Context, draft *models.Draft) (string, error) {
	doctor, err := u.doctors.FindByID(ctx, draft.Appointment.DoctorID)
	if err != nil {
		return "", err
	}
	parsedDate, err := time.Parse(constvars.DateLayoutISO, draft.Appointment.Date)
	if err != nil {
		return "", exceptions.ErrCannotParseDate(err)
	}

	day, err := availability.SlotsForDoctorOnDate(doctor, parsedDate)
	if err != nil {
		var unavailableErr *availability.UnavailableError
		if errors.As(err, &unavailableErr) {
			draft.AvailableTimes = nil
			draft.Appointment.Time = ""
			draft.Appointment.SlotID = ""
			return unavailableErr.Error(), nil
		}
		return "", err
	}

	draft.AvailableTimes = day.Times
	if draft.Appointment.Time != "" && !day.HasTime(draft.Appointment.Time) {
		draft.Appointment.Time = ""
		draft.Appointment.SlotID = ""
	}
	return "", nil
}

// resolveSelectedSlot re-derives the slot id after a time selection.
func (u *bookingUsecase) resolveSelectedSlot(ctx context.Context, draft *models.Draft) error {
	_, _, slotID, err := u.freshSlotID(ctx, draft)
	if err != nil {
		return err
	}
	draft.Appointment.SlotID = slotID
	return nil
}

// freshSlotID looks the slot id up fresh from the doctor's schedule for the
// chosen weekday; a stale id from a prior doctor/date must never survive.
func (u *bookingUsecase) freshSlotID(ctx context.Context, draft *models.Draft) (*models.Doctor, models.Weekday, string, error) {
	doctor, err := u.doctors.FindByID(ctx, draft.Appointment.DoctorID)
	if err != nil {
		return nil, 0, "", err
	}
	parsedDate, err := time.Parse(constvars.DateLayoutISO, draft.Appointment.Date)
	if err != nil {
		return nil, 0, "", exceptions.ErrCannotParseDate(err)
	}

	weekday := models.WeekdayOfDate(parsedDate)
	slotID, ok := availability.ResolveSlotID(doctor, weekday, draft.Appointment.Time)
	if !ok {
		return nil, 0, "", exceptions.ErrSlotResolution(doctor.DisplayName(), weekday.DisplayName(), draft.Appointment.Time)
	}
	return doctor, weekday, slotID, nil
}

func clientMessageOf(err error) string {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	return err.Error()
}

func draftToResponse(draft *models.Draft, warning string) *responses.BookingDraft {
	return &responses.BookingDraft{
		ID:               draft.ID,
		Stage:            draft.Stage.String(),
		Revision:         draft.Revision,
		FullName:         draft.PersonalInfo.FullName,
		Email:            draft.PersonalInfo.Email,
		Phone:            draft.PersonalInfo.Phone,
		ConsultationType: draft.Appointment.ConsultationType,
		Specialty:        draft.Appointment.Specialty,
		DoctorID:         draft.Appointment.DoctorID,
		Date:             draft.Appointment.Date,
		Time:             draft.Appointment.Time,
		SlotID:           draft.Appointment.SlotID,
		Reason:           draft.Reason,
		AvailableTimes:   draft.AvailableTimes,
		HasReferral:      draft.ReferralObject != "",
		Warning:          warning,
		LastError:        draft.LastError,
	}
}
