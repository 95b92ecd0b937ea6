package controllers

import (
	"clinibook-service/internal/app/contracts"
	"clinibook-service/internal/pkg/constvars"
	"clinibook-service/internal/pkg/dto/requests"
	"clinibook-service/internal/pkg/dto/responses"
	"clinibook-service/internal/pkg/exceptions"
	"clinibook-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type BookingController struct {
	Log            *zap.Logger
	BookingUsecase contracts.BookingUsecase
}

func NewBookingController(logger *zap.Logger, bookingUsecase contracts.BookingUsecase) *BookingController {
	return &BookingController{
		Log:            logger,
		BookingUsecase: bookingUsecase,
	}
}

func (ctrl *BookingController) CreateDraft(w http.ResponseWriter, r *http.Request) {
	sessionID, err := utils.SessionIDFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	draft, err := ctrl.BookingUsecase.CreateDraft(ctx, sessionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateDraftSuccessMessage, draft)
}

func (ctrl *BookingController) GetDraft(w http.ResponseWriter, r *http.Request) {
	sessionID, err := utils.SessionIDFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	draftID := chi.URLParam(r, "draftID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	draft, err := ctrl.BookingUsecase.GetDraft(ctx, sessionID, draftID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDraftSuccessMessage, draft)
}

func (ctrl *BookingController) UpdateDraftField(w http.ResponseWriter, r *http.Request) {
	sessionID, err := utils.SessionIDFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	draftID := chi.URLParam(r, "draftID")

	request := new(requests.FieldChange)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	draft, err := ctrl.BookingUsecase.ApplyFieldChange(ctx, sessionID, draftID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateDraftSuccessMessage, draft)
}

func (ctrl *BookingController) GetAvailability(w http.ResponseWriter, r *http.Request) {
	sessionID, err := utils.SessionIDFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	draftID := chi.URLParam(r, "draftID")
	date := r.URL.Query().Get("date")
	if date == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseDate(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	availability, err := ctrl.BookingUsecase.ResolveAvailability(ctx, sessionID, draftID, date)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAvailabilitySuccessMessage, availability)
}

func (ctrl *BookingController) NextStage(w http.ResponseWriter, r *http.Request) {
	ctrl.transition(w, r, ctrl.BookingUsecase.Next, constvars.AdvanceStageSuccessMessage)
}

func (ctrl *BookingController) PreviousStage(w http.ResponseWriter, r *http.Request) {
	ctrl.transition(w, r, ctrl.BookingUsecase.Back, constvars.ReturnStageSuccessMessage)
}

func (ctrl *BookingController) Submit(w http.ResponseWriter, r *http.Request) {
	sessionID, err := utils.SessionIDFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	draftID := chi.URLParam(r, "draftID")

	request := new(requests.StageTransition)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// Submission talks to the clinic backend; give it more room than the
	// in-process operations.
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	submission, err := ctrl.BookingUsecase.Submit(ctx, sessionID, draftID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SubmitBookingSuccessMessage, submission)
}

func (ctrl *BookingController) AttachReferral(w http.ResponseWriter, r *http.Request) {
	sessionID, err := utils.SessionIDFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	draftID := chi.URLParam(r, "draftID")

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrReferralBadFormat(err))
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	attachment, err := ctrl.BookingUsecase.AttachReferral(ctx, sessionID, draftID, fileHeader.Filename, fileHeader.Size, file)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AttachReferralSuccessMessage, attachment)
}

type transitionFunc func(ctx context.Context, sessionID, draftID string, request *requests.StageTransition) (*responses.BookingDraft, error)

func (ctrl *BookingController) transition(w http.ResponseWriter, r *http.Request, apply transitionFunc, successMessage string) {
	sessionID, err := utils.SessionIDFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	draftID := chi.URLParam(r, "draftID")

	request := new(requests.StageTransition)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	draft, err := apply(ctx, sessionID, draftID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, successMessage, draft)
}
