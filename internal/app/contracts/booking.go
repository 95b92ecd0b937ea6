package contracts

import (
	"clinibook-service/internal/app/models"
	"clinibook-service/internal/pkg/dto/requests"
	"clinibook-service/internal/pkg/dto/responses"
	"context"
	"io"
)

type BookingUsecase interface {
	CreateDraft(ctx context.Context, sessionID string) (*responses.BookingDraft, error)
	GetDraft(ctx context.Context, sessionID, draftID string) (*responses.BookingDraft, error)
	ApplyFieldChange(ctx context.Context, sessionID, draftID string, request *requests.FieldChange) (*responses.BookingDraft, error)
	ResolveAvailability(ctx context.Context, sessionID, draftID, date string) (*responses.DayAvailability, error)
	Next(ctx context.Context, sessionID, draftID string, request *requests.StageTransition) (*responses.BookingDraft, error)
	Back(ctx context.Context, sessionID, draftID string, request *requests.StageTransition) (*responses.BookingDraft, error)
	Submit(ctx context.Context, sessionID, draftID string, request *requests.StageTransition) (*responses.BookingSubmission, error)
	AttachReferral(ctx context.Context, sessionID, draftID, fileName string, size int64, content io.Reader) (*responses.ReferralAttachment, error)
}

type DraftRepository interface {
	Save(ctx context.Context, draft *models.Draft) error
	Find(ctx context.Context, draftID string) (*models.Draft, error)
	Delete(ctx context.Context, draftID string) error
}
