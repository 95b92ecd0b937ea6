package contracts

import (
	"clinibook-service/internal/app/models"
	"context"
)

type AuthUsecase interface {
	CreateAnonymousSession(ctx context.Context) (token string, err error)
	Logout(ctx context.Context, sessionID string) error
}

type SessionService interface {
	CreateSession(ctx context.Context, session *models.Session) error
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
