package auth

import (
	"clinibook-service/internal/app/config"
	"clinibook-service/internal/app/contracts"
	"clinibook-service/internal/app/models"
	"clinibook-service/internal/pkg/constvars"
	"clinibook-service/internal/pkg/utils"
	"context"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	sessions contracts.SessionService
	config   *config.InternalConfig
	logger   *zap.Logger
}

func NewAuthUsecase(sessionService contracts.SessionService, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.AuthUsecase {
	return &authUsecase{
		sessions: sessionService,
		config:   internalConfig,
		logger:   logger,
	}
}

// CreateAnonymousSession issues a session without any credentials. Booking a
// visit must not require an account; the session only scopes drafts to one
// browser.
func (u *authUsecase) CreateAnonymousSession(ctx context.Context) (string, error) {
	now := time.Now()
	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		CreatedAt: now,
		ExpiresAt: now.Add(time.Duration(u.config.App.SessionExpiredTimeInHours) * time.Hour),
	}

	if err := u.sessions.CreateSession(ctx, session); err != nil {
		return "", err
	}

	tokenExpiry := time.Duration(u.config.JWT.ExpTimeInHour) * time.Hour
	token, err := utils.GenerateJWT(session.SessionID, u.config.JWT.Secret, tokenExpiry)
	if err != nil {
		return "", err
	}

	u.logger.Info("anonymous session created",
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)
	return token, nil
}

func (u *authUsecase) Logout(ctx context.Context, sessionID string) error {
	if err := u.sessions.DeleteSession(ctx, sessionID); err != nil {
		return err
	}
	u.logger.Info("session deleted",
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return nil
}
