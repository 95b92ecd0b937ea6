package session

import (
	"clinibook-service/internal/app/config"
	"clinibook-service/internal/app/contracts"
	"clinibook-service/internal/app/models"
	"clinibook-service/internal/pkg/constvars"
	"clinibook-service/internal/pkg/exceptions"
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
)

type sessionService struct {
	redis  contracts.RedisRepository
	expiry time.Duration
}

func NewSessionService(redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig) contracts.SessionService {
	return &sessionService{
		redis:  redisRepository,
		expiry: time.Duration(internalConfig.App.SessionExpiredTimeInHours) * time.Hour,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, session *models.Session) error {
	return s.redis.Set(ctx, constvars.RedisSessionKeyPrefix+session.SessionID, session, s.expiry)
}

func (s *sessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	raw, err := s.redis.Get(ctx, constvars.RedisSessionKeyPrefix+sessionID)
	if err != nil {
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusNotFound {
			return nil, exceptions.ErrInvalidSession(err)
		}
		return nil, err
	}

	session := &models.Session{}
	if err := json.Unmarshal([]byte(raw), session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (s *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return s.redis.Delete(ctx, constvars.RedisSessionKeyPrefix+sessionID)
}
