package drafts

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

type draftRepository struct {
	redis  contracts.RedisRepository
	expiry time.Duration
}

// NewDraftRepository stores drafts in redis under a TTL so abandoned
// bookings clean themselves up.
func NewDraftRepository(redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig) contracts.DraftRepository {
	return &draftRepository{
		redis:  redisRepository,
		expiry: time.Duration(internalConfig.App.DraftExpiredTimeInMinutes) * time.Minute,
	}
}

func (r *draftRepository) Save(ctx context.Context, draft *models.Draft) error {
	return r.redis.Set(ctx, constvars.RedisDraftKeyPrefix+draft.ID, draft, r.expiry)
}

func (r *draftRepository) Find(ctx context.Context, draftID string) (*models.Draft, error) {
	raw, err := r.redis.Get(ctx, constvars.RedisDraftKeyPrefix+draftID)
	if err != nil {
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusNotFound {
			return nil, exceptions.ErrDraftNotFound(err, draftID)
		}
		return nil, err
	}

	draft := &models.Draft{}
	if err := json.Unmarshal([]byte(raw), draft); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return draft, nil
}

func (r *draftRepository) Delete(ctx context.Context, draftID string) error {
	return r.redis.Delete(ctx, constvars.RedisDraftKeyPrefix+draftID)
}
