package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/sm107-uiuc/sparemate-hub/internal/model"
)

// redisRepository stores the user record as JSON under user-<id> and keeps
// apikey-<key> and email-<email> pointers to the id.
type redisRepository struct {
	client redis.UniversalClient
}

func NewRedisRepository(client redis.UniversalClient) *redisRepository {
	return &redisRepository{client: client}
}

func (r *redisRepository) Create(ctx context.Context, u *model.User) error {
	const op = "repository.redis.Create"

	e := UserFromModel(u)
	raw, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	claimed, err := r.client.SetNX(ctx, emailKeyPrefix+e.Email, e.ID, 0).Result()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !claimed {
		return fmt.Errorf("%s: email %s: %w", op, e.Email, model.ErrUserExists)
	}

	_, err = r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, userKeyPrefix+e.ID, raw, 0)
		p.Set(ctx, apiKeyKeyPrefix+e.APIKey, e.ID, 0)
		return nil
	})
	if err != nil {
		r.client.Del(ctx, emailKeyPrefix+e.Email)
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *redisRepository) UserByAPIKey(ctx context.Context, apiKey string) (*model.User, error) {
	return r.byPointer(ctx, "repository.redis.UserByAPIKey", apiKeyKeyPrefix+apiKey)
}

func (r *redisRepository) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.byPointer(ctx, "repository.redis.UserByEmail", emailKeyPrefix+normalizeEmail(email))
}

func (r *redisRepository) Delete(ctx context.Context, userID string) error {
	const op = "repository.redis.Delete"

	e, err := r.load(ctx, userID)
	if errors.Is(err, model.ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := r.client.Del(ctx,
		userKeyPrefix+e.ID,
		apiKeyKeyPrefix+e.APIKey,
		emailKeyPrefix+e.Email,
	).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *redisRepository) byPointer(ctx context.Context, op, key string) (*model.User, error) {
	id, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, model.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	e, err := r.load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return UserToModel(e), nil
}

func (r *redisRepository) load(ctx context.Context, userID string) (UserEntity, error) {
	raw, err := r.client.Get(ctx, userKeyPrefix+userID).Bytes()
	if errors.Is(err, redis.Nil) {
		return UserEntity{}, model.ErrUserNotFound
	}
	if err != nil {
		return UserEntity{}, err
	}

	var e UserEntity
	if err := json.Unmarshal(raw, &e); err != nil {
		return UserEntity{}, fmt.Errorf("decode user %s: %w", userID, err)
	}

	return e, nil
}
