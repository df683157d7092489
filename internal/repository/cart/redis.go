package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/sm107-uiuc/sparemate-hub/internal/model"
	"github.com/sm107-uiuc/sparemate-hub/platform/logger"
)

type redisRepository struct {
	client redis.UniversalClient
}

func NewRedisRepository(client redis.UniversalClient) *redisRepository {
	return &redisRepository{client: client}
}

func (r *redisRepository) Lines(ctx context.Context, userID string) ([]model.CartLine, error) {
	const op = "repository.redis.Lines"

	raw, err := r.client.Get(ctx, Key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return []model.CartLine{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lines, migrated, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if migrated {
		logger.Warn(ctx, "cart data migrated on read", logger.String("user_id", userID))
	}

	return lines, nil
}

func (r *redisRepository) Save(ctx context.Context, userID string, lines []model.CartLine) error {
	const op = "repository.redis.Save"

	raw, err := Encode(lines)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := r.client.Set(ctx, Key(userID), raw, 0).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *redisRepository) Delete(ctx context.Context, userID string) error {
	const op = "repository.redis.Delete"

	if err := r.client.Del(ctx, Key(userID)).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
