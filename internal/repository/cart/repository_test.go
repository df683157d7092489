package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sm107-uiuc/sparemate-hub/internal/model"
)

type cartRepository interface {
	Lines(ctx context.Context, userID string) ([]model.CartLine, error)
	Save(ctx context.Context, userID string, lines []model.CartLine) error
	Delete(ctx context.Context, userID string) error
}

// runRepositoryContract checks the behavior every cart driver must share.
func runRepositoryContract(t *testing.T, newRepo func(t *testing.T) cartRepository) {
	t.Run("absent cart reads as empty", func(t *testing.T) {
		repo := newRepo(t)

		lines, err := repo.Lines(context.Background(), "user-1")
		require.NoError(t, err)
		assert.NotNil(t, lines)
		assert.Empty(t, lines)
	})

	t.Run("save then read round-trips", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		want := []model.CartLine{{PartID: "part-1", Quantity: 2}, {PartID: "part-7", Quantity: 1}}

		require.NoError(t, repo.Save(ctx, "user-1", want))

		got, err := repo.Lines(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("carts are isolated per user", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		require.NoError(t, repo.Save(ctx, "user-1", []model.CartLine{{PartID: "part-1", Quantity: 1}}))

		got, err := repo.Lines(ctx, "user-2")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("save overwrites", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		require.NoError(t, repo.Save(ctx, "user-1", []model.CartLine{{PartID: "part-1", Quantity: 1}}))
		require.NoError(t, repo.Save(ctx, "user-1", []model.CartLine{{PartID: "part-2", Quantity: 3}}))

		got, err := repo.Lines(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, []model.CartLine{{PartID: "part-2", Quantity: 3}}, got)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		require.NoError(t, repo.Save(ctx, "user-1", []model.CartLine{{PartID: "part-1", Quantity: 1}}))
		require.NoError(t, repo.Delete(ctx, "user-1"))
		require.NoError(t, repo.Delete(ctx, "user-1"))

		got, err := repo.Lines(ctx, "user-1")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestMemoryRepository(t *testing.T) {
	runRepositoryContract(t, func(*testing.T) cartRepository {
		return NewMemoryRepository()
	})
}

func TestMemoryRepositoryMigratesStoredText(t *testing.T) {
	repo := NewMemoryRepository()
	repo.SetRaw("user-1", []byte(`[{"partId":"part-1","quantity":-1},{"partId":"part-2","quantity":2}]`))

	got, err := repo.Lines(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, []model.CartLine{{PartID: "part-2", Quantity: 2}}, got)

	repo.SetRaw("user-2", []byte(`not json`))
	_, err = repo.Lines(context.Background(), "user-2")
	assert.ErrorIs(t, err, model.ErrMalformedCart)
}

func newMiniredisClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func TestRedisRepository(t *testing.T) {
	runRepositoryContract(t, func(t *testing.T) cartRepository {
		_, client := newMiniredisClient(t)
		return NewRedisRepository(client)
	})
}

func TestRedisRepositoryKeyLayout(t *testing.T) {
	mr, client := newMiniredisClient(t)
	repo := NewRedisRepository(client)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "user-42", []model.CartLine{{PartID: "part-3", Quantity: 4}}))

	stored, err := mr.Get("cart-user-42")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"partId":"part-3","quantity":4}]`, stored)

	require.NoError(t, mr.Set("cart-user-43", `[{"partId":`))
	_, err = repo.Lines(ctx, "user-43")
	assert.ErrorIs(t, err, model.ErrMalformedCart)
}

func TestRedisRepositoryPropagatesConnectionErrors(t *testing.T) {
	mr, client := newMiniredisClient(t)
	repo := NewRedisRepository(client)
	mr.Close()

	_, err := repo.Lines(context.Background(), "user-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrMalformedCart)
}
