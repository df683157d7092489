package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sm107-uiuc/sparemate-hub/internal/model"
	cartrepo "github.com/sm107-uiuc/sparemate-hub/internal/repository/cart"
	partrepo "github.com/sm107-uiuc/sparemate-hub/internal/repository/part"
	"github.com/sm107-uiuc/sparemate-hub/internal/service/mocks"
)

const catalogSize = 20

func newCatalog(t *testing.T) Catalog {
	t.Helper()

	catalog := partrepo.NewPartRepository()
	require.NoError(t, partrepo.PartsBootstrap(context.Background(), catalog, catalogSize, 7))

	return catalog
}

func newStores(t *testing.T) *service {
	t.Helper()

	return NewCartService(cartrepo.NewMemoryRepository(), newCatalog(t))
}

func TestServiceAddItemAccumulates(t *testing.T) {
	t.Parallel()
	svc := newStores(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user-1", "part-1", 2)
	require.NoError(t, err)
	lines, err := svc.AddItem(ctx, "user-1", "part-1", 3)
	require.NoError(t, err)

	assert.Equal(t, []model.CartLine{{PartID: "part-1", Quantity: 5}}, lines)

	got, err := svc.Cart(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, lines, got)
}

func TestServiceAddItemAppendsInOrder(t *testing.T) {
	t.Parallel()
	svc := newStores(t)
	ctx := context.Background()

	for _, id := range []string{"part-3", "part-1", "part-3", "part-2"} {
		_, err := svc.AddItem(ctx, "user-1", id, 1)
		require.NoError(t, err)
	}

	got, err := svc.Cart(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []model.CartLine{
		{PartID: "part-3", Quantity: 2},
		{PartID: "part-1", Quantity: 1},
		{PartID: "part-2", Quantity: 1},
	}, got)
}

func TestServiceRemoveItemIsIdempotent(t *testing.T) {
	t.Parallel()
	svc := newStores(t)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, "user-1", []model.CartLine{
		{PartID: "part-1", Quantity: 1},
		{PartID: "part-2", Quantity: 4},
	}))

	once, err := svc.RemoveItem(ctx, "user-1", "part-1")
	require.NoError(t, err)
	twice, err := svc.RemoveItem(ctx, "user-1", "part-1")
	require.NoError(t, err)

	assert.Equal(t, once, twice)
	assert.Equal(t, []model.CartLine{{PartID: "part-2", Quantity: 4}}, twice)
}

func TestServiceRemoveMissingLineLeavesCartUnchanged(t *testing.T) {
	t.Parallel()
	svc := newStores(t)
	ctx := context.Background()

	want := []model.CartLine{{PartID: "part-2", Quantity: 1}}
	require.NoError(t, svc.Save(ctx, "user-1", want))

	got, err := svc.RemoveItem(ctx, "user-1", "part-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestServiceSaveRoundTrip(t *testing.T) {
	t.Parallel()
	svc := newStores(t)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		userID := fmt.Sprintf("user-%d", i)

		ids := rand.Perm(catalogSize)

		want := make([]model.CartLine, 0, 5)
		for _, id := range ids[:gofakeit.IntRange(0, 5)] {
			want = append(want, model.CartLine{
				PartID:   fmt.Sprintf("part-%d", id+1),
				Quantity: gofakeit.IntRange(1, 10),
			})
		}

		require.NoError(t, svc.Save(ctx, userID, want))

		got, err := svc.Cart(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestServiceCartDropsDanglingLines(t *testing.T) {
	t.Parallel()
	svc := newStores(t)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, "user-1", []model.CartLine{
		{PartID: "part-1", Quantity: 1},
		{PartID: "part-999", Quantity: 2},
	}))

	got, err := svc.Cart(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []model.CartLine{{PartID: "part-1", Quantity: 1}}, got)

	details, err := svc.Details(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, details, 1)
	require.NotNil(t, details[0].Part)
	assert.Equal(t, "part-1", details[0].Part.ID)
}

func TestServiceMalformedCartReadsEmpty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	svc := NewCartService(cartrepo.NewRedisRepository(client), newCatalog(t))

	require.NoError(t, mr.Set(cartrepo.Key("user-1"), `{{{`))

	got, err := svc.Cart(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, got)

	lines, err := svc.AddItem(ctx, "user-1", "part-4", 1)
	require.NoError(t, err)
	assert.Equal(t, []model.CartLine{{PartID: "part-4", Quantity: 1}}, lines)
}

func TestServiceSaveNormalizesLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []model.CartLine
		want  []model.CartLine
	}{
		{
			name:  "zero quantity is dropped",
			lines: []model.CartLine{{PartID: "part-1", Quantity: 0}, {PartID: "part-2", Quantity: 3}},
			want:  []model.CartLine{{PartID: "part-2", Quantity: 3}},
		},
		{
			name:  "negative quantity is dropped",
			lines: []model.CartLine{{PartID: "part-1", Quantity: -4}},
			want:  nil,
		},
		{
			name: "duplicates merge into the first occurrence",
			lines: []model.CartLine{
				{PartID: "part-3", Quantity: 1},
				{PartID: "part-1", Quantity: 2},
				{PartID: "part-3", Quantity: 4},
			},
			want: []model.CartLine{{PartID: "part-3", Quantity: 5}, {PartID: "part-1", Quantity: 2}},
		},
		{
			name: "dropped and merged together",
			lines: []model.CartLine{
				{PartID: "part-2", Quantity: 2},
				{PartID: "part-5", Quantity: 0},
				{PartID: "part-2", Quantity: 1},
			},
			want: []model.CartLine{{PartID: "part-2", Quantity: 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := newStores(t)
			ctx := context.Background()

			require.NoError(t, svc.Save(ctx, "user-1", tt.lines))

			got, err := svc.Cart(ctx, "user-1")
			require.NoError(t, err)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestServiceSavePassesNormalizedLines(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := mocks.NewMockCartRepository(t)
	repo.On("Save", mock.Anything, "user-1", []model.CartLine{{PartID: "part-1", Quantity: 3}}).
		Return(nil).Once()

	svc := NewCartService(repo, mocks.NewMockCatalog(t))
	require.NoError(t, svc.Save(ctx, "user-1", []model.CartLine{
		{PartID: "part-1", Quantity: 1},
		{PartID: "part-9", Quantity: 0},
		{PartID: "part-1", Quantity: 2},
	}))
}

func TestServiceUpdateQuantity(t *testing.T) {
	t.Parallel()
	svc := newStores(t)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, "user-1", []model.CartLine{
		{PartID: "part-1", Quantity: 1},
		{PartID: "part-2", Quantity: 1},
	}))

	lines, err := svc.UpdateQuantity(ctx, "user-1", "part-2", 7)
	require.NoError(t, err)
	assert.Equal(t, []model.CartLine{{PartID: "part-1", Quantity: 1}, {PartID: "part-2", Quantity: 7}}, lines)

	lines, err = svc.UpdateQuantity(ctx, "user-1", "part-1", 0)
	require.NoError(t, err)
	assert.Equal(t, []model.CartLine{{PartID: "part-2", Quantity: 7}}, lines)

	_, err = svc.UpdateQuantity(ctx, "user-1", "part-5", 2)
	assert.ErrorIs(t, err, model.ErrCartItemNotFound)
}

func TestServiceValidation(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name string
		call func(s *service) error
	}

	ctx := context.Background()
	tests := []testCase{
		{
			name: "add zero quantity",
			call: func(s *service) error { _, err := s.AddItem(ctx, "user-1", "part-1", 0); return err },
		},
		{
			name: "add negative quantity",
			call: func(s *service) error { _, err := s.AddItem(ctx, "user-1", "part-1", -2); return err },
		},
		{
			name: "add empty part id",
			call: func(s *service) error { _, err := s.AddItem(ctx, "user-1", " ", 1); return err },
		},
		{
			name: "empty user id",
			call: func(s *service) error { _, err := s.Cart(ctx, ""); return err },
		},
		{
			name: "save empty part id",
			call: func(s *service) error {
				return s.Save(ctx, "user-1", []model.CartLine{{PartID: "", Quantity: 1}})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := mocks.NewMockCartRepository(t)
			catalog := mocks.NewMockCatalog(t)
			svc := NewCartService(repo, catalog)

			err := tt.call(svc)
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrValidation)

			repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestServiceRepositoryErrors(t *testing.T) {
	t.Parallel()

	type deps struct {
		repository *mocks.MockCartRepository
		catalog    *mocks.MockCatalog
	}

	type testCase struct {
		name   string
		setup  func(d deps)
		call   func(s *service) error
		assert func(t *testing.T, err error, d deps)
	}

	ctx := context.Background()
	storageErr := errors.New(gofakeit.Sentence(3))

	tests := []testCase{
		{
			name: "read failure is propagated",
			setup: func(d deps) {
				d.repository.On("Lines", mock.Anything, "user-1").Return(nil, storageErr).Once()
			},
			call: func(s *service) error { _, err := s.Cart(ctx, "user-1"); return err },
			assert: func(t *testing.T, err error, _ deps) {
				assert.ErrorIs(t, err, storageErr)
			},
		},
		{
			name: "write failure is propagated",
			setup: func(d deps) {
				d.repository.On("Lines", mock.Anything, "user-1").Return([]model.CartLine{}, nil).Once()
				d.repository.On("Save", mock.Anything, "user-1", []model.CartLine{{PartID: "part-1", Quantity: 1}}).
					Return(storageErr).Once()
			},
			call: func(s *service) error { _, err := s.AddItem(ctx, "user-1", "part-1", 1); return err },
			assert: func(t *testing.T, err error, _ deps) {
				assert.ErrorIs(t, err, storageErr)
			},
		},
		{
			name: "removing an absent line skips the write",
			setup: func(d deps) {
				d.repository.On("Lines", mock.Anything, "user-1").
					Return([]model.CartLine{{PartID: "part-2", Quantity: 1}}, nil).Once()
				d.catalog.On("Exists", mock.Anything, "part-2").Return(true).Once()
			},
			call: func(s *service) error { _, err := s.RemoveItem(ctx, "user-1", "part-1"); return err },
			assert: func(t *testing.T, err error, d deps) {
				require.NoError(t, err)
				d.repository.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			name: "malformed data reads as empty",
			setup: func(d deps) {
				d.repository.On("Lines", mock.Anything, "user-1").
					Return(nil, fmt.Errorf("redis: %w", model.ErrMalformedCart)).Once()
			},
			call: func(s *service) error {
				lines, err := s.Cart(ctx, "user-1")
				if err == nil && len(lines) != 0 {
					return errors.New("expected empty cart")
				}
				return err
			},
			assert: func(t *testing.T, err error, _ deps) {
				require.NoError(t, err)
			},
		},
		{
			name: "clear failure is propagated",
			setup: func(d deps) {
				d.repository.On("Delete", mock.Anything, "user-1").Return(storageErr).Once()
			},
			call: func(s *service) error { return s.Clear(ctx, "user-1") },
			assert: func(t *testing.T, err error, _ deps) {
				assert.ErrorIs(t, err, storageErr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				repository: mocks.NewMockCartRepository(t),
				catalog:    mocks.NewMockCatalog(t),
			}
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := NewCartService(d.repository, d.catalog)
			tt.assert(t, tt.call(svc), d)
		})
	}
}
