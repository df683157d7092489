package storefront_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sm107-uiuc/sparemate-hub/internal/client/http/mockapi"
	"github.com/sm107-uiuc/sparemate-hub/internal/client/http/storefront"
	"github.com/sm107-uiuc/sparemate-hub/internal/model"
	cartrepo "github.com/sm107-uiuc/sparemate-hub/internal/repository/cart"
	orderrepo "github.com/sm107-uiuc/sparemate-hub/internal/repository/order"
	partrepo "github.com/sm107-uiuc/sparemate-hub/internal/repository/part"
	userrepo "github.com/sm107-uiuc/sparemate-hub/internal/repository/user"
	authsvc "github.com/sm107-uiuc/sparemate-hub/internal/service/auth"
	cartsvc "github.com/sm107-uiuc/sparemate-hub/internal/service/cart"
	ordersvc "github.com/sm107-uiuc/sparemate-hub/internal/service/order"
	partsvc "github.com/sm107-uiuc/sparemate-hub/internal/service/part"
	checkoutproducer "github.com/sm107-uiuc/sparemate-hub/internal/service/producer/checkout"
	thttp "github.com/sm107-uiuc/sparemate-hub/internal/transport/http/api/v1"
)

type fixture struct {
	client  *storefront.Client
	catalog []*model.Part
	apiKey  string
	handler http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	parts := partrepo.NewPartRepository()
	require.NoError(t, partrepo.PartsBootstrap(ctx, parts, 40, 3))
	catalog, err := parts.List(ctx)
	require.NoError(t, err)

	carts := cartsvc.NewCartService(cartrepo.NewMemoryRepository(), parts)
	auth := authsvc.NewAuthService(userrepo.NewMemoryRepository())
	orders := ordersvc.NewOrderService(
		orderrepo.NewOrderRepository(orderrepo.SampleOrders()),
		carts,
		checkoutproducer.NewDiscardSender(),
	)

	user, err := auth.Login(ctx, model.LoginParams{Email: gofakeit.Email(), Password: "secret"})
	require.NoError(t, err)

	r := chi.NewRouter()
	thttp.NewHandler(partsvc.NewPartService(parts), carts, orders, auth, 0).Register(r)

	offline := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("network disabled in tests: " + r.URL.String())
	})

	client, err := storefront.NewClient("http://storefront.test", user.APIKey, mockapi.NewRoundTripper(r, offline))
	require.NoError(t, err)

	return &fixture{client: client, catalog: catalog, apiKey: user.APIKey, handler: r}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func inStock(t *testing.T, catalog []*model.Part, n int) *model.Part {
	t.Helper()
	p, ok := lo.Find(catalog, func(p *model.Part) bool { return p.Stock >= n })
	require.True(t, ok)
	return p
}

func TestClientCartLifecycle(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	part := inStock(t, f.catalog, 4)

	items, err := f.client.Cart(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = f.client.AddToCart(ctx, part.ID, 2)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	require.NotNil(t, items[0].Part)
	assert.Equal(t, part.Name, items[0].Part.Name)

	items, err = f.client.UpdateQuantity(ctx, part.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, items[0].Quantity)

	items, err = f.client.RemoveFromCart(ctx, part.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestClientCheckout(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	part := inStock(t, f.catalog, 1)

	_, err := f.client.AddToCart(ctx, part.ID, 1)
	require.NoError(t, err)

	summary, err := f.client.Checkout(ctx)
	require.NoError(t, err)
	assert.InDelta(t, part.Price, summary.Subtotal, 0.01)
	assert.InDelta(t, 12.99, summary.Shipping, 0.001)
	assert.Len(t, summary.Items, 1)

	items, err := f.client.Cart(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestClientCatalog(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	want := f.catalog[5]
	got, err := f.client.Part(ctx, want.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	parts, err := f.client.ListParts(ctx, model.PartsFilter{
		Categories:  []model.Category{want.Category},
		InStockOnly: true,
	}, model.SortNameAsc)
	require.NoError(t, err)
	for _, p := range parts {
		assert.Equal(t, want.Category, p.Category)
		assert.Positive(t, p.Stock)
	}
	assert.True(t, lo.IsSortedByKey(parts, func(p *model.Part) string { return p.Name }))
}

func TestClientOrder(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	order, err := f.client.Order(context.Background(), "ORD-12345")
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusDelivered, order.Status)
	assert.Len(t, order.Items, 2)
	require.NotNil(t, order.EstimatedDelivery)
}

func TestClientAPIErrors(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		call   func() error
		status int
		msg    string
	}{
		{
			name: "unknown part",
			call: func() error {
				_, err := f.client.AddToCart(ctx, "part-0", 1)
				return err
			},
			status: http.StatusNotFound,
			msg:    "Part not found",
		},
		{
			name: "unknown order",
			call: func() error {
				_, err := f.client.Order(ctx, "ORD-1")
				return err
			},
			status: http.StatusNotFound,
			msg:    "Order not found",
		},
		{
			name: "empty checkout",
			call: func() error {
				_, err := f.client.Checkout(ctx)
				return err
			},
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.call()

			var apiErr *storefront.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			if tt.msg != "" {
				assert.Equal(t, tt.msg, apiErr.Message)
			}
		})
	}
}

func TestClientWithoutKey(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	anon, err := storefront.NewClient("http://storefront.test", "", mockapi.NewRoundTripper(f.handler, nil))
	require.NoError(t, err)

	_, err = anon.Cart(context.Background())

	var apiErr *storefront.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "API Key is required", apiErr.Message)
}

func TestClientNonJSONError(t *testing.T) {
	t.Parallel()

	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusBadGateway,
			Body:       io.NopCloser(strings.NewReader("<html>bad gateway</html>")),
			Request:    r,
		}, nil
	})
	client, err := storefront.NewClient("http://storefront.test", "k", rt)
	require.NoError(t, err)

	_, err = client.Cart(context.Background())

	var apiErr *storefront.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "Bad Gateway", apiErr.Message)
}
