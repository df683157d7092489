package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sm107-uiuc/sparemate-hub/internal/model"
	repository "github.com/sm107-uiuc/sparemate-hub/internal/repository/order"
	"github.com/sm107-uiuc/sparemate-hub/internal/service/mocks"
)

func TestServiceOrderByID(t *testing.T) {
	t.Parallel()

	svc := NewOrderService(repository.NewOrderRepository(repository.SampleOrders()), nil, nil)
	ctx := context.Background()

	o, err := svc.OrderByID(ctx, "  ord-12346 ")
	require.NoError(t, err)
	assert.Equal(t, "ORD-12346", o.ID)
	assert.Equal(t, model.OrderStatusShipped, o.Status)

	_, err = svc.OrderByID(ctx, "ORD-00000")
	assert.ErrorIs(t, err, model.ErrOrderNotFound)

	_, err = svc.OrderByID(ctx, "   ")
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		items []model.CartItemView
		want  model.CheckoutSummary
	}{
		{
			name: "single line",
			items: []model.CartItemView{
				{PartID: "part-1", Quantity: 2, Part: &model.PartSummary{ID: "part-1", Price: 50}},
			},
			want: model.CheckoutSummary{Subtotal: 100, Shipping: 12.99, Tax: 8, Total: 120.99},
		},
		{
			name: "tax rounds to cents",
			items: []model.CartItemView{
				{PartID: "part-1", Quantity: 1, Part: &model.PartSummary{ID: "part-1", Price: 19.99}},
				{PartID: "part-2", Quantity: 3, Part: &model.PartSummary{ID: "part-2", Price: 4.35}},
			},
			want: model.CheckoutSummary{Subtotal: 33.04, Shipping: 12.99, Tax: 2.64, Total: 48.67},
		},
		{
			name: "lines without a part cost nothing",
			items: []model.CartItemView{
				{PartID: "part-404", Quantity: 3},
			},
			want: model.CheckoutSummary{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Summarize(tt.items)
			assert.InDelta(t, tt.want.Subtotal, got.Subtotal, 1e-9)
			assert.InDelta(t, tt.want.Shipping, got.Shipping, 1e-9)
			assert.InDelta(t, tt.want.Tax, got.Tax, 1e-9)
			assert.InDelta(t, tt.want.Total, got.Total, 1e-9)
			assert.Equal(t, tt.items, got.Items)
		})
	}
}

func TestServiceCheckout(t *testing.T) {
	t.Parallel()

	type deps struct {
		carts  *mocks.MockCartService
		sender *mocks.MockCheckoutSender
	}

	type testCase struct {
		name   string
		setup  func(d deps)
		assert func(t *testing.T, res *model.CheckoutSummary, err error)
	}

	ctx := context.Background()
	userID := "user-1700000000000"
	items := []model.CartItemView{
		{PartID: "part-3", Quantity: 2, Part: &model.PartSummary{ID: "part-3", Price: 25}},
		{PartID: "part-9", Quantity: 1, Part: &model.PartSummary{ID: "part-9", Price: 10}},
	}
	isEvent := mock.MatchedBy(func(e model.CheckoutCompleted) bool {
		_, err := uuid.Parse(e.EventID)
		return err == nil && e.UserID == userID && e.ItemCount == 3 && e.Total == 77.79
	})

	tests := []testCase{
		{
			name: "success clears the cart and publishes",
			setup: func(d deps) {
				d.carts.On("Details", mock.Anything, userID).Return(items, nil).Once()
				d.carts.On("Clear", mock.Anything, userID).Return(nil).Once()
				d.sender.On("SendCheckoutCompleted", mock.Anything, isEvent).Return(nil).Once()
			},
			assert: func(t *testing.T, res *model.CheckoutSummary, err error) {
				require.NoError(t, err)
				assert.InDelta(t, 60, res.Subtotal, 1e-9)
				assert.InDelta(t, 77.79, res.Total, 1e-9)
			},
		},
		{
			name: "publish failure does not fail checkout",
			setup: func(d deps) {
				d.carts.On("Details", mock.Anything, userID).Return(items, nil).Once()
				d.carts.On("Clear", mock.Anything, userID).Return(nil).Once()
				d.sender.On("SendCheckoutCompleted", mock.Anything, isEvent).Return(errors.New("broker down")).Once()
			},
			assert: func(t *testing.T, res *model.CheckoutSummary, err error) {
				require.NoError(t, err)
				assert.NotNil(t, res)
			},
		},
		{
			name: "empty cart is rejected",
			setup: func(d deps) {
				d.carts.On("Details", mock.Anything, userID).Return([]model.CartItemView{}, nil).Once()
			},
			assert: func(t *testing.T, res *model.CheckoutSummary, err error) {
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, res)
			},
		},
		{
			name: "clear failure stops before publishing",
			setup: func(d deps) {
				d.carts.On("Details", mock.Anything, userID).Return(items, nil).Once()
				d.carts.On("Clear", mock.Anything, userID).Return(errors.New("redis gone")).Once()
			},
			assert: func(t *testing.T, res *model.CheckoutSummary, err error) {
				require.Error(t, err)
				assert.Nil(t, res)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				carts:  mocks.NewMockCartService(t),
				sender: mocks.NewMockCheckoutSender(t),
			}
			tt.setup(d)

			svc := NewOrderService(mocks.NewMockOrderRepository(t), d.carts, d.sender)
			res, err := svc.Checkout(ctx, userID)
			tt.assert(t, res, err)
		})
	}
}

func TestServiceListPropagatesErrors(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockOrderRepository(t)
	repo.On("List", mock.Anything).Return(nil, errors.New("boom")).Once()

	_, err := NewOrderService(repo, nil, nil).List(context.Background())
	assert.ErrorContains(t, err, "boom")
}
