package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/sm107-uiuc/sparemate-hub/internal/model"
	"github.com/sm107-uiuc/sparemate-hub/platform/logger"
)

const (
	shippingFee = 12.99
	taxRate     = 0.08
)

type OrderRepository interface {
	OrderByID(ctx context.Context, id string) (*model.Order, error)
	List(ctx context.Context) ([]*model.Order, error)
}

type CartService interface {
	Details(ctx context.Context, userID string) ([]model.CartItemView, error)
	Clear(ctx context.Context, userID string) error
}

type CheckoutSender interface {
	SendCheckoutCompleted(ctx context.Context, event model.CheckoutCompleted) error
}

type service struct {
	repo   OrderRepository
	carts  CartService
	sender CheckoutSender
}

func NewOrderService(repo OrderRepository, carts CartService, sender CheckoutSender) *service {
	return &service{repo: repo, carts: carts, sender: sender}
}

func (s *service) OrderByID(ctx context.Context, orderID string) (*model.Order, error) {
	const op = "order.service.OrderByID"
	log := logger.With(logger.String("order_id", orderID))

	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		log.Warn(ctx, "validation: empty order id")
		return nil, errors.Join(model.ErrValidation, errors.New("order id must be non-empty"))
	}

	o, err := s.repo.OrderByID(ctx, orderID)
	if err != nil {
		log.Warn(ctx, "repository order by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return o, nil
}

func (s *service) List(ctx context.Context) ([]*model.Order, error) {
	const op = "order.service.List"

	orders, err := s.repo.List(ctx)
	if err != nil {
		logger.Error(ctx, "repository list orders", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return orders, nil
}

// Checkout prices the user's cart, empties it and announces the checkout.
// A failed announcement is logged only since the cart is already gone.
func (s *service) Checkout(ctx context.Context, userID string) (*model.CheckoutSummary, error) {
	const op = "order.service.Checkout"
	log := logger.With(logger.String("user_id", userID))

	items, err := s.carts.Details(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(items) == 0 {
		log.Warn(ctx, "validation: checkout of empty cart")
		return nil, errors.Join(model.ErrValidation, errors.New("cart is empty"))
	}

	summary := Summarize(items)

	if err := s.carts.Clear(ctx, userID); err != nil {
		log.Error(ctx, "clear cart", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	event := model.CheckoutCompleted{
		EventID:   uuid.NewString(),
		UserID:    userID,
		ItemCount: lo.SumBy(items, func(it model.CartItemView) int { return it.Quantity }),
		Total:     summary.Total,
	}
	if err := s.sender.SendCheckoutCompleted(ctx, event); err != nil {
		log.Error(ctx, "send checkout completed", logger.String("event_id", event.EventID), logger.ErrorF(err))
	}
	log.Info(ctx, "checkout completed", logger.Float64("total", summary.Total))

	return summary, nil
}

// Summarize prices cart items. Shipping is charged on a non-zero subtotal;
// tax and total are rounded to cents.
func Summarize(items []model.CartItemView) *model.CheckoutSummary {
	subtotal := lo.SumBy(items, func(it model.CartItemView) float64 {
		if it.Part == nil {
			return 0
		}
		return it.Part.Price * float64(it.Quantity)
	})
	subtotal = cents(subtotal)

	shipping := 0.0
	if subtotal > 0 {
		shipping = shippingFee
	}
	tax := cents(subtotal * taxRate)

	return &model.CheckoutSummary{
		Items:    items,
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    cents(subtotal + shipping + tax),
	}
}

func cents(v float64) float64 {
	return math.Round(v*100) / 100
}
