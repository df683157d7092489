package checkoutproducer

import (
	"context"
	"fmt"

	"github.com/sm107-uiuc/sparemate-hub/internal/model"
	"github.com/sm107-uiuc/sparemate-hub/platform/kafka"
	"github.com/sm107-uiuc/sparemate-hub/platform/logger"
)

type Converter interface {
	CheckoutCompletedToPayload(m model.CheckoutCompleted) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewCheckoutProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

func (s *service) SendCheckoutCompleted(ctx context.Context, event model.CheckoutCompleted) error {
	payload, err := s.conv.CheckoutCompletedToPayload(event)
	if err != nil {
		return fmt.Errorf("converter checkout_completed: %w", err)
	}

	if err := s.producer.Send(ctx, []byte(event.UserID), payload); err != nil {
		return fmt.Errorf("producer checkout.completed: %w", err)
	}

	return nil
}

type discard struct{}

// NewDiscardSender is used when Kafka is disabled. Events are only logged.
func NewDiscardSender() discard { return discard{} }

func (discard) SendCheckoutCompleted(ctx context.Context, event model.CheckoutCompleted) error {
	logger.Debug(ctx, "checkout event not published",
		logger.String("event_id", event.EventID),
		logger.String("user_id", event.UserID),
	)
	return nil
}
