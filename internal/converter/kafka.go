package converter

import (
	"encoding/json"
	"fmt"

	"github.com/sm107-uiuc/sparemate-hub/internal/model"
)

type checkoutRecord struct {
	EventID   string  `json:"eventId"`
	UserID    string  `json:"userId"`
	ItemCount int     `json:"itemCount"`
	Total     float64 `json:"total"`
}

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

func (c *kafkaConverter) CheckoutCompletedToPayload(m model.CheckoutCompleted) ([]byte, error) {
	payload, err := json.Marshal(checkoutRecord{
		EventID:   m.EventID,
		UserID:    m.UserID,
		ItemCount: m.ItemCount,
		Total:     m.Total,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal checkout record: %w", err)
	}

	return payload, nil
}
