package producer

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"

	"github.com/sm107-uiuc/sparemate-hub/platform/logger"
)

type Logger interface {
	Debug(ctx context.Context, msg string, fields ...logger.Field)
	Error(ctx context.Context, msg string, fields ...logger.Field)
}

type producer struct {
	syncProducer sarama.SyncProducer
	topic        string
	logger       Logger
}

// NewProducer publishes every message to topic through a sync producer, so
// Send returns only after the broker acknowledged the write.
func NewProducer(syncProducer sarama.SyncProducer, topic string, logger Logger) *producer {
	return &producer{
		syncProducer: syncProducer,
		topic:        topic,
		logger:       logger,
	}
}

func (p *producer) Send(ctx context.Context, key, value []byte) error {
	partition, offset, err := p.syncProducer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.ByteEncoder(key),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		p.logger.Error(ctx, "kafka send failed",
			logger.String("topic", p.topic),
			logger.ErrorF(err),
		)
		return fmt.Errorf("send to %s: %w", p.topic, err)
	}

	p.logger.Debug(ctx, "kafka message sent",
		logger.String("topic", p.topic),
		logger.Any("partition", partition),
		logger.Int64("offset", offset),
		logger.String("key", string(key)),
	)

	return nil
}
