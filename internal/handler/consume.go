package handler

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/openshelf/library-service/pkg/kafka"
)

type auditWrite func(ctx context.Context, event kafka.EventAudit) error

type Consumer struct {
	auditHandler auditWrite
	log          *zap.Logger
}

func NewConsumer(audit auditWrite, log *zap.Logger) *Consumer {
	return &Consumer{
		auditHandler: audit,
		log:          log.Named("consumer"),
	}
}

// Setup runs at the start of every session; rebalances reuse the same
// Consumer, so it must hold no one-shot state.
func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var event kafka.EventAudit
			if err := json.Unmarshal(message.Value, &event); err != nil {
				consumer.log.Error("", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.auditHandler(context.Background(), event); err != nil {
				consumer.log.Error("consumer.auditHandler", zap.Error(err))
				continue
			}

			consumer.log.Debug("Message claimed:", zap.String("value", string(message.Value)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
