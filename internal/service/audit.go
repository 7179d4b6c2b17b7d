package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/openshelf/library-service/internal/repository"
	"github.com/openshelf/library-service/pkg/kafka"
)

// KafkaAuditSink publishes audit events to the audit topic. Publish
// failures are logged and swallowed: the audit trail never decides the
// outcome of a primary write.
type KafkaAuditSink struct {
	producer sarama.SyncProducer
	log      *zap.Logger
}

func NewKafkaAuditSink(producer sarama.SyncProducer, log *zap.Logger) *KafkaAuditSink {
	return &KafkaAuditSink{
		producer: producer,
		log:      log.Named("audit"),
	}
}

func (s *KafkaAuditSink) Record(_ context.Context, userID *int, action, description string) {
	event := kafka.EventAudit{
		UserID:      userID,
		Action:      action,
		Description: description,
		Timestamp:   time.Now().UTC(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		s.log.Error("audit marshal", zap.Error(err))
		return
	}
	msg := &sarama.ProducerMessage{Topic: kafka.AuditTopic, Value: sarama.StringEncoder(data)}
	if _, _, err := s.producer.SendMessage(msg); err != nil {
		s.log.Warn("audit publish", zap.String("action", action), zap.Error(err))
	}
}

// AuditWriter persists consumed audit events into the logs table.
type AuditWriter struct {
	repo repository.Audit
	log  *zap.Logger
}

func NewAuditWriter(repo repository.Audit, log *zap.Logger) *AuditWriter {
	return &AuditWriter{
		repo: repo,
		log:  log,
	}
}

func (w *AuditWriter) Write(ctx context.Context, event kafka.EventAudit) error {
	return w.repo.InsertAudit(ctx, event)
}
