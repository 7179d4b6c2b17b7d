package service

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/openshelf/library-service/pkg/kafka"
)

const (
	TemplateWelcome       = "welcome"
	TemplatePasswordReset = "password_reset"
)

// KafkaNotifier hands notification payloads to the delivery topic; the
// actual mailer consumes them out of process.
type KafkaNotifier struct {
	producer sarama.SyncProducer
	log      *zap.Logger
}

func NewKafkaNotifier(producer sarama.SyncProducer, log *zap.Logger) *KafkaNotifier {
	return &KafkaNotifier{
		producer: producer,
		log:      log.Named("notify"),
	}
}

func (n *KafkaNotifier) Send(_ context.Context, recipient, template string, data map[string]string) error {
	event := kafka.EventNotification{
		Recipient: recipient,
		Template:  template,
		Data:      data,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: kafka.NotificationTopic, Value: sarama.StringEncoder(payload)}
	_, _, err = n.producer.SendMessage(msg)
	return err
}
