package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/IBM/sarama"
)

// IKafkaService defines the interface for Kafka operations.
type IKafkaService interface {
	PushMessage(topic, key string, message []byte) error
}

// KafkaService implements IKafkaService using Sarama.
type KafkaService struct {
	producer sarama.SyncProducer
	brokers  []string
}

// NewKafkaService creates a new KafkaService instance.
func NewKafkaService(brokers []string) (IKafkaService, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to start Sarama producer: %w", err)
	}

	slog.Info("kafka producer connected", "brokers", brokers)
	return &KafkaService{producer: producer, brokers: brokers}, nil
}

// PushMessage sends a message to the given Kafka topic. A non-empty key pins
// all messages sharing it to one partition, preserving their order.
func (s *KafkaService) PushMessage(topic, key string, message []byte) error {
	msg := &sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.StringEncoder(message),
	}
	if key != "" {
		msg.Key = sarama.StringEncoder(key)
	}

	partition, offset, err := s.producer.SendMessage(msg)
	if err != nil {
		slog.Error("kafka send failed", "topic", topic, "error", err)
		return err
	}
	slog.Debug("kafka message sent", "topic", topic, "partition", partition, "offset", offset)
	return nil
}
