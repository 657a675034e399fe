package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"github.com/Moustaash/lcc-availability-2/internal/app/syncstate"
)

const syncTopic = "availability.sync.completed"

// SyncEventPublisher announces completed feed syncs on a Kafka topic so
// downstream consumers (cache invalidation, notifications) can react.
type SyncEventPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewSyncEventPublisher(brokers []string, topicPrefix string) (*SyncEventPublisher, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Producer.Return.Successes = true
	cfg.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("kafka: create producer: %w", err)
	}
	return &SyncEventPublisher{producer: producer, topic: topicPrefix + syncTopic}, nil
}

func (p *SyncEventPublisher) SyncCompleted(_ context.Context, report syncstate.Report) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("kafka: marshal sync report: %w", err)
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(report.RunID),
		Value: sarama.ByteEncoder(payload),
	}
	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("kafka: publish sync event: %w", err)
	}
	return nil
}

func (p *SyncEventPublisher) Close() error {
	if p.producer == nil {
		return nil
	}
	return p.producer.Close()
}

var _ syncstate.Publisher = (*SyncEventPublisher)(nil)
