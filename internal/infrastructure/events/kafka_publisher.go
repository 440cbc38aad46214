package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"konkred_vault/internal/domain/entities"
	"konkred_vault/internal/usecase/interfaces"

	"github.com/IBM/sarama"
)

const defaultEntitlementTopic = "entitlement-events"

type entitlementEvent struct {
	PaymentID     string `json:"payment_id"`
	UserID        string `json:"user_id"`
	ProtocolID    string `json:"protocol_id"`
	PaymentStatus string `json:"payment_status"`
	Acquired      bool   `json:"acquired"`
	NeedsReview   bool   `json:"needs_review"`
}

// KafkaEntitlementPublisher emits entitlement state changes for downstream
// access-control and fulfillment consumers. Messages are keyed by payment id
// so all deliveries for one payment land on one partition in order.

type KafkaEntitlementPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

var _ interfaces.IEntitlementEventPublisher = (*KafkaEntitlementPublisher)(nil)

func NewKafkaEntitlementPublisher(broker string) (*KafkaEntitlementPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer([]string{broker}, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	topic := os.Getenv("ENTITLEMENT_EVENTS_TOPIC")
	if topic == "" {
		topic = defaultEntitlementTopic
	}
	log.Printf("[events][kafka] producer initialized broker=%s topic=%s", broker, topic)

	return &KafkaEntitlementPublisher{producer: producer, topic: topic}, nil
}

func (p *KafkaEntitlementPublisher) PublishEntitlementChanged(_ context.Context, e entities.Entitlement) error {
	payload, err := json.Marshal(entitlementEvent{
		PaymentID:     e.PaymentID,
		UserID:        e.UserID,
		ProtocolID:    e.ProtocolID,
		PaymentStatus: string(e.PaymentStatus),
		Acquired:      e.AcquiredAt != nil,
		NeedsReview:   e.NeedsReview,
	})
	if err != nil {
		return err
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(e.PaymentID),
		Value: sarama.ByteEncoder(payload),
	})
	return err
}

func (p *KafkaEntitlementPublisher) Close() error {
	return p.producer.Close()
}
