// Package kafka implements the OrderEventPublisher port on top of a Kafka
// sync producer. Order lifecycle changes are published after the owning
// transaction commits so consumers never observe rolled-back state.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"rental/internal/core/domain/model/order"
	"rental/internal/core/ports"

	"github.com/IBM/sarama"
	"github.com/sirupsen/logrus"
)

// OrderChangedTopic carries the full order state after every lifecycle change.
const OrderChangedTopic = "order.changed"

// orderChangedEvent is the wire representation of an order change.
type orderChangedEvent struct {
	OrderID    string     `json:"order_id"`
	CustomerID string     `json:"customer_id"`
	CarID      string     `json:"car_id"`
	Status     string     `json:"status"`
	TotalValue string     `json:"total_value"`
	Fine       *string    `json:"fine,omitempty"`
	StartDate  *time.Time `json:"start_date,omitempty"`
	EndDate    *time.Time `json:"end_date,omitempty"`
	EventTime  time.Time  `json:"event_time"`
}

// Producer publishes order events to Kafka.
type Producer struct {
	producer sarama.SyncProducer
	logger   *logrus.Logger
}

// NewProducer creates a sync producer connected to the given brokers.
func NewProducer(brokers []string, logger *logrus.Logger) (*Producer, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Version = sarama.V2_6_0_0

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, err
	}

	return &Producer{
		producer: producer,
		logger:   logger,
	}, nil
}

var _ ports.OrderEventPublisher = (*Producer)(nil)

// PublishOrderChanged emits the order's current state, keyed by order ID so
// changes to one order land on the same partition in order.
func (p *Producer) PublishOrderChanged(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	event := orderChangedEvent{
		OrderID:    aggregate.ID().String(),
		CustomerID: aggregate.CustomerID().String(),
		CarID:      aggregate.CarID().String(),
		Status:     aggregate.Status().String(),
		TotalValue: aggregate.TotalValue().String(),
		StartDate:  aggregate.StartDateTime(),
		EndDate:    aggregate.EndDateTime(),
		EventTime:  time.Now(),
	}
	if fine := aggregate.Fine(); fine != nil {
		raw := fine.String()
		event.Fine = &raw
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: OrderChangedTopic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(data),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.logger.WithError(err).Error("Failed to send message to Kafka")
		return err
	}

	p.logger.WithFields(logrus.Fields{
		"topic":     OrderChangedTopic,
		"partition": partition,
		"offset":    offset,
		"order_id":  event.OrderID,
	}).Info("Order event published")

	return nil
}

// Close shuts the underlying producer down.
func (p *Producer) Close() error {
	return p.producer.Close()
}
