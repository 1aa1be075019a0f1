package kafka

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"todo-api/internal/domain"
	"todo-api/internal/ports/output"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

var _ output.EventPublisher = (*EventPublisher)(nil)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// EventPublisher struct - Writes todo change events to a Kafka topic
type EventPublisher struct {
	writer messageWriter
}

// NewEventPublisher func
func NewEventPublisher(brokers []string, topic string) *EventPublisher {
	logrus.WithFields(logrus.Fields{
		"topic":   topic,
		"brokers": brokers,
	}).Info("Kafka producer initialized")

	return &EventPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           10 * time.Millisecond,
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		},
	}
}

// NewMessage func - Events of one todo share a key so they keep their order within a partition
func NewMessage(event domain.TodoEvent) (kafka.Message, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(strconv.Itoa(event.TodoID)),
		Value: payload,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	}, nil
}

// Publish func
func (p *EventPublisher) Publish(ctx context.Context, event domain.TodoEvent) error {
	msg, err := NewMessage(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, msg)
}

// Close func - Flushes pending messages
func (p *EventPublisher) Close() error {
	return p.writer.Close()
}
