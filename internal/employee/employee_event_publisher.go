package employee

import (
	"context"
	"encoding/json"
	"strconv"

	"hrboard/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type EventPublisher interface {
	PublishEmployeeCreated(ctx context.Context, event events.EmployeeCreatedEvent) error
}

type kafkaPublisher struct {
	writer *kafkago.Writer
	logger *zap.Logger
}

// NewKafkaPublisher publishes lifecycle events to the hr topic. The
// writer is fire-and-forget from the caller's perspective; failures are
// returned so the service can log them without failing the request.
func NewKafkaPublisher(brokers []string, logger ...*zap.Logger) EventPublisher {
	l := zap.L().Named("employee.publisher")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.publisher")
	}
	return &kafkaPublisher{
		writer: &kafkago.Writer{
			Addr:     kafkago.TCP(brokers...),
			Topic:    events.EmployeeCreatedTopic,
			Balancer: &kafkago.LeastBytes{},
		},
		logger: l,
	}
}

func (p *kafkaPublisher) PublishEmployeeCreated(ctx context.Context, event events.EmployeeCreatedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafkago.Message{
		Key:   []byte(strconv.Itoa(event.EmployeeID)),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
		},
	}

	p.logger.Debug("publishing employee created event",
		zap.Int("employee_id", event.EmployeeID),
	)
	return p.writer.WriteMessages(ctx, msg)
}

type nopPublisher struct{}

// NewNopPublisher is used when no brokers are configured.
func NewNopPublisher() EventPublisher {
	return &nopPublisher{}
}

func (nopPublisher) PublishEmployeeCreated(context.Context, events.EmployeeCreatedEvent) error {
	return nil
}
