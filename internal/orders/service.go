package orders

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"

	kafkax "github.com/ryan-peirce/willful-waste/internal/kafka"
	"github.com/ryan-peirce/willful-waste/internal/metrics"
)

// EventSink is where committed order mutations get announced. Satisfied by
// *kafkax.Producer.
type EventSink interface {
	Publish(ctx context.Context, key, value []byte, headers ...kafkago.Header) error
}

var _ EventSink = (*kafkax.Producer)(nil)

// Service sequences every order operation: validate, persist, then publish
// from the persisted record. Safe for concurrent use; invocations share
// nothing but the repository and the sink.
type Service struct {
	Repo   Repository
	Events EventSink
	Log    *slog.Logger
}

func (s *Service) List(ctx context.Context) ([]Order, error) {
	return s.Repo.FindAll(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Order, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in CreateOrderInput) (Order, error) {
	if err := in.Validate(); err != nil {
		return Order{}, err
	}
	o, err := s.Repo.Create(ctx, in)
	if err != nil {
		return Order{}, err
	}
	metrics.OrdersCreated.Inc()
	s.publish(ctx, EventCreated, o)
	return o, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (Order, error) {
	st, err := ParseStatus(status)
	if err != nil {
		return Order{}, err
	}
	o, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return Order{}, err
	}
	o.Status = st
	o, err = s.Repo.Save(ctx, o)
	if err != nil {
		return Order{}, err
	}
	s.publish(ctx, EventUpdated, o)
	return o, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	o, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repo.Destroy(ctx, o); err != nil {
		return err
	}
	metrics.OrdersDeleted.Inc()
	s.publish(ctx, EventDeleted, o)
	return nil
}

// publish announces one committed mutation. Failures are logged and counted
// but never surfaced: the mutation is already durable and is not rolled back
// or retried.
func (s *Service) publish(ctx context.Context, eventType string, o Order) {
	ev := OutboundOrderEvent{
		EventType:   eventType,
		OrderID:     o.ID,
		ProductID:   o.ProductID,
		ProductName: o.ProductName,
		Quantity:    o.Quantity,
		TotalPrice:  o.TotalPrice,
		Status:      o.Status,
		Timestamp:   time.Now().UnixMilli(),
	}
	err := s.Events.Publish(ctx, PartitionKey(o.ID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-id", Value: []byte(uuid.NewString())},
		kafkago.Header{Key: "x-event-type", Value: []byte(eventType)},
	)
	if err != nil {
		metrics.PublishFailures.Inc()
		s.Log.Warn("order event publish failed", "event_type", eventType, "order_id", o.ID, "err", err)
		return
	}
	metrics.EventsPublished.Inc()
	s.Log.Info("order event published", "event_type", eventType, "order_id", o.ID)
}
