package orders

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kafkago "github.com/segmentio/kafka-go"
)

type sinkMsg struct {
	key     string
	event   OutboundOrderEvent
	headers []kafkago.Header
}

type fakeSink struct {
	mu   sync.Mutex
	fail bool
	msgs []sinkMsg
}

func (f *fakeSink) Publish(_ context.Context, key, value []byte, headers ...kafkago.Header) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("broker unavailable")
	}
	var ev OutboundOrderEvent
	if err := json.Unmarshal(value, &ev); err != nil {
		return err
	}
	f.msgs = append(f.msgs, sinkMsg{key: string(key), event: ev, headers: headers})
	return nil
}

func (f *fakeSink) published() []sinkMsg {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sinkMsg(nil), f.msgs...)
}

func newTestService() (*Service, *fakeSink) {
	sink := &fakeSink{}
	svc := &Service{
		Repo:   NewMemoryRepo(),
		Events: sink,
		Log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return svc, sink
}

func TestCreateOrder(t *testing.T) {
	svc, sink := newTestService()
	ctx := context.Background()

	o, err := svc.Create(ctx, CreateOrderInput{ProductID: 1, ProductName: "Widget", Quantity: 2, TotalPrice: 19.98})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, 2, o.Quantity)
	assert.NotZero(t, o.ID)
	assert.False(t, o.CreatedAt.IsZero())

	msgs := sink.published()
	require.Len(t, msgs, 1)
	assert.Equal(t, "1", msgs[0].key)
	assert.Equal(t, EventCreated, msgs[0].event.EventType)
	assert.Equal(t, o.ID, msgs[0].event.OrderID)
	assert.Equal(t, int64(1), msgs[0].event.ProductID)
	assert.Equal(t, "Widget", msgs[0].event.ProductName)
	assert.Equal(t, 19.98, msgs[0].event.TotalPrice)
	assert.Equal(t, StatusPending, msgs[0].event.Status)
	assert.NotZero(t, msgs[0].event.Timestamp)
}

func TestCreateOrderValidationBlocksPublish(t *testing.T) {
	svc, sink := newTestService()

	_, err := svc.Create(context.Background(), CreateOrderInput{ProductID: 1, ProductName: "Widget", Quantity: 0, TotalPrice: 5})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, sink.published())

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUpdateStatus(t *testing.T) {
	svc, sink := newTestService()
	ctx := context.Background()

	o, err := svc.Create(ctx, CreateOrderInput{ProductID: 1, ProductName: "Widget", Quantity: 1, TotalPrice: 9.99})
	require.NoError(t, err)

	got, err := svc.UpdateStatus(ctx, o.ID, "CONFIRMED")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, got.Status)

	msgs := sink.published()
	require.Len(t, msgs, 2)
	assert.Equal(t, EventUpdated, msgs[1].event.EventType)
	assert.Equal(t, StatusConfirmed, msgs[1].event.Status)
}

func TestUpdateStatusPermissive(t *testing.T) {
	// no transition table: COMPLETED back to PENDING is accepted
	svc, _ := newTestService()
	ctx := context.Background()

	o, err := svc.Create(ctx, CreateOrderInput{ProductID: 1, ProductName: "Widget", Quantity: 1, TotalPrice: 1})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, o.ID, "COMPLETED")
	require.NoError(t, err)
	got, err := svc.UpdateStatus(ctx, o.ID, "PENDING")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, got.Status)
}

func TestUpdateStatusInvalid(t *testing.T) {
	svc, sink := newTestService()
	ctx := context.Background()

	o, err := svc.Create(ctx, CreateOrderInput{ProductID: 1, ProductName: "Widget", Quantity: 1, TotalPrice: 1})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, o.ID, "BOGUS")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Len(t, sink.published(), 1) // only the CREATED event

	got, err := svc.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, got.Status)
}

func TestUpdateStatusNotFound(t *testing.T) {
	svc, sink := newTestService()

	_, err := svc.UpdateStatus(context.Background(), 99, "CONFIRMED")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, sink.published())
}

func TestDeleteOrder(t *testing.T) {
	svc, sink := newTestService()
	ctx := context.Background()

	o, err := svc.Create(ctx, CreateOrderInput{ProductID: 1, ProductName: "Widget", Quantity: 1, TotalPrice: 1})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, o.ID))
	_, err = svc.Get(ctx, o.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	msgs := sink.published()
	require.Len(t, msgs, 2)
	assert.Equal(t, EventDeleted, msgs[1].event.EventType)
	assert.Equal(t, o.ID, msgs[1].event.OrderID)
}

func TestDeleteOrderNotFound(t *testing.T) {
	svc, sink := newTestService()

	err := svc.Delete(context.Background(), 1234)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, sink.published())
}

func TestPublishFailureInvisibleToCaller(t *testing.T) {
	svc, sink := newTestService()
	sink.fail = true
	ctx := context.Background()

	o, err := svc.Create(ctx, CreateOrderInput{ProductID: 1, ProductName: "Widget", Quantity: 2, TotalPrice: 19.98})
	require.NoError(t, err)

	// the mutation is durable even though the event was lost
	got, err := svc.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, got.Status)

	_, err = svc.UpdateStatus(ctx, o.ID, "CANCELLED")
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, o.ID))
}

func TestListNewestFirst(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateOrderInput{ProductID: 1, ProductName: "Widget", Quantity: 1, TotalPrice: 1})
	require.NoError(t, err)
	second, err := svc.Create(ctx, CreateOrderInput{ProductID: 2, ProductName: "Gadget", Quantity: 1, TotalPrice: 2})
	require.NoError(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
}
