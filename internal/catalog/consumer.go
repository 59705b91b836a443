package catalog

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/segmentio/kafka-go"

	kafkax "github.com/ryan-peirce/willful-waste/internal/kafka"
	"github.com/ryan-peirce/willful-waste/internal/metrics"
)

// Consumer folds the product-events stream into the cache. Messages are
// processed strictly in order, one at a time, and always committed: cache
// maintenance is best-effort and must never stall the stream.
type Consumer struct {
	reader *kafka.Reader
	cache  *Cache
	log    *slog.Logger
}

func NewConsumer(brokers []string, group, topic string, cache *Cache, log *slog.Logger) *Consumer {
	return &Consumer{
		reader: kafkax.NewReader(brokers, group, topic),
		cache:  cache,
		log:    log,
	}
}

// Run blocks until ctx is cancelled, then closes the reader so the group
// rebalances cleanly. A cancelled fetch is a normal exit, not an error.
func (c *Consumer) Run(ctx context.Context) error {
	defer c.reader.Close()

	for {
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		c.apply(m.Value)
		if err := c.reader.CommitMessages(ctx, m); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.log.Error("commit product event failed", "err", err)
		}
	}
}

// apply folds one raw message into the cache. Bad payloads are skipped, never
// fatal.
func (c *Consumer) apply(value []byte) {
	var ev ProductEvent
	if err := json.Unmarshal(value, &ev); err != nil {
		metrics.CatalogEventsSkipped.Inc()
		c.log.Error("drop malformed product event", "err", err)
		return
	}
	if ev.ProductID <= 0 {
		metrics.CatalogEventsSkipped.Inc()
		c.log.Error("drop product event without product id", "event_type", ev.EventType)
		return
	}

	switch ev.EventType {
	case eventCreated, eventUpdated:
		c.cache.Upsert(ProductSnapshot{
			ProductID:     ev.ProductID,
			Name:          ev.Name,
			Price:         ev.Price,
			StockQuantity: ev.StockQuantity,
			Category:      ev.Category,
		})
		metrics.CatalogEventsApplied.Inc()
		c.log.Info("product cache updated", "event_type", ev.EventType, "product_id", ev.ProductID)
	case eventDeleted:
		c.cache.Remove(ev.ProductID)
		metrics.CatalogEventsApplied.Inc()
		c.log.Info("product removed from cache", "product_id", ev.ProductID)
	default:
		metrics.CatalogEventsSkipped.Inc()
		c.log.Warn("drop product event with unknown type", "event_type", ev.EventType, "product_id", ev.ProductID)
	}
	metrics.CatalogProducts.Set(float64(c.cache.Len()))
}
