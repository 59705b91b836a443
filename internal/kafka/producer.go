package kafka

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
)

// Producer publishes to one topic. The writer is created lazily on the first
// publish and reused afterwards; concurrent first publishers converge on the
// single writer through the sync.Once. The writer itself is safe for
// concurrent WriteMessages calls.
type Producer struct {
	brokers []string
	topic   string
	log     *slog.Logger

	once sync.Once
	w    *kafka.Writer
}

func NewProducer(brokers []string, topic string, log *slog.Logger) *Producer {
	return &Producer{brokers: brokers, topic: topic, log: log}
}

func (p *Producer) writer() *kafka.Writer {
	p.once.Do(func() {
		p.w = &kafka.Writer{
			Addr:         kafka.TCP(p.brokers...),
			Topic:        p.topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		}
		p.log.Info("kafka producer connected", "topic", p.topic)
	})
	return p.w
}

// Publish writes one keyed message. No retry: the caller decides whether a
// failure matters.
func (p *Producer) Publish(ctx context.Context, key, value []byte, headers ...kafka.Header) error {
	return p.writer().WriteMessages(ctx, kafka.Message{
		Key:     key,
		Value:   value,
		Time:    time.Now(),
		Headers: headers,
	})
}

// Close flushes and closes the writer if one was ever created. Call after all
// publishers have stopped.
func (p *Producer) Close() error {
	if p.w == nil {
		return nil
	}
	return p.w.Close()
}
