package kafka

import (
	"context"
	"errors"

	"github.com/segmentio/kafka-go"
)

// NewReader builds a consumer-group reader that starts at the current offset,
// so a freshly started instance does not replay history.
func NewReader(brokers []string, group, topic string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:     brokers,
		GroupID:     group,
		Topic:       topic,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafka.LastOffset,
	})
}

// Ping dials the first broker and lists the cluster. Used at startup to fail
// fast instead of degrading silently.
func Ping(ctx context.Context, brokers []string) error {
	if len(brokers) == 0 {
		return errors.New("no kafka brokers configured")
	}
	conn, err := kafka.DialContext(ctx, "tcp", brokers[0])
	if err != nil {
		return err
	}
	defer conn.Close()
	_, err = conn.Brokers()
	return err
}
