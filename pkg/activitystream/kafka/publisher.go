// Package kafka provides an activitystream.Publisher writing to a Kafka topic
// with franz-go.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"lifeguard/pkg/activitystream"
	"lifeguard/pkg/domain"
	"lifeguard/pkg/logger"

	"github.com/twmb/franz-go/pkg/kgo"
	"go.uber.org/zap"
)

// Options configures the publisher.
type Options struct {
	Brokers []string
	Topic   string
	// ClientID identifies the producer to the brokers.
	ClientID string
}

// Publisher is safe for concurrent use.
type Publisher struct {
	client *kgo.Client
	topic  string
}

var _ activitystream.Publisher = (*Publisher)(nil)

// New connects a producer to the given brokers.
func New(opts Options) (*Publisher, error) {
	if len(opts.Brokers) == 0 {
		return nil, fmt.Errorf("could not create kafka publisher: no brokers configured")
	}
	if opts.ClientID == "" {
		opts.ClientID = "lifeguard"
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(opts.Brokers...),
		kgo.ClientID(opts.ClientID),
		kgo.DefaultProduceTopic(opts.Topic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create kafka client: %w", err)
	}

	return &Publisher{client: client, topic: opts.Topic}, nil
}

// NewRecord encodes activity as a record keyed by user so a user's events
// stay ordered within a partition.
func NewRecord(topic string, activity domain.Activity) (*kgo.Record, error) {
	payload, err := json.Marshal(activity)
	if err != nil {
		return nil, fmt.Errorf("could not marshal activity: %w", err)
	}

	return &kgo.Record{
		Topic: topic,
		Key:   []byte(activity.UserID.String()),
		Value: payload,
		Headers: []kgo.RecordHeader{
			{Key: "action", Value: []byte(activity.Action)},
			{Key: "activity_id", Value: []byte(activity.ID.String())},
		},
		Timestamp: activity.OccurredAt,
	}, nil
}

// Publish produces activity and waits for the brokers to acknowledge it.
func (p *Publisher) Publish(ctx context.Context, activity domain.Activity) error {
	record, err := NewRecord(p.topic, activity)
	if err != nil {
		return err
	}

	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("could not publish activity to %s: %w", p.topic, err)
	}

	logger.Debug(ctx, "activity published", zap.String("topic", p.topic), zap.String("action", activity.Action))

	return nil
}

// Close flushes pending records and closes the client.
func (p *Publisher) Close(ctx context.Context) error {
	if err := p.client.Flush(ctx); err != nil {
		return fmt.Errorf("could not flush kafka client: %w", err)
	}
	p.client.Close()

	return nil
}
