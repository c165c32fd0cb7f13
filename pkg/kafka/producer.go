package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/OfekRoodich/popcorn-palace/pkg/retry"
)

// ProducerConfig holds Kafka producer configuration
type ProducerConfig struct {
	Brokers  []string
	ClientID string

	// Retry configuration for transient publish failures
	MaxRetries    int
	RetryInterval time.Duration
}

// DefaultProducerConfig returns default producer configuration
func DefaultProducerConfig() *ProducerConfig {
	return &ProducerConfig{
		Brokers:       []string{"localhost:9092"},
		ClientID:      "popcorn-palace",
		MaxRetries:    3,
		RetryInterval: time.Second,
	}
}

// Producer publishes messages to Kafka using franz-go
type Producer struct {
	client  *kgo.Client
	retrier *retry.Retrier
	config  *ProducerConfig
}

// NewProducer creates a new Kafka producer
func NewProducer(cfg *ProducerConfig) (*Producer, error) {
	if cfg == nil {
		cfg = DefaultProducerConfig()
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ClientID(cfg.ClientID),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
		kgo.RequiredAcks(kgo.AllISRAcks()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka client: %w", err)
	}

	retrier := retry.New(&retry.Config{
		MaxRetries:      cfg.MaxRetries,
		InitialInterval: cfg.RetryInterval,
		MaxInterval:     30 * time.Second,
		Multiplier:      2.0,
		JitterFactor:    0.1,
	})

	return &Producer{
		client:  client,
		retrier: retrier,
		config:  cfg,
	}, nil
}

// Publish sends a message to the given topic, retrying transient failures
func (p *Producer) Publish(ctx context.Context, topic, key string, payload []byte) error {
	record := &kgo.Record{
		Topic: topic,
		Key:   []byte(key),
		Value: payload,
	}

	result := p.retrier.Do(ctx, func(ctx context.Context) error {
		return p.client.ProduceSync(ctx, record).FirstErr()
	})

	if result.Err != nil {
		return fmt.Errorf("failed to publish to %s after %d attempts: %w", topic, result.Attempts, result.LastError)
	}

	return nil
}

// Ping verifies connectivity to the brokers
func (p *Producer) Ping(ctx context.Context) error {
	return p.client.Ping(ctx)
}

// Close flushes buffered records and closes the client
func (p *Producer) Close() {
	if p.client != nil {
		p.client.Close()
	}
}
