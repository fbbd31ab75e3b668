package kafka

import (
	"context"
	"fmt"

	"github.com/twmb/franz-go/pkg/kgo"
)

// Message is one record received from the inbound topic. It keeps the
// underlying record so Ack can commit exactly this offset.
type Message struct {
	Topic   string
	Key     []byte
	Value   []byte
	Headers map[string]string

	rec *kgo.Record
}

// Consumer pulls one message at a time from the inbound topic with explicit
// commits, giving the poll loop get/ack semantics over a consumer group.
type Consumer struct {
	client *kgo.Client
}

// NewConsumer connects a consumer-group client for the given topic. Auto
// commit is disabled: an offset is only committed when the poll loop acks.
func NewConsumer(brokers []string, group, topic string) (*Consumer, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.ConsumerGroup(group),
		kgo.ConsumeTopics(topic),
		kgo.DisableAutoCommit(),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka consumer: %w", err)
	}
	return &Consumer{client: client}, nil
}

// Get receives at most one message. It returns (nil, nil) when nothing is
// pending inside the context deadline.
func (c *Consumer) Get(ctx context.Context) (*Message, error) {
	fetches := c.client.PollRecords(ctx, 1)
	if fetches.IsClientClosed() {
		return nil, nil
	}
	if err := fetches.Err0(); err != nil && ctx.Err() != nil {
		return nil, nil
	}
	var msg *Message
	fetches.EachRecord(func(rec *kgo.Record) {
		headers := make(map[string]string, len(rec.Headers))
		for _, h := range rec.Headers {
			headers[h.Key] = string(h.Value)
		}
		msg = &Message{
			Topic:   rec.Topic,
			Key:     rec.Key,
			Value:   rec.Value,
			Headers: headers,
			rec:     rec,
		}
	})
	if msg == nil {
		if err := fetches.Err(); err != nil {
			return nil, fmt.Errorf("poll inbound topic: %w", err)
		}
	}
	return msg, nil
}

// Ack commits the message's offset. Failures surface to the caller, which
// logs them; the message will be redelivered after a rebalance at worst.
func (c *Consumer) Ack(ctx context.Context, msg *Message) error {
	if msg == nil || msg.rec == nil {
		return nil
	}
	if err := c.client.CommitRecords(ctx, msg.rec); err != nil {
		return fmt.Errorf("commit offset %d: %w", msg.rec.Offset, err)
	}
	return nil
}

// Close tears down the group session. In-flight processing is not cancelled.
func (c *Consumer) Close() {
	c.client.Close()
}
