package events

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

const (
	publishTimeout     = 3 * time.Second
	maxPublishAttempts = 3
)

// KafkaProducer writes case events to kafka topic keyed by case id
type KafkaProducer struct {
	writer *kafka.Writer
	topic  string
}

// NewKafkaProducer builds producer, all methods are no-op if brokers or topic are empty.
// Writes are asynchronous, delivery failures are only logged.
func NewKafkaProducer(brokers []string, topic string) *KafkaProducer {
	if len(brokers) == 0 || topic == "" {
		return &KafkaProducer{}
	}
	return &KafkaProducer{
		topic: topic,
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: 10 * time.Millisecond,
			WriteTimeout: publishTimeout,
			MaxAttempts:  maxPublishAttempts,
			Async:        true,
			Completion: func(messages []kafka.Message, err error) {
				if err != nil {
					logrus.WithFields(logrus.Fields{"topic": topic, "messages": len(messages)}).
						Errorf("kafka: failed to write case events - %v", err)
				}
			},
		},
	}
}

// Enabled reports whether producer has a writer
func (p *KafkaProducer) Enabled() bool {
	return p.writer != nil
}

func (p *KafkaProducer) Publish(ctx context.Context, e Event) {
	if p.writer == nil {
		return
	}

	body, err := json.Marshal(e)
	if err != nil {
		logrus.Errorf("kafka: failed to marshal case event - %v", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(e.CaseID, 10)),
		Value: body,
		Time:  e.CreatedAt,
	}

	// async writer only enqueues, request cancellation must not drop the event
	if err := p.writer.WriteMessages(context.WithoutCancel(ctx), msg); err != nil {
		logrus.WithFields(logrus.Fields{"topic": p.topic, "type": e.Type, "caseId": e.CaseID}).
			Errorf("kafka: failed to enqueue case event - %v", err)
	}
}

// Close closes writer
func (p *KafkaProducer) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

// ParseBrokers splits "host1:9092,host2:9092" into broker addresses
func ParseBrokers(s string) []string {
	var out []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
