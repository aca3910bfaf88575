package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	events []Event
}

func (p *recordingPublisher) Publish(_ context.Context, e Event) {
	p.events = append(p.events, e)
}

func TestFanout(t *testing.T) {
	first := &recordingPublisher{}
	second := &recordingPublisher{}

	p := Fanout(first, nil, second)
	p.Publish(context.Background(), Event{Type: CaseCreated, CaseID: 5001, CreatedAt: time.Now()})

	require.Len(t, first.events, 1)
	require.Len(t, second.events, 1)
	require.Equal(t, CaseCreated, second.events[0].Type)
}

func TestParseBrokers(t *testing.T) {
	cases := []struct {
		raw     string
		brokers []string
	}{
		{"", nil},
		{"kafka:9092", []string{"kafka:9092"}},
		{" kafka-1:9092, ,kafka-2:9092 ", []string{"kafka-1:9092", "kafka-2:9092"}},
	}

	for _, tt := range cases {
		require.Equal(t, tt.brokers, ParseBrokers(tt.raw), "ParseBrokers(%q)", tt.raw)
	}
}

func TestDisabledKafkaProducer(t *testing.T) {
	p := NewKafkaProducer(nil, "case-events")
	require.False(t, p.Enabled())

	p.Publish(context.Background(), Event{Type: CaseDeleted, CaseID: 1})
	require.NoError(t, p.Close())
}

func TestKafkaProducerDoesNotBlockOnUnreachableBroker(t *testing.T) {
	// nothing listens on port 1, every write attempt is refused
	p := NewKafkaProducer([]string{"127.0.0.1:1"}, "case-events")
	require.True(t, p.Enabled())
	defer p.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	started := time.Now()
	for i := 0; i < 5; i++ {
		p.Publish(ctx, Event{Type: CaseCreated, CaseID: int64(5001 + i), CreatedAt: time.Now()})
	}
	require.Less(t, time.Since(started), publishTimeout, "publish must return without waiting for broker")
}
