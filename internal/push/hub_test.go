package push

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/umalmyha/fleetcases/internal/events"
)

func TestHubPublish(t *testing.T) {
	h := NewHub()

	subscriber := NewClient("subscriber")
	other := NewClient("other")
	idle := NewClient("idle")

	h.Register(subscriber)
	h.Register(other)
	h.Register(idle)
	require.Equal(t, 3, h.Clients())

	h.Subscribe(subscriber, "CUST900")
	h.Subscribe(other, "CUST100")

	h.Publish(context.Background(), events.Event{
		Type:       events.CaseCreated,
		CaseID:     5001,
		CustomerID: "CUST900",
		Message:    "Case #5001 created",
		CreatedAt:  time.Now().UTC(),
	})

	t.Log("only subscriber of the event customer receives message")
	{
		require.Len(t, subscriber.Send, 1)
		require.Empty(t, other.Send)
		require.Empty(t, idle.Send, "client without subscription must not receive anything")

		var e events.Event
		require.NoError(t, json.Unmarshal(<-subscriber.Send, &e))
		require.Equal(t, int64(5001), e.CaseID)
		require.Equal(t, events.CaseCreated, e.Type)
	}

	t.Log("full queue drops message instead of blocking")
	{
		for i := 0; i < clientBufferSize+5; i++ {
			h.Publish(context.Background(), events.Event{Type: events.CaseStatusChanged, CustomerID: "CUST900"})
		}
		require.Len(t, subscriber.Send, clientBufferSize)
	}

	t.Log("unregister closes send queue once")
	{
		h.Unregister(other)
		h.Unregister(other)
		_, open := <-other.Send
		require.False(t, open)
		require.Equal(t, 2, h.Clients())
	}
}

func TestParseSubscribe(t *testing.T) {
	msg, ok := ParseSubscribe([]byte(`{"action":"subscribe","customerId":"CUST900"}`))
	require.True(t, ok)
	require.Equal(t, "CUST900", msg.CustomerID)

	_, ok = ParseSubscribe([]byte(`{"action":"unsubscribe"}`))
	require.True(t, ok)

	_, ok = ParseSubscribe([]byte(`{"action":"ping"}`))
	require.False(t, ok, "unknown action must be ignored")

	_, ok = ParseSubscribe([]byte(`not json`))
	require.False(t, ok)
}
