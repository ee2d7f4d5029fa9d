package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastEventDeliversToClients(t *testing.T) {
	hub := NewHub()
	client := &Client{Hub: hub, Send: make(chan []byte, 8)}
	hub.Clients[client] = true

	hub.broadcastEvent(&Event{Type: EventBookingCreated, Data: map[string]any{"id": 1}, Timestamp: time.Now()})

	select {
	case raw := <-client.Send:
		var event Event
		require.NoError(t, json.Unmarshal(raw, &event))
		assert.Equal(t, EventBookingCreated, event.Type)
	default:
		t.Fatal("expected an event on the client send channel")
	}
}

func TestBroadcastEventDropsSlowClient(t *testing.T) {
	hub := NewHub()
	slow := &Client{Hub: hub, Send: make(chan []byte)} // unbuffered, no reader
	hub.Clients[slow] = true

	hub.broadcastEvent(&Event{Type: EventInquiryCreated, Timestamp: time.Now()})

	assert.Equal(t, 0, hub.ClientCount())
	_, open := <-slow.Send
	assert.False(t, open, "slow client's send channel should be closed")
}

func TestNotifyNeverBlocks(t *testing.T) {
	hub := NewHub()

	// Nobody is draining Broadcast; overfill it past its buffer
	done := make(chan struct{})
	go func() {
		for i := 0; i < 2*cap(hub.Broadcast); i++ {
			hub.NotifyBookingCreated(map[string]any{"i": i})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("notify blocked on a full event channel")
	}

	assert.Equal(t, cap(hub.Broadcast), len(hub.Broadcast))
}

func TestHubRegisterUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{Hub: hub, Send: make(chan []byte, 8)}
	hub.Register <- client

	assert.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	hub.Unregister <- client
	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 10*time.Millisecond)
}
