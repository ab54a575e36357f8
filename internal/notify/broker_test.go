package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/crypticbroker/platform-api/internal/domain/application"
)

func TestBrokerFansOutToAllSubscribers(t *testing.T) {
	b := NewBroker()

	ch1, cancel1 := b.Subscribe()
	ch2, cancel2 := b.Subscribe()
	defer cancel1()
	defer cancel2()

	ev := StatusEvent{ApplicationID: 1, Previous: application.StatusDraft, Current: application.StatusSubmitted}
	b.Publish(ev)

	for _, ch := range []<-chan StatusEvent{ch1, ch2} {
		select {
		case got := <-ch:
			assert.Equal(t, application.StatusSubmitted, got.Current)
		case <-time.After(time.Second):
			t.Fatal("subscriber never received the event")
		}
	}
}

func TestBrokerCancelStopsDelivery(t *testing.T) {
	b := NewBroker()

	ch, cancel := b.Subscribe()
	cancel()

	// Publishing after cancel must not panic on the closed channel.
	b.Publish(StatusEvent{ApplicationID: 1})

	_, open := <-ch
	assert.False(t, open)
}

func TestBrokerDropsWhenSubscriberIsFull(t *testing.T) {
	b := NewBroker()

	ch, cancel := b.Subscribe()
	defer cancel()

	for i := 0; i < 50; i++ {
		b.Publish(StatusEvent{ApplicationID: uint(i)})
	}

	// The buffer holds 16; the rest were dropped instead of blocking.
	count := 0
	for {
		select {
		case <-ch:
			count++
		default:
			assert.Equal(t, 16, count)
			return
		}
	}
}

func TestBrokerCancelTwiceIsSafe(t *testing.T) {
	b := NewBroker()

	_, cancel := b.Subscribe()
	cancel()
	cancel()
}
