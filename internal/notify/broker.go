package notify

import (
	"sync"
	"time"

	"github.com/crypticbroker/platform-api/internal/domain/application"
)

// StatusEvent is pushed to websocket subscribers when an application's
// review status changes.
type StatusEvent struct {
	ApplicationID uint               `json:"application_id"`
	ProjectID     uint               `json:"project_id"`
	TargetOrgID   uint               `json:"target_org_id"`
	Previous      application.Status `json:"previous"`
	Current       application.Status `json:"current"`
	At            time.Time          `json:"at"`
}

// Broker fans StatusEvents out to subscribers. Slow subscribers drop
// events rather than block publishers.
type Broker struct {
	mu   sync.RWMutex
	subs map[chan StatusEvent]struct{}
}

func NewBroker() *Broker {
	return &Broker{subs: make(map[chan StatusEvent]struct{})}
}

// Subscribe registers a new subscriber. Call the returned cancel func to
// unsubscribe; the channel is closed afterwards.
func (b *Broker) Subscribe() (<-chan StatusEvent, func()) {
	ch := make(chan StatusEvent, 16)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if _, ok := b.subs[ch]; ok {
			delete(b.subs, ch)
			close(ch)
		}
		b.mu.Unlock()
	}
	return ch, cancel
}

func (b *Broker) Publish(ev StatusEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
