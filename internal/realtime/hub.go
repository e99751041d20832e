package realtime

import (
	"sync"

	"github.com/1970jjh/minusproject/internal/game"
)

// Snapshot is one broadcast state. Version increases by one per accepted
// mutation within a room, so clients can detect missed or out-of-order
// frames.
type Snapshot struct {
	Version int        `json:"version"`
	Room    *game.Room `json:"room"`
}

type topic struct {
	version int
	last    *game.Room
	subs    map[chan Snapshot]struct{}
}

// Hub fans out room snapshots to subscribers, one topic per room code. It
// satisfies the service layer's Publisher. Subscribers that cannot keep up
// are dropped rather than allowed to stall the rest of the room.
type Hub struct {
	mu     sync.Mutex
	topics map[string]*topic
}

func NewHub() *Hub {
	return &Hub{topics: make(map[string]*topic)}
}

func (h *Hub) topicLocked(joinCode string) *topic {
	t, ok := h.topics[joinCode]
	if !ok {
		t = &topic{subs: make(map[chan Snapshot]struct{})}
		h.topics[joinCode] = t
	}
	return t
}

// PublishRoom broadcasts the room state to every subscriber of its code.
func (h *Hub) PublishRoom(r *game.Room) {
	h.mu.Lock()
	defer h.mu.Unlock()

	t := h.topicLocked(r.JoinCode)
	t.version++
	t.last = r
	snap := Snapshot{Version: t.version, Room: r}
	for ch := range t.subs {
		select {
		case ch <- snap:
		default:
			delete(t.subs, ch)
			close(ch)
		}
	}
}

// Prime seeds the topic's current state without notifying subscribers, so a
// subscriber arriving after a server restart still receives a snapshot
// before the next mutation. Does nothing once the topic has state.
func (h *Hub) Prime(r *game.Room) {
	h.mu.Lock()
	defer h.mu.Unlock()
	t := h.topicLocked(r.JoinCode)
	if t.last == nil {
		t.last = r
	}
}

// Subscribe registers a new subscriber for a room code and returns its
// snapshot channel plus a cancel function. The current state, if any, is
// delivered immediately. The channel is closed when the subscriber is
// cancelled, dropped as too slow, or the room is forgotten.
func (h *Hub) Subscribe(joinCode string) (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 8)

	h.mu.Lock()
	t := h.topicLocked(joinCode)
	t.subs[ch] = struct{}{}
	if t.last != nil {
		ch <- Snapshot{Version: t.version, Room: t.last}
	}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		t, ok := h.topics[joinCode]
		if !ok {
			return
		}
		if _, live := t.subs[ch]; live {
			delete(t.subs, ch)
			close(ch)
		}
		if len(t.subs) == 0 && t.last == nil {
			delete(h.topics, joinCode)
		}
	}
	return ch, cancel
}

// Forget drops the topic for a room, closing every subscriber channel. Used
// when a room is deleted.
func (h *Hub) Forget(joinCode string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	t, ok := h.topics[joinCode]
	if !ok {
		return
	}
	for ch := range t.subs {
		delete(t.subs, ch)
		close(ch)
	}
	delete(h.topics, joinCode)
}

// SubscriberCount reports how many subscribers a room currently has.
func (h *Hub) SubscriberCount(joinCode string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	if t, ok := h.topics[joinCode]; ok {
		return len(t.subs)
	}
	return 0
}
