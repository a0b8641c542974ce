package store

import (
	"encoding/json"
	"log"
	"sync"
)

// Snapshot is one delivered value of a subscription: the full current
// state beneath a path, never a diff. Records are keyed by the path
// remainder relative to the subscribed path (the bare record key for
// direct children, date/slot/key for nested entries).
type Snapshot struct {
	Exists  bool
	Records map[string]json.RawMessage
}

type subscription struct {
	id   int
	path string
	fn   func(Snapshot)
}

// Hub fans mutation notifications out to path subscribers. A
// subscription fires when the mutated path and the subscribed path lie
// on the same branch of the tree, in either direction.
type Hub struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]*subscription
	load   func(path string) (Snapshot, error)
}

func NewHub(load func(path string) (Snapshot, error)) *Hub {
	return &Hub{
		subs: make(map[int]*subscription),
		load: load,
	}
}

// Subscribe registers fn for path and delivers the current snapshot
// immediately. The returned release function is idempotent and must be
// called on teardown so no orphaned subscription keeps firing.
func (h *Hub) Subscribe(path string, fn func(Snapshot)) (func(), error) {
	snap, err := h.load(path)
	if err != nil {
		return nil, err
	}

	h.mu.Lock()
	h.nextID++
	id := h.nextID
	h.subs[id] = &subscription{id: id, path: path, fn: fn}
	h.mu.Unlock()

	fn(snap)

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
		})
	}, nil
}

// Notify re-reads and re-delivers the snapshot of every subscription
// affected by a mutation at path.
func (h *Hub) Notify(path string) {
	h.mu.Lock()
	affected := make([]*subscription, 0, len(h.subs))
	for _, sub := range h.subs {
		if isAncestor(sub.path, path) || isAncestor(path, sub.path) {
			affected = append(affected, sub)
		}
	}
	h.mu.Unlock()

	for _, sub := range affected {
		snap, err := h.load(sub.path)
		if err != nil {
			log.Printf("Failed to load snapshot for %s: %v", sub.path, err)
			continue
		}
		// Skip subscriptions released while the snapshot was loading.
		// A release landing after this check can still see one
		// in-flight delivery; sinks must tolerate that (the websocket
		// bridge keeps its send channel open for this reason).
		h.mu.Lock()
		_, live := h.subs[sub.id]
		h.mu.Unlock()
		if !live {
			continue
		}
		sub.fn(snap)
	}
}

// SubscriberCount returns the number of live subscriptions.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
