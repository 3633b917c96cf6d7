// Package events carries change notifications between views. A notification
// has no payload: it is an invalidation signal, and listeners re-read state
// from the owning service.
package events

import "sync"

type Topic string

const TopicJournalsChanged Topic = "journals-changed"

type Bus struct {
	mu   sync.Mutex
	next int
	subs map[Topic]map[int]func()
}

func NewBus() *Bus {
	return &Bus{subs: make(map[Topic]map[int]func())}
}

// Subscribe registers fn for topic and returns an unsubscribe func.
func (b *Bus) Subscribe(topic Topic, fn func()) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]func())
	}
	id := b.next
	b.next++
	b.subs[topic][id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[topic], id)
	}
}

// Publish invokes every listener registered for topic, synchronously, in
// unspecified order. Listeners run outside the bus lock.
func (b *Bus) Publish(topic Topic) {
	b.mu.Lock()
	fns := make([]func(), 0, len(b.subs[topic]))
	for _, fn := range b.subs[topic] {
		fns = append(fns, fn)
	}
	b.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
