// Package viewstore keeps live page views in memory, bounded by count and
// expired after a period of inactivity.
package viewstore

import (
	"container/list"
	"sync"
	"time"
)

const (
	// DefaultCapacity bounds the number of live views.
	DefaultCapacity = 1024
	// DefaultTTL expires views nobody has touched for this long.
	DefaultTTL = 30 * time.Minute
)

type entry[V any] struct {
	id        string
	value     V
	expiresAt time.Time
}

// Store maps view ids to values. Get and Put refresh an entry's expiry and
// recency; once full, Put evicts the least recently used entry.
type Store[V any] struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	now      func() time.Time
	order    *list.List
	entries  map[string]*list.Element
}

// Option configures a store.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// New builds a store. Non-positive capacity or ttl fall back to defaults.
func New[V any](capacity int, ttl time.Duration, opts ...Option) *Store[V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	o := options{now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.now == nil {
		o.now = time.Now
	}
	return &Store[V]{
		capacity: capacity,
		ttl:      ttl,
		now:      o.now,
		order:    list.New(),
		entries:  make(map[string]*list.Element),
	}
}

// Put stores value under id, replacing any previous value.
func (s *Store[V]) Put(id string, value V) {
	if s == nil || id == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.expireLocked(now)
	if el, ok := s.entries[id]; ok {
		e := el.Value.(*entry[V])
		e.value = value
		e.expiresAt = now.Add(s.ttl)
		s.order.MoveToFront(el)
		return
	}
	for s.order.Len() >= s.capacity {
		s.removeLocked(s.order.Back())
	}
	s.entries[id] = s.order.PushFront(&entry[V]{id: id, value: value, expiresAt: now.Add(s.ttl)})
}

// Get returns the live value for id.
func (s *Store[V]) Get(id string) (V, bool) {
	var zero V
	if s == nil || id == "" {
		return zero, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	el, ok := s.entries[id]
	if !ok {
		return zero, false
	}
	e := el.Value.(*entry[V])
	if !now.Before(e.expiresAt) {
		s.removeLocked(el)
		return zero, false
	}
	e.expiresAt = now.Add(s.ttl)
	s.order.MoveToFront(el)
	return e.value, true
}

// Delete removes id.
func (s *Store[V]) Delete(id string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if el, ok := s.entries[id]; ok {
		s.removeLocked(el)
	}
}

// Len returns the number of live entries.
func (s *Store[V]) Len() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireLocked(s.now())
	return s.order.Len()
}

// expireLocked drops expired entries from the cold end. The list is
// ordered by last touch, so expiry times decrease towards the back.
func (s *Store[V]) expireLocked(now time.Time) {
	for el := s.order.Back(); el != nil; el = s.order.Back() {
		if now.Before(el.Value.(*entry[V]).expiresAt) {
			return
		}
		s.removeLocked(el)
	}
}

func (s *Store[V]) removeLocked(el *list.Element) {
	if el == nil {
		return
	}
	e := s.order.Remove(el).(*entry[V])
	delete(s.entries, e.id)
}
