// Package store provides a small observable value container for holding
// form state between edits. Instances are constructed explicitly and
// passed to consumers — there is no package-level store, so tests stay
// isolated from each other.
package store

import "sync"

// Store holds a single value of type T and notifies subscribers when it
// changes. All methods are safe for concurrent use. Subscribers run
// synchronously on the goroutine that committed the change, outside the
// store's lock, so a subscriber may call back into the store.
type Store[T any] struct {
	mu    sync.RWMutex
	value T
	subs  map[int]func(T)
	next  int
}

// New returns a store seeded with an initial value.
func New[T any](initial T) *Store[T] {
	return &Store[T]{value: initial, subs: make(map[int]func(T))}
}

// Get returns the current value.
func (s *Store[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set replaces the value and notifies subscribers.
func (s *Store[T]) Set(value T) {
	s.Update(func(T) T { return value })
}

// Update applies fn to the current value, stores the result and notifies
// subscribers with it.
func (s *Store[T]) Update(fn func(T) T) {
	s.mu.Lock()
	s.value = fn(s.value)
	value := s.value
	subs := make([]func(T), 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub(value)
	}
}

// Subscribe registers fn to run on every change and returns a cancel
// function. Cancel is idempotent.
func (s *Store[T]) Subscribe(fn func(T)) (cancel func()) {
	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}
