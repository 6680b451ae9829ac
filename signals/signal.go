// Package signals provides reactive values for component state.
package signals

import "sync"

// Signal is a value that notifies subscribers when it changes.
type Signal[T any] struct {
	mu     sync.RWMutex
	value  T
	nextID uint64
	subs   map[uint64]func()
	order  []uint64
}

// NewSignal creates a Signal holding initial.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{value: initial, subs: make(map[uint64]func())}
}

// Get returns the current value.
func (s *Signal[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set replaces the value and notifies subscribers.
func (s *Signal[T]) Set(v T) {
	s.Update(func(T) T { return v })
}

// Update applies fn to the current value under the lock, stores the result
// and notifies subscribers. It returns the new value.
// Subscribers run after the lock is released, on the caller's goroutine.
func (s *Signal[T]) Update(fn func(T) T) T {
	s.mu.Lock()
	s.value = fn(s.value)
	v := s.value
	subs := make([]func(), 0, len(s.order))
	for _, id := range s.order {
		subs = append(subs, s.subs[id])
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub()
	}
	return v
}

// Subscribe registers fn to run after every change.
// The returned func removes the subscription; calling it more than once is a no-op.
func (s *Signal[T]) Subscribe(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.order = append(s.order, id)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subs[id]; !ok {
			return
		}
		delete(s.subs, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}

// Subscribers returns the number of active subscriptions.
func (s *Signal[T]) Subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}
