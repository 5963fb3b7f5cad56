package timeline

import "sync"

// Synchronized serializes access to a Timeline so that it can be shared
// between goroutines. Queries hold a read lock, mutations a write lock, so
// no reader ever observes an Insert half way through
type Synchronized[T, P any] struct {
	tl *Timeline[T, P]
	mu sync.RWMutex
}

// NewSynchronized takes ownership of tl. The caller must stop using tl
// directly
func NewSynchronized[T, P any](tl *Timeline[T, P]) *Synchronized[T, P] {
	return &Synchronized[T, P]{tl: tl}
}

func (s *Synchronized[T, P]) Insert(ev Event[T, P]) ([]Event[T, P], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tl.Insert(ev)
}

func (s *Synchronized[T, P]) EventAt(at T) (Event[T, P], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tl.EventAt(at)
}

func (s *Synchronized[T, P]) EventsInRange(
	start, end T,
) ([]Event[T, P], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tl.EventsInRange(start, end)
}

func (s *Synchronized[T, P]) Remove(ev Event[T, P]) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tl.Remove(ev)
}

func (s *Synchronized[_, _]) Validate() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tl.Validate()
}

func (s *Synchronized[T, P]) Events() []Event[T, P] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tl.Events()
}

func (s *Synchronized[_, _]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tl.Clear()
}

func (s *Synchronized[_, _]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tl.Len()
}

func (s *Synchronized[_, _]) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tl.String()
}

// Update runs fn with exclusive access to the underlying Timeline, letting a
// caller perform several operations as one step
func (s *Synchronized[T, P]) Update(fn func(*Timeline[T, P]) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.tl)
}
