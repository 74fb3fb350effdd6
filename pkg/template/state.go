package template

import "sync"

// slot names one key of one template object.
type slot struct {
	node any
	key  string
}

// StateStore holds the state that outlives a single generation: the
// increment offsets of "key|+step" numbers and the cursors of
// "key|+step" arrays. Entries are keyed by template node identity.
// It is safe for concurrent use via an internal mutex.
type StateStore struct {
	mu      sync.Mutex
	offsets map[slot]int
	cursors map[any]int
}

// NewStateStore creates an empty state store.
func NewStateStore() *StateStore {
	return &StateStore{
		offsets: make(map[slot]int),
		cursors: make(map[any]int),
	}
}

// Offset returns how much the number at key of node has been incremented.
// A nil node has no state.
func (s *StateStore) Offset(node any, key string) int {
	if node == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offsets[slot{node, key}]
}

// Advance grows the increment offset of key in node by step.
func (s *StateStore) Advance(node any, key string, step int) {
	if node == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offsets[slot{node, key}] += step
}

// Cursor returns the current index into the array node of the given
// length and then moves the cursor forward by step. A nil node always
// yields 0.
func (s *StateStore) Cursor(node any, length, step int) int {
	if node == nil || length <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.cursors[node]
	s.cursors[node] = cur + step
	i := cur % length
	if i < 0 {
		i += length
	}
	return i
}

// Reset forgets all offsets and cursors.
func (s *StateStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.offsets)
	clear(s.cursors)
}
