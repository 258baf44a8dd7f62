package ledger

import (
	"sync"

	"github.com/pkg/errors"

	"quorumwallet/internal/identity"
)

// Action is a proposed outgoing call awaiting confirmations.
type Action struct {
	ID          uint64
	Target      string
	Value       uint64
	Payload     []byte
	Executed    bool
	ConfirmedBy map[identity.Address]bool
}

// Confirmed reports whether owner has a recorded confirmation.
func (a *Action) Confirmed(owner identity.Address) bool {
	return a.ConfirmedBy[owner]
}

// Confirmations returns the number of recorded confirmations.
func (a *Action) Confirmations() int {
	return len(a.ConfirmedBy)
}

// Copy returns a deep copy of the action.
func (a *Action) Copy() *Action {
	confirmed := make(map[identity.Address]bool, len(a.ConfirmedBy))
	for owner := range a.ConfirmedBy {
		confirmed[owner] = true
	}
	return &Action{
		ID:          a.ID,
		Target:      a.Target,
		Value:       a.Value,
		Payload:     append([]byte(nil), a.Payload...),
		Executed:    a.Executed,
		ConfirmedBy: confirmed,
	}
}

// Store defines the interface for action storage.
type Store interface {
	// Append creates a new action with the next dense id and an empty
	// confirmation set, and returns a copy of it.
	Append(target string, value uint64, payload []byte) *Action
	// Get retrieves an action by id. Returns nil if no such id.
	Get(id uint64) *Action
	// Put overwrites an existing action. Returns an error for unknown ids;
	// ids are assigned by Append only.
	Put(a *Action) error
	// NextID returns the id the next Append will assign.
	NextID() uint64
	// List returns all actions in id order.
	List() []*Action
}

// InMemoryStore is an in-memory implementation of Store.
// It is thread-safe and returns defensive copies so callers can never
// mutate ledger state except through Put.
type InMemoryStore struct {
	mu      sync.RWMutex
	actions map[uint64]*Action
	nextID  uint64
}

// NewInMemoryStore creates a new in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		actions: make(map[uint64]*Action),
	}
}

// Append creates a new action with the next dense id.
func (s *InMemoryStore) Append(target string, value uint64, payload []byte) *Action {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := &Action{
		ID:          s.nextID,
		Target:      target,
		Value:       value,
		Payload:     append([]byte(nil), payload...),
		ConfirmedBy: make(map[identity.Address]bool),
	}
	s.actions[a.ID] = a
	s.nextID++
	return a.Copy()
}

// Get retrieves an action by id.
func (s *InMemoryStore) Get(id uint64) *Action {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, exists := s.actions[id]
	if !exists {
		return nil
	}
	return a.Copy()
}

// Put overwrites an existing action.
func (s *InMemoryStore) Put(a *Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.actions[a.ID]; !exists {
		return errors.Errorf("unknown action id %d", a.ID)
	}
	s.actions[a.ID] = a.Copy()
	return nil
}

// NextID returns the id the next Append will assign.
func (s *InMemoryStore) NextID() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextID
}

// List returns all actions in id order.
func (s *InMemoryStore) List() []*Action {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Action, 0, len(s.actions))
	for id := uint64(0); id < s.nextID; id++ {
		if a, exists := s.actions[id]; exists {
			out = append(out, a.Copy())
		}
	}
	return out
}
