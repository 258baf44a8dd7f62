package ledger

import (
	"testing"

	"quorumwallet/internal/identity"
)

func TestAppend_AssignsDenseIDs(t *testing.T) {
	s := NewInMemoryStore()

	for i := uint64(0); i < 5; i++ {
		a := s.Append("target", 10, []byte("payload"))
		if a.ID != i {
			t.Errorf("Expected id %d, got %d", i, a.ID)
		}
	}
	if s.NextID() != 5 {
		t.Errorf("Expected nextID 5, got %d", s.NextID())
	}
}

func TestAppend_StartsEmpty(t *testing.T) {
	s := NewInMemoryStore()

	a := s.Append("target", 1, nil)
	if a.Executed {
		t.Error("New action must not be executed")
	}
	if a.Confirmations() != 0 {
		t.Errorf("New action must have no confirmations, got %d", a.Confirmations())
	}
}

func TestGet_UnknownID(t *testing.T) {
	s := NewInMemoryStore()

	if a := s.Get(0); a != nil {
		t.Errorf("Expected nil for unknown id, got %+v", a)
	}
}

func TestGet_ReturnsCopy(t *testing.T) {
	s := NewInMemoryStore()
	s.Append("target", 1, []byte("p"))

	a := s.Get(0)
	a.Executed = true
	a.ConfirmedBy[identity.Address("alice")] = true
	a.Payload[0] = 'x'

	fresh := s.Get(0)
	if fresh.Executed {
		t.Error("Mutating a Get result must not affect the store")
	}
	if fresh.Confirmations() != 0 {
		t.Error("Mutating a Get result's confirmations must not affect the store")
	}
	if string(fresh.Payload) != "p" {
		t.Error("Mutating a Get result's payload must not affect the store")
	}
}

func TestPut_RoundTrip(t *testing.T) {
	s := NewInMemoryStore()
	s.Append("target", 1, nil)

	a := s.Get(0)
	a.ConfirmedBy[identity.Address("alice")] = true
	a.Executed = true
	if err := s.Put(a); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got := s.Get(0)
	if !got.Executed {
		t.Error("Expected executed=true after Put")
	}
	if !got.Confirmed("alice") {
		t.Error("Expected alice's confirmation after Put")
	}
}

func TestPut_UnknownID(t *testing.T) {
	s := NewInMemoryStore()

	err := s.Put(&Action{ID: 7})
	if err == nil {
		t.Error("Expected error for Put with unknown id")
	}
}

func TestList_IDOrder(t *testing.T) {
	s := NewInMemoryStore()
	s.Append("a", 1, nil)
	s.Append("b", 2, nil)
	s.Append("c", 3, nil)

	actions := s.List()
	if len(actions) != 3 {
		t.Fatalf("Expected 3 actions, got %d", len(actions))
	}
	for i, a := range actions {
		if a.ID != uint64(i) {
			t.Errorf("Position %d: expected id %d, got %d", i, i, a.ID)
		}
	}
}
