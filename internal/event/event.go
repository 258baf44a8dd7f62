package event

import (
	"sync"
	"time"

	"quorumwallet/internal/identity"
)

// Type identifies a wallet event.
type Type int

const (
	Proposed Type = iota
	Confirmed
	Revoked
	Executed
	ExecutionFailed
)

// String returns the string representation of Type.
func (t Type) String() string {
	switch t {
	case Proposed:
		return "PROPOSED"
	case Confirmed:
		return "CONFIRMED"
	case Revoked:
		return "REVOKED"
	case Executed:
		return "EXECUTED"
	case ExecutionFailed:
		return "EXECUTION_FAILED"
	default:
		return "UNKNOWN"
	}
}

// Event is a single entry in the audit log. Owner is set only for
// Confirmed and Revoked.
type Event struct {
	Seq      uint64
	Type     Type
	ActionID uint64
	Owner    identity.Address
	At       time.Time
}

// Log is the append-only event log with subscriber fan-out.
type Log struct {
	mu      sync.RWMutex
	events  []Event
	subs    map[int]chan Event
	nextSub int
}

// NewLog creates an empty event log.
func NewLog() *Log {
	return &Log{
		subs: make(map[int]chan Event),
	}
}

// Append records an event and delivers it to all subscribers. Sequence
// numbers start at 1.
func (l *Log) Append(t Type, actionID uint64, owner identity.Address) Event {
	l.mu.Lock()
	defer l.mu.Unlock()

	e := Event{
		Seq:      uint64(len(l.events)) + 1,
		Type:     t,
		ActionID: actionID,
		Owner:    owner,
		At:       time.Now().UTC(),
	}
	l.events = append(l.events, e)

	for _, ch := range l.subs {
		select {
		case ch <- e:
		default:
			// Slow subscriber: drop rather than block the wallet. The
			// consumer detects the gap via sequence numbers and re-subscribes
			// from the last seq it saw.
		}
	}
	return e
}

// All returns a copy of the full event history in order.
func (l *Log) All() []Event {
	return l.Since(0)
}

// Since returns a copy of all events with Seq > seq, in order.
func (l *Log) Since(seq uint64) []Event {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if seq >= uint64(len(l.events)) {
		return nil
	}
	out := make([]Event, len(l.events)-int(seq))
	copy(out, l.events[seq:])
	return out
}

// SubscribeFrom atomically returns the backlog of events with Seq > seq and
// registers a live subscription for everything appended afterwards. The
// returned cancel func must be called to release the subscription.
func (l *Log) SubscribeFrom(seq uint64, buffer int) ([]Event, <-chan Event, func()) {
	if buffer <= 0 {
		buffer = 64
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var backlog []Event
	if seq < uint64(len(l.events)) {
		backlog = make([]Event, len(l.events)-int(seq))
		copy(backlog, l.events[seq:])
	}

	id := l.nextSub
	l.nextSub++
	ch := make(chan Event, buffer)
	l.subs[id] = ch

	cancel := func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		if _, ok := l.subs[id]; ok {
			delete(l.subs, id)
			close(ch)
		}
	}
	return backlog, ch, cancel
}
