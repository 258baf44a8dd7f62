package event

import (
	"testing"
	"time"
)

func TestAppend_SequenceIsStrictlyIncreasing(t *testing.T) {
	l := NewLog()

	for i := 0; i < 5; i++ {
		e := l.Append(Proposed, uint64(i), "")
		if e.Seq != uint64(i)+1 {
			t.Errorf("Expected seq %d, got %d", i+1, e.Seq)
		}
	}

	all := l.All()
	if len(all) != 5 {
		t.Fatalf("Expected 5 events, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].Seq <= all[i-1].Seq {
			t.Errorf("Sequence not strictly increasing at %d: %d then %d",
				i, all[i-1].Seq, all[i].Seq)
		}
	}
}

func TestSince_ReturnsTail(t *testing.T) {
	l := NewLog()
	l.Append(Proposed, 0, "")
	l.Append(Confirmed, 0, "alice")
	l.Append(Executed, 0, "")

	tail := l.Since(1)
	if len(tail) != 2 {
		t.Fatalf("Expected 2 events after seq 1, got %d", len(tail))
	}
	if tail[0].Type != Confirmed || tail[1].Type != Executed {
		t.Errorf("Unexpected tail: %v, %v", tail[0].Type, tail[1].Type)
	}

	if got := l.Since(3); got != nil {
		t.Errorf("Expected no events after seq 3, got %d", len(got))
	}
}

func TestSubscribeFrom_BacklogThenLive(t *testing.T) {
	l := NewLog()
	l.Append(Proposed, 0, "")
	l.Append(Confirmed, 0, "alice")

	backlog, ch, cancel := l.SubscribeFrom(0, 8)
	defer cancel()

	if len(backlog) != 2 {
		t.Fatalf("Expected backlog of 2, got %d", len(backlog))
	}

	l.Append(Executed, 0, "")

	select {
	case e := <-ch:
		if e.Type != Executed || e.Seq != 3 {
			t.Errorf("Expected live Executed seq=3, got %v seq=%d", e.Type, e.Seq)
		}
	case <-time.After(time.Second):
		t.Fatal("Timed out waiting for live event")
	}
}

func TestSubscribeFrom_CancelClosesChannel(t *testing.T) {
	l := NewLog()
	_, ch, cancel := l.SubscribeFrom(0, 1)

	cancel()
	// Second cancel must be safe.
	cancel()

	if _, open := <-ch; open {
		t.Error("Expected channel to be closed after cancel")
	}

	// Appending after cancel must not panic.
	l.Append(Proposed, 0, "")
}

func TestAppend_SlowSubscriberDoesNotBlock(t *testing.T) {
	l := NewLog()
	_, _, cancel := l.SubscribeFrom(0, 1)
	defer cancel()

	done := make(chan struct{})
	go func() {
		// Buffer of 1: the second append would block without the drop path.
		l.Append(Proposed, 0, "")
		l.Append(Proposed, 1, "")
		l.Append(Proposed, 2, "")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Append blocked on a slow subscriber")
	}
}

func TestType_String(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{Proposed, "PROPOSED"},
		{Confirmed, "CONFIRMED"},
		{Revoked, "REVOKED"},
		{Executed, "EXECUTED"},
		{ExecutionFailed, "EXECUTION_FAILED"},
		{Type(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("Type(%d).String() = %s, want %s", tt.typ, got, tt.want)
		}
	}
}
