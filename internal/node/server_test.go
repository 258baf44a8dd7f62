package node

import (
	"context"
	"sync"
	"testing"

	"github.com/pkg/errors"

	walletpb "quorumwallet/internal/gen/api"
	"quorumwallet/internal/identity"
	"quorumwallet/internal/sink"
	"quorumwallet/internal/wallet"
)

type stubSink struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (s *stubSink) Call(ctx context.Context, target string, value uint64, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.err
}

func newTestServer(t *testing.T, threshold int, out sink.Sink) (*Server, *wallet.Wallet) {
	t.Helper()
	w, err := wallet.New(wallet.Config{
		Owners:    []identity.Address{"alice", "bob", "carol"},
		Threshold: threshold,
	}, nil, nil, out, nil)
	if err != nil {
		t.Fatalf("wallet.New failed: %v", err)
	}
	return NewServer(w, nil), w
}

func TestPropose_OK(t *testing.T) {
	s, w := newTestServer(t, 2, &stubSink{})

	resp, err := s.Propose(context.Background(), &walletpb.ProposeRequest{
		Caller: "alice",
		Target: "127.0.0.1:1",
		Value:  5,
	})
	if err != nil {
		t.Fatalf("Propose failed: %v", err)
	}
	if resp.Status != walletpb.OpStatus_OP_STATUS_OK {
		t.Errorf("Expected OK, got %v: %s", resp.Status, resp.ErrorMessage)
	}
	if resp.ActionId != 0 {
		t.Errorf("Expected action id 0, got %d", resp.ActionId)
	}
	if len(w.Actions()) != 1 {
		t.Errorf("Expected 1 action, got %d", len(w.Actions()))
	}
}

func TestPropose_Unauthorized(t *testing.T) {
	s, _ := newTestServer(t, 2, &stubSink{})

	resp, err := s.Propose(context.Background(), &walletpb.ProposeRequest{
		Caller: "mallory",
		Target: "127.0.0.1:1",
	})
	if err != nil {
		t.Fatalf("Propose failed: %v", err)
	}
	if resp.Status != walletpb.OpStatus_OP_STATUS_UNAUTHORIZED {
		t.Errorf("Expected UNAUTHORIZED, got %v", resp.Status)
	}
	if resp.ErrorMessage == "" {
		t.Error("Expected error message")
	}
}

func TestPropose_MalformedRequest(t *testing.T) {
	s, _ := newTestServer(t, 2, &stubSink{})

	if _, err := s.Propose(context.Background(), &walletpb.ProposeRequest{Target: "t"}); err == nil {
		t.Error("Expected RPC error for empty caller")
	}
	if _, err := s.Propose(context.Background(), &walletpb.ProposeRequest{Caller: "alice"}); err == nil {
		t.Error("Expected RPC error for empty target")
	}
}

func TestConfirm_StatusMapping(t *testing.T) {
	s, _ := newTestServer(t, 3, &stubSink{})

	resp, err := s.Propose(context.Background(), &walletpb.ProposeRequest{
		Caller: "alice", Target: "t",
	})
	if err != nil {
		t.Fatalf("Propose failed: %v", err)
	}
	id := resp.ActionId

	tests := []struct {
		name   string
		caller string
		id     uint64
		want   walletpb.OpStatus
	}{
		{"ok", "bob", id, walletpb.OpStatus_OP_STATUS_OK},
		{"duplicate", "bob", id, walletpb.OpStatus_OP_STATUS_ALREADY_CONFIRMED},
		{"non-owner", "mallory", id, walletpb.OpStatus_OP_STATUS_UNAUTHORIZED},
		{"unknown action", "carol", 99, walletpb.OpStatus_OP_STATUS_UNKNOWN_ACTION},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := s.Confirm(context.Background(), &walletpb.ConfirmRequest{
				Caller:   tt.caller,
				ActionId: tt.id,
			})
			if err != nil {
				t.Fatalf("Confirm failed: %v", err)
			}
			if resp.Status != tt.want {
				t.Errorf("Expected %v, got %v: %s", tt.want, resp.Status, resp.ErrorMessage)
			}
		})
	}
}

func TestRevoke_StatusMapping(t *testing.T) {
	s, _ := newTestServer(t, 2, &stubSink{})

	resp, _ := s.Propose(context.Background(), &walletpb.ProposeRequest{Caller: "alice", Target: "t"})
	id := resp.ActionId

	rev, err := s.Revoke(context.Background(), &walletpb.RevokeRequest{Caller: "bob", ActionId: id})
	if err != nil {
		t.Fatalf("Revoke failed: %v", err)
	}
	if rev.Status != walletpb.OpStatus_OP_STATUS_NOT_CONFIRMED {
		t.Errorf("Expected NOT_CONFIRMED, got %v", rev.Status)
	}

	rev, err = s.Revoke(context.Background(), &walletpb.RevokeRequest{Caller: "alice", ActionId: id})
	if err != nil {
		t.Fatalf("Revoke failed: %v", err)
	}
	if rev.Status != walletpb.OpStatus_OP_STATUS_OK {
		t.Errorf("Expected OK, got %v: %s", rev.Status, rev.ErrorMessage)
	}
}

func TestExecute_FailureIsNotAnRPCError(t *testing.T) {
	out := &stubSink{err: errors.New("target unavailable")}
	s, w := newTestServer(t, 2, out)
	w.Deposit(100)

	resp, _ := s.Propose(context.Background(), &walletpb.ProposeRequest{
		Caller: "alice", Target: "t", Value: 10,
	})
	id := resp.ActionId

	// Reaching quorum triggers a failing external call; the RPC must still
	// succeed and report executed=false.
	conf, err := s.Confirm(context.Background(), &walletpb.ConfirmRequest{Caller: "bob", ActionId: id})
	if err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if conf.Status != walletpb.OpStatus_OP_STATUS_OK {
		t.Errorf("Expected OK despite failed execution, got %v", conf.Status)
	}

	exec, err := s.Execute(context.Background(), &walletpb.ExecuteRequest{ActionId: id})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if exec.Status != walletpb.OpStatus_OP_STATUS_OK {
		t.Errorf("Expected OK, got %v: %s", exec.Status, exec.ErrorMessage)
	}
	if exec.Executed {
		t.Error("Expected executed=false after failed external call")
	}
}

func TestDeposit_ReportsBalance(t *testing.T) {
	s, _ := newTestServer(t, 2, &stubSink{})

	resp, err := s.Deposit(context.Background(), &walletpb.DepositRequest{From: "anyone", Amount: 42})
	if err != nil {
		t.Fatalf("Deposit failed: %v", err)
	}
	if resp.Balance != 42 {
		t.Errorf("Expected balance 42, got %d", resp.Balance)
	}
}

func TestGetAction_ConvertsRosterOrder(t *testing.T) {
	s, w := newTestServer(t, 3, &stubSink{})

	resp, _ := s.Propose(context.Background(), &walletpb.ProposeRequest{Caller: "carol", Target: "t"})
	id := resp.ActionId
	if err := w.Confirm(context.Background(), "alice", id); err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}

	got, err := s.GetAction(context.Background(), &walletpb.GetActionRequest{ActionId: id})
	if err != nil {
		t.Fatalf("GetAction failed: %v", err)
	}
	if got.Status != walletpb.OpStatus_OP_STATUS_OK {
		t.Fatalf("Expected OK, got %v", got.Status)
	}

	// alice precedes carol in roster order regardless of confirmation order.
	want := []string{"alice", "carol"}
	if len(got.Action.ConfirmedBy) != len(want) {
		t.Fatalf("Expected %d confirmations, got %d", len(want), len(got.Action.ConfirmedBy))
	}
	for i, o := range want {
		if got.Action.ConfirmedBy[i] != o {
			t.Errorf("Position %d: expected %s, got %s", i, o, got.Action.ConfirmedBy[i])
		}
	}
	if got.Action.QuorumMet {
		t.Error("2 of 3 threshold: quorum must not be met")
	}
}

func TestGetWallet(t *testing.T) {
	s, w := newTestServer(t, 2, &stubSink{})
	w.Deposit(7)

	resp, err := s.GetWallet(context.Background(), &walletpb.GetWalletRequest{})
	if err != nil {
		t.Fatalf("GetWallet failed: %v", err)
	}
	if len(resp.Owners) != 3 || resp.Owners[0] != "alice" {
		t.Errorf("Unexpected owners: %v", resp.Owners)
	}
	if resp.Threshold != 2 {
		t.Errorf("Expected threshold 2, got %d", resp.Threshold)
	}
	if resp.Balance != 7 {
		t.Errorf("Expected balance 7, got %d", resp.Balance)
	}
	if resp.NextActionId != 0 {
		t.Errorf("Expected next action id 0, got %d", resp.NextActionId)
	}

	if _, err := s.Propose(context.Background(), &walletpb.ProposeRequest{Caller: "alice", Target: "t"}); err != nil {
		t.Fatalf("Propose failed: %v", err)
	}
	resp, err = s.GetWallet(context.Background(), &walletpb.GetWalletRequest{})
	if err != nil {
		t.Fatalf("GetWallet failed: %v", err)
	}
	if resp.NextActionId != 1 {
		t.Errorf("Expected next action id 1 after a proposal, got %d", resp.NextActionId)
	}
}
