package it

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	walletpb "quorumwallet/internal/gen/api"
)

const owners = "alice,bob,carol"

func TestQuorumExecution_EndToEnd(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	beneficiary := StartBeneficiary(t)
	h := StartWallet(t, owners, 2)

	// Fund the wallet.
	dep, err := h.Client.Deposit(ctx, &walletpb.DepositRequest{From: "funder", Amount: 100})
	require.NoError(t, err)
	assert.Equal(t, uint64(100), dep.Balance)

	// Propose a transfer; the proposal carries the proposer's confirmation.
	prop, err := h.Client.Propose(ctx, &walletpb.ProposeRequest{
		Caller: "alice",
		Target: beneficiary.Addr(),
		Value:  40,
	})
	require.NoError(t, err)
	require.Equal(t, walletpb.OpStatus_OP_STATUS_OK, prop.Status, prop.ErrorMessage)
	assert.Equal(t, uint64(0), prop.ActionId)

	// One confirmation is not a quorum yet.
	assert.Empty(t, beneficiary.Transfers())

	// Second confirmation reaches the threshold and executes.
	conf, err := h.Client.Confirm(ctx, &walletpb.ConfirmRequest{Caller: "bob", ActionId: prop.ActionId})
	require.NoError(t, err)
	assert.Equal(t, walletpb.OpStatus_OP_STATUS_OK, conf.Status, conf.ErrorMessage)

	transfers := beneficiary.Transfers()
	require.Len(t, transfers, 1)
	assert.Equal(t, uint64(40), transfers[0].Value)

	got, err := h.Client.GetAction(ctx, &walletpb.GetActionRequest{ActionId: prop.ActionId})
	require.NoError(t, err)
	require.Equal(t, walletpb.OpStatus_OP_STATUS_OK, got.Status)
	assert.True(t, got.Action.Executed)
	assert.Equal(t, []string{"alice", "bob"}, got.Action.ConfirmedBy)

	// The action is terminal: further confirmations are rejected.
	late, err := h.Client.Confirm(ctx, &walletpb.ConfirmRequest{Caller: "carol", ActionId: prop.ActionId})
	require.NoError(t, err)
	assert.Equal(t, walletpb.OpStatus_OP_STATUS_ALREADY_EXECUTED, late.Status)

	// The transfer debited the balance exactly once.
	info, err := h.Client.GetWallet(ctx, &walletpb.GetWalletRequest{})
	require.NoError(t, err)
	assert.Equal(t, uint64(60), info.Balance)

	// A second execution attempt stays a no-op.
	exec, err := h.Client.Execute(ctx, &walletpb.ExecuteRequest{ActionId: prop.ActionId})
	require.NoError(t, err)
	assert.Equal(t, walletpb.OpStatus_OP_STATUS_ALREADY_EXECUTED, exec.Status)
	require.Len(t, beneficiary.Transfers(), 1)
}

func TestFailedTransfer_AllowsRetry(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	beneficiary := StartBeneficiary(t)
	h := StartWallet(t, owners, 2)

	_, err := h.Client.Deposit(ctx, &walletpb.DepositRequest{From: "funder", Amount: 50})
	require.NoError(t, err)

	beneficiary.RejectNext(1)

	prop, err := h.Client.Propose(ctx, &walletpb.ProposeRequest{
		Caller: "alice",
		Target: beneficiary.Addr(),
		Value:  30,
	})
	require.NoError(t, err)
	require.Equal(t, walletpb.OpStatus_OP_STATUS_OK, prop.Status)

	// Reaching quorum triggers a transfer the beneficiary rejects. The
	// confirmation itself still succeeds.
	conf, err := h.Client.Confirm(ctx, &walletpb.ConfirmRequest{Caller: "carol", ActionId: prop.ActionId})
	require.NoError(t, err)
	assert.Equal(t, walletpb.OpStatus_OP_STATUS_OK, conf.Status, conf.ErrorMessage)
	assert.Empty(t, beneficiary.Transfers())

	// The failed attempt left the action retryable and the balance intact.
	got, err := h.Client.GetAction(ctx, &walletpb.GetActionRequest{ActionId: prop.ActionId})
	require.NoError(t, err)
	assert.False(t, got.Action.Executed)
	assert.True(t, got.Action.QuorumMet)

	info, err := h.Client.GetWallet(ctx, &walletpb.GetWalletRequest{})
	require.NoError(t, err)
	assert.Equal(t, uint64(50), info.Balance)

	// Anyone may retry once the beneficiary recovers.
	exec, err := h.Client.Execute(ctx, &walletpb.ExecuteRequest{ActionId: prop.ActionId})
	require.NoError(t, err)
	assert.Equal(t, walletpb.OpStatus_OP_STATUS_OK, exec.Status, exec.ErrorMessage)
	assert.True(t, exec.Executed)

	require.Len(t, beneficiary.Transfers(), 1)

	info, err = h.Client.GetWallet(ctx, &walletpb.GetWalletRequest{})
	require.NoError(t, err)
	assert.Equal(t, uint64(20), info.Balance)
}

func TestRevoke_BlocksExecution(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	beneficiary := StartBeneficiary(t)
	h := StartWallet(t, owners, 2)

	_, err := h.Client.Deposit(ctx, &walletpb.DepositRequest{From: "funder", Amount: 100})
	require.NoError(t, err)

	prop, err := h.Client.Propose(ctx, &walletpb.ProposeRequest{
		Caller: "alice",
		Target: beneficiary.Addr(),
		Value:  10,
	})
	require.NoError(t, err)
	require.Equal(t, walletpb.OpStatus_OP_STATUS_OK, prop.Status)

	rev, err := h.Client.Revoke(ctx, &walletpb.RevokeRequest{Caller: "alice", ActionId: prop.ActionId})
	require.NoError(t, err)
	assert.Equal(t, walletpb.OpStatus_OP_STATUS_OK, rev.Status)

	// One confirmation after the revocation: still below the threshold.
	conf, err := h.Client.Confirm(ctx, &walletpb.ConfirmRequest{Caller: "bob", ActionId: prop.ActionId})
	require.NoError(t, err)
	assert.Equal(t, walletpb.OpStatus_OP_STATUS_OK, conf.Status)

	exec, err := h.Client.Execute(ctx, &walletpb.ExecuteRequest{ActionId: prop.ActionId})
	require.NoError(t, err)
	assert.Equal(t, walletpb.OpStatus_OP_STATUS_OK, exec.Status)
	assert.False(t, exec.Executed)
	assert.Empty(t, beneficiary.Transfers())
}

func TestWatchEvents_ReplayAndLive(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	beneficiary := StartBeneficiary(t)
	h := StartWallet(t, owners, 2)

	_, err := h.Client.Deposit(ctx, &walletpb.DepositRequest{From: "funder", Amount: 100})
	require.NoError(t, err)

	prop, err := h.Client.Propose(ctx, &walletpb.ProposeRequest{
		Caller: "alice",
		Target: beneficiary.Addr(),
		Value:  25,
	})
	require.NoError(t, err)
	_, err = h.Client.Confirm(ctx, &walletpb.ConfirmRequest{Caller: "bob", ActionId: prop.ActionId})
	require.NoError(t, err)

	stream, err := h.Client.WatchEvents(ctx, &walletpb.WatchEventsRequest{AfterSeq: 0})
	require.NoError(t, err)

	// Replay: propose records the proposal and the proposer's confirmation,
	// then the second confirmation and the execution.
	wantReplay := []walletpb.EventType{
		walletpb.EventType_EVENT_TYPE_PROPOSED,
		walletpb.EventType_EVENT_TYPE_CONFIRMED,
		walletpb.EventType_EVENT_TYPE_CONFIRMED,
		walletpb.EventType_EVENT_TYPE_EXECUTED,
	}
	for i, want := range wantReplay {
		ev, err := stream.Recv()
		require.NoError(t, err)
		assert.Equal(t, want, ev.Type, "event %d", i)
		assert.Equal(t, uint64(i+1), ev.Seq)
		assert.Equal(t, prop.ActionId, ev.ActionId)
	}

	// Live: a new proposal shows up on the open stream.
	prop2, err := h.Client.Propose(ctx, &walletpb.ProposeRequest{
		Caller: "carol",
		Target: beneficiary.Addr(),
		Value:  5,
	})
	require.NoError(t, err)

	// Proposed events carry no owner; the proposer shows up on the
	// confirmation recorded with the proposal.
	ev, err := stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, walletpb.EventType_EVENT_TYPE_PROPOSED, ev.Type)
	assert.Equal(t, prop2.ActionId, ev.ActionId)
	assert.Empty(t, ev.Owner)

	ev, err = stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, walletpb.EventType_EVENT_TYPE_CONFIRMED, ev.Type)
	assert.Equal(t, prop2.ActionId, ev.ActionId)
	assert.Equal(t, "carol", ev.Owner)
}

func TestStop_ReturnsWithOpenWatchStream(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	h := StartWallet(t, owners, 2)

	stream, err := h.Client.WatchEvents(ctx, &walletpb.WatchEventsRequest{AfterSeq: 0})
	require.NoError(t, err)

	// Make sure the stream is established before shutting down: produce an
	// event and receive it.
	prop, err := h.Client.Propose(ctx, &walletpb.ProposeRequest{Caller: "alice", Target: "t", Value: 1})
	require.NoError(t, err)
	require.Equal(t, walletpb.OpStatus_OP_STATUS_OK, prop.Status)

	ev, err := stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, walletpb.EventType_EVENT_TYPE_PROPOSED, ev.Type)

	// Shutdown must not hang on the still-open stream: the drain window
	// expires and the stream is cut.
	done := make(chan error, 1)
	go func() { done <- h.Node.Stop() }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(30 * time.Second):
		t.Fatal("Stop did not return with an open event stream")
	}

	// The forced close surfaces as a stream error on the client.
	for {
		if _, err := stream.Recv(); err != nil {
			break
		}
	}
}

func TestOwnersAndThreshold_Exposed(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	h := StartWallet(t, owners, 3)

	info, err := h.Client.GetWallet(ctx, &walletpb.GetWalletRequest{})
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob", "carol"}, info.Owners)
	assert.Equal(t, uint32(3), info.Threshold)
	assert.Equal(t, uint64(0), info.Balance)
}
