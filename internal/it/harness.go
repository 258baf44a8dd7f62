// Package it contains the integration test harness. It runs a wallet node
// and a fake beneficiary service in-process, connected over real gRPC
// listeners on loopback ports.
package it

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/avast/retry-go"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"quorumwallet/internal/config"
	walletpb "quorumwallet/internal/gen/api"
	"quorumwallet/internal/node"
)

// Beneficiary is a recording fake for the outbound transfer service. It can
// be told to reject the next N transfers to exercise the failure path.
type Beneficiary struct {
	walletpb.UnimplementedBeneficiaryServer

	mu         sync.Mutex
	transfers  []*walletpb.TransferRequest
	rejectNext int

	srv *grpc.Server
	lis net.Listener
}

// StartBeneficiary starts a beneficiary service on a loopback port and
// registers its shutdown with the test.
func StartBeneficiary(t *testing.T) *Beneficiary {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen for beneficiary: %v", err)
	}

	b := &Beneficiary{
		srv: grpc.NewServer(),
		lis: lis,
	}
	walletpb.RegisterBeneficiaryServer(b.srv, b)

	go func() {
		_ = b.srv.Serve(lis)
	}()

	t.Cleanup(b.srv.Stop)
	return b
}

// Addr returns the address actions should target.
func (b *Beneficiary) Addr() string {
	return b.lis.Addr().String()
}

// Transfer records accepted transfers and rejects while the reject counter
// is positive.
func (b *Beneficiary) Transfer(ctx context.Context, req *walletpb.TransferRequest) (*walletpb.TransferResponse, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.rejectNext > 0 {
		b.rejectNext--
		return &walletpb.TransferResponse{
			Accepted: false,
			Message:  "transfer rejected",
		}, nil
	}

	b.transfers = append(b.transfers, req)
	return &walletpb.TransferResponse{Accepted: true}, nil
}

// RejectNext makes the next n transfers fail.
func (b *Beneficiary) RejectNext(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rejectNext = n
}

// Transfers returns the accepted transfers so far.
func (b *Beneficiary) Transfers() []*walletpb.TransferRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*walletpb.TransferRequest, len(b.transfers))
	copy(out, b.transfers)
	return out
}

// Harness is a running wallet node plus a connected client.
type Harness struct {
	Node   *node.Node
	Client walletpb.QuorumWalletClient

	conn *grpc.ClientConn
}

// StartWallet starts a wallet node on a loopback port, waits until it
// answers requests, and registers its shutdown with the test.
func StartWallet(t *testing.T, owners string, threshold int) *Harness {
	t.Helper()

	cfg := &config.Config{
		ListenAddr: "127.0.0.1:0",
		OpsAddr:    "",
		Owners:     owners,
		Threshold:  threshold,
	}

	n, err := node.NewNode(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("failed to create node: %v", err)
	}
	if err := n.Start(); err != nil {
		t.Fatalf("failed to start node: %v", err)
	}
	t.Cleanup(func() { _ = n.Stop() })

	conn, err := grpc.Dial(n.Addr(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("failed to dial node: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	h := &Harness{
		Node:   n,
		Client: walletpb.NewQuorumWalletClient(conn),
		conn:   conn,
	}

	err = retry.Do(
		func() error {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_, err := h.Client.GetWallet(ctx, &walletpb.GetWalletRequest{})
			return err
		},
		retry.Attempts(20),
		retry.Delay(50*time.Millisecond),
	)
	if err != nil {
		t.Fatalf("node never became ready: %v", err)
	}

	return h
}
