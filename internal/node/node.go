// Package node wires the wallet state machine to its gRPC surface and owns
// the server lifecycle: the wallet service listener and the ops endpoint
// serving metrics and health.
package node

import (
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"quorumwallet/internal/config"
	"quorumwallet/internal/event"
	walletpb "quorumwallet/internal/gen/api"
	"quorumwallet/internal/ledger"
	"quorumwallet/internal/metrics"
	"quorumwallet/internal/sink"
	"quorumwallet/internal/wallet"
)

// Node represents a running wallet service instance.
type Node struct {
	cfg        *config.Config
	wallet     *wallet.Wallet
	out        *sink.GRPCSink
	grpcServer *grpc.Server
	opsServer  *http.Server
	lis        net.Listener
	log        *zap.Logger
}

// NewNode creates a node from configuration. The wallet's owner set and
// threshold are validated here; an invalid configuration never produces a
// node.
func NewNode(cfg *config.Config, log *zap.Logger) (*Node, error) {
	if log == nil {
		log = zap.NewNop()
	}

	wc, err := cfg.WalletConfig()
	if err != nil {
		return nil, err
	}

	out := sink.NewGRPCSink(log.Named("sink"))
	w, err := wallet.New(wc, ledger.NewInMemoryStore(), event.NewLog(), out, log.Named("wallet"))
	if err != nil {
		return nil, err
	}

	grpcServer := grpc.NewServer()
	walletpb.RegisterQuorumWalletServer(grpcServer, NewServer(w, log.Named("server")))
	reflection.Register(grpcServer)

	n := &Node{
		cfg:        cfg,
		wallet:     w,
		out:        out,
		grpcServer: grpcServer,
		log:        log,
	}

	if cfg.OpsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		mux.HandleFunc("/healthz", func(rw http.ResponseWriter, _ *http.Request) {
			rw.WriteHeader(http.StatusOK)
		})
		n.opsServer = &http.Server{
			Addr:              cfg.OpsAddr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
	}

	return n, nil
}

// Start binds the listener and begins serving. It returns once the
// listener is bound; serving continues in the background until Stop.
func (n *Node) Start() error {
	lis, err := net.Listen("tcp", n.cfg.ListenAddr)
	if err != nil {
		return errors.Wrapf(err, "listen on %s", n.cfg.ListenAddr)
	}
	n.lis = lis

	n.log.Info("wallet node starting",
		zap.String("addr", lis.Addr().String()),
		zap.Int("owners", len(n.wallet.Owners())),
		zap.Int("threshold", n.wallet.Threshold()),
	)

	go func() {
		if err := n.grpcServer.Serve(lis); err != nil {
			n.log.Error("grpc serve", zap.Error(err))
		}
	}()

	if n.opsServer != nil {
		go func() {
			if err := n.opsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				n.log.Error("ops serve", zap.Error(err))
			}
		}()
	}

	return nil
}

// Addr returns the bound address of the wallet service. Valid after Start.
func (n *Node) Addr() string {
	if n.lis == nil {
		return ""
	}
	return n.lis.Addr().String()
}

// Wallet returns the node's wallet.
func (n *Node) Wallet() *wallet.Wallet {
	return n.wallet
}

// drainTimeout bounds GracefulStop: long-lived event streams never end on
// their own, so after the drain window open streams are cut.
const drainTimeout = 5 * time.Second

// Stop drains the gRPC server, shuts down the ops endpoint and drops
// outbound connections.
func (n *Node) Stop() error {
	var errs error

	drained := make(chan struct{})
	go func() {
		n.grpcServer.GracefulStop()
		close(drained)
	}()
	select {
	case <-drained:
	case <-time.After(drainTimeout):
		n.log.Warn("graceful stop timed out, closing open streams")
		n.grpcServer.Stop()
		<-drained
	}

	if n.opsServer != nil {
		if err := n.opsServer.Close(); err != nil {
			errs = multierr.Append(errs, errors.Wrap(err, "close ops server"))
		}
	}
	n.out.Close()

	n.log.Info("wallet node stopped")
	return errs
}
