package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"quorumwallet/internal/config"
	"quorumwallet/internal/node"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	flag.StringVar(&cfg.ListenAddr, "listen", cfg.ListenAddr, "gRPC listen address")
	flag.StringVar(&cfg.OpsAddr, "ops", cfg.OpsAddr, "ops HTTP address for /metrics and /healthz, empty disables")
	flag.StringVar(&cfg.Owners, "owners", cfg.Owners, "comma-separated owner addresses")
	flag.IntVar(&cfg.Threshold, "threshold", cfg.Threshold, "confirmations required to execute an action")
	flag.Parse()

	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	n, err := node.NewNode(cfg, log)
	if err != nil {
		log.Fatal("failed to create node", zap.Error(err))
	}
	if err := n.Start(); err != nil {
		log.Fatal("failed to start node", zap.Error(err))
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	s := <-sig
	log.Info("received signal, shutting down", zap.String("signal", s.String()))

	if err := n.Stop(); err != nil {
		log.Error("shutdown error", zap.Error(err))
	}
}
