// Package config holds the node configuration: the gRPC listen address,
// the ops endpoint, and the wallet's owner list and threshold. Values come
// from flags with environment overrides.
package config

import (
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/pkg/errors"

	"quorumwallet/internal/identity"
	"quorumwallet/internal/wallet"
)

// Config holds the node configuration.
type Config struct {
	ListenAddr string `env:"WALLET_LISTEN_ADDR" envDefault:":50051"`
	OpsAddr    string `env:"WALLET_OPS_ADDR" envDefault:":9090"`
	Owners     string `env:"WALLET_OWNERS"`
	Threshold  int    `env:"WALLET_THRESHOLD"`
}

// FromEnv loads configuration from the environment.
func FromEnv() (*Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return nil, errors.Wrap(err, "parse environment")
	}
	return &c, nil
}

// ParseOwners parses a comma-separated owner list:
// "addr1,addr2,addr3". Surrounding whitespace is trimmed and empty entries
// are skipped.
func ParseOwners(ownersStr string) ([]identity.Address, error) {
	if ownersStr == "" {
		return nil, nil
	}

	parts := strings.Split(ownersStr, ",")
	owners := make([]identity.Address, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		addr := identity.Address(part)
		if err := addr.Validate(); err != nil {
			return nil, errors.Wrapf(err, "owner %q", part)
		}
		owners = append(owners, addr)
	}
	return owners, nil
}

// WalletConfig builds the wallet configuration from the owner list and
// threshold, validated per the wallet's construction invariant.
func (c *Config) WalletConfig() (wallet.Config, error) {
	owners, err := ParseOwners(c.Owners)
	if err != nil {
		return wallet.Config{}, errors.Wrap(wallet.ErrInvalidConfig, err.Error())
	}
	wc := wallet.Config{
		Owners:    owners,
		Threshold: c.Threshold,
	}
	if err := wc.Validate(); err != nil {
		return wallet.Config{}, err
	}
	return wc, nil
}
