// Copyright 2025 Certen Protocol
//
// RPCConfig is the ambient configuration for the validate-proof-data CLI
// and its integration tests: RPC endpoints the default ContractCaller
// dials, request timeouts, and log verbosity. Contract addresses,
// selectors, and reorg depths are never read from config — those live as
// compile-time constants in pkg/chainspec.

package config

import (
	"fmt"
	"os"
	"time"
)

// RPCConfig holds the endpoints and timeouts the validate-proof-data CLI
// needs to dial each chain it is asked to validate against.
type RPCConfig struct {
	// Endpoints maps an RPC_URL_<CHAIN_ID> environment variable's chain id
	// to the JSON-RPC endpoint used to serve ContractCaller reads for it.
	Endpoints map[uint64]string

	RequestTimeout time.Duration
	LogLevel       string
}

// knownRPCChainIDs lists the chain ids the CLI looks for an
// RPC_URL_<chain id> environment variable for. Kept in sync with
// chainspec's registry by the caller; duplicated here (rather than
// importing chainspec) to keep pkg/config free of a dependency on the
// validation core.
var knownRPCChainIDs = []uint64{
	1, 11155111, // ethereum, ethereum-sepolia
	10, 11155420, // optimism, optimism-sepolia
	8453, 84532, // base, base-sepolia
	59144, 59141, // linea, linea-sepolia
}

// LoadRPCConfig reads RPCConfig from the environment. An RPC_URL_<id>
// variable is optional: a chain the CLI is never asked to validate does
// not need one, and a missing endpoint surfaces as an error only once a
// request actually needs it.
func LoadRPCConfig() (*RPCConfig, error) {
	cfg := &RPCConfig{
		Endpoints:      make(map[uint64]string),
		RequestTimeout: getEnvDuration("RPC_REQUEST_TIMEOUT", 30*time.Second),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}

	for _, chainID := range knownRPCChainIDs {
		key := fmt.Sprintf("RPC_URL_%d", chainID)
		if url := getEnv(key, ""); url != "" {
			cfg.Endpoints[chainID] = url
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return d
	}
	return fallback
}

// Endpoint returns the RPC URL configured for chainID, or an error
// naming the environment variable an operator needs to set.
func (c *RPCConfig) Endpoint(chainID uint64) (string, error) {
	url, ok := c.Endpoints[chainID]
	if !ok || url == "" {
		return "", fmt.Errorf("config: no RPC endpoint configured for chain %d (set RPC_URL_%d)", chainID, chainID)
	}
	return url, nil
}
