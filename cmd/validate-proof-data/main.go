// validate-proof-data CLI
//
// Exercises the validation core end to end against a JSON request file:
// dials one ethclient.Client per chain id the request touches, runs
// validator.Validate, and prints the packed proof-data rows as hex.
//
// This is a demonstration/integration-test harness, not the proving host —
// in production the witness data this CLI reads from JSON is supplied
// directly by the embedded EVM execution environment.
package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/certen/chain-validator/pkg/config"
	"github.com/certen/chain-validator/pkg/validator"
)

type ethclientDialer struct {
	rpcCfg *config.RPCConfig

	mu      sync.Mutex
	clients map[uint64]*ethclient.Client
}

func newEthclientDialer(rpcCfg *config.RPCConfig) *ethclientDialer {
	return &ethclientDialer{rpcCfg: rpcCfg, clients: make(map[uint64]*ethclient.Client)}
}

func (d *ethclientDialer) dial(chainID uint64) (bind.ContractCaller, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if client, ok := d.clients[chainID]; ok {
		return client, nil
	}

	url, err := d.rpcCfg.Endpoint(chainID)
	if err != nil {
		return nil, err
	}
	log.Printf("🔌 dialing chain %d at %s", chainID, url)
	client, err := ethclient.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial chain %d: %w", chainID, err)
	}
	d.clients[chainID] = client
	return client, nil
}

func main() {
	requestPath := flag.String("request", "", "path to a validate-proof-data JSON request file")
	timeout := flag.Duration("timeout", 0, "overall timeout for the validation run (0 = use RPC_REQUEST_TIMEOUT)")
	flag.Parse()

	if *requestPath == "" {
		log.Fatalf("❌ -request is required")
	}

	rpcCfg, err := config.LoadRPCConfig()
	if err != nil {
		log.Fatalf("❌ loading RPC config: %v", err)
	}

	runTimeout := *timeout
	if runTimeout == 0 {
		runTimeout = rpcCfg.RequestTimeout
	}

	dialer := newEthclientDialer(rpcCfg)
	req, err := loadRequestFile(*requestPath, dialer)
	if err != nil {
		log.Fatalf("❌ loading request file: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	start := time.Now()
	rows, err := validator.Validate(ctx, req)
	if err != nil {
		log.Fatalf("❌ validation failed: %v", err)
	}

	log.Printf("✅ validated %d proof-data rows in %s", len(rows), time.Since(start))
	for i, row := range rows {
		fmt.Printf("%d: %s\n", i, hex.EncodeToString(row))
	}
}
