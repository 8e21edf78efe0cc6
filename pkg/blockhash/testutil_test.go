// Copyright 2025 Certen Protocol
//
// testCaller is an in-memory bind.ContractCaller used by this package's
// tests to drive contract reads without a live RPC endpoint.

package blockhash

import (
	"context"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

type testCaller struct {
	returns map[[4]byte][]byte
}

func newTestCaller() *testCaller {
	return &testCaller{returns: make(map[[4]byte][]byte)}
}

func (c *testCaller) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	return []byte{0x01}, nil
}

func (c *testCaller) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	var selector [4]byte
	copy(selector[:], call.Data[:4])
	out, ok := c.returns[selector]
	if !ok {
		return nil, errNoReturn
	}
	return out, nil
}

var errNoReturn = &noReturnErr{}

type noReturnErr struct{}

func (*noReturnErr) Error() string { return "testCaller: no canned return for this call" }

func packReturn(t *testing.T, rawABI, name string, values ...interface{}) []byte {
	parsed, err := abi.JSON(strings.NewReader(rawABI))
	if err != nil {
		t.Fatalf("parse abi: %v", err)
	}
	method, ok := parsed.Methods[name]
	if !ok {
		t.Fatalf("method %s not in abi", name)
	}
	packed, err := method.Outputs.Pack(values...)
	if err != nil {
		t.Fatalf("pack %s outputs: %v", name, err)
	}
	return packed
}

func selectorOf(t *testing.T, rawABI, name string) [4]byte {
	parsed, err := abi.JSON(strings.NewReader(rawABI))
	if err != nil {
		t.Fatalf("parse abi: %v", err)
	}
	method, ok := parsed.Methods[name]
	if !ok {
		t.Fatalf("method %s not in abi", name)
	}
	var sel [4]byte
	copy(sel[:], method.ID)
	return sel
}
