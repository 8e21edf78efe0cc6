// Copyright 2025 Certen Protocol
//
// fakeCaller is an in-memory bind.ContractCaller used by this package's
// tests to exercise the ABI pack/unpack path without a live RPC endpoint.

package contracts

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

type fakeCaller struct {
	// returns maps a 4-byte selector to the ABI-encoded return value the
	// call should produce.
	returns map[[4]byte][]byte
}

func newFakeCaller() *fakeCaller {
	return &fakeCaller{returns: make(map[[4]byte][]byte)}
}

func (f *fakeCaller) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	return []byte{0x01}, nil
}

func (f *fakeCaller) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	var selector [4]byte
	copy(selector[:], call.Data[:4])
	out, ok := f.returns[selector]
	if !ok {
		return nil, errUnexpectedCall(selector)
	}
	return out, nil
}

type errUnexpectedCall [4]byte

func (e errUnexpectedCall) Error() string {
	return "fakeCaller: no canned return for selector " + common.Bytes2Hex(e[:])
}

// packReturn ABI-packs outputs for method named name in rawABI as the
// encoded return value a real EVM call would have produced.
func packReturn(t interface{ Fatalf(string, ...interface{}) }, rawABI string, name string, values ...interface{}) []byte {
	parsed, err := abi.JSON(strings.NewReader(rawABI))
	if err != nil {
		t.Fatalf("parse abi: %v", err)
	}
	method, ok := parsed.Methods[name]
	if !ok {
		t.Fatalf("method %s not found in abi", name)
	}
	packed, err := method.Outputs.Pack(values...)
	if err != nil {
		t.Fatalf("pack outputs for %s: %v", name, err)
	}
	return packed
}

func selectorOf(t interface{ Fatalf(string, ...interface{}) }, rawABI string, name string) [4]byte {
	parsed, err := abi.JSON(strings.NewReader(rawABI))
	if err != nil {
		t.Fatalf("parse abi: %v", err)
	}
	method, ok := parsed.Methods[name]
	if !ok {
		t.Fatalf("method %s not found in abi", name)
	}
	var sel [4]byte
	copy(sel[:], method.ID)
	return sel
}
