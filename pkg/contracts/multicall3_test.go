// Copyright 2025 Certen Protocol

package contracts

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

func TestMulticall3_Aggregate3(t *testing.T) {
	caller := newFakeCaller()

	want := []Result3{
		{Success: true, ReturnData: []byte{0x01, 0x02}},
		{Success: false, ReturnData: nil},
	}
	caller.returns[selectorOf(t, multicall3ABI, "aggregate3")] = packReturn(t, multicall3ABI, "aggregate3", want)

	multicall, err := NewMulticall3(common.HexToAddress("0xcA11bde05977b3631167028862bE2a173976CA11"), caller)
	if err != nil {
		t.Fatalf("NewMulticall3: %v", err)
	}

	calls := []Call3{
		{Target: common.HexToAddress("0x01"), AllowFailure: false, CallData: []byte{0xaa, 0xbb, 0xcc, 0xdd}},
		{Target: common.HexToAddress("0x02"), AllowFailure: true, CallData: []byte{0x11, 0x22, 0x33, 0x44}},
	}

	got, err := multicall.Aggregate3(&bind.CallOpts{Context: context.Background()}, calls)
	if err != nil {
		t.Fatalf("Aggregate3: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Aggregate3 returned %d results, want 2", len(got))
	}
	if !got[0].Success || string(got[0].ReturnData) != "\x01\x02" {
		t.Errorf("result 0 = %+v", got[0])
	}
	if got[1].Success {
		t.Errorf("result 1 success = true, want false")
	}
}
