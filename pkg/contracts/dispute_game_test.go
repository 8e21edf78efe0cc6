// Copyright 2025 Certen Protocol

package contracts

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

func TestDisputeGame_Reads(t *testing.T) {
	caller := newFakeCaller()
	rootClaim := common.HexToHash("0xbeef")

	caller.returns[selectorOf(t, disputeGameABI, "status")] = packReturn(t, disputeGameABI, "status", uint8(GameStatusDefenderWins))
	caller.returns[selectorOf(t, disputeGameABI, "resolvedAt")] = packReturn(t, disputeGameABI, "resolvedAt", uint64(1700000000))
	caller.returns[selectorOf(t, disputeGameABI, "rootClaim")] = packReturn(t, disputeGameABI, "rootClaim", rootClaim)

	game, err := NewDisputeGame(common.HexToAddress("0x01"), caller)
	if err != nil {
		t.Fatalf("NewDisputeGame: %v", err)
	}
	opts := &bind.CallOpts{Context: context.Background()}

	status, err := game.Status(opts)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if status != GameStatusDefenderWins {
		t.Errorf("Status = %d, want %d", status, GameStatusDefenderWins)
	}

	resolvedAt, err := game.ResolvedAt(opts)
	if err != nil {
		t.Fatalf("ResolvedAt: %v", err)
	}
	if resolvedAt != 1700000000 {
		t.Errorf("ResolvedAt = %d, want 1700000000", resolvedAt)
	}

	gotRootClaim, err := game.RootClaim(opts)
	if err != nil {
		t.Fatalf("RootClaim: %v", err)
	}
	if gotRootClaim != rootClaim {
		t.Errorf("RootClaim = %s, want %s", gotRootClaim, rootClaim)
	}
}
