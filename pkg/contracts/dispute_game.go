// Copyright 2025 Certen Protocol
//
// Minimal Go binding for IDisputeGame (view-only).

package contracts

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// GameStatus mirrors the OptimismPortal's GameStatus enum. Only
// DEFENDER_WINS is meaningful to this core.
type GameStatus uint8

const (
	GameStatusInProgress GameStatus = iota
	GameStatusChallengerWins
	GameStatusDefenderWins
)

const disputeGameABI = `[
	{"type":"function","name":"status","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint8"}]},
	{"type":"function","name":"resolvedAt","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint64"}]},
	{"type":"function","name":"rootClaim","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"bytes32"}]}
]`

// DisputeGame is a view-only binding for IDisputeGame.
type DisputeGame struct {
	bound *bind.BoundContract
}

// NewDisputeGame binds DisputeGame to address using caller for reads.
func NewDisputeGame(address common.Address, caller bind.ContractCaller) (*DisputeGame, error) {
	parsed, err := abi.JSON(strings.NewReader(disputeGameABI))
	if err != nil {
		return nil, err
	}
	return &DisputeGame{bound: bind.NewBoundContract(address, parsed, caller, nil, nil)}, nil
}

// Status calls status() -> GameStatus.
func (g *DisputeGame) Status(opts *bind.CallOpts) (GameStatus, error) {
	var out []interface{}
	if err := g.bound.Call(opts, &out, "status"); err != nil {
		return 0, err
	}
	return GameStatus(*abi.ConvertType(out[0], new(uint8)).(*uint8)), nil
}

// ResolvedAt calls resolvedAt() -> uint64.
func (g *DisputeGame) ResolvedAt(opts *bind.CallOpts) (uint64, error) {
	var out []interface{}
	if err := g.bound.Call(opts, &out, "resolvedAt"); err != nil {
		return 0, err
	}
	return *abi.ConvertType(out[0], new(uint64)).(*uint64), nil
}

// RootClaim calls rootClaim() -> bytes32.
func (g *DisputeGame) RootClaim(opts *bind.CallOpts) (common.Hash, error) {
	var out []interface{}
	if err := g.bound.Call(opts, &out, "rootClaim"); err != nil {
		return common.Hash{}, err
	}
	raw := *abi.ConvertType(out[0], new([32]byte)).(*[32]byte)
	return common.BytesToHash(raw[:]), nil
}
