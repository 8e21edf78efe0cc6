// Copyright 2025 Certen Protocol
//
// Minimal Go binding for IDisputeGameFactory (view-only).

package contracts

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

const disputeGameFactoryABI = `[
	{"type":"function","name":"gameAtIndex","stateMutability":"view","inputs":[{"name":"_index","type":"uint256"}],"outputs":[
		{"name":"gameType_","type":"uint256"},
		{"name":"timestamp_","type":"uint64"},
		{"name":"proxy_","type":"address"}
	]}
]`

// DisputeGameFactory is a view-only binding for IDisputeGameFactory.
type DisputeGameFactory struct {
	bound *bind.BoundContract
}

// NewDisputeGameFactory binds DisputeGameFactory to address using caller for reads.
func NewDisputeGameFactory(address common.Address, caller bind.ContractCaller) (*DisputeGameFactory, error) {
	parsed, err := abi.JSON(strings.NewReader(disputeGameFactoryABI))
	if err != nil {
		return nil, err
	}
	return &DisputeGameFactory{bound: bind.NewBoundContract(address, parsed, caller, nil, nil)}, nil
}

// GameAtIndexResult is the decoded return tuple of gameAtIndex.
type GameAtIndexResult struct {
	GameType  *big.Int
	CreatedAt uint64
	Game      common.Address
}

// GameAtIndex calls gameAtIndex(uint256) -> (uint256, uint64, address).
func (f *DisputeGameFactory) GameAtIndex(opts *bind.CallOpts, index *big.Int) (GameAtIndexResult, error) {
	var out []interface{}
	if err := f.bound.Call(opts, &out, "gameAtIndex", index); err != nil {
		return GameAtIndexResult{}, err
	}
	return GameAtIndexResult{
		GameType:  *abi.ConvertType(out[0], new(*big.Int)).(**big.Int),
		CreatedAt: *abi.ConvertType(out[1], new(uint64)).(*uint64),
		Game:      *abi.ConvertType(out[2], new(common.Address)).(*common.Address),
	}, nil
}
