// Copyright 2025 Certen Protocol
//
// Minimal Go binding for IOptimismPortal (view-only). Hand-written against
// the subset of the OptimismPortal ABI the validation core reads, in the
// style of an abigen-generated wrapper but without the Transact/Filter
// surface this core never uses.

package contracts

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

const optimismPortalABI = `[
	{"type":"function","name":"disputeGameFactory","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]},
	{"type":"function","name":"respectedGameTypeUpdatedAt","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint64"}]},
	{"type":"function","name":"disputeGameBlacklist","stateMutability":"view","inputs":[{"name":"game","type":"address"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"proofMaturityDelaySeconds","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]}
]`

// OptimismPortal is a view-only binding for IOptimismPortal.
type OptimismPortal struct {
	bound *bind.BoundContract
}

// NewOptimismPortal binds OptimismPortal to address using caller for reads.
func NewOptimismPortal(address common.Address, caller bind.ContractCaller) (*OptimismPortal, error) {
	parsed, err := abi.JSON(strings.NewReader(optimismPortalABI))
	if err != nil {
		return nil, err
	}
	return &OptimismPortal{bound: bind.NewBoundContract(address, parsed, caller, nil, nil)}, nil
}

// DisputeGameFactory calls disputeGameFactory() -> address.
func (p *OptimismPortal) DisputeGameFactory(opts *bind.CallOpts) (common.Address, error) {
	var out []interface{}
	if err := p.bound.Call(opts, &out, "disputeGameFactory"); err != nil {
		return common.Address{}, err
	}
	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

// RespectedGameTypeUpdatedAt calls respectedGameTypeUpdatedAt() -> uint64.
func (p *OptimismPortal) RespectedGameTypeUpdatedAt(opts *bind.CallOpts) (uint64, error) {
	var out []interface{}
	if err := p.bound.Call(opts, &out, "respectedGameTypeUpdatedAt"); err != nil {
		return 0, err
	}
	return *abi.ConvertType(out[0], new(uint64)).(*uint64), nil
}

// DisputeGameBlacklist calls disputeGameBlacklist(address) -> bool.
func (p *OptimismPortal) DisputeGameBlacklist(opts *bind.CallOpts, game common.Address) (bool, error) {
	var out []interface{}
	if err := p.bound.Call(opts, &out, "disputeGameBlacklist", game); err != nil {
		return false, err
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

// ProofMaturityDelaySeconds calls proofMaturityDelaySeconds() -> uint256.
func (p *OptimismPortal) ProofMaturityDelaySeconds(opts *bind.CallOpts) (*big.Int, error) {
	var out []interface{}
	if err := p.bound.Call(opts, &out, "proofMaturityDelaySeconds"); err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}
