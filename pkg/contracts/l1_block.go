// Copyright 2025 Certen Protocol
//
// Minimal Go binding for the OP Stack L1Block predeploy (view-only).

package contracts

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

const l1BlockABI = `[
	{"type":"function","name":"hash","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"bytes32"}]}
]`

// L1Block is a view-only binding for the L1Block predeploy's hash() getter,
// which exposes the most recent L1 block hash an OP Stack L2 has observed.
type L1Block struct {
	bound *bind.BoundContract
}

// NewL1Block binds L1Block to address using caller for reads.
func NewL1Block(address common.Address, caller bind.ContractCaller) (*L1Block, error) {
	parsed, err := abi.JSON(strings.NewReader(l1BlockABI))
	if err != nil {
		return nil, err
	}
	return &L1Block{bound: bind.NewBoundContract(address, parsed, caller, nil, nil)}, nil
}

// Hash calls hash() -> bytes32.
func (l *L1Block) Hash(opts *bind.CallOpts) (common.Hash, error) {
	var out []interface{}
	if err := l.bound.Call(opts, &out, "hash"); err != nil {
		return common.Hash{}, err
	}
	raw := *abi.ConvertType(out[0], new([32]byte)).(*[32]byte)
	return common.BytesToHash(raw[:]), nil
}
