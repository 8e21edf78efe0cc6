// Copyright 2025 Certen Protocol
//
// Minimal Go binding for Linea's L1 message-service contract (view-only).

package contracts

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

const l1MessageServiceABI = `[
	{"type":"function","name":"currentL2BlockNumber","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]}
]`

// L1MessageService is a view-only binding for Linea's IL1MessageService.
type L1MessageService struct {
	bound *bind.BoundContract
}

// NewL1MessageService binds L1MessageService to address using caller for reads.
func NewL1MessageService(address common.Address, caller bind.ContractCaller) (*L1MessageService, error) {
	parsed, err := abi.JSON(strings.NewReader(l1MessageServiceABI))
	if err != nil {
		return nil, err
	}
	return &L1MessageService{bound: bind.NewBoundContract(address, parsed, caller, nil, nil)}, nil
}

// CurrentL2BlockNumber calls currentL2BlockNumber() -> uint256, the highest
// Linea L2 block number the message service has observed as posted to L1.
func (m *L1MessageService) CurrentL2BlockNumber(opts *bind.CallOpts) (*big.Int, error) {
	var out []interface{}
	if err := m.bound.Call(opts, &out, "currentL2BlockNumber"); err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}
