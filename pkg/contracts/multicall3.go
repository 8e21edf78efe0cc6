// Copyright 2025 Certen Protocol
//
// Minimal Go binding for IMulticall3's aggregate3, used by ProofDataBatcher
// to batch one view-call per (account, asset, target chain) row into a
// single contract read.

package contracts

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

const multicall3ABI = `[
	{"type":"function","name":"aggregate3","stateMutability":"view","inputs":[
		{"name":"calls","type":"tuple[]","components":[
			{"name":"target","type":"address"},
			{"name":"allowFailure","type":"bool"},
			{"name":"callData","type":"bytes"}
		]}
	],"outputs":[
		{"name":"returnData","type":"tuple[]","components":[
			{"name":"success","type":"bool"},
			{"name":"returnData","type":"bytes"}
		]}
	]}
]`

// Call3 is IMulticall3.Call3: one batched call with its failure policy.
type Call3 struct {
	Target       common.Address
	AllowFailure bool
	CallData     []byte
}

// Result3 is IMulticall3.Result: the outcome of one batched call.
type Result3 struct {
	Success    bool
	ReturnData []byte
}

// Multicall3 is a view-only binding for IMulticall3.
type Multicall3 struct {
	bound *bind.BoundContract
}

// NewMulticall3 binds Multicall3 to address using caller for reads.
func NewMulticall3(address common.Address, caller bind.ContractCaller) (*Multicall3, error) {
	parsed, err := abi.JSON(strings.NewReader(multicall3ABI))
	if err != nil {
		return nil, err
	}
	return &Multicall3{bound: bind.NewBoundContract(address, parsed, caller, nil, nil)}, nil
}

// Aggregate3 calls aggregate3(Call3[]) -> Result3[]. Every call is
// submitted with allowFailure=false, so a reverting call surfaces as a
// call error rather than a per-row success=false.
func (m *Multicall3) Aggregate3(opts *bind.CallOpts, calls []Call3) ([]Result3, error) {
	var out []interface{}
	if err := m.bound.Call(opts, &out, "aggregate3", calls); err != nil {
		return nil, err
	}
	raw := *abi.ConvertType(out[0], new([]struct {
		Success    bool
		ReturnData []byte
	})).(*[]struct {
		Success    bool
		ReturnData []byte
	})
	results := make([]Result3, len(raw))
	for i, r := range raw {
		results[i] = Result3{Success: r.Success, ReturnData: r.ReturnData}
	}
	return results, nil
}
