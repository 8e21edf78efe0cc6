// Copyright 2025 Certen Protocol
//
// EvmEnv is a pre-verified view over one chain's state at a specific block.
// Building one is the job of the (out of scope) embedded EVM execution
// host; this package only specifies the shape the validation core consumes
// and the view-call facility it is given.

package evmenv

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// Kind distinguishes the two env factory flavors: an Ethereum-style env and
// an OpStack env. Both carry the same fields; only the tag differs. Go has no
// zero-cost generic substitute for "Factory" that also lets the core
// dispatch on flavor at runtime, so EvmEnv is one concrete struct tagged
// with Kind rather than a generic type over the two flavors.
type Kind int

const (
	KindEthereum Kind = iota
	KindOptimism
)

// ContractCaller is the view-only execution facility an EvmEnv's host backs
// contract reads with. It is exactly go-ethereum's bind.ContractCaller, so
// production code can hand an *ethclient.Client straight through and tests
// can hand a lightweight fake without either depending on RPC transport.
type ContractCaller = bind.ContractCaller

// EvmEnv is an immutable, pre-verified view over one chain's state at a
// specific block, exposing a header, a host-produced commitment, and a
// view-only contract-call facility.
type EvmEnv struct {
	kind       Kind
	chainSpecID uint64
	header     Header
	commitment Commitment
	caller     ContractCaller
	blockNumber *big.Int
}

// EthEnvInput is the host-supplied witness data used to construct an
// Ethereum-flavored EvmEnv. It is opaque beyond what the core needs: the
// sealed header and the block's commitment, plus a caller for contract
// reads against that exact state.
type EthEnvInput struct {
	Header     Header
	Commitment Commitment
	Caller     ContractCaller
	BlockNumber *big.Int
}

// IntoEnv materializes an Ethereum EvmEnv bound to chainSpecID.
func (in EthEnvInput) IntoEnv(chainSpecID uint64) EvmEnv {
	return EvmEnv{
		kind:        KindEthereum,
		chainSpecID: chainSpecID,
		header:      in.Header,
		commitment:  in.Commitment,
		caller:      in.Caller,
		blockNumber: in.BlockNumber,
	}
}

// OpEnvInput is the OpStack-flavored counterpart of EthEnvInput.
type OpEnvInput struct {
	Header     Header
	Commitment Commitment
	Caller     ContractCaller
	BlockNumber *big.Int
}

// IntoEnv materializes an OpStack EvmEnv bound to chainSpecID.
func (in OpEnvInput) IntoEnv(chainSpecID uint64) EvmEnv {
	return EvmEnv{
		kind:        KindOptimism,
		chainSpecID: chainSpecID,
		header:      in.Header,
		commitment:  in.Commitment,
		caller:      in.Caller,
		blockNumber: in.BlockNumber,
	}
}

// Header returns the block header this env was built against.
func (e EvmEnv) Header() Header { return e.header }

// Seal returns the canonical hash of the env's header, recomputed locally
// with HashSlow; EvmEnv stores no separately sealed hash.
func (e EvmEnv) Seal() common.Hash { return e.header.HashSlow() }

// Commitment returns the host-produced commitment for this env.
func (e EvmEnv) Commitment() Commitment { return e.commitment }

// Caller returns the view-call facility backing this env.
func (e EvmEnv) Caller() ContractCaller { return e.caller }

// BlockNumber returns the block this env pins contract reads to.
func (e EvmEnv) BlockNumber() *big.Int { return e.blockNumber }

// Kind reports which factory flavor produced this env.
func (e EvmEnv) Kind() Kind { return e.kind }
