// Copyright 2025 Certen Protocol
//
// Header and hashing primitives for the validation core. These mirror the
// EVM block header shape the embedded execution host seals blocks with;
// RLP encoding and Keccak hashing are delegated to go-ethereum rather than
// reimplemented here.

package evmenv

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// BlockHash is a 32-byte Keccak hash of an RLP-encoded header.
type BlockHash = common.Hash

// Header is the subset of an EVM block header the validation core reasons
// about: parent linkage, ordering, timing, and the sequencer extra-data
// suffix Linea signs over.
type Header struct {
	ParentHash common.Hash
	Number     uint64
	Timestamp  uint64
	ExtraData  []byte

	// Remaining header fields the RLP encoding needs to reproduce the
	// exact on-chain hash. These are opaque to validation logic; the core
	// never reads them directly.
	Rest *types.Header
}

// toGethHeader returns the go-ethereum header this Header represents,
// substituting ParentHash/Number/Timestamp/ExtraData for whatever Rest
// carries so callers can mutate ExtraData (e.g. to strip the Linea
// signature suffix) without touching the other fields.
func (h Header) toGethHeader() *types.Header {
	var gh types.Header
	if h.Rest != nil {
		gh = *h.Rest
	}
	gh.ParentHash = h.ParentHash
	gh.Number = new(big.Int).SetUint64(h.Number)
	gh.Time = h.Timestamp
	gh.Extra = h.ExtraData
	return &gh
}

// HashSlow computes the canonical Keccak-256 hash of the RLP-encoded
// header. It is never cached, so calling it twice after mutating
// ExtraData yields two different hashes.
func (h Header) HashSlow() common.Hash {
	return h.toGethHeader().Hash()
}

// WithTruncatedExtraData returns a copy of h whose ExtraData is the first
// n bytes of the original, used to reproduce the Linea sighash that
// excludes the trailing 65-byte sequencer signature.
func (h Header) WithTruncatedExtraData(n int) Header {
	cp := h
	cp.ExtraData = append([]byte(nil), h.ExtraData[:n]...)
	return cp
}

// LinkingChain is a finite ordered sequence of headers bridging a
// validated historical hash to the current hash an env was constructed
// against.
type LinkingChain []Header
