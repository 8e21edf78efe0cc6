// Copyright 2025 Certen Protocol
//
// Package chainlength walks a header chain from a validated historical
// hash to the current hash, enforcing the chain-specific reorg-protection
// depth.

package chainlength

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/certen/chain-validator/pkg/chainspec"
	"github.com/certen/chain-validator/pkg/evmenv"
)

// Sentinel errors for chain-length validation failures.
var (
	ErrShortChain  = errors.New("chainlength: chain length is less than reorg protection depth")
	ErrNotLinked   = errors.New("chainlength: blocks are not hash-linked")
	ErrEndMismatch = errors.New("chainlength: final hash does not match the validated current hash")
)

// Validate walks linkingBlocks from historicalHash to currentHash,
// asserting:
//   - len(linkingBlocks) >= required_depth(chainID)
//   - linkingBlocks[0].ParentHash == historicalHash
//   - linkingBlocks[i].ParentHash == hash_slow(linkingBlocks[i-1]) for i>0
//   - hash_slow(linkingBlocks[len-1]) == currentHash
func Validate(chainID chainspec.ChainID, historicalHash common.Hash, linkingBlocks evmenv.LinkingChain, currentHash common.Hash) error {
	spec, err := chainspec.Lookup(chainID)
	if err != nil {
		return fmt.Errorf("chainlength: %w", err)
	}

	chainLen := uint64(len(linkingBlocks))
	if chainLen < spec.ReorgDepth {
		return fmt.Errorf("%w: have %d, need >= %d", ErrShortChain, chainLen, spec.ReorgDepth)
	}

	previousHash := historicalHash
	for i, header := range linkingBlocks {
		if header.ParentHash != previousHash {
			return fmt.Errorf("%w: block %d parent %s != expected %s", ErrNotLinked, i, header.ParentHash, previousHash)
		}
		previousHash = header.HashSlow()
	}

	if previousHash != currentHash {
		return fmt.Errorf("%w: got %s, expected %s", ErrEndMismatch, previousHash, currentHash)
	}
	return nil
}
