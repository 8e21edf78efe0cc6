// Copyright 2025 Certen Protocol
//
// SequencerCommitment verifier: given a commitment and chain id, verifies
// the sequencer's signature and that the execution payload's block hash
// matches the expected hash.

package blockhash

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/certen/chain-validator/pkg/chainspec"
	"github.com/certen/chain-validator/pkg/evmenv"
)

// VerifySequencerCommitment verifies commitment against the compile-time
// sequencer address for chainID and asserts its execution payload's block
// hash equals expectedHash. Any failure is fatal.
func VerifySequencerCommitment(commitment evmenv.SequencerCommitment, chainID chainspec.ChainID, expectedHash common.Hash) error {
	spec, err := chainspec.Lookup(chainID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnknownChain, err)
	}
	if spec.Family != chainspec.FamilyOpStack {
		return fmt.Errorf("%w: %d is not an opstack chain", ErrUnknownChain, uint64(chainID))
	}

	if err := commitment.Verify(spec.Sequencer, uint64(chainID)); err != nil {
		return fmt.Errorf("blockhash: verify sequencer commitment for %s: %w", spec.Name, err)
	}

	payload, err := commitment.ToExecutionPayload()
	if err != nil {
		return fmt.Errorf("blockhash: decode execution payload: %w", err)
	}
	if payload.BlockHash != expectedHash {
		return fmt.Errorf("%w: execution payload block hash %s != expected %s", ErrHashMismatch, payload.BlockHash, expectedHash)
	}
	return nil
}
