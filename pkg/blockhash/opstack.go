// Copyright 2025 Certen Protocol
//
// OpStack block validation: direct mode verifies a sequencer commitment
// against the block header hash; L1-inclusion mode additionally threads
// the Ethereum hash through the L1-via-OpStack path and the dispute game
// through the finality check.

package blockhash

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/certen/chain-validator/pkg/chainspec"
	"github.com/certen/chain-validator/pkg/evmenv"
)

// ValidateOpStackEnv verifies that commitment was signed by chainID's
// sequencer and that its execution payload's block hash equals
// expectedBlockHash. This is the shared primitive both direct OpStack
// validation and the L1-via-OpStack indirection build on.
func ValidateOpStackEnv(chainID chainspec.ChainID, commitment evmenv.SequencerCommitment, expectedBlockHash common.Hash) error {
	return VerifySequencerCommitment(commitment, chainID, expectedBlockHash)
}

// OpStackWitness bundles the witness inputs for both modes: direct mode
// reads only SequencerCommitment; L1-inclusion mode also reads L1Block.
type OpStackWitness struct {
	SequencerCommitment *evmenv.SequencerCommitment
	L1Block             L1Witness
	L1Block2            L1Witness
}

// ValidateOpStackBlockHash validates an OpStack block. In direct mode it
// verifies the primary sequencer commitment against the hash of
// blockHeaderToValidate. In L1-inclusion mode it instead derives the
// Ethereum hash via the L1-via-OpStack path, asserts it equals the header
// hash, and runs the dispute-game finality check against ethEnv and
// opEnvCommitment.
func ValidateOpStackBlockHash(
	ctx context.Context,
	chainID chainspec.ChainID,
	blockHeaderToValidate evmenv.Header,
	witness OpStackWitness,
	validateL1Inclusion bool,
	l1InclusionEthEnv *evmenv.EvmEnv,
	opEnvCommitment *evmenv.Commitment,
) (common.Hash, error) {
	validatedHash := blockHeaderToValidate.HashSlow()

	if !validateL1Inclusion {
		if witness.SequencerCommitment == nil {
			return common.Hash{}, fmt.Errorf("%w: opstack sequencer commitment", ErrMissingInput)
		}
		if err := ValidateOpStackEnv(chainID, *witness.SequencerCommitment, validatedHash); err != nil {
			return common.Hash{}, err
		}
		return validatedHash, nil
	}

	ethereumChainID, err := chainspec.L1Of(chainID)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: %v", ErrUnknownChain, err)
	}

	ethereumHash, err := ValidateEthereumBlockHashViaOpStack(ctx, ethereumChainID, L1Witness{
		SequencerCommitment: witness.SequencerCommitment,
		EnvInput:            witness.L1Block.EnvInput,
	}, witness.L1Block2)
	if err != nil {
		return common.Hash{}, err
	}
	if ethereumHash != validatedHash {
		return common.Hash{}, fmt.Errorf("%w: ethereum hash %s != opstack header hash %s", ErrHashMismatch, ethereumHash, validatedHash)
	}

	if l1InclusionEthEnv == nil || opEnvCommitment == nil {
		return common.Hash{}, fmt.Errorf("%w: l1-inclusion eth env / op env commitment", ErrMissingInput)
	}
	if err := ValidateOpStackDisputeGameCommitment(ctx, chainID, *l1InclusionEthEnv, *opEnvCommitment); err != nil {
		return common.Hash{}, err
	}

	return validatedHash, nil
}
