// Copyright 2025 Certen Protocol
//
// Package blockhash dispatches on origin chain family to the Linea,
// OpStack, or Ethereum-via-OpStack validator and returns the validated
// block hash pkg/chainlength walks from.

package blockhash

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/certen/chain-validator/pkg/chainspec"
	"github.com/certen/chain-validator/pkg/evmenv"
)

// Witnesses bundles every optional input the dispatch might need.
type Witnesses struct {
	SequencerCommitment *evmenv.SequencerCommitment
	L1Block             L1Witness
	L1Block2            L1Witness
}

// Validate dispatches on chainID's family and returns the validated block
// hash.
func Validate(
	ctx context.Context,
	chainID chainspec.ChainID,
	envHeader evmenv.Header,
	blockHeaderToValidate evmenv.Header,
	witnesses Witnesses,
	validateL1Inclusion bool,
	l1InclusionEnv *evmenv.EvmEnv,
	opEnvCommitment *evmenv.Commitment,
) (common.Hash, error) {
	spec, err := chainspec.Lookup(chainID)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: %v", ErrUnknownChain, err)
	}

	opWitness := OpStackWitness{
		SequencerCommitment: witnesses.SequencerCommitment,
		L1Block:             witnesses.L1Block,
		L1Block2:            witnesses.L1Block2,
	}

	switch spec.Family {
	case chainspec.FamilyLinea:
		return ValidateLineaBlockHash(ctx, chainID, envHeader, blockHeaderToValidate, opWitness, validateL1Inclusion, l1InclusionEnv)

	case chainspec.FamilyOpStack:
		return ValidateOpStackBlockHash(ctx, chainID, blockHeaderToValidate, opWitness, validateL1Inclusion, l1InclusionEnv, opEnvCommitment)

	case chainspec.FamilyEthereum:
		// Ethereum L1 is always validated indirectly via an OpStack L2.
		return ValidateEthereumBlockHashViaOpStack(ctx, chainID, L1Witness{
			SequencerCommitment: witnesses.SequencerCommitment,
			EnvInput:            witnesses.L1Block.EnvInput,
		}, witnesses.L1Block2)

	default:
		return common.Hash{}, fmt.Errorf("%w: %d", ErrUnknownChain, uint64(chainID))
	}
}
