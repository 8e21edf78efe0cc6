// Copyright 2025 Certen Protocol
//
// Package validator is the validation core's single entry point: it
// normalizes a request, validates the block hash it is anchored to across
// every supported chain family, validates the reorg-protection chain
// length, and then executes and packs the batched proof-data call. A
// caller holding a []byte slice returned from Validate can trust that
// every row in it was read against a canonical, sufficiently finalized
// block.
package validator

import (
	"context"
	"fmt"

	"github.com/certen/chain-validator/pkg/blockhash"
	"github.com/certen/chain-validator/pkg/chainlength"
	"github.com/certen/chain-validator/pkg/paramsort"
	"github.com/certen/chain-validator/pkg/proofbatch"
)

// Result is one tightly packed output row produced by the batched
// proof-data call, in the order (account, asset, target_chain_id) was
// given in the request.
type Result = []byte

// Request re-exports paramsort.Request as the package's public entry-point
// type, so callers depend on one name for "everything the validator needs"
// rather than reaching into an internal package directly.
type Request = paramsort.Request

// Validate runs the full validation pipeline:
//  1. paramsort normalizes the request.
//  2. blockhash validates the anchor block across chain families.
//  3. chainlength enforces reorg-protection depth.
//  4. proofbatch executes the batched view-call and packs results.
//
// Any failure anywhere in the pipeline is wrapped in ErrValidationFailed.
func Validate(ctx context.Context, req Request) ([][]byte, error) {
	sorted, err := paramsort.Sort(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	witnesses := blockhash.Witnesses{
		SequencerCommitment: req.SequencerCommitment,
		L1Block: blockhash.L1Witness{
			SequencerCommitment: req.SequencerCommitment,
			EnvInput:            req.L1BlockEnvInput,
		},
		L1Block2: blockhash.L1Witness{
			SequencerCommitment: req.SequencerCommitment2,
			EnvInput:            req.L1BlockEnvInput2,
		},
	}

	validatedHash, err := blockhash.Validate(
		ctx,
		req.ChainID,
		sorted.EnvHeaderInner,
		sorted.BlockHeaderToValidate,
		witnesses,
		sorted.ValidateL1Inclusion,
		sorted.L1InclusionEnv,
		sorted.OpEnvCommitment,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: block hash: %v", ErrValidationFailed, err)
	}

	historicalHash := sorted.EnvHeaderHashToValidate
	if err := chainlength.Validate(sorted.ChainIDForLengthValidation, historicalHash, req.LinkingBlocks, validatedHash); err != nil {
		return nil, fmt.Errorf("%w: chain length: %v", ErrValidationFailed, err)
	}

	viewcallEnv := sorted.EnvForViewcall
	if sorted.OpEnvForViewcallWithL1Incl != nil {
		viewcallEnv = *sorted.OpEnvForViewcallWithL1Incl
	}

	rows, err := proofbatch.Batch(ctx, req.ChainID, req.Accounts, req.Assets, req.TargetChainIDs, viewcallEnv, sorted.ValidateL1Inclusion)
	if err != nil {
		return nil, fmt.Errorf("%w: proof batch: %v", ErrValidationFailed, err)
	}

	return rows, nil
}
