// Copyright 2025 Certen Protocol
//
// Ethereum L1 validation via an OpStack L2: the Ethereum L1 hash is never
// trusted directly from the input. It is read from the L1Block precompile
// inside a verified OpStack environment.

package blockhash

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/certen/chain-validator/pkg/chainspec"
	"github.com/certen/chain-validator/pkg/contracts"
	"github.com/certen/chain-validator/pkg/evmenv"
)

// L1Witness is the primary (and, as an as-yet-unread secondary) sequencer
// commitment and OpStack env input used to indirectly attest to an L1
// block hash.
type L1Witness struct {
	SequencerCommitment *evmenv.SequencerCommitment
	EnvInput            *evmenv.EthEnvInput
}

// ValidateEthereumBlockHashViaOpStack returns the L1 block hash for
// l1ChainID, established by validating an OpStack sequencer commitment and
// reading the L1Block precompile inside the resulting env. witness2 is
// accepted but never read — it is a reserved two-witness extension point;
// a future "verify across Optimism and Base" mode would consume it here.
func ValidateEthereumBlockHashViaOpStack(ctx context.Context, l1ChainID chainspec.ChainID, witness L1Witness, witness2 L1Witness) (common.Hash, error) {
	if witness.EnvInput == nil {
		return common.Hash{}, fmt.Errorf("%w: l1-block env input", ErrMissingInput)
	}
	if witness.SequencerCommitment == nil {
		return common.Hash{}, fmt.Errorf("%w: l1-block sequencer commitment", ErrMissingInput)
	}

	verifyVia, _, err := chainspec.VerifyViaOpStack(l1ChainID)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: %v", ErrUnknownChain, err)
	}

	opEnv := witness.EnvInput.IntoEnv(uint64(chainspec.Ethereum))

	if err := ValidateOpStackEnv(verifyVia, *witness.SequencerCommitment, opEnv.Commitment().Digest); err != nil {
		return common.Hash{}, err
	}

	l1Block, err := contracts.NewL1Block(chainspec.L1BlockAddress, opEnv.Caller())
	if err != nil {
		return common.Hash{}, fmt.Errorf("blockhash: bind l1 block precompile: %w", err)
	}
	callOpts := &bind.CallOpts{Context: ctx, BlockNumber: opEnv.BlockNumber()}
	l1Hash, err := l1Block.Hash(callOpts)
	if err != nil {
		return common.Hash{}, fmt.Errorf("blockhash: read l1block hash(): %w", err)
	}

	// witness2 is reserved for a future dual-path check
	// (assert l1Hash == hash read via witness2's chain).
	_ = witness2

	return l1Hash, nil
}
