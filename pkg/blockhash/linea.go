// Copyright 2025 Certen Protocol
//
// Linea block validation: recovers the signer from a Linea header's
// extra_data suffix and compares it to the hardcoded sequencer, with an
// optional, deliberately weak L1-inclusion check.

package blockhash

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/certen/chain-validator/pkg/chainspec"
	"github.com/certen/chain-validator/pkg/contracts"
	"github.com/certen/chain-validator/pkg/evmenv"
)

const lineaSignatureLength = 65

// ValidateLineaEnv checks that header was signed by the expected Linea
// sequencer for chainID. The final 65 bytes of header.ExtraData are an
// ECDSA signature over the Keccak hash of the header with ExtraData
// truncated to its prefix.
func ValidateLineaEnv(chainID chainspec.ChainID, header evmenv.Header) error {
	spec, err := chainspec.Lookup(chainID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnknownChain, err)
	}
	if spec.Family != chainspec.FamilyLinea {
		return fmt.Errorf("%w: %d is not a linea chain", ErrUnknownChain, uint64(chainID))
	}

	extra := header.ExtraData
	if len(extra) < lineaSignatureLength {
		return fmt.Errorf("blockhash: linea extra_data is %d bytes, need at least %d", len(extra), lineaSignatureLength)
	}
	prefixLen := len(extra) - lineaSignatureLength
	sigBytes := extra[prefixLen:]

	sig := make([]byte, lineaSignatureLength)
	copy(sig, sigBytes)
	if sig[64] >= 27 {
		sig[64] -= 27
	}

	unsigned := header.WithTruncatedExtraData(prefixLen)
	sighash := unsigned.HashSlow()

	pub, err := crypto.SigToPub(sighash.Bytes(), sig)
	if err != nil {
		return fmt.Errorf("blockhash: recover linea sequencer signature: %w", err)
	}
	sequencer := crypto.PubkeyToAddress(*pub)

	if sequencer != spec.Sequencer {
		return fmt.Errorf("%w: got %s, expected %s", ErrSignerMismatch, sequencer, spec.Sequencer)
	}
	return nil
}

// ValidateLineaL1Inclusion checks that l1Env seals ethereumHash and that the
// Linea block number an env was constructed for is at most the
// currentL2BlockNumber the L1 message service reports.
//
// This only compares block numbers, not block hashes: it is insufficient to
// fully prove L1 inclusion, since a malicious host could present a
// different L2 block at the same number. This is a known, deliberately
// accepted gap pending a hash oracle on the message-service contract.
func ValidateLineaL1Inclusion(ctx context.Context, chainID chainspec.ChainID, envBlockNumber uint64, l1Env evmenv.EvmEnv, ethereumHash common.Hash) error {
	spec, err := chainspec.Lookup(chainID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnknownChain, err)
	}
	if spec.Family != chainspec.FamilyLinea {
		return fmt.Errorf("%w: %d is not a linea chain", ErrUnknownChain, uint64(chainID))
	}

	ethHash := l1Env.Seal()
	if ethereumHash != ethHash {
		return fmt.Errorf("%w: ethereum hash %s != l1 env seal %s", ErrHashMismatch, ethereumHash, ethHash)
	}

	msgService, err := contracts.NewL1MessageService(spec.MessageService, l1Env.Caller())
	if err != nil {
		return fmt.Errorf("blockhash: bind l1 message service: %w", err)
	}
	callOpts := &bind.CallOpts{Context: ctx, BlockNumber: l1Env.BlockNumber()}
	l2BlockNumber, err := msgService.CurrentL2BlockNumber(callOpts)
	if err != nil {
		return fmt.Errorf("blockhash: read currentL2BlockNumber: %w", err)
	}

	if l2BlockNumber.Cmp(new(big.Int).SetUint64(envBlockNumber)) < 0 {
		return fmt.Errorf("blockhash: linea block %d not yet posted to L1 (currentL2BlockNumber=%s)", envBlockNumber, l2BlockNumber)
	}
	return nil
}

// ValidateLineaBlockHash dispatches the Linea checks: the signature check
// always runs; the L1-inclusion check runs only when requested, reusing
// the Ethereum hash established via the L1-via-OpStack path.
func ValidateLineaBlockHash(
	ctx context.Context,
	chainID chainspec.ChainID,
	envHeader evmenv.Header,
	blockHeaderToValidate evmenv.Header,
	witness OpStackWitness,
	validateL1Inclusion bool,
	l1InclusionEnv *evmenv.EvmEnv,
) (common.Hash, error) {
	if validateL1Inclusion {
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

		if l1InclusionEnv == nil {
			return common.Hash{}, fmt.Errorf("%w: linea l1-inclusion eth env", ErrMissingInput)
		}
		if err := ValidateLineaL1Inclusion(ctx, chainID, envHeader.Number, *l1InclusionEnv, ethereumHash); err != nil {
			return common.Hash{}, err
		}
	}

	if err := ValidateLineaEnv(chainID, blockHeaderToValidate); err != nil {
		return common.Hash{}, err
	}

	return blockHeaderToValidate.HashSlow(), nil
}
