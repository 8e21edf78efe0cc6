// Copyright 2025 Certen Protocol
//
// Package paramsort normalizes the combinatorial input bundle a validation
// request arrives as, selects the environments the rest of the pipeline
// runs against, and computes the header to validate.

package paramsort

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/certen/chain-validator/pkg/chainspec"
	"github.com/certen/chain-validator/pkg/evmenv"
)

// Request is the validation core's entry-point argument bundle: a
// Go-idiomatic, tagged struct replacing a long list of positional
// optional parameters.
type Request struct {
	ChainID        chainspec.ChainID
	Accounts       []common.Address
	Assets         []common.Address
	TargetChainIDs []uint64
	LinkingBlocks  evmenv.LinkingChain

	ViewCallEnvInput   *evmenv.EthEnvInput
	SequencerCommitment *evmenv.SequencerCommitment
	L1BlockEnvInput    *evmenv.EthEnvInput

	L1InclusionEnvInput   *evmenv.EthEnvInput
	OpL1InclusionEnvInput *evmenv.OpEnvInput

	// Reserved two-witness extension point: accepted, threaded through,
	// and never read by any validator.
	SequencerCommitment2 *evmenv.SequencerCommitment
	L1BlockEnvInput2     *evmenv.EthEnvInput
}

// Sorted is everything downstream components need after normalization.
type Sorted struct {
	EnvForViewcall             evmenv.EvmEnv
	BlockHeaderToValidate      evmenv.Header
	EnvHeaderHashToValidate    common.Hash
	EnvHeaderInner             evmenv.Header
	OpEnvForViewcallWithL1Incl *evmenv.EvmEnv
	OpEnvCommitment            *evmenv.Commitment
	ChainIDForLengthValidation chainspec.ChainID
	ValidateL1Inclusion        bool

	// L1InclusionEnv is the Ethereum env contract reads against the dispute
	// game factory (OpStack) or message service (Linea) run against. It is
	// nil unless ValidateL1Inclusion is true.
	L1InclusionEnv *evmenv.EvmEnv
}

// Sort normalizes req into the environments and header the rest of the
// pipeline needs. ValidateL1Inclusion is true iff req.L1InclusionEnvInput
// is present; the OpStack-with-L1-inclusion branch additionally requires
// req.OpL1InclusionEnvInput.
func Sort(req Request) (Sorted, error) {
	validateL1Inclusion := req.L1InclusionEnvInput != nil

	var (
		envForViewcall             evmenv.EvmEnv
		opEnvForViewcall           *evmenv.EvmEnv
		opEnvCommitment            *evmenv.Commitment
		chainIDForLengthValidation chainspec.ChainID
		l1InclusionEnv             *evmenv.EvmEnv
	)

	if chainspec.IsOpStack(req.ChainID) && validateL1Inclusion {
		if req.L1InclusionEnvInput == nil {
			return Sorted{}, fmt.Errorf("paramsort: env_input_eth_for_l1_inclusion is required for %d with l1 inclusion", uint64(req.ChainID))
		}
		if req.OpL1InclusionEnvInput == nil {
			return Sorted{}, fmt.Errorf("paramsort: env_input_opstack_for_viewcall_with_l1_inclusion is required for %d with l1 inclusion", uint64(req.ChainID))
		}

		ethEnv := req.L1InclusionEnvInput.IntoEnv(uint64(chainspec.Ethereum))
		envForViewcall = ethEnv
		l1InclusionEnv = &ethEnv
		opEnv := req.OpL1InclusionEnvInput.IntoEnv(uint64(req.ChainID))
		opEnvForViewcall = &opEnv
		commitment := opEnv.Commitment()
		opEnvCommitment = &commitment

		l1ChainID, err := chainspec.L1Of(req.ChainID)
		if err != nil {
			return Sorted{}, fmt.Errorf("paramsort: %w", err)
		}
		chainIDForLengthValidation = l1ChainID
	} else {
		if req.ViewCallEnvInput == nil {
			return Sorted{}, fmt.Errorf("paramsort: env_input_for_viewcall is required for chain %d", uint64(req.ChainID))
		}

		chainSpecID := uint64(chainspec.Ethereum)
		if chainspec.IsLinea(req.ChainID) {
			chainSpecID = uint64(chainspec.Linea)
		}
		envForViewcall = req.ViewCallEnvInput.IntoEnv(chainSpecID)
		chainIDForLengthValidation = req.ChainID

		if validateL1Inclusion {
			if req.L1InclusionEnvInput == nil {
				return Sorted{}, fmt.Errorf("paramsort: env_input_eth_for_l1_inclusion is required for %d with l1 inclusion", uint64(req.ChainID))
			}
			ethEnv := req.L1InclusionEnvInput.IntoEnv(uint64(chainspec.Ethereum))
			l1InclusionEnv = &ethEnv
		}
	}

	var blockHeaderToValidate evmenv.Header
	if len(req.LinkingBlocks) == 0 {
		blockHeaderToValidate = envForViewcall.Header()
	} else {
		blockHeaderToValidate = req.LinkingBlocks[len(req.LinkingBlocks)-1]
	}

	return Sorted{
		EnvForViewcall:             envForViewcall,
		BlockHeaderToValidate:      blockHeaderToValidate,
		EnvHeaderHashToValidate:    envForViewcall.Seal(),
		EnvHeaderInner:             envForViewcall.Header(),
		OpEnvForViewcallWithL1Incl: opEnvForViewcall,
		OpEnvCommitment:            opEnvCommitment,
		ChainIDForLengthValidation: chainIDForLengthValidation,
		ValidateL1Inclusion:        validateL1Inclusion,
		L1InclusionEnv:             l1InclusionEnv,
	}, nil
}
