// Copyright 2025 Certen Protocol
//
// requestFile is the on-disk JSON shape the validate-proof-data CLI reads:
// everything a host would otherwise supply as pre-verified witness data.
// It exists only so the CLI has something concrete to decode — the real
// proving host builds this data directly rather than round-tripping it
// through JSON.

package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/certen/chain-validator/pkg/chainspec"
	"github.com/certen/chain-validator/pkg/evmenv"
	"github.com/certen/chain-validator/pkg/validator"
)

type headerJSON struct {
	ParentHash common.Hash  `json:"parent_hash"`
	Number     uint64       `json:"number"`
	Timestamp  uint64       `json:"timestamp"`
	ExtraData  hexutil.Bytes `json:"extra_data"`
	Rest       *types.Header `json:"rest,omitempty"`
}

func (h headerJSON) toHeader() evmenv.Header {
	return evmenv.Header{
		ParentHash: h.ParentHash,
		Number:     h.Number,
		Timestamp:  h.Timestamp,
		ExtraData:  h.ExtraData,
		Rest:       h.Rest,
	}
}

type commitmentJSON struct {
	ID       hexutil.Bytes `json:"id"`
	Digest   common.Hash   `json:"digest"`
	ConfigID hexutil.Bytes `json:"config_id"`
}

func (c commitmentJSON) toCommitment() (evmenv.Commitment, error) {
	var out evmenv.Commitment
	if len(c.ID) != 32 {
		return out, fmt.Errorf("commitment id must be 32 bytes, got %d", len(c.ID))
	}
	if len(c.ConfigID) != 32 {
		return out, fmt.Errorf("commitment config_id must be 32 bytes, got %d", len(c.ConfigID))
	}
	copy(out.ID[:], c.ID)
	copy(out.ConfigID[:], c.ConfigID)
	out.Digest = c.Digest
	return out, nil
}

type envInputJSON struct {
	ChainID     chainspec.ChainID `json:"chain_id"`
	Header      headerJSON        `json:"header"`
	Commitment  commitmentJSON    `json:"commitment"`
	BlockNumber *big.Int          `json:"block_number"`
}

func (e *envInputJSON) toEthEnvInput(dialer callerDialer) (*evmenv.EthEnvInput, error) {
	if e == nil {
		return nil, nil
	}
	commitment, err := e.Commitment.toCommitment()
	if err != nil {
		return nil, err
	}
	caller, err := dialer.dial(uint64(e.ChainID))
	if err != nil {
		return nil, err
	}
	return &evmenv.EthEnvInput{
		Header:      e.Header.toHeader(),
		Commitment:  commitment,
		Caller:      caller,
		BlockNumber: e.BlockNumber,
	}, nil
}

func (e *envInputJSON) toOpEnvInput(dialer callerDialer) (*evmenv.OpEnvInput, error) {
	if e == nil {
		return nil, nil
	}
	commitment, err := e.Commitment.toCommitment()
	if err != nil {
		return nil, err
	}
	caller, err := dialer.dial(uint64(e.ChainID))
	if err != nil {
		return nil, err
	}
	return &evmenv.OpEnvInput{
		Header:      e.Header.toHeader(),
		Commitment:  commitment,
		Caller:      caller,
		BlockNumber: e.BlockNumber,
	}, nil
}

type sequencerCommitmentJSON struct {
	SigHash   common.Hash   `json:"sig_hash"`
	Signature hexutil.Bytes `json:"signature"`
	BlockHash common.Hash   `json:"block_hash"`
}

func (s *sequencerCommitmentJSON) toSequencerCommitment() (*evmenv.SequencerCommitment, error) {
	if s == nil {
		return nil, nil
	}
	if len(s.Signature) != 65 {
		return nil, fmt.Errorf("sequencer commitment signature must be 65 bytes, got %d", len(s.Signature))
	}
	var sig [65]byte
	copy(sig[:], s.Signature)
	return &evmenv.SequencerCommitment{
		SigHash:   s.SigHash,
		Signature: sig,
		Payload:   evmenv.ExecutionPayload{BlockHash: s.BlockHash},
	}, nil
}

type requestFile struct {
	ChainID        chainspec.ChainID `json:"chain_id"`
	Accounts       []common.Address  `json:"accounts"`
	Assets         []common.Address  `json:"assets"`
	TargetChainIDs []uint64          `json:"target_chain_ids"`
	LinkingBlocks  []headerJSON      `json:"linking_blocks"`

	ViewCallEnvInput    *envInputJSON `json:"view_call_env_input,omitempty"`
	SequencerCommitment *sequencerCommitmentJSON `json:"sequencer_commitment,omitempty"`
	L1BlockEnvInput     *envInputJSON `json:"l1_block_env_input,omitempty"`

	L1InclusionEnvInput   *envInputJSON `json:"l1_inclusion_env_input,omitempty"`
	OpL1InclusionEnvInput *envInputJSON `json:"op_l1_inclusion_env_input,omitempty"`

	SequencerCommitment2 *sequencerCommitmentJSON `json:"sequencer_commitment_2,omitempty"`
	L1BlockEnvInput2     *envInputJSON            `json:"l1_block_env_input_2,omitempty"`
}

// callerDialer lazily builds one ContractCaller per chain id, so a request
// touching three chains dials exactly three RPC endpoints.
type callerDialer interface {
	dial(chainID uint64) (bind.ContractCaller, error)
}

func loadRequestFile(path string, dialer callerDialer) (validator.Request, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return validator.Request{}, fmt.Errorf("read request file: %w", err)
	}

	var rf requestFile
	if err := json.Unmarshal(raw, &rf); err != nil {
		return validator.Request{}, fmt.Errorf("parse request file: %w", err)
	}

	linking := make(evmenv.LinkingChain, len(rf.LinkingBlocks))
	for i, h := range rf.LinkingBlocks {
		linking[i] = h.toHeader()
	}

	viewCallEnv, err := rf.ViewCallEnvInput.toEthEnvInput(dialer)
	if err != nil {
		return validator.Request{}, fmt.Errorf("view_call_env_input: %w", err)
	}
	l1BlockEnv, err := rf.L1BlockEnvInput.toEthEnvInput(dialer)
	if err != nil {
		return validator.Request{}, fmt.Errorf("l1_block_env_input: %w", err)
	}
	l1InclusionEnv, err := rf.L1InclusionEnvInput.toEthEnvInput(dialer)
	if err != nil {
		return validator.Request{}, fmt.Errorf("l1_inclusion_env_input: %w", err)
	}
	opL1InclusionEnv, err := rf.OpL1InclusionEnvInput.toOpEnvInput(dialer)
	if err != nil {
		return validator.Request{}, fmt.Errorf("op_l1_inclusion_env_input: %w", err)
	}
	l1BlockEnv2, err := rf.L1BlockEnvInput2.toEthEnvInput(dialer)
	if err != nil {
		return validator.Request{}, fmt.Errorf("l1_block_env_input_2: %w", err)
	}

	sequencerCommitment, err := rf.SequencerCommitment.toSequencerCommitment()
	if err != nil {
		return validator.Request{}, fmt.Errorf("sequencer_commitment: %w", err)
	}
	sequencerCommitment2, err := rf.SequencerCommitment2.toSequencerCommitment()
	if err != nil {
		return validator.Request{}, fmt.Errorf("sequencer_commitment_2: %w", err)
	}

	return validator.Request{
		ChainID:        rf.ChainID,
		Accounts:       rf.Accounts,
		Assets:         rf.Assets,
		TargetChainIDs: rf.TargetChainIDs,
		LinkingBlocks:  linking,

		ViewCallEnvInput:    viewCallEnv,
		SequencerCommitment: sequencerCommitment,
		L1BlockEnvInput:     l1BlockEnv,

		L1InclusionEnvInput:   l1InclusionEnv,
		OpL1InclusionEnvInput: opL1InclusionEnv,

		SequencerCommitment2: sequencerCommitment2,
		L1BlockEnvInput2:     l1BlockEnv2,
	}, nil
}
