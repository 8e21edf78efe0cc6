// Copyright 2025 Certen Protocol
//
// SequencerCommitment is an OpStack signed payload over an execution-layer
// block. Verifying it binds a chain id to a block hash under the
// sequencer's BFT key.

package evmenv

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// ExecutionPayload is the minimal execution-layer payload shape the
// validation core needs out of a verified SequencerCommitment.
type ExecutionPayload struct {
	BlockHash common.Hash
}

// SequencerCommitment is an OpStack sequencer's signed attestation over one
// execution payload. SigHash is the message the sequencer signed (the
// canonical payload hash); Signature is the 65-byte recoverable ECDSA
// signature over it.
type SequencerCommitment struct {
	SigHash   common.Hash
	Signature [65]byte
	Payload   ExecutionPayload
}

// Verify checks that the commitment was signed by expectedSequencer for
// chainID. The signature itself only binds the sigHash, since OpStack
// sequencer commitments do not separately encode a chain id inside the
// signed payload — the caller is responsible for presenting the correct
// expectedSequencer for the chain being validated.
func (c SequencerCommitment) Verify(expectedSequencer common.Address, chainID uint64) error {
	pub, err := crypto.SigToPub(c.SigHash.Bytes(), c.Signature[:])
	if err != nil {
		return fmt.Errorf("evmenv: recover sequencer signer: %w", err)
	}
	signer := crypto.PubkeyToAddress(*pub)
	if signer != expectedSequencer {
		return fmt.Errorf("evmenv: sequencer commitment signed by %s, expected %s", signer, expectedSequencer)
	}
	return nil
}

// ToExecutionPayload converts the commitment to its carried execution
// payload. This is total because the payload is stored alongside the
// signature rather than re-derived from opaque bytes, so failure can only
// happen during construction (out of scope, owned by the host).
func (c SequencerCommitment) ToExecutionPayload() (ExecutionPayload, error) {
	return c.Payload, nil
}
