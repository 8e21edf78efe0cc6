// Copyright 2025 Certen Protocol
//
// Package blockhash provides sentinel errors for block-hash validation.
// Chain, input, hash, signer and dispute-game failures wrap one of these;
// other failures (a too-short Linea extra_data, a contract read error, a
// Linea block not yet posted to L1) are plain errors that wrap none of them.

package blockhash

import "errors"

var (
	// ErrUnknownChain is returned when a chain id isn't one of the eight
	// chains this core understands.
	ErrUnknownChain = errors.New("blockhash: unknown chain id")

	// ErrMissingInput is returned when a required optional witness for the
	// selected validation branch was not supplied.
	ErrMissingInput = errors.New("blockhash: missing required input for this branch")

	// ErrHashMismatch is returned whenever two independently derived block
	// hashes disagree at a composition boundary.
	ErrHashMismatch = errors.New("blockhash: hash mismatch")

	// ErrSignerMismatch is returned when a recovered signer does not match
	// the expected sequencer.
	ErrSignerMismatch = errors.New("blockhash: block not signed by expected sequencer")

	// ErrDisputeGameInvariant is returned when any dispute-game finality
	// invariant is violated.
	ErrDisputeGameInvariant = errors.New("blockhash: dispute game invariant violated")
)
