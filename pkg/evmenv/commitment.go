// Copyright 2025 Certen Protocol
//
// Commitment is the opaque host-produced attestation binding an EvmEnv to a
// specific chain, block, and configuration.

package evmenv

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Commitment is the triple (id, digest, config_id) the host attaches to an
// EvmEnv. Digest is either a block hash or a storage root depending on
// context; ID additionally decodes into (game_index, version) when the
// env was built over an OpStack dispute-game commitment.
type Commitment struct {
	ID       [32]byte
	Digest   common.Hash
	ConfigID [32]byte
}

// DecodeID splits the packed commitment id into a dispute-game index and a
// commitment-format version. The low 2 bytes (big-endian) hold the version;
// the remaining 30 bytes hold the game index. This layout mirrors
// risc0-steel's packed OpStack commitment id and is recorded as a design
// decision in DESIGN.md rather than derived from an authoritative source.
func (c Commitment) DecodeID() (gameIndex *big.Int, version uint16) {
	version = uint16(c.ID[30])<<8 | uint16(c.ID[31])
	gameIndex = new(big.Int).SetBytes(c.ID[:30])
	return gameIndex, version
}
