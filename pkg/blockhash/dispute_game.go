// Copyright 2025 Certen Protocol
//
// Dispute-game finality: walks Portal -> Factory -> Game and asserts game
// type, resolution, non-blacklist, maturity, and root-claim match.

package blockhash

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/certen/chain-validator/pkg/chainspec"
	"github.com/certen/chain-validator/pkg/contracts"
	"github.com/certen/chain-validator/pkg/evmenv"
)

// maturitySlackSeconds is an uncommented 300-second grace period applied
// to the proof maturity delay. Its rationale is not documented upstream;
// preserved verbatim rather than re-derived.
const maturitySlackSeconds = 300

// respectedGameType is the only IDisputeGame game type this core accepts.
const respectedGameType = 0

// ValidateOpStackDisputeGameCommitment walks the OptimismPortal -> dispute
// game factory -> dispute game chain inside ethEnv and asserts every
// finality invariant holds for the game referenced by opEnvCommitment.
func ValidateOpStackDisputeGameCommitment(ctx context.Context, chainID chainspec.ChainID, ethEnv evmenv.EvmEnv, opEnvCommitment evmenv.Commitment) error {
	spec, err := chainspec.Lookup(chainID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnknownChain, err)
	}
	if spec.Family != chainspec.FamilyOpStack {
		return fmt.Errorf("%w: %d is not an opstack chain", ErrUnknownChain, uint64(chainID))
	}

	gameIndex, _ := opEnvCommitment.DecodeID()
	rootClaim := opEnvCommitment.Digest

	callOpts := &bind.CallOpts{Context: ctx, BlockNumber: ethEnv.BlockNumber()}

	portal, err := contracts.NewOptimismPortal(spec.Portal, ethEnv.Caller())
	if err != nil {
		return fmt.Errorf("blockhash: bind optimism portal: %w", err)
	}

	factoryAddr, err := portal.DisputeGameFactory(callOpts)
	if err != nil {
		return fmt.Errorf("blockhash: read disputeGameFactory: %w", err)
	}

	factory, err := contracts.NewDisputeGameFactory(factoryAddr, ethEnv.Caller())
	if err != nil {
		return fmt.Errorf("blockhash: bind dispute game factory: %w", err)
	}

	game, err := factory.GameAtIndex(callOpts, gameIndex)
	if err != nil {
		return fmt.Errorf("blockhash: read gameAtIndex(%s): %w", gameIndex, err)
	}

	if game.GameType.Cmp(big.NewInt(respectedGameType)) != 0 {
		return fmt.Errorf("%w: game type %s is not the respected game type", ErrDisputeGameInvariant, game.GameType)
	}

	updatedAt, err := portal.RespectedGameTypeUpdatedAt(callOpts)
	if err != nil {
		return fmt.Errorf("blockhash: read respectedGameTypeUpdatedAt: %w", err)
	}
	if game.CreatedAt < updatedAt {
		return fmt.Errorf("%w: game created at %d before respected game type update at %d", ErrDisputeGameInvariant, game.CreatedAt, updatedAt)
	}

	gameContract, err := contracts.NewDisputeGame(game.Game, ethEnv.Caller())
	if err != nil {
		return fmt.Errorf("blockhash: bind dispute game: %w", err)
	}

	status, err := gameContract.Status(callOpts)
	if err != nil {
		return fmt.Errorf("blockhash: read dispute game status: %w", err)
	}
	if status != contracts.GameStatusDefenderWins {
		return fmt.Errorf("%w: dispute game status %d is not DEFENDER_WINS", ErrDisputeGameInvariant, status)
	}

	blacklisted, err := portal.DisputeGameBlacklist(callOpts, game.Game)
	if err != nil {
		return fmt.Errorf("blockhash: read disputeGameBlacklist: %w", err)
	}
	if blacklisted {
		return fmt.Errorf("%w: dispute game %s is blacklisted", ErrDisputeGameInvariant, game.Game)
	}

	resolvedAt, err := gameContract.ResolvedAt(callOpts)
	if err != nil {
		return fmt.Errorf("blockhash: read resolvedAt: %w", err)
	}

	proofMaturityDelay, err := portal.ProofMaturityDelaySeconds(callOpts)
	if err != nil {
		return fmt.Errorf("blockhash: read proofMaturityDelaySeconds: %w", err)
	}

	now := ethEnv.Header().Timestamp
	elapsed := new(big.Int).Sub(big.NewInt(int64(now)), big.NewInt(int64(resolvedAt)))
	threshold := new(big.Int).Sub(proofMaturityDelay, big.NewInt(maturitySlackSeconds))
	if elapsed.Cmp(threshold) <= 0 {
		return fmt.Errorf("%w: only %s seconds since resolution, need more than %s", ErrDisputeGameInvariant, elapsed, threshold)
	}

	rootClaimOnChain, err := gameContract.RootClaim(callOpts)
	if err != nil {
		return fmt.Errorf("blockhash: read rootClaim: %w", err)
	}
	if rootClaimOnChain != rootClaim {
		return fmt.Errorf("%w: root claim %s != commitment digest %s", ErrDisputeGameInvariant, rootClaimOnChain, rootClaim)
	}

	return nil
}
