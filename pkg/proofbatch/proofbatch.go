// Copyright 2025 Certen Protocol
//
// Package proofbatch builds and executes a single batched view-call
// against Multicall3, then packs per-row results into tightly packed
// output bytes.

package proofbatch

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/certen/chain-validator/pkg/chainspec"
	"github.com/certen/chain-validator/pkg/contracts"
	"github.com/certen/chain-validator/pkg/evmenv"
)

// ErrLengthMismatch is returned when accounts, assets, and targetChainIDs
// are not the same length.
var ErrLengthMismatch = errors.New("proofbatch: accounts, assets, and target_chain_ids must be the same length")

// outputRowLength is 20 (account) + 20 (asset) + 32 (amountIn) +
// 32 (amountOut) + 32 (chain_id) + 32 (target_chain_id) + 1 (bool) bytes.
const outputRowLength = 20 + 20 + 32 + 32 + 32 + 32 + 1

// Batch executes one multicall against Multicall3.aggregate3 covering every
// (account, asset, targetChainID) row and returns one tightly packed
// 169-byte output per row, in input order.
func Batch(
	ctx context.Context,
	chainID chainspec.ChainID,
	accounts []common.Address,
	assets []common.Address,
	targetChainIDs []uint64,
	env evmenv.EvmEnv,
	validateL1Inclusion bool,
) ([][]byte, error) {
	if len(accounts) != len(assets) || len(accounts) != len(targetChainIDs) {
		return nil, ErrLengthMismatch
	}

	calls := make([]contracts.Call3, len(accounts))
	for i := range accounts {
		calls[i] = contracts.Call3{
			Target:       assets[i],
			AllowFailure: false,
			CallData:     encodeGetProofDataCall(accounts[i], targetChainIDs[i]),
		}
	}

	multicall, err := contracts.NewMulticall3(chainspec.MulticallAddress, env.Caller())
	if err != nil {
		return nil, fmt.Errorf("proofbatch: bind multicall3: %w", err)
	}

	callOpts := &bind.CallOpts{Context: ctx, BlockNumber: env.BlockNumber()}
	results, err := multicall.Aggregate3(callOpts, calls)
	if err != nil {
		return nil, fmt.Errorf("proofbatch: aggregate3: %w", err)
	}
	if len(results) != len(accounts) {
		return nil, fmt.Errorf("proofbatch: got %d results for %d calls", len(results), len(accounts))
	}

	output := make([][]byte, len(accounts))
	for i, result := range results {
		if !result.Success {
			return nil, fmt.Errorf("proofbatch: call %d for account %s failed", i, accounts[i])
		}
		amountIn, amountOut, err := decodeProofData(result.ReturnData)
		if err != nil {
			return nil, fmt.Errorf("proofbatch: decode row %d: %w", i, err)
		}
		output[i] = packRow(accounts[i], assets[i], amountIn, amountOut, uint64(chainID), targetChainIDs[i], validateL1Inclusion)
	}
	return output, nil
}

// encodeGetProofDataCall builds (selector, account_word, target_chain_id_be).
func encodeGetProofDataCall(account common.Address, targetChainID uint64) []byte {
	data := make([]byte, 0, 4+32+32)
	data = append(data, chainspec.SelectorMaldaGetProofData[:]...)
	data = append(data, common.LeftPadBytes(account.Bytes(), 32)...)
	data = append(data, common.LeftPadBytes(new(big.Int).SetUint64(targetChainID).Bytes(), 32)...)
	return data
}

// decodeProofData decodes the ABI-encoded (uint256 amountIn, uint256 amountOut) tuple.
func decodeProofData(returnData []byte) (amountIn, amountOut *big.Int, err error) {
	if len(returnData) < 64 {
		return nil, nil, fmt.Errorf("insufficient return data: got %d bytes, need 64", len(returnData))
	}
	amountIn = new(big.Int).SetBytes(returnData[0:32])
	amountOut = new(big.Int).SetBytes(returnData[32:64])
	return amountIn, amountOut, nil
}

// packRow tightly packs one output row: account(20) || asset(20) ||
// amountIn(32) || amountOut(32) || chain_id(32) || target_chain_id(32) ||
// validate_l1_inclusion(1), with no padding beyond each field's own width.
func packRow(account, asset common.Address, amountIn, amountOut *big.Int, chainID, targetChainID uint64, validateL1Inclusion bool) []byte {
	row := make([]byte, 0, outputRowLength)
	row = append(row, account.Bytes()...)
	row = append(row, asset.Bytes()...)
	row = append(row, common.LeftPadBytes(amountIn.Bytes(), 32)...)
	row = append(row, common.LeftPadBytes(amountOut.Bytes(), 32)...)
	row = append(row, leftPadUint64(chainID)...)
	row = append(row, leftPadUint64(targetChainID)...)
	if validateL1Inclusion {
		row = append(row, 1)
	} else {
		row = append(row, 0)
	}
	return row
}

func leftPadUint64(v uint64) []byte {
	buf := make([]byte, 32)
	binary.BigEndian.PutUint64(buf[24:], v)
	return buf
}
