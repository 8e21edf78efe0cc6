// Copyright 2025 Certen Protocol

package proofbatch

import (
	"context"
	"encoding/binary"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/certen/chain-validator/pkg/chainspec"
	"github.com/certen/chain-validator/pkg/evmenv"
)

const testMulticall3ABI = `[
	{"type":"function","name":"aggregate3","stateMutability":"view","inputs":[
		{"name":"calls","type":"tuple[]","components":[
			{"name":"target","type":"address"},
			{"name":"allowFailure","type":"bool"},
			{"name":"callData","type":"bytes"}
		]}
	],"outputs":[
		{"name":"returnData","type":"tuple[]","components":[
			{"name":"success","type":"bool"},
			{"name":"returnData","type":"bytes"}
		]}
	]}
]`

type fixtureRow struct {
	Success    bool
	ReturnData []byte
}

type fakeMulticallCaller struct {
	parsed  abi.ABI
	amounts map[common.Address][2]*big.Int
}

func newFakeMulticallCaller(t *testing.T, amounts map[common.Address][2]*big.Int) *fakeMulticallCaller {
	parsed, err := abi.JSON(strings.NewReader(testMulticall3ABI))
	if err != nil {
		t.Fatalf("parse abi: %v", err)
	}
	return &fakeMulticallCaller{parsed: parsed, amounts: amounts}
}

func (f *fakeMulticallCaller) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	return []byte{0x01}, nil
}

func (f *fakeMulticallCaller) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	unpacked, err := f.parsed.Methods["aggregate3"].Inputs.Unpack(call.Data[4:])
	if err != nil {
		return nil, err
	}
	rawCalls := unpacked[0].([]struct {
		Target       common.Address
		AllowFailure bool
		CallData     []byte
	})

	rows := make([]fixtureRow, len(rawCalls))
	for i, c := range rawCalls {
		account := common.BytesToAddress(c.CallData[4:36])
		amounts, ok := f.amounts[account]
		if !ok {
			rows[i] = fixtureRow{Success: false, ReturnData: nil}
			continue
		}
		packed := make([]byte, 64)
		copy(packed[0:32], common.LeftPadBytes(amounts[0].Bytes(), 32))
		copy(packed[32:64], common.LeftPadBytes(amounts[1].Bytes(), 32))
		rows[i] = fixtureRow{Success: true, ReturnData: packed}
	}

	return f.parsed.Methods["aggregate3"].Outputs.Pack(rows)
}

func TestBatch_PacksRowsInOrder(t *testing.T) {
	accountA := common.HexToAddress("0x0000000000000000000000000000000000000a")
	accountB := common.HexToAddress("0x0000000000000000000000000000000000000b")
	assetA := common.HexToAddress("0x00000000000000000000000000000000000a0a")
	assetB := common.HexToAddress("0x00000000000000000000000000000000000b0b")

	caller := newFakeMulticallCaller(t, map[common.Address][2]*big.Int{
		accountA: {big.NewInt(100), big.NewInt(200)},
		accountB: {big.NewInt(300), big.NewInt(400)},
	})

	env := evmenv.EthEnvInput{Caller: caller}.IntoEnv(uint64(chainspec.Ethereum))

	rows, err := Batch(
		context.Background(),
		chainspec.Ethereum,
		[]common.Address{accountA, accountB},
		[]common.Address{assetA, assetB},
		[]uint64{10, 8453},
		env,
		true,
	)
	if err != nil {
		t.Fatalf("Batch: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	for i, row := range rows {
		if len(row) != outputRowLength {
			t.Fatalf("row %d length = %d, want %d", i, len(row), outputRowLength)
		}
	}

	// Row 0: accountA/assetA, amountIn=100, amountOut=200, chain=1, target=10, l1incl=true
	row0 := rows[0]
	if got := common.BytesToAddress(row0[0:20]); got != accountA {
		t.Errorf("row0 account = %s, want %s", got, accountA)
	}
	if got := common.BytesToAddress(row0[20:40]); got != assetA {
		t.Errorf("row0 asset = %s, want %s", got, assetA)
	}
	if got := new(big.Int).SetBytes(row0[40:72]); got.Cmp(big.NewInt(100)) != 0 {
		t.Errorf("row0 amountIn = %s, want 100", got)
	}
	if got := new(big.Int).SetBytes(row0[72:104]); got.Cmp(big.NewInt(200)) != 0 {
		t.Errorf("row0 amountOut = %s, want 200", got)
	}
	if got := binary.BigEndian.Uint64(row0[104+24 : 136]); got != 1 {
		t.Errorf("row0 chain_id = %d, want 1", got)
	}
	if got := binary.BigEndian.Uint64(row0[136+24 : 168]); got != 10 {
		t.Errorf("row0 target_chain_id = %d, want 10", got)
	}
	if row0[168] != 1 {
		t.Errorf("row0 validate_l1_inclusion byte = %d, want 1", row0[168])
	}
}

func TestBatch_LengthMismatch(t *testing.T) {
	env := evmenv.EthEnvInput{}.IntoEnv(uint64(chainspec.Ethereum))
	_, err := Batch(context.Background(), chainspec.Ethereum, []common.Address{{}}, nil, nil, env, false)
	if err != ErrLengthMismatch {
		t.Fatalf("Batch() = %v, want ErrLengthMismatch", err)
	}
}

func TestBatch_CallFailureSurfacesError(t *testing.T) {
	unknownAccount := common.HexToAddress("0x00000000000000000000000000000000000fff")
	caller := newFakeMulticallCaller(t, map[common.Address][2]*big.Int{})

	env := evmenv.EthEnvInput{Caller: caller}.IntoEnv(uint64(chainspec.Ethereum))

	_, err := Batch(context.Background(), chainspec.Ethereum, []common.Address{unknownAccount}, []common.Address{{}}, []uint64{1}, env, false)
	if err == nil {
		t.Fatal("expected an error for a failed call")
	}
}
