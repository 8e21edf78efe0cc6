// Copyright 2025 Certen Protocol
//
// ChainSpecRegistry: compile-time tables mapping chain identity to the
// sequencer, portal, and message-service addresses, and reorg-protection
// depth a cross-chain proof must honor. These values must match on-chain
// reality bit-exact; they are never loaded from configuration.

package chainspec

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// ChainID is one of the eight chains this validation core understands.
type ChainID uint64

const (
	Ethereum       ChainID = 1
	Optimism       ChainID = 10
	Base           ChainID = 8453
	Linea          ChainID = 59144
	EthereumSepolia ChainID = 11155111
	OptimismSepolia ChainID = 11155420
	BaseSepolia     ChainID = 84532
	LineaSepolia    ChainID = 59141
)

// Family distinguishes the trust model a chain's block-hash validator uses.
type Family int

const (
	FamilyEthereum Family = iota
	FamilyOpStack
	FamilyLinea
)

// Spec is the per-chain compile-time table entry.
type Spec struct {
	ChainID ChainID
	Name    string
	Family  Family

	// Sequencer is the expected signer for Linea, or the expected OpStack
	// sequencer for Optimism/Base. Zero address for Ethereum.
	Sequencer common.Address

	// Portal is the OptimismPortal address for OpStack chains.
	Portal common.Address

	// MessageService is the L1 message-service contract for Linea chains.
	MessageService common.Address

	// ReorgDepth is the minimum number of linking blocks required to
	// extend a validated block before it is accepted as canonical.
	ReorgDepth uint64
}

var (
	// Sequencer / portal / message-service addresses. These are real
	// mainnet/testnet deployments and must never drift from chain reality.
	lineaSequencer        = common.HexToAddress("0x8F81e2E3F8b46467523463835F965fFE476E1c9")
	lineaSepoliaSequencer = common.HexToAddress("0xA27342f1b74c0cFB2c0Ad60A426D0b1Cd7bDe4d1")

	optimismSequencer        = common.HexToAddress("0xAAAA45d9549EDA09E70937013520214382Ffc4A")
	baseSequencer            = common.HexToAddress("0xAf6E19BE0F9cE7f8afd49a1824851023A8249e8a")
	optimismSepoliaSequencer = common.HexToAddress("0x57CACBB0d30b01eb2462e5dC940c161aff3238D")
	baseSepoliaSequencer     = common.HexToAddress("0x6Cf9AA65EBaD7028536E353393630e2340ca6049")

	optimismPortal        = common.HexToAddress("0xbEb5Fc579115071764c7423A4f12eDde41f106Ed")
	basePortal            = common.HexToAddress("0x49048044D57e1C92A77f79988d21Fa8fAF74E97e")
	optimismSepoliaPortal = common.HexToAddress("0x16Fc5058F25648194471939df75CF27A2fdC48BC")
	baseSepoliaPortal     = common.HexToAddress("0x49f53e41452C74589E85cA1677426Ba426459e85")

	l1MessageServiceLinea        = common.HexToAddress("0xd19d4B5d358258f05D7B411E21A1460D11B0876F")
	l1MessageServiceLineaSepolia = common.HexToAddress("0xB218f8A4Bc926cF1cA7b3423c154a0D627Bdb7E5")

	// L1Block precompile: identical address on every OP Stack chain.
	L1BlockAddress = common.HexToAddress("0x4200000000000000000000000000000000000015")

	// Multicall3: identical address across supported chains.
	MulticallAddress = common.HexToAddress("0xcA11bde05977b3631167028862bE2a173976CA11")

	// SelectorMaldaGetProofData is the 4-byte selector for getProofData(address,uint256).
	SelectorMaldaGetProofData = [4]byte{0x4a, 0x4c, 0x64, 0x7a}
)

var registry = map[ChainID]Spec{
	Ethereum: {
		ChainID: Ethereum, Name: "ethereum", Family: FamilyEthereum,
		ReorgDepth: 96,
	},
	EthereumSepolia: {
		ChainID: EthereumSepolia, Name: "ethereum-sepolia", Family: FamilyEthereum,
		ReorgDepth: 20,
	},
	Optimism: {
		ChainID: Optimism, Name: "optimism", Family: FamilyOpStack,
		Sequencer: optimismSequencer, Portal: optimismPortal,
		ReorgDepth: 5,
	},
	Base: {
		ChainID: Base, Name: "base", Family: FamilyOpStack,
		Sequencer: baseSequencer, Portal: basePortal,
		ReorgDepth: 5,
	},
	OptimismSepolia: {
		ChainID: OptimismSepolia, Name: "optimism-sepolia", Family: FamilyOpStack,
		Sequencer: optimismSepoliaSequencer, Portal: optimismSepoliaPortal,
		ReorgDepth: 3,
	},
	BaseSepolia: {
		ChainID: BaseSepolia, Name: "base-sepolia", Family: FamilyOpStack,
		Sequencer: baseSepoliaSequencer, Portal: baseSepoliaPortal,
		ReorgDepth: 3,
	},
	Linea: {
		ChainID: Linea, Name: "linea", Family: FamilyLinea,
		Sequencer: lineaSequencer, MessageService: l1MessageServiceLinea,
		ReorgDepth: 40,
	},
	LineaSepolia: {
		ChainID: LineaSepolia, Name: "linea-sepolia", Family: FamilyLinea,
		Sequencer: lineaSepoliaSequencer, MessageService: l1MessageServiceLineaSepolia,
		ReorgDepth: 10,
	},
}

// Lookup returns the compile-time spec for id, or an error if id is not one
// of the eight known chains. Every caller that branches on chain identity
// must go through here rather than re-deriving the chain list, so the set
// of valid ids has exactly one definition.
func Lookup(id ChainID) (Spec, error) {
	spec, ok := registry[id]
	if !ok {
		return Spec{}, fmt.Errorf("chainspec: unknown chain id %d", uint64(id))
	}
	return spec, nil
}

// IsOpStack reports whether id belongs to the Optimism/Base family.
func IsOpStack(id ChainID) bool {
	spec, err := Lookup(id)
	return err == nil && spec.Family == FamilyOpStack
}

// IsLinea reports whether id belongs to the Linea family.
func IsLinea(id ChainID) bool {
	spec, err := Lookup(id)
	return err == nil && spec.Family == FamilyLinea
}

// L1Of collapses an OpStack or Linea L2 id to its settlement-layer L1 id.
// Used when L1-inclusion mode collapses the length-validation chain id.
func L1Of(id ChainID) (ChainID, error) {
	switch id {
	case Optimism, Base:
		return Ethereum, nil
	case OptimismSepolia, BaseSepolia:
		return EthereumSepolia, nil
	case Linea:
		return Ethereum, nil
	case LineaSepolia:
		return EthereumSepolia, nil
	default:
		return 0, fmt.Errorf("chainspec: chain id %d has no L1 parent", uint64(id))
	}
}

// VerifyViaOpStack returns the OpStack chain used to indirectly attest to
// an Ethereum L1 block hash: OP mainnet for Ethereum mainnet, OP Sepolia
// for Ethereum Sepolia. The matching Base chain is returned as secondary,
// reserved for the dual-witness stub in pkg/blockhash, which does not read it.
func VerifyViaOpStack(l1ChainID ChainID) (primary ChainID, secondary ChainID, err error) {
	switch l1ChainID {
	case Ethereum:
		return Optimism, Base, nil
	case EthereumSepolia:
		return OptimismSepolia, BaseSepolia, nil
	default:
		return 0, 0, fmt.Errorf("chainspec: %d is not an ethereum chain id", uint64(l1ChainID))
	}
}
