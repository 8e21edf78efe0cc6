// Copyright 2025 Certen Protocol

package chainspec

import "testing"

func TestLookup_KnownChains(t *testing.T) {
	ids := []ChainID{Ethereum, EthereumSepolia, Optimism, OptimismSepolia, Base, BaseSepolia, Linea, LineaSepolia}
	for _, id := range ids {
		spec, err := Lookup(id)
		if err != nil {
			t.Fatalf("Lookup(%d) failed: %v", id, err)
		}
		if spec.ChainID != id {
			t.Errorf("Lookup(%d) returned spec for %d", id, spec.ChainID)
		}
		if spec.Name == "" {
			t.Errorf("Lookup(%d) returned empty name", id)
		}
	}
}

func TestLookup_UnknownChain(t *testing.T) {
	if _, err := Lookup(ChainID(999999)); err == nil {
		t.Fatal("expected error for unknown chain id")
	}
}

func TestIsOpStack(t *testing.T) {
	for _, id := range []ChainID{Optimism, Base, OptimismSepolia, BaseSepolia} {
		if !IsOpStack(id) {
			t.Errorf("IsOpStack(%d) = false, want true", id)
		}
	}
	for _, id := range []ChainID{Ethereum, Linea, LineaSepolia} {
		if IsOpStack(id) {
			t.Errorf("IsOpStack(%d) = true, want false", id)
		}
	}
}

func TestIsLinea(t *testing.T) {
	if !IsLinea(Linea) || !IsLinea(LineaSepolia) {
		t.Fatal("expected linea chains to report IsLinea")
	}
	if IsLinea(Ethereum) || IsLinea(Optimism) {
		t.Fatal("expected non-linea chains to not report IsLinea")
	}
}

func TestL1Of(t *testing.T) {
	cases := map[ChainID]ChainID{
		Optimism:        Ethereum,
		Base:            Ethereum,
		Linea:           Ethereum,
		OptimismSepolia: EthereumSepolia,
		BaseSepolia:     EthereumSepolia,
		LineaSepolia:    EthereumSepolia,
	}
	for child, wantParent := range cases {
		got, err := L1Of(child)
		if err != nil {
			t.Fatalf("L1Of(%d) failed: %v", child, err)
		}
		if got != wantParent {
			t.Errorf("L1Of(%d) = %d, want %d", child, got, wantParent)
		}
	}

	if _, err := L1Of(Ethereum); err == nil {
		t.Fatal("expected error: ethereum has no l1 parent")
	}
}

func TestVerifyViaOpStack(t *testing.T) {
	primary, secondary, err := VerifyViaOpStack(Ethereum)
	if err != nil {
		t.Fatalf("VerifyViaOpStack(Ethereum) failed: %v", err)
	}
	if primary != Optimism || secondary != Base {
		t.Errorf("VerifyViaOpStack(Ethereum) = (%d, %d), want (%d, %d)", primary, secondary, Optimism, Base)
	}

	if _, _, err := VerifyViaOpStack(Optimism); err == nil {
		t.Fatal("expected error: optimism is not an ethereum chain id")
	}
}

func TestRegistryAddressesNonZero(t *testing.T) {
	var zero [20]byte
	for id, spec := range registry {
		switch spec.Family {
		case FamilyOpStack:
			if spec.Sequencer == zero {
				t.Errorf("chain %d: opstack spec has zero sequencer address", id)
			}
			if spec.Portal == zero {
				t.Errorf("chain %d: opstack spec has zero portal address", id)
			}
		case FamilyLinea:
			if spec.Sequencer == zero {
				t.Errorf("chain %d: linea spec has zero sequencer address", id)
			}
			if spec.MessageService == zero {
				t.Errorf("chain %d: linea spec has zero message service address", id)
			}
		}
		if spec.ReorgDepth == 0 {
			t.Errorf("chain %d: zero reorg depth", id)
		}
	}
}
