package sigs

import (
	"math/rand"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gravity-bridge/orchestrator/internal/types"
)

// TestValsetSort_Golden reproduces the canonical eight-member sort: greatest
// power first, ties broken by ascending address (spec §8 scenario 4).
func TestValsetSort_Golden(t *testing.T) {
	canonical := []types.Member{
		{Power: 685294939, RemoteAddress: common.HexToAddress("0x479FFc856Cdfa0f5D1AE6Fa61915b01351A7773D")},
		{Power: 678509841, RemoteAddress: common.HexToAddress("0x6db48cBBCeD754bDc760720e38E456144e83269b")},
		{Power: 671724742, RemoteAddress: common.HexToAddress("0x0A7254b318dd742A3086882321C27779B4B642a6")},
		{Power: 671724742, RemoteAddress: common.HexToAddress("0x454330deAaB759468065d08F2b3B0562caBe1dD1")},
		{Power: 671724742, RemoteAddress: common.HexToAddress("0x8E91960d704Df3fF24ECAb78AB9df1B5D9144140")},
		{Power: 617443955, RemoteAddress: common.HexToAddress("0x3511A211A6759d48d107898302042d1301187BA9")},
		{Power: 291759231, RemoteAddress: common.HexToAddress("0xF14879a175A2F1cEFC7c616f35b6d9c2b0Fd8326")},
		{Power: 6785098, RemoteAddress: common.HexToAddress("0x37A0603dA2ff6377E5C7f75698dabA8EE4Ba97B8")},
	}

	shuffled := make([]types.Member, len(canonical))
	copy(shuffled, canonical)
	rand.New(rand.NewSource(1)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	types.SortMembers(shuffled)

	for i, m := range shuffled {
		if m != canonical[i] {
			t.Fatalf("index %d: got power=%d addr=%s, want power=%d addr=%s",
				i, m.Power, m.RemoteAddress, canonical[i].Power, canonical[i].RemoteAddress)
		}
	}
}

// TestOrderSigs_ZeroFillsMissingAndUnset covers P2: the output has one entry
// per member positionally, with zero-entries exactly at members that lack a
// remote address or a matching confirmation.
func TestOrderSigs_ZeroFillsMissingAndUnset(t *testing.T) {
	key1, _ := crypto.GenerateKey()
	key2, _ := crypto.GenerateKey()
	addr1 := crypto.PubkeyToAddress(key1.PublicKey)
	addr2 := crypto.PubkeyToAddress(key2.PublicKey)

	digest := common.BytesToHash([]byte("test digest"))

	valset := &types.ValidatorSet{
		Nonce: 1,
		Members: []types.Member{
			{RemoteAddress: addr1, Power: 2_000_000_000},
			{RemoteAddress: common.Address{}, Power: 1_000_000_000}, // unset key
			{RemoteAddress: addr2, Power: 1_290_967_295},            // never confirms
		},
	}

	sig, err := crypto.Sign(digest[:], key1)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	confirmations := []types.Confirmation{
		types.ValsetConfirmation{
			ValsetNonce: 1,
			Signer:      addr1,
			Sig:         sigFromBytes(sig),
		},
	}

	status, err := OrderSigs(digest, valset, confirmations)
	if err == nil {
		t.Fatalf("expected insufficient power error, valset only has %d/%d power signed",
			2_000_000_000, types.TotalPower)
	}
	if len(status.Ordered) != 3 {
		t.Fatalf("expected 3 ordered entries, got %d", len(status.Ordered))
	}
	if status.Ordered[0].RemoteAddress != addr1 || status.Ordered[0].R == ([32]byte{}) {
		t.Fatalf("expected the signed slot to carry the signer's address and a non-zero signature")
	}
	if status.Ordered[1].RemoteAddress != (common.Address{}) {
		t.Fatalf("expected zero address for unset-key member")
	}
	if status.Ordered[2].RemoteAddress != addr2 {
		t.Fatalf("expected member address preserved even without a confirmation")
	}
	if status.Ordered[2].V != 0 {
		t.Fatalf("expected zero signature for a non-voting member")
	}
	if status.NumUnsetKeyMembers != 1 || status.NumNonVotingMembers != 1 {
		t.Fatalf("unexpected status counters: %+v", status)
	}
}

// TestOrderSigs_SufficientPower confirms a confirmation set at or above the
// two-thirds threshold is accepted.
func TestOrderSigs_SufficientPower(t *testing.T) {
	key1, _ := crypto.GenerateKey()
	key2, _ := crypto.GenerateKey()
	addr1 := crypto.PubkeyToAddress(key1.PublicKey)
	addr2 := crypto.PubkeyToAddress(key2.PublicKey)

	digest := common.BytesToHash([]byte("test digest"))

	valset := &types.ValidatorSet{
		Nonce: 1,
		Members: []types.Member{
			{RemoteAddress: addr1, Power: 3_000_000_000},
			{RemoteAddress: addr2, Power: 1_294_967_295},
		},
	}

	sig1, _ := crypto.Sign(digest[:], key1)
	sig2, _ := crypto.Sign(digest[:], key2)
	confirmations := []types.Confirmation{
		types.ValsetConfirmation{ValsetNonce: 1, Signer: addr1, Sig: sigFromBytes(sig1)},
		types.ValsetConfirmation{ValsetNonce: 1, Signer: addr2, Sig: sigFromBytes(sig2)},
	}

	status, err := OrderSigs(digest, valset, confirmations)
	if err != nil {
		t.Fatalf("OrderSigs: %v", err)
	}
	if status.PowerOfGoodSigs != 3_000_000_000+1_294_967_295 {
		t.Fatalf("unexpected good-sig power: %d", status.PowerOfGoodSigs)
	}
}

func sigFromBytes(sig []byte) types.EthSignature {
	var r, s [32]byte
	copy(r[:], sig[0:32])
	copy(s[:], sig[32:64])
	return types.EthSignature{V: sig[64] + 27, R: r, S: s}
}
