package events

import (
	"encoding/hex"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

// mustHex strips whitespace/newlines from a hand-wrapped hex literal and
// decodes it, panicking on a malformed test fixture.
func mustHex(s string) []byte {
	s = strings.NewReplacer(" ", "", "\n", "", "\t", "").Replace(s)
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// TestFromValsetUpdatedLog_Golden reproduces a known-good ValsetUpdatedEvent
// data blob: event_nonce=1, reward_amount=0, reward_token=none, three
// members each at power 1431655765 (~1/3 of 2^32-1).
func TestFromValsetUpdatedLog_Golden(t *testing.T) {
	data := mustHex(`
		0000000000000000000000000000000000000000000000000000000000000001
		0000000000000000000000000000000000000000000000000000000000000000
		0000000000000000000000000000000000000000000000000000000000000000
		00000000000000000000000000000000000000000000000000000000000000a0
		0000000000000000000000000000000000000000000000000000000000000120
		0000000000000000000000000000000000000000000000000000000000000003
		0000000000000000000000001bb537aa56ffc7d608793baffc6c9c7de3c4f270
		000000000000000000000000906313229cfb30959b39a5946099e4526625cbd4
		0000000000000000000000009f49c7617b72b5784f482bd728d26eba354a0b39
		0000000000000000000000000000000000000000000000000000000000000003
		0000000000000000000000000000000000000000000000000000000055555555
		0000000000000000000000000000000000000000000000000000000055555555
		0000000000000000000000000000000000000000000000000000000055555555`)

	log := ethtypes.Log{
		Topics:      []common.Hash{{}, common.BigToHash(bigOne())},
		Data:        data,
		BlockNumber: 100,
	}

	got, err := FromValsetUpdatedLog(log)
	if err != nil {
		t.Fatalf("FromValsetUpdatedLog: %v", err)
	}
	if got.EventNonce != 1 {
		t.Fatalf("event nonce: got %d want 1", got.EventNonce)
	}
	if got.ValsetNonce != 1 {
		t.Fatalf("valset nonce: got %d want 1", got.ValsetNonce)
	}
	if len(got.Members) != 3 {
		t.Fatalf("members: got %d want 3", len(got.Members))
	}
	wantAddrs := []string{
		"0x1bb537Aa56fFc7D608793BAFFC6c9C7De3c4F270",
		"0x906313229CFB30959b39A5946099e4526625CBD4",
		"0x9F49C7617b72b5784F482Bd728d26EbA354a0B39",
	}
	for i, m := range got.Members {
		if m.Power != 1431655765 {
			t.Fatalf("member %d power: got %d want 1431655765", i, m.Power)
		}
		if !strings.EqualFold(m.RemoteAddress.Hex(), wantAddrs[i]) {
			t.Fatalf("member %d address: got %s want %s", i, m.RemoteAddress.Hex(), wantAddrs[i])
		}
	}
}

func bigOne() *big.Int { return big.NewInt(1) }

// TestFromBatchExecutedLog_TooFewTopics covers the decoding-error path: a
// malformed log must be rejected, not panic.
func TestFromBatchExecutedLog_TooFewTopics(t *testing.T) {
	log := ethtypes.Log{Topics: []common.Hash{{}}, Data: nil}
	if _, err := FromBatchExecutedLog(log); err == nil {
		t.Fatal("expected an error for a log with too few topics")
	}
}
