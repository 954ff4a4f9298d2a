package remote

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"

	"github.com/gravity-bridge/orchestrator/internal/sigs"
	"github.com/gravity-bridge/orchestrator/internal/types"
)

func TestEventTopics_MatchSignatures(t *testing.T) {
	if len(eventTopics) != len(eventSignatures) {
		t.Fatalf("topic/signature count mismatch: %d vs %d", len(eventTopics), len(eventSignatures))
	}
	for i, sig := range eventSignatures {
		want := crypto.Keccak256Hash([]byte(sig))
		if eventTopics[i] != want {
			t.Errorf("topic %d for %q: got %s want %s", i, sig, eventTopics[i], want)
		}
	}
}

func TestParsedABI_GetterRoundTrip(t *testing.T) {
	data, err := parsedABI.Pack("state_gravityId")
	if err != nil {
		t.Fatalf("pack state_gravityId: %v", err)
	}
	if len(data) != 4 {
		t.Fatalf("expected a 4-byte selector with no args, got %d bytes", len(data))
	}

	var want [32]byte
	copy(want[:], []byte("test-gravity-id"))
	encoded := make([]byte, 32)
	copy(encoded, want[:])

	values, err := parsedABI.Unpack("state_gravityId", encoded)
	if err != nil {
		t.Fatalf("unpack state_gravityId: %v", err)
	}
	got, ok := values[0].([32]byte)
	if !ok {
		t.Fatalf("expected [32]byte, got %T", values[0])
	}
	if got != want {
		t.Fatalf("got %x want %x", got, want)
	}
}

func TestParsedABI_SubmitBatchPacks(t *testing.T) {
	valset := valsetTuple{
		Validators:   []common.Address{common.HexToAddress("0x1")},
		Powers:       []*big.Int{big.NewInt(100)},
		ValsetNonce:  big.NewInt(1),
		RewardAmount: big.NewInt(0),
		RewardToken:  common.Address{},
	}
	_, err := parsedABI.Pack("submitBatch",
		valset,
		[]uint8{27}, [][32]byte{{}}, [][32]byte{{}},
		[]*big.Int{big.NewInt(10)}, []common.Address{common.HexToAddress("0x2")}, []*big.Int{big.NewInt(1)},
		big.NewInt(5), common.HexToAddress("0x3"), big.NewInt(1000),
	)
	if err != nil {
		t.Fatalf("pack submitBatch: %v", err)
	}
}

func TestToValsetTuple(t *testing.T) {
	rewardToken := common.HexToAddress("0xabc")
	v := &types.ValidatorSet{
		Nonce: 7,
		Members: []types.Member{
			{RemoteAddress: common.HexToAddress("0x1"), Power: 100},
			{RemoteAddress: common.HexToAddress("0x2"), Power: 200},
		},
		RewardAmount: types.NewErc20Amount(uint256.NewInt(50)),
		RewardToken:  &rewardToken,
	}

	got := toValsetTuple(v)
	if got.ValsetNonce.Uint64() != 7 {
		t.Fatalf("nonce: got %d want 7", got.ValsetNonce.Uint64())
	}
	if len(got.Validators) != 2 || len(got.Powers) != 2 {
		t.Fatalf("expected 2 validators/powers, got %d/%d", len(got.Validators), len(got.Powers))
	}
	if got.Powers[1].Uint64() != 200 {
		t.Fatalf("power[1]: got %d want 200", got.Powers[1].Uint64())
	}
	if got.RewardAmount.Uint64() != 50 {
		t.Fatalf("reward amount: got %d want 50", got.RewardAmount.Uint64())
	}
	if got.RewardToken != rewardToken {
		t.Fatalf("reward token: got %s want %s", got.RewardToken, rewardToken)
	}
}

func TestToValsetTuple_NilRewardFields(t *testing.T) {
	v := &types.ValidatorSet{Nonce: 1}
	got := toValsetTuple(v)
	if got.RewardAmount.Sign() != 0 {
		t.Fatalf("expected zero reward amount for nil RewardAmount, got %s", got.RewardAmount.String())
	}
	if got.RewardToken != (common.Address{}) {
		t.Fatalf("expected zero reward token for nil RewardToken, got %s", got.RewardToken)
	}
}

func TestToSigArrays(t *testing.T) {
	ordered := []sigs.OrderedSig{
		{Power: 1, RemoteAddress: common.HexToAddress("0x1"), V: 27, R: [32]byte{1}, S: [32]byte{2}},
		{Power: 2, RemoteAddress: common.Address{}},
	}
	v, r, s := toSigArrays(ordered)
	if len(v) != 2 || len(r) != 2 || len(s) != 2 {
		t.Fatalf("expected length-2 arrays, got v=%d r=%d s=%d", len(v), len(r), len(s))
	}
	if v[0] != 27 || r[0] != ([32]byte{1}) || s[0] != ([32]byte{2}) {
		t.Fatalf("first slot did not round-trip: v=%d r=%x s=%x", v[0], r[0], s[0])
	}
	if v[1] != 0 {
		t.Fatalf("unsigned slot should zero-fill v, got %d", v[1])
	}
}

func TestAsUint64_Overflow(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 64)
	if _, err := asUint64("test", huge); err == nil {
		t.Fatal("expected an overflow error")
	}
	got, err := asUint64("test", big.NewInt(42))
	if err != nil {
		t.Fatalf("asUint64: %v", err)
	}
	if got != 42 {
		t.Fatalf("got %d want 42", got)
	}
}
