package codec

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gravity-bridge/orchestrator/internal/types"
	"github.com/holiman/uint256"
)

// TestValsetConfirmBytes_Golden reproduces the canonical three-member
// valset checkpoint hash: keccak256 of ValsetConfirmBytes, before the
// signed-message prefix that ValsetConfirmDigest adds.
func TestValsetConfirmBytes_Golden(t *testing.T) {
	const want = "0xaca2f283f21a03ba182dc7d34a55c04771b25087401d680011df7dcba453f798"

	v := &types.ValidatorSet{
		Nonce: 0,
		Members: []types.Member{
			{RemoteAddress: common.HexToAddress("0xE5904695748fe4A84b40b3fc79De2277660BD1D3"), Power: 3333},
			{RemoteAddress: common.HexToAddress("0xc783df8a850f42e7F7e57013759C285caa701eB6"), Power: 3333},
			{RemoteAddress: common.HexToAddress("0xeAD9C93b79Ae7C1591b1FB5323BD777E86e150d4"), Power: 3333},
		},
	}

	bs, err := ValsetConfirmBytes("foo", v)
	if err != nil {
		t.Fatalf("ValsetConfirmBytes: %v", err)
	}
	if got := crypto.Keccak256Hash(bs); got.Hex() != want {
		t.Fatalf("hash mismatch: got %s want %s", got.Hex(), want)
	}
}

// TestValsetConfirmBytes_NonceChangesHash guards against an encoder that
// silently ignores the nonce field: the golden valset above with only its
// nonce changed must hash differently.
func TestValsetConfirmBytes_NonceChangesHash(t *testing.T) {
	members := []types.Member{
		{RemoteAddress: common.HexToAddress("0xE5904695748fe4A84b40b3fc79De2277660BD1D3"), Power: 3333},
		{RemoteAddress: common.HexToAddress("0xc783df8a850f42e7F7e57013759C285caa701eB6"), Power: 3333},
		{RemoteAddress: common.HexToAddress("0xeAD9C93b79Ae7C1591b1FB5323BD777E86e150d4"), Power: 3333},
	}
	v := &types.ValidatorSet{Nonce: 1, Members: members}

	bs, err := ValsetConfirmBytes("foo", v)
	if err != nil {
		t.Fatalf("ValsetConfirmBytes: %v", err)
	}
	if got := crypto.Keccak256Hash(bs); got.Hex() == "0xaca2f283f21a03ba182dc7d34a55c04771b25087401d680011df7dcba453f798" {
		t.Fatalf("expected a different hash for a valset differing only in nonce")
	}
}

// TestBatchConfirmBytes_Golden reproduces the canonical one-transaction
// batch checkpoint hash: keccak256 of BatchConfirmBytes, before the
// signed-message prefix that BatchConfirmDigest adds.
func TestBatchConfirmBytes_Golden(t *testing.T) {
	const want = "0xa3a7ee0a363b8ad2514e7ee8f110d7449c0d88f3b0913c28c1751e6e0079a9b2"

	erc20 := common.HexToAddress("0x835973768750b3ED2D5c3EF5AdcD5eDb44d12aD4")
	amount := types.NewErc20Amount(uint256.NewInt(1))

	b := &types.TransactionBatch{
		Nonce:        1,
		BatchTimeout: 2111,
		Transactions: []types.BatchTransaction{
			{
				ID:          1,
				Sender:      "althea1c8nkaxk3d0p2gd7ummvmyqpdvqd6pkehqhwnnt",
				Destination: common.HexToAddress("0x9FC9C2DfBA3b6cF204C37a5F690619772b926e39"),
				Erc20Token: types.Erc20Token{
					Amount:               amount,
					TokenContractAddress: erc20,
				},
				Erc20Fee: types.Erc20Token{
					Amount:               amount,
					TokenContractAddress: erc20,
				},
			},
		},
		TotalFee:      types.Erc20Token{Amount: amount, TokenContractAddress: erc20},
		TokenContract: erc20,
	}

	bs, err := BatchConfirmBytes("foo", b)
	if err != nil {
		t.Fatalf("BatchConfirmBytes: %v", err)
	}
	if got := crypto.Keccak256Hash(bs); got.Hex() != want {
		t.Fatalf("hash mismatch: got %s want %s", got.Hex(), want)
	}
}

// TestLogicCallConfirmBytes_Golden reproduces the canonical one-transfer,
// one-fee logic call checkpoint hash: keccak256 of LogicCallConfirmBytes,
// before the signed-message prefix that LogicCallConfirmDigest adds. The
// payload and invalidation_id are each the ASCII string right-padded with
// zero bytes to 32 bytes, matching the reference fixture this vector was
// taken from.
func TestLogicCallConfirmBytes_Golden(t *testing.T) {
	const want = "0x1de95c9ace999f8ec70c6dc8d045942da2612950567c4861aca959c0650194da"

	token := common.HexToAddress("0xC26eFfa98B8A2632141562Ae7E34953Cfe5B4888")
	amount := types.NewErc20Amount(uint256.NewInt(1))

	var payload [32]byte
	copy(payload[:], "testingPayload")
	var invalidationID [32]byte
	copy(invalidationID[:], "invalidationId")

	l := &types.LogicCall{
		Transfers:            []types.Erc20Token{{Amount: amount, TokenContractAddress: token}},
		Fees:                 []types.Erc20Token{{Amount: amount, TokenContractAddress: token}},
		LogicContractAddress: common.HexToAddress("0x17c1736CcF692F653c433d7aa2aB45148C016F68"),
		Payload:              payload[:],
		Timeout:              4766922941000,
		InvalidationID:       invalidationID,
		InvalidationNonce:    1,
	}

	bs, err := LogicCallConfirmBytes("foo", l)
	if err != nil {
		t.Fatalf("LogicCallConfirmBytes: %v", err)
	}
	if got := crypto.Keccak256Hash(bs); got.Hex() != want {
		t.Fatalf("hash mismatch: got %s want %s", got.Hex(), want)
	}
}

// TestConfirmBytes_Deterministic covers P3: encoding the same valset,
// batch, or logic call twice yields byte-identical results.
func TestConfirmBytes_Deterministic(t *testing.T) {
	v := &types.ValidatorSet{
		Nonce: 7,
		Members: []types.Member{
			{RemoteAddress: common.HexToAddress("0xc783df8a850f42e7F7e57013759C285caa701eB6"), Power: 1000},
		},
	}
	b1, err := ValsetConfirmBytes("foo", v)
	if err != nil {
		t.Fatalf("ValsetConfirmBytes: %v", err)
	}
	b2, err := ValsetConfirmBytes("foo", v)
	if err != nil {
		t.Fatalf("ValsetConfirmBytes: %v", err)
	}
	if string(b1) != string(b2) {
		t.Fatalf("expected byte-identical encodings, got %x vs %x", b1, b2)
	}
}

func TestFixedString_TooLong(t *testing.T) {
	long := make([]byte, 33)
	for i := range long {
		long[i] = 'a'
	}
	if _, err := fixedString(string(long)); err == nil {
		t.Fatal("expected an error for a string exceeding 32 bytes")
	}
}
