package native

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/gravity-bridge/orchestrator/internal/orcerr"
	"github.com/gravity-bridge/orchestrator/internal/types"
)

// This file converts between the wire shapes in queries.go/msgs.go (plain
// strings, since there is no generated codec to carry richer types over the
// gRPC boundary — see the package doc's "no generated code available" note)
// and package types' domain model, which is what the Signer and Relayer
// Loops actually operate on.

// FormatMember encodes one ValidatorSet member the way ValsetResponse.Members
// and MsgValsetUpdatedClaim.Members are documented to: "ethAddr:power".
func FormatMember(m types.Member) string {
	return fmt.Sprintf("%s:%d", m.RemoteAddress.Hex(), m.Power)
}

// ParseMember decodes one "ethAddr:power" pair.
func ParseMember(s string) (types.Member, error) {
	addr, powerStr, ok := strings.Cut(s, ":")
	if !ok {
		return types.Member{}, orcerr.New(orcerr.KindDecoding, fmt.Sprintf("malformed member %q: missing ':'", s))
	}
	power, err := strconv.ParseUint(powerStr, 10, 64)
	if err != nil {
		return types.Member{}, orcerr.Wrap(orcerr.KindDecoding, fmt.Sprintf("malformed member power %q", s), err)
	}
	return types.Member{RemoteAddress: common.HexToAddress(addr), Power: power}, nil
}

// ToValidatorSet decodes a ValsetResponse into a *types.ValidatorSet,
// preserving member order (the wire order IS the signing order — see
// ValidatorSet's doc comment in internal/types/valset.go).
func ToValidatorSet(resp *ValsetResponse) (*types.ValidatorSet, error) {
	members := make([]types.Member, len(resp.Members))
	for i, raw := range resp.Members {
		m, err := ParseMember(raw)
		if err != nil {
			return nil, err
		}
		members[i] = m
	}

	var rewardAmount *types.Erc20Amount
	if resp.RewardAmount != "" {
		amt, err := parseUint256(resp.RewardAmount)
		if err != nil {
			return nil, err
		}
		rewardAmount = types.NewErc20Amount(amt)
	}

	var rewardToken *common.Address
	if resp.RewardToken != "" {
		addr := common.HexToAddress(resp.RewardToken)
		rewardToken = &addr
	}

	return &types.ValidatorSet{
		Nonce:        resp.Nonce,
		Members:      members,
		RewardAmount: rewardAmount,
		RewardToken:  rewardToken,
	}, nil
}

// EncodeSignature renders an EthSignature as hex(r || s || v), the wire
// format every Msg*Confirm/*ConfirmResponse "signature" string field holds.
func EncodeSignature(sig types.EthSignature) string {
	buf := make([]byte, 0, 65)
	buf = append(buf, sig.R[:]...)
	buf = append(buf, sig.S[:]...)
	buf = append(buf, sig.V)
	return "0x" + hex.EncodeToString(buf)
}

// DecodeSignature parses the hex(r || s || v) wire format back into an
// EthSignature.
func DecodeSignature(s string) (types.EthSignature, error) {
	raw, err := decodeHex(s)
	if err != nil {
		return types.EthSignature{}, err
	}
	if len(raw) != 65 {
		return types.EthSignature{}, orcerr.New(orcerr.KindDecoding, fmt.Sprintf("signature %q is %d bytes, want 65", s, len(raw)))
	}
	var sig types.EthSignature
	copy(sig.R[:], raw[0:32])
	copy(sig.S[:], raw[32:64])
	sig.V = raw[64]
	return sig, nil
}

// ToValsetConfirmation decodes one ValsetConfirmResponse.
func ToValsetConfirmation(resp *ValsetConfirmResponse) (types.ValsetConfirmation, error) {
	sig, err := DecodeSignature(resp.Signature)
	if err != nil {
		return types.ValsetConfirmation{}, err
	}
	return types.ValsetConfirmation{
		ValsetNonce: resp.Nonce,
		Signer:      common.HexToAddress(resp.EthSigner),
		Sig:         sig,
	}, nil
}

// ToBatchConfirmation decodes one BatchConfirmResponse.
func ToBatchConfirmation(resp *BatchConfirmResponse) (types.BatchConfirmation, error) {
	sig, err := DecodeSignature(resp.Signature)
	if err != nil {
		return types.BatchConfirmation{}, err
	}
	return types.BatchConfirmation{
		BatchNonce:    resp.Nonce,
		TokenContract: common.HexToAddress(resp.TokenContract),
		Signer:        common.HexToAddress(resp.EthSigner),
		Sig:           sig,
	}, nil
}

// ToLogicCallConfirmation decodes one LogicCallConfirmResponse.
func ToLogicCallConfirmation(resp *LogicCallConfirmResponse) (types.LogicCallConfirmation, error) {
	sig, err := DecodeSignature(resp.Signature)
	if err != nil {
		return types.LogicCallConfirmation{}, err
	}
	id, err := decodeHash32(resp.InvalidationId)
	if err != nil {
		return types.LogicCallConfirmation{}, err
	}
	return types.LogicCallConfirmation{
		InvalidationID: id,
		Signer:         common.HexToAddress(resp.EthSigner),
		Sig:            sig,
	}, nil
}

// ToTransactionBatch decodes a BatchResponse, including its opaque
// "transactions" legs (see EncodeBatchTransaction).
func ToTransactionBatch(resp *BatchResponse) (*types.TransactionBatch, error) {
	txs := make([]types.BatchTransaction, len(resp.Transactions))
	for i, raw := range resp.Transactions {
		tx, err := decodeBatchTransaction(raw)
		if err != nil {
			return nil, err
		}
		txs[i] = tx
	}

	totalFee, err := parseErc20Token(resp.TotalFee, resp.TokenContract)
	if err != nil {
		return nil, err
	}

	return &types.TransactionBatch{
		Nonce:         resp.Nonce,
		BatchTimeout:  resp.BatchTimeout,
		Transactions:  txs,
		TotalFee:      totalFee,
		TokenContract: common.HexToAddress(resp.TokenContract),
	}, nil
}

// EncodeBatchTransaction is the inverse of decodeBatchTransaction, used by
// tests and by anything that needs to round-trip a BatchTransaction through
// the wire "transactions" encoding.
func EncodeBatchTransaction(tx types.BatchTransaction) string {
	return strings.Join([]string{
		strconv.FormatUint(tx.ID, 10),
		tx.Sender,
		tx.Destination.Hex(),
		tx.Erc20Token.Amount.Value().String(),
		tx.Erc20Token.TokenContractAddress.Hex(),
		tx.Erc20Fee.Amount.Value().String(),
		tx.Erc20Fee.TokenContractAddress.Hex(),
	}, "|")
}

func decodeBatchTransaction(s string) (types.BatchTransaction, error) {
	parts := strings.Split(s, "|")
	if len(parts) != 7 {
		return types.BatchTransaction{}, orcerr.New(orcerr.KindDecoding, fmt.Sprintf("malformed batch transaction leg %q", s))
	}
	id, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return types.BatchTransaction{}, orcerr.Wrap(orcerr.KindDecoding, fmt.Sprintf("batch transaction id %q", s), err)
	}
	tokenAmount, err := parseErc20Token(parts[3], parts[4])
	if err != nil {
		return types.BatchTransaction{}, err
	}
	feeAmount, err := parseErc20Token(parts[5], parts[6])
	if err != nil {
		return types.BatchTransaction{}, err
	}
	return types.BatchTransaction{
		ID:          id,
		Sender:      parts[1],
		Destination: common.HexToAddress(parts[2]),
		Erc20Token:  tokenAmount,
		Erc20Fee:    feeAmount,
	}, nil
}

// ToLogicCall decodes a LogicCallResponse, including its opaque
// "transfers"/"fees" encodings (see EncodeErc20Token).
func ToLogicCall(resp *LogicCallResponse) (*types.LogicCall, error) {
	transfers, err := decodeErc20Tokens(resp.Transfers)
	if err != nil {
		return nil, err
	}
	fees, err := decodeErc20Tokens(resp.Fees)
	if err != nil {
		return nil, err
	}
	id, err := decodeHash32(resp.InvalidationId)
	if err != nil {
		return nil, err
	}
	return &types.LogicCall{
		Transfers:            transfers,
		Fees:                 fees,
		LogicContractAddress: common.HexToAddress(resp.LogicContract),
		Payload:              resp.Payload,
		Timeout:              resp.Timeout,
		InvalidationID:       id,
		InvalidationNonce:    resp.InvalidationNonce,
	}, nil
}

// EncodeErc20Token renders one Erc20Token as "amount|contract", the wire
// encoding LogicCallResponse.Transfers/Fees use.
func EncodeErc20Token(t types.Erc20Token) string {
	return t.Amount.Value().String() + "|" + t.TokenContractAddress.Hex()
}

func decodeErc20Tokens(raw []string) ([]types.Erc20Token, error) {
	out := make([]types.Erc20Token, len(raw))
	for i, s := range raw {
		amountStr, contract, ok := strings.Cut(s, "|")
		if !ok {
			return nil, orcerr.New(orcerr.KindDecoding, fmt.Sprintf("malformed erc20 token %q", s))
		}
		tok, err := parseErc20Token(amountStr, contract)
		if err != nil {
			return nil, err
		}
		out[i] = tok
	}
	return out, nil
}

func parseErc20Token(amountStr, contract string) (types.Erc20Token, error) {
	amt, err := parseUint256(amountStr)
	if err != nil {
		return types.Erc20Token{}, err
	}
	return types.Erc20Token{
		Amount:               types.NewErc20Amount(amt),
		TokenContractAddress: common.HexToAddress(contract),
	}, nil
}

func parseUint256(s string) (*uint256.Int, error) {
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, orcerr.Wrap(orcerr.KindDecoding, fmt.Sprintf("malformed amount %q", s), err)
	}
	return v, nil
}

func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, orcerr.Wrap(orcerr.KindDecoding, fmt.Sprintf("malformed hex %q", s), err)
	}
	return raw, nil
}

func decodeHash32(s string) ([32]byte, error) {
	raw, err := decodeHex(s)
	if err != nil {
		return [32]byte{}, err
	}
	if len(raw) != 32 {
		return [32]byte{}, orcerr.New(orcerr.KindDecoding, fmt.Sprintf("%q is %d bytes, want 32", s, len(raw)))
	}
	var out [32]byte
	copy(out[:], raw)
	return out, nil
}
