package native

import (
	"context"
	"errors"
	"testing"

	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdktx "github.com/cosmos/cosmos-sdk/types/tx"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/gravity-bridge/orchestrator/internal/orcerr"
)

func newTestClient(auth AuthClient) *Client {
	addr := sdk.AccAddress(make([]byte, 20))
	ai := NewAccountInfo(auth, addr)
	return &Client{logger: log.NewNopLogger(), account: ai}
}

func TestDispatchResult_Success_IncrementsSequence(t *testing.T) {
	t.Parallel()

	c := newTestClient(mockAuthClient{resp: &authtypes.QueryAccountInfoResponse{Info: &authtypes.BaseAccount{}}})
	if err := c.account.Reset(context.Background()); err != nil {
		t.Fatalf("Reset error: %v", err)
	}

	resp := &sdktx.BroadcastTxResponse{TxResponse: &sdk.TxResponse{Code: 0, TxHash: "ABC"}}
	got, err := c.dispatchResult(context.Background(), resp)
	if err != nil {
		t.Fatalf("dispatchResult error: %v", err)
	}
	if got != resp {
		t.Fatalf("expected response passed through unchanged")
	}
	if seq := c.account.CurrentSequenceNumber(); seq != 1 {
		t.Fatalf("expected sequence incremented to 1, got %d", seq)
	}
}

func TestDispatchResult_SequenceConflict_ResetsAccount(t *testing.T) {
	t.Parallel()

	for _, code := range []uint32{32, 33} {
		auth := mockAuthClient{resp: &authtypes.QueryAccountInfoResponse{
			Info: &authtypes.BaseAccount{AccountNumber: 10, Sequence: 99},
		}}
		c := newTestClient(auth)

		resp := &sdktx.BroadcastTxResponse{TxResponse: &sdk.TxResponse{Code: code, RawLog: "sequence mismatch"}}
		_, err := c.dispatchResult(context.Background(), resp)
		if err == nil {
			t.Fatalf("code %d: expected error", code)
		}
		if got := c.account.CurrentSequenceNumber(); got != 99 {
			t.Fatalf("code %d: expected sequence reset to 99, got %d", code, got)
		}
	}
}

func TestDispatchResult_InsufficientFee_ReturnsInsufficientFeesKind(t *testing.T) {
	t.Parallel()

	c := newTestClient(mockAuthClient{})
	resp := &sdktx.BroadcastTxResponse{TxResponse: &sdk.TxResponse{Code: 13, RawLog: "insufficient fee"}}

	_, err := c.dispatchResult(context.Background(), resp)
	if err == nil {
		t.Fatalf("expected error")
	}
	var orcErr *orcerr.Error
	if !errors.As(err, &orcErr) {
		t.Fatalf("expected *orcerr.Error, got %T", err)
	}
	if orcErr.Kind != orcerr.KindInsufficientFees {
		t.Fatalf("expected KindInsufficientFees, got %v", orcErr.Kind)
	}
}

func TestDispatchResult_UnknownCode_DoesNotMutateAccount(t *testing.T) {
	t.Parallel()

	c := newTestClient(mockAuthClient{resp: &authtypes.QueryAccountInfoResponse{Info: &authtypes.BaseAccount{}}})
	if err := c.account.Reset(context.Background()); err != nil {
		t.Fatalf("Reset error: %v", err)
	}

	resp := &sdktx.BroadcastTxResponse{TxResponse: &sdk.TxResponse{Code: 5, RawLog: "some other failure"}}
	_, err := c.dispatchResult(context.Background(), resp)
	if err == nil {
		t.Fatalf("expected error")
	}
	if got := c.account.CurrentSequenceNumber(); got != 0 {
		t.Fatalf("expected sequence unchanged at 0, got %d", got)
	}
}
