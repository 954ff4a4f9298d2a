package native

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

type mockAuthClient struct {
	resp *authtypes.QueryAccountInfoResponse
	err  error
}

func (m mockAuthClient) AccountInfo(ctx context.Context, in *authtypes.QueryAccountInfoRequest, _ ...grpc.CallOption) (*authtypes.QueryAccountInfoResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func TestAccountInfo_Reset_SetsAccountAndSequence(t *testing.T) {
	t.Parallel()

	addr := sdk.AccAddress(make([]byte, 20))
	ai := NewAccountInfo(mockAuthClient{
		resp: &authtypes.QueryAccountInfoResponse{
			Info: &authtypes.BaseAccount{AccountNumber: 9, Sequence: 12},
		},
	}, addr)

	if err := ai.Reset(context.Background()); err != nil {
		t.Fatalf("Reset error: %v", err)
	}
	if got := ai.AccountNumber(); got != 9 {
		t.Fatalf("expected account_number=9, got %d", got)
	}
	if got := ai.CurrentSequenceNumber(); got != 12 {
		t.Fatalf("expected sequence=12, got %d", got)
	}
}

func TestAccountInfo_Reset_ReturnsError(t *testing.T) {
	t.Parallel()

	addr := sdk.AccAddress(make([]byte, 20))
	ai := NewAccountInfo(mockAuthClient{err: errors.New("boom")}, addr)

	if err := ai.Reset(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}

func TestAccountInfo_IncrementSequenceNumber(t *testing.T) {
	t.Parallel()

	addr := sdk.AccAddress(make([]byte, 20))
	ai := NewAccountInfo(mockAuthClient{
		resp: &authtypes.QueryAccountInfoResponse{Info: &authtypes.BaseAccount{AccountNumber: 1, Sequence: 5}},
	}, addr)

	if err := ai.Reset(context.Background()); err != nil {
		t.Fatalf("Reset error: %v", err)
	}
	ai.IncrementSequenceNumber()
	ai.IncrementSequenceNumber()
	if got := ai.CurrentSequenceNumber(); got != 7 {
		t.Fatalf("expected sequence=7 after two increments, got %d", got)
	}
}
