package native

import (
	"context"
	"sync/atomic"
	"time"

	"google.golang.org/grpc"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/gravity-bridge/orchestrator/internal/orcerr"
)

// AuthClient is the subset of authtypes.QueryClient AccountInfo needs,
// grounded directly on the teacher's submitter.AuthClient
// (oracle/submitter/account.go).
type AuthClient interface {
	AccountInfo(ctx context.Context, in *authtypes.QueryAccountInfoRequest, opts ...grpc.CallOption) (*authtypes.QueryAccountInfoResponse, error)
}

// AccountInfo tracks the delegate account's number and sequence across
// concurrent submits; the Signer and Oracle Loops both call SubmitMsgs
// from their own goroutines, so reads/writes go through atomics rather
// than a mutex, exactly as the teacher does.
type AccountInfo struct {
	authClient AuthClient
	address    sdk.AccAddress

	accountNumber  uint64
	sequenceNumber uint64
}

func NewAccountInfo(authClient AuthClient, address sdk.AccAddress) *AccountInfo {
	return &AccountInfo{authClient: authClient, address: address}
}

func (a *AccountInfo) AccountNumber() uint64 {
	return atomic.LoadUint64(&a.accountNumber)
}

func (a *AccountInfo) CurrentSequenceNumber() uint64 {
	return atomic.LoadUint64(&a.sequenceNumber)
}

func (a *AccountInfo) IncrementSequenceNumber() {
	atomic.AddUint64(&a.sequenceNumber, 1)
}

// Reset re-fetches the account's number and sequence from chain state,
// the recovery path after a sequence-mismatch broadcast error.
func (a *AccountInfo) Reset(ctx context.Context) error {
	subCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	accInfo, err := a.authClient.AccountInfo(subCtx, &authtypes.QueryAccountInfoRequest{Address: a.address.String()})
	if err != nil {
		return orcerr.Wrap(orcerr.KindTransient, "query account info", err)
	}

	atomic.StoreUint64(&a.accountNumber, accInfo.Info.AccountNumber)
	atomic.StoreUint64(&a.sequenceNumber, accInfo.Info.Sequence)
	return nil
}
