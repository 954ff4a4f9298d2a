package types

import "github.com/ethereum/go-ethereum/common"

// RemoteEvent is implemented by each of the five remote-contract event
// variants. Every variant carries a monotonically increasing EventNonce
// assigned by the remote contract and the BlockHeight it was mined at; an
// oracle MUST submit claims for these events in strictly increasing
// event-nonce order (spec §3).
type RemoteEvent interface {
	GetEventNonce() uint64
	GetBlockHeight() uint64
}

// DepositEvent (SendToCosmosEvent) is fired when a user locks an ERC20 on
// the remote chain destined for a native-chain recipient.
type DepositEvent struct {
	EventNonce   uint64
	BlockHeight  uint64
	TokenContract common.Address
	Sender       common.Address
	Destination  [32]byte // native address, padded to 32 bytes on the remote side
	Amount       *Erc20Amount
}

func (e DepositEvent) GetEventNonce() uint64  { return e.EventNonce }
func (e DepositEvent) GetBlockHeight() uint64 { return e.BlockHeight }

// BatchExecutedEvent (TransactionBatchExecutedEvent) is fired when the
// remote contract executes a TransactionBatch, retiring it.
type BatchExecutedEvent struct {
	EventNonce    uint64
	BlockHeight   uint64
	BatchNonce    uint64
	TokenContract common.Address
}

func (e BatchExecutedEvent) GetEventNonce() uint64  { return e.EventNonce }
func (e BatchExecutedEvent) GetBlockHeight() uint64 { return e.BlockHeight }

// ValsetUpdatedEvent (ValsetUpdatedEvent) is fired when the remote contract
// accepts a new ValidatorSet, including the genesis set at nonce 0.
type ValsetUpdatedEvent struct {
	EventNonce   uint64
	BlockHeight  uint64
	ValsetNonce  uint64
	RewardAmount *Erc20Amount
	RewardToken  common.Address
	Members      []Member
}

func (e ValsetUpdatedEvent) GetEventNonce() uint64  { return e.EventNonce }
func (e ValsetUpdatedEvent) GetBlockHeight() uint64 { return e.BlockHeight }

// Erc20DeployedEvent (ERC20DeployedEvent) is fired when the remote
// contract deploys a representation of a native-chain denom.
type Erc20DeployedEvent struct {
	EventNonce    uint64
	BlockHeight   uint64
	CosmosDenom   string
	TokenContract common.Address
	Name          string
	Symbol        string
	Decimals      uint8
}

func (e Erc20DeployedEvent) GetEventNonce() uint64  { return e.EventNonce }
func (e Erc20DeployedEvent) GetBlockHeight() uint64 { return e.BlockHeight }

// LogicCallExecutedEvent (LogicCallEvent) is fired when the remote contract
// executes a LogicCall, retiring it within its invalidation scope. Its
// on-chain layout is not named explicitly in the contract ABI table; it is
// reconstructed here from the `LogicCallEvent(bytes32,uint256,bytes,uint256)`
// signature (spec §9, open question i): invalidation id, invalidation
// nonce, opaque return data, and the event nonce.
type LogicCallExecutedEvent struct {
	EventNonce        uint64
	BlockHeight       uint64
	InvalidationID    [32]byte
	InvalidationNonce uint64
	ReturnData        []byte
}

func (e LogicCallExecutedEvent) GetEventNonce() uint64  { return e.EventNonce }
func (e LogicCallExecutedEvent) GetBlockHeight() uint64 { return e.BlockHeight }

// FilterByEventNonce returns the subset of events with EventNonce strictly
// greater than threshold, preserving order. Generic over any RemoteEvent
// implementation per spec §4.3's filter utility.
func FilterByEventNonce[E RemoteEvent](threshold uint64, events []E) []E {
	out := make([]E, 0, len(events))
	for _, e := range events {
		if e.GetEventNonce() > threshold {
			out = append(out, e)
		}
	}
	return out
}
