// Package events decodes the five remote-contract event types into the
// RemoteEvent variants in package types (spec §4.3). Indexed parameters are
// read straight off the log's topics; non-indexed parameters are standard
// Solidity ABI-encoded and are unpacked with go-ethereum's accounts/abi
// package rather than by hand, positionally, the way the system this was
// modeled on does it for lack of a decoder in its ecosystem.
package events

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/gravity-bridge/orchestrator/internal/orcerr"
	"github.com/gravity-bridge/orchestrator/internal/types"
	"github.com/holiman/uint256"
)

// bigToUint256 converts an already-bounded 256-bit *big.Int (as decoded by
// the ABI unpacker) into the wire-width integer type used throughout
// package types.
func bigToUint256(v *big.Int) *uint256.Int {
	out, _ := uint256.FromBig(v)
	return out
}

var (
	tString  abi.Type
	tUint8   abi.Type
	tUint256 abi.Type
	tAddress abi.Type
	tAddressS abi.Type
	tUint256S abi.Type
	tBytes   abi.Type
)

func init() {
	var err error
	if tString, err = abi.NewType("string", "", nil); err != nil {
		panic(err)
	}
	if tUint8, err = abi.NewType("uint8", "", nil); err != nil {
		panic(err)
	}
	if tUint256, err = abi.NewType("uint256", "", nil); err != nil {
		panic(err)
	}
	if tAddress, err = abi.NewType("address", "", nil); err != nil {
		panic(err)
	}
	if tAddressS, err = abi.NewType("address[]", "", nil); err != nil {
		panic(err)
	}
	if tUint256S, err = abi.NewType("uint256[]", "", nil); err != nil {
		panic(err)
	}
	if tBytes, err = abi.NewType("bytes", "", nil); err != nil {
		panic(err)
	}
}

// unpackData ABI-decodes a log's non-indexed data blob positionally.
func unpackData(argTypes []abi.Type, names []string, data []byte) ([]interface{}, error) {
	args := make(abi.Arguments, len(argTypes))
	for i, t := range argTypes {
		args[i] = abi.Argument{Name: names[i], Type: t}
	}
	values, err := args.UnpackValues(data)
	if err != nil {
		return nil, orcerr.Wrap(orcerr.KindDecoding, "unpack event data", err)
	}
	return values, nil
}

// toUint64 downcasts a decoded *big.Int to uint64, signaling KindDecoding on
// overflow rather than silently truncating (spec §9: "overflow signals a
// decoding bug").
func toUint64(field string, v *big.Int) (uint64, error) {
	if !v.IsUint64() {
		return 0, orcerr.New(orcerr.KindDecoding, fmt.Sprintf("%s overflows uint64: %s", field, v))
	}
	return v.Uint64(), nil
}

func requireTopics(log ethtypes.Log, n int) error {
	if len(log.Topics) < n {
		return orcerr.New(orcerr.KindDecoding, fmt.Sprintf("log has %d topics, want at least %d", len(log.Topics), n))
	}
	return nil
}

// addressFromTopic trims an indexed address topic's left-padding zeros.
func addressFromTopic(topic common.Hash) common.Address {
	var addr common.Address
	copy(addr[:], topic[12:])
	return addr
}

// FromDepositLog decodes a SendToCosmosEvent log into a DepositEvent.
// Indexed: erc20, sender, destination. Data: amount, event_nonce.
func FromDepositLog(log ethtypes.Log) (types.DepositEvent, error) {
	if err := requireTopics(log, 4); err != nil {
		return types.DepositEvent{}, err
	}

	values, err := unpackData([]abi.Type{tUint256, tUint256}, []string{"amount", "eventNonce"}, log.Data)
	if err != nil {
		return types.DepositEvent{}, err
	}
	amount := values[0].(*big.Int)
	nonce, err := toUint64("event_nonce", values[1].(*big.Int))
	if err != nil {
		return types.DepositEvent{}, err
	}

	return types.DepositEvent{
		EventNonce:    nonce,
		BlockHeight:   log.BlockNumber,
		TokenContract: addressFromTopic(log.Topics[1]),
		Sender:        addressFromTopic(log.Topics[2]),
		Destination:   log.Topics[3],
		Amount:        types.NewErc20Amount(bigToUint256(amount)),
	}, nil
}

// FromBatchExecutedLog decodes a TransactionBatchExecutedEvent log.
// Indexed: batch_nonce, erc20. Data: event_nonce.
func FromBatchExecutedLog(log ethtypes.Log) (types.BatchExecutedEvent, error) {
	if err := requireTopics(log, 3); err != nil {
		return types.BatchExecutedEvent{}, err
	}

	batchNonce, err := toUint64("batch_nonce", new(big.Int).SetBytes(log.Topics[1][:]))
	if err != nil {
		return types.BatchExecutedEvent{}, err
	}

	values, err := unpackData([]abi.Type{tUint256}, []string{"eventNonce"}, log.Data)
	if err != nil {
		return types.BatchExecutedEvent{}, err
	}
	eventNonce, err := toUint64("event_nonce", values[0].(*big.Int))
	if err != nil {
		return types.BatchExecutedEvent{}, err
	}

	return types.BatchExecutedEvent{
		EventNonce:    eventNonce,
		BlockHeight:   log.BlockNumber,
		BatchNonce:    batchNonce,
		TokenContract: addressFromTopic(log.Topics[2]),
	}, nil
}

// FromValsetUpdatedLog decodes a ValsetUpdatedEvent log. Indexed:
// valset_nonce. Data: event_nonce, reward_amount, reward_token, members[],
// powers[].
func FromValsetUpdatedLog(log ethtypes.Log) (types.ValsetUpdatedEvent, error) {
	if err := requireTopics(log, 2); err != nil {
		return types.ValsetUpdatedEvent{}, err
	}

	valsetNonce, err := toUint64("valset_nonce", new(big.Int).SetBytes(log.Topics[1][:]))
	if err != nil {
		return types.ValsetUpdatedEvent{}, err
	}

	values, err := unpackData(
		[]abi.Type{tUint256, tUint256, tAddress, tAddressS, tUint256S},
		[]string{"eventNonce", "rewardAmount", "rewardToken", "members", "powers"},
		log.Data,
	)
	if err != nil {
		return types.ValsetUpdatedEvent{}, err
	}

	eventNonce, err := toUint64("event_nonce", values[0].(*big.Int))
	if err != nil {
		return types.ValsetUpdatedEvent{}, err
	}
	rewardAmount := values[1].(*big.Int)
	rewardToken := values[2].(common.Address)
	addrs := values[3].([]common.Address)
	powers := values[4].([]*big.Int)

	if len(addrs) != len(powers) {
		return types.ValsetUpdatedEvent{}, orcerr.New(orcerr.KindDecoding,
			fmt.Sprintf("valset member/power length mismatch: %d vs %d", len(addrs), len(powers)))
	}

	members := make([]types.Member, len(addrs))
	for i := range addrs {
		power, err := toUint64("member power", powers[i])
		if err != nil {
			return types.ValsetUpdatedEvent{}, err
		}
		members[i] = types.Member{RemoteAddress: addrs[i], Power: power}
	}

	return types.ValsetUpdatedEvent{
		EventNonce:   eventNonce,
		BlockHeight:  log.BlockNumber,
		ValsetNonce:  valsetNonce,
		RewardAmount: types.NewErc20Amount(bigToUint256(rewardAmount)),
		RewardToken:  rewardToken,
		Members:      members,
	}, nil
}

// FromErc20DeployedLog decodes an ERC20DeployedEvent log. Indexed: the
// deployed contract address. Data: cosmos_denom, name, symbol, decimals,
// event_nonce.
func FromErc20DeployedLog(log ethtypes.Log) (types.Erc20DeployedEvent, error) {
	if err := requireTopics(log, 2); err != nil {
		return types.Erc20DeployedEvent{}, err
	}

	values, err := unpackData(
		[]abi.Type{tString, tString, tString, tUint8, tUint256},
		[]string{"cosmosDenom", "name", "symbol", "decimals", "eventNonce"},
		log.Data,
	)
	if err != nil {
		return types.Erc20DeployedEvent{}, err
	}

	decimals := values[3].(uint8)
	eventNonce, err := toUint64("event_nonce", values[4].(*big.Int))
	if err != nil {
		return types.Erc20DeployedEvent{}, err
	}

	return types.Erc20DeployedEvent{
		EventNonce:    eventNonce,
		BlockHeight:   log.BlockNumber,
		CosmosDenom:   values[0].(string),
		TokenContract: addressFromTopic(log.Topics[1]),
		Name:          values[1].(string),
		Symbol:        values[2].(string),
		Decimals:      decimals,
	}, nil
}

// FromLogicCallExecutedLog decodes a LogicCallEvent log. The source this
// was modeled on leaves this decoder unimplemented, noting only the
// contract's `LogicCallEvent(bytes32,uint256,bytes,uint256)` signature; the
// layout here follows the same indexed/non-indexed split as every other
// event in this contract family — the first signature type (the
// invalidation id) indexed, the rest in the data blob.
func FromLogicCallExecutedLog(log ethtypes.Log) (types.LogicCallExecutedEvent, error) {
	if err := requireTopics(log, 2); err != nil {
		return types.LogicCallExecutedEvent{}, err
	}

	values, err := unpackData(
		[]abi.Type{tUint256, tBytes, tUint256},
		[]string{"invalidationNonce", "returnData", "eventNonce"},
		log.Data,
	)
	if err != nil {
		return types.LogicCallExecutedEvent{}, err
	}

	invalidationNonce, err := toUint64("invalidation_nonce", values[0].(*big.Int))
	if err != nil {
		return types.LogicCallExecutedEvent{}, err
	}
	eventNonce, err := toUint64("event_nonce", values[2].(*big.Int))
	if err != nil {
		return types.LogicCallExecutedEvent{}, err
	}

	return types.LogicCallExecutedEvent{
		EventNonce:        eventNonce,
		BlockHeight:       log.BlockNumber,
		InvalidationID:    log.Topics[1],
		InvalidationNonce: invalidationNonce,
		ReturnData:        values[1].([]byte),
	}, nil
}
