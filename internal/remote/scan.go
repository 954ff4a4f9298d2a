package remote

import (
	"context"
	"fmt"
	"math/big"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/gravity-bridge/orchestrator/internal/events"
	"github.com/gravity-bridge/orchestrator/internal/orcerr"
	"github.com/gravity-bridge/orchestrator/internal/retry"
	"github.com/gravity-bridge/orchestrator/internal/types"
)

// topic0 hashes of the five event signatures, computed once.
var eventTopics = func() []common.Hash {
	out := make([]common.Hash, len(eventSignatures))
	for i, sig := range eventSignatures {
		out[i] = crypto.Keccak256Hash([]byte(sig))
	}
	return out
}()

// ScannedEvents groups one block window's worth of decoded logs by kind,
// the shape the Oracle Loop filters by event nonce and submits in order
// (spec §4.5).
type ScannedEvents struct {
	Deposits        []types.DepositEvent
	BatchExecutions []types.BatchExecutedEvent
	ValsetUpdates   []types.ValsetUpdatedEvent
	Erc20Deploys    []types.Erc20DeployedEvent
	LogicCalls      []types.LogicCallExecutedEvent
}

// ScanEvents filters the contract's logs in [fromBlock, toBlock] and
// decodes each into its typed event. A log whose topic0 matches none of
// the five known signatures is ignored (future contract events this
// client doesn't yet know about); a log that fails to decode is surfaced
// as orcerr.KindDecoding so the caller can skip it without losing the rest
// of the window.
func (c *Client) ScanEvents(ctx context.Context, fromBlock, toBlock uint64) (ScannedEvents, error) {
	var logs []ethtypes.Log
	err := retry.Do(ctx, retry.DefaultOptions, func(ctx context.Context) error {
		raw, err := c.eth.FilterLogs(ctx, ethereum.FilterQuery{
			FromBlock: new(big.Int).SetUint64(fromBlock),
			ToBlock:   new(big.Int).SetUint64(toBlock),
			Addresses: []common.Address{c.contractAddress},
			Topics:    [][]common.Hash{eventTopics},
		})
		logs = raw
		return err
	})
	if err != nil {
		return ScannedEvents{}, orcerr.Wrap(orcerr.KindTransient, fmt.Sprintf("filter logs [%d,%d]", fromBlock, toBlock), err)
	}

	var out ScannedEvents
	for _, log := range logs {
		if len(log.Topics) == 0 {
			continue
		}
		switch log.Topics[0] {
		case eventTopics[0]:
			ev, err := events.FromDepositLog(log)
			if err != nil {
				return out, err
			}
			out.Deposits = append(out.Deposits, ev)
		case eventTopics[1]:
			ev, err := events.FromBatchExecutedLog(log)
			if err != nil {
				return out, err
			}
			out.BatchExecutions = append(out.BatchExecutions, ev)
		case eventTopics[2]:
			ev, err := events.FromValsetUpdatedLog(log)
			if err != nil {
				return out, err
			}
			out.ValsetUpdates = append(out.ValsetUpdates, ev)
		case eventTopics[3]:
			ev, err := events.FromErc20DeployedLog(log)
			if err != nil {
				return out, err
			}
			out.Erc20Deploys = append(out.Erc20Deploys, ev)
		case eventTopics[4]:
			ev, err := events.FromLogicCallExecutedLog(log)
			if err != nil {
				return out, err
			}
			out.LogicCalls = append(out.LogicCalls, ev)
		}
	}
	return out, nil
}
