package emitter

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/alitto/pond/v2"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/patentdex/patentdex/internal/adapter"
	"github.com/patentdex/patentdex/internal/contracts"
	"github.com/patentdex/patentdex/internal/domain"
	"github.com/patentdex/patentdex/internal/logger"
	"github.com/patentdex/patentdex/internal/messaging"
)

const (
	workerPoolSize  = 8
	workerQueueSize = 256
)

// Config holds the configuration for the market event emitter
type Config struct {
	ChainID domain.Chain
	// StartBlock is the first block to emit from. Zero means start at the
	// current head.
	StartBlock uint64
	// Contracts limits the subscription to these addresses. Empty watches
	// every contract emitting the known topics.
	Contracts []common.Address
}

// Emitter subscribes to contract logs, normalizes them into market events
// and publishes them to the broker.
type Emitter struct {
	cfg       Config
	eth       adapter.EthClient
	clock     adapter.Clock
	publisher messaging.Publisher
	pool      pond.Pool

	mu         sync.Mutex
	blockTimes map[uint64]int64
}

// New creates a market event emitter.
func New(cfg Config, eth adapter.EthClient, clock adapter.Clock, publisher messaging.Publisher) *Emitter {
	return &Emitter{
		cfg:        cfg,
		eth:        eth,
		clock:      clock,
		publisher:  publisher,
		blockTimes: make(map[uint64]int64),
	}
}

// Run subscribes to market event logs and publishes until the context ends.
func (e *Emitter) Run(ctx context.Context) error {
	fromBlock := e.cfg.StartBlock
	if fromBlock == 0 {
		head, err := e.eth.BlockNumber(ctx)
		if err != nil {
			return fmt.Errorf("failed to get head block: %w", err)
		}
		fromBlock = head
	}

	e.pool = pond.NewPool(
		workerPoolSize,
		pond.WithQueueSize(workerQueueSize),
		pond.WithContext(ctx),
	)
	defer func() {
		e.pool.StopAndWait()
		logger.Info("emitter worker pool drained",
			zap.Uint64("submitted", e.pool.SubmittedTasks()),
			zap.Uint64("completed", e.pool.CompletedTasks()),
			zap.Uint64("failed", e.pool.FailedTasks()))
	}()

	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		Addresses: e.cfg.Contracts,
		Topics:    [][]common.Hash{contracts.MarketEventSignatures()},
	}

	logs := make(chan types.Log)
	sub, err := e.eth.SubscribeFilterLogs(ctx, query, logs)
	if err != nil {
		return fmt.Errorf("failed to subscribe to market logs: %w", err)
	}
	defer sub.Unsubscribe()

	logger.InfoCtx(ctx, "market event emitter started",
		zap.Uint64("from_block", fromBlock),
		zap.String("chain", string(e.cfg.ChainID)),
		zap.Int("contracts", len(e.cfg.Contracts)))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-sub.Err():
			return fmt.Errorf("subscription error: %w", err)
		case vLog := <-logs:
			if vLog.Removed {
				// Reorged out, downstream consumers key on tx hash and
				// will see the replacement log.
				continue
			}
			e.pool.SubmitErr(func() error {
				return e.handleLog(ctx, vLog)
			})
		}
	}
}

func (e *Emitter) handleLog(ctx context.Context, vLog types.Log) error {
	event, err := contracts.ParseMarketEvent(vLog)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("tx_hash", vLog.TxHash.Hex()))
		return err
	}
	if event == nil {
		return nil
	}

	event.Chain = e.cfg.ChainID
	ts, err := e.blockTime(ctx, vLog.BlockNumber)
	if err != nil {
		logger.WarnCtx(ctx, "falling back to wall clock for event timestamp",
			zap.Uint64("block", vLog.BlockNumber), zap.Error(err))
		event.Timestamp = e.clock.Now().UTC()
	} else {
		event.Timestamp = e.clock.Unix(ts, 0).UTC()
	}

	if err := e.publisher.PublishEvent(ctx, event); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("event_type", string(event.EventType)))
		return err
	}
	return nil
}

// blockTime resolves and caches block timestamps so bursts of logs in one
// block cost a single header fetch.
func (e *Emitter) blockTime(ctx context.Context, blockNumber uint64) (int64, error) {
	e.mu.Lock()
	if ts, ok := e.blockTimes[blockNumber]; ok {
		e.mu.Unlock()
		return ts, nil
	}
	e.mu.Unlock()

	header, err := e.eth.HeaderByNumber(ctx, new(big.Int).SetUint64(blockNumber))
	if err != nil {
		return 0, err
	}

	ts := int64(header.Time)
	e.mu.Lock()
	e.blockTimes[blockNumber] = ts
	if len(e.blockTimes) > 1024 {
		// Cheap reset, the cache only serves bursts
		e.blockTimes = map[uint64]int64{blockNumber: ts}
	}
	e.mu.Unlock()
	return ts, nil
}
