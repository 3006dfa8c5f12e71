package reconcile

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/patentdex/patentdex/internal/adapter"
	"github.com/patentdex/patentdex/internal/contracts"
	"github.com/patentdex/patentdex/internal/domain"
	"github.com/patentdex/patentdex/internal/logger"
)

// Snapshot is the reconciled market view of one token for one account.
type Snapshot struct {
	Metrics  *domain.TokenMetrics `json:"metrics"`
	Balance  *big.Int             `json:"balance"`
	IsHolder bool                 `json:"is_holder"`
	Candles  []domain.Candle      `json:"candles"`
	Compact  []domain.Candle      `json:"compact"`
}

// Reconciler re-derives metrics, balance, holder status and candles from
// contract state. Holder status is never cached across trades; it is always
// recomputed from the current balance.
//
//go:generate mockgen -source=reconciler.go -destination=../mocks/reconciler.go -package=mocks -mock_names=Reconciler=MockReconciler
type Reconciler interface {
	// Refresh rebuilds the full snapshot for token and account
	Refresh(ctx context.Context, token contracts.TokenContract, account common.Address) (*Snapshot, error)

	// Cached returns the last snapshot for a token, or nil
	Cached(tokenAddr common.Address) *Snapshot
}

type reconciler struct {
	clock adapter.Clock

	mu        sync.RWMutex
	snapshots map[common.Address]*Snapshot
}

// New creates a reconciler.
func New(clock adapter.Clock) Reconciler {
	return &reconciler{
		clock:     clock,
		snapshots: make(map[common.Address]*Snapshot),
	}
}

func (r *reconciler) Refresh(ctx context.Context, token contracts.TokenContract, account common.Address) (*Snapshot, error) {
	metrics, err := token.GetTokenMetrics(ctx)
	if err != nil {
		return nil, err
	}

	balance, err := token.BalanceOf(ctx, account)
	if err != nil {
		return nil, err
	}

	trades, err := token.GetTradeHistory(ctx, domain.ChartWindow)
	if err != nil {
		return nil, err
	}

	candles := Window(Bucket(trades, BucketWidth), domain.ChartWindow)
	snapshot := &Snapshot{
		Metrics:  metrics,
		Balance:  balance,
		IsHolder: balance.Sign() > 0,
		Candles:  candles,
		Compact:  Window(candles, domain.CompactWindow),
	}

	r.mu.Lock()
	r.snapshots[token.Address()] = snapshot
	r.mu.Unlock()

	logger.Debug("market snapshot reconciled",
		zap.String("token", token.Address().Hex()),
		zap.Uint64("holders", metrics.HoldersCount),
		zap.Int("candles", len(candles)),
		zap.Bool("is_holder", snapshot.IsHolder))
	return snapshot, nil
}

func (r *reconciler) Cached(tokenAddr common.Address) *Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshots[tokenAddr]
}
