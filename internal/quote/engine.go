package quote

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/patentdex/patentdex/internal/adapter"
	"github.com/patentdex/patentdex/internal/contracts"
	"github.com/patentdex/patentdex/internal/domain"
	"github.com/patentdex/patentdex/internal/logger"
)

// ErrSuperseded wraps quote unavailability caused by a newer request for the
// same token arriving while this one was in flight.
var ErrSuperseded = fmt.Errorf("%w: superseded by newer request", domain.ErrQuoteUnavailable)

// Engine computes trade quotes. Per token, only the most recently requested
// quote survives; in-flight older requests are discarded when they land.
//
//go:generate mockgen -source=engine.go -destination=../mocks/quote.go -package=mocks -mock_names=Engine=MockQuoteEngine
type Engine interface {
	// Quote computes the cost or proceeds for trading amount tokens. Zero
	// and negative amounts are rejected without touching the chain.
	Quote(ctx context.Context, token contracts.TokenContract, amount *big.Int, direction domain.TradeDirection) (*domain.TradeQuote, error)

	// Latest returns the surviving quote for a token, or nil
	Latest(tokenAddr common.Address) *domain.TradeQuote

	// Invalidate drops the stored quote for a token. Called after any
	// state-changing trade on it.
	Invalidate(tokenAddr common.Address)
}

type tokenQuoteState struct {
	seq    uint64
	latest *domain.TradeQuote
}

type engine struct {
	clock adapter.Clock

	mu     sync.Mutex
	tokens map[common.Address]*tokenQuoteState
}

// NewEngine creates a quote engine.
func NewEngine(clock adapter.Clock) Engine {
	return &engine{
		clock:  clock,
		tokens: make(map[common.Address]*tokenQuoteState),
	}
}

func (e *engine) Quote(ctx context.Context, token contracts.TokenContract, amount *big.Int, direction domain.TradeDirection) (*domain.TradeQuote, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrQuoteUnavailable)
	}
	if !direction.Valid() {
		return nil, fmt.Errorf("%w: unknown direction %q", domain.ErrQuoteUnavailable, direction)
	}

	addr := token.Address()

	e.mu.Lock()
	state, ok := e.tokens[addr]
	if !ok {
		state = &tokenQuoteState{}
		e.tokens[addr] = state
	}
	state.seq++
	mySeq := state.seq
	e.mu.Unlock()

	cost, err := token.CalculatePrice(ctx, amount, direction)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionReverted) {
			// A reverted price call, an unseeded pool for example, is a
			// quote failure and stays retryable.
			return nil, fmt.Errorf("%w: %s", domain.ErrQuoteUnavailable, err)
		}
		return nil, err
	}

	quote := &domain.TradeQuote{
		TokenAddress: addr.Hex(),
		Amount:       new(big.Int).Set(amount),
		Cost:         cost,
		Direction:    direction,
		FetchedAt:    e.clock.Now(),
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if state.seq != mySeq {
		// A newer request started while this one was in flight. Its
		// result wins regardless of landing order.
		logger.Debug("quote superseded",
			zap.String("token", addr.Hex()),
			zap.Uint64("seq", mySeq),
			zap.Uint64("latest", state.seq))
		return nil, ErrSuperseded
	}
	state.latest = quote
	return quote, nil
}

func (e *engine) Latest(tokenAddr common.Address) *domain.TradeQuote {
	e.mu.Lock()
	defer e.mu.Unlock()
	if state, ok := e.tokens[tokenAddr]; ok {
		return state.latest
	}
	return nil
}

func (e *engine) Invalidate(tokenAddr common.Address) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if state, ok := e.tokens[tokenAddr]; ok {
		state.latest = nil
	}
}
