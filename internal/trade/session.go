package trade

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/patentdex/patentdex/internal/contracts"
	"github.com/patentdex/patentdex/internal/domain"
	"github.com/patentdex/patentdex/internal/gateway"
	"github.com/patentdex/patentdex/internal/logger"
	"github.com/patentdex/patentdex/internal/quote"
	"github.com/patentdex/patentdex/internal/reconcile"
)

// State is the lifecycle phase of a trade session.
type State string

const (
	StateIdle                 State = "idle"
	StateQuoting              State = "quoting"
	StateAwaitingApproval     State = "awaiting_approval"
	StateAwaitingConfirmation State = "awaiting_confirmation"
	StateSettling             State = "settling"
	StateErrored              State = "errored"
)

// quoteFreshFor bounds how old a quote may be at submission time. Contract
// state moves under a stale quote.
const quoteFreshFor = 30 * time.Second

// Result is the outcome of a settled trade.
type Result struct {
	TxHash    string             `json:"tx_hash"`
	Direction domain.TradeDirection `json:"direction"`
	Amount    *big.Int           `json:"amount"`
	Cost      *big.Int           `json:"cost"`
	Snapshot  *reconcile.Snapshot `json:"snapshot"`
}

// Session drives one trade on one token through quote, approval,
// confirmation and settlement. A session survives failed trades; the next
// quote request resets it.
type Session struct {
	ID    string
	token contracts.TokenContract

	gw     gateway.Gateway
	quotes quote.Engine
	rec    reconcile.Reconciler

	// sellSpender, when set, is approved before sells that exceed the
	// current allowance. Zero means the token burns directly and no
	// approval is needed.
	sellSpender common.Address

	mu         sync.Mutex
	state      State
	quote      *domain.TradeQuote
	quoteEpoch uint64
	quoteSeq   uint64
	lastErr    error
}

func newSession(id string, token contracts.TokenContract, gw gateway.Gateway, quotes quote.Engine, rec reconcile.Reconciler, sellSpender common.Address) *Session {
	return &Session{
		ID:          id,
		token:       token,
		gw:          gw,
		quotes:      quotes,
		rec:         rec,
		sellSpender: sellSpender,
		state:       StateIdle,
	}
}

// State returns the current lifecycle phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Err returns the error that moved the session to Errored, if any.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Quote returns the session's current quote, if one survived.
func (s *Session) Quote() *domain.TradeQuote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quote
}

// TokenAddress returns the address of the token this session trades.
func (s *Session) TokenAddress() common.Address {
	return s.token.Address()
}

// RequestQuote computes a fresh quote for the session. It is legal from
// Idle, Errored and Quoting: a new quote is how a failed session recovers,
// and a request arriving while one is still in flight supersedes it. The
// engine discards the older result whenever it lands, so the last request
// wins regardless of completion order.
func (s *Session) RequestQuote(ctx context.Context, amount *big.Int, direction domain.TradeDirection) (*domain.TradeQuote, error) {
	s.mu.Lock()
	switch s.state {
	case StateIdle, StateErrored, StateQuoting:
	default:
		state := s.state
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: cannot quote while %s", domain.ErrQuoteUnavailable, state)
	}
	s.state = StateQuoting
	s.lastErr = nil
	s.quote = nil
	s.quoteSeq++
	mySeq := s.quoteSeq
	epoch := s.gw.Epoch()
	s.mu.Unlock()

	q, err := s.quotes.Quote(ctx, s.token, amount, direction)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quoteSeq != mySeq {
		// A newer request owns the session now; leave its state alone.
		if err == nil {
			err = quote.ErrSuperseded
		}
		return nil, err
	}
	if err != nil {
		s.state = StateIdle
		return nil, err
	}
	if s.gw.Epoch() != epoch {
		s.state = StateIdle
		return nil, domain.ErrContextChanged
	}
	s.quote = q
	s.quoteEpoch = epoch
	s.state = StateIdle
	return q, nil
}

// Submit executes the quoted trade. The quote must match the requested
// amount and direction exactly and must have been computed under the
// current wallet epoch. Sells are rejected before any transaction when the
// account holds less than the trade amount.
func (s *Session) Submit(ctx context.Context, amount *big.Int, direction domain.TradeDirection) (*Result, error) {
	s.mu.Lock()
	if s.state != StateIdle {
		state := s.state
		s.mu.Unlock()
		return nil, fmt.Errorf("cannot submit while %s", state)
	}
	q := s.quote
	quoteEpoch := s.quoteEpoch
	s.state = StateAwaitingApproval
	s.mu.Unlock()

	result, err := s.execute(ctx, q, quoteEpoch, amount, direction)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateErrored
		s.lastErr = err
		logger.Warn("trade session errored",
			zap.String("session", s.ID),
			zap.String("token", s.token.Address().Hex()),
			zap.String("code", domain.ErrorCode(err)))
		return nil, err
	}
	s.state = StateIdle
	s.quote = nil
	return result, nil
}

func (s *Session) execute(ctx context.Context, q *domain.TradeQuote, quoteEpoch uint64, amount *big.Int, direction domain.TradeDirection) (*Result, error) {
	if !q.Matches(amount, direction) {
		return nil, fmt.Errorf("%w: quote does not cover requested trade", domain.ErrQuoteUnavailable)
	}
	if time.Since(q.FetchedAt) > quoteFreshFor {
		return nil, fmt.Errorf("%w: quote expired", domain.ErrQuoteUnavailable)
	}
	if s.gw.Epoch() != quoteEpoch {
		return nil, domain.ErrContextChanged
	}

	account := s.gw.Account()

	if direction == domain.DirectionSell {
		// Holder status is re-derived from the live balance, never
		// trusted from an earlier snapshot.
		balance, err := s.token.BalanceOf(ctx, account)
		if err != nil {
			return nil, err
		}
		if balance.Cmp(amount) < 0 {
			return nil, fmt.Errorf("%w: hold %s, selling %s",
				domain.ErrInsufficientBalance, balance, amount)
		}

		if err := s.ensureAllowance(ctx, account, amount); err != nil {
			return nil, err
		}
	}

	var pending gateway.PendingTx
	var err error
	if direction == domain.DirectionBuy {
		// The transaction carries exactly the quoted cost. Overpaying
		// strands value in the contract; underpaying reverts.
		pending, err = s.token.BuyTokens(ctx, amount, q.Cost)
	} else {
		pending, err = s.token.SellTokens(ctx, amount)
	}
	if err != nil {
		return nil, err
	}

	s.setState(StateAwaitingConfirmation)
	receipt, err := s.gw.Await(ctx, pending)
	if err != nil {
		return nil, err
	}

	s.setState(StateSettling)
	s.quotes.Invalidate(s.token.Address())
	snapshot, err := s.rec.Refresh(ctx, s.token, account)
	if err != nil {
		// The trade confirmed; a failed refresh must not fail it.
		logger.Warn("post-trade refresh failed",
			zap.String("session", s.ID),
			zap.Error(err))
		snapshot = nil
	}

	logger.Info("trade settled",
		zap.String("session", s.ID),
		zap.String("token", s.token.Address().Hex()),
		zap.String("direction", string(direction)),
		zap.String("tx_hash", receipt.TxHash.Hex()))

	return &Result{
		TxHash:    receipt.TxHash.Hex(),
		Direction: direction,
		Amount:    amount,
		Cost:      q.Cost,
		Snapshot:  snapshot,
	}, nil
}

func (s *Session) ensureAllowance(ctx context.Context, account common.Address, amount *big.Int) error {
	if s.sellSpender == (common.Address{}) {
		return nil
	}

	allowance, err := s.token.Allowance(ctx, account, s.sellSpender)
	if err != nil {
		return err
	}
	if allowance.Cmp(amount) >= 0 {
		return nil
	}

	pending, err := s.token.Approve(ctx, s.sellSpender, amount)
	if err != nil {
		return err
	}
	if _, err := s.gw.Await(ctx, pending); err != nil {
		return err
	}
	return nil
}

func (s *Session) setState(next State) {
	s.mu.Lock()
	s.state = next
	s.mu.Unlock()
}

// invalidate moves a non-idle session to Errored after a wallet context
// change. Idle sessions just lose their quote.
func (s *Session) invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quote = nil
	if s.state != StateIdle {
		s.state = StateErrored
		s.lastErr = domain.ErrContextChanged
	}
}
