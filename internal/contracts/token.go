package contracts

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/patentdex/patentdex/internal/domain"
	"github.com/patentdex/patentdex/internal/gateway"
	"github.com/patentdex/patentdex/internal/logger"
)

// PriceVariant records which calculatePrice signature a token contract
// answers to. Probed once per binding and remembered.
type PriceVariant int

const (
	PriceVariantUnknown PriceVariant = iota
	// PriceVariantDirectional is calculatePrice(uint256,bool)
	PriceVariantDirectional
	// PriceVariantLegacy is calculatePrice(uint256)
	PriceVariantLegacy
)

// TokenContract is the typed proxy for a single patent token.
//
//go:generate mockgen -source=token.go -destination=../mocks/token.go -package=mocks -mock_names=TokenContract=MockTokenContract
type TokenContract interface {
	// Address returns the bound token address
	Address() common.Address

	// CalculatePrice returns the cost (buy) or proceeds (sell) for trading
	// the given amount at current contract state
	CalculatePrice(ctx context.Context, amount *big.Int, direction domain.TradeDirection) (*big.Int, error)

	// BuyTokens submits a purchase carrying value as payment
	BuyTokens(ctx context.Context, amount, value *big.Int) (gateway.PendingTx, error)

	// SellTokens submits a sale
	SellTokens(ctx context.Context, amount *big.Int) (gateway.PendingTx, error)

	// GetTokenMetrics reads the market snapshot
	GetTokenMetrics(ctx context.Context) (*domain.TokenMetrics, error)

	// GetTradeHistory reads up to limit trade entries
	GetTradeHistory(ctx context.Context, limit uint64) ([]domain.TradeRecord, error)

	// BalanceOf returns the token balance of an account
	BalanceOf(ctx context.Context, account common.Address) (*big.Int, error)

	// Approve grants spender an allowance
	Approve(ctx context.Context, spender common.Address, amount *big.Int) (gateway.PendingTx, error)

	// Allowance returns the remaining allowance from owner to spender
	Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error)

	// Variant reports the probed calculatePrice signature
	Variant() PriceVariant
}

type token struct {
	gw   gateway.Gateway
	addr common.Address

	mu      sync.Mutex
	variant PriceVariant
}

// BindToken binds a token proxy to its address after checking that code is
// deployed there. The zero address and codeless addresses both mean the
// patent has no token.
func BindToken(ctx context.Context, gw gateway.Gateway, addr common.Address) (TokenContract, error) {
	if addr == (common.Address{}) {
		return nil, fmt.Errorf("%w: zero token address", domain.ErrTokenNotFound)
	}

	hasCode, err := gw.HasCode(ctx, addr)
	if err != nil {
		return nil, err
	}
	if !hasCode {
		return nil, fmt.Errorf("%w: no contract at %s", domain.ErrTokenNotFound, addr.Hex())
	}

	return &token{gw: gw, addr: addr}, nil
}

func (t *token) Address() common.Address {
	return t.addr
}

func (t *token) Variant() PriceVariant {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.variant
}

// CalculatePrice probes the directional signature on first use and falls
// back to the legacy one when the contract rejects it. The outcome is
// recorded so later quotes skip the probe.
func (t *token) CalculatePrice(ctx context.Context, amount *big.Int, direction domain.TradeDirection) (*big.Int, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrQuoteUnavailable)
	}

	t.mu.Lock()
	variant := t.variant
	t.mu.Unlock()

	if variant != PriceVariantLegacy {
		price, err := t.callDirectionalPrice(ctx, amount, direction)
		if err == nil {
			t.recordVariant(PriceVariantDirectional)
			return price, nil
		}
		if variant == PriceVariantDirectional || !errors.Is(err, domain.ErrTransactionReverted) {
			return nil, err
		}
		// Rejected selector, the contract predates directional pricing
		t.recordVariant(PriceVariantLegacy)
		logger.Debug("token uses legacy price signature", zap.String("token", t.addr.Hex()))
	}

	return t.callLegacyPrice(ctx, amount)
}

func (t *token) recordVariant(v PriceVariant) {
	t.mu.Lock()
	t.variant = v
	t.mu.Unlock()
}

func (t *token) callDirectionalPrice(ctx context.Context, amount *big.Int, direction domain.TradeDirection) (*big.Int, error) {
	data, err := tokenV2ABI.Pack("calculatePrice", amount, direction == domain.DirectionBuy)
	if err != nil {
		return nil, fmt.Errorf("failed to pack calculatePrice: %w", err)
	}

	result, err := t.gw.Call(ctx, t.addr, data)
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		// Unknown selectors commonly return empty data instead of
		// reverting on chains without revert reasons.
		return nil, fmt.Errorf("%w: empty calculatePrice result", domain.ErrTransactionReverted)
	}

	var price *big.Int
	if err := tokenV2ABI.UnpackIntoInterface(&price, "calculatePrice", result); err != nil {
		return nil, fmt.Errorf("failed to unpack calculatePrice: %w", err)
	}
	return price, nil
}

func (t *token) callLegacyPrice(ctx context.Context, amount *big.Int) (*big.Int, error) {
	data, err := tokenABI.Pack("calculatePrice", amount)
	if err != nil {
		return nil, fmt.Errorf("failed to pack calculatePrice: %w", err)
	}

	result, err := t.gw.Call(ctx, t.addr, data)
	if err != nil {
		return nil, err
	}

	var price *big.Int
	if err := tokenABI.UnpackIntoInterface(&price, "calculatePrice", result); err != nil {
		return nil, fmt.Errorf("failed to unpack calculatePrice: %w", err)
	}
	return price, nil
}

func (t *token) BuyTokens(ctx context.Context, amount, value *big.Int) (gateway.PendingTx, error) {
	data, err := tokenABI.Pack("buyTokens", amount)
	if err != nil {
		return gateway.PendingTx{}, fmt.Errorf("failed to pack buyTokens: %w", err)
	}
	return t.gw.Send(ctx, t.addr, data, value, domain.GasLimitTrade)
}

func (t *token) SellTokens(ctx context.Context, amount *big.Int) (gateway.PendingTx, error) {
	data, err := tokenABI.Pack("sellTokens", amount)
	if err != nil {
		return gateway.PendingTx{}, fmt.Errorf("failed to pack sellTokens: %w", err)
	}
	return t.gw.Send(ctx, t.addr, data, nil, domain.GasLimitTrade)
}

func (t *token) GetTokenMetrics(ctx context.Context) (*domain.TokenMetrics, error) {
	data, err := tokenABI.Pack("getTokenMetrics")
	if err != nil {
		return nil, fmt.Errorf("failed to pack getTokenMetrics: %w", err)
	}

	result, err := t.gw.Call(ctx, t.addr, data)
	if err != nil {
		return nil, err
	}

	var out struct {
		CurrentPrice  *big.Int
		BasePrice     *big.Int
		LiquidityPool *big.Int
		Volume24h     *big.Int
		Holders       *big.Int
		IsTrading     bool
	}
	if err := tokenABI.UnpackIntoInterface(&out, "getTokenMetrics", result); err != nil {
		return nil, fmt.Errorf("failed to unpack getTokenMetrics: %w", err)
	}

	return &domain.TokenMetrics{
		CurrentPrice:  out.CurrentPrice,
		BasePrice:     out.BasePrice,
		LiquidityPool: out.LiquidityPool,
		Volume24h:     out.Volume24h,
		HoldersCount:  out.Holders.Uint64(),
		IsTrading:     out.IsTrading,
	}, nil
}

func (t *token) GetTradeHistory(ctx context.Context, limit uint64) ([]domain.TradeRecord, error) {
	data, err := tokenABI.Pack("getTradeHistory", new(big.Int).SetUint64(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to pack getTradeHistory: %w", err)
	}

	result, err := t.gw.Call(ctx, t.addr, data)
	if err != nil {
		return nil, err
	}

	var raw []struct {
		Timestamp *big.Int
		Price     *big.Int
		Volume    *big.Int
	}
	if err := tokenABI.UnpackIntoInterface(&raw, "getTradeHistory", result); err != nil {
		return nil, fmt.Errorf("failed to unpack getTradeHistory: %w", err)
	}

	trades := make([]domain.TradeRecord, 0, len(raw))
	for _, entry := range raw {
		trades = append(trades, domain.TradeRecord{
			Timestamp: time.Unix(entry.Timestamp.Int64(), 0).UTC(),
			Price:     entry.Price,
			Volume:    entry.Volume,
		})
	}
	return trades, nil
}

func (t *token) BalanceOf(ctx context.Context, account common.Address) (*big.Int, error) {
	data, err := tokenABI.Pack("balanceOf", account)
	if err != nil {
		return nil, fmt.Errorf("failed to pack balanceOf: %w", err)
	}

	result, err := t.gw.Call(ctx, t.addr, data)
	if err != nil {
		return nil, err
	}

	var balance *big.Int
	if err := tokenABI.UnpackIntoInterface(&balance, "balanceOf", result); err != nil {
		return nil, fmt.Errorf("failed to unpack balanceOf: %w", err)
	}
	return balance, nil
}

func (t *token) Approve(ctx context.Context, spender common.Address, amount *big.Int) (gateway.PendingTx, error) {
	data, err := tokenABI.Pack("approve", spender, amount)
	if err != nil {
		return gateway.PendingTx{}, fmt.Errorf("failed to pack approve: %w", err)
	}
	return t.gw.Send(ctx, t.addr, data, nil, domain.GasLimitTrade)
}

func (t *token) Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error) {
	data, err := tokenABI.Pack("allowance", owner, spender)
	if err != nil {
		return nil, fmt.Errorf("failed to pack allowance: %w", err)
	}

	result, err := t.gw.Call(ctx, t.addr, data)
	if err != nil {
		return nil, err
	}

	var allowance *big.Int
	if err := tokenABI.UnpackIntoInterface(&allowance, "allowance", result); err != nil {
		return nil, fmt.Errorf("failed to unpack allowance: %w", err)
	}
	return allowance, nil
}
