package rest

import (
	"math/big"
	"time"

	"github.com/patentdex/patentdex/internal/domain"
	"github.com/patentdex/patentdex/internal/reconcile"
	"github.com/patentdex/patentdex/internal/trade"
)

// patentResponse is the REST shape of a registry entry. Wei amounts cross
// the boundary as decimal ether strings.
type patentResponse struct {
	ID           uint64    `json:"id"`
	Title        string    `json:"title"`
	ContentHash  string    `json:"content_hash"`
	ContentURL   string    `json:"content_url,omitempty"`
	PriceHint    string    `json:"price_hint"`
	ForSale      bool      `json:"for_sale"`
	Inventor     string    `json:"inventor"`
	CreatedAt    time.Time `json:"created_at"`
	ExternalID   string    `json:"external_id"`
	Verified     bool      `json:"verified"`
	TokenAddress string    `json:"token_address,omitempty"`
	Tokenized    bool      `json:"tokenized"`
}

func toPatentResponse(p *domain.PatentRecord, contentURL string) patentResponse {
	resp := patentResponse{
		ID:          p.ID,
		Title:       p.Title,
		ContentHash: p.ContentHash,
		ContentURL:  contentURL,
		PriceHint:   domain.FormatEther(p.PriceHint),
		ForSale:     p.ForSale,
		Inventor:    p.Inventor,
		CreatedAt:   p.CreatedAt,
		ExternalID:  p.ExternalID,
		Verified:    p.Verified,
		Tokenized:   p.Tokenized(),
	}
	if p.Tokenized() {
		resp.TokenAddress = p.TokenAddress
	}
	return resp
}

type metadataResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ExternalID  string `json:"external_id"`
	DocumentCID string `json:"document_cid"`
	DocumentURL string `json:"document_url,omitempty"`
}

type metricsResponse struct {
	CurrentPrice  string `json:"current_price"`
	BasePrice     string `json:"base_price"`
	LiquidityPool string `json:"liquidity_pool"`
	Volume24h     string `json:"volume_24h"`
	HoldersCount  uint64 `json:"holders_count"`
	IsTrading     bool   `json:"is_trading"`
}

func toMetricsResponse(m *domain.TokenMetrics) metricsResponse {
	return metricsResponse{
		CurrentPrice:  domain.FormatEther(m.CurrentPrice),
		BasePrice:     domain.FormatEther(m.BasePrice),
		LiquidityPool: domain.FormatEther(m.LiquidityPool),
		Volume24h:     domain.FormatEther(m.Volume24h),
		HoldersCount:  m.HoldersCount,
		IsTrading:     m.IsTrading,
	}
}

type candleResponse struct {
	Time   int64  `json:"time"`
	Open   string `json:"open"`
	High   string `json:"high"`
	Low    string `json:"low"`
	Close  string `json:"close"`
	Volume string `json:"volume"`
}

func toCandleResponses(candles []domain.Candle) []candleResponse {
	out := make([]candleResponse, 0, len(candles))
	for _, c := range candles {
		out = append(out, candleResponse{
			Time:   c.Time,
			Open:   domain.FormatEther(c.Open),
			High:   domain.FormatEther(c.High),
			Low:    domain.FormatEther(c.Low),
			Close:  domain.FormatEther(c.Close),
			Volume: c.Volume.String(),
		})
	}
	return out
}

type tradeRecordResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Price     string    `json:"price"`
	Volume    string    `json:"volume"`
}

type quoteRequest struct {
	Amount    string `json:"amount" binding:"required"`
	Direction string `json:"direction" binding:"required"`
}

type quoteResponse struct {
	TokenAddress string    `json:"token_address"`
	Amount       string    `json:"amount"`
	Cost         string    `json:"cost"`
	Direction    string    `json:"direction"`
	FetchedAt    time.Time `json:"fetched_at"`
}

func toQuoteResponse(q *domain.TradeQuote) quoteResponse {
	return quoteResponse{
		TokenAddress: q.TokenAddress,
		Amount:       domain.FormatEther(q.Amount),
		Cost:         domain.FormatEther(q.Cost),
		Direction:    string(q.Direction),
		FetchedAt:    q.FetchedAt,
	}
}

type tradeRequest struct {
	Amount    string `json:"amount" binding:"required"`
	Direction string `json:"direction" binding:"required"`
}

type tradeResponse struct {
	TxHash    string             `json:"tx_hash"`
	Direction string             `json:"direction"`
	Amount    string             `json:"amount"`
	Cost      string             `json:"cost"`
	Snapshot  *snapshotResponse  `json:"snapshot,omitempty"`
}

type snapshotResponse struct {
	Metrics  metricsResponse  `json:"metrics"`
	Balance  string           `json:"balance"`
	IsHolder bool             `json:"is_holder"`
	Candles  []candleResponse `json:"candles"`
	Compact  []candleResponse `json:"compact"`
}

func toSnapshotResponse(s *reconcile.Snapshot) *snapshotResponse {
	if s == nil {
		return nil
	}
	return &snapshotResponse{
		Metrics:  toMetricsResponse(s.Metrics),
		Balance:  domain.FormatEther(s.Balance),
		IsHolder: s.IsHolder,
		Candles:  toCandleResponses(s.Candles),
		Compact:  toCandleResponses(s.Compact),
	}
}

func toTradeResponse(r *trade.Result) tradeResponse {
	return tradeResponse{
		TxHash:    r.TxHash,
		Direction: string(r.Direction),
		Amount:    domain.FormatEther(r.Amount),
		Cost:      domain.FormatEther(r.Cost),
		Snapshot:  toSnapshotResponse(r.Snapshot),
	}
}

type sessionResponse struct {
	ID           string         `json:"id"`
	TokenAddress string         `json:"token_address"`
	State        string         `json:"state"`
	ErrorCode    string         `json:"error_code,omitempty"`
	Quote        *quoteResponse `json:"quote,omitempty"`
}

type tokenizeRequest struct {
	Name   string `json:"name" binding:"required"`
	Symbol string `json:"symbol" binding:"required"`
	Fee    string `json:"fee"`
}

type stakeRequest struct {
	PatentID    uint64 `json:"patent_id" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	UseCase     string `json:"use_case"`
	MetadataURI string `json:"metadata_uri"`
}

type stakePositionResponse struct {
	PatentID     uint64 `json:"patent_id"`
	NFTTokenID   uint64 `json:"nft_token_id"`
	StakedAmount string `json:"staked_amount"`
	Staked       bool   `json:"staked"`
}

// parseAmount converts a decimal token amount such as "1.5" into base
// units. Tokens carry 18 decimals, the same scale as ether.
func parseAmount(s string) (*big.Int, bool) {
	amount, err := domain.ParseEther(s)
	if err != nil || amount.Sign() <= 0 {
		return nil, false
	}
	return amount, true
}
