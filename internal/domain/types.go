package domain

import (
	"math/big"
	"time"
)

// Chain represents the blockchain network identifier using CAIP-2 format
type Chain string

const (
	ChainEthereumMainnet Chain = "eip155:1"
	ChainEthereumSepolia Chain = "eip155:11155111"
	ChainHardhatLocal    Chain = "eip155:31337"
)

// TradeDirection is the side of a trade against the token's liquidity pool.
type TradeDirection string

const (
	DirectionBuy  TradeDirection = "buy"
	DirectionSell TradeDirection = "sell"
)

// Valid reports whether the direction is one of the two known sides.
func (d TradeDirection) Valid() bool {
	return d == DirectionBuy || d == DirectionSell
}

// PatentRecord is the on-chain registry entry for a patent. It is created by
// registration and mutated only by the registry contract (verification, sale
// flag); this core treats it as read-only.
type PatentRecord struct {
	ID           uint64    `json:"id"`
	Title        string    `json:"title"`
	ContentHash  string    `json:"content_hash"` // storage-layer identifier (IPFS CID)
	PriceHint    *big.Int  `json:"price_hint"`
	ForSale      bool      `json:"for_sale"`
	Inventor     string    `json:"inventor"`
	CreatedAt    time.Time `json:"created_at"`
	ExternalID   string    `json:"external_id"` // e.g. a national patent office identifier
	Verified     bool      `json:"verified"`
	TokenAddress string    `json:"token_address"` // zero address means not tokenized
}

// Tokenized reports whether a fungible token has been created for the patent.
func (p *PatentRecord) Tokenized() bool {
	return p.TokenAddress != "" && p.TokenAddress != ZeroAddress
}

// TokenMetrics is a point-in-time snapshot of a patent token's market state.
// Snapshots are superseded, never mutated, by the next fetch.
type TokenMetrics struct {
	CurrentPrice  *big.Int `json:"current_price"`
	BasePrice     *big.Int `json:"base_price"`
	LiquidityPool *big.Int `json:"liquidity_pool"`
	Volume24h     *big.Int `json:"volume_24h"`
	HoldersCount  uint64   `json:"holders_count"`
	IsTrading     bool     `json:"is_trading"`
}

// TradeQuote is a computed, time-bounded estimate of trade cost (buy) or
// proceeds (sell). It is valid only for the exact amount and direction it was
// computed for and must be recomputed after any state-changing call on the
// same token.
type TradeQuote struct {
	TokenAddress string         `json:"token_address"`
	Amount       *big.Int       `json:"amount"`
	Cost         *big.Int       `json:"cost"`
	Direction    TradeDirection `json:"direction"`
	FetchedAt    time.Time      `json:"fetched_at"`
}

// Matches reports whether the quote was computed for the given amount and
// direction. A quote never survives a change of either.
func (q *TradeQuote) Matches(amount *big.Int, direction TradeDirection) bool {
	if q == nil || q.Amount == nil || amount == nil {
		return false
	}
	return q.Direction == direction && q.Amount.Cmp(amount) == 0
}

// TradeRecord is a single entry of the token contract's trade history.
// Append-only from the contract's perspective.
type TradeRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Price     *big.Int  `json:"price"`
	Volume    *big.Int  `json:"volume"`
}

// Candle is a fixed-width OHLC bucket built from trade history entries.
// Prices and volume are wei amounts so repeated reconciliation of the same
// history stays exact.
type Candle struct {
	Time   int64    `json:"time"` // bucket start, unix seconds
	Open   *big.Int `json:"open"`
	High   *big.Int `json:"high"`
	Low    *big.Int `json:"low"`
	Close  *big.Int `json:"close"`
	Volume *big.Int `json:"volume"`
}

// StakePosition is the record of tokens locked against a patent in exchange
// for a usage-credential NFT. Absence of a position means not staked.
type StakePosition struct {
	PatentID     uint64   `json:"patent_id"`
	NFTTokenID   uint64   `json:"nft_token_id"`
	StakedAmount *big.Int `json:"staked_amount"`
}

// MarketEventType classifies normalized contract events.
type MarketEventType string

const (
	EventTypePatentRegistered MarketEventType = "patent_registered"
	EventTypeTokenCreated     MarketEventType = "token_created"
	EventTypeTokensPurchased  MarketEventType = "tokens_purchased"
	EventTypeTokensSold       MarketEventType = "tokens_sold"
	EventTypeStaked           MarketEventType = "staked"
	EventTypeUnstaked         MarketEventType = "unstaked"
)

// MarketEvent is a normalized contract event. This is the standard format
// published to NATS by the trade-event-emitter.
type MarketEvent struct {
	Chain           Chain           `json:"chain"`
	EventType       MarketEventType `json:"event_type"`
	ContractAddress string          `json:"contract_address"`
	Account         string          `json:"account,omitempty"` // buyer, seller, inventor or staker
	PatentID        uint64          `json:"patent_id,omitempty"`
	TokenAddress    string          `json:"token_address,omitempty"`
	Amount          string          `json:"amount,omitempty"` // wei, decimal string
	Price           string          `json:"price,omitempty"`  // wei, decimal string
	NFTTokenID      uint64          `json:"nft_token_id,omitempty"`
	TxHash          string          `json:"tx_hash"`
	BlockNumber     uint64          `json:"block_number"`
	Timestamp       time.Time       `json:"timestamp"`
}
