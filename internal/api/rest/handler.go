package rest

import (
	"math/big"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"

	"github.com/patentdex/patentdex/internal/contracts"
	"github.com/patentdex/patentdex/internal/domain"
	"github.com/patentdex/patentdex/internal/gateway"
	"github.com/patentdex/patentdex/internal/patents"
	"github.com/patentdex/patentdex/internal/reconcile"
	"github.com/patentdex/patentdex/internal/storage"
	"github.com/patentdex/patentdex/internal/trade"
)

// maxDocumentSize bounds uploaded patent documents.
const maxDocumentSize = 32 << 20 // 32 MiB

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// ListPatents retrieves all registered patents
	// GET /api/v1/patents
	ListPatents(c *gin.Context)

	// GetPatent retrieves a single patent
	// GET /api/v1/patents/:id
	GetPatent(c *gin.Context)

	// GetPatentMetadata fetches the pinned metadata document for a patent
	// GET /api/v1/patents/:id/metadata
	GetPatentMetadata(c *gin.Context)

	// RegisterPatent registers a patent from a multipart form with a
	// document file
	// POST /api/v1/patents
	RegisterPatent(c *gin.Context)

	// VerifyPatent marks a patent as verified
	// POST /api/v1/patents/:id/verify
	VerifyPatent(c *gin.Context)

	// TokenizePatent deploys a token for a patent
	// POST /api/v1/patents/:id/tokenize
	TokenizePatent(c *gin.Context)

	// GetStakePosition reads the caller's stake against a patent
	// GET /api/v1/patents/:id/position
	GetStakePosition(c *gin.Context)

	// Stake locks tokens against a patent
	// POST /api/v1/stakes
	Stake(c *gin.Context)

	// Unstake releases a stake position
	// DELETE /api/v1/stakes/:nft_token_id
	Unstake(c *gin.Context)

	// GetTokenMetrics reads the market snapshot for a token
	// GET /api/v1/tokens/:address/metrics
	GetTokenMetrics(c *gin.Context)

	// GetTokenCandles reads the OHLC chart for a token
	// GET /api/v1/tokens/:address/candles?window=chart|compact
	GetTokenCandles(c *gin.Context)

	// GetTradeHistory reads raw trade entries for a token
	// GET /api/v1/tokens/:address/trades
	GetTradeHistory(c *gin.Context)

	// QuoteTrade computes a quote for a trade on a token
	// POST /api/v1/tokens/:address/quote
	QuoteTrade(c *gin.Context)

	// SubmitTrade executes the quoted trade on a token
	// POST /api/v1/tokens/:address/trade
	SubmitTrade(c *gin.Context)

	// GetSession reports the trade session state for a token
	// GET /api/v1/tokens/:address/session
	GetSession(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	gw       gateway.Gateway
	patents  patents.Service
	sessions *trade.Manager
	rec      reconcile.Reconciler
	store    storage.Store
}

// NewHandler creates a new REST API handler
func NewHandler(gw gateway.Gateway, patentSvc patents.Service, sessions *trade.Manager, rec reconcile.Reconciler, store storage.Store) Handler {
	return &handler{
		gw:       gw,
		patents:  patentSvc,
		sessions: sessions,
		rec:      rec,
		store:    store,
	}
}

func (h *handler) ListPatents(c *gin.Context) {
	records, err := h.patents.List(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	out := make([]patentResponse, 0, len(records))
	for i := range records {
		out = append(out, toPatentResponse(&records[i], h.store.GatewayURL(records[i].ContentHash)))
	}
	c.JSON(http.StatusOK, gin.H{"patents": out})
}

func (h *handler) GetPatent(c *gin.Context) {
	patentID, ok := parsePatentID(c)
	if !ok {
		return
	}

	record, err := h.patents.Get(c.Request.Context(), patentID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPatentResponse(record, h.store.GatewayURL(record.ContentHash)))
}

func (h *handler) GetPatentMetadata(c *gin.Context) {
	patentID, ok := parsePatentID(c)
	if !ok {
		return
	}

	meta, err := h.patents.Metadata(c.Request.Context(), patentID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, metadataResponse{
		Title:       meta.Title,
		Description: meta.Description,
		ExternalID:  meta.ExternalID,
		DocumentCID: meta.DocumentCID,
		DocumentURL: h.store.GatewayURL(meta.DocumentCID),
	})
}

func (h *handler) RegisterPatent(c *gin.Context) {
	title := c.PostForm("title")
	if title == "" {
		respondValidationError(c, "title is required")
		return
	}

	fileHeader, err := c.FormFile("document")
	if err != nil {
		respondValidationError(c, "document file is required")
		return
	}
	if fileHeader.Size > maxDocumentSize {
		respondValidationError(c, "document exceeds size limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondInternalError(c, err, "Failed to read document")
		return
	}
	defer func() { _ = file.Close() }()

	record, err := h.patents.Register(c.Request.Context(), patents.RegisterInput{
		Title:        title,
		ExternalID:   c.PostForm("external_id"),
		Description:  c.PostForm("description"),
		DocumentName: fileHeader.Filename,
		Document:     file,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toPatentResponse(record, h.store.GatewayURL(record.ContentHash)))
}

func (h *handler) VerifyPatent(c *gin.Context) {
	patentID, ok := parsePatentID(c)
	if !ok {
		return
	}

	if err := h.patents.Verify(c.Request.Context(), patentID); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"verified": true})
}

func (h *handler) TokenizePatent(c *gin.Context) {
	patentID, ok := parsePatentID(c)
	if !ok {
		return
	}

	var req tokenizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	fee := new(big.Int)
	if req.Fee != "" {
		parsed, err := domain.ParseEther(req.Fee)
		if err != nil {
			respondValidationError(c, "invalid fee")
			return
		}
		fee = parsed
	}

	tokenAddr, err := h.patents.Tokenize(c.Request.Context(), patentID, req.Name, req.Symbol, fee)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token_address": tokenAddr.Hex()})
}

func (h *handler) GetStakePosition(c *gin.Context) {
	patentID, ok := parsePatentID(c)
	if !ok {
		return
	}

	position, err := h.patents.Position(c.Request.Context(), patentID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if position == nil {
		c.JSON(http.StatusOK, stakePositionResponse{PatentID: patentID, Staked: false})
		return
	}
	c.JSON(http.StatusOK, stakePositionResponse{
		PatentID:     position.PatentID,
		NFTTokenID:   position.NFTTokenID,
		StakedAmount: domain.FormatEther(position.StakedAmount),
		Staked:       true,
	})
}

func (h *handler) Stake(c *gin.Context) {
	var req stakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	amount, ok := parseAmount(req.Amount)
	if !ok {
		respondValidationError(c, "amount must be a positive integer")
		return
	}

	position, err := h.patents.Stake(c.Request.Context(), req.PatentID, amount, req.UseCase, req.MetadataURI)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, stakePositionResponse{
		PatentID:     position.PatentID,
		NFTTokenID:   position.NFTTokenID,
		StakedAmount: domain.FormatEther(position.StakedAmount),
		Staked:       true,
	})
}

func (h *handler) Unstake(c *gin.Context) {
	nftTokenID, err := strconv.ParseUint(c.Param("nft_token_id"), 10, 64)
	if err != nil {
		respondValidationError(c, "nft_token_id must be a number")
		return
	}

	if err := h.patents.Unstake(c.Request.Context(), nftTokenID); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unstaked": true})
}

func (h *handler) GetTokenMetrics(c *gin.Context) {
	token, ok := h.bindToken(c)
	if !ok {
		return
	}

	metrics, err := token.GetTokenMetrics(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMetricsResponse(metrics))
}

func (h *handler) GetTokenCandles(c *gin.Context) {
	token, ok := h.bindToken(c)
	if !ok {
		return
	}

	snapshot, err := h.rec.Refresh(c.Request.Context(), token, h.gw.Account())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	candles := snapshot.Candles
	if c.DefaultQuery("window", "chart") == "compact" {
		candles = snapshot.Compact
	}
	c.JSON(http.StatusOK, gin.H{"candles": toCandleResponses(candles)})
}

func (h *handler) GetTradeHistory(c *gin.Context) {
	token, ok := h.bindToken(c)
	if !ok {
		return
	}

	trades, err := token.GetTradeHistory(c.Request.Context(), domain.ChartWindow)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	out := make([]tradeRecordResponse, 0, len(trades))
	for _, t := range trades {
		out = append(out, tradeRecordResponse{
			Timestamp: t.Timestamp,
			Price:     domain.FormatEther(t.Price),
			Volume:    t.Volume.String(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"trades": out})
}

func (h *handler) QuoteTrade(c *gin.Context) {
	tokenAddr, ok := parseTokenAddress(c)
	if !ok {
		return
	}

	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	amount, ok := parseAmount(req.Amount)
	if !ok {
		respondValidationError(c, "amount must be a positive integer")
		return
	}
	direction := domain.TradeDirection(req.Direction)
	if !direction.Valid() {
		respondValidationError(c, "direction must be buy or sell")
		return
	}

	session, err := h.sessions.Open(c.Request.Context(), tokenAddr)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	q, err := session.RequestQuote(c.Request.Context(), amount, direction)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toQuoteResponse(q))
}

func (h *handler) SubmitTrade(c *gin.Context) {
	tokenAddr, ok := parseTokenAddress(c)
	if !ok {
		return
	}

	var req tradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	amount, ok := parseAmount(req.Amount)
	if !ok {
		respondValidationError(c, "amount must be a positive integer")
		return
	}
	direction := domain.TradeDirection(req.Direction)
	if !direction.Valid() {
		respondValidationError(c, "direction must be buy or sell")
		return
	}

	session, err := h.sessions.Open(c.Request.Context(), tokenAddr)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	result, err := session.Submit(c.Request.Context(), amount, direction)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTradeResponse(result))
}

func (h *handler) GetSession(c *gin.Context) {
	tokenAddr, ok := parseTokenAddress(c)
	if !ok {
		return
	}

	session := h.sessions.Get(tokenAddr)
	if session == nil {
		respondNotFound(c, "No session for token")
		return
	}

	resp := sessionResponse{
		ID:           session.ID,
		TokenAddress: session.TokenAddress().Hex(),
		State:        string(session.State()),
	}
	if err := session.Err(); err != nil {
		resp.ErrorCode = domain.ErrorCode(err)
	}
	if q := session.Quote(); q != nil {
		quote := toQuoteResponse(q)
		resp.Quote = &quote
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"account":  h.gw.Account().Hex(),
		"chain_id": h.gw.ChainID().String(),
		"epoch":    h.gw.Epoch(),
	})
}

func (h *handler) bindToken(c *gin.Context) (contracts.TokenContract, bool) {
	tokenAddr, ok := parseTokenAddress(c)
	if !ok {
		return nil, false
	}

	token, err := contracts.BindToken(c.Request.Context(), h.gw, tokenAddr)
	if err != nil {
		respondDomainError(c, err)
		return nil, false
	}
	return token, true
}

func parsePatentID(c *gin.Context) (uint64, bool) {
	patentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || patentID == 0 {
		respondValidationError(c, "patent id must be a positive number")
		return 0, false
	}
	return patentID, true
}

func parseTokenAddress(c *gin.Context) (common.Address, bool) {
	raw := c.Param("address")
	if !common.IsHexAddress(raw) {
		respondValidationError(c, "invalid token address")
		return common.Address{}, false
	}
	return common.HexToAddress(raw), true
}
