package gateway

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/patentdex/patentdex/internal/adapter"
	"github.com/patentdex/patentdex/internal/domain"
	"github.com/patentdex/patentdex/internal/logger"
)

const (
	// receiptPollInterval is how often a pending transaction is checked
	// for a receipt.
	receiptPollInterval = 2 * time.Second
	// receiptWaitBound caps how long Await blocks before giving up. The
	// transaction may still confirm afterwards; callers must treat the
	// timeout as unknown outcome, not failure.
	receiptWaitBound = 60 * time.Second
)

// ContextChange notifies subscribers that the wallet account or chain
// changed. Every in-flight operation started under an earlier epoch is
// invalid once this fires.
type ContextChange struct {
	Epoch   uint64
	Account common.Address
	ChainID *big.Int
}

// PendingTx is a broadcast transaction bound to the wallet epoch it was
// sent under.
type PendingTx struct {
	Hash  common.Hash
	Epoch uint64
}

// Gateway is the single choke point between the application and the chain.
// All contract reads, writes and receipt waits go through it so that wallet
// context changes invalidate everything at once.
//
//go:generate mockgen -source=gateway.go -destination=../mocks/gateway.go -package=mocks -mock_names=Gateway=MockGateway
type Gateway interface {
	// Connect establishes the node connection and resolves the initial
	// account and chain.
	Connect(ctx context.Context) error

	// Account returns the active wallet account
	Account() common.Address

	// ChainID returns the connected chain id
	ChainID() *big.Int

	// Epoch returns the current wallet context epoch
	Epoch() uint64

	// Call executes a read-only contract call
	Call(ctx context.Context, to common.Address, data []byte) ([]byte, error)

	// Send signs and broadcasts a state-changing transaction
	Send(ctx context.Context, to common.Address, data []byte, value *big.Int, gasLimit uint64) (PendingTx, error)

	// Await blocks until the transaction is mined, the wait bound
	// elapses, or the wallet context changes.
	Await(ctx context.Context, pending PendingTx) (*types.Receipt, error)

	// HasCode reports whether the address holds deployed bytecode
	HasCode(ctx context.Context, addr common.Address) (bool, error)

	// Subscribe returns a channel of wallet context changes
	Subscribe() <-chan ContextChange

	// Close tears down the node connection and wallet watcher
	Close()
}

type chainGateway struct {
	dialer adapter.EthClientDialer
	wallet adapter.Wallet
	clock  adapter.Clock
	rpcURL string

	mu          sync.RWMutex
	eth         adapter.EthClient
	account     common.Address
	chainID     *big.Int
	epoch       uint64
	subscribers []chan ContextChange
	closed      bool

	watchOnce sync.Once
	done      chan struct{}
}

// New creates a gateway over the given RPC endpoint and wallet.
func New(dialer adapter.EthClientDialer, wallet adapter.Wallet, clock adapter.Clock, rpcURL string) Gateway {
	return &chainGateway{
		dialer: dialer,
		wallet: wallet,
		clock:  clock,
		rpcURL: rpcURL,
		done:   make(chan struct{}),
	}
}

func (g *chainGateway) Connect(ctx context.Context) error {
	eth, err := g.dialer.Dial(ctx, g.rpcURL)
	if err != nil {
		return domain.ClassifyRPCError(fmt.Errorf("%w: dial %s: %v", domain.ErrProviderUnavailable, g.rpcURL, err))
	}

	chainID, err := eth.ChainID(ctx)
	if err != nil {
		eth.Close()
		return domain.ClassifyRPCError(err)
	}

	accounts, err := g.wallet.RequestAccounts(ctx)
	if err != nil {
		eth.Close()
		return domain.ClassifyRPCError(err)
	}

	g.mu.Lock()
	g.eth = eth
	g.chainID = chainID
	g.account = accounts[0]
	g.mu.Unlock()

	g.watchOnce.Do(func() {
		go g.watchWallet()
	})

	logger.Info("gateway connected",
		zap.String("account", accounts[0].Hex()),
		zap.String("chain_id", chainID.String()))
	return nil
}

// watchWallet forwards wallet events into epoch bumps and subscriber
// notifications.
func (g *chainGateway) watchWallet() {
	for {
		select {
		case <-g.done:
			return
		case ev, ok := <-g.wallet.Events():
			if !ok {
				return
			}
			g.applyWalletEvent(ev)
		}
	}
}

func (g *chainGateway) applyWalletEvent(ev adapter.WalletEvent) {
	g.mu.Lock()
	g.epoch++
	switch ev.Type {
	case adapter.WalletEventAccountsChanged:
		g.account = ev.Account
	case adapter.WalletEventChainChanged:
		g.chainID = ev.ChainID
	}
	change := ContextChange{Epoch: g.epoch, Account: g.account, ChainID: g.chainID}

	// The sends never block, so fanning out under the lock is safe and
	// keeps Close from closing a channel mid-send.
	if !g.closed {
		for _, sub := range g.subscribers {
			select {
			case sub <- change:
			default:
				// Slow subscribers miss intermediate changes. They still
				// observe the epoch counter on their next operation.
			}
		}
	}
	g.mu.Unlock()

	logger.Warn("wallet context changed",
		zap.String("event", string(ev.Type)),
		zap.Uint64("epoch", change.Epoch),
		zap.String("account", change.Account.Hex()))
}

func (g *chainGateway) Account() common.Address {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.account
}

func (g *chainGateway) ChainID() *big.Int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.chainID
}

func (g *chainGateway) Epoch() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.epoch
}

func (g *chainGateway) client() (adapter.EthClient, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.eth == nil {
		return nil, domain.ErrProviderUnavailable
	}
	return g.eth, nil
}

func (g *chainGateway) Call(ctx context.Context, to common.Address, data []byte) ([]byte, error) {
	eth, err := g.client()
	if err != nil {
		return nil, err
	}

	out, err := eth.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, nil)
	if err != nil {
		return nil, domain.ClassifyRPCError(err)
	}
	return out, nil
}

func (g *chainGateway) HasCode(ctx context.Context, addr common.Address) (bool, error) {
	eth, err := g.client()
	if err != nil {
		return false, err
	}

	code, err := eth.CodeAt(ctx, addr, nil)
	if err != nil {
		return false, domain.ClassifyRPCError(err)
	}
	return len(code) > 0, nil
}

func (g *chainGateway) Send(ctx context.Context, to common.Address, data []byte, value *big.Int, gasLimit uint64) (PendingTx, error) {
	eth, err := g.client()
	if err != nil {
		return PendingTx{}, err
	}

	g.mu.RLock()
	account := g.account
	chainID := g.chainID
	epoch := g.epoch
	g.mu.RUnlock()

	nonce, err := eth.PendingNonceAt(ctx, account)
	if err != nil {
		return PendingTx{}, domain.ClassifyRPCError(err)
	}

	gasPrice, err := eth.SuggestGasPrice(ctx)
	if err != nil {
		return PendingTx{}, domain.ClassifyRPCError(err)
	}

	if value == nil {
		value = new(big.Int)
	}
	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Value:    value,
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     data,
	})

	signed, err := g.wallet.SignTx(account, tx, chainID)
	if err != nil {
		return PendingTx{}, domain.ClassifyRPCError(err)
	}

	if err := eth.SendTransaction(ctx, signed); err != nil {
		return PendingTx{}, domain.ClassifyRPCError(err)
	}

	logger.Debug("transaction broadcast",
		zap.String("hash", signed.Hash().Hex()),
		zap.String("to", to.Hex()),
		zap.Uint64("epoch", epoch))
	return PendingTx{Hash: signed.Hash(), Epoch: epoch}, nil
}

func (g *chainGateway) Await(ctx context.Context, pending PendingTx) (*types.Receipt, error) {
	eth, err := g.client()
	if err != nil {
		return nil, err
	}

	deadline := g.clock.Now().Add(receiptWaitBound)
	for {
		if g.Epoch() != pending.Epoch {
			return nil, domain.ErrContextChanged
		}

		receipt, err := eth.TransactionReceipt(ctx, pending.Hash)
		if err == nil && receipt != nil {
			if receipt.Status == types.ReceiptStatusFailed {
				return receipt, domain.ErrTransactionReverted
			}
			return receipt, nil
		}

		if !g.clock.Now().Before(deadline) {
			return nil, fmt.Errorf("%w: no receipt for %s after %s",
				domain.ErrConfirmationTimeout, pending.Hash.Hex(), receiptWaitBound)
		}

		select {
		case <-ctx.Done():
			return nil, domain.ClassifyRPCError(ctx.Err())
		case <-g.clock.After(receiptPollInterval):
		}
	}
}

func (g *chainGateway) Subscribe() <-chan ContextChange {
	ch := make(chan ContextChange, 4)
	g.mu.Lock()
	g.subscribers = append(g.subscribers, ch)
	g.mu.Unlock()
	return ch
}

func (g *chainGateway) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return
	}
	g.closed = true
	close(g.done)
	if g.eth != nil {
		g.eth.Close()
	}
	for _, sub := range g.subscribers {
		close(sub)
	}
	g.subscribers = nil
}
