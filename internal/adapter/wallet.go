package adapter

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// WalletEventType identifies a change in the wallet environment.
type WalletEventType string

const (
	WalletEventAccountsChanged WalletEventType = "accounts_changed"
	WalletEventChainChanged    WalletEventType = "chain_changed"
)

// WalletEvent signals that the active account or chain changed underneath
// the application.
type WalletEvent struct {
	Type    WalletEventType
	Account common.Address
	ChainID *big.Int
}

// Wallet defines an interface for signer operations to enable mocking. A
// wallet may change its active account or chain at any time and announces
// those changes on Events.
//
//go:generate mockgen -source=wallet.go -destination=../mocks/wallet.go -package=mocks -mock_names=Wallet=MockWallet
type Wallet interface {
	// RequestAccounts returns the accounts the wallet exposes, asking for
	// access on first use.
	RequestAccounts(ctx context.Context) ([]common.Address, error)

	// SignTx signs a transaction with the given account
	SignTx(account common.Address, tx *types.Transaction, chainID *big.Int) (*types.Transaction, error)

	// Events delivers account and chain change notifications
	Events() <-chan WalletEvent

	// Close releases wallet resources
	Close()
}

// KeystoreWallet implements Wallet backed by a go-ethereum keystore
// directory. SwitchAccount is the server-side analogue of a wallet user
// changing the selected account.
type KeystoreWallet struct {
	ks       *keystore.KeyStore
	password string

	mu     sync.Mutex
	active common.Address
	events chan WalletEvent
	closed bool
}

// NewKeystoreWallet opens the keystore at dir with standard scrypt
// parameters.
func NewKeystoreWallet(dir, password string) *KeystoreWallet {
	return &KeystoreWallet{
		ks:       keystore.NewKeyStore(dir, keystore.StandardScryptN, keystore.StandardScryptP),
		password: password,
		events:   make(chan WalletEvent, 8),
	}
}

func (w *KeystoreWallet) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	accounts := w.ks.Accounts()
	if len(accounts) == 0 {
		return nil, fmt.Errorf("keystore holds no accounts")
	}

	out := make([]common.Address, len(accounts))
	for i, acc := range accounts {
		out[i] = acc.Address
	}

	w.mu.Lock()
	if w.active == (common.Address{}) {
		w.active = out[0]
	}
	w.mu.Unlock()

	return out, nil
}

func (w *KeystoreWallet) SignTx(account common.Address, tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	acc, err := w.ks.Find(accounts.Account{Address: account})
	if err != nil {
		return nil, fmt.Errorf("account %s not in keystore: %w", account.Hex(), err)
	}
	return w.ks.SignTxWithPassphrase(acc, w.password, tx, chainID)
}

// SwitchAccount changes the active account and emits an accounts_changed
// event to all gateway subscribers.
func (w *KeystoreWallet) SwitchAccount(account common.Address) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || w.active == account {
		return
	}
	w.active = account
	select {
	case w.events <- WalletEvent{Type: WalletEventAccountsChanged, Account: account}:
	default:
	}
}

func (w *KeystoreWallet) Events() <-chan WalletEvent {
	return w.events
}

func (w *KeystoreWallet) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.closed {
		w.closed = true
		close(w.events)
	}
}
