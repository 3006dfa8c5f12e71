package contracts

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/patentdex/patentdex/internal/domain"
	"github.com/patentdex/patentdex/internal/gateway"
)

// FactoryContract is the typed proxy for the patent token factory.
//
//go:generate mockgen -source=factory.go -destination=../mocks/factory.go -package=mocks -mock_names=FactoryContract=MockFactoryContract
type FactoryContract interface {
	// CreatePatentToken deploys a fungible token for a registered patent.
	// The creation fee is carried as the transaction value.
	CreatePatentToken(ctx context.Context, name, symbol string, patentID uint64, fee *big.Int) (gateway.PendingTx, error)

	// TokenAddressFromReceipt extracts the deployed token address from a
	// creation receipt
	TokenAddressFromReceipt(receipt *types.Receipt) (common.Address, error)

	// GetPatentToken resolves a patent id to its token address. The zero
	// address means the patent has not been tokenized.
	GetPatentToken(ctx context.Context, patentID uint64) (common.Address, error)
}

type factory struct {
	gw   gateway.Gateway
	addr common.Address
}

// NewFactory binds the factory proxy to its deployed address.
func NewFactory(gw gateway.Gateway, addr common.Address) FactoryContract {
	return &factory{gw: gw, addr: addr}
}

func (f *factory) CreatePatentToken(ctx context.Context, name, symbol string, patentID uint64, fee *big.Int) (gateway.PendingTx, error) {
	data, err := factoryABI.Pack("createPatentToken", name, symbol, new(big.Int).SetUint64(patentID))
	if err != nil {
		return gateway.PendingTx{}, fmt.Errorf("failed to pack createPatentToken: %w", err)
	}
	return f.gw.Send(ctx, f.addr, data, fee, domain.GasLimitRegistration)
}

func (f *factory) TokenAddressFromReceipt(receipt *types.Receipt) (common.Address, error) {
	for _, vLog := range receipt.Logs {
		if len(vLog.Topics) >= 1 && vLog.Topics[0] == PatentTokenCreatedSig {
			var out struct {
				TokenAddress common.Address
			}
			if err := factoryABI.UnpackIntoInterface(&out, "PatentTokenCreated", vLog.Data); err != nil {
				return common.Address{}, fmt.Errorf("failed to unpack PatentTokenCreated: %w", err)
			}
			return out.TokenAddress, nil
		}
	}
	return common.Address{}, fmt.Errorf("no PatentTokenCreated log in receipt %s", receipt.TxHash.Hex())
}

func (f *factory) GetPatentToken(ctx context.Context, patentID uint64) (common.Address, error) {
	data, err := factoryABI.Pack("getPatentToken", new(big.Int).SetUint64(patentID))
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to pack getPatentToken: %w", err)
	}

	result, err := f.gw.Call(ctx, f.addr, data)
	if err != nil {
		return common.Address{}, err
	}

	var addr common.Address
	if err := factoryABI.UnpackIntoInterface(&addr, "getPatentToken", result); err != nil {
		return common.Address{}, fmt.Errorf("failed to unpack getPatentToken: %w", err)
	}
	return addr, nil
}
