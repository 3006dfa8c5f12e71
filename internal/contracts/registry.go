package contracts

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/patentdex/patentdex/internal/domain"
	"github.com/patentdex/patentdex/internal/gateway"
)

// RegistryContract is the typed proxy for the patent registry. Packing and
// unpacking stays here; callers only see domain types.
//
//go:generate mockgen -source=registry.go -destination=../mocks/registry.go -package=mocks -mock_names=RegistryContract=MockRegistryContract
type RegistryContract interface {
	// RegisterPatent submits a registration and returns the pending tx.
	// The assigned patent id is read from the PatentRegistered log after
	// confirmation.
	RegisterPatent(ctx context.Context, title, contentHash, externalID string) (gateway.PendingTx, error)

	// PatentIDFromReceipt extracts the assigned id from a registration receipt
	PatentIDFromReceipt(receipt *types.Receipt) (uint64, error)

	// GetPatent reads a single registry entry
	GetPatent(ctx context.Context, patentID uint64) (*domain.PatentRecord, error)

	// GetTotalPatents returns the number of registered patents
	GetTotalPatents(ctx context.Context) (uint64, error)

	// VerifyPatent marks a patent as verified
	VerifyPatent(ctx context.Context, patentID uint64) (gateway.PendingTx, error)
}

type registry struct {
	gw   gateway.Gateway
	addr common.Address
}

// NewRegistry binds the registry proxy to its deployed address.
func NewRegistry(gw gateway.Gateway, addr common.Address) RegistryContract {
	return &registry{gw: gw, addr: addr}
}

func (r *registry) RegisterPatent(ctx context.Context, title, contentHash, externalID string) (gateway.PendingTx, error) {
	data, err := registryABI.Pack("registerPatent", title, contentHash, externalID)
	if err != nil {
		return gateway.PendingTx{}, fmt.Errorf("failed to pack registerPatent: %w", err)
	}
	return r.gw.Send(ctx, r.addr, data, nil, domain.GasLimitRegistration)
}

func (r *registry) PatentIDFromReceipt(receipt *types.Receipt) (uint64, error) {
	for _, vLog := range receipt.Logs {
		if len(vLog.Topics) >= 2 && vLog.Topics[0] == PatentRegisteredSig {
			return new(big.Int).SetBytes(vLog.Topics[1].Bytes()).Uint64(), nil
		}
	}
	return 0, fmt.Errorf("no PatentRegistered log in receipt %s", receipt.TxHash.Hex())
}

func (r *registry) GetPatent(ctx context.Context, patentID uint64) (*domain.PatentRecord, error) {
	data, err := registryABI.Pack("getPatent", new(big.Int).SetUint64(patentID))
	if err != nil {
		return nil, fmt.Errorf("failed to pack getPatent: %w", err)
	}

	result, err := r.gw.Call(ctx, r.addr, data)
	if err != nil {
		return nil, err
	}

	var out struct {
		Title       string
		ContentHash string
		Price       *big.Int
		ForSale     bool
		Inventor    common.Address
		CreatedAt   *big.Int
		ExternalId  string
		Verified    bool
	}
	if err := registryABI.UnpackIntoInterface(&out, "getPatent", result); err != nil {
		return nil, fmt.Errorf("failed to unpack getPatent: %w", err)
	}

	// The registry returns an all-zero entry for unknown ids instead of
	// reverting.
	if out.Title == "" && out.Inventor == (common.Address{}) {
		return nil, fmt.Errorf("%w: patent %d", domain.ErrTokenNotFound, patentID)
	}

	return &domain.PatentRecord{
		ID:          patentID,
		Title:       out.Title,
		ContentHash: out.ContentHash,
		PriceHint:   out.Price,
		ForSale:     out.ForSale,
		Inventor:    out.Inventor.Hex(),
		CreatedAt:   time.Unix(out.CreatedAt.Int64(), 0).UTC(),
		ExternalID:  out.ExternalId,
		Verified:    out.Verified,
	}, nil
}

func (r *registry) GetTotalPatents(ctx context.Context) (uint64, error) {
	data, err := registryABI.Pack("getTotalPatents")
	if err != nil {
		return 0, fmt.Errorf("failed to pack getTotalPatents: %w", err)
	}

	result, err := r.gw.Call(ctx, r.addr, data)
	if err != nil {
		return 0, err
	}

	var total *big.Int
	if err := registryABI.UnpackIntoInterface(&total, "getTotalPatents", result); err != nil {
		return 0, fmt.Errorf("failed to unpack getTotalPatents: %w", err)
	}
	return total.Uint64(), nil
}

func (r *registry) VerifyPatent(ctx context.Context, patentID uint64) (gateway.PendingTx, error) {
	data, err := registryABI.Pack("verifyPatent", new(big.Int).SetUint64(patentID))
	if err != nil {
		return gateway.PendingTx{}, fmt.Errorf("failed to pack verifyPatent: %w", err)
	}
	return r.gw.Send(ctx, r.addr, data, nil, domain.GasLimitRegistration)
}
