package contracts

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/patentdex/patentdex/internal/domain"
	"github.com/patentdex/patentdex/internal/gateway"
	"github.com/patentdex/patentdex/internal/logger"
)

// StakeVariant records which stake signature the vault answers to.
type StakeVariant int

const (
	StakeVariantUnknown StakeVariant = iota
	// StakeVariantAnnotated is stake(address,uint256,string,string)
	StakeVariantAnnotated
	// StakeVariantPlain is stake(address,uint256)
	StakeVariantPlain
)

// StakingContract is the typed proxy for the staking vault that mints usage
// credential NFTs against locked patent tokens.
//
//go:generate mockgen -source=staking.go -destination=../mocks/staking.go -package=mocks -mock_names=StakingContract=MockStakingContract
type StakingContract interface {
	// Address returns the vault address. Token approvals name it as
	// spender.
	Address() common.Address

	// Stake locks tokens against a patent. The annotated signature is
	// preferred when the vault supports it; useCase and metadataURI are
	// dropped otherwise.
	Stake(ctx context.Context, tokenAddr common.Address, amount *big.Int, useCase, metadataURI string) (gateway.PendingTx, error)

	// NFTTokenIDFromReceipt extracts the minted credential id from a
	// stake receipt
	NFTTokenIDFromReceipt(receipt *types.Receipt) (uint64, error)

	// Unstake releases a position by its credential id
	Unstake(ctx context.Context, nftTokenID uint64) (gateway.PendingTx, error)

	// GetStakePosition reads the staker's position for a patent. A zero
	// position means not staked.
	GetStakePosition(ctx context.Context, staker common.Address, patentID uint64) (*domain.StakePosition, error)

	// Variant reports the probed stake signature
	Variant() StakeVariant
}

type staking struct {
	gw   gateway.Gateway
	addr common.Address

	mu      sync.Mutex
	variant StakeVariant
}

// NewStaking binds the staking proxy to its deployed address.
func NewStaking(gw gateway.Gateway, addr common.Address) StakingContract {
	return &staking{gw: gw, addr: addr}
}

func (s *staking) Address() common.Address {
	return s.addr
}

func (s *staking) Variant() StakeVariant {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.variant
}

func (s *staking) Stake(ctx context.Context, tokenAddr common.Address, amount *big.Int, useCase, metadataURI string) (gateway.PendingTx, error) {
	if amount == nil || amount.Cmp(domain.MinStakeTokens) < 0 {
		return gateway.PendingTx{}, fmt.Errorf("%w: stake below minimum of %s tokens",
			domain.ErrInsufficientBalance, domain.FormatEther(domain.MinStakeTokens))
	}

	s.mu.Lock()
	variant := s.variant
	s.mu.Unlock()

	if variant == StakeVariantUnknown {
		var err error
		variant, err = s.probeVariant(ctx, tokenAddr, amount, useCase, metadataURI)
		if err != nil {
			return gateway.PendingTx{}, err
		}
	}

	if variant == StakeVariantAnnotated {
		data, err := stakingV2ABI.Pack("stake", tokenAddr, amount, useCase, metadataURI)
		if err != nil {
			return gateway.PendingTx{}, fmt.Errorf("failed to pack stake: %w", err)
		}
		return s.gw.Send(ctx, s.addr, data, nil, domain.GasLimitTrade)
	}

	data, err := stakingABI.Pack("stake", tokenAddr, amount)
	if err != nil {
		return gateway.PendingTx{}, fmt.Errorf("failed to pack stake: %w", err)
	}
	return s.gw.Send(ctx, s.addr, data, nil, domain.GasLimitTrade)
}

// probeVariant dry-runs the annotated calldata against the vault. A node
// accepts a broadcast regardless of selector and the revert only surfaces
// in the receipt, so only a call can tell the signatures apart before a
// transaction is spent on the wrong one.
func (s *staking) probeVariant(ctx context.Context, tokenAddr common.Address, amount *big.Int, useCase, metadataURI string) (StakeVariant, error) {
	data, err := stakingV2ABI.Pack("stake", tokenAddr, amount, useCase, metadataURI)
	if err != nil {
		return StakeVariantUnknown, fmt.Errorf("failed to pack stake: %w", err)
	}

	if _, err := s.gw.Call(ctx, s.addr, data); err != nil {
		if !errors.Is(err, domain.ErrTransactionReverted) {
			return StakeVariantUnknown, err
		}
		s.recordVariant(StakeVariantPlain)
		logger.Debug("staking vault uses plain stake signature", zap.String("vault", s.addr.Hex()))
		return StakeVariantPlain, nil
	}

	s.recordVariant(StakeVariantAnnotated)
	return StakeVariantAnnotated, nil
}

func (s *staking) recordVariant(v StakeVariant) {
	s.mu.Lock()
	s.variant = v
	s.mu.Unlock()
}

func (s *staking) NFTTokenIDFromReceipt(receipt *types.Receipt) (uint64, error) {
	for _, vLog := range receipt.Logs {
		if len(vLog.Topics) >= 1 && vLog.Topics[0] == StakedSig {
			var out struct {
				Amount     *big.Int
				NftTokenId *big.Int
			}
			if err := stakingABI.UnpackIntoInterface(&out, "Staked", vLog.Data); err != nil {
				return 0, fmt.Errorf("failed to unpack Staked: %w", err)
			}
			return out.NftTokenId.Uint64(), nil
		}
	}
	return 0, fmt.Errorf("no Staked log in receipt %s", receipt.TxHash.Hex())
}

func (s *staking) Unstake(ctx context.Context, nftTokenID uint64) (gateway.PendingTx, error) {
	data, err := stakingABI.Pack("unstake", new(big.Int).SetUint64(nftTokenID))
	if err != nil {
		return gateway.PendingTx{}, fmt.Errorf("failed to pack unstake: %w", err)
	}
	return s.gw.Send(ctx, s.addr, data, nil, domain.GasLimitTrade)
}

func (s *staking) GetStakePosition(ctx context.Context, staker common.Address, patentID uint64) (*domain.StakePosition, error) {
	data, err := stakingABI.Pack("getStakePosition", staker, new(big.Int).SetUint64(patentID))
	if err != nil {
		return nil, fmt.Errorf("failed to pack getStakePosition: %w", err)
	}

	result, err := s.gw.Call(ctx, s.addr, data)
	if err != nil {
		return nil, err
	}

	var out struct {
		NftTokenId   *big.Int
		StakedAmount *big.Int
	}
	if err := stakingABI.UnpackIntoInterface(&out, "getStakePosition", result); err != nil {
		return nil, fmt.Errorf("failed to unpack getStakePosition: %w", err)
	}

	if out.StakedAmount == nil || out.StakedAmount.Sign() == 0 {
		return nil, nil
	}

	return &domain.StakePosition{
		PatentID:     patentID,
		NFTTokenID:   out.NftTokenId.Uint64(),
		StakedAmount: out.StakedAmount,
	}, nil
}
