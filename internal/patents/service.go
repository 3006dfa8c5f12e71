package patents

import (
	"context"
	"fmt"
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/patentdex/patentdex/internal/contracts"
	"github.com/patentdex/patentdex/internal/domain"
	"github.com/patentdex/patentdex/internal/gateway"
	"github.com/patentdex/patentdex/internal/logger"
	"github.com/patentdex/patentdex/internal/storage"
)

// RegisterInput describes a patent registration request. The document is
// pinned to storage before anything touches the chain.
type RegisterInput struct {
	Title        string
	ExternalID   string
	Description  string
	DocumentName string
	Document     io.Reader
}

// PatentMetadata is the JSON object pinned alongside the document. The
// on-chain record stores only its CID.
type PatentMetadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ExternalID  string `json:"external_id"`
	DocumentCID string `json:"document_cid"`
}

// Service orchestrates the patent lifecycle across storage and the three
// contracts.
//
//go:generate mockgen -source=service.go -destination=../mocks/patents.go -package=mocks -mock_names=Service=MockPatentService
type Service interface {
	// Register pins the document and metadata, then records the patent on
	// chain and returns the stored entry
	Register(ctx context.Context, input RegisterInput) (*domain.PatentRecord, error)

	// Tokenize deploys a fungible token for a registered patent
	Tokenize(ctx context.Context, patentID uint64, name, symbol string, fee *big.Int) (common.Address, error)

	// Get reads one patent, including its token address if any
	Get(ctx context.Context, patentID uint64) (*domain.PatentRecord, error)

	// List reads all registered patents
	List(ctx context.Context) ([]domain.PatentRecord, error)

	// Metadata fetches the pinned metadata document for a patent
	Metadata(ctx context.Context, patentID uint64) (*PatentMetadata, error)

	// Verify marks a patent as verified
	Verify(ctx context.Context, patentID uint64) error

	// Stake locks tokens against a patent and returns the new position
	Stake(ctx context.Context, patentID uint64, amount *big.Int, useCase, metadataURI string) (*domain.StakePosition, error)

	// Unstake releases a position by its credential id
	Unstake(ctx context.Context, nftTokenID uint64) error

	// Position reads the caller's stake against a patent, nil if none
	Position(ctx context.Context, patentID uint64) (*domain.StakePosition, error)
}

type service struct {
	gw       gateway.Gateway
	registry contracts.RegistryContract
	factory  contracts.FactoryContract
	staking  contracts.StakingContract
	store    storage.Store
	resolver storage.Resolver
}

// NewService wires the patent service.
func NewService(gw gateway.Gateway, registry contracts.RegistryContract, factory contracts.FactoryContract, staking contracts.StakingContract, store storage.Store, resolver storage.Resolver) Service {
	return &service{
		gw:       gw,
		registry: registry,
		factory:  factory,
		staking:  staking,
		store:    store,
		resolver: resolver,
	}
}

func (s *service) Register(ctx context.Context, input RegisterInput) (*domain.PatentRecord, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if input.Document == nil {
		return nil, fmt.Errorf("document is required")
	}

	docCID, err := s.store.PinFile(ctx, input.DocumentName, input.Document)
	if err != nil {
		return nil, err
	}

	metaCID, err := s.store.PinJSON(ctx, input.Title+".json", PatentMetadata{
		Title:       input.Title,
		Description: input.Description,
		ExternalID:  input.ExternalID,
		DocumentCID: docCID,
	})
	if err != nil {
		return nil, err
	}

	pending, err := s.registry.RegisterPatent(ctx, input.Title, metaCID, input.ExternalID)
	if err != nil {
		return nil, err
	}

	receipt, err := s.gw.Await(ctx, pending)
	if err != nil {
		return nil, err
	}

	patentID, err := s.registry.PatentIDFromReceipt(receipt)
	if err != nil {
		return nil, err
	}

	logger.Info("patent registered",
		zap.Uint64("patent_id", patentID),
		zap.String("title", input.Title),
		zap.String("metadata_cid", metaCID),
		zap.String("tx_hash", receipt.TxHash.Hex()))

	return s.Get(ctx, patentID)
}

func (s *service) Tokenize(ctx context.Context, patentID uint64, name, symbol string, fee *big.Int) (common.Address, error) {
	record, err := s.registry.GetPatent(ctx, patentID)
	if err != nil {
		return common.Address{}, err
	}
	if record.Tokenized() {
		return common.Address{}, fmt.Errorf("patent %d already has token %s", patentID, record.TokenAddress)
	}

	pending, err := s.factory.CreatePatentToken(ctx, name, symbol, patentID, fee)
	if err != nil {
		return common.Address{}, err
	}

	receipt, err := s.gw.Await(ctx, pending)
	if err != nil {
		return common.Address{}, err
	}

	tokenAddr, err := s.factory.TokenAddressFromReceipt(receipt)
	if err != nil {
		return common.Address{}, err
	}

	logger.Info("patent tokenized",
		zap.Uint64("patent_id", patentID),
		zap.String("token", tokenAddr.Hex()),
		zap.String("tx_hash", receipt.TxHash.Hex()))
	return tokenAddr, nil
}

func (s *service) Get(ctx context.Context, patentID uint64) (*domain.PatentRecord, error) {
	record, err := s.registry.GetPatent(ctx, patentID)
	if err != nil {
		return nil, err
	}

	tokenAddr, err := s.factory.GetPatentToken(ctx, patentID)
	if err != nil {
		return nil, err
	}
	record.TokenAddress = tokenAddr.Hex()
	return record, nil
}

func (s *service) List(ctx context.Context) ([]domain.PatentRecord, error) {
	total, err := s.registry.GetTotalPatents(ctx)
	if err != nil {
		return nil, err
	}

	// Registry ids are 1-based and dense
	records := make([]domain.PatentRecord, 0, total)
	for id := uint64(1); id <= total; id++ {
		record, err := s.Get(ctx, id)
		if err != nil {
			logger.Warn("skipping unreadable patent",
				zap.Uint64("patent_id", id), zap.Error(err))
			continue
		}
		records = append(records, *record)
	}
	return records, nil
}

func (s *service) Metadata(ctx context.Context, patentID uint64) (*PatentMetadata, error) {
	record, err := s.registry.GetPatent(ctx, patentID)
	if err != nil {
		return nil, err
	}
	if record.ContentHash == "" {
		return nil, fmt.Errorf("patent %d has no metadata document", patentID)
	}

	var meta PatentMetadata
	if err := s.resolver.FetchJSON(ctx, record.ContentHash, &meta); err != nil {
		return nil, fmt.Errorf("failed to fetch metadata for patent %d: %w", patentID, err)
	}
	return &meta, nil
}

func (s *service) Verify(ctx context.Context, patentID uint64) error {
	pending, err := s.registry.VerifyPatent(ctx, patentID)
	if err != nil {
		return err
	}
	if _, err := s.gw.Await(ctx, pending); err != nil {
		return err
	}
	logger.Info("patent verified", zap.Uint64("patent_id", patentID))
	return nil
}

func (s *service) Stake(ctx context.Context, patentID uint64, amount *big.Int, useCase, metadataURI string) (*domain.StakePosition, error) {
	tokenAddr, err := s.factory.GetPatentToken(ctx, patentID)
	if err != nil {
		return nil, err
	}

	token, err := contracts.BindToken(ctx, s.gw, tokenAddr)
	if err != nil {
		return nil, err
	}

	account := s.gw.Account()
	balance, err := token.BalanceOf(ctx, account)
	if err != nil {
		return nil, err
	}
	if balance.Cmp(amount) < 0 {
		return nil, fmt.Errorf("%w: hold %s, staking %s",
			domain.ErrInsufficientBalance, balance, amount)
	}

	allowance, err := token.Allowance(ctx, account, s.staking.Address())
	if err != nil {
		return nil, err
	}
	if allowance.Cmp(amount) < 0 {
		approvePending, err := token.Approve(ctx, s.staking.Address(), amount)
		if err != nil {
			return nil, err
		}
		if _, err := s.gw.Await(ctx, approvePending); err != nil {
			return nil, err
		}
	}

	pending, err := s.staking.Stake(ctx, tokenAddr, amount, useCase, metadataURI)
	if err != nil {
		return nil, err
	}

	receipt, err := s.gw.Await(ctx, pending)
	if err != nil {
		return nil, err
	}

	nftTokenID, err := s.staking.NFTTokenIDFromReceipt(receipt)
	if err != nil {
		return nil, err
	}

	logger.Info("tokens staked",
		zap.Uint64("patent_id", patentID),
		zap.Uint64("nft_token_id", nftTokenID),
		zap.String("amount", amount.String()))

	return &domain.StakePosition{
		PatentID:     patentID,
		NFTTokenID:   nftTokenID,
		StakedAmount: amount,
	}, nil
}

func (s *service) Unstake(ctx context.Context, nftTokenID uint64) error {
	pending, err := s.staking.Unstake(ctx, nftTokenID)
	if err != nil {
		return err
	}
	if _, err := s.gw.Await(ctx, pending); err != nil {
		return err
	}
	logger.Info("tokens unstaked", zap.Uint64("nft_token_id", nftTokenID))
	return nil
}

func (s *service) Position(ctx context.Context, patentID uint64) (*domain.StakePosition, error) {
	return s.staking.GetStakePosition(ctx, s.gw.Account(), patentID)
}
