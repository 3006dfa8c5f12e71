package contracts

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/patentdex/patentdex/internal/domain"
)

// MarketEventSignatures lists every log topic the emitter subscribes to.
func MarketEventSignatures() []common.Hash {
	return []common.Hash{
		PatentRegisteredSig,
		PatentTokenCreatedSig,
		TokensPurchasedSig,
		TokensSoldSig,
		StakedSig,
		UnstakedSig,
	}
}

// ParseMarketEvent normalizes a raw contract log into a market event. Logs
// with unknown topics yield nil without error so mixed subscriptions can
// skip them.
func ParseMarketEvent(vLog types.Log) (*domain.MarketEvent, error) {
	if len(vLog.Topics) == 0 {
		return nil, nil
	}

	event := &domain.MarketEvent{
		ContractAddress: vLog.Address.Hex(),
		TxHash:          vLog.TxHash.Hex(),
		BlockNumber:     vLog.BlockNumber,
	}

	switch vLog.Topics[0] {
	case PatentRegisteredSig:
		if len(vLog.Topics) < 3 {
			return nil, fmt.Errorf("malformed PatentRegistered log in tx %s", vLog.TxHash.Hex())
		}
		event.EventType = domain.EventTypePatentRegistered
		event.PatentID = new(big.Int).SetBytes(vLog.Topics[1].Bytes()).Uint64()
		event.Account = common.BytesToAddress(vLog.Topics[2].Bytes()).Hex()

	case PatentTokenCreatedSig:
		if len(vLog.Topics) < 2 {
			return nil, fmt.Errorf("malformed PatentTokenCreated log in tx %s", vLog.TxHash.Hex())
		}
		var out struct {
			TokenAddress common.Address
		}
		if err := factoryABI.UnpackIntoInterface(&out, "PatentTokenCreated", vLog.Data); err != nil {
			return nil, fmt.Errorf("failed to unpack PatentTokenCreated: %w", err)
		}
		event.EventType = domain.EventTypeTokenCreated
		event.PatentID = new(big.Int).SetBytes(vLog.Topics[1].Bytes()).Uint64()
		event.TokenAddress = out.TokenAddress.Hex()

	case TokensPurchasedSig, TokensSoldSig:
		if len(vLog.Topics) < 2 {
			return nil, fmt.Errorf("malformed trade log in tx %s", vLog.TxHash.Hex())
		}
		name := "TokensPurchased"
		event.EventType = domain.EventTypeTokensPurchased
		if vLog.Topics[0] == TokensSoldSig {
			name = "TokensSold"
			event.EventType = domain.EventTypeTokensSold
		}
		var out struct {
			Amount *big.Int
			Price  *big.Int
		}
		if name == "TokensSold" {
			var sold struct {
				Amount   *big.Int
				Proceeds *big.Int
			}
			if err := tokenABI.UnpackIntoInterface(&sold, name, vLog.Data); err != nil {
				return nil, fmt.Errorf("failed to unpack %s: %w", name, err)
			}
			out.Amount, out.Price = sold.Amount, sold.Proceeds
		} else {
			if err := tokenABI.UnpackIntoInterface(&out, name, vLog.Data); err != nil {
				return nil, fmt.Errorf("failed to unpack %s: %w", name, err)
			}
		}
		event.Account = common.BytesToAddress(vLog.Topics[1].Bytes()).Hex()
		event.TokenAddress = vLog.Address.Hex()
		event.Amount = out.Amount.String()
		event.Price = out.Price.String()

	case StakedSig:
		if len(vLog.Topics) < 3 {
			return nil, fmt.Errorf("malformed Staked log in tx %s", vLog.TxHash.Hex())
		}
		var out struct {
			Amount     *big.Int
			NftTokenId *big.Int
		}
		if err := stakingABI.UnpackIntoInterface(&out, "Staked", vLog.Data); err != nil {
			return nil, fmt.Errorf("failed to unpack Staked: %w", err)
		}
		event.EventType = domain.EventTypeStaked
		event.Account = common.BytesToAddress(vLog.Topics[1].Bytes()).Hex()
		event.PatentID = new(big.Int).SetBytes(vLog.Topics[2].Bytes()).Uint64()
		event.Amount = out.Amount.String()
		event.NFTTokenID = out.NftTokenId.Uint64()

	case UnstakedSig:
		if len(vLog.Topics) < 3 {
			return nil, fmt.Errorf("malformed Unstaked log in tx %s", vLog.TxHash.Hex())
		}
		var out struct {
			NftTokenId *big.Int
		}
		if err := stakingABI.UnpackIntoInterface(&out, "Unstaked", vLog.Data); err != nil {
			return nil, fmt.Errorf("failed to unpack Unstaked: %w", err)
		}
		event.EventType = domain.EventTypeUnstaked
		event.Account = common.BytesToAddress(vLog.Topics[1].Bytes()).Hex()
		event.PatentID = new(big.Int).SetBytes(vLog.Topics[2].Bytes()).Uint64()
		event.NFTTokenID = out.NftTokenId.Uint64()

	default:
		return nil, nil
	}

	return event, nil
}
