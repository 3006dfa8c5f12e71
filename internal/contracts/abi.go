package contracts

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/crypto"
)

// Contract ABIs for the patent registry, token factory, patent tokens and
// the staking vault. Only the functions and events this service touches are
// declared.

const registryABIJSON = `[
	{"inputs":[{"name":"title","type":"string"},{"name":"contentHash","type":"string"},{"name":"externalId","type":"string"}],"name":"registerPatent","outputs":[{"name":"","type":"uint256"}],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"name":"patentId","type":"uint256"}],"name":"getPatent","outputs":[{"name":"title","type":"string"},{"name":"contentHash","type":"string"},{"name":"price","type":"uint256"},{"name":"forSale","type":"bool"},{"name":"inventor","type":"address"},{"name":"createdAt","type":"uint256"},{"name":"externalId","type":"string"},{"name":"verified","type":"bool"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"getTotalPatents","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"patentId","type":"uint256"}],"name":"verifyPatent","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"anonymous":false,"inputs":[{"indexed":true,"name":"patentId","type":"uint256"},{"indexed":true,"name":"inventor","type":"address"},{"indexed":false,"name":"title","type":"string"}],"name":"PatentRegistered","type":"event"}
]`

const factoryABIJSON = `[
	{"inputs":[{"name":"name","type":"string"},{"name":"symbol","type":"string"},{"name":"patentId","type":"uint256"}],"name":"createPatentToken","outputs":[{"name":"","type":"address"}],"stateMutability":"payable","type":"function"},
	{"inputs":[{"name":"patentId","type":"uint256"}],"name":"getPatentToken","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"},
	{"anonymous":false,"inputs":[{"indexed":true,"name":"patentId","type":"uint256"},{"indexed":false,"name":"tokenAddress","type":"address"}],"name":"PatentTokenCreated","type":"event"}
]`

const tokenABIJSON = `[
	{"inputs":[{"name":"amount","type":"uint256"}],"name":"buyTokens","outputs":[],"stateMutability":"payable","type":"function"},
	{"inputs":[{"name":"amount","type":"uint256"}],"name":"sellTokens","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"name":"amount","type":"uint256"}],"name":"calculatePrice","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"getTokenMetrics","outputs":[{"name":"currentPrice","type":"uint256"},{"name":"basePrice","type":"uint256"},{"name":"liquidityPool","type":"uint256"},{"name":"volume24h","type":"uint256"},{"name":"holders","type":"uint256"},{"name":"isTrading","type":"bool"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"limit","type":"uint256"}],"name":"getTradeHistory","outputs":[{"components":[{"name":"timestamp","type":"uint256"},{"name":"price","type":"uint256"},{"name":"volume","type":"uint256"}],"name":"","type":"tuple[]"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"account","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"spender","type":"address"},{"name":"amount","type":"uint256"}],"name":"approve","outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"name":"owner","type":"address"},{"name":"spender","type":"address"}],"name":"allowance","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"anonymous":false,"inputs":[{"indexed":true,"name":"buyer","type":"address"},{"indexed":false,"name":"amount","type":"uint256"},{"indexed":false,"name":"price","type":"uint256"}],"name":"TokensPurchased","type":"event"},
	{"anonymous":false,"inputs":[{"indexed":true,"name":"seller","type":"address"},{"indexed":false,"name":"amount","type":"uint256"},{"indexed":false,"name":"proceeds","type":"uint256"}],"name":"TokensSold","type":"event"}
]`

// tokenV2ABIJSON declares the directional pricing variant deployed by newer
// factory versions. Which variant a token speaks is probed at bind time.
const tokenV2ABIJSON = `[
	{"inputs":[{"name":"amount","type":"uint256"},{"name":"isBuy","type":"bool"}],"name":"calculatePrice","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"}
]`

const stakingABIJSON = `[
	{"inputs":[{"name":"token","type":"address"},{"name":"amount","type":"uint256"}],"name":"stake","outputs":[{"name":"","type":"uint256"}],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"name":"nftTokenId","type":"uint256"}],"name":"unstake","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"name":"staker","type":"address"},{"name":"patentId","type":"uint256"}],"name":"getStakePosition","outputs":[{"name":"nftTokenId","type":"uint256"},{"name":"stakedAmount","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"anonymous":false,"inputs":[{"indexed":true,"name":"staker","type":"address"},{"indexed":true,"name":"patentId","type":"uint256"},{"indexed":false,"name":"amount","type":"uint256"},{"indexed":false,"name":"nftTokenId","type":"uint256"}],"name":"Staked","type":"event"},
	{"anonymous":false,"inputs":[{"indexed":true,"name":"staker","type":"address"},{"indexed":true,"name":"patentId","type":"uint256"},{"indexed":false,"name":"nftTokenId","type":"uint256"}],"name":"Unstaked","type":"event"}
]`

// stakingV2ABIJSON declares the annotated staking variant that records a use
// case and metadata URI with the position.
const stakingV2ABIJSON = `[
	{"inputs":[{"name":"token","type":"address"},{"name":"amount","type":"uint256"},{"name":"useCase","type":"string"},{"name":"metadataURI","type":"string"}],"name":"stake","outputs":[{"name":"","type":"uint256"}],"stateMutability":"nonpayable","type":"function"}
]`

var (
	registryABI  = mustABI(registryABIJSON)
	factoryABI   = mustABI(factoryABIJSON)
	tokenABI     = mustABI(tokenABIJSON)
	tokenV2ABI   = mustABI(tokenV2ABIJSON)
	stakingABI   = mustABI(stakingABIJSON)
	stakingV2ABI = mustABI(stakingV2ABIJSON)
)

var (
	// PatentRegisteredSig identifies PatentRegistered(uint256,address,string) logs
	PatentRegisteredSig = crypto.Keccak256Hash([]byte("PatentRegistered(uint256,address,string)"))
	// PatentTokenCreatedSig identifies PatentTokenCreated(uint256,address) logs
	PatentTokenCreatedSig = crypto.Keccak256Hash([]byte("PatentTokenCreated(uint256,address)"))
	// TokensPurchasedSig identifies TokensPurchased(address,uint256,uint256) logs
	TokensPurchasedSig = crypto.Keccak256Hash([]byte("TokensPurchased(address,uint256,uint256)"))
	// TokensSoldSig identifies TokensSold(address,uint256,uint256) logs
	TokensSoldSig = crypto.Keccak256Hash([]byte("TokensSold(address,uint256,uint256)"))
	// StakedSig identifies Staked(address,uint256,uint256,uint256) logs
	StakedSig = crypto.Keccak256Hash([]byte("Staked(address,uint256,uint256,uint256)"))
	// UnstakedSig identifies Unstaked(address,uint256,uint256) logs
	UnstakedSig = crypto.Keccak256Hash([]byte("Unstaked(address,uint256,uint256)"))
)

func mustABI(src string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(src))
	if err != nil {
		panic(err)
	}
	return parsed
}
