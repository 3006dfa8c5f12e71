package domain

import "math/big"

// ZeroAddress is the EVM zero address. Contracts return it to signal the
// absence of a binding, for example a patent that has no token yet.
const ZeroAddress = "0x0000000000000000000000000000000000000000"

// MinStakeTokens is the minimum amount accepted by the staking operation:
// 1000 whole tokens, expressed in base units like every amount that
// reaches a contract.
var MinStakeTokens = new(big.Int).Mul(big.NewInt(1000), weiPerEther)

const (
	// GasLimitTrade bounds buy, sell, stake and unstake transactions.
	GasLimitTrade uint64 = 300000
	// GasLimitRegistration bounds registry and factory transactions,
	// which write larger state.
	GasLimitRegistration uint64 = 500000
)

const (
	// ChartWindow is the maximum number of candles kept for chart views.
	ChartWindow = 100
	// CompactWindow is the number of candles in the compact summary view.
	CompactWindow = 10
)
