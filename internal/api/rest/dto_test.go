package rest

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/patentdex/patentdex/internal/domain"
)

func TestParseAmount(t *testing.T) {
	// Request amounts arrive as decimal token strings and must reach the
	// contracts scaled to base units.
	amount, ok := parseAmount("1.5")
	assert.True(t, ok)
	assert.Equal(t, "1500000000000000000", amount.String())

	amount, ok = parseAmount("1000")
	assert.True(t, ok)
	assert.Equal(t, new(big.Int).Mul(big.NewInt(1000), big.NewInt(1e18)), amount)
	assert.True(t, amount.Cmp(domain.MinStakeTokens) >= 0)

	for _, s := range []string{"", "abc", "0", "-3", "1.2345678901234567891"} {
		_, ok := parseAmount(s)
		assert.False(t, ok, "amount %q", s)
	}
}
