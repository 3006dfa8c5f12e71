package quote_test

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/patentdex/patentdex/internal/domain"
	"github.com/patentdex/patentdex/internal/logger"
	"github.com/patentdex/patentdex/internal/mocks"
	"github.com/patentdex/patentdex/internal/quote"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

type testEngineMocks struct {
	ctrl   *gomock.Controller
	token  *mocks.MockTokenContract
	clock  *mocks.MockClock
	engine quote.Engine
}

func setupTestEngine(t *testing.T) *testEngineMocks {
	ctrl := gomock.NewController(t)

	tm := &testEngineMocks{
		ctrl:  ctrl,
		token: mocks.NewMockTokenContract(ctrl),
		clock: mocks.NewMockClock(ctrl),
	}
	tm.engine = quote.NewEngine(tm.clock)
	return tm
}

func tearDownTestEngine(tm *testEngineMocks) {
	tm.ctrl.Finish()
}

func TestEngine_Quote(t *testing.T) {
	tm := setupTestEngine(t)
	defer tearDownTestEngine(tm)

	tokenAddr := common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	now := time.Now()
	amount := big.NewInt(100)

	tm.token.EXPECT().Address().Return(tokenAddr).AnyTimes()
	tm.token.EXPECT().CalculatePrice(gomock.Any(), amount, domain.DirectionBuy).Return(big.NewInt(42000), nil)
	tm.clock.EXPECT().Now().Return(now)

	q, err := tm.engine.Quote(context.Background(), tm.token, amount, domain.DirectionBuy)
	assert.NoError(t, err)
	assert.Equal(t, tokenAddr.Hex(), q.TokenAddress)
	assert.Equal(t, "42000", q.Cost.String())
	assert.Equal(t, domain.DirectionBuy, q.Direction)
	assert.Equal(t, now, q.FetchedAt)
	assert.True(t, q.Matches(amount, domain.DirectionBuy))

	assert.Equal(t, q, tm.engine.Latest(tokenAddr))
}

func TestEngine_Quote_RejectsInvalidInput(t *testing.T) {
	tm := setupTestEngine(t)
	defer tearDownTestEngine(tm)

	// No chain call is made for any of these
	cases := []struct {
		amount    *big.Int
		direction domain.TradeDirection
	}{
		{big.NewInt(0), domain.DirectionBuy},
		{big.NewInt(-1), domain.DirectionBuy},
		{nil, domain.DirectionBuy},
		{big.NewInt(1), domain.TradeDirection("sideways")},
	}

	for _, tc := range cases {
		q, err := tm.engine.Quote(context.Background(), tm.token, tc.amount, tc.direction)
		assert.ErrorIs(t, err, domain.ErrQuoteUnavailable)
		assert.Nil(t, q)
	}
}

func TestEngine_Quote_RevertedPriceCallIsRetryable(t *testing.T) {
	tm := setupTestEngine(t)
	defer tearDownTestEngine(tm)

	tokenAddr := common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	tm.token.EXPECT().Address().Return(tokenAddr).AnyTimes()
	tm.token.EXPECT().
		CalculatePrice(gomock.Any(), big.NewInt(100), domain.DirectionBuy).
		Return(nil, fmt.Errorf("%w: execution reverted", domain.ErrTransactionReverted))

	// An unseeded pool reverts the price call. That is a quote failure
	// the caller may retry, not a failed transaction.
	q, err := tm.engine.Quote(context.Background(), tm.token, big.NewInt(100), domain.DirectionBuy)
	assert.Nil(t, q)
	assert.ErrorIs(t, err, domain.ErrQuoteUnavailable)
	assert.NotErrorIs(t, err, domain.ErrTransactionReverted)
	assert.True(t, domain.Retryable(err))
	assert.Nil(t, tm.engine.Latest(tokenAddr))
}

func TestEngine_Quote_LastRequestedWins(t *testing.T) {
	tm := setupTestEngine(t)
	defer tearDownTestEngine(tm)

	tokenAddr := common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	tm.token.EXPECT().Address().Return(tokenAddr).AnyTimes()
	tm.clock.EXPECT().Now().Return(time.Now()).AnyTimes()

	var newer *domain.TradeQuote

	// The older request's price fetch is still in flight when a newer
	// request for the same token starts and completes.
	tm.token.EXPECT().
		CalculatePrice(gomock.Any(), big.NewInt(10), domain.DirectionBuy).
		DoAndReturn(func(ctx context.Context, amount *big.Int, direction domain.TradeDirection) (*big.Int, error) {
			tm.token.EXPECT().
				CalculatePrice(gomock.Any(), big.NewInt(20), domain.DirectionBuy).
				Return(big.NewInt(2000), nil)

			var err error
			newer, err = tm.engine.Quote(ctx, tm.token, big.NewInt(20), domain.DirectionBuy)
			assert.NoError(t, err)
			return big.NewInt(1000), nil
		})

	older, err := tm.engine.Quote(context.Background(), tm.token, big.NewInt(10), domain.DirectionBuy)
	assert.ErrorIs(t, err, quote.ErrSuperseded)
	assert.ErrorIs(t, err, domain.ErrQuoteUnavailable)
	assert.Nil(t, older)

	// The newer quote survives regardless of landing order
	assert.Equal(t, newer, tm.engine.Latest(tokenAddr))
	assert.Equal(t, "2000", tm.engine.Latest(tokenAddr).Cost.String())
}

func TestEngine_Invalidate(t *testing.T) {
	tm := setupTestEngine(t)
	defer tearDownTestEngine(tm)

	tokenAddr := common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	tm.token.EXPECT().Address().Return(tokenAddr).AnyTimes()
	tm.token.EXPECT().CalculatePrice(gomock.Any(), gomock.Any(), domain.DirectionSell).Return(big.NewInt(900), nil)
	tm.clock.EXPECT().Now().Return(time.Now())

	_, err := tm.engine.Quote(context.Background(), tm.token, big.NewInt(5), domain.DirectionSell)
	assert.NoError(t, err)
	assert.NotNil(t, tm.engine.Latest(tokenAddr))

	tm.engine.Invalidate(tokenAddr)
	assert.Nil(t, tm.engine.Latest(tokenAddr))

	// Invalidating an unknown token is a no-op
	tm.engine.Invalidate(common.HexToAddress("0x1"))
}
