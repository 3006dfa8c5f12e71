package reconcile_test

import (
	"context"
	"errors"
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
	"github.com/patentdex/patentdex/internal/reconcile"
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

type testReconcilerMocks struct {
	ctrl  *gomock.Controller
	token *mocks.MockTokenContract
	clock *mocks.MockClock
	rec   reconcile.Reconciler
}

func setupTestReconciler(t *testing.T) *testReconcilerMocks {
	ctrl := gomock.NewController(t)

	tm := &testReconcilerMocks{
		ctrl:  ctrl,
		token: mocks.NewMockTokenContract(ctrl),
		clock: mocks.NewMockClock(ctrl),
	}
	tm.rec = reconcile.New(tm.clock)
	return tm
}

func tearDownTestReconciler(tm *testReconcilerMocks) {
	tm.ctrl.Finish()
}

func TestReconciler_Refresh(t *testing.T) {
	tm := setupTestReconciler(t)
	defer tearDownTestReconciler(tm)

	tokenAddr := common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	account := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

	metrics := &domain.TokenMetrics{
		CurrentPrice: big.NewInt(1000),
		BasePrice:    big.NewInt(500),
		HoldersCount: 4,
		IsTrading:    true,
	}
	trades := []domain.TradeRecord{
		{Timestamp: time.Unix(1700000000, 0), Price: big.NewInt(900), Volume: big.NewInt(2)},
		{Timestamp: time.Unix(1700000010, 0), Price: big.NewInt(1000), Volume: big.NewInt(3)},
	}

	tm.token.EXPECT().GetTokenMetrics(gomock.Any()).Return(metrics, nil)
	tm.token.EXPECT().BalanceOf(gomock.Any(), account).Return(big.NewInt(50), nil)
	tm.token.EXPECT().GetTradeHistory(gomock.Any(), uint64(domain.ChartWindow)).Return(trades, nil)
	tm.token.EXPECT().Address().Return(tokenAddr).AnyTimes()

	snapshot, err := tm.rec.Refresh(context.Background(), tm.token, account)
	assert.NoError(t, err)
	assert.Equal(t, metrics, snapshot.Metrics)
	assert.Equal(t, "50", snapshot.Balance.String())
	assert.True(t, snapshot.IsHolder)
	assert.Len(t, snapshot.Candles, 1)
	assert.Equal(t, "5", snapshot.Candles[0].Volume.String())

	// The snapshot is cached under the token address
	assert.Equal(t, snapshot, tm.rec.Cached(tokenAddr))
}

func TestReconciler_Refresh_HolderStatusFromLiveBalance(t *testing.T) {
	tm := setupTestReconciler(t)
	defer tearDownTestReconciler(tm)

	tokenAddr := common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	account := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

	tm.token.EXPECT().GetTokenMetrics(gomock.Any()).Return(&domain.TokenMetrics{}, nil).Times(2)
	tm.token.EXPECT().GetTradeHistory(gomock.Any(), uint64(domain.ChartWindow)).Return(nil, nil).Times(2)
	tm.token.EXPECT().Address().Return(tokenAddr).AnyTimes()

	// Holding a balance makes the account a holder
	tm.token.EXPECT().BalanceOf(gomock.Any(), account).Return(big.NewInt(1), nil)
	snapshot, err := tm.rec.Refresh(context.Background(), tm.token, account)
	assert.NoError(t, err)
	assert.True(t, snapshot.IsHolder)

	// After the balance drops to zero the next refresh re-derives it
	tm.token.EXPECT().BalanceOf(gomock.Any(), account).Return(big.NewInt(0), nil)
	snapshot, err = tm.rec.Refresh(context.Background(), tm.token, account)
	assert.NoError(t, err)
	assert.False(t, snapshot.IsHolder)
}

func TestReconciler_Refresh_EmptyHistory(t *testing.T) {
	tm := setupTestReconciler(t)
	defer tearDownTestReconciler(tm)

	tokenAddr := common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	account := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

	tm.token.EXPECT().GetTokenMetrics(gomock.Any()).Return(&domain.TokenMetrics{}, nil)
	tm.token.EXPECT().BalanceOf(gomock.Any(), account).Return(big.NewInt(0), nil)
	tm.token.EXPECT().GetTradeHistory(gomock.Any(), uint64(domain.ChartWindow)).Return(nil, nil)
	tm.token.EXPECT().Address().Return(tokenAddr).AnyTimes()

	snapshot, err := tm.rec.Refresh(context.Background(), tm.token, account)
	assert.NoError(t, err)
	assert.Empty(t, snapshot.Candles)
	assert.Empty(t, snapshot.Compact)
}

func TestReconciler_Refresh_MetricsError(t *testing.T) {
	tm := setupTestReconciler(t)
	defer tearDownTestReconciler(tm)

	account := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	wantErr := errors.New("read failed")

	tm.token.EXPECT().GetTokenMetrics(gomock.Any()).Return(nil, wantErr)

	snapshot, err := tm.rec.Refresh(context.Background(), tm.token, account)
	assert.ErrorIs(t, err, wantErr)
	assert.Nil(t, snapshot)
}

func TestReconciler_Cached_Unknown(t *testing.T) {
	tm := setupTestReconciler(t)
	defer tearDownTestReconciler(tm)

	assert.Nil(t, tm.rec.Cached(common.HexToAddress("0x1")))
}
