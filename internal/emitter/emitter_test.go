package emitter_test

import (
	"context"
	"math/big"
	"os"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/patentdex/patentdex/internal/contracts"
	"github.com/patentdex/patentdex/internal/domain"
	"github.com/patentdex/patentdex/internal/emitter"
	"github.com/patentdex/patentdex/internal/logger"
	"github.com/patentdex/patentdex/internal/mocks"
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

var (
	emitterTokenAddr = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	emitterAccount   = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
)

// fakeSubscription satisfies ethereum.Subscription for log subscriptions
// handed out by the mock client.
type fakeSubscription struct {
	errCh chan error
}

func newFakeSubscription() *fakeSubscription {
	return &fakeSubscription{errCh: make(chan error, 1)}
}

func (s *fakeSubscription) Err() <-chan error { return s.errCh }
func (s *fakeSubscription) Unsubscribe()      {}

func purchaseLog(blockNumber uint64) types.Log {
	data := append(
		common.LeftPadBytes(big.NewInt(100).Bytes(), 32),
		common.LeftPadBytes(big.NewInt(250000).Bytes(), 32)...)
	return types.Log{
		Address:     emitterTokenAddr,
		Topics:      []common.Hash{contracts.TokensPurchasedSig, common.BytesToHash(emitterAccount.Bytes())},
		Data:        data,
		TxHash:      common.HexToHash("0xdeadbeef"),
		BlockNumber: blockNumber,
	}
}

func TestEmitter_Run_PublishesMarketEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eth := mocks.NewMockEthClient(ctrl)
	clock := mocks.NewMockClock(ctrl)
	publisher := mocks.NewMockPublisher(ctrl)

	e := emitter.New(emitter.Config{
		ChainID:    domain.Chain("eip155-31337"),
		StartBlock: 5,
		Contracts:  []common.Address{emitterTokenAddr},
	}, eth, clock, publisher)

	sub := newFakeSubscription()
	logsCh := make(chan chan<- types.Log, 1)
	eth.EXPECT().
		SubscribeFilterLogs(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
			assert.Equal(t, uint64(5), query.FromBlock.Uint64())
			assert.Equal(t, []common.Address{emitterTokenAddr}, query.Addresses)
			logsCh <- ch
			return sub, nil
		})

	blockTime := int64(1700000000)
	eth.EXPECT().HeaderByNumber(gomock.Any(), big.NewInt(9)).Return(&types.Header{Time: uint64(blockTime)}, nil)
	clock.EXPECT().Unix(blockTime, int64(0)).Return(time.Unix(blockTime, 0)).Times(2)

	published := make(chan *domain.MarketEvent, 2)
	publisher.EXPECT().
		PublishEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event *domain.MarketEvent) error {
			published <- event
			return nil
		}).Times(2)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- e.Run(ctx) }()

	logs := waitForSubscription(t, logsCh)

	// A reorged log is dropped without publishing
	removed := purchaseLog(9)
	removed.Removed = true
	logs <- removed

	logs <- purchaseLog(9)
	event := receiveEvent(t, published)
	assert.Equal(t, domain.EventTypeTokensPurchased, event.EventType)
	assert.Equal(t, domain.Chain("eip155-31337"), event.Chain)
	assert.Equal(t, emitterAccount.Hex(), event.Account)
	assert.Equal(t, "100", event.Amount)
	assert.Equal(t, "250000", event.Price)
	assert.Equal(t, time.Unix(blockTime, 0).UTC(), event.Timestamp)

	// A second log in the same block reuses the cached block time
	logs <- purchaseLog(9)
	receiveEvent(t, published)

	cancel()
	assert.ErrorIs(t, <-errCh, context.Canceled)
}

func TestEmitter_Run_StartsFromHeadByDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eth := mocks.NewMockEthClient(ctrl)
	clock := mocks.NewMockClock(ctrl)
	publisher := mocks.NewMockPublisher(ctrl)

	e := emitter.New(emitter.Config{ChainID: domain.Chain("eip155-31337")}, eth, clock, publisher)

	subscribed := make(chan struct{})
	eth.EXPECT().BlockNumber(gomock.Any()).Return(uint64(42), nil)
	eth.EXPECT().
		SubscribeFilterLogs(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
			assert.Equal(t, uint64(42), query.FromBlock.Uint64())
			close(subscribed)
			return newFakeSubscription(), nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- e.Run(ctx) }()

	select {
	case <-subscribed:
	case <-time.After(time.Second):
		t.Fatal("emitter did not subscribe")
	}
	cancel()
	assert.ErrorIs(t, <-errCh, context.Canceled)
}

func TestEmitter_Run_SubscriptionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eth := mocks.NewMockEthClient(ctrl)
	clock := mocks.NewMockClock(ctrl)
	publisher := mocks.NewMockPublisher(ctrl)

	e := emitter.New(emitter.Config{ChainID: domain.Chain("eip155-31337"), StartBlock: 5}, eth, clock, publisher)

	sub := newFakeSubscription()
	eth.EXPECT().
		SubscribeFilterLogs(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(sub, nil)

	errCh := make(chan error, 1)
	go func() { errCh <- e.Run(context.Background()) }()

	sub.errCh <- assert.AnError

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, assert.AnError)
	case <-time.After(time.Second):
		t.Fatal("emitter did not surface subscription error")
	}
}

func TestEmitter_Run_WallClockFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eth := mocks.NewMockEthClient(ctrl)
	clock := mocks.NewMockClock(ctrl)
	publisher := mocks.NewMockPublisher(ctrl)

	e := emitter.New(emitter.Config{ChainID: domain.Chain("eip155-31337"), StartBlock: 5}, eth, clock, publisher)

	sub := newFakeSubscription()
	logsCh := make(chan chan<- types.Log, 1)
	eth.EXPECT().
		SubscribeFilterLogs(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
			logsCh <- ch
			return sub, nil
		})

	now := time.Unix(1700000500, 0)
	eth.EXPECT().HeaderByNumber(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)
	clock.EXPECT().Now().Return(now)

	published := make(chan *domain.MarketEvent, 1)
	publisher.EXPECT().
		PublishEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event *domain.MarketEvent) error {
			published <- event
			return nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- e.Run(ctx) }()

	logs := waitForSubscription(t, logsCh)
	logs <- purchaseLog(9)

	event := receiveEvent(t, published)
	assert.Equal(t, now.UTC(), event.Timestamp)

	cancel()
	assert.ErrorIs(t, <-errCh, context.Canceled)
}

func waitForSubscription(t *testing.T, logsCh chan chan<- types.Log) chan<- types.Log {
	t.Helper()
	select {
	case logs := <-logsCh:
		return logs
	case <-time.After(time.Second):
		t.Fatal("emitter did not subscribe")
		return nil
	}
}

func receiveEvent(t *testing.T, ch chan *domain.MarketEvent) *domain.MarketEvent {
	t.Helper()
	select {
	case event := <-ch:
		return event
	case <-time.After(time.Second):
		t.Fatal("event was not published")
		return nil
	}
}
