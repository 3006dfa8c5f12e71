package jetstream_test

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	natsgo "github.com/nats-io/nats.go"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/patentdex/patentdex/internal/domain"
	"github.com/patentdex/patentdex/internal/logger"
	"github.com/patentdex/patentdex/internal/mocks"
	"github.com/patentdex/patentdex/internal/providers/jetstream"
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

func testPublisherConfig() jetstream.Config {
	return jetstream.Config{
		URL:            "nats://localhost:4222",
		StreamName:     "MARKET_EVENTS",
		MaxReconnects:  5,
		ReconnectWait:  time.Second,
		ConnectionName: "patentdex-test",
	}
}

type testPublisherMocks struct {
	ctrl   *gomock.Controller
	natsJS *mocks.MockNatsJetStream
	nc     *mocks.MockNatsConn
	js     *mocks.MockJetStream
}

func setupTestPublisher(t *testing.T) *testPublisherMocks {
	ctrl := gomock.NewController(t)

	return &testPublisherMocks{
		ctrl:   ctrl,
		natsJS: mocks.NewMockNatsJetStream(ctrl),
		nc:     mocks.NewMockNatsConn(ctrl),
		js:     mocks.NewMockJetStream(ctrl),
	}
}

func tearDownTestPublisher(tm *testPublisherMocks) {
	tm.ctrl.Finish()
}

func TestNewPublisher_EnsuresStream(t *testing.T) {
	tm := setupTestPublisher(t)
	defer tearDownTestPublisher(tm)

	tm.natsJS.EXPECT().
		Connect("nats://localhost:4222", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(tm.nc, tm.js, nil)
	tm.js.EXPECT().
		CreateOrUpdateStream(gomock.Any(), natsjs.StreamConfig{
			Name:     "MARKET_EVENTS",
			Subjects: []string{"market.>"},
			Storage:  natsjs.FileStorage,
		}).
		Return(nil)

	publisher, err := jetstream.NewPublisher(context.Background(), testPublisherConfig(), tm.natsJS)
	assert.NoError(t, err)
	assert.NotNil(t, publisher)

	tm.nc.EXPECT().Close()
	publisher.Close()
}

func TestNewPublisher_StreamFailureClosesConnection(t *testing.T) {
	tm := setupTestPublisher(t)
	defer tearDownTestPublisher(tm)

	tm.natsJS.EXPECT().
		Connect(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(tm.nc, tm.js, nil)
	tm.js.EXPECT().CreateOrUpdateStream(gomock.Any(), gomock.Any()).Return(assert.AnError)
	tm.nc.EXPECT().Close()

	publisher, err := jetstream.NewPublisher(context.Background(), testPublisherConfig(), tm.natsJS)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, publisher)
}

func TestNewPublisher_ConnectError(t *testing.T) {
	tm := setupTestPublisher(t)
	defer tearDownTestPublisher(tm)

	tm.natsJS.EXPECT().
		Connect(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil, natsgo.ErrNoServers)

	publisher, err := jetstream.NewPublisher(context.Background(), testPublisherConfig(), tm.natsJS)
	assert.ErrorIs(t, err, natsgo.ErrNoServers)
	assert.Nil(t, publisher)
}

func TestPublisher_PublishEvent(t *testing.T) {
	tm := setupTestPublisher(t)
	defer tearDownTestPublisher(tm)

	tm.natsJS.EXPECT().
		Connect(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(tm.nc, tm.js, nil)
	tm.js.EXPECT().CreateOrUpdateStream(gomock.Any(), gomock.Any()).Return(nil)

	publisher, err := jetstream.NewPublisher(context.Background(), testPublisherConfig(), tm.natsJS)
	assert.NoError(t, err)

	event := &domain.MarketEvent{
		Chain:        domain.Chain("eip155:1"),
		EventType:    domain.EventTypeTokensPurchased,
		TokenAddress: "0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
		Amount:       "100",
		Price:        "250000",
		TxHash:       "0xdeadbeef",
	}

	// CAIP-2 colons are folded into the subject separator-safe form
	tm.js.EXPECT().
		Publish(gomock.Any(), "market.eip155-1.tokens_purchased", gomock.Any()).
		DoAndReturn(func(ctx context.Context, subject string, data []byte, opts ...natsjs.PublishOpt) (*natsjs.PubAck, error) {
			var decoded domain.MarketEvent
			assert.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, event.EventType, decoded.EventType)
			assert.Equal(t, event.Amount, decoded.Amount)
			return &natsjs.PubAck{Stream: "MARKET_EVENTS"}, nil
		})

	assert.NoError(t, publisher.PublishEvent(context.Background(), event))
}

func TestPublisher_PublishEventError(t *testing.T) {
	tm := setupTestPublisher(t)
	defer tearDownTestPublisher(tm)

	tm.natsJS.EXPECT().
		Connect(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(tm.nc, tm.js, nil)
	tm.js.EXPECT().CreateOrUpdateStream(gomock.Any(), gomock.Any()).Return(nil)

	publisher, err := jetstream.NewPublisher(context.Background(), testPublisherConfig(), tm.natsJS)
	assert.NoError(t, err)

	tm.js.EXPECT().
		Publish(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	event := &domain.MarketEvent{
		Chain:     domain.Chain("eip155-31337"),
		EventType: domain.EventTypeStaked,
	}
	assert.ErrorIs(t, publisher.PublishEvent(context.Background(), event), assert.AnError)
}
