package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/patentdex/patentdex/internal/adapter"
	"github.com/patentdex/patentdex/internal/config"
	"github.com/patentdex/patentdex/internal/emitter"
	"github.com/patentdex/patentdex/internal/logger"
	"github.com/patentdex/patentdex/internal/providers/jetstream"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadEmitterConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "trade-event-emitter",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting trade event emitter")

	// Connect to the chain over websocket for log subscriptions
	clock := adapter.NewClock()
	dialer := adapter.NewEthClientDialer()
	eth, err := dialer.Dial(ctx, cfg.Ethereum.WebSocketURL)
	if err != nil {
		logger.Fatal("Failed to connect to chain", zap.Error(err),
			zap.String("url", cfg.Ethereum.WebSocketURL))
	}
	defer eth.Close()

	// Connect the JetStream publisher
	publisher, err := jetstream.NewPublisher(ctx, jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	}, adapter.NewNatsJetStream())
	if err != nil {
		logger.Fatal("Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer publisher.Close()

	var watched []common.Address
	for _, addr := range []string{cfg.Contracts.Registry, cfg.Contracts.Factory, cfg.Contracts.Staking} {
		if addr != "" {
			watched = append(watched, common.HexToAddress(addr))
		}
	}

	em := emitter.New(emitter.Config{
		ChainID:    cfg.Ethereum.ChainID,
		StartBlock: cfg.Ethereum.StartBlock,
		Contracts:  watched,
	}, eth, clock, publisher)

	// Run the emitter in a goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- em.Run(ctx)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
		<-errCh
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error(err, zap.String("component", "emitter"))
		}
		cancel()
	}

	logger.Info("Trade event emitter stopped")
}
