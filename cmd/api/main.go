package main

import (
	"context"
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
	"github.com/patentdex/patentdex/internal/api/middleware"
	"github.com/patentdex/patentdex/internal/api/rest"
	"github.com/patentdex/patentdex/internal/api/server"
	"github.com/patentdex/patentdex/internal/config"
	"github.com/patentdex/patentdex/internal/contracts"
	"github.com/patentdex/patentdex/internal/gateway"
	"github.com/patentdex/patentdex/internal/logger"
	"github.com/patentdex/patentdex/internal/patents"
	"github.com/patentdex/patentdex/internal/quote"
	"github.com/patentdex/patentdex/internal/reconcile"
	"github.com/patentdex/patentdex/internal/storage"
	"github.com/patentdex/patentdex/internal/trade"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
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
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting PatentDEX API")

	// Initialize adapters
	clock := adapter.NewClock()
	dialer := adapter.NewEthClientDialer()
	httpClient := adapter.NewHTTPClient(60 * time.Second)
	wallet := adapter.NewKeystoreWallet(cfg.Wallet.KeystoreDir, cfg.Wallet.Password)

	// Connect the chain gateway
	gw := gateway.New(dialer, wallet, clock, cfg.Ethereum.RPCURL)
	if err := gw.Connect(ctx); err != nil {
		logger.Fatal("Failed to connect chain gateway", zap.Error(err))
	}
	defer gw.Close()

	// Bind contract proxies
	registry := contracts.NewRegistry(gw, common.HexToAddress(cfg.Contracts.Registry))
	factory := contracts.NewFactory(gw, common.HexToAddress(cfg.Contracts.Factory))
	staking := contracts.NewStaking(gw, common.HexToAddress(cfg.Contracts.Staking))

	// Wire services
	store := storage.NewPinataStore(httpClient, storage.Config{
		BaseURL:    cfg.Pinata.BaseURL,
		GatewayURL: cfg.Pinata.GatewayURL,
		JWT:        cfg.Pinata.JWT,
		APIKey:     cfg.Pinata.APIKey,
		APISecret:  cfg.Pinata.APISecret,
	})
	resolver := storage.NewResolver(httpClient, &storage.ResolverConfig{
		IPFSGateways: cfg.IPFS.Gateways,
	})
	patentSvc := patents.NewService(gw, registry, factory, staking, store, resolver)
	quotes := quote.NewEngine(clock)
	rec := reconcile.New(clock)
	// Sells burn from the seller directly; no spender approval is needed.
	// The staking vault's approval is handled by the patent service.
	sessions := trade.NewManager(gw, quotes, rec, clock, common.Address{}, func(tokenAddr common.Address) {
		logger.Info("suggesting tokenization for untokenized patent",
			zap.String("token", tokenAddr.Hex()))
	})
	defer sessions.Close()

	handler := rest.NewHandler(gw, patentSvc, sessions, rec, store)

	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	srv := server.New(serverConfig, handler)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}
