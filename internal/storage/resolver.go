package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/patentdex/patentdex/internal/adapter"
	"github.com/patentdex/patentdex/internal/logger"
)

// ResolverConfig holds configuration for the metadata resolver
type ResolverConfig struct {
	// IPFSGateways is the list of IPFS gateways to race
	IPFSGateways []string
}

// Resolver defines the interface for reading pinned JSON documents back
// from public IPFS gateways
//
//go:generate mockgen -source=resolver.go -destination=../mocks/resolver.go -package=mocks -mock_names=Resolver=MockResolver
type Resolver interface {
	// FetchJSON fetches the JSON document behind a CID into out
	// All configured gateways are tried in parallel and the first
	// successful response wins
	FetchJSON(ctx context.Context, cid string, out interface{}) error
}

type resolver struct {
	httpClient adapter.HTTPClient
	config     *ResolverConfig
}

func NewResolver(httpClient adapter.HTTPClient, config *ResolverConfig) Resolver {
	return &resolver{
		httpClient: httpClient,
		config:     config,
	}
}

func (r *resolver) FetchJSON(ctx context.Context, cid string, out interface{}) error {
	cid = strings.TrimPrefix(strings.TrimSpace(cid), "ipfs://")
	if cid == "" {
		return fmt.Errorf("cid is required")
	}
	if len(r.config.IPFSGateways) == 0 {
		return fmt.Errorf("no IPFS gateways configured")
	}

	logger.InfoCtx(ctx, "Fetching pinned JSON", zap.String("cid", cid), zap.Int("gateways", len(r.config.IPFSGateways)))

	// Try all gateways in parallel
	type result struct {
		body json.RawMessage
		err  error
	}

	resultCh := make(chan result, len(r.config.IPFSGateways))
	var wg sync.WaitGroup

	for _, gateway := range r.config.IPFSGateways {
		wg.Add(1)
		go func(gw string) {
			defer wg.Done()

			url := fmt.Sprintf("%s/ipfs/%s", strings.TrimRight(gw, "/"), cid)
			var body json.RawMessage
			if err := r.httpClient.Get(ctx, url, nil, &body); err != nil {
				resultCh <- result{err: err}
				return
			}
			resultCh <- result{body: body}
		}(gateway)
	}

	// Wait for all goroutines in a separate goroutine
	go func() {
		wg.Wait()
		close(resultCh)
	}()

	// Return the first successful result
	for res := range resultCh {
		if res.err == nil {
			return json.Unmarshal(res.body, out)
		}
	}

	return fmt.Errorf("no working IPFS gateway found for CID: %s", cid)
}
