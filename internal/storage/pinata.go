package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/patentdex/patentdex/internal/adapter"
	"github.com/patentdex/patentdex/internal/logger"
)

// Store pins patent documents and their metadata to content-addressed
// storage. The returned CID is what the registry records as the patent's
// content hash.
//
//go:generate mockgen -source=pinata.go -destination=../mocks/storage.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// PinFile pins a document and returns its CID
	PinFile(ctx context.Context, name string, r io.Reader) (string, error)

	// PinJSON pins a metadata object and returns its CID
	PinJSON(ctx context.Context, name string, v interface{}) (string, error)

	// Unpin removes a CID
	Unpin(ctx context.Context, cid string) error

	// GatewayURL composes a public gateway URL for a CID
	GatewayURL(cid string) string
}

// Config holds Pinata credentials and endpoints. A JWT takes precedence
// over the key/secret pair.
type Config struct {
	BaseURL    string
	GatewayURL string
	JWT        string
	APIKey     string
	APISecret  string
}

type pinataStore struct {
	http        adapter.HTTPClient
	baseURL     string
	gatewayBase string
	headers     map[string]string
}

type pinResponse struct {
	IpfsHash string `json:"IpfsHash"`
}

// NewPinataStore creates a Pinata-backed store.
func NewPinataStore(httpClient adapter.HTTPClient, cfg Config) Store {
	headers := make(map[string]string)
	if jwt := strings.TrimSpace(cfg.JWT); jwt != "" {
		if !strings.HasPrefix(strings.ToLower(jwt), "bearer ") {
			jwt = "Bearer " + jwt
		}
		headers["Authorization"] = jwt
	} else {
		headers["pinata_api_key"] = cfg.APIKey
		headers["pinata_secret_api_key"] = cfg.APISecret
	}

	return &pinataStore{
		http:        httpClient,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		gatewayBase: strings.TrimRight(cfg.GatewayURL, "/"),
		headers:     headers,
	}
}

func (s *pinataStore) PinFile(ctx context.Context, name string, r io.Reader) (string, error) {
	if r == nil {
		return "", fmt.Errorf("reader is nil")
	}
	if name == "" {
		name = "document"
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile("file", filepath.Base(name))
	if err != nil {
		return "", fmt.Errorf("failed to create multipart file: %w", err)
	}
	if _, err := io.Copy(fw, r); err != nil {
		return "", fmt.Errorf("failed to copy document: %w", err)
	}

	meta, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return "", err
	}
	if err := mw.WriteField("pinataMetadata", string(meta)); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	respBody, err := s.http.Post(ctx, s.baseURL+"/pinning/pinFileToIPFS", mw.FormDataContentType(), s.headers, &buf)
	if err != nil {
		return "", fmt.Errorf("failed to pin file: %w", err)
	}

	var resp pinResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("failed to decode pin response: %w", err)
	}

	logger.Debug("document pinned", zap.String("name", name), zap.String("cid", resp.IpfsHash))
	return resp.IpfsHash, nil
}

func (s *pinataStore) PinJSON(ctx context.Context, name string, v interface{}) (string, error) {
	content, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal metadata: %w", err)
	}

	payload, err := json.Marshal(map[string]interface{}{
		"pinataContent":  json.RawMessage(content),
		"pinataMetadata": map[string]string{"name": name},
	})
	if err != nil {
		return "", err
	}

	respBody, err := s.http.Post(ctx, s.baseURL+"/pinning/pinJSONToIPFS", "application/json", s.headers, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to pin metadata: %w", err)
	}

	var resp pinResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("failed to decode pin response: %w", err)
	}

	logger.Debug("metadata pinned", zap.String("name", name), zap.String("cid", resp.IpfsHash))
	return resp.IpfsHash, nil
}

func (s *pinataStore) Unpin(ctx context.Context, cid string) error {
	if strings.TrimSpace(cid) == "" {
		return fmt.Errorf("cid is required")
	}
	return s.http.Delete(ctx, s.baseURL+"/pinning/unpin/"+url.PathEscape(cid), s.headers)
}

func (s *pinataStore) GatewayURL(cid string) string {
	if s.gatewayBase == "" || cid == "" {
		return ""
	}
	return s.gatewayBase + "/ipfs/" + cid
}
