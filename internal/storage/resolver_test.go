package storage_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/patentdex/patentdex/internal/mocks"
	"github.com/patentdex/patentdex/internal/storage"
)

type metaDoc struct {
	Title string `json:"title"`
}

func TestResolver_FetchJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	httpClient := mocks.NewMockHTTPClient(ctrl)
	resolver := storage.NewResolver(httpClient, &storage.ResolverConfig{
		IPFSGateways: []string{"https://gateway.pinata.cloud/"},
	})

	httpClient.EXPECT().
		Get(gomock.Any(), "https://gateway.pinata.cloud/ipfs/QmMeta", gomock.Nil(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ map[string]string, result interface{}) error {
			*(result.(*json.RawMessage)) = json.RawMessage(`{"title":"Gene Editing Method"}`)
			return nil
		})

	var doc metaDoc
	err := resolver.FetchJSON(context.Background(), "QmMeta", &doc)
	assert.NoError(t, err)
	assert.Equal(t, "Gene Editing Method", doc.Title)
}

func TestResolver_FetchJSON_FirstGatewayFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	httpClient := mocks.NewMockHTTPClient(ctrl)
	resolver := storage.NewResolver(httpClient, &storage.ResolverConfig{
		IPFSGateways: []string{"https://ipfs.io", "https://dweb.link"},
	})

	httpClient.EXPECT().
		Get(gomock.Any(), "https://ipfs.io/ipfs/QmMeta", gomock.Nil(), gomock.Any()).
		Return(assert.AnError)
	httpClient.EXPECT().
		Get(gomock.Any(), "https://dweb.link/ipfs/QmMeta", gomock.Nil(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ map[string]string, result interface{}) error {
			*(result.(*json.RawMessage)) = json.RawMessage(`{"title":"Backup"}`)
			return nil
		})

	var doc metaDoc
	err := resolver.FetchJSON(context.Background(), "ipfs://QmMeta", &doc)
	assert.NoError(t, err)
	assert.Equal(t, "Backup", doc.Title)
}

func TestResolver_FetchJSON_AllGatewaysFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	httpClient := mocks.NewMockHTTPClient(ctrl)
	resolver := storage.NewResolver(httpClient, &storage.ResolverConfig{
		IPFSGateways: []string{"https://ipfs.io", "https://dweb.link"},
	})

	httpClient.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Nil(), gomock.Any()).
		Return(assert.AnError).
		Times(2)

	var doc metaDoc
	err := resolver.FetchJSON(context.Background(), "QmMeta", &doc)
	assert.ErrorContains(t, err, "no working IPFS gateway")
}

func TestResolver_FetchJSON_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	httpClient := mocks.NewMockHTTPClient(ctrl)

	var doc metaDoc

	resolver := storage.NewResolver(httpClient, &storage.ResolverConfig{
		IPFSGateways: []string{"https://ipfs.io"},
	})
	assert.Error(t, resolver.FetchJSON(context.Background(), "  ", &doc))

	bare := storage.NewResolver(httpClient, &storage.ResolverConfig{})
	assert.ErrorContains(t, bare.FetchJSON(context.Background(), "QmMeta", &doc), "no IPFS gateways configured")
}
