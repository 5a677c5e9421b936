package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/yourorg/wallet-token-ea/internal/config"
	"github.com/yourorg/wallet-token-ea/internal/model"
)

// RegistryClient implements Registry over the registry service's HTTP API
type RegistryClient struct {
	baseURL    string
	httpClient *http.Client
	apiKey     string
}

// NewRegistryClient creates a registry client from configuration
func NewRegistryClient(cfg config.Config) *RegistryClient {
	return &RegistryClient{
		baseURL:    cfg.RegistryURL,
		httpClient: StandardClient(newRetryClient()),
		apiKey:     cfg.APIKey("registry"),
	}
}

// GetAllTokens fetches the registry's token list for a chain
func (c *RegistryClient) GetAllTokens(ctx context.Context, chainID string, coin model.CoinType) ([]model.BlockchainToken, error) {
	endpoint := fmt.Sprintf("%s/v1/registry/%s/tokens?coin=%d", c.baseURL, url.PathEscape(chainID), coin)
	return getTokenList(ctx, c.httpClient, "registry", endpoint, c.apiKey)
}

// GetProvidersBuyTokens fetches the tokens sold by the given on-ramps
func (c *RegistryClient) GetProvidersBuyTokens(ctx context.Context, providers []model.OnRampProvider, chainID string) ([]model.BlockchainToken, error) {
	ids := make([]string, len(providers))
	for i, p := range providers {
		ids[i] = strconv.Itoa(int(p))
	}

	endpoint := fmt.Sprintf("%s/v1/registry/%s/buy-tokens?providers=%s",
		c.baseURL, url.PathEscape(chainID), url.QueryEscape(strings.Join(ids, ",")))
	return getTokenList(ctx, c.httpClient, "registry", endpoint, c.apiKey)
}
