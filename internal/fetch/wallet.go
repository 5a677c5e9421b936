package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/yourorg/wallet-token-ea/internal/config"
	"github.com/yourorg/wallet-token-ea/internal/model"
)

// WalletClient implements Wallet over the wallet service's HTTP API
type WalletClient struct {
	baseURL    string
	httpClient *http.Client
	apiKey     string
}

// NewWalletClient creates a wallet client from configuration
func NewWalletClient(cfg config.Config) *WalletClient {
	return &WalletClient{
		baseURL:    cfg.WalletURL,
		httpClient: StandardClient(newRetryClient()),
		apiKey:     cfg.APIKey("wallet"),
	}
}

// GetUserAssets fetches the user's saved assets for a chain
func (c *WalletClient) GetUserAssets(ctx context.Context, chainID string, coin model.CoinType) ([]model.BlockchainToken, error) {
	endpoint := fmt.Sprintf("%s/v1/wallet/%s/assets?coin=%d", c.baseURL, url.PathEscape(chainID), coin)
	return getTokenList(ctx, c.httpClient, "wallet", endpoint, c.apiKey)
}
