package async

import (
	"context"

	"github.com/yourorg/wallet-token-ea/internal/model"
	"github.com/yourorg/wallet-token-ea/internal/tokens"
)

// Client exposes the token queries as single-result channels
type Client struct {
	service *tokens.Service
}

// NewClient creates a new async client over service
func NewClient(service *tokens.Service) *Client {
	return &Client{service: service}
}

// Service returns the wrapped query service
func (c *Client) Service() *tokens.Service {
	return c.service
}

// UserAssetsFiltered runs Service.UserAssetsFiltered and delivers its result on the returned channel
func (c *Client) UserAssetsFiltered(ctx context.Context, network model.NetworkInfo, coin model.CoinType, tokenType model.TokenType) <-chan Result[[]model.BlockchainToken] {
	return Run(ctx, func(ctx context.Context) ([]model.BlockchainToken, error) {
		return c.service.UserAssetsFiltered(ctx, network, coin, tokenType)
	})
}

// AllTokens runs Service.AllTokens and delivers its result on the returned channel
func (c *Client) AllTokens(ctx context.Context, chainID string, coin model.CoinType) <-chan Result[[]model.BlockchainToken] {
	return Run(ctx, func(ctx context.Context) ([]model.BlockchainToken, error) {
		return c.service.AllTokens(ctx, chainID, coin)
	})
}

// AllTokensFiltered runs Service.AllTokensFiltered and delivers its result on the returned channel
func (c *Client) AllTokensFiltered(ctx context.Context, network model.NetworkInfo, coin model.CoinType, tokenType model.TokenType) <-chan Result[[]model.BlockchainToken] {
	return Run(ctx, func(ctx context.Context) ([]model.BlockchainToken, error) {
		return c.service.AllTokensFiltered(ctx, network, coin, tokenType)
	})
}

// UserOrAllTokensFiltered runs Service.UserOrAllTokensFiltered and delivers its result on the returned channel
func (c *Client) UserOrAllTokensFiltered(ctx context.Context, network model.NetworkInfo, coin model.CoinType, tokenType model.TokenType, userOnly bool) <-chan Result[[]model.BlockchainToken] {
	return Run(ctx, func(ctx context.Context) ([]model.BlockchainToken, error) {
		return c.service.UserOrAllTokensFiltered(ctx, network, coin, tokenType, userOnly)
	})
}

// BuyTokensFiltered runs Service.BuyTokensFiltered and delivers its result on the returned channel
func (c *Client) BuyTokensFiltered(ctx context.Context, network model.NetworkInfo, tokenType model.TokenType, providers []model.OnRampProvider) <-chan Result[[]model.BlockchainToken] {
	return Run(ctx, func(ctx context.Context) ([]model.BlockchainToken, error) {
		return c.service.BuyTokensFiltered(ctx, network, tokenType, providers)
	})
}

// IsCustomToken runs Service.IsCustomToken and delivers its result on the returned channel
func (c *Client) IsCustomToken(ctx context.Context, network model.NetworkInfo, coin model.CoinType, token model.BlockchainToken) <-chan Result[bool] {
	return Run(ctx, func(ctx context.Context) (bool, error) {
		return c.service.IsCustomToken(ctx, network, coin, token)
	})
}

// ExactUserAsset runs Service.ExactUserAsset and delivers its result on the returned channel
func (c *Client) ExactUserAsset(ctx context.Context, network model.NetworkInfo, coin model.CoinType, query tokens.ExactAssetQuery) <-chan Result[*model.BlockchainToken] {
	return Run(ctx, func(ctx context.Context) (*model.BlockchainToken, error) {
		return c.service.ExactUserAsset(ctx, network, coin, query)
	})
}
