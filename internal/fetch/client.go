// Package fetch provides clients for the token registry and wallet backends.
package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"

	"github.com/yourorg/wallet-token-ea/internal/model"
)

// Registry serves the canonical token lists of each chain
type Registry interface {
	// GetAllTokens returns every token the registry knows for a chain
	GetAllTokens(ctx context.Context, chainID string, coin model.CoinType) ([]model.BlockchainToken, error)

	// GetProvidersBuyTokens returns the tokens the given on-ramps sell on a chain
	GetProvidersBuyTokens(ctx context.Context, providers []model.OnRampProvider, chainID string) ([]model.BlockchainToken, error)
}

// Wallet serves the assets a user has saved
type Wallet interface {
	GetUserAssets(ctx context.Context, chainID string, coin model.CoinType) ([]model.BlockchainToken, error)
}

// StatusError is returned when a backend answers with a non-200 status
type StatusError struct {
	Backend string
	Status  int
	Body    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s API error: status %d, body: %s", e.Backend, e.Status, e.Body)
}

// IsStatus reports whether err carries a backend StatusError with the given status
func IsStatus(err error, status int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == status
}

// tokenListResponse is the body shape shared by all token list endpoints
type tokenListResponse struct {
	Tokens []model.BlockchainToken `json:"tokens"`
}

// newRetryClient creates a new HTTP client with retry capabilities
func newRetryClient() *retryablehttp.Client {
	c := retryablehttp.NewClient()
	c.RetryMax = 3
	c.RetryWaitMin = 200 * time.Millisecond
	c.RetryWaitMax = 2 * time.Second
	c.Logger = nil
	return c
}

// StandardClient converts a retryablehttp.Client to a standard http.Client
func StandardClient(retryClient *retryablehttp.Client) *http.Client {
	return retryClient.StandardClient()
}

// getTokenList performs a GET against url and decodes a token list body
func getTokenList(ctx context.Context, httpClient *http.Client, backend, url, apiKey string) ([]model.BlockchainToken, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}

	start := time.Now()
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching data from %s: %w", backend, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &StatusError{Backend: backend, Status: resp.StatusCode, Body: string(body)}
	}

	var response tokenListResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("error decoding %s response: %w", backend, err)
	}

	logrus.WithFields(logrus.Fields{
		"backend":  backend,
		"url":      url,
		"tokens":   len(response.Tokens),
		"duration": time.Since(start),
	}).Debug("Fetched token list")

	if response.Tokens == nil {
		return []model.BlockchainToken{}, nil
	}
	return response.Tokens, nil
}
