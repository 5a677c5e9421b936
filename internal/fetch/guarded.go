package fetch

import (
	"context"
	"errors"
	"net/http"

	"github.com/yourorg/wallet-token-ea/internal/circuitbreaker"
	"github.com/yourorg/wallet-token-ea/internal/model"
)

// IsBackendFailure reports whether err says something about the backend's
// health. Client errors (4xx other than 429) and calls cancelled by the
// caller are not backend failures.
func IsBackendFailure(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status >= http.StatusInternalServerError || se.Status == http.StatusTooManyRequests
	}
	return true
}

// GuardedRegistry routes Registry calls through a circuit breaker
type GuardedRegistry struct {
	next    Registry
	breaker *circuitbreaker.CircuitBreaker
}

// NewGuardedRegistry wraps next with breaker
func NewGuardedRegistry(next Registry, breaker *circuitbreaker.CircuitBreaker) *GuardedRegistry {
	return &GuardedRegistry{next: next, breaker: breaker}
}

// Breaker exposes the breaker for status reporting
func (g *GuardedRegistry) Breaker() *circuitbreaker.CircuitBreaker {
	return g.breaker
}

// GetAllTokens calls the wrapped registry unless the breaker is open
func (g *GuardedRegistry) GetAllTokens(ctx context.Context, chainID string, coin model.CoinType) ([]model.BlockchainToken, error) {
	var out []model.BlockchainToken
	err := g.breaker.ExecuteClassified(func() error {
		var err error
		out, err = g.next.GetAllTokens(ctx, chainID, coin)
		return err
	}, IsBackendFailure)
	return out, err
}

// GetProvidersBuyTokens calls the wrapped registry unless the breaker is open
func (g *GuardedRegistry) GetProvidersBuyTokens(ctx context.Context, providers []model.OnRampProvider, chainID string) ([]model.BlockchainToken, error) {
	var out []model.BlockchainToken
	err := g.breaker.ExecuteClassified(func() error {
		var err error
		out, err = g.next.GetProvidersBuyTokens(ctx, providers, chainID)
		return err
	}, IsBackendFailure)
	return out, err
}

// GuardedWallet routes Wallet calls through a circuit breaker
type GuardedWallet struct {
	next    Wallet
	breaker *circuitbreaker.CircuitBreaker
}

// NewGuardedWallet wraps next with breaker
func NewGuardedWallet(next Wallet, breaker *circuitbreaker.CircuitBreaker) *GuardedWallet {
	return &GuardedWallet{next: next, breaker: breaker}
}

// Breaker exposes the breaker for status reporting
func (g *GuardedWallet) Breaker() *circuitbreaker.CircuitBreaker {
	return g.breaker
}

// GetUserAssets calls the wrapped wallet unless the breaker is open
func (g *GuardedWallet) GetUserAssets(ctx context.Context, chainID string, coin model.CoinType) ([]model.BlockchainToken, error) {
	var out []model.BlockchainToken
	err := g.breaker.ExecuteClassified(func() error {
		var err error
		out, err = g.next.GetUserAssets(ctx, chainID, coin)
		return err
	}, IsBackendFailure)
	return out, err
}
