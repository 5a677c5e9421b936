// Package cache keeps recent registry answers in memory.
package cache

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/yourorg/wallet-token-ea/internal/fetch"
	"github.com/yourorg/wallet-token-ea/internal/model"
)

// TokenCache is a read-through cache in front of a fetch.Registry.
// Registry lists change rarely, so entries live for the configured TTL.
type TokenCache struct {
	next       fetch.Registry
	localCache *gocache.Cache
}

// NewTokenCache wraps next. A non-positive ttl falls back to ten minutes.
func NewTokenCache(next fetch.Registry, ttl time.Duration) *TokenCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &TokenCache{
		next:       next,
		localCache: gocache.New(ttl, time.Minute),
	}
}

func allTokensKey(chainID string, coin model.CoinType) string {
	return fmt.Sprintf("all:%s:%d", chainID, coin)
}

// buyTokensKey ignores provider order so {0,1} and {1,0} share an entry
func buyTokensKey(chainID string, providers []model.OnRampProvider) string {
	ids := make([]string, len(providers))
	for i, p := range providers {
		ids[i] = strconv.Itoa(int(p))
	}
	sort.Strings(ids)
	return fmt.Sprintf("buy:%s:%s", chainID, strings.Join(ids, ","))
}

// GetAllTokens serves the chain's token list from memory, fetching it on a miss
func (c *TokenCache) GetAllTokens(ctx context.Context, chainID string, coin model.CoinType) ([]model.BlockchainToken, error) {
	return c.load(allTokensKey(chainID, coin), func() ([]model.BlockchainToken, error) {
		return c.next.GetAllTokens(ctx, chainID, coin)
	})
}

// GetProvidersBuyTokens serves the buy list from memory, fetching it on a miss
func (c *TokenCache) GetProvidersBuyTokens(ctx context.Context, providers []model.OnRampProvider, chainID string) ([]model.BlockchainToken, error) {
	return c.load(buyTokensKey(chainID, providers), func() ([]model.BlockchainToken, error) {
		return c.next.GetProvidersBuyTokens(ctx, providers, chainID)
	})
}

// Flush drops every cached list
func (c *TokenCache) Flush() {
	c.localCache.Flush()
}

// ItemCount returns the number of cached lists, expired ones included
func (c *TokenCache) ItemCount() int {
	return c.localCache.ItemCount()
}

// load serves key from memory or calls fetchFn and stores a copy of its
// result. Errors are never cached.
func (c *TokenCache) load(key string, fetchFn func() ([]model.BlockchainToken, error)) ([]model.BlockchainToken, error) {
	if cached, found := c.localCache.Get(key); found {
		if list, ok := cached.([]model.BlockchainToken); ok {
			logrus.WithField("key", key).Debug("Registry cache hit")
			return cloneTokens(list), nil
		}
	}

	list, err := fetchFn()
	if err != nil {
		return nil, err
	}

	c.localCache.Set(key, cloneTokens(list), gocache.DefaultExpiration)
	return list, nil
}

func cloneTokens(list []model.BlockchainToken) []model.BlockchainToken {
	out := make([]model.BlockchainToken, len(list))
	copy(out, list)
	return out
}
