package fetch

import (
	"context"
	"sync"

	"github.com/yourorg/wallet-token-ea/internal/model"
)

// StaticRegistry is an in-process Registry backed by a fixed catalog. It is
// used when no registry service is configured.
type StaticRegistry struct {
	mu        sync.RWMutex
	tokens    map[string][]model.BlockchainToken
	buyTokens map[string][]buyEntry
}

type buyEntry struct {
	token     model.BlockchainToken
	providers []model.OnRampProvider
}

// NewStaticRegistry creates a registry seeded with the default catalog
func NewStaticRegistry() *StaticRegistry {
	r := &StaticRegistry{
		tokens:    map[string][]model.BlockchainToken{},
		buyTokens: map[string][]buyEntry{},
	}

	for _, t := range defaultCatalog {
		r.tokens[t.ChainID] = append(r.tokens[t.ChainID], t)
	}

	allRamps := []model.OnRampProvider{model.OnRampRamp, model.OnRampWyre, model.OnRampSardine, model.OnRampTransak}
	for _, t := range defaultCatalog {
		providers := allRamps
		if t.Coin == model.CoinSOL {
			providers = []model.OnRampProvider{model.OnRampRamp}
		}
		r.AddBuyToken(t, providers...)
	}
	r.AddBuyToken(model.BlockchainToken{
		Name: "Ethereum", Symbol: "ETH", Decimals: 18, Visible: true, ChainID: "0x1", Coin: model.CoinETH,
	}, allRamps...)

	return r
}

// AddToken appends a token to a chain's list
func (r *StaticRegistry) AddToken(t model.BlockchainToken) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[t.ChainID] = append(r.tokens[t.ChainID], t)
}

// AddBuyToken marks t as purchasable through the given providers
func (r *StaticRegistry) AddBuyToken(t model.BlockchainToken, providers ...model.OnRampProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buyTokens[t.ChainID] = append(r.buyTokens[t.ChainID], buyEntry{token: t, providers: providers})
}

// GetAllTokens returns a copy of the chain's catalog. The coin filter only
// applies to tokens that declare a coin.
func (r *StaticRegistry) GetAllTokens(ctx context.Context, chainID string, coin model.CoinType) ([]model.BlockchainToken, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.BlockchainToken, 0, len(r.tokens[chainID]))
	for _, t := range r.tokens[chainID] {
		if t.Coin == 0 || t.Coin == coin {
			out = append(out, t)
		}
	}
	return out, nil
}

// GetProvidersBuyTokens returns the chain's tokens sold by at least one of providers
func (r *StaticRegistry) GetProvidersBuyTokens(ctx context.Context, providers []model.OnRampProvider, chainID string) ([]model.BlockchainToken, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.BlockchainToken, 0)
	for _, entry := range r.buyTokens[chainID] {
		if soldByAny(entry.providers, providers) {
			out = append(out, entry.token)
		}
	}
	return out, nil
}

func soldByAny(sellers, wanted []model.OnRampProvider) bool {
	for _, w := range wanted {
		for _, s := range sellers {
			if s == w {
				return true
			}
		}
	}
	return false
}

func erc20(chainID, contract, name, symbol string, decimals int32, coingeckoID string) model.BlockchainToken {
	return model.BlockchainToken{
		ContractAddress: contract,
		Name:            name,
		IsErc20:         true,
		Symbol:          symbol,
		Decimals:        decimals,
		Visible:         true,
		CoingeckoID:     coingeckoID,
		ChainID:         chainID,
		Coin:            model.CoinETH,
	}
}

// defaultCatalog mirrors the well-known mainnet tokens the wallet ships with.
// Goerli carries mainnet addresses on purpose; the registry fixup corrects them.
var defaultCatalog = []model.BlockchainToken{
	erc20("0x1", "0x0D8775F648430679A709E98d2b0Cb6250d2887EF", "Basic Attention Token", "BAT", 18, "basic-attention-token"),
	erc20("0x1", "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", "USD Coin", "USDC", 6, "usd-coin"),
	erc20("0x1", "0x6B175474E89094C44Da98b954EedeAC495271d0F", "DAI", "DAI", 18, "dai"),
	erc20("0x1", "0x514910771AF9Ca656af840dff83E8264EcF986CA", "Chainlink", "LINK", 18, "chainlink"),
	erc20("0x1", "0x1f9840a85d5aF5bf1D1762F925BDADdC4201F984", "Uniswap", "UNI", 18, "uniswap"),
	erc20("0x1", "0xdAC17F958D2ee523a2206206994597C13D831ec7", "Tether", "USDT", 6, "tether"),
	erc20("0x1", "0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599", "Wrapped Bitcoin", "WBTC", 8, "wrapped-bitcoin"),
	erc20("0x5", "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", "USD Coin", "USDC", 6, "usd-coin"),
	erc20("0x5", "0x6B175474E89094C44Da98b954EedeAC495271d0F", "DAI", "DAI", 18, "dai"),
	{
		ContractAddress: "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
		Name:            "USD Coin",
		Symbol:          "USDC",
		Decimals:        6,
		Visible:         true,
		CoingeckoID:     "usd-coin",
		ChainID:         "0x65",
		Coin:            model.CoinSOL,
	},
}
