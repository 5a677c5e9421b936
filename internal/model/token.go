// Package model defines the token and network descriptors that flow through the service.
package model

import (
	"fmt"
	"strconv"
	"strings"
)

// CoinType identifies the coin family of a token or network (SLIP-44 values).
type CoinType int32

const (
	CoinETH CoinType = 60
	CoinFIL CoinType = 461
	CoinSOL CoinType = 501
)

// String returns the short ticker-style name of the coin family
func (c CoinType) String() string {
	switch c {
	case CoinETH:
		return "eth"
	case CoinFIL:
		return "fil"
	case CoinSOL:
		return "sol"
	default:
		return "unknown"
	}
}

// ParseCoinType accepts a SLIP-44 number ("60") or a short name ("eth")
func ParseCoinType(s string) (CoinType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range []CoinType{CoinETH, CoinFIL, CoinSOL} {
		if s == c.String() || s == strconv.Itoa(int(c)) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unsupported coin type %q", s)
}

// BlockchainToken describes a native coin, fungible token or NFT on a chain.
// Values are treated as immutable; every list operation returns new slices.
type BlockchainToken struct {
	// ContractAddress is empty for the chain's native asset
	ContractAddress string `json:"contract_address"`
	Name            string `json:"name"`
	Logo            string `json:"logo,omitempty"`
	IsErc20         bool   `json:"is_erc20"`
	IsErc721        bool   `json:"is_erc721"`
	IsNft           bool   `json:"is_nft"`
	Symbol          string `json:"symbol"`
	Decimals        int32  `json:"decimals"`

	// Visible is false for assets the user has hidden
	Visible bool `json:"visible"`

	// TokenID is only set for ERC721 tokens
	TokenID     string   `json:"token_id,omitempty"`
	CoingeckoID string   `json:"coingecko_id,omitempty"`
	ChainID     string   `json:"chain_id"`
	Coin        CoinType `json:"coin"`
}

// OnRampProvider identifies a fiat on-ramp that sells tokens.
type OnRampProvider int32

const (
	OnRampRamp OnRampProvider = iota
	OnRampWyre
	OnRampSardine
	OnRampTransak
)

// ParseOnRampProviders parses a comma separated list of provider ids. An
// empty string selects every provider.
func ParseOnRampProviders(s string) ([]OnRampProvider, error) {
	if strings.TrimSpace(s) == "" {
		return []OnRampProvider{OnRampRamp, OnRampWyre, OnRampSardine, OnRampTransak}, nil
	}

	parts := strings.Split(s, ",")
	providers := make([]OnRampProvider, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || id < int(OnRampRamp) || id > int(OnRampTransak) {
			return nil, fmt.Errorf("unsupported on-ramp provider %q", part)
		}
		providers = append(providers, OnRampProvider(id))
	}
	return providers, nil
}
