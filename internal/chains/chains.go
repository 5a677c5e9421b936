// Package chains holds the networks the service can answer for
package chains

import (
	"sort"
	"strings"

	"github.com/yourorg/wallet-token-ea/internal/model"
)

// Supported chain ids
const (
	EthereumMainnet = "0x1"
	Goerli          = "0x5"
	PolygonMainnet  = "0x89"
	SolanaMainnet   = "0x65"
	FilecoinMainnet = "f"
)

var networks = map[string]model.NetworkInfo{
	EthereumMainnet: {
		ChainID:           EthereumMainnet,
		ChainName:         "Ethereum Mainnet",
		BlockExplorerURLs: []string{"https://etherscan.io"},
		RPCEndpoints:      []string{"https://ethereum-rpc.publicnode.com"},
		Symbol:            "ETH",
		SymbolName:        "Ethereum",
		Decimals:          18,
		Coin:              model.CoinETH,
		IsEIP1559:         true,
	},
	Goerli: {
		ChainID:           Goerli,
		ChainName:         "Goerli Test Network",
		BlockExplorerURLs: []string{"https://goerli.etherscan.io"},
		RPCEndpoints:      []string{"https://ethereum-goerli-rpc.publicnode.com"},
		Symbol:            "ETH",
		SymbolName:        "Ethereum",
		Decimals:          18,
		Coin:              model.CoinETH,
		IsEIP1559:         true,
	},
	PolygonMainnet: {
		ChainID:           PolygonMainnet,
		ChainName:         "Polygon Mainnet",
		BlockExplorerURLs: []string{"https://polygonscan.com"},
		RPCEndpoints:      []string{"https://polygon-rpc.com"},
		Symbol:            "MATIC",
		SymbolName:        "MATIC",
		Decimals:          18,
		Coin:              model.CoinETH,
		IsEIP1559:         true,
	},
	SolanaMainnet: {
		ChainID:           SolanaMainnet,
		ChainName:         "Solana Mainnet Beta",
		BlockExplorerURLs: []string{"https://explorer.solana.com"},
		RPCEndpoints:      []string{"https://api.mainnet-beta.solana.com"},
		Symbol:            "SOL",
		SymbolName:        "Solana",
		Decimals:          9,
		Coin:              model.CoinSOL,
	},
	FilecoinMainnet: {
		ChainID:           FilecoinMainnet,
		ChainName:         "Filecoin Mainnet",
		BlockExplorerURLs: []string{"https://filscan.io/tipset/message-detail"},
		RPCEndpoints:      []string{"https://api.node.glif.io/rpc/v0"},
		Symbol:            "FIL",
		SymbolName:        "Filecoin",
		Decimals:          18,
		Coin:              model.CoinFIL,
	},
}

// Lookup returns the network for chainID. Hex ids match case-insensitively.
func Lookup(chainID string) (model.NetworkInfo, bool) {
	n, ok := networks[strings.ToLower(strings.TrimSpace(chainID))]
	if !ok {
		return model.NetworkInfo{}, false
	}
	return clone(n), true
}

// All returns every known network ordered by chain id
func All() []model.NetworkInfo {
	out := make([]model.NetworkInfo, 0, len(networks))
	for _, n := range networks {
		out = append(out, clone(n))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ChainID < out[j].ChainID })
	return out
}

// clone copies the slice fields so callers cannot edit the catalog
func clone(n model.NetworkInfo) model.NetworkInfo {
	n.BlockExplorerURLs = append([]string(nil), n.BlockExplorerURLs...)
	n.IconURLs = append([]string(nil), n.IconURLs...)
	n.RPCEndpoints = append([]string(nil), n.RPCEndpoints...)
	return n
}
