package tokens

import (
	"strings"

	"github.com/yourorg/wallet-token-ea/internal/model"
)

// nativeLogos maps a network's native symbol to its bundled logo
var nativeLogos = map[string]string{
	"ETH": "eth.png",
	"SOL": "sol.png",
	"FIL": "fil.png",
}

// MakeNetworkAsset builds the canonical descriptor of a network's native asset.
func MakeNetworkAsset(network model.NetworkInfo) model.BlockchainToken {
	return model.BlockchainToken{
		ContractAddress: "",
		Name:            network.SymbolName,
		Logo:            nativeLogos[network.Symbol],
		Symbol:          network.Symbol,
		Decimals:        network.Decimals,
		Visible:         true,
		ChainID:         network.ChainID,
		Coin:            network.Coin,
	}
}

// IsNativeToken reports whether t is a chain's base currency rather than a token contract.
func IsNativeToken(t model.BlockchainToken) bool {
	return t.ContractAddress == "" && !t.IsErc20 && !t.IsErc721
}

// isReferenceToken reports whether t carries the given reference symbol
func isReferenceToken(t model.BlockchainToken, symbol string) bool {
	return symbol != "" && strings.EqualFold(t.Symbol, symbol)
}
