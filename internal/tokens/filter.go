package tokens

import (
	"github.com/sirupsen/logrus"

	"github.com/yourorg/wallet-token-ea/internal/model"
)

// FilterTokens keeps the tokens of the requested type, drops any copy of the
// network's native asset (and hidden tokens when visibleOnly is set), then
// puts a freshly built native asset in front.
//
// The native asset is always rebuilt from the network, never taken from tokens.
func FilterTokens(network model.NetworkInfo, tokens []model.BlockchainToken, tokenType model.TokenType, visibleOnly bool) []model.BlockchainToken {
	nativeAsset := MakeNetworkAsset(network)

	filtered := make([]model.BlockchainToken, 0, len(tokens)+1)
	filtered = append(filtered, nativeAsset)

	for _, t := range tokens {
		if keepToken(t, nativeAsset, tokenType, visibleOnly) {
			filtered = append(filtered, t)
		}
	}

	logrus.WithFields(logrus.Fields{
		"chain_id":     network.ChainID,
		"token_type":   tokenType.String(),
		"visible_only": visibleOnly,
		"total":        len(tokens),
		"kept":         len(filtered) - 1,
	}).Debug("Filtered token list")

	return filtered
}

// keepToken applies the type, native-duplicate and visibility rules to one token
func keepToken(t, nativeAsset model.BlockchainToken, tokenType model.TokenType, visibleOnly bool) bool {
	if !tokenType.Keeps(t) {
		return false
	}
	if IsSameToken(t, nativeAsset) {
		return false
	}
	if visibleOnly && !t.Visible {
		return false
	}
	return true
}
