// Package tokens filters, merges and orders token lists and runs the
// registry/wallet query pipeline on top of them.
package tokens

import (
	"strings"

	"github.com/yourorg/wallet-token-ea/internal/model"
)

// IsSameToken reports whether a and b describe the same asset: same chain,
// same symbol, same token id (or both without one) and the same contract
// address ignoring case.
func IsSameToken(a, b model.BlockchainToken) bool {
	if a.ChainID != b.ChainID || a.Symbol != b.Symbol {
		return false
	}
	if !(a.TokenID == "" && b.TokenID == "") && a.TokenID != b.TokenID {
		return false
	}
	return strings.EqualFold(a.ContractAddress, b.ContractAddress)
}

// containsSameToken reports whether any element of list matches t
func containsSameToken(list []model.BlockchainToken, t model.BlockchainToken) bool {
	for _, candidate := range list {
		if IsSameToken(candidate, t) {
			return true
		}
	}
	return false
}
