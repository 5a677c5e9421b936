package tokens

import "github.com/yourorg/wallet-token-ea/internal/model"

// MergeTokens returns first followed by the elements of second that have no
// same-token match in first. Both inputs keep their relative order.
func MergeTokens(first, second []model.BlockchainToken) []model.BlockchainToken {
	merged := make([]model.BlockchainToken, 0, len(first)+len(second))
	merged = append(merged, first...)

	for _, t := range second {
		// Only match against first; duplicates within second are kept as-is
		if !containsSameToken(first, t) {
			merged = append(merged, t)
		}
	}

	return merged
}
