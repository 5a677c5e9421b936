package tokens

import (
	"sort"

	"github.com/yourorg/wallet-token-ea/internal/model"
)

// DefaultReferenceSymbol is the token listed right after the native asset in buy lists.
const DefaultReferenceSymbol = "BAT"

// BuyOrder orders tokens for the buy flow: native asset, then the reference
// token, then the rest by symbol.
type BuyOrder struct {
	ReferenceSymbol string
}

// Compare returns a negative number when a sorts before b, positive when
// after and zero when they are equivalent.
func (o BuyOrder) Compare(a, b model.BlockchainToken) int {
	nativeA, nativeB := IsNativeToken(a), IsNativeToken(b)
	switch {
	case nativeA && !nativeB:
		return -1
	case !nativeA && nativeB:
		return 1
	}

	refA, refB := isReferenceToken(a, o.ReferenceSymbol), isReferenceToken(b, o.ReferenceSymbol)
	switch {
	case refA && !refB:
		return -1
	case !refA && refB:
		return 1
	}

	switch {
	case a.Symbol < b.Symbol:
		return -1
	case a.Symbol > b.Symbol:
		return 1
	default:
		return 0
	}
}

// Sort returns a stably sorted copy of list.
func (o BuyOrder) Sort(list []model.BlockchainToken) []model.BlockchainToken {
	sorted := make([]model.BlockchainToken, len(list))
	copy(sorted, list)

	sort.SliceStable(sorted, func(i, j int) bool {
		return o.Compare(sorted[i], sorted[j]) < 0
	})
	return sorted
}

// SortForBuy sorts list with the default reference token.
func SortForBuy(list []model.BlockchainToken) []model.BlockchainToken {
	return BuyOrder{ReferenceSymbol: DefaultReferenceSymbol}.Sort(list)
}
