package chains

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/wallet-token-ea/internal/model"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		chainID string
		symbol  string
		coin    model.CoinType
	}{
		{"0x1", "ETH", model.CoinETH},
		{"0x5", "ETH", model.CoinETH},
		{"0X89", "MATIC", model.CoinETH},
		{"0x65", "SOL", model.CoinSOL},
		{"f", "FIL", model.CoinFIL},
	}

	for _, tc := range tests {
		t.Run(tc.chainID, func(t *testing.T) {
			n, ok := Lookup(tc.chainID)
			require.True(t, ok)
			assert.Equal(t, tc.symbol, n.Symbol)
			assert.Equal(t, tc.coin, n.Coin)
		})
	}

	_, ok := Lookup("0x999")
	assert.False(t, ok)
}

func TestLookup_ReturnsCopy(t *testing.T) {
	n, ok := Lookup(EthereumMainnet)
	require.True(t, ok)
	n.RPCEndpoints[0] = "changed"

	again, _ := Lookup(EthereumMainnet)
	assert.NotEqual(t, "changed", again.RPCEndpoints[0])
}

func TestAll(t *testing.T) {
	all := All()
	require.Len(t, all, 5)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].ChainID, all[i].ChainID)
	}
}
