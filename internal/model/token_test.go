package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoinType(t *testing.T) {
	tests := []struct {
		in      string
		want    CoinType
		wantErr bool
	}{
		{"60", CoinETH, false},
		{"eth", CoinETH, false},
		{"461", CoinFIL, false},
		{"SOL", CoinSOL, false},
		{"0", 0, true},
		{"btc", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseCoinType(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseOnRampProviders(t *testing.T) {
	all, err := ParseOnRampProviders("")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	got, err := ParseOnRampProviders("0, 3")
	require.NoError(t, err)
	assert.Equal(t, []OnRampProvider{OnRampRamp, OnRampTransak}, got)

	_, err = ParseOnRampProviders("4")
	assert.Error(t, err)
	_, err = ParseOnRampProviders("wyre")
	assert.Error(t, err)
}

func TestCoinType_String(t *testing.T) {
	assert.Equal(t, "eth", CoinETH.String())
	assert.Equal(t, "unknown", CoinType(1).String())
}
