package tokens

import (
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/wallet-token-ea/internal/model"
)

func TestFixupTokensRegistry_Goerli(t *testing.T) {
	usdc := erc20("USDC", usdcContract)
	usdc.ChainID = GoerliChainID
	bat := erc20("BAT", batContract)
	bat.ChainID = GoerliChainID
	input := []model.BlockchainToken{usdc, bat}

	got := FixupTokensRegistry(input, GoerliChainID)
	require.Len(t, got, 2)
	assert.True(t, strings.EqualFold("0x2f3a40a3db8a7e3d09b0adfefbce4f6f81927557", got[0].ContractAddress))
	assert.Equal(t, common.HexToAddress(got[0].ContractAddress).Hex(), got[0].ContractAddress, "address is checksummed")
	assert.Equal(t, batContract, got[1].ContractAddress)
	assert.Equal(t, usdcContract, input[0].ContractAddress, "input must not be modified")
}

func TestFixupTokensRegistry_OtherChains(t *testing.T) {
	input := []model.BlockchainToken{erc20("USDC", usdcContract)}
	assert.Equal(t, input, FixupTokensRegistry(input, "0x1"))
	assert.Empty(t, FixupTokensRegistry(nil, GoerliChainID))
}

func TestValidContractAddress(t *testing.T) {
	tests := []struct {
		name    string
		coin    model.CoinType
		addr    string
		wantErr bool
	}{
		{"native", model.CoinETH, "", false},
		{"eth contract", model.CoinETH, batContract, false},
		{"eth garbage", model.CoinETH, "0x1234", true},
		{"fevm contract", model.CoinFIL, usdcContract, false},
		{"solana mint", model.CoinSOL, "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v", false},
		{"solana garbage", model.CoinSOL, "not-base58-0OIl", true},
		{"unknown coin", model.CoinType(0), batContract, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidContractAddress(tc.coin, tc.addr)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
