package tokens

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourorg/wallet-token-ea/internal/model"
)

func TestMergeTokens(t *testing.T) {
	bat := erc20("BAT", batContract)
	usdc := erc20("USDC", usdcContract)
	dai := erc20("DAI", daiContract)
	batUserCopy := bat
	batUserCopy.ContractAddress = strings.ToLower(batContract)
	batUserCopy.Visible = false

	tests := []struct {
		name          string
		first, second []model.BlockchainToken
		want          []model.BlockchainToken
	}{
		{"both empty", nil, nil, []model.BlockchainToken{}},
		{"first only", []model.BlockchainToken{bat}, nil, []model.BlockchainToken{bat}},
		{"second only", nil, []model.BlockchainToken{dai, usdc}, []model.BlockchainToken{dai, usdc}},
		{"disjoint keeps order", []model.BlockchainToken{usdc, bat}, []model.BlockchainToken{dai}, []model.BlockchainToken{usdc, bat, dai}},
		{"first wins on overlap", []model.BlockchainToken{bat}, []model.BlockchainToken{batUserCopy, dai}, []model.BlockchainToken{bat, dai}},
		{"duplicates inside second kept", []model.BlockchainToken{bat}, []model.BlockchainToken{dai, dai}, []model.BlockchainToken{bat, dai, dai}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MergeTokens(tc.first, tc.second))
		})
	}
}
