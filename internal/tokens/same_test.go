package tokens

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourorg/wallet-token-ea/internal/model"
)

func TestIsSameToken(t *testing.T) {
	bat := erc20("BAT", batContract)
	batLower := bat
	batLower.ContractAddress = strings.ToLower(batContract)
	batOtherChain := bat
	batOtherChain.ChainID = "0x89"
	punk1 := erc721("PUNK", punkContract, "0x1")
	punk2 := erc721("PUNK", punkContract, "0x2")
	punkNoID := erc721("PUNK", punkContract, "")

	tests := []struct {
		name string
		a, b model.BlockchainToken
		want bool
	}{
		{"identical", bat, bat, true},
		{"contract case ignored", bat, batLower, true},
		{"different chain", bat, batOtherChain, false},
		{"different symbol", bat, erc20("DAI", batContract), false},
		{"different contract", bat, erc20("BAT", daiContract), false},
		{"same token id", punk1, punk1, true},
		{"different token id", punk1, punk2, false},
		{"one token id empty", punk1, punkNoID, false},
		{"both token ids empty", punkNoID, punkNoID, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsSameToken(tc.a, tc.b))
			assert.Equal(t, tc.want, IsSameToken(tc.b, tc.a), "predicate must be symmetric")
		})
	}
}
