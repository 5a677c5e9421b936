package tokens

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/yourorg/wallet-token-ea/internal/model"
)

// GoerliChainID is the Goerli test network
const GoerliChainID = "0x5"

// goerliContracts holds the Goerli deployments of tokens the registry lists
// with their mainnet contract addresses.
var goerliContracts = map[string]string{
	"USDC": common.HexToAddress("0x2f3a40a3db8a7e3d09b0adfefbce4f6f81927557").Hex(),
	"DAI":  common.HexToAddress("0x73967c6a0904aa032c103b4104747e88c566b1a2").Hex(),
}

// FixupTokensRegistry corrects known-bad registry entries for chainID and
// returns a new slice. Chains without corrections are copied unchanged.
func FixupTokensRegistry(list []model.BlockchainToken, chainID string) []model.BlockchainToken {
	fixed := make([]model.BlockchainToken, len(list))
	copy(fixed, list)

	if chainID != GoerliChainID {
		return fixed
	}

	for i := range fixed {
		if addr, ok := goerliContracts[fixed[i].Symbol]; ok {
			fixed[i].ContractAddress = addr
		}
	}
	return fixed
}
