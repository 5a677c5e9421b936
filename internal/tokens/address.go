package tokens

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gagliardetto/solana-go"

	"github.com/yourorg/wallet-token-ea/internal/model"
)

// ValidContractAddress checks that addr is well formed for the coin family.
// The empty address denotes a native asset and is always accepted.
func ValidContractAddress(coin model.CoinType, addr string) error {
	if addr == "" {
		return nil
	}

	switch coin {
	case model.CoinSOL:
		if _, err := solana.PublicKeyFromBase58(addr); err != nil {
			return fmt.Errorf("invalid solana mint address %q: %w", addr, err)
		}
	case model.CoinETH, model.CoinFIL:
		// FEVM tokens use the same 20-byte hex form as ethereum
		if !common.IsHexAddress(addr) {
			return fmt.Errorf("invalid contract address %q", addr)
		}
	default:
		return fmt.Errorf("unsupported coin type %d", coin)
	}
	return nil
}
