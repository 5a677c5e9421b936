package tokens

import "github.com/yourorg/wallet-token-ea/internal/model"

var (
	mainnet = model.NetworkInfo{
		ChainID:    "0x1",
		ChainName:  "Ethereum Mainnet",
		Symbol:     "ETH",
		SymbolName: "Ethereum",
		Decimals:   18,
		Coin:       model.CoinETH,
	}
	goerli = model.NetworkInfo{
		ChainID:    "0x5",
		ChainName:  "Goerli Test Network",
		Symbol:     "ETH",
		SymbolName: "Ethereum",
		Decimals:   18,
		Coin:       model.CoinETH,
	}
	solanaMainnet = model.NetworkInfo{
		ChainID:    "0x65",
		ChainName:  "Solana Mainnet Beta",
		Symbol:     "SOL",
		SymbolName: "Solana",
		Decimals:   9,
		Coin:       model.CoinSOL,
	}
)

func erc20(symbol, contract string) model.BlockchainToken {
	return model.BlockchainToken{
		ContractAddress: contract,
		Name:            symbol + " Token",
		Symbol:          symbol,
		Decimals:        18,
		IsErc20:         true,
		Visible:         true,
		ChainID:         "0x1",
		Coin:            model.CoinETH,
	}
}

func erc721(symbol, contract, tokenID string) model.BlockchainToken {
	return model.BlockchainToken{
		ContractAddress: contract,
		Name:            symbol,
		Symbol:          symbol,
		IsErc721:        true,
		IsNft:           true,
		TokenID:         tokenID,
		Visible:         true,
		ChainID:         "0x1",
		Coin:            model.CoinETH,
	}
}

const (
	batContract  = "0x0D8775F648430679A709E98d2b0Cb6250d2887EF"
	usdcContract = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
	daiContract  = "0x6B175474E89094C44Da98b954EedeAC495271d0F"
	punkContract = "0xb47e3cd837dDF8e4c57F05d70Ab865de6e193BBB"
)
