package model

// NetworkInfo describes a selected chain. Only the fields needed to
// synthesize the native asset are required.
type NetworkInfo struct {
	ChainID           string   `json:"chain_id"`
	ChainName         string   `json:"chain_name"`
	BlockExplorerURLs []string `json:"block_explorer_urls,omitempty"`
	IconURLs          []string `json:"icon_urls,omitempty"`
	RPCEndpoints      []string `json:"rpc_endpoints,omitempty"`
	Symbol            string   `json:"symbol"`
	SymbolName        string   `json:"symbol_name"`
	Decimals          int32    `json:"decimals"`
	Coin              CoinType `json:"coin"`
	IsEIP1559         bool     `json:"is_eip1559"`
}
