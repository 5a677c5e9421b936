package model

import (
	"fmt"
	"strings"
)

// TokenType selects which tokens survive a filter pass. The set of variants
// is closed: only this package can implement it.
type TokenType interface {
	// Keeps reports whether t belongs to this token type
	Keeps(t BlockchainToken) bool
	String() string

	sealed()
}

type erc20Type struct{}
type erc721Type struct{}
type solType struct{}
type allType struct{}

// Token type variants
var (
	TokenTypeERC20  TokenType = erc20Type{}
	TokenTypeERC721 TokenType = erc721Type{}
	TokenTypeSOL    TokenType = solType{}
	TokenTypeAll    TokenType = allType{}
)

func (erc20Type) Keeps(t BlockchainToken) bool  { return t.IsErc20 }
func (erc721Type) Keeps(t BlockchainToken) bool { return t.IsErc721 }
func (solType) Keeps(t BlockchainToken) bool    { return t.Coin == CoinSOL }
func (allType) Keeps(BlockchainToken) bool      { return true }

func (erc20Type) String() string  { return "erc20" }
func (erc721Type) String() string { return "erc721" }
func (solType) String() string    { return "sol" }
func (allType) String() string    { return "all" }

func (erc20Type) sealed()  {}
func (erc721Type) sealed() {}
func (solType) sealed()    {}
func (allType) sealed()    {}

// ParseTokenType maps a wire name to its variant. An empty name selects all tokens.
func ParseTokenType(s string) (TokenType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "erc20":
		return TokenTypeERC20, nil
	case "erc721":
		return TokenTypeERC721, nil
	case "sol":
		return TokenTypeSOL, nil
	case "all", "":
		return TokenTypeAll, nil
	default:
		return nil, fmt.Errorf("unsupported token type %q", s)
	}
}
