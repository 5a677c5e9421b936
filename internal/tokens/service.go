package tokens

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/yourorg/wallet-token-ea/internal/fetch"
	"github.com/yourorg/wallet-token-ea/internal/model"
	"github.com/yourorg/wallet-token-ea/internal/telemetry"
)

// ErrNotReady is returned when a query needs a backend the service was built without
var ErrNotReady = errors.New("token backends not ready")

// Service runs token queries against the registry and wallet backends.
// Either backend may be nil; queries that need a missing one return ErrNotReady.
type Service struct {
	registry fetch.Registry
	wallet   fetch.Wallet
	order    BuyOrder
}

// NewService creates a Service. An empty referenceSymbol selects DefaultReferenceSymbol.
func NewService(registry fetch.Registry, wallet fetch.Wallet, referenceSymbol string) *Service {
	if referenceSymbol == "" {
		referenceSymbol = DefaultReferenceSymbol
	}
	return &Service{
		registry: registry,
		wallet:   wallet,
		order:    BuyOrder{ReferenceSymbol: referenceSymbol},
	}
}

// Ready reports whether both backends are present
func (s *Service) Ready() bool {
	return s.registry != nil && s.wallet != nil
}

// ExactAssetQuery identifies one user asset by its descriptor fields
type ExactAssetQuery struct {
	ContractAddress string
	Symbol          string
	Name            string
	TokenID         string
	Decimals        int32
}

// UserAssetsFiltered returns the user's visible assets of tokenType on the
// network, native asset first.
func (s *Service) UserAssetsFiltered(ctx context.Context, network model.NetworkInfo, coin model.CoinType, tokenType model.TokenType) (_ []model.BlockchainToken, err error) {
	ctx, span := telemetry.StartSpan(ctx, "tokens.UserAssetsFiltered", network.ChainID)
	defer func() { telemetry.RecordError(ctx, err); span.End() }()

	userAssets, err := s.userAssets(ctx, network.ChainID, coin)
	if err != nil {
		return nil, err
	}
	return FilterTokens(network, userAssets, tokenType, true), nil
}

// AllTokens returns the registry's tokens for a chain with known-bad entries corrected.
func (s *Service) AllTokens(ctx context.Context, chainID string, coin model.CoinType) (_ []model.BlockchainToken, err error) {
	ctx, span := telemetry.StartSpan(ctx, "tokens.AllTokens", chainID)
	defer func() { telemetry.RecordError(ctx, err); span.End() }()

	if s.registry == nil {
		return nil, ErrNotReady
	}
	list, err := s.registry.GetAllTokens(ctx, chainID, coin)
	if err != nil {
		return nil, fmt.Errorf("fetching registry tokens for %s: %w", chainID, err)
	}
	return FixupTokensRegistry(list, chainID), nil
}

// AllTokensFiltered merges the registry tokens with the user's assets and
// filters the result without the visibility rule. The wallet is asked only
// after the registry has answered.
func (s *Service) AllTokensFiltered(ctx context.Context, network model.NetworkInfo, coin model.CoinType, tokenType model.TokenType) (_ []model.BlockchainToken, err error) {
	ctx, span := telemetry.StartSpan(ctx, "tokens.AllTokensFiltered", network.ChainID)
	defer func() { telemetry.RecordError(ctx, err); span.End() }()

	allTokens, err := s.AllTokens(ctx, network.ChainID, coin)
	if err != nil {
		return nil, err
	}
	userAssets, err := s.userAssets(ctx, network.ChainID, coin)
	if err != nil {
		return nil, err
	}

	merged := MergeTokens(allTokens, userAssets)
	logrus.WithFields(logrus.Fields{
		"chain_id": network.ChainID,
		"registry": len(allTokens),
		"user":     len(userAssets),
		"merged":   len(merged),
	}).Debug("Merged registry and user tokens")

	return FilterTokens(network, merged, tokenType, false), nil
}

// UserOrAllTokensFiltered dispatches to UserAssetsFiltered or AllTokensFiltered.
func (s *Service) UserOrAllTokensFiltered(ctx context.Context, network model.NetworkInfo, coin model.CoinType, tokenType model.TokenType, userOnly bool) (_ []model.BlockchainToken, err error) {
	ctx, span := telemetry.StartSpan(ctx, "tokens.UserOrAllTokensFiltered", network.ChainID)
	defer func() { telemetry.RecordError(ctx, err); span.End() }()

	if !s.Ready() {
		return nil, ErrNotReady
	}
	if userOnly {
		return s.UserAssetsFiltered(ctx, network, coin, tokenType)
	}
	return s.AllTokensFiltered(ctx, network, coin, tokenType)
}

// BuyTokensFiltered returns the tokens the providers sell on the network in buy order.
func (s *Service) BuyTokensFiltered(ctx context.Context, network model.NetworkInfo, tokenType model.TokenType, providers []model.OnRampProvider) (_ []model.BlockchainToken, err error) {
	ctx, span := telemetry.StartSpan(ctx, "tokens.BuyTokensFiltered", network.ChainID)
	defer func() { telemetry.RecordError(ctx, err); span.End() }()

	if s.registry == nil {
		return nil, ErrNotReady
	}
	list, err := s.registry.GetProvidersBuyTokens(ctx, providers, network.ChainID)
	if err != nil {
		return nil, fmt.Errorf("fetching buy tokens for %s: %w", network.ChainID, err)
	}
	return s.order.Sort(FilterTokens(network, list, tokenType, false)), nil
}

// IsCustomToken reports whether no registry token on the network has
// exactly token's contract address.
func (s *Service) IsCustomToken(ctx context.Context, network model.NetworkInfo, coin model.CoinType, token model.BlockchainToken) (_ bool, err error) {
	ctx, span := telemetry.StartSpan(ctx, "tokens.IsCustomToken", network.ChainID)
	defer func() { telemetry.RecordError(ctx, err); span.End() }()

	allTokens, err := s.AllTokens(ctx, network.ChainID, coin)
	if err != nil {
		return false, err
	}

	for _, t := range FilterTokens(network, allTokens, model.TokenTypeAll, false) {
		if t.ContractAddress == token.ContractAddress {
			return false, nil
		}
	}
	return true, nil
}

// ExactUserAsset finds the user asset matching every field of query. When
// several match, the last one in list order is returned. A nil token with a
// nil error means nothing matched.
func (s *Service) ExactUserAsset(ctx context.Context, network model.NetworkInfo, coin model.CoinType, query ExactAssetQuery) (_ *model.BlockchainToken, err error) {
	ctx, span := telemetry.StartSpan(ctx, "tokens.ExactUserAsset", network.ChainID)
	defer func() { telemetry.RecordError(ctx, err); span.End() }()

	userAssets, err := s.UserAssetsFiltered(ctx, network, coin, model.TokenTypeAll)
	if err != nil {
		return nil, err
	}

	var found *model.BlockchainToken
	for i := range userAssets {
		if matchesExact(userAssets[i], network.ChainID, query) {
			t := userAssets[i]
			found = &t
		}
	}
	return found, nil
}

func matchesExact(t model.BlockchainToken, chainID string, q ExactAssetQuery) bool {
	return t.ChainID == chainID &&
		t.Symbol == q.Symbol &&
		t.Name == q.Name &&
		(q.TokenID == "" || t.TokenID == q.TokenID) &&
		t.ContractAddress == q.ContractAddress &&
		t.Decimals == q.Decimals
}

func (s *Service) userAssets(ctx context.Context, chainID string, coin model.CoinType) ([]model.BlockchainToken, error) {
	if s.wallet == nil {
		return nil, ErrNotReady
	}
	list, err := s.wallet.GetUserAssets(ctx, chainID, coin)
	if err != nil {
		return nil, fmt.Errorf("fetching user assets for %s: %w", chainID, err)
	}
	return list, nil
}
