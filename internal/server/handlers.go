package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourorg/wallet-token-ea/internal/async"
	"github.com/yourorg/wallet-token-ea/internal/chains"
	"github.com/yourorg/wallet-token-ea/internal/circuitbreaker"
	"github.com/yourorg/wallet-token-ea/internal/model"
	"github.com/yourorg/wallet-token-ea/internal/tokens"
)

// queryFunc answers one token query from its URL parameters
type queryFunc func(ctx context.Context, q url.Values) (interface{}, error)

// requestError is an input problem reported to the caller as-is
type requestError struct {
	status int
	msg    string
}

func (e *requestError) Error() string { return e.msg }

func badRequest(format string, args ...interface{}) error {
	return &requestError{status: http.StatusBadRequest, msg: fmt.Sprintf(format, args...)}
}

// TokenListResponse is returned by every list endpoint
type TokenListResponse struct {
	ChainID string                  `json:"chain_id"`
	Tokens  []model.BlockchainToken `json:"tokens"`
}

// CustomTokenResponse is returned by /v1/tokens/custom
type CustomTokenResponse struct {
	ChainID         string `json:"chain_id"`
	ContractAddress string `json:"contract_address"`
	Custom          bool   `json:"custom"`
}

// ExactAssetResponse is returned by /v1/tokens/exact
type ExactAssetResponse struct {
	Found bool                   `json:"found"`
	Token *model.BlockchainToken `json:"token"`
}

// query wraps fn with method checking, rate limiting, the request timeout,
// error mapping and metrics.
func (s *Server) query(endpoint string, fn queryFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if r.Method != http.MethodGet {
			s.errorResponse(w, endpoint, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		if s.rateLimit != nil && !s.rateLimit.Allow() {
			s.errorResponse(w, endpoint, http.StatusTooManyRequests, "Rate limit exceeded")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), s.config.RequestTimeout)
		defer cancel()

		body, err := fn(ctx, r.URL.Query())
		if s.metrics != nil {
			s.metrics.requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
		}
		if err != nil {
			status := s.statusFor(err)
			logrus.WithFields(logrus.Fields{
				"endpoint": endpoint,
				"status":   status,
				"query":    r.URL.RawQuery,
			}).WithError(err).Warn("Token query failed")
			s.errorResponse(w, endpoint, status, err.Error())
			return
		}

		if s.metrics != nil {
			s.metrics.requestCounter.WithLabelValues(endpoint, "success").Inc()
			if list, ok := body.(TokenListResponse); ok {
				s.metrics.tokensReturned.WithLabelValues(endpoint).Observe(float64(len(list.Tokens)))
			}
		}
		writeJSON(w, http.StatusOK, body)
	})
}

// statusFor maps a query error to the HTTP status returned to the caller
func (s *Server) statusFor(err error) int {
	var reqErr *requestError
	cause := "backend"
	status := http.StatusBadGateway

	switch {
	case errors.As(err, &reqErr):
		return reqErr.status
	case errors.Is(err, tokens.ErrNotReady):
		cause, status = "not_ready", http.StatusServiceUnavailable
	case errors.Is(err, circuitbreaker.ErrOpen):
		cause, status = "circuit_open", http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		cause, status = "timeout", http.StatusGatewayTimeout
	}

	if s.metrics != nil {
		s.metrics.backendErrors.WithLabelValues(cause).Inc()
	}
	return status
}

// errorResponse writes a JSON error body
func (s *Server) errorResponse(w http.ResponseWriter, endpoint string, status int, msg string) {
	if s.metrics != nil {
		s.metrics.requestCounter.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	}
	writeJSON(w, status, errorBody{Status: "error", Error: msg})
}

// commonParams holds the parameters shared by all token queries
type commonParams struct {
	network   model.NetworkInfo
	coin      model.CoinType
	tokenType model.TokenType
}

func parseCommon(q url.Values) (commonParams, error) {
	chainID := q.Get("chain_id")
	if chainID == "" {
		return commonParams{}, badRequest("chain_id is required")
	}
	network, ok := chains.Lookup(chainID)
	if !ok {
		return commonParams{}, &requestError{status: http.StatusNotFound, msg: fmt.Sprintf("unknown chain %q", chainID)}
	}

	p := commonParams{network: network, coin: network.Coin}
	if raw := q.Get("coin"); raw != "" {
		coin, err := model.ParseCoinType(raw)
		if err != nil {
			return commonParams{}, badRequest("%v", err)
		}
		p.coin = coin
	}

	tokenType, err := model.ParseTokenType(q.Get("type"))
	if err != nil {
		return commonParams{}, badRequest("%v", err)
	}
	p.tokenType = tokenType

	return p, nil
}

func parseBool(q url.Values, key string) (bool, error) {
	raw := q.Get(key)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, badRequest("invalid %s %q", key, raw)
	}
	return v, nil
}

func parseContract(q url.Values, coin model.CoinType) (string, error) {
	addr := q.Get("contract_address")
	if err := tokens.ValidContractAddress(coin, addr); err != nil {
		return "", badRequest("%v", err)
	}
	return addr, nil
}

func tokenList(ctx context.Context, chainID string, ch <-chan async.Result[[]model.BlockchainToken]) (interface{}, error) {
	list, err := async.Await(ctx, ch)
	if err != nil {
		return nil, err
	}
	return TokenListResponse{ChainID: chainID, Tokens: list}, nil
}

func (s *Server) handleUserTokens(ctx context.Context, q url.Values) (interface{}, error) {
	p, err := parseCommon(q)
	if err != nil {
		return nil, err
	}
	return tokenList(ctx, p.network.ChainID, s.client.UserAssetsFiltered(ctx, p.network, p.coin, p.tokenType))
}

func (s *Server) handleAllTokens(ctx context.Context, q url.Values) (interface{}, error) {
	p, err := parseCommon(q)
	if err != nil {
		return nil, err
	}
	return tokenList(ctx, p.network.ChainID, s.client.AllTokensFiltered(ctx, p.network, p.coin, p.tokenType))
}

func (s *Server) handleTokens(ctx context.Context, q url.Values) (interface{}, error) {
	p, err := parseCommon(q)
	if err != nil {
		return nil, err
	}
	userOnly, err := parseBool(q, "user_only")
	if err != nil {
		return nil, err
	}
	return tokenList(ctx, p.network.ChainID, s.client.UserOrAllTokensFiltered(ctx, p.network, p.coin, p.tokenType, userOnly))
}

func (s *Server) handleBuyTokens(ctx context.Context, q url.Values) (interface{}, error) {
	p, err := parseCommon(q)
	if err != nil {
		return nil, err
	}
	providers, err := model.ParseOnRampProviders(q.Get("providers"))
	if err != nil {
		return nil, badRequest("%v", err)
	}
	return tokenList(ctx, p.network.ChainID, s.client.BuyTokensFiltered(ctx, p.network, p.tokenType, providers))
}

func (s *Server) handleCustomToken(ctx context.Context, q url.Values) (interface{}, error) {
	p, err := parseCommon(q)
	if err != nil {
		return nil, err
	}
	if q.Get("contract_address") == "" {
		return nil, badRequest("contract_address is required")
	}
	addr, err := parseContract(q, p.coin)
	if err != nil {
		return nil, err
	}

	token := model.BlockchainToken{ContractAddress: addr, ChainID: p.network.ChainID, Coin: p.coin}
	custom, err := async.Await(ctx, s.client.IsCustomToken(ctx, p.network, p.coin, token))
	if err != nil {
		return nil, err
	}
	return CustomTokenResponse{ChainID: p.network.ChainID, ContractAddress: addr, Custom: custom}, nil
}

func (s *Server) handleExactAsset(ctx context.Context, q url.Values) (interface{}, error) {
	p, err := parseCommon(q)
	if err != nil {
		return nil, err
	}
	if q.Get("symbol") == "" {
		return nil, badRequest("symbol is required")
	}
	addr, err := parseContract(q, p.coin)
	if err != nil {
		return nil, err
	}

	var decimals int64
	if raw := q.Get("decimals"); raw != "" {
		decimals, err = strconv.ParseInt(raw, 10, 32)
		if err != nil || decimals < 0 {
			return nil, badRequest("invalid decimals %q", raw)
		}
	}

	query := tokens.ExactAssetQuery{
		ContractAddress: addr,
		Symbol:          q.Get("symbol"),
		Name:            q.Get("name"),
		TokenID:         q.Get("token_id"),
		Decimals:        int32(decimals),
	}
	token, err := async.Await(ctx, s.client.ExactUserAsset(ctx, p.network, p.coin, query))
	if err != nil {
		return nil, err
	}
	return ExactAssetResponse{Found: token != nil, Token: token}, nil
}
