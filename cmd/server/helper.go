package main

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/yourorg/wallet-token-ea/internal/cache"
	"github.com/yourorg/wallet-token-ea/internal/circuitbreaker"
	"github.com/yourorg/wallet-token-ea/internal/config"
	"github.com/yourorg/wallet-token-ea/internal/fetch"
	"github.com/yourorg/wallet-token-ea/internal/tokens"
)

// setupLogging configures the logging for the application
func setupLogging(cfg config.Config) {
	switch strings.ToLower(cfg.LogFormat) {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// backends holds the wired query service and the breakers guarding it
type backends struct {
	service  *tokens.Service
	breakers []*circuitbreaker.CircuitBreaker
}

// buildBackends wires the registry and wallet according to cfg. Without a
// registry URL the built-in static registry is used; without a wallet URL
// the wallet stays absent and user queries report not ready.
func buildBackends(cfg config.Config) backends {
	var b backends

	newBreaker := func(name string) *circuitbreaker.CircuitBreaker {
		cb := circuitbreaker.New(name, circuitbreaker.Thresholds{MaxConsecutiveFailures: cfg.BreakerFailureThreshold}).
			WithResetDelay(cfg.CircuitResetDelay).
			WithTripCallback(func(name, reason string) {
				logrus.WithField("backend", name).Warnf("Backend disabled: %s", reason)
			})
		b.breakers = append(b.breakers, cb)
		return cb
	}

	var registry fetch.Registry
	if cfg.RegistryURL != "" {
		registry = fetch.NewGuardedRegistry(fetch.NewRegistryClient(cfg), newBreaker("registry"))
		logrus.WithField("url", cfg.RegistryURL).Info("Using registry service")
	} else {
		registry = fetch.NewStaticRegistry()
		logrus.Info("REGISTRY_URL not set, using built-in token catalog")
	}
	registry = cache.NewTokenCache(registry, cfg.RegistryCacheTTL)

	var wallet fetch.Wallet
	if cfg.WalletURL != "" {
		wallet = fetch.NewGuardedWallet(fetch.NewWalletClient(cfg), newBreaker("wallet"))
		logrus.WithField("url", cfg.WalletURL).Info("Using wallet service")
	} else {
		logrus.Warn("WALLET_URL not set, user asset queries are unavailable")
	}

	b.service = tokens.NewService(registry, wallet, cfg.ReferenceSymbol)
	return b
}
