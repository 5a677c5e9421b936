// Package main is the entry point for the wallet token service, which serves
// filtered, merged and buy-ordered token lists for wallet front ends.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourorg/wallet-token-ea/internal/async"
	"github.com/yourorg/wallet-token-ea/internal/chains"
	"github.com/yourorg/wallet-token-ea/internal/config"
	"github.com/yourorg/wallet-token-ea/internal/model"
	"github.com/yourorg/wallet-token-ea/internal/server"
	"github.com/yourorg/wallet-token-ea/internal/telemetry"
)

func main() {
	config.LoadDotEnv()
	cfg := config.Load()
	setupLogging(cfg)

	if err := newRootCmd(&cfg).Execute(); err != nil {
		logrus.Fatalf("Failed to execute command: %v", err)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wallet-token-ea",
		Short: "Token list service for wallet front ends",
		Long: `wallet-token-ea filters, merges and orders token lists from the token
registry and wallet services and serves them over HTTP.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&cfg.RegistryURL, "registry-url", cfg.RegistryURL, "Base URL of the token registry (empty uses the built-in catalog)")
	rootCmd.PersistentFlags().StringVar(&cfg.WalletURL, "wallet-url", cfg.WalletURL, "Base URL of the wallet service")
	rootCmd.PersistentFlags().StringVar(&cfg.ReferenceSymbol, "reference-symbol", cfg.ReferenceSymbol, "Token listed right after the native asset in buy lists")

	rootCmd.AddCommand(newServeCmd(cfg))
	rootCmd.AddCommand(newTokensCmd(cfg))
	return rootCmd
}

func newServeCmd(cfg *config.Config) *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			shutdownTracer := telemetry.InitTracer(*cfg)
			defer shutdownTracer()

			b := buildBackends(*cfg)
			srv := server.New(*cfg, async.NewClient(b.service), prometheus.NewRegistry(), b.breakers...)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return srv.Start(ctx)
		},
	}
	serveCmd.Flags().StringVarP(&cfg.Port, "port", "p", cfg.Port, "HTTP port to listen on")
	serveCmd.Flags().DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "Per-request timeout")
	return serveCmd
}

// tokensOptions are the flags of the tokens command
type tokensOptions struct {
	chainID   string
	coin      string
	tokenType string
	providers string
	userOnly  bool
}

func newTokensCmd(cfg *config.Config) *cobra.Command {
	var opts tokensOptions

	tokensCmd := &cobra.Command{
		Use:       "tokens [user|all|buy]",
		Short:     "Run one token query and print the result as JSON",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"user", "all", "buy"},
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := runTokensQuery(cmd.Context(), *cfg, args[0], opts)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(list)
		},
	}
	tokensCmd.Flags().StringVar(&opts.chainID, "chain", chains.EthereumMainnet, "Chain id")
	tokensCmd.Flags().StringVar(&opts.coin, "coin", "", "Coin type (defaults to the chain's coin)")
	tokensCmd.Flags().StringVar(&opts.tokenType, "type", "all", "Token type: erc20, erc721, sol or all")
	tokensCmd.Flags().StringVar(&opts.providers, "providers", "", "Comma separated on-ramp ids for buy (default all)")
	tokensCmd.Flags().BoolVar(&opts.userOnly, "user-only", false, "With all: only the user's assets")
	return tokensCmd
}

func runTokensQuery(ctx context.Context, cfg config.Config, kind string, opts tokensOptions) ([]model.BlockchainToken, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	network, ok := chains.Lookup(opts.chainID)
	if !ok {
		return nil, fmt.Errorf("unknown chain %q", opts.chainID)
	}
	coin := network.Coin
	if opts.coin != "" {
		c, err := model.ParseCoinType(opts.coin)
		if err != nil {
			return nil, err
		}
		coin = c
	}
	tokenType, err := model.ParseTokenType(opts.tokenType)
	if err != nil {
		return nil, err
	}

	client := async.NewClient(buildBackends(cfg).service)
	switch kind {
	case "user":
		return async.Await(ctx, client.UserAssetsFiltered(ctx, network, coin, tokenType))
	case "all":
		return async.Await(ctx, client.UserOrAllTokensFiltered(ctx, network, coin, tokenType, opts.userOnly))
	case "buy":
		providers, err := model.ParseOnRampProviders(opts.providers)
		if err != nil {
			return nil, err
		}
		return async.Await(ctx, client.BuyTokensFiltered(ctx, network, tokenType, providers))
	default:
		return nil, fmt.Errorf("unknown query %q, want user, all or buy", kind)
	}
}
