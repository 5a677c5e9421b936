package tokens

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/yourorg/wallet-token-ea/internal/model"
)

type fakeRegistry struct {
	all       []model.BlockchainToken
	buy       []model.BlockchainToken
	err       error
	providers []model.OnRampProvider
	calls     []string
}

func (f *fakeRegistry) GetAllTokens(_ context.Context, chainID string, _ model.CoinType) ([]model.BlockchainToken, error) {
	f.calls = append(f.calls, "registry:"+chainID)
	return f.all, f.err
}

func (f *fakeRegistry) GetProvidersBuyTokens(_ context.Context, providers []model.OnRampProvider, chainID string) ([]model.BlockchainToken, error) {
	f.calls = append(f.calls, "buy:"+chainID)
	f.providers = providers
	return f.buy, f.err
}

type fakeWallet struct {
	assets []model.BlockchainToken
	err    error
	calls  int
}

func (f *fakeWallet) GetUserAssets(context.Context, string, model.CoinType) ([]model.BlockchainToken, error) {
	f.calls++
	return f.assets, f.err
}

func TestService_UserAssetsFiltered(t *testing.T) {
	hidden := erc20("DAI", daiContract)
	hidden.Visible = false
	wallet := &fakeWallet{assets: []model.BlockchainToken{erc20("BAT", batContract), hidden, erc721("PUNK", punkContract, "0x1")}}
	svc := NewService(&fakeRegistry{}, wallet, "")

	got, err := svc.UserAssetsFiltered(context.Background(), mainnet, model.CoinETH, model.TokenTypeAll)
	require.NoError(t, err)
	assert.Equal(t, []string{"ETH", "BAT", "PUNK"}, symbols(got))

	got, err = svc.UserAssetsFiltered(context.Background(), mainnet, model.CoinETH, model.TokenTypeERC20)
	require.NoError(t, err)
	assert.Equal(t, []string{"ETH", "BAT"}, symbols(got))
}

func TestService_AllTokensFiltered(t *testing.T) {
	registry := &fakeRegistry{all: []model.BlockchainToken{erc20("BAT", batContract), erc20("USDC", usdcContract)}}
	hidden := erc20("CUSTOM", "0x1111111111111111111111111111111111111111")
	hidden.Visible = false
	wallet := &fakeWallet{assets: []model.BlockchainToken{erc20("USDC", usdcContract), hidden}}
	svc := NewService(registry, wallet, "")

	got, err := svc.AllTokensFiltered(context.Background(), mainnet, model.CoinETH, model.TokenTypeAll)
	require.NoError(t, err)
	assert.Equal(t, []string{"ETH", "BAT", "USDC", "CUSTOM"}, symbols(got), "hidden user tokens stay in the full list")
	assert.Equal(t, []string{"registry:0x1"}, registry.calls)
	assert.Equal(t, 1, wallet.calls)
}

func TestService_AllTokensFiltered_RegistryErrorSkipsWallet(t *testing.T) {
	registry := &fakeRegistry{err: errors.New("registry down")}
	wallet := &fakeWallet{}
	svc := NewService(registry, wallet, "")

	_, err := svc.AllTokensFiltered(context.Background(), mainnet, model.CoinETH, model.TokenTypeAll)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "registry down")
	assert.Zero(t, wallet.calls)
}

func TestService_AllTokens_AppliesFixup(t *testing.T) {
	usdc := erc20("USDC", usdcContract)
	usdc.ChainID = GoerliChainID
	svc := NewService(&fakeRegistry{all: []model.BlockchainToken{usdc}}, &fakeWallet{}, "")

	got, err := svc.AllTokens(context.Background(), GoerliChainID, model.CoinETH)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.NotEqual(t, usdcContract, got[0].ContractAddress)
}

func TestService_UserOrAllTokensFiltered(t *testing.T) {
	registry := &fakeRegistry{all: []model.BlockchainToken{erc20("BAT", batContract)}}
	wallet := &fakeWallet{assets: []model.BlockchainToken{erc20("DAI", daiContract)}}
	svc := NewService(registry, wallet, "")
	ctx := context.Background()

	userOnly, err := svc.UserOrAllTokensFiltered(ctx, mainnet, model.CoinETH, model.TokenTypeAll, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"ETH", "DAI"}, symbols(userOnly))
	assert.Empty(t, registry.calls)

	all, err := svc.UserOrAllTokensFiltered(ctx, mainnet, model.CoinETH, model.TokenTypeAll, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"ETH", "BAT", "DAI"}, symbols(all))
}

func TestService_NotReady(t *testing.T) {
	ctx := context.Background()

	noWallet := NewService(&fakeRegistry{}, nil, "")
	assert.False(t, noWallet.Ready())
	_, err := noWallet.UserOrAllTokensFiltered(ctx, mainnet, model.CoinETH, model.TokenTypeAll, false)
	assert.ErrorIs(t, err, ErrNotReady)
	_, err = noWallet.UserAssetsFiltered(ctx, mainnet, model.CoinETH, model.TokenTypeAll)
	assert.ErrorIs(t, err, ErrNotReady)

	noRegistry := NewService(nil, &fakeWallet{}, "")
	_, err = noRegistry.UserOrAllTokensFiltered(ctx, mainnet, model.CoinETH, model.TokenTypeAll, true)
	assert.ErrorIs(t, err, ErrNotReady)
	_, err = noRegistry.BuyTokensFiltered(ctx, mainnet, model.TokenTypeAll, nil)
	assert.ErrorIs(t, err, ErrNotReady)
	_, err = noRegistry.IsCustomToken(ctx, mainnet, model.CoinETH, erc20("BAT", batContract))
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestService_BuyTokensFiltered(t *testing.T) {
	registry := &fakeRegistry{buy: []model.BlockchainToken{
		erc20("USDC", usdcContract),
		MakeNetworkAsset(mainnet),
		erc20("DAI", daiContract),
		erc20("BAT", batContract),
	}}
	svc := NewService(registry, nil, "")
	providers := []model.OnRampProvider{model.OnRampRamp, model.OnRampSardine}

	got, err := svc.BuyTokensFiltered(context.Background(), mainnet, model.TokenTypeAll, providers)
	require.NoError(t, err)
	assert.Equal(t, []string{"ETH", "BAT", "DAI", "USDC"}, symbols(got))
	assert.Equal(t, providers, registry.providers)

	custom := NewService(registry, nil, "usdc")
	got, err = custom.BuyTokensFiltered(context.Background(), mainnet, model.TokenTypeAll, providers)
	require.NoError(t, err)
	assert.Equal(t, []string{"ETH", "USDC", "BAT", "DAI"}, symbols(got))
}

func TestService_IsCustomToken(t *testing.T) {
	registry := &fakeRegistry{all: []model.BlockchainToken{erc20("BAT", batContract)}}
	svc := NewService(registry, &fakeWallet{}, "")
	ctx := context.Background()

	custom, err := svc.IsCustomToken(ctx, mainnet, model.CoinETH, erc20("BAT", batContract))
	require.NoError(t, err)
	assert.False(t, custom)

	custom, err = svc.IsCustomToken(ctx, mainnet, model.CoinETH, erc20("MINE", "0x2222222222222222222222222222222222222222"))
	require.NoError(t, err)
	assert.True(t, custom)

	// the native asset is always in the filtered list
	custom, err = svc.IsCustomToken(ctx, mainnet, model.CoinETH, MakeNetworkAsset(mainnet))
	require.NoError(t, err)
	assert.False(t, custom)
}

func TestService_ExactUserAsset(t *testing.T) {
	punk1 := erc721("PUNK", punkContract, "0x1")
	punk2 := erc721("PUNK", punkContract, "0x2")
	hidden := erc20("DAI", daiContract)
	hidden.Visible = false
	wallet := &fakeWallet{assets: []model.BlockchainToken{punk1, punk2, hidden}}
	svc := NewService(&fakeRegistry{}, wallet, "")
	ctx := context.Background()

	query := ExactAssetQuery{ContractAddress: punkContract, Symbol: "PUNK", Name: "PUNK", TokenID: "0x1"}
	got, err := svc.ExactUserAsset(ctx, mainnet, model.CoinETH, query)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "0x1", got.TokenID)

	query.TokenID = ""
	got, err = svc.ExactUserAsset(ctx, mainnet, model.CoinETH, query)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "0x2", got.TokenID, "last match wins")

	got, err = svc.ExactUserAsset(ctx, mainnet, model.CoinETH, ExactAssetQuery{ContractAddress: daiContract, Symbol: "DAI", Name: "DAI Token", Decimals: 18})
	require.NoError(t, err)
	assert.Nil(t, got, "hidden assets are not user assets")

	got, err = svc.ExactUserAsset(ctx, mainnet, model.CoinETH, ExactAssetQuery{ContractAddress: "", Symbol: "ETH", Name: "Ethereum", Decimals: 18})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "eth.png", got.Logo)
}

func TestService_ExactUserAsset_WalletError(t *testing.T) {
	svc := NewService(&fakeRegistry{}, &fakeWallet{err: errors.New("wallet down")}, "")

	got, err := svc.ExactUserAsset(context.Background(), mainnet, model.CoinETH, ExactAssetQuery{Symbol: "ETH"})
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestService_EveryQueryRecordsASpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	ctx := context.Background()
	svc := NewService(&fakeRegistry{all: []model.BlockchainToken{erc20("BAT", batContract)}}, &fakeWallet{}, "")
	_, err := svc.UserOrAllTokensFiltered(ctx, mainnet, model.CoinETH, model.TokenTypeAll, true)
	require.NoError(t, err)
	_, err = svc.IsCustomToken(ctx, mainnet, model.CoinETH, erc20("BAT", batContract))
	require.NoError(t, err)
	_, err = svc.ExactUserAsset(ctx, mainnet, model.CoinETH, ExactAssetQuery{Symbol: "ETH"})
	require.NoError(t, err)

	notReady := NewService(nil, nil, "")
	_, err = notReady.UserOrAllTokensFiltered(ctx, mainnet, model.CoinETH, model.TokenTypeAll, false)
	require.ErrorIs(t, err, ErrNotReady)

	statuses := map[string][]codes.Code{}
	for _, span := range recorder.Ended() {
		statuses[span.Name()] = append(statuses[span.Name()], span.Status().Code)
	}

	for _, name := range []string{
		"tokens.UserOrAllTokensFiltered",
		"tokens.IsCustomToken",
		"tokens.ExactUserAsset",
		"tokens.UserAssetsFiltered",
		"tokens.AllTokens",
	} {
		assert.Contains(t, statuses, name)
	}
	assert.Contains(t, statuses["tokens.UserOrAllTokensFiltered"], codes.Error, "not ready is recorded on the span")
}
