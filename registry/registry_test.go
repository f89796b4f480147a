package registry_test

import (
	"context"
	"errors"
	"testing"

	"cosmossdk.io/log"
	"github.com/stretchr/testify/require"

	"github.com/evrazdex/gateway-resolver/registry"
	"github.com/evrazdex/gateway-resolver/resolver"
	testutil "github.com/evrazdex/gateway-resolver/test_util"
	"github.com/evrazdex/gateway-resolver/types"
)

var ctx = context.Background()

func newRegistry(t *testing.T, branding *testutil.Branding, chain *testutil.Chain, prefs *testutil.Preferences) *registry.Registry {
	t.Helper()
	r := resolver.New(branding, chain, prefs, log.NewNopLogger(), nil)
	return registry.Default(r)
}

func TestDefaultTables(t *testing.T) {
	reg := newRegistry(t, testutil.NewBranding(), testutil.NewChain(), testutil.NewPreferences())

	require.Equal(t, []string{"IOB", "GDEX", "PIRATE", "XBTSX"}, reg.Prefixes())
	require.Len(t, reg.Bridges(), 1)
	require.Len(t, reg.All(), 5)

	gdex, err := reg.Lookup("GDEX")
	require.NoError(t, err)
	require.True(t, gdex.Retired())

	iob, err := reg.Lookup("IOB")
	require.NoError(t, err)
	require.False(t, iob.Retired())
	require.Equal(t, "dex:rAddress", iob.FixedMemo.Apply("rAddress", false))
	require.Equal(t, "https://api.ioxbank.com/bitshares/coins", iob.BaseAPI.URL(iob.BaseAPI.Coins))

	trade, err := reg.Lookup("TRADE")
	require.NoError(t, err)
	require.Equal(t, types.KindBridge, trade.Kind)
	require.False(t, trade.HasNamespace())
}

func TestLookupUnknown(t *testing.T) {
	reg := newRegistry(t, testutil.NewBranding(), testutil.NewChain(), testutil.NewPreferences())

	_, err := reg.Lookup("NOPE")
	require.ErrorIs(t, err, types.ErrInvalidIdentifier)
}

func TestDerivePrefixedAssetSymbols(t *testing.T) {
	r := resolver.New(testutil.NewBranding(), testutil.NewChain(), testutil.NewPreferences(), log.NewNopLogger(), nil)
	reg, err := registry.New(r, []types.GatewayDescriptor{
		{ID: "XBTSX", Kind: types.KindGateway, Capability: types.Dynamic("XBTSX")},
		{ID: "IOB", Kind: types.KindGateway, Capability: types.Dynamic("IOB")},
	}, registry.DefaultBridges())
	require.NoError(t, err)

	require.Equal(t,
		[]string{"XBTSX.BTC", "XBTSX.ETH", "IOB.BTC", "IOB.ETH"},
		reg.DerivePrefixedAssetSymbols([]string{"BTC", "ETH"}),
	)
	require.Empty(t, reg.DerivePrefixedAssetSymbols(nil))
}

func TestNewRejectsInvalidTables(t *testing.T) {
	r := resolver.New(testutil.NewBranding(), testutil.NewChain(), testutil.NewPreferences(), log.NewNopLogger(), nil)

	_, err := registry.New(r, registry.DefaultGateways(), registry.DefaultGateways())
	require.Error(t, err)

	_, err = registry.New(r, []types.GatewayDescriptor{
		{ID: "IOB", Capability: types.Dynamic("XBTSX")},
	}, nil)
	require.Error(t, err)
}

func TestIsEnabledScenarios(t *testing.T) {
	branding := testutil.NewBranding("XBTSX", "IOB", "GDEX", "TRADE")
	chain := testutil.NewChain("IOB")
	prefs := testutil.NewPreferences("XBTSX")
	reg := newRegistry(t, branding, chain, prefs)

	// branding disallows PIRATE
	enabled, err := reg.IsEnabled(ctx, "PIRATE", types.EvaluationOptions{})
	require.NoError(t, err)
	require.False(t, enabled)
	require.Zero(t, chain.CallCount())
	require.Zero(t, prefs.CallCount())

	// allowed everywhere
	enabled, err = reg.IsEnabled(ctx, "XBTSX", types.EvaluationOptions{})
	require.NoError(t, err)
	require.True(t, enabled)

	// disabled on-chain
	enabled, err = reg.IsEnabled(ctx, "IOB", types.EvaluationOptions{})
	require.NoError(t, err)
	require.False(t, enabled)

	// filtered out by the user
	enabled, err = reg.IsEnabled(ctx, "TRADE", types.EvaluationOptions{})
	require.NoError(t, err)
	require.False(t, enabled)
}

func TestRetiredNeverOverridden(t *testing.T) {
	branding := testutil.NewBranding("GDEX")
	chain := testutil.NewChain()
	prefs := testutil.NewPreferences("all")
	reg := newRegistry(t, branding, chain, prefs)

	for _, opts := range []types.EvaluationOptions{{}, {OnlyBranding: true}, {OnlyOnChainConfig: true}} {
		d, err := reg.Evaluate(ctx, "GDEX", opts)
		require.NoError(t, err)
		require.False(t, d.Enabled)
		require.Equal(t, resolver.StageRetired, d.Stage)
	}
	require.Zero(t, branding.CallCount())
	require.Zero(t, chain.CallCount())
}

func TestUnknownIdentifierIsUnavailable(t *testing.T) {
	branding := testutil.NewBranding("NOPE")
	chain := testutil.NewChain()
	reg := newRegistry(t, branding, chain, testutil.NewPreferences("all"))

	d, err := reg.Evaluate(ctx, "NOPE", types.EvaluationOptions{OnlyOnChainConfig: true})
	require.NoError(t, err)
	require.False(t, d.Enabled)
	require.Equal(t, resolver.StageUnknown, d.Stage)
	require.Zero(t, chain.CallCount())
}

func TestOnChainFailureSurfaces(t *testing.T) {
	chain := testutil.NewChain()
	chain.Err = errors.New("node unreachable")
	reg := newRegistry(t, testutil.NewBranding("XBTSX"), chain, testutil.NewPreferences("all"))

	_, err := reg.IsEnabled(ctx, "XBTSX", types.EvaluationOptions{})
	require.EqualError(t, err, "node unreachable")

	results := reg.EvaluateAll(ctx, types.EvaluationOptions{}, 4)
	require.Len(t, results, 5)
	for _, res := range results {
		require.False(t, res.Enabled)
	}
}
