package resolver_test

import (
	"context"
	"errors"
	"testing"

	"cosmossdk.io/log"
	"github.com/stretchr/testify/require"

	"github.com/evrazdex/gateway-resolver/resolver"
	testutil "github.com/evrazdex/gateway-resolver/test_util"
	"github.com/evrazdex/gateway-resolver/types"
)

var ctx = context.Background()

type fixture struct {
	branding *testutil.Branding
	chain    *testutil.Chain
	prefs    *testutil.Preferences
	resolver *resolver.Resolver
}

func setup(branding *testutil.Branding, chain *testutil.Chain, prefs *testutil.Preferences) fixture {
	return fixture{
		branding: branding,
		chain:    chain,
		prefs:    prefs,
		resolver: resolver.New(branding, chain, prefs, log.NewNopLogger(), nil),
	}
}

func TestGateOrder(t *testing.T) {
	f := setup(testutil.NewBranding(), testutil.NewChain(), testutil.NewPreferences())

	var stages []resolver.Stage
	for _, g := range f.resolver.Gates() {
		stages = append(stages, g.Stage)
	}
	require.Equal(t, []resolver.Stage{
		resolver.StageBranding,
		resolver.StageOnChain,
		resolver.StageUserPreference,
	}, stages)
}

func TestBrandingDisallowedShortCircuits(t *testing.T) {
	f := setup(testutil.NewBranding("XBTSX"), testutil.NewChain(), testutil.NewPreferences("all"))

	d, err := f.resolver.Evaluate(ctx, "PIRATE", types.EvaluationOptions{})
	require.NoError(t, err)
	require.False(t, d.Enabled)
	require.Equal(t, resolver.StageBranding, d.Stage)

	require.Equal(t, 1, f.branding.CallCount())
	require.Zero(t, f.chain.CallCount())
	require.Zero(t, f.prefs.CallCount())
}

func TestBrandingDisallowedIgnoresOtherSources(t *testing.T) {
	for _, chain := range []*testutil.Chain{testutil.NewChain(), testutil.NewChain("PIRATE")} {
		for _, prefs := range [][]string{nil, {"all"}, {"PIRATE"}} {
			f := setup(testutil.NewBranding(), chain, testutil.NewPreferences(prefs...))

			enabled, err := f.resolver.IsEnabled(ctx, "PIRATE", types.EvaluationOptions{})
			require.NoError(t, err)
			require.False(t, enabled)
		}
	}
}

func TestOnlyBrandingSkipsOnChain(t *testing.T) {
	chain := testutil.NewChain("XBTSX")
	f := setup(testutil.NewBranding("XBTSX"), chain, testutil.NewPreferences())

	d, err := f.resolver.Evaluate(ctx, "XBTSX", types.EvaluationOptions{OnlyBranding: true})
	require.NoError(t, err)
	require.True(t, d.Enabled)
	require.Equal(t, resolver.StageBranding, d.Stage)
	require.Zero(t, chain.CallCount())
	require.Zero(t, f.prefs.CallCount())

	// still denied when branding says no
	enabled, err := f.resolver.IsEnabled(ctx, "IOB", types.EvaluationOptions{OnlyBranding: true})
	require.NoError(t, err)
	require.False(t, enabled)
}

func TestOnlyOnChainConfigSkipsBranding(t *testing.T) {
	f := setup(testutil.NewBranding(), testutil.NewChain("IOB"), testutil.NewPreferences())
	opts := types.EvaluationOptions{OnlyOnChainConfig: true}

	d, err := f.resolver.Evaluate(ctx, "XBTSX", opts)
	require.NoError(t, err)
	require.True(t, d.Enabled)
	require.Equal(t, resolver.StageOnChain, d.Stage)

	enabled, err := f.resolver.IsEnabled(ctx, "IOB", opts)
	require.NoError(t, err)
	require.False(t, enabled)

	require.Zero(t, f.branding.CallCount())
	require.Zero(t, f.prefs.CallCount())
	require.Equal(t, 2, f.chain.CallCount())
}

func TestBothOptionsOnChainWins(t *testing.T) {
	chain := testutil.NewChain()
	f := setup(testutil.NewBranding(), chain, testutil.NewPreferences())

	// branding would deny, but it is never asked
	enabled, err := f.resolver.IsEnabled(ctx, "XBTSX", types.EvaluationOptions{OnlyOnChainConfig: true, OnlyBranding: true})
	require.NoError(t, err)
	require.True(t, enabled)
	require.Zero(t, f.branding.CallCount())
	require.Equal(t, 1, chain.CallCount())
}

func TestOnChainDisabled(t *testing.T) {
	f := setup(testutil.NewBranding("IOB"), testutil.NewChain("IOB"), testutil.NewPreferences("all"))

	d, err := f.resolver.Evaluate(ctx, "IOB", types.EvaluationOptions{})
	require.NoError(t, err)
	require.False(t, d.Enabled)
	require.Equal(t, resolver.StageOnChain, d.Stage)
	require.Zero(t, f.prefs.CallCount())
}

func TestUserPreference(t *testing.T) {
	tests := []struct {
		name     string
		filtered []string
		id       types.GatewayID
		expected bool
	}{
		{"all sentinel", []string{"all"}, "XBTSX", true},
		{"listed", []string{"XBTSX"}, "XBTSX", true},
		{"not listed", []string{"IOB"}, "XBTSX", false},
		{"empty", []string{}, "XBTSX", false},
		{"unset", nil, "XBTSX", false},
		{"all is only a sentinel alone", []string{"all", "IOB"}, "XBTSX", false},
		{"all next to a listed id", []string{"all", "XBTSX"}, "XBTSX", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(testutil.NewBranding(tt.id), testutil.NewChain(), testutil.NewPreferences(tt.filtered...))

			d, err := f.resolver.Evaluate(ctx, tt.id, types.EvaluationOptions{})
			require.NoError(t, err)
			require.Equal(t, tt.expected, d.Enabled)
			require.Equal(t, resolver.StageUserPreference, d.Stage)
		})
	}
}

func TestAllowedEverywhere(t *testing.T) {
	f := setup(testutil.NewBranding("XBTSX"), testutil.NewChain(), testutil.NewPreferences("XBTSX"))

	enabled, err := f.resolver.IsEnabled(ctx, "XBTSX", types.EvaluationOptions{})
	require.NoError(t, err)
	require.True(t, enabled)
	require.Equal(t, 1, f.branding.CallCount())
	require.Equal(t, 1, f.chain.CallCount())
	require.Equal(t, 1, f.prefs.CallCount())
}

func TestOnChainFailurePropagates(t *testing.T) {
	cause := types.NewConfigUnavailable("XBTSX", "unable to read on-chain configuration", errors.New("timeout"))
	chain := testutil.NewChain()
	chain.Err = cause
	f := setup(testutil.NewBranding("XBTSX"), chain, testutil.NewPreferences("all"))

	enabled, err := f.resolver.IsEnabled(ctx, "XBTSX", types.EvaluationOptions{})
	require.ErrorIs(t, err, cause)
	require.ErrorIs(t, err, types.ErrConfigUnavailable)
	require.False(t, enabled)
	require.Zero(t, f.prefs.CallCount())
}

func TestNoCachingBetweenCalls(t *testing.T) {
	chain := testutil.NewChain()
	prefs := testutil.NewPreferences("XBTSX")
	f := setup(testutil.NewBranding("XBTSX"), chain, prefs)

	enabled, err := f.resolver.IsEnabled(ctx, "XBTSX", types.EvaluationOptions{})
	require.NoError(t, err)
	require.True(t, enabled)

	prefs.List = []string{}
	enabled, err = f.resolver.IsEnabled(ctx, "XBTSX", types.EvaluationOptions{})
	require.NoError(t, err)
	require.False(t, enabled)

	prefs.List = []string{"all"}
	chain.Disabled["XBTSX"] = true
	enabled, err = f.resolver.IsEnabled(ctx, "XBTSX", types.EvaluationOptions{})
	require.NoError(t, err)
	require.False(t, enabled)
}

func TestUserAllows(t *testing.T) {
	require.True(t, resolver.UserAllows([]string{"all"}, "ANY"))
	require.False(t, resolver.UserAllows(nil, "ANY"))
	require.False(t, resolver.UserAllows([]string{"ALL"}, "ANY"))
}
