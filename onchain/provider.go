package onchain

import (
	"context"
	"sync"
	"time"

	"cosmossdk.io/log"

	"github.com/evrazdex/gateway-resolver/branding"
	"github.com/evrazdex/gateway-resolver/metrics"
	"github.com/evrazdex/gateway-resolver/types"
)

var _ types.ChainConfigProvider = (*Provider)(nil)

// Provider answers whether a gateway is temporarily disabled by the configuration asset.
// Lookups are not retried.
type Provider struct {
	lookup  AssetLookup
	logger  log.Logger
	metrics *metrics.PromMetrics
	ttl     time.Duration
	now     func() time.Time

	mu        sync.Mutex
	asset     branding.ConfigurationAsset
	cached    *Config
	fetchedAt time.Time
}

// NewProvider creates a Provider. An empty cfg.ConfigAsset resolves the symbol from the chain
// id on first use; cfg.CacheTTL of zero fetches on every call.
func NewProvider(lookup AssetLookup, logger log.Logger, m *metrics.PromMetrics, cfg types.ChainSettings) *Provider {
	p := &Provider{
		lookup:  lookup,
		logger:  logger.With("component", "onchain"),
		metrics: m,
		ttl:     time.Duration(cfg.CacheTTL) * time.Second,
		now:     time.Now,
	}
	if cfg.ConfigAsset != "" {
		p.asset = branding.ConfigurationAssetFor(false)
		p.asset.Symbol = cfg.ConfigAsset
	}
	return p
}

func (p *Provider) IsGatewayTemporarilyDisabled(ctx context.Context, id types.GatewayID) (bool, error) {
	cfg, err := p.Config(ctx)
	if err != nil {
		return false, types.NewConfigUnavailable(id, "unable to read on-chain configuration", err)
	}
	return cfg.GatewayDisabled(string(id)), nil
}

// Config returns the current on-chain configuration, from cache when still fresh.
func (p *Provider) Config(ctx context.Context) (*Config, error) {
	p.mu.Lock()
	if p.cached != nil && p.ttl > 0 && p.now().Sub(p.fetchedAt) < p.ttl {
		cfg := p.cached
		p.mu.Unlock()
		return cfg, nil
	}
	p.mu.Unlock()

	start := time.Now()
	cfg, err := p.fetch(ctx)
	p.metrics.ObserveOnChainLookup(time.Since(start).Seconds(), err)
	if err != nil {
		p.logger.Debug("on-chain configuration lookup failed", "err", err)
		return nil, err
	}

	if p.ttl > 0 {
		p.mu.Lock()
		p.cached = cfg
		p.fetchedAt = p.now()
		p.mu.Unlock()
	}
	return cfg, nil
}

func (p *Provider) fetch(ctx context.Context) (*Config, error) {
	asset, err := p.configurationAsset(ctx)
	if err != nil {
		return nil, err
	}

	a, err := p.lookup.LookupAsset(ctx, asset.Symbol)
	if err != nil {
		return nil, err
	}
	if a == nil {
		p.logger.Debug("configuration asset not found on chain", "symbol", asset.Symbol)
		return &Config{}, nil
	}
	return ParseDescription(a.Options.Description, asset.Explanation)
}

func (p *Provider) configurationAsset(ctx context.Context) (branding.ConfigurationAsset, error) {
	p.mu.Lock()
	asset := p.asset
	p.mu.Unlock()
	if asset.Symbol != "" {
		return asset, nil
	}

	chainID, err := p.lookup.ChainID(ctx)
	if err != nil {
		return branding.ConfigurationAsset{}, err
	}
	asset = branding.ConfigurationAssetFor(branding.IsTestnet(chainID))
	p.logger.Info("resolved configuration asset", "chain_id", chainID, "symbol", asset.Symbol)

	p.mu.Lock()
	p.asset = asset
	p.mu.Unlock()
	return asset, nil
}
