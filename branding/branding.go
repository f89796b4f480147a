// Package branding holds the build-time customization of a wallet deployment: its name,
// the gateways it offers, the asset namespaces it recognizes and the chain it treats as
// mainnet.
package branding

import (
	"github.com/evrazdex/gateway-resolver/types"
)

var _ types.BrandingConfig = (*Branding)(nil)

// MainnetChainID is the BitShares mainnet chain id. Every other chain is treated as a testnet.
const MainnetChainID = "4018d7844c78f6a6c41c6a552b898022310fc5dec06da467ee7905a8dad512c8"

const (
	DefaultWalletName = "Evraz"
	DefaultWalletURL  = "https://evrazdex.org"
)

// DefaultAllowedGateways are offered in the deposit/withdraw dialog. OPEN, RUDEX, CITADEL,
// BRIDGE and SPARKDEX stay listed so that the retired warning can still be shown for them.
var DefaultAllowedGateways = []types.GatewayID{
	"TRADE",
	"OPEN",
	"RUDEX",
	"GDEX",
	"PIRATE",
	"XBTSX",
	"IOB",
	"CITADEL",
	"BRIDGE",
	"SPARKDEX",
}

var mainnetAssetNamespaces = []string{"XBTSX.", "GDEX.", "HONEST.", "IOB.", "PIRATE."}

const configurationAssetExplanation = "This asset is used for decentralized configuration of the BitShares UI placed under bitshares.org."

// ConfigurationAsset names the asset whose description carries the on-chain configuration.
type ConfigurationAsset struct {
	Symbol string
	// Explanation prefixes the configuration payload inside the asset description.
	Explanation string
}

type Branding struct {
	WalletName string
	WalletURL  string

	allowed []types.GatewayID
	index   map[types.GatewayID]struct{}
}

// New builds a Branding from the configured list. An empty list falls back to
// DefaultAllowedGateways.
func New(cfg types.BrandingSettings) *Branding {
	allowed := make([]types.GatewayID, 0, len(cfg.AllowedGateways))
	for _, g := range cfg.AllowedGateways {
		allowed = append(allowed, types.GatewayID(g))
	}
	if len(allowed) == 0 {
		allowed = append(allowed, DefaultAllowedGateways...)
	}

	b := &Branding{
		WalletName: cfg.WalletName,
		WalletURL:  cfg.WalletURL,
		allowed:    allowed,
		index:      make(map[types.GatewayID]struct{}, len(allowed)),
	}
	if b.WalletName == "" {
		b.WalletName = DefaultWalletName
	}
	if b.WalletURL == "" {
		b.WalletURL = DefaultWalletURL
	}
	for _, g := range allowed {
		b.index[g] = struct{}{}
	}
	return b
}

// Default returns the stock branding.
func Default() *Branding {
	return New(types.BrandingSettings{})
}

func (b *Branding) AllowsGateway(id types.GatewayID) bool {
	_, ok := b.index[id]
	return ok
}

// AllowsAny answers whether the deployment offers any gateway at all.
func (b *Branding) AllowsAny() bool {
	return len(b.allowed) > 0
}

// AllowedGateways returns a copy of the allowed list in configured order.
func (b *Branding) AllowedGateways() []types.GatewayID {
	out := make([]types.GatewayID, len(b.allowed))
	copy(out, b.allowed)
	return out
}

func IsTestnet(chainID string) bool {
	return chainID != MainnetChainID
}

func ConfigurationAssetFor(testnet bool) ConfigurationAsset {
	symbol := "TEST"
	if testnet {
		symbol = "NOTIFICATIONS"
	}
	return ConfigurationAsset{
		Symbol:      symbol,
		Explanation: configurationAssetExplanation,
	}
}

// AssetNamespaces lists the recognized wrapped-asset prefixes, dot included.
func AssetNamespaces(testnet bool) []string {
	if testnet {
		return []string{}
	}
	out := make([]string, len(mainnetAssetNamespaces))
	copy(out, mainnetAssetNamespaces)
	return out
}
