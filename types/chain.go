package types

import (
	"context"
)

// AllServiceProviders is the single-element filter list meaning "every gateway is allowed".
const AllServiceProviders = "all"

// BrandingConfig decides which gateways a deployment exposes at all.
type BrandingConfig interface {
	// AllowsGateway returns true if the build-time branding lists id.
	AllowsGateway(id GatewayID) bool
}

// ChainConfigProvider reads governance-controlled configuration from the chain.
type ChainConfigProvider interface {
	// IsGatewayTemporarilyDisabled returns true if the on-chain configuration disables id.
	// Lookup failures are returned, never translated into a decision.
	IsGatewayTemporarilyDisabled(ctx context.Context, id GatewayID) (bool, error)
}

// UserPreferenceStore exposes the user's locally persisted gateway filter.
type UserPreferenceStore interface {
	// FilteredServiceProviders returns the allowed identifiers, ["all"] for every gateway,
	// or an empty slice if nothing is stored.
	FilteredServiceProviders() []string
}
