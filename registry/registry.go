// Package registry is the table of known gateways and bridges.
package registry

import (
	"context"
	"fmt"

	"github.com/evrazdex/gateway-resolver/resolver"
	"github.com/evrazdex/gateway-resolver/types"
)

type Registry struct {
	resolver *resolver.Resolver

	gateways []types.GatewayDescriptor
	bridges  []types.GatewayDescriptor
	index    map[types.GatewayID]types.GatewayDescriptor
}

// New builds a registry. Identifiers must be unique across gateways and bridges, and a
// dynamic capability must be bound to its own descriptor's identifier.
func New(r *resolver.Resolver, gateways, bridges []types.GatewayDescriptor) (*Registry, error) {
	reg := &Registry{
		resolver: r,
		gateways: append([]types.GatewayDescriptor(nil), gateways...),
		bridges:  append([]types.GatewayDescriptor(nil), bridges...),
		index:    make(map[types.GatewayID]types.GatewayDescriptor, len(gateways)+len(bridges)),
	}

	for _, d := range reg.All() {
		if d.ID == "" {
			return nil, fmt.Errorf("descriptor without identifier (name: %s)", d.Name)
		}
		if _, dup := reg.index[d.ID]; dup {
			return nil, fmt.Errorf("duplicate gateway identifier %s", d.ID)
		}
		if id, ok := d.Capability.Bound(); ok && id != d.ID {
			return nil, fmt.Errorf("gateway %s is bound to %s", d.ID, id)
		}
		reg.index[d.ID] = d
	}
	return reg, nil
}

// Default builds the registry from the static tables.
func Default(r *resolver.Resolver) *Registry {
	reg, err := New(r, DefaultGateways(), DefaultBridges())
	if err != nil {
		panic(err)
	}
	return reg
}

func (reg *Registry) Gateways() []types.GatewayDescriptor {
	return append([]types.GatewayDescriptor(nil), reg.gateways...)
}

func (reg *Registry) Bridges() []types.GatewayDescriptor {
	return append([]types.GatewayDescriptor(nil), reg.bridges...)
}

// All lists gateways first, then bridges.
func (reg *Registry) All() []types.GatewayDescriptor {
	out := make([]types.GatewayDescriptor, 0, len(reg.gateways)+len(reg.bridges))
	out = append(out, reg.gateways...)
	return append(out, reg.bridges...)
}

func (reg *Registry) Lookup(id types.GatewayID) (types.GatewayDescriptor, error) {
	d, ok := reg.index[id]
	if !ok {
		return types.GatewayDescriptor{}, types.NewInvalidIdentifier(id)
	}
	return d, nil
}

// Prefixes are the gateway identifiers in table order. Bridges have no namespace.
func (reg *Registry) Prefixes() []string {
	out := make([]string, 0, len(reg.gateways))
	for _, d := range reg.gateways {
		out = append(out, string(d.ID))
	}
	return out
}

// DerivePrefixedAssetSymbols returns every gateway-wrapped symbol for bases, gateway-major.
func (reg *Registry) DerivePrefixedAssetSymbols(bases []string) []string {
	return DerivePrefixedAssetSymbols(reg.Prefixes(), bases)
}

// DerivePrefixedAssetSymbols joins each prefix with each base as "PREFIX.BASE", keeping the
// order of both inputs.
func DerivePrefixedAssetSymbols(prefixes, bases []string) []string {
	out := make([]string, 0, len(prefixes)*len(bases))
	for _, prefix := range prefixes {
		for _, base := range bases {
			out = append(out, prefix+"."+base)
		}
	}
	return out
}

// Evaluate decides availability for id. Unknown identifiers are unavailable, never an error.
func (reg *Registry) Evaluate(ctx context.Context, id types.GatewayID, opts types.EvaluationOptions) (resolver.Decision, error) {
	d, ok := reg.index[id]
	if !ok {
		return resolver.Decision{Gateway: id, Enabled: false, Stage: resolver.StageUnknown}, nil
	}
	return reg.resolver.EvaluateDescriptor(ctx, d, opts)
}

func (reg *Registry) IsEnabled(ctx context.Context, id types.GatewayID, opts types.EvaluationOptions) (bool, error) {
	d, err := reg.Evaluate(ctx, id, opts)
	if err != nil {
		return false, err
	}
	return d.Enabled, nil
}

// EvaluateAll evaluates every gateway and bridge concurrently.
func (reg *Registry) EvaluateAll(ctx context.Context, opts types.EvaluationOptions, workers int) []resolver.Result {
	return reg.resolver.EvaluateAll(ctx, reg.All(), opts, workers)
}
