package testutil

import (
	"context"
	"sync"

	"github.com/evrazdex/gateway-resolver/types"
)

var (
	_ types.BrandingConfig      = (*Branding)(nil)
	_ types.ChainConfigProvider = (*Chain)(nil)
	_ types.UserPreferenceStore = (*Preferences)(nil)
)

// Branding allows exactly the listed gateways and counts lookups.
type Branding struct {
	mu      sync.Mutex
	Allowed map[types.GatewayID]bool
	Calls   int
}

func NewBranding(allowed ...types.GatewayID) *Branding {
	b := &Branding{Allowed: map[types.GatewayID]bool{}}
	for _, id := range allowed {
		b.Allowed[id] = true
	}
	return b
}

func (b *Branding) AllowsGateway(id types.GatewayID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Calls++
	return b.Allowed[id]
}

func (b *Branding) CallCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.Calls
}

// Chain reports the listed gateways as disabled, or fails every lookup with Err.
type Chain struct {
	mu       sync.Mutex
	Disabled map[types.GatewayID]bool
	Err      error
	Calls    int
}

func NewChain(disabled ...types.GatewayID) *Chain {
	c := &Chain{Disabled: map[types.GatewayID]bool{}}
	for _, id := range disabled {
		c.Disabled[id] = true
	}
	return c
}

func (c *Chain) IsGatewayTemporarilyDisabled(_ context.Context, id types.GatewayID) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Calls++
	if c.Err != nil {
		return false, c.Err
	}
	return c.Disabled[id], nil
}

func (c *Chain) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Calls
}

// Preferences returns List and counts reads.
type Preferences struct {
	mu    sync.Mutex
	List  []string
	Calls int
}

func NewPreferences(list ...string) *Preferences {
	return &Preferences{List: list}
}

func (p *Preferences) FilteredServiceProviders() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Calls++
	return p.List
}

func (p *Preferences) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.Calls
}
