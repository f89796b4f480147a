// Package resolver decides whether a gateway may currently be offered to the user.
//
// Three sources are consulted in a fixed order, each able to end the evaluation:
//
//  1. branding: is the gateway part of this deployment at all?
//  2. on-chain: has governance temporarily disabled it?
//  3. user preference: did the user keep it in their filter list?
//
// EvaluationOptions can stop the evaluation early after branding (OnlyBranding) or skip
// branding and user preference entirely (OnlyOnChainConfig). Nothing is cached between
// calls, so changes in any source are visible on the next evaluation.
package resolver

import (
	"context"

	"cosmossdk.io/log"

	"github.com/evrazdex/gateway-resolver/metrics"
	"github.com/evrazdex/gateway-resolver/types"
)

// Verdict is the outcome of a single gate.
type Verdict int

const (
	// Continue hands the evaluation to the next gate.
	Continue Verdict = iota
	Allow
	Deny
)

func (v Verdict) String() string {
	switch v {
	case Allow:
		return "allow"
	case Deny:
		return "deny"
	default:
		return "continue"
	}
}

// Stage names the source that produced a decision.
type Stage string

const (
	StageBranding       Stage = "branding"
	StageOnChain        Stage = "on-chain"
	StageUserPreference Stage = "user-preference"
	// StageRetired and StageUnknown are decided before any gate runs.
	StageRetired Stage = "retired"
	StageUnknown Stage = "unknown"
)

// Gate is one step of the evaluation.
type Gate struct {
	Stage Stage
	Check func(ctx context.Context, id types.GatewayID, opts types.EvaluationOptions) (Verdict, error)
}

type Decision struct {
	Gateway types.GatewayID `json:"gateway"`
	Enabled bool            `json:"enabled"`
	Stage   Stage           `json:"stage"`
}

type Resolver struct {
	branding types.BrandingConfig
	chain    types.ChainConfigProvider
	prefs    types.UserPreferenceStore

	logger  log.Logger
	metrics *metrics.PromMetrics

	gates []Gate
}

// New wires the three sources into a Resolver. m may be nil.
func New(
	branding types.BrandingConfig,
	chain types.ChainConfigProvider,
	prefs types.UserPreferenceStore,
	logger log.Logger,
	m *metrics.PromMetrics,
) *Resolver {
	r := &Resolver{
		branding: branding,
		chain:    chain,
		prefs:    prefs,
		logger:   logger.With("component", "resolver"),
		metrics:  m,
	}
	r.gates = []Gate{
		{Stage: StageBranding, Check: r.brandingGate},
		{Stage: StageOnChain, Check: r.onChainGate},
		{Stage: StageUserPreference, Check: r.userPreferenceGate},
	}
	return r
}

// Gates returns the gates in evaluation order.
func (r *Resolver) Gates() []Gate {
	out := make([]Gate, len(r.gates))
	copy(out, r.gates)
	return out
}

// IsEnabled reports whether id may be offered. A failed on-chain lookup is returned as is.
func (r *Resolver) IsEnabled(ctx context.Context, id types.GatewayID, opts types.EvaluationOptions) (bool, error) {
	d, err := r.Evaluate(ctx, id, opts)
	if err != nil {
		return false, err
	}
	return d.Enabled, nil
}

// Evaluate runs the gates in order until one allows or denies.
func (r *Resolver) Evaluate(ctx context.Context, id types.GatewayID, opts types.EvaluationOptions) (Decision, error) {
	r.logger.Debug("checking gateway", "gateway", id)

	for _, g := range r.gates {
		v, err := g.Check(ctx, id, opts)
		if err != nil {
			r.logger.Debug("gateway check failed", "gateway", id, "stage", g.Stage, "err", err)
			return Decision{}, err
		}
		if v == Continue {
			continue
		}
		return r.decide(id, g.Stage, v == Allow), nil
	}

	// every gate passed without an answer; stay conservative
	return r.decide(id, r.gates[len(r.gates)-1].Stage, false), nil
}

func (r *Resolver) decide(id types.GatewayID, stage Stage, enabled bool) Decision {
	if enabled {
		r.logger.Debug("gateway may be used", "gateway", id, "stage", stage)
	} else {
		r.logger.Debug("gateway disabled", "gateway", id, "stage", stage)
	}
	r.metrics.ObserveDecision(string(id), string(stage), enabled)
	return Decision{Gateway: id, Enabled: enabled, Stage: stage}
}

func (r *Resolver) brandingGate(_ context.Context, id types.GatewayID, opts types.EvaluationOptions) (Verdict, error) {
	if opts.OnlyOnChainConfig {
		return Continue, nil
	}
	if !r.branding.AllowsGateway(id) {
		return Deny, nil
	}
	if opts.OnlyBranding {
		return Allow, nil
	}
	return Continue, nil
}

func (r *Resolver) onChainGate(ctx context.Context, id types.GatewayID, opts types.EvaluationOptions) (Verdict, error) {
	disabled, err := r.chain.IsGatewayTemporarilyDisabled(ctx, id)
	if err != nil {
		return Continue, err
	}
	if disabled {
		return Deny, nil
	}
	if opts.OnlyOnChainConfig {
		return Allow, nil
	}
	return Continue, nil
}

func (r *Resolver) userPreferenceGate(_ context.Context, id types.GatewayID, _ types.EvaluationOptions) (Verdict, error) {
	if UserAllows(r.prefs.FilteredServiceProviders(), id) {
		return Allow, nil
	}
	return Deny, nil
}

// UserAllows applies a filter list: exactly ["all"] allows everything, otherwise id must be
// listed. A nil or empty list allows nothing.
func UserAllows(filtered []string, id types.GatewayID) bool {
	if len(filtered) == 1 && filtered[0] == types.AllServiceProviders {
		return true
	}
	for _, f := range filtered {
		if f == string(id) {
			return true
		}
	}
	return false
}
