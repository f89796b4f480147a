package resolver

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/evrazdex/gateway-resolver/types"
)

// Result is the availability of one descriptor. Err is set when the on-chain lookup failed;
// Enabled is then false.
type Result struct {
	Descriptor types.GatewayDescriptor
	Enabled    bool
	Stage      Stage
	Err        error
}

func (res Result) Retired() bool {
	return res.Descriptor.Retired()
}

// EvaluateDescriptor dispatches on the descriptor's capability. Retired entries are never
// passed to the gates.
func (r *Resolver) EvaluateDescriptor(ctx context.Context, d types.GatewayDescriptor, opts types.EvaluationOptions) (Decision, error) {
	id, ok := d.Capability.Bound()
	if !ok {
		r.logger.Debug("gateway is retired", "gateway", d.ID)
		return Decision{Gateway: d.ID, Enabled: false, Stage: StageRetired}, nil
	}
	return r.Evaluate(ctx, id, opts)
}

// EvaluateAll evaluates every descriptor concurrently, at most workers at a time (unbounded
// if workers <= 0). Results keep the order of descs and one failure does not stop the others.
func (r *Resolver) EvaluateAll(ctx context.Context, descs []types.GatewayDescriptor, opts types.EvaluationOptions, workers int) []Result {
	results := make([]Result, len(descs))

	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, d := range descs {
		i, d := i, d
		g.Go(func() error {
			dec, err := r.EvaluateDescriptor(ctx, d, opts)
			if err != nil {
				r.logger.Debug("treating gateway as unavailable", "gateway", d.ID, "err", err)
				results[i] = Result{Descriptor: d, Enabled: false, Stage: StageOnChain, Err: err}
				return nil
			}
			results[i] = Result{Descriptor: d, Enabled: dec.Enabled, Stage: dec.Stage}
			return nil
		})
	}
	_ = g.Wait()

	return results
}
