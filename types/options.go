package types

// EvaluationOptions narrows which sources the resolver consults.
//
// OnlyOnChainConfig skips the branding and user preference gates and answers from the
// on-chain flag alone. OnlyBranding answers true as soon as branding allows the gateway.
// When both are set OnlyOnChainConfig wins: the branding gate is skipped, so OnlyBranding
// never gets a chance to short-circuit.
type EvaluationOptions struct {
	OnlyOnChainConfig bool `json:"onlyOnChainConfig" form:"onlyOnChainConfig"`
	OnlyBranding      bool `json:"onlyBranding" form:"onlyBranding"`
}
