package types

import "fmt"

// GatewayID uniquely names a gateway or bridge, e.g. "XBTSX".
type GatewayID string

func (id GatewayID) String() string { return string(id) }

// Kind separates asset-custody gateways from swap bridges.
type Kind string

const (
	KindGateway Kind = "gateway"
	KindBridge  Kind = "bridge"
)

type capabilityKind uint8

const (
	capabilityDynamic capabilityKind = iota
	capabilityRetired
)

// Capability is how a descriptor answers "is it enabled?". It is either Dynamic, meaning
// the resolver decides for the bound identifier, or PermanentlyDisabled, which is always
// false and never consults any source.
type Capability struct {
	kind capabilityKind
	id   GatewayID
}

// Dynamic binds a capability to the resolver for id.
func Dynamic(id GatewayID) Capability {
	return Capability{kind: capabilityDynamic, id: id}
}

// PermanentlyDisabled marks a retired entry.
func PermanentlyDisabled() Capability {
	return Capability{kind: capabilityRetired}
}

// Retired reports whether the capability is the constant-false marker.
func (c Capability) Retired() bool {
	return c.kind == capabilityRetired
}

// Bound returns the identifier the resolver is called with. ok is false for retired entries.
func (c Capability) Bound() (id GatewayID, ok bool) {
	if c.Retired() {
		return "", false
	}
	return c.id, true
}

func (c Capability) String() string {
	if c.Retired() {
		return "retired"
	}
	return fmt.Sprintf("dynamic(%s)", c.id)
}

// Endpoints is the set of API locations a gateway exposes for deposit and withdraw.
type Endpoints struct {
	BaseURL              string `json:"base_url" yaml:"base-url"`
	Coins                string `json:"coins,omitempty" yaml:"coins,omitempty"`
	ActiveWallets        string `json:"active_wallets,omitempty" yaml:"active-wallets,omitempty"`
	TradingPairs         string `json:"trading_pairs,omitempty" yaml:"trading-pairs,omitempty"`
	DepositLimit         string `json:"deposit_limit,omitempty" yaml:"deposit-limit,omitempty"`
	EstimateOutputAmount string `json:"estimate_output_amount,omitempty" yaml:"estimate-output-amount,omitempty"`
	EstimateInputAmount  string `json:"estimate_input_amount,omitempty" yaml:"estimate-input-amount,omitempty"`
	NewDepositAddress    string `json:"new_deposit_address,omitempty" yaml:"new-deposit-address,omitempty"`
}

// URL joins the base url with one of the endpoint paths.
func (e Endpoints) URL(path string) string {
	if path == "" {
		return e.BaseURL
	}
	return e.BaseURL + path
}

// FixedMemo holds the memo prefixing rules some gateways require on withdraw.
type FixedMemo struct {
	PrependDefault string `json:"prepend_default"`
	PrependBtsID   string `json:"prepend_btsid"`
	Append         string `json:"append"`
}

// Apply decorates memo. btsid selects the prefix used when the memo carries a BitShares
// account id instead of an external address.
func (m *FixedMemo) Apply(memo string, btsid bool) string {
	if m == nil {
		return memo
	}
	prefix := m.PrependDefault
	if btsid {
		prefix = m.PrependBtsID
	}
	return prefix + memo + m.Append
}

// GatewayDescriptor describes one known gateway or bridge. Descriptors are built once from
// the static tables and never mutated.
type GatewayDescriptor struct {
	ID         GatewayID
	Name       string
	Kind       Kind
	BaseAPI    *Endpoints
	Capability Capability

	IsSimple               bool
	SimpleAssetGateway     bool
	FixedMemo              *FixedMemo
	AddressValidatorMethod string

	Landing string
	Wallet  string
	Comment string
}

// Retired is shorthand for d.Capability.Retired().
func (d GatewayDescriptor) Retired() bool {
	return d.Capability.Retired()
}

// HasNamespace reports whether wrapped assets are issued under the identifier.
func (d GatewayDescriptor) HasNamespace() bool {
	return d.Kind == KindGateway
}
