package registry

import (
	"github.com/evrazdex/gateway-resolver/types"
)

var (
	ioxbankAPIs = types.Endpoints{
		BaseURL:              "https://api.ioxbank.com/bitshares",
		Coins:                "/coins",
		ActiveWallets:        "/active-wallets",
		TradingPairs:         "/trading-pairs",
		DepositLimit:         "/deposit-limits",
		EstimateOutputAmount: "/estimate-output-amount",
		EstimateInputAmount:  "/estimate-input-amount",
	}
	gdex2APIs = types.Endpoints{
		BaseURL:       "https://api.gdex.io/adjust",
		Coins:         "/coins",
		ActiveWallets: "/active-wallets",
		TradingPairs:  "/trading-pairs",
	}
	pirateCashAPIs = types.Endpoints{
		BaseURL:           "https://bts.piratecash.net/api/v2",
		Coins:             "/coin",
		NewDepositAddress: "/simple-api/initiate-trade",
	}
	xbtsxAPIs = types.Endpoints{
		BaseURL:           "https://apis.xbts.io/api/v2",
		Coins:             "/coin",
		NewDepositAddress: "/simple-api/initiate-trade",
	}
)

// DefaultGateways is the gateway table in display order. GDEX only supports manual
// deposit and withdraw and is retired.
func DefaultGateways() []types.GatewayDescriptor {
	return []types.GatewayDescriptor{
		{
			ID:                 "IOB",
			Name:               "ioxbank",
			Kind:               types.KindGateway,
			BaseAPI:            endpoints(ioxbankAPIs),
			Capability:         types.Dynamic("IOB"),
			IsSimple:           true,
			SimpleAssetGateway: true,
			FixedMemo: &types.FixedMemo{
				PrependDefault: "dex:",
				PrependBtsID:   "",
				Append:         "",
			},
			AddressValidatorMethod: "POST",
			Landing:                "https://ioxbank.com",
			Wallet:                 "https://dex.iobanker.com/",
		},
		{
			ID:         "GDEX",
			Name:       "GDEX",
			Kind:       types.KindGateway,
			BaseAPI:    endpoints(gdex2APIs),
			Capability: types.PermanentlyDisabled(),
			Landing:    "https://bitsharestalk.org/index.php?topic=33861",
			Wallet:     "Only manual deposit / withdraw",
			Comment:    "Only manual deposit / withdraw",
		},
		{
			ID:                     "PIRATE",
			Name:                   "PirateCash",
			Kind:                   types.KindGateway,
			BaseAPI:                endpoints(pirateCashAPIs),
			Capability:             types.Dynamic("PIRATE"),
			IsSimple:               true,
			AddressValidatorMethod: "POST",
			Landing:                "https://piratecash.net",
			Wallet:                 "https://wallet.piratecash.net/",
		},
		{
			ID:                     "XBTSX",
			Name:                   "XBTS Native Chains",
			Kind:                   types.KindGateway,
			BaseAPI:                endpoints(xbtsxAPIs),
			Capability:             types.Dynamic("XBTSX"),
			IsSimple:               true,
			AddressValidatorMethod: "POST",
			Landing:                "https://xbts.io/",
			Wallet:                 "https://ex.xbts.io/",
		},
	}
}

func DefaultBridges() []types.GatewayDescriptor {
	return []types.GatewayDescriptor{
		{
			ID:         "TRADE",
			Name:       "Blocktrades",
			Kind:       types.KindBridge,
			Capability: types.Dynamic("TRADE"),
			Landing:    "https://blocktrades.us",
		},
	}
}

func endpoints(e types.Endpoints) *types.Endpoints {
	return &e
}

// DefaultPrefixes are the identifiers of DefaultGateways in table order.
func DefaultPrefixes() []string {
	gateways := DefaultGateways()
	out := make([]string, 0, len(gateways))
	for _, d := range gateways {
		out = append(out, string(d.ID))
	}
	return out
}
