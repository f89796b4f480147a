package onchain

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/rpc"
)

// Asset is the subset of a BitShares asset object the configuration lookup needs.
type Asset struct {
	ID      string `json:"id"`
	Symbol  string `json:"symbol"`
	Options struct {
		Description string `json:"description"`
	} `json:"options"`
}

// AssetLookup is the node API used by Provider.
type AssetLookup interface {
	ChainID(ctx context.Context) (string, error)
	LookupAsset(ctx context.Context, symbol string) (*Asset, error)
}

var _ AssetLookup = (*Client)(nil)

// Client talks JSON-RPC to a BitShares node over HTTP.
type Client struct {
	rpc *rpc.Client
}

// Dial prepares a client for rpcURL. Every request is bounded by timeout.
func Dial(ctx context.Context, rpcURL string, timeout time.Duration) (*Client, error) {
	httpClient := &http.Client{Timeout: timeout}
	c, err := rpc.DialOptions(ctx, rpcURL, rpc.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to dial node %s: %w", rpcURL, err)
	}
	return &Client{rpc: c}, nil
}

func (c *Client) Close() {
	c.rpc.Close()
}

func (c *Client) call(ctx context.Context, result any, method string, args ...any) error {
	if args == nil {
		args = []any{}
	}
	return c.rpc.CallContext(ctx, result, "call", "database", method, args)
}

func (c *Client) ChainID(ctx context.Context) (string, error) {
	var chainID string
	if err := c.call(ctx, &chainID, "get_chain_id"); err != nil {
		return "", fmt.Errorf("get_chain_id: %w", err)
	}
	return chainID, nil
}

// LookupAsset returns nil without error if the symbol does not exist on chain.
func (c *Client) LookupAsset(ctx context.Context, symbol string) (*Asset, error) {
	var assets []*Asset
	if err := c.call(ctx, &assets, "lookup_asset_symbols", []string{symbol}); err != nil {
		return nil, fmt.Errorf("lookup_asset_symbols %s: %w", symbol, err)
	}
	if len(assets) == 0 {
		return nil, nil
	}
	return assets[0], nil
}
