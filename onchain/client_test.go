package onchain_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/evrazdex/gateway-resolver/branding"
	"github.com/evrazdex/gateway-resolver/onchain"
)

type rpcRequest struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

// fakeNode answers the two database api calls the client uses.
type fakeNode struct {
	chainID string
	assets  map[string]*onchain.Asset
	fail    bool
	calls   atomic.Int32
}

func (n *fakeNode) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	n.calls.Add(1)
	if n.fail {
		http.Error(w, "node unavailable", http.StatusBadGateway)
		return
	}

	var req rpcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Method != "call" || len(req.Params) != 3 {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	var api, method string
	_ = json.Unmarshal(req.Params[0], &api)
	_ = json.Unmarshal(req.Params[1], &method)

	var result any
	switch method {
	case "get_chain_id":
		result = n.chainID
	case "lookup_asset_symbols":
		var args [][]string
		_ = json.Unmarshal(req.Params[2], &args)
		var out []*onchain.Asset
		for _, symbol := range args[0] {
			out = append(out, n.assets[symbol])
		}
		result = out
	default:
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      req.ID,
			"error":   map[string]any{"code": -32601, "message": "unknown method " + api + "." + method},
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"jsonrpc": "2.0",
		"id":      req.ID,
		"result":  result,
	})
}

func configAsset(symbol, description string) *onchain.Asset {
	a := &onchain.Asset{ID: "1.3.0", Symbol: symbol}
	a.Options.Description = description
	return a
}

func dial(t *testing.T, url string) *onchain.Client {
	t.Helper()
	c, err := onchain.Dial(context.Background(), url, 2*time.Second)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func TestClientChainID(t *testing.T) {
	node := &fakeNode{chainID: branding.MainnetChainID}
	srv := httptest.NewServer(node)
	defer srv.Close()

	chainID, err := dial(t, srv.URL).ChainID(context.Background())
	require.NoError(t, err)
	require.Equal(t, branding.MainnetChainID, chainID)
}

func TestClientLookupAsset(t *testing.T) {
	node := &fakeNode{assets: map[string]*onchain.Asset{
		"TEST": configAsset("TEST", `{"main":"hello"}`),
	}}
	srv := httptest.NewServer(node)
	defer srv.Close()

	c := dial(t, srv.URL)

	a, err := c.LookupAsset(context.Background(), "TEST")
	require.NoError(t, err)
	require.NotNil(t, a)
	require.Equal(t, "TEST", a.Symbol)
	require.Equal(t, `{"main":"hello"}`, a.Options.Description)

	missing, err := c.LookupAsset(context.Background(), "NOPE")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestClientNodeFailure(t *testing.T) {
	srv := httptest.NewServer(&fakeNode{fail: true})
	defer srv.Close()

	_, err := dial(t, srv.URL).LookupAsset(context.Background(), "TEST")
	require.Error(t, err)
}
