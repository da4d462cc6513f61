package rpc_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninja0404/launchpad-go-sdk/pkg/config"
	"github.com/ninja0404/launchpad-go-sdk/pkg/constants"
	"github.com/ninja0404/launchpad-go-sdk/pkg/pda"
	"github.com/ninja0404/launchpad-go-sdk/pkg/reader"
	sdkrpc "github.com/ninja0404/launchpad-go-sdk/pkg/rpc"
	"github.com/ninja0404/launchpad-go-sdk/pkg/types"
)

// stubNode answers JSON-RPC calls from a per-method table.
type stubNode struct {
	mu      sync.Mutex
	results map[string]interface{}
	errors  map[string]string
	calls   map[string]int
}

func newStubNode(t *testing.T) (*stubNode, *httptest.Server) {
	n := &stubNode{results: map[string]interface{}{}, errors: map[string]string{}, calls: map[string]int{}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     json.RawMessage `json:"id"`
			Method string          `json:"method"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		n.mu.Lock()
		n.calls[req.Method]++
		result, hasResult := n.results[req.Method]
		msg, hasErr := n.errors[req.Method]
		n.mu.Unlock()

		resp := map[string]interface{}{"jsonrpc": "2.0", "id": req.ID}
		switch {
		case hasErr:
			resp["error"] = map[string]interface{}{"code": -32000, "message": msg}
		case hasResult:
			resp["result"] = result
		default:
			resp["error"] = map[string]interface{}{"code": -32601, "message": "method not found"}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return n, srv
}

func (n *stubNode) set(method string, result interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.results[method] = result
}

func accountValue(data []byte) map[string]interface{} {
	return map[string]interface{}{
		"context": map[string]interface{}{"slot": 1},
		"value": map[string]interface{}{
			"data":       []string{base64.StdEncoding.EncodeToString(data), "base64"},
			"executable": false,
			"lamports":   1_000_000,
			"owner":      constants.LaunchpadProgramID.String(),
			"rentEpoch":  0,
		},
	}
}

func newTestClient(url string) *sdkrpc.Client {
	cfg := config.DefaultRPCConfig()
	cfg.Network = config.NetworkCustom
	cfg.RPCURL = url
	cfg.Timeout = 5 * time.Second
	cfg.PollInterval = 10 * time.Millisecond
	cfg.RateLimit = config.RateLimitConfig{}
	return sdkrpc.NewClient(cfg)
}

var someKey = solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")

func TestGetAccountBytes(t *testing.T) {
	node, srv := newStubNode(t)
	c := newTestClient(srv.URL)

	node.set("getAccountInfo", map[string]interface{}{"context": map[string]interface{}{"slot": 1}, "value": nil})
	data, err := c.GetAccountBytes(context.Background(), someKey)
	require.NoError(t, err)
	assert.Nil(t, data)

	node.set("getAccountInfo", accountValue([]byte{1, 2, 3}))
	data, err = c.GetAccountBytes(context.Background(), someKey)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, data)
}

func TestRPCErrorWrapping(t *testing.T) {
	node, srv := newStubNode(t)
	c := newTestClient(srv.URL)
	node.errors["getLatestBlockhash"] = "node is behind"

	_, err := c.GetLatestBlockhash(context.Background())
	var rpcErr types.RPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, "getLatestBlockhash", rpcErr.Op)
	assert.Equal(t, 1, node.calls["getLatestBlockhash"], "calls are not retried")
}

func TestSubmitAndConfirm(t *testing.T) {
	node, srv := newStubNode(t)
	c := newTestClient(srv.URL)
	sig := solana.Signature{9, 9, 9}

	node.set("sendTransaction", sig.String())
	node.set("getSignatureStatuses", map[string]interface{}{
		"context": map[string]interface{}{"slot": 1},
		"value": []interface{}{map[string]interface{}{
			"slot": 1, "confirmations": nil, "err": nil, "confirmationStatus": "confirmed",
		}},
	})

	got, err := c.SubmitAndConfirm(context.Background(), []byte{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, sig, got)
}

func TestWaitForConfirmationFailure(t *testing.T) {
	node, srv := newStubNode(t)
	c := newTestClient(srv.URL)
	sig := solana.Signature{7}

	node.set("getSignatureStatuses", map[string]interface{}{
		"context": map[string]interface{}{"slot": 1},
		"value": []interface{}{map[string]interface{}{
			"slot": 1, "confirmations": 0, "confirmationStatus": "processed",
			"err": map[string]interface{}{"InstructionError": []interface{}{0, map[string]interface{}{"Custom": 6001}}},
		}},
	})
	err := c.WaitForConfirmation(context.Background(), sig)
	require.ErrorIs(t, err, types.ErrTransactionFailed)
	var txErr types.TransactionError
	require.ErrorAs(t, err, &txErr)
	assert.Equal(t, sig.String(), txErr.Signature)
}

func TestWaitForConfirmationTimeout(t *testing.T) {
	node, srv := newStubNode(t)
	c := newTestClient(srv.URL)
	node.set("getSignatureStatuses", map[string]interface{}{
		"context": map[string]interface{}{"slot": 1},
		"value":   []interface{}{nil},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := c.WaitForConfirmation(ctx, solana.Signature{1})
	require.ErrorIs(t, err, types.ErrConfirmationTimeout)
}

// TestReadPlatformConfigLive reads the platform singleton from a real node.
// LAUNCHPAD_TEST_RPC_URL: RPC endpoint
// LAUNCHPAD_TEST_PROGRAM_ID: deployed program (default: constants.LaunchpadProgramID)
func TestReadPlatformConfigLive(t *testing.T) {
	rpcURL := os.Getenv("LAUNCHPAD_TEST_RPC_URL")
	if rpcURL == "" {
		t.Skip("LAUNCHPAD_TEST_RPC_URL not set, skipping integration test")
	}
	programID := constants.LaunchpadProgramID
	if s := os.Getenv("LAUNCHPAD_TEST_PROGRAM_ID"); s != "" {
		programID = solana.MustPublicKeyFromBase58(s)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg := config.DefaultRPCConfig()
	cfg.Network = config.NetworkCustom
	cfg.RPCURL = rpcURL
	r := reader.New(sdkrpc.NewClient(cfg), pda.NewDeriver(programID))

	platform, err := r.PlatformConfig(ctx)
	require.NoError(t, err)
	t.Logf("authority=%s fee=%dbps threshold=%d paused=%v",
		platform.Authority, platform.PlatformFeeBps, platform.MigrationThreshold, platform.Paused)
}
