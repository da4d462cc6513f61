// Package jito submits signed transactions through the Jito Block Engine.
//
// A transaction is sent as a single-transaction bundle and confirmed through
// the bundle status endpoint. Nothing is retried: a rate-limited or failed
// call is returned to the caller as a types.RPCError.
//
// For more information, see: https://github.com/jito-labs/jito-go-rpc
package jito

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	jitorpc "github.com/jito-labs/jito-go-rpc"
	"github.com/rs/zerolog"

	"github.com/ninja0404/launchpad-go-sdk/pkg/types"
)

// Default Jito Block Engine endpoints
const (
	MainnetBlockEngine = "https://mainnet.block-engine.jito.wtf/api/v1"
	TestnetBlockEngine = "https://testnet.block-engine.jito.wtf/api/v1"
)

// MainnetTipAccounts are the official Jito tip accounts.
var MainnetTipAccounts = []solana.PublicKey{
	solana.MustPublicKeyFromBase58("96gYZGLnJYVFmbjzopPSU6QiEV5fGqZNyN9nmNhvrZU5"),
	solana.MustPublicKeyFromBase58("HFqU5x63VTqvQss8hp11i4wVV8bD44PvwucfZ2bU7gRe"),
	solana.MustPublicKeyFromBase58("Cw8CFyM9FkoMi7K7Crf6HNQqf4uEMzpKw6QNghXLvLkY"),
	solana.MustPublicKeyFromBase58("ADaUMid9yfUytqMBgopwjb2DTLSokTSzL1zt6iGPaS49"),
	solana.MustPublicKeyFromBase58("DfXygSm4jCyNCybVYYK6DwvWqjKee8pbDmJGcLWNDXjh"),
	solana.MustPublicKeyFromBase58("ADuUkR4vqLUMWXxW9gh6D6L8pMSawimctcNZ5pGwDcEt"),
	solana.MustPublicKeyFromBase58("DttWaMuVvTiduZRnguLF7jNxTgiMBZ1hyAumKUiL2KRL"),
	solana.MustPublicKeyFromBase58("3AVi9Tg9Uo68tJfuvoKvqKNWKkC5wPdSSdeBnizKZ6jT"),
}

// RandomTipAccount returns a tip account from MainnetTipAccounts without a network call.
func RandomTipAccount() solana.PublicKey {
	return MainnetTipAccounts[rand.Intn(len(MainnetTipAccounts))]
}

// TipInstruction transfers lamports from payer to tipAccount. A zero
// tipAccount picks one from MainnetTipAccounts. It must be the last
// instruction of the transaction it is added to.
func TipInstruction(payer solana.PublicKey, lamports uint64, tipAccount solana.PublicKey) (solana.Instruction, error) {
	if err := types.RequireKey("payer", payer); err != nil {
		return nil, err
	}
	if err := types.ValidateAmount("tipLamports", lamports); err != nil {
		return nil, err
	}
	if tipAccount.IsZero() {
		tipAccount = RandomTipAccount()
	}
	return system.NewTransferInstruction(lamports, payer, tipAccount).Build(), nil
}

// Client wraps the Jito JSON-RPC client.
type Client struct {
	api          *jitorpc.JitoJsonRpcClient
	pollInterval time.Duration
	log          zerolog.Logger
}

// NewClient creates a client for endpoint. An empty endpoint uses
// MainnetBlockEngine; uuid may be empty.
func NewClient(endpoint string, uuid string) *Client {
	if endpoint == "" {
		endpoint = MainnetBlockEngine
	}
	return &Client{
		api:          jitorpc.NewJitoJsonRpcClient(endpoint, uuid),
		pollInterval: 500 * time.Millisecond,
		log:          zerolog.Nop(),
	}
}

// WithLogger sets the logger used for debug events.
func (c *Client) WithLogger(log zerolog.Logger) *Client {
	c.log = log
	return c
}

// WithPollInterval sets the bundle status polling period.
func (c *Client) WithPollInterval(d time.Duration) *Client {
	if d > 0 {
		c.pollInterval = d
	}
	return c
}

// GetTipAccounts fetches the current tip accounts from the block engine.
func (c *Client) GetTipAccounts(ctx context.Context) ([]solana.PublicKey, error) {
	rawResp, err := c.api.GetTipAccounts()
	if err != nil {
		return nil, types.RPCError{Op: "getTipAccounts", Err: err}
	}
	var accounts []string
	if err := json.Unmarshal(rawResp, &accounts); err != nil {
		return nil, fmt.Errorf("unmarshal tip accounts: %w", err)
	}
	result := make([]solana.PublicKey, 0, len(accounts))
	for _, acc := range accounts {
		pk, err := solana.PublicKeyFromBase58(acc)
		if err != nil {
			continue
		}
		result = append(result, pk)
	}
	return result, nil
}

// SendBundle submits signed transactions as one atomic bundle and returns
// the bundle ID.
func (c *Client) SendBundle(ctx context.Context, signedTxs ...[]byte) (string, error) {
	if len(signedTxs) == 0 {
		return "", types.ErrNoInstructions
	}
	encoded := make([]string, 0, len(signedTxs))
	for _, tx := range signedTxs {
		encoded = append(encoded, base64.StdEncoding.EncodeToString(tx))
	}
	rawResp, err := c.api.SendBundle([][]string{encoded})
	if err != nil {
		return "", types.RPCError{Op: "sendBundle", Err: err}
	}
	var bundleID string
	if err := json.Unmarshal(rawResp, &bundleID); err != nil {
		return "", fmt.Errorf("unmarshal bundle response: %w", err)
	}
	c.log.Debug().Str("bundle", bundleID).Int("txs", len(signedTxs)).Msg("bundle sent")
	return bundleID, nil
}

// WaitForBundleConfirmation polls the bundle status until it is confirmed
// or ctx ends.
func (c *Client) WaitForBundleConfirmation(ctx context.Context, bundleID string) error {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: bundle %s: %v", types.ErrConfirmationTimeout, bundleID, ctx.Err())
		case <-ticker.C:
		}
		statuses, err := c.api.GetBundleStatuses([]string{bundleID})
		if err != nil {
			return types.RPCError{Op: "getBundleStatuses", Err: err}
		}
		if statuses == nil || len(statuses.Value) == 0 {
			continue // not landed yet
		}
		// A listed bundle landed atomically; wait for confirmed commitment.
		switch statuses.Value[0].ConfirmationStatus {
		case "confirmed", "finalized":
			return nil
		}
		c.log.Debug().Str("bundle", bundleID).Str("status", statuses.Value[0].ConfirmationStatus).Msg("bundle pending")
	}
}

// SubmitAndConfirm sends one signed transaction as a bundle and waits for
// the bundle to land. The returned signature is the transaction's first.
func (c *Client) SubmitAndConfirm(ctx context.Context, signedTx []byte) (solana.Signature, error) {
	tx, err := solana.TransactionFromDecoder(bin.NewBinDecoder(signedTx))
	if err != nil {
		return solana.Signature{}, fmt.Errorf("decode transaction: %w", err)
	}
	if len(tx.Signatures) == 0 {
		return solana.Signature{}, types.NewValidationError("signedTx", "transaction is not signed")
	}
	sig := tx.Signatures[0]

	bundleID, err := c.SendBundle(ctx, signedTx)
	if err != nil {
		return sig, err
	}
	if err := c.WaitForBundleConfirmation(ctx, bundleID); err != nil {
		return sig, err
	}
	return sig, nil
}
