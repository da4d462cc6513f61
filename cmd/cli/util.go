package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"

	"github.com/ninja0404/launchpad-go-sdk/pkg/builder"
	"github.com/ninja0404/launchpad-go-sdk/pkg/constants"
)

// parsePubkey converts base58 string to PublicKey.
func parsePubkey(label, v string) (solana.PublicKey, error) {
	if v == "" {
		return solana.PublicKey{}, fmt.Errorf("%s is required", label)
	}
	pk, err := solana.PublicKeyFromBase58(v)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%s invalid pubkey: %w", label, err)
	}
	return pk, nil
}

// parseOptionalPubkey returns the zero key for an empty string.
func parseOptionalPubkey(label, v string) (solana.PublicKey, error) {
	if v == "" {
		return solana.PublicKey{}, nil
	}
	return parsePubkey(label, v)
}

// loadOverrides reads a JSON object of base58 pubkeys keyed by account
// field name. An empty path yields no overrides.
func loadOverrides(path string) ([]builder.Option, error) {
	if path == "" {
		return nil, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read accounts json: %w", err)
	}
	m, err := builder.MergeOverridesFromJSON(nil, content)
	if err != nil {
		return nil, fmt.Errorf("parse accounts json: %w", err)
	}
	return []builder.Option{builder.WithOverrides(m)}, nil
}

var lamportsPerSol = decimal.NewFromInt(constants.LamportsPerSol)

// formatSol renders lamports as SOL without float rounding.
func formatSol(lamports uint64) string {
	return decimal.NewFromUint64(lamports).Div(lamportsPerSol).String()
}

// parseSol converts a SOL amount such as "0.25" to lamports.
func parseSol(s string) (uint64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid SOL amount %q: %w", s, err)
	}
	lamports := d.Mul(lamportsPerSol)
	if lamports.IsNegative() || !lamports.Equal(lamports.Truncate(0)) {
		return 0, fmt.Errorf("invalid SOL amount %q: must be a non-negative multiple of 1 lamport", s)
	}
	if lamports.GreaterThan(decimal.NewFromUint64(^uint64(0))) {
		return 0, fmt.Errorf("invalid SOL amount %q: overflows u64 lamports", s)
	}
	return lamports.BigInt().Uint64(), nil
}

// formatPrice renders a constants.PriceScale fixed-point price as lamports
// per token base unit.
func formatPrice(scaled uint64) string {
	return decimal.NewFromUint64(scaled).Shift(-9).String()
}

// formatBps renders basis points as a percentage.
func formatBps(bps uint64) string {
	return decimal.NewFromUint64(bps).Shift(-2).String() + "%"
}

func printJSON(w io.Writer, v interface{}) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(bz))
	return err
}
