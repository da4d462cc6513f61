package main

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninja0404/launchpad-go-sdk/pkg/curve"
)

func TestParseAndFormatSol(t *testing.T) {
	cases := []struct {
		in   string
		want uint64
	}{
		{"1", 1_000_000_000},
		{"0.25", 250_000_000},
		{"0.000000001", 1},
		{"85", 85_000_000_000},
	}
	for _, tc := range cases {
		got, err := parseSol(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	for _, bad := range []string{"", "abc", "-1", "0.0000000001", "18446744073.709551616"} {
		_, err := parseSol(bad)
		assert.Error(t, err, bad)
	}

	assert.Equal(t, "1.5", formatSol(1_500_000_000))
	assert.Equal(t, "0.000000001", formatSol(1))
	assert.Equal(t, "0.3%", formatBps(30))
	assert.Equal(t, "0.00003", formatPrice(30000))
}

func TestReadTxInput(t *testing.T) {
	s, err := readTxInput(bytes.NewBufferString(" AQID \n"), []string{"-"}, "")
	require.NoError(t, err)
	assert.Equal(t, "AQID", s)

	s, err = readTxInput(nil, []string{"AQID"}, "")
	require.NoError(t, err)
	assert.Equal(t, "AQID", s)

	_, err = readTxInput(nil, nil, "")
	assert.Error(t, err)

	_, err = readTxInput(bytes.NewBufferString("  "), []string{"-"}, "")
	assert.Error(t, err)
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestQuoteBuyOffline(t *testing.T) {
	out, err := runCLI(t, "quote", "buy",
		"--virtual-sol", "30000000000",
		"--virtual-token", "1000000000000000",
		"--real-token", "800000000000000",
		"--platform-fee-bps", "100",
		"--creator-fee-bps", "50",
		"--sol", "1",
		"--slippage-bps", "100",
	)
	require.NoError(t, err)

	c := curve.Curve{
		VirtualSolReserves:   30_000_000_000,
		VirtualTokenReserves: 1_000_000_000_000_000,
		RealTokenReserves:    800_000_000_000_000,
	}
	split, err := curve.ApplyFeeSplit(1_000_000_000, 100, 50)
	require.NoError(t, err)
	tokens, err := curve.EstimateBuyTokens(split.Net, c)
	require.NoError(t, err)
	minOut, err := curve.MinOutWithSlippage(tokens, 100)
	require.NoError(t, err)

	assert.Contains(t, out, "sol_in=1 ")
	assert.Contains(t, out, fmt.Sprintf("net=%s", formatSol(split.Net)))
	assert.Contains(t, out, fmt.Sprintf("tokens_out=%d min_tokens_out=%d", tokens, minOut))
}

func TestQuoteSwapOffline(t *testing.T) {
	out, err := runCLI(t, "quote", "swap",
		"--sol-reserve", "85000000000",
		"--token-reserve", "200000000000000",
		"--lp-supply", "1000000000000",
		"--direction", "buy",
		"--amount", "1000000000",
		"--slippage-bps", "0",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "fee=3000000 amount_out=2318685535542 min_out=2318685535542")
	assert.Contains(t, out, "price_impact=1.17%")
}

func TestQuoteRemoveLiquidityOffline(t *testing.T) {
	out, err := runCLI(t, "quote", "remove-liquidity",
		"--sol-reserve", "85000000000",
		"--token-reserve", "200000000000000",
		"--lp-supply", "1000000000000",
		"--lp", "250000000000",
		"--slippage-bps", "0",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "sol_out=21.25 ")
	assert.Contains(t, out, "token_out=50000000000000 ")
}

func TestQuoteSwapRejectsDirection(t *testing.T) {
	_, err := runCLI(t, "quote", "swap", "--sol-reserve", "1", "--token-reserve", "1", "--direction", "sideways", "--amount", "1")
	require.Error(t, err)
}
