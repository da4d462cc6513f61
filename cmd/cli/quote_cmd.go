package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ninja0404/launchpad-go-sdk/pkg/constants"
	"github.com/ninja0404/launchpad-go-sdk/pkg/curve"
	"github.com/ninja0404/launchpad-go-sdk/pkg/quote"
)

func newQuoteCmd(opts *globalOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price trades against on-chain state",
	}
	cmd.AddCommand(
		newQuoteBuyCmd(opts),
		newQuoteSellCmd(opts),
		newQuoteSwapCmd(opts),
		newQuoteAddLiquidityCmd(opts),
		newQuoteRemoveLiquidityCmd(opts),
	)
	return cmd
}

// curveInputs are the launch reserves and fees a bonding-curve quote needs.
// Reserves given on the command line skip the RPC read.
type curveInputs struct {
	mint           string
	virtualSol     uint64
	virtualToken   uint64
	realSol        uint64
	realToken      uint64
	platformFeeBps uint16
	creatorFeeBps  uint16
}

func (in *curveInputs) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&in.mint, "mint", "", "token mint (reads the launch over RPC)")
	cmd.Flags().Uint64Var(&in.virtualSol, "virtual-sol", 0, "offline: virtual SOL reserves in lamports")
	cmd.Flags().Uint64Var(&in.virtualToken, "virtual-token", 0, "offline: virtual token reserves in base units")
	cmd.Flags().Uint64Var(&in.realSol, "real-sol", 0, "offline: real SOL reserves in lamports")
	cmd.Flags().Uint64Var(&in.realToken, "real-token", 0, "offline: real token reserves in base units")
	cmd.Flags().Uint16Var(&in.platformFeeBps, "platform-fee-bps", 0, "offline: platform fee")
	cmd.Flags().Uint16Var(&in.creatorFeeBps, "creator-fee-bps", 0, "offline: creator fee")
}

func (in *curveInputs) resolve(cmd *cobra.Command, opts *globalOpts) (curve.Curve, uint16, uint16, error) {
	if in.virtualSol > 0 && in.virtualToken > 0 {
		c := curve.Curve{
			VirtualSolReserves:   in.virtualSol,
			VirtualTokenReserves: in.virtualToken,
			RealSolReserves:      in.realSol,
			RealTokenReserves:    in.realToken,
		}
		return c, in.platformFeeBps, in.creatorFeeBps, nil
	}
	mint, err := parsePubkey("mint", in.mint)
	if err != nil {
		return curve.Curve{}, 0, 0, err
	}
	deps, err := newRuntime(cmd, opts)
	if err != nil {
		return curve.Curve{}, 0, 0, err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
	defer cancel()

	cfg, err := deps.reader.PlatformConfig(ctx)
	if err != nil {
		return curve.Curve{}, 0, 0, err
	}
	launch, err := deps.reader.TokenLaunch(ctx, mint)
	if err != nil {
		return curve.Curve{}, 0, 0, err
	}
	if launch.Migrated {
		return curve.Curve{}, 0, 0, fmt.Errorf("launch %s has migrated; use quote swap", mint)
	}
	return launch.Curve(), cfg.PlatformFeeBps, launch.CreatorFeeBps, nil
}

func newQuoteBuyCmd(opts *globalOpts) *cobra.Command {
	var (
		in          curveInputs
		solAmount   string
		slippageBps uint64
	)
	cmd := &cobra.Command{
		Use:   "buy",
		Short: "Tokens received for a SOL amount on the bonding curve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lamports, err := parseSol(solAmount)
			if err != nil {
				return err
			}
			c, platformBps, creatorBps, err := in.resolve(cmd, opts)
			if err != nil {
				return err
			}
			res, err := quote.Buy(c, platformBps, creatorBps, lamports, slippageBps)
			if err != nil {
				return err
			}
			net := lamports - res.PlatformFee - res.CreatorFee
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sol_in=%s platform_fee=%s creator_fee=%s net=%s\n",
				formatSol(lamports), formatSol(res.PlatformFee), formatSol(res.CreatorFee), formatSol(net))
			fmt.Fprintf(out, "tokens_out=%d min_tokens_out=%d (slippage %s)\n", res.ExpectedOut, res.MinOut, formatBps(slippageBps))
			fmt.Fprintf(out, "spot_price=%s price_impact=%s\n", formatPrice(res.SpotPrice), formatBps(res.PriceImpactBps))
			return nil
		},
	}
	in.bind(cmd)
	cmd.Flags().StringVar(&solAmount, "sol", "", "SOL to spend, e.g. 0.5")
	cmd.Flags().Uint64Var(&slippageBps, "slippage-bps", 100, "slippage tolerance")
	_ = cmd.MarkFlagRequired("sol")
	return cmd
}

func newQuoteSellCmd(opts *globalOpts) *cobra.Command {
	var (
		in          curveInputs
		tokenAmount uint64
		slippageBps uint64
	)
	cmd := &cobra.Command{
		Use:   "sell",
		Short: "SOL received for selling tokens to the bonding curve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, platformBps, creatorBps, err := in.resolve(cmd, opts)
			if err != nil {
				return err
			}
			res, err := quote.Sell(c, platformBps, creatorBps, tokenAmount, slippageBps)
			if err != nil {
				return err
			}
			gross := res.ExpectedOut + res.PlatformFee + res.CreatorFee
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "tokens_in=%d gross=%s platform_fee=%s creator_fee=%s\n",
				tokenAmount, formatSol(gross), formatSol(res.PlatformFee), formatSol(res.CreatorFee))
			fmt.Fprintf(out, "sol_out=%s min_sol_out=%s (slippage %s)\n", formatSol(res.ExpectedOut), formatSol(res.MinOut), formatBps(slippageBps))
			fmt.Fprintf(out, "spot_price=%s price_impact=%s\n", formatPrice(res.SpotPrice), formatBps(res.PriceImpactBps))
			return nil
		},
	}
	in.bind(cmd)
	cmd.Flags().Uint64Var(&tokenAmount, "tokens", 0, "token base units to sell")
	cmd.Flags().Uint64Var(&slippageBps, "slippage-bps", 100, "slippage tolerance")
	_ = cmd.MarkFlagRequired("tokens")
	return cmd
}

// poolInputs are the pool reserves a pool quote needs.
type poolInputs struct {
	mint         string
	solReserve   uint64
	tokenReserve uint64
	lpSupply     uint64
}

func (in *poolInputs) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&in.mint, "mint", "", "token mint (reads the pool over RPC)")
	cmd.Flags().Uint64Var(&in.solReserve, "sol-reserve", 0, "offline: pool SOL reserve in lamports")
	cmd.Flags().Uint64Var(&in.tokenReserve, "token-reserve", 0, "offline: pool token reserve in base units")
	cmd.Flags().Uint64Var(&in.lpSupply, "lp-supply", 0, "offline: LP supply")
}

func (in *poolInputs) resolve(cmd *cobra.Command, opts *globalOpts) (curve.Pool, error) {
	if in.solReserve > 0 || in.tokenReserve > 0 {
		return curve.Pool{SolReserve: in.solReserve, TokenReserve: in.tokenReserve, LpSupply: in.lpSupply}, nil
	}
	mint, err := parsePubkey("mint", in.mint)
	if err != nil {
		return curve.Pool{}, err
	}
	deps, err := newRuntime(cmd, opts)
	if err != nil {
		return curve.Pool{}, err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()
	pool, err := deps.reader.AmmPool(ctx, mint)
	if err != nil {
		return curve.Pool{}, err
	}
	return pool.Reserves(), nil
}

func newQuoteSwapCmd(opts *globalOpts) *cobra.Command {
	var (
		in          poolInputs
		direction   string
		amountIn    uint64
		feeBps      uint16
		slippageBps uint64
	)
	cmd := &cobra.Command{
		Use:   "swap",
		Short: "Output of a pool swap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := curve.ParseSwapDirection(direction)
			if err != nil {
				return err
			}
			pool, err := in.resolve(cmd, opts)
			if err != nil {
				return err
			}
			res, err := quote.Swap(pool, dir, amountIn, feeBps, slippageBps)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "direction=%s amount_in=%d fee=%d amount_out=%d min_out=%d price_impact=%s\n",
				dir, res.AmountIn, res.PoolFee, res.ExpectedOut, res.MinOut, formatBps(res.PriceImpactBps))
			return nil
		},
	}
	in.bind(cmd)
	cmd.Flags().StringVar(&direction, "direction", "buy", "buy|sell|sol_to_token|token_to_sol")
	cmd.Flags().Uint64Var(&amountIn, "amount", 0, "input amount in base units (lamports when buying)")
	cmd.Flags().Uint16Var(&feeBps, "fee-bps", constants.DefaultSwapFeeBps, "pool swap fee")
	cmd.Flags().Uint64Var(&slippageBps, "slippage-bps", 100, "slippage tolerance")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func newQuoteAddLiquidityCmd(opts *globalOpts) *cobra.Command {
	var (
		in          poolInputs
		solAmount   string
		slippageBps uint64
	)
	cmd := &cobra.Command{
		Use:   "add-liquidity",
		Short: "Tokens required and LP minted for a deposit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lamports, err := parseSol(solAmount)
			if err != nil {
				return err
			}
			pool, err := in.resolve(cmd, opts)
			if err != nil {
				return err
			}
			q, err := curve.AmmLiquidityQuote(lamports, pool)
			if err != nil {
				return err
			}
			maxTokens, err := curve.MaxInWithSlippage(q.TokenRequired, slippageBps)
			if err != nil {
				return err
			}
			minLp, err := curve.MinOutWithSlippage(q.LpMinted, slippageBps)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "sol_in=%s token_required=%d max_token=%d lp_minted=%d min_lp=%d\n",
				formatSol(q.SolIn), q.TokenRequired, maxTokens, q.LpMinted, minLp)
			return nil
		},
	}
	in.bind(cmd)
	cmd.Flags().StringVar(&solAmount, "sol", "", "SOL to deposit, e.g. 1.5")
	cmd.Flags().Uint64Var(&slippageBps, "slippage-bps", 100, "slippage tolerance")
	_ = cmd.MarkFlagRequired("sol")
	return cmd
}

func newQuoteRemoveLiquidityCmd(opts *globalOpts) *cobra.Command {
	var (
		in          poolInputs
		lpAmount    uint64
		slippageBps uint64
	)
	cmd := &cobra.Command{
		Use:   "remove-liquidity",
		Short: "Reserves returned for burning LP tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, err := in.resolve(cmd, opts)
			if err != nil {
				return err
			}
			q, err := curve.AmmRemoveLiquidityQuote(lpAmount, pool)
			if err != nil {
				return err
			}
			minSol, err := curve.MinOutWithSlippage(q.SolOut, slippageBps)
			if err != nil {
				return err
			}
			minTok, err := curve.MinOutWithSlippage(q.TokenOut, slippageBps)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "lp_in=%d sol_out=%s min_sol=%s token_out=%d min_token=%d\n",
				q.LpIn, formatSol(q.SolOut), formatSol(minSol), q.TokenOut, minTok)
			return nil
		},
	}
	in.bind(cmd)
	cmd.Flags().Uint64Var(&lpAmount, "lp", 0, "LP tokens to burn")
	cmd.Flags().Uint64Var(&slippageBps, "slippage-bps", 100, "slippage tolerance")
	_ = cmd.MarkFlagRequired("lp")
	return cmd
}
