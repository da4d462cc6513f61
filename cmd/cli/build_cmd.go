package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"

	"github.com/ninja0404/launchpad-go-sdk/pkg/builder"
	"github.com/ninja0404/launchpad-go-sdk/pkg/codec"
	"github.com/ninja0404/launchpad-go-sdk/pkg/curve"
	"github.com/ninja0404/launchpad-go-sdk/pkg/jito"
	"github.com/ninja0404/launchpad-go-sdk/pkg/program/launchpad"
	"github.com/ninja0404/launchpad-go-sdk/pkg/txbuilder"
)

func newBuildCmd(opts *globalOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build unsigned transactions (base64) for an external signer",
	}
	cmd.AddCommand(
		newBuildInitializeCmd(opts),
		newBuildUpdateConfigCmd(opts),
		newBuildPauseCmd(opts, true),
		newBuildPauseCmd(opts, false),
		newBuildSetLaunchPausedCmd(opts),
		newBuildCreateTokenCmd(opts),
		newBuildTradeCmd(opts, true),
		newBuildTradeCmd(opts, false),
		newBuildClaimCmd(opts),
		newBuildMigrateCmd(opts),
		newBuildCreatePoolCmd(opts),
		newBuildSwapCmd(opts),
		newBuildAddLiquidityCmd(opts),
		newBuildRemoveLiquidityCmd(opts),
		newBuildStakeCmd(opts, true),
		newBuildStakeCmd(opts, false),
	)
	return cmd
}

// txFlags are shared by every build subcommand.
type txFlags struct {
	feePayer     string
	accountsJSON string
	preview      bool
	blockhash    string
	jitoTip      bool
}

func (f *txFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.feePayer, "fee-payer", "", "fee payer (defaults to the instruction signer)")
	cmd.Flags().StringVar(&f.accountsJSON, "accounts-json", "", "JSON file of account overrides keyed by field name")
	cmd.Flags().BoolVar(&f.preview, "preview", false, "print resolved accounts and args to stderr")
	cmd.Flags().StringVar(&f.blockhash, "blockhash", "", "offline: recent blockhash to use instead of fetching one")
	cmd.Flags().BoolVar(&f.jitoTip, "jito-tip", false, "append a tip transfer of jito.tip_lamports to a random tip account")
}

type builtTx struct {
	Transaction string   `json:"transaction"`
	Blockhash   string   `json:"blockhash"`
	Signers     []string `json:"signers"`
}

// buildFunc builds one instruction and returns the key that signs it.
type buildFunc func(ctx context.Context, d *runtimeDeps, bopts []builder.Option) (solana.Instruction, solana.PublicKey, error)

func runBuild(cmd *cobra.Command, opts *globalOpts, f *txFlags, build buildFunc) error {
	deps, err := newRuntime(cmd, opts)
	if err != nil {
		return err
	}
	bopts, err := loadOverrides(f.accountsJSON)
	if err != nil {
		return err
	}
	if f.preview {
		bopts = append(bopts, builder.WithPreview(cmd.ErrOrStderr()))
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 20*time.Second)
	defer cancel()

	ix, signer, err := build(ctx, deps, bopts)
	if err != nil {
		return err
	}
	payer := signer
	if f.feePayer != "" {
		if payer, err = parsePubkey("fee-payer", f.feePayer); err != nil {
			return err
		}
	}
	ixs := []solana.Instruction{ix}
	if f.jitoTip {
		tip, err := jito.TipInstruction(payer, deps.cfg.Jito.TipLamports, solana.PublicKey{})
		if err != nil {
			return err
		}
		ixs = append(ixs, tip)
	}

	var tx *solana.Transaction
	if f.blockhash != "" {
		hash, err := solana.HashFromBase58(f.blockhash)
		if err != nil {
			return fmt.Errorf("invalid blockhash: %w", err)
		}
		tx, err = txbuilder.Assemble(hash, payer, ixs...)
		if err != nil {
			return err
		}
	} else {
		tx, err = txbuilder.NewBuilder(deps.rpc, nil).BuildTransaction(ctx, payer, ixs...)
		if err != nil {
			return err
		}
	}
	encoded, err := txbuilder.ToBase64(tx)
	if err != nil {
		return err
	}
	out := builtTx{Transaction: encoded, Blockhash: tx.Message.RecentBlockhash.String()}
	for _, s := range txbuilder.RequiredSigners(tx) {
		out.Signers = append(out.Signers, s.String())
	}
	deps.log.Debug().Int("instructions", len(ixs)).Str("payer", payer.String()).Msg("transaction assembled")
	return printJSON(cmd.OutOrStdout(), out)
}

func newBuildInitializeCmd(opts *globalOpts) *cobra.Command {
	var (
		f                  txFlags
		authority          string
		platformFeeBps     uint16
		migrationThreshold string
	)
	cmd := &cobra.Command{
		Use:   "initialize",
		Short: "Create the platform config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts, &f, func(_ context.Context, d *runtimeDeps, bopts []builder.Option) (solana.Instruction, solana.PublicKey, error) {
				auth, err := parsePubkey("authority", authority)
				if err != nil {
					return nil, auth, err
				}
				threshold, err := parseSol(migrationThreshold)
				if err != nil {
					return nil, auth, err
				}
				ix, err := d.builder.Initialize(builder.InitializeParams{
					Authority:          auth,
					PlatformFeeBps:     platformFeeBps,
					MigrationThreshold: threshold,
				}, bopts...)
				return ix, auth, err
			})
		},
	}
	f.bind(cmd)
	cmd.Flags().StringVar(&authority, "authority", "", "platform authority")
	cmd.Flags().Uint16Var(&platformFeeBps, "platform-fee-bps", 100, "platform trade fee")
	cmd.Flags().StringVar(&migrationThreshold, "migration-threshold", "85", "real SOL reserves that allow migration")
	return cmd
}

func newBuildUpdateConfigCmd(opts *globalOpts) *cobra.Command {
	var (
		f                  txFlags
		authority          string
		platformFeeBps     uint16
		migrationThreshold string
		newAuthority       string
	)
	cmd := &cobra.Command{
		Use:   "update-config",
		Short: "Change platform settings; omitted flags are left unchanged",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts, &f, func(_ context.Context, d *runtimeDeps, bopts []builder.Option) (solana.Instruction, solana.PublicKey, error) {
				auth, err := parsePubkey("authority", authority)
				if err != nil {
					return nil, auth, err
				}
				p := builder.UpdatePlatformConfigParams{
					Authority:          auth,
					PlatformFeeBps:     codec.None[uint16](),
					MigrationThreshold: codec.None[uint64](),
					NewAuthority:       codec.None[solana.PublicKey](),
				}
				if cmd.Flags().Changed("platform-fee-bps") {
					p.PlatformFeeBps = codec.Some(platformFeeBps)
				}
				if migrationThreshold != "" {
					threshold, err := parseSol(migrationThreshold)
					if err != nil {
						return nil, auth, err
					}
					p.MigrationThreshold = codec.Some(threshold)
				}
				if newAuthority != "" {
					next, err := parsePubkey("new-authority", newAuthority)
					if err != nil {
						return nil, auth, err
					}
					p.NewAuthority = codec.Some(next)
				}
				ix, err := d.builder.UpdatePlatformConfig(p, bopts...)
				return ix, auth, err
			})
		},
	}
	f.bind(cmd)
	cmd.Flags().StringVar(&authority, "authority", "", "current platform authority")
	cmd.Flags().Uint16Var(&platformFeeBps, "platform-fee-bps", 0, "new platform fee")
	cmd.Flags().StringVar(&migrationThreshold, "migration-threshold", "", "new migration threshold in SOL")
	cmd.Flags().StringVar(&newAuthority, "new-authority", "", "transfer authority to this key")
	return cmd
}

func newBuildPauseCmd(opts *globalOpts, pause bool) *cobra.Command {
	var (
		f         txFlags
		authority string
	)
	use, short := "pause", "Pause the whole platform"
	if !pause {
		use, short = "unpause", "Resume the whole platform"
	}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts, &f, func(_ context.Context, d *runtimeDeps, bopts []builder.Option) (solana.Instruction, solana.PublicKey, error) {
				auth, err := parsePubkey("authority", authority)
				if err != nil {
					return nil, auth, err
				}
				if pause {
					ix, err := d.builder.Pause(auth, bopts...)
					return ix, auth, err
				}
				ix, err := d.builder.Unpause(auth, bopts...)
				return ix, auth, err
			})
		},
	}
	f.bind(cmd)
	cmd.Flags().StringVar(&authority, "authority", "", "platform authority")
	return cmd
}

func newBuildSetLaunchPausedCmd(opts *globalOpts) *cobra.Command {
	var (
		f         txFlags
		authority string
		mint      string
		paused    bool
	)
	cmd := &cobra.Command{
		Use:   "set-launch-paused",
		Short: "Pause or resume trading on one launch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts, &f, func(_ context.Context, d *runtimeDeps, bopts []builder.Option) (solana.Instruction, solana.PublicKey, error) {
				auth, err := parsePubkey("authority", authority)
				if err != nil {
					return nil, auth, err
				}
				mintKey, err := parsePubkey("mint", mint)
				if err != nil {
					return nil, auth, err
				}
				ix, err := d.builder.SetLaunchPaused(builder.SetLaunchPausedParams{
					Authority: auth,
					Mint:      mintKey,
					Paused:    paused,
				}, bopts...)
				return ix, auth, err
			})
		},
	}
	f.bind(cmd)
	cmd.Flags().StringVar(&authority, "authority", "", "platform authority")
	cmd.Flags().StringVar(&mint, "mint", "", "token mint")
	cmd.Flags().BoolVar(&paused, "paused", true, "pause (true) or resume (false)")
	return cmd
}

func newBuildCreateTokenCmd(opts *globalOpts) *cobra.Command {
	var (
		f             txFlags
		creator       string
		mint          string
		name          string
		symbol        string
		uri           string
		curveType     string
		creatorFeeBps uint16
	)
	cmd := &cobra.Command{
		Use:   "create-token",
		Short: "Launch a token on a bonding curve",
		Long:  "Launch a token on a bonding curve. The mint is a fresh keypair that must also sign.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts, &f, func(_ context.Context, d *runtimeDeps, bopts []builder.Option) (solana.Instruction, solana.PublicKey, error) {
				creatorKey, err := parsePubkey("creator", creator)
				if err != nil {
					return nil, creatorKey, err
				}
				mintKey, err := parsePubkey("mint", mint)
				if err != nil {
					return nil, creatorKey, err
				}
				ct, err := launchpad.ParseCurveType(curveType)
				if err != nil {
					return nil, creatorKey, err
				}
				ix, err := d.builder.CreateToken(builder.CreateTokenParams{
					Creator:       creatorKey,
					Mint:          mintKey,
					Name:          name,
					Symbol:        symbol,
					URI:           uri,
					CurveType:     ct,
					CreatorFeeBps: creatorFeeBps,
				}, bopts...)
				return ix, creatorKey, err
			})
		},
	}
	f.bind(cmd)
	cmd.Flags().StringVar(&creator, "creator", "", "creator wallet")
	cmd.Flags().StringVar(&mint, "mint", "", "new mint pubkey")
	cmd.Flags().StringVar(&name, "name", "", "token name")
	cmd.Flags().StringVar(&symbol, "symbol", "", "token symbol")
	cmd.Flags().StringVar(&uri, "uri", "", "metadata URI")
	cmd.Flags().StringVar(&curveType, "curve-type", "linear", "linear|exponential|logarithmic")
	cmd.Flags().Uint16Var(&creatorFeeBps, "creator-fee-bps", 0, "creator share of each trade")
	return cmd
}

// launchCreator returns the creator flag, or reads it from the launch.
func launchCreator(ctx context.Context, d *runtimeDeps, flag string, mint solana.PublicKey) (solana.PublicKey, error) {
	if flag != "" {
		return parsePubkey("creator", flag)
	}
	launch, err := d.reader.TokenLaunch(ctx, mint)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("resolve creator: %w", err)
	}
	return launch.Creator, nil
}

func newBuildTradeCmd(opts *globalOpts, buy bool) *cobra.Command {
	var (
		f       txFlags
		user    string
		mint    string
		creator string
		sol     string
		tokens  uint64
	)
	use, short := "buy", "Buy tokens from the bonding curve"
	if !buy {
		use, short = "sell", "Sell tokens to the bonding curve"
	}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts, &f, func(ctx context.Context, d *runtimeDeps, bopts []builder.Option) (solana.Instruction, solana.PublicKey, error) {
				userKey, err := parsePubkey("user", user)
				if err != nil {
					return nil, userKey, err
				}
				mintKey, err := parsePubkey("mint", mint)
				if err != nil {
					return nil, userKey, err
				}
				creatorKey, err := launchCreator(ctx, d, creator, mintKey)
				if err != nil {
					return nil, userKey, err
				}
				if buy {
					lamports, err := parseSol(sol)
					if err != nil {
						return nil, userKey, err
					}
					ix, err := d.builder.Buy(builder.BuyParams{
						Buyer: userKey, Mint: mintKey, Creator: creatorKey, SolAmount: lamports,
					}, bopts...)
					return ix, userKey, err
				}
				ix, err := d.builder.Sell(builder.SellParams{
					Seller: userKey, Mint: mintKey, Creator: creatorKey, TokenAmount: tokens,
				}, bopts...)
				return ix, userKey, err
			})
		},
	}
	f.bind(cmd)
	cmd.Flags().StringVar(&user, "user", "", "trading wallet")
	cmd.Flags().StringVar(&mint, "mint", "", "token mint")
	cmd.Flags().StringVar(&creator, "creator", "", "launch creator (read from chain if empty)")
	if buy {
		cmd.Flags().StringVar(&sol, "sol", "", "SOL to spend")
	} else {
		cmd.Flags().Uint64Var(&tokens, "tokens", 0, "token base units to sell")
	}
	return cmd
}

func newBuildClaimCmd(opts *globalOpts) *cobra.Command {
	var (
		f       txFlags
		creator string
		mint    string
	)
	cmd := &cobra.Command{
		Use:   "claim-creator-fees",
		Short: "Withdraw accumulated creator fees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts, &f, func(_ context.Context, d *runtimeDeps, bopts []builder.Option) (solana.Instruction, solana.PublicKey, error) {
				creatorKey, err := parsePubkey("creator", creator)
				if err != nil {
					return nil, creatorKey, err
				}
				mintKey, err := parsePubkey("mint", mint)
				if err != nil {
					return nil, creatorKey, err
				}
				ix, err := d.builder.ClaimCreatorFees(builder.ClaimCreatorFeesParams{Creator: creatorKey, Mint: mintKey}, bopts...)
				return ix, creatorKey, err
			})
		},
	}
	f.bind(cmd)
	cmd.Flags().StringVar(&creator, "creator", "", "launch creator")
	cmd.Flags().StringVar(&mint, "mint", "", "token mint")
	return cmd
}

func newBuildMigrateCmd(opts *globalOpts) *cobra.Command {
	var (
		f      txFlags
		payer  string
		mint   string
		lpMint string
	)
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Move a graduated launch into an AMM pool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts, &f, func(_ context.Context, d *runtimeDeps, bopts []builder.Option) (solana.Instruction, solana.PublicKey, error) {
				payerKey, err := parsePubkey("payer", payer)
				if err != nil {
					return nil, payerKey, err
				}
				mintKey, err := parsePubkey("mint", mint)
				if err != nil {
					return nil, payerKey, err
				}
				lpKey, err := parsePubkey("lp-mint", lpMint)
				if err != nil {
					return nil, payerKey, err
				}
				ix, err := d.builder.MigrateToPool(builder.MigrateToPoolParams{Payer: payerKey, Mint: mintKey, LpMint: lpKey}, bopts...)
				return ix, payerKey, err
			})
		},
	}
	f.bind(cmd)
	cmd.Flags().StringVar(&payer, "payer", "", "migration payer")
	cmd.Flags().StringVar(&mint, "mint", "", "token mint")
	cmd.Flags().StringVar(&lpMint, "lp-mint", "", "new LP mint pubkey (must also sign)")
	return cmd
}

func newBuildCreatePoolCmd(opts *globalOpts) *cobra.Command {
	var (
		f       txFlags
		creator string
		mint    string
		lpMint  string
		tokens  uint64
		sol     string
	)
	cmd := &cobra.Command{
		Use:   "create-pool",
		Short: "Create an AMM pool with initial liquidity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts, &f, func(_ context.Context, d *runtimeDeps, bopts []builder.Option) (solana.Instruction, solana.PublicKey, error) {
				creatorKey, err := parsePubkey("creator", creator)
				if err != nil {
					return nil, creatorKey, err
				}
				mintKey, err := parsePubkey("mint", mint)
				if err != nil {
					return nil, creatorKey, err
				}
				lpKey, err := parsePubkey("lp-mint", lpMint)
				if err != nil {
					return nil, creatorKey, err
				}
				lamports, err := parseSol(sol)
				if err != nil {
					return nil, creatorKey, err
				}
				ix, err := d.builder.CreatePool(builder.CreatePoolParams{
					Creator: creatorKey, Mint: mintKey, LpMint: lpKey, TokenAmount: tokens, SolAmount: lamports,
				}, bopts...)
				return ix, creatorKey, err
			})
		},
	}
	f.bind(cmd)
	cmd.Flags().StringVar(&creator, "creator", "", "pool creator")
	cmd.Flags().StringVar(&mint, "mint", "", "token mint")
	cmd.Flags().StringVar(&lpMint, "lp-mint", "", "new LP mint pubkey (must also sign)")
	cmd.Flags().Uint64Var(&tokens, "tokens", 0, "token base units to deposit")
	cmd.Flags().StringVar(&sol, "sol", "", "SOL to deposit")
	return cmd
}

func newBuildSwapCmd(opts *globalOpts) *cobra.Command {
	var (
		f         txFlags
		user      string
		mint      string
		direction string
		amountIn  uint64
		minOut    uint64
	)
	cmd := &cobra.Command{
		Use:   "swap",
		Short: "Swap against an AMM pool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts, &f, func(_ context.Context, d *runtimeDeps, bopts []builder.Option) (solana.Instruction, solana.PublicKey, error) {
				userKey, err := parsePubkey("user", user)
				if err != nil {
					return nil, userKey, err
				}
				mintKey, err := parsePubkey("mint", mint)
				if err != nil {
					return nil, userKey, err
				}
				dir, err := curve.ParseSwapDirection(direction)
				if err != nil {
					return nil, userKey, err
				}
				ix, err := d.builder.Swap(builder.SwapParams{
					User: userKey, Mint: mintKey, Direction: dir, AmountIn: amountIn, MinimumAmountOut: minOut,
				}, bopts...)
				return ix, userKey, err
			})
		},
	}
	f.bind(cmd)
	cmd.Flags().StringVar(&user, "user", "", "trading wallet")
	cmd.Flags().StringVar(&mint, "mint", "", "token mint")
	cmd.Flags().StringVar(&direction, "direction", "buy", "buy|sell|sol_to_token|token_to_sol")
	cmd.Flags().Uint64Var(&amountIn, "amount", 0, "input amount in base units")
	cmd.Flags().Uint64Var(&minOut, "min-out", 0, "minimum output (see quote swap)")
	return cmd
}

func newBuildAddLiquidityCmd(opts *globalOpts) *cobra.Command {
	var (
		f         txFlags
		user      string
		mint      string
		lpMint    string
		sol       string
		maxTokens uint64
		minLp     uint64
	)
	cmd := &cobra.Command{
		Use:   "add-liquidity",
		Short: "Deposit SOL and tokens into a pool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts, &f, func(_ context.Context, d *runtimeDeps, bopts []builder.Option) (solana.Instruction, solana.PublicKey, error) {
				userKey, err := parsePubkey("user", user)
				if err != nil {
					return nil, userKey, err
				}
				mintKey, err := parsePubkey("mint", mint)
				if err != nil {
					return nil, userKey, err
				}
				lpKey, err := parsePubkey("lp-mint", lpMint)
				if err != nil {
					return nil, userKey, err
				}
				lamports, err := parseSol(sol)
				if err != nil {
					return nil, userKey, err
				}
				ix, err := d.builder.AddLiquidity(builder.AddLiquidityParams{
					User: userKey, Mint: mintKey, LpMint: lpKey,
					SolAmount: lamports, MaxTokenAmount: maxTokens, MinLpOut: minLp,
				}, bopts...)
				return ix, userKey, err
			})
		},
	}
	f.bind(cmd)
	cmd.Flags().StringVar(&user, "user", "", "liquidity provider")
	cmd.Flags().StringVar(&mint, "mint", "", "token mint")
	cmd.Flags().StringVar(&lpMint, "lp-mint", "", "pool LP mint")
	cmd.Flags().StringVar(&sol, "sol", "", "SOL to deposit")
	cmd.Flags().Uint64Var(&maxTokens, "max-tokens", 0, "maximum token base units to deposit")
	cmd.Flags().Uint64Var(&minLp, "min-lp", 0, "minimum LP tokens to receive")
	return cmd
}

func newBuildRemoveLiquidityCmd(opts *globalOpts) *cobra.Command {
	var (
		f         txFlags
		user      string
		mint      string
		lpMint    string
		lpAmount  uint64
		minSol    string
		minTokens uint64
	)
	cmd := &cobra.Command{
		Use:   "remove-liquidity",
		Short: "Burn LP tokens for pool reserves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts, &f, func(_ context.Context, d *runtimeDeps, bopts []builder.Option) (solana.Instruction, solana.PublicKey, error) {
				userKey, err := parsePubkey("user", user)
				if err != nil {
					return nil, userKey, err
				}
				mintKey, err := parsePubkey("mint", mint)
				if err != nil {
					return nil, userKey, err
				}
				lpKey, err := parsePubkey("lp-mint", lpMint)
				if err != nil {
					return nil, userKey, err
				}
				minLamports, err := parseSol(minSol)
				if err != nil {
					return nil, userKey, err
				}
				ix, err := d.builder.RemoveLiquidity(builder.RemoveLiquidityParams{
					User: userKey, Mint: mintKey, LpMint: lpKey,
					LpAmount: lpAmount, MinSolOut: minLamports, MinTokenOut: minTokens,
				}, bopts...)
				return ix, userKey, err
			})
		},
	}
	f.bind(cmd)
	cmd.Flags().StringVar(&user, "user", "", "liquidity provider")
	cmd.Flags().StringVar(&mint, "mint", "", "token mint")
	cmd.Flags().StringVar(&lpMint, "lp-mint", "", "pool LP mint")
	cmd.Flags().Uint64Var(&lpAmount, "lp", 0, "LP tokens to burn")
	cmd.Flags().StringVar(&minSol, "min-sol", "0", "minimum SOL to receive")
	cmd.Flags().Uint64Var(&minTokens, "min-tokens", 0, "minimum token base units to receive")
	return cmd
}

func newBuildStakeCmd(opts *globalOpts, stake bool) *cobra.Command {
	var (
		f      txFlags
		user   string
		mint   string
		amount uint64
	)
	use, short := "stake", "Stake launch tokens"
	if !stake {
		use, short = "unstake", "Withdraw staked launch tokens"
	}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts, &f, func(_ context.Context, d *runtimeDeps, bopts []builder.Option) (solana.Instruction, solana.PublicKey, error) {
				userKey, err := parsePubkey("user", user)
				if err != nil {
					return nil, userKey, err
				}
				mintKey, err := parsePubkey("mint", mint)
				if err != nil {
					return nil, userKey, err
				}
				p := builder.StakeParams{User: userKey, Mint: mintKey, Amount: amount}
				if stake {
					ix, err := d.builder.Stake(p, bopts...)
					return ix, userKey, err
				}
				ix, err := d.builder.Unstake(p, bopts...)
				return ix, userKey, err
			})
		},
	}
	f.bind(cmd)
	cmd.Flags().StringVar(&user, "user", "", "staking wallet")
	cmd.Flags().StringVar(&mint, "mint", "", "token mint")
	cmd.Flags().Uint64Var(&amount, "amount", 0, "token base units")
	return cmd
}
