package builder

import (
	"github.com/gagliardetto/solana-go"

	"github.com/ninja0404/launchpad-go-sdk/pkg/curve"
	"github.com/ninja0404/launchpad-go-sdk/pkg/program/launchpad"
	"github.com/ninja0404/launchpad-go-sdk/pkg/types"
)

// MigrateToPoolParams graduates a launch into its AMM pool. LpMint is a fresh
// keypair's public key and signs alongside Payer.
type MigrateToPoolParams struct {
	Payer  solana.PublicKey
	Mint   solana.PublicKey
	LpMint solana.PublicKey
}

// MigrateToPool builds migrate_to_pool.
func (b *Builder) MigrateToPool(p MigrateToPoolParams, opts ...Option) (*solana.GenericInstruction, error) {
	if err := types.RequireKeys(
		types.NamedKey{Name: "payer", Key: p.Payer},
		types.NamedKey{Name: "mint", Key: p.Mint},
		types.NamedKey{Name: "lpMint", Key: p.LpMint},
	); err != nil {
		return nil, err
	}
	o := collect(opts)

	var r resolver
	launch := r.key(b.pda.TokenLaunch(p.Mint))
	pool := r.key(b.pda.AmmPool(p.Mint))
	accts := launchpad.MigrateToPoolAccounts{
		TokenLaunch:            launch,
		Mint:                   p.Mint,
		LaunchTokenVault:       r.key(b.pda.AssociatedTokenAccount(launch, p.Mint)),
		SolVault:               r.key(b.pda.SolVault(p.Mint)),
		AmmPool:                pool,
		PoolTokenVault:         r.key(b.pda.AssociatedTokenAccount(pool, p.Mint)),
		PoolSolVault:           r.key(b.pda.PoolSolVault(p.Mint)),
		LpMint:                 p.LpMint,
		PlatformConfig:         r.key(b.pda.PlatformConfig()),
		Payer:                  p.Payer,
		TokenProgram:           b.tokenProgram(),
		AssociatedTokenProgram: ataProgram,
		SystemProgram:          systemProgram,
		Rent:                   rentSysvar,
	}
	if r.err != nil {
		return nil, r.err
	}
	applyOverrides(&accts, o.Overrides)

	ix, err := launchpad.BuildMigrateToPool(b.programID, accts)
	if err != nil {
		return nil, err
	}
	o.preview(accts, nil)
	return ix, nil
}

// CreatePoolParams seeds a pool directly from the creator's holdings.
type CreatePoolParams struct {
	Creator     solana.PublicKey
	Mint        solana.PublicKey
	LpMint      solana.PublicKey
	TokenAmount uint64
	SolAmount   uint64
}

// CreatePool builds create_pool.
func (b *Builder) CreatePool(p CreatePoolParams, opts ...Option) (*solana.GenericInstruction, error) {
	if err := types.RequireKeys(
		types.NamedKey{Name: "creator", Key: p.Creator},
		types.NamedKey{Name: "mint", Key: p.Mint},
		types.NamedKey{Name: "lpMint", Key: p.LpMint},
	); err != nil {
		return nil, err
	}
	if err := types.ValidateAmount("tokenAmount", p.TokenAmount); err != nil {
		return nil, err
	}
	if err := types.ValidateAmount("solAmount", p.SolAmount); err != nil {
		return nil, err
	}
	o := collect(opts)

	var r resolver
	pool := r.key(b.pda.AmmPool(p.Mint))
	accts := launchpad.CreatePoolAccounts{
		AmmPool:                pool,
		Mint:                   p.Mint,
		LpMint:                 p.LpMint,
		PoolTokenVault:         r.key(b.pda.AssociatedTokenAccount(pool, p.Mint)),
		PoolSolVault:           r.key(b.pda.PoolSolVault(p.Mint)),
		CreatorTokenAccount:    r.key(b.pda.AssociatedTokenAccount(p.Creator, p.Mint)),
		CreatorLpAccount:       r.key(b.pda.AssociatedTokenAccount(p.Creator, p.LpMint)),
		TokenLaunch:            r.key(b.pda.TokenLaunch(p.Mint)),
		Creator:                p.Creator,
		TokenProgram:           b.tokenProgram(),
		AssociatedTokenProgram: ataProgram,
		SystemProgram:          systemProgram,
		Rent:                   rentSysvar,
	}
	if r.err != nil {
		return nil, r.err
	}
	applyOverrides(&accts, o.Overrides)

	args := launchpad.CreatePoolArgs{TokenAmount: p.TokenAmount, SolAmount: p.SolAmount}
	ix, err := launchpad.BuildCreatePool(b.programID, accts, args)
	if err != nil {
		return nil, err
	}
	o.preview(accts, args)
	return ix, nil
}

// SwapParams swaps against a migrated pool. MinimumAmountOut of zero
// disables the slippage check on chain.
type SwapParams struct {
	User             solana.PublicKey
	Mint             solana.PublicKey
	Direction        curve.SwapDirection
	AmountIn         uint64
	MinimumAmountOut uint64
}

// Swap builds swap.
func (b *Builder) Swap(p SwapParams, opts ...Option) (*solana.GenericInstruction, error) {
	if err := types.RequireKeys(
		types.NamedKey{Name: "user", Key: p.User},
		types.NamedKey{Name: "mint", Key: p.Mint},
	); err != nil {
		return nil, err
	}
	if err := types.ValidateAmount("amountIn", p.AmountIn); err != nil {
		return nil, err
	}
	if p.Direction != curve.SolToToken && p.Direction != curve.TokenToSol {
		return nil, types.NewValidationError("direction", p.Direction.String())
	}
	o := collect(opts)

	var r resolver
	pool := r.key(b.pda.AmmPool(p.Mint))
	accts := launchpad.SwapAccounts{
		AmmPool:                pool,
		Mint:                   p.Mint,
		PoolTokenVault:         r.key(b.pda.AssociatedTokenAccount(pool, p.Mint)),
		PoolSolVault:           r.key(b.pda.PoolSolVault(p.Mint)),
		UserTokenAccount:       r.key(b.pda.AssociatedTokenAccount(p.User, p.Mint)),
		User:                   p.User,
		TokenProgram:           b.tokenProgram(),
		AssociatedTokenProgram: ataProgram,
		SystemProgram:          systemProgram,
	}
	if r.err != nil {
		return nil, r.err
	}
	applyOverrides(&accts, o.Overrides)

	args := launchpad.SwapArgs{
		AmountIn:         p.AmountIn,
		MinimumAmountOut: p.MinimumAmountOut,
		Direction:        p.Direction,
	}
	ix, err := launchpad.BuildSwap(b.programID, accts, args)
	if err != nil {
		return nil, err
	}
	o.preview(accts, args)
	return ix, nil
}

// AddLiquidityParams deposits SolAmount and up to MaxTokenAmount tokens.
type AddLiquidityParams struct {
	User           solana.PublicKey
	Mint           solana.PublicKey
	LpMint         solana.PublicKey
	SolAmount      uint64
	MaxTokenAmount uint64
	MinLpOut       uint64
}

// AddLiquidity builds add_liquidity.
func (b *Builder) AddLiquidity(p AddLiquidityParams, opts ...Option) (*solana.GenericInstruction, error) {
	if err := types.ValidateAmount("solAmount", p.SolAmount); err != nil {
		return nil, err
	}
	if err := types.ValidateAmount("maxTokenAmount", p.MaxTokenAmount); err != nil {
		return nil, err
	}
	accts, o, err := b.liquidityAccounts(p.User, p.Mint, p.LpMint, opts)
	if err != nil {
		return nil, err
	}
	args := launchpad.AddLiquidityArgs{
		SolAmount:      p.SolAmount,
		MaxTokenAmount: p.MaxTokenAmount,
		MinLpOut:       p.MinLpOut,
	}
	ix, err := launchpad.BuildAddLiquidity(b.programID, accts, args)
	if err != nil {
		return nil, err
	}
	o.preview(accts, args)
	return ix, nil
}

// RemoveLiquidityParams burns LpAmount LP tokens.
type RemoveLiquidityParams struct {
	User        solana.PublicKey
	Mint        solana.PublicKey
	LpMint      solana.PublicKey
	LpAmount    uint64
	MinSolOut   uint64
	MinTokenOut uint64
}

// RemoveLiquidity builds remove_liquidity.
func (b *Builder) RemoveLiquidity(p RemoveLiquidityParams, opts ...Option) (*solana.GenericInstruction, error) {
	if err := types.ValidateAmount("lpAmount", p.LpAmount); err != nil {
		return nil, err
	}
	accts, o, err := b.liquidityAccounts(p.User, p.Mint, p.LpMint, opts)
	if err != nil {
		return nil, err
	}
	args := launchpad.RemoveLiquidityArgs{
		LpAmount:    p.LpAmount,
		MinSolOut:   p.MinSolOut,
		MinTokenOut: p.MinTokenOut,
	}
	ix, err := launchpad.BuildRemoveLiquidity(b.programID, accts, args)
	if err != nil {
		return nil, err
	}
	o.preview(accts, args)
	return ix, nil
}

func (b *Builder) liquidityAccounts(user, mint, lpMint solana.PublicKey, opts []Option) (launchpad.LiquidityAccounts, *Options, error) {
	if err := types.RequireKeys(
		types.NamedKey{Name: "user", Key: user},
		types.NamedKey{Name: "mint", Key: mint},
		types.NamedKey{Name: "lpMint", Key: lpMint},
	); err != nil {
		return launchpad.LiquidityAccounts{}, nil, err
	}
	o := collect(opts)

	var r resolver
	pool := r.key(b.pda.AmmPool(mint))
	accts := launchpad.LiquidityAccounts{
		AmmPool:                pool,
		Mint:                   mint,
		LpMint:                 lpMint,
		PoolTokenVault:         r.key(b.pda.AssociatedTokenAccount(pool, mint)),
		PoolSolVault:           r.key(b.pda.PoolSolVault(mint)),
		UserTokenAccount:       r.key(b.pda.AssociatedTokenAccount(user, mint)),
		UserLpAccount:          r.key(b.pda.AssociatedTokenAccount(user, lpMint)),
		User:                   user,
		TokenProgram:           b.tokenProgram(),
		AssociatedTokenProgram: ataProgram,
		SystemProgram:          systemProgram,
	}
	if r.err != nil {
		return launchpad.LiquidityAccounts{}, nil, r.err
	}
	applyOverrides(&accts, o.Overrides)
	return accts, o, nil
}
