// Package launchpad holds the launchpad program's account layouts and
// instruction encoders.
package launchpad

import (
	"github.com/gagliardetto/solana-go"

	"github.com/ninja0404/launchpad-go-sdk/pkg/codec"
	"github.com/ninja0404/launchpad-go-sdk/pkg/curve"
)

// Instruction names as hashed into discriminators.
const (
	InstructionInitialize           = "initialize"
	InstructionUpdatePlatformConfig = "update_platform_config"
	InstructionPause                = "pause"
	InstructionUnpause              = "unpause"
	InstructionSetLaunchPaused      = "set_launch_paused"
	InstructionCreateToken          = "create_token"
	InstructionBuy                  = "buy"
	InstructionSell                 = "sell"
	InstructionClaimCreatorFees     = "claim_creator_fees"
	InstructionMigrateToPool        = "migrate_to_pool"
	InstructionCreatePool           = "create_pool"
	InstructionSwap                 = "swap"
	InstructionAddLiquidity         = "add_liquidity"
	InstructionRemoveLiquidity      = "remove_liquidity"
	InstructionStake                = "stake"
	InstructionUnstake              = "unstake"
)

// Instructions lists every instruction name in program order.
var Instructions = []string{
	InstructionInitialize,
	InstructionUpdatePlatformConfig,
	InstructionPause,
	InstructionUnpause,
	InstructionSetLaunchPaused,
	InstructionCreateToken,
	InstructionBuy,
	InstructionSell,
	InstructionClaimCreatorFees,
	InstructionMigrateToPool,
	InstructionCreatePool,
	InstructionSwap,
	InstructionAddLiquidity,
	InstructionRemoveLiquidity,
	InstructionStake,
	InstructionUnstake,
}

func ro(pk solana.PublicKey) *solana.AccountMeta       { return solana.NewAccountMeta(pk, false, false) }
func rw(pk solana.PublicKey) *solana.AccountMeta       { return solana.NewAccountMeta(pk, true, false) }
func signer(pk solana.PublicKey) *solana.AccountMeta   { return solana.NewAccountMeta(pk, false, true) }
func signerRW(pk solana.PublicKey) *solana.AccountMeta { return solana.NewAccountMeta(pk, true, true) }

func build(program solana.PublicKey, op string, metas []*solana.AccountMeta, fields ...interface{}) (*solana.GenericInstruction, error) {
	data, err := codec.EncodeInstruction(op, fields...)
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(program, metas, data), nil
}

// ----- initialize -----

type InitializeAccounts struct {
	PlatformConfig solana.PublicKey `json:"platformConfig"`
	PlatformVault  solana.PublicKey `json:"platformVault"`
	Authority      solana.PublicKey `json:"authority"`
	SystemProgram  solana.PublicKey `json:"systemProgram"`
}

func (a InitializeAccounts) ToAccountMetas() []*solana.AccountMeta {
	return []*solana.AccountMeta{
		rw(a.PlatformConfig),
		rw(a.PlatformVault),
		signerRW(a.Authority),
		ro(a.SystemProgram),
	}
}

type InitializeArgs struct {
	PlatformFeeBps     uint16 `json:"platformFeeBps"`
	MigrationThreshold uint64 `json:"migrationThreshold"`
}

func BuildInitialize(program solana.PublicKey, accounts InitializeAccounts, args InitializeArgs) (*solana.GenericInstruction, error) {
	return build(program, InstructionInitialize, accounts.ToAccountMetas(), args.PlatformFeeBps, args.MigrationThreshold)
}

// ----- admin: update_platform_config / pause / unpause -----

// AdminAccounts is shared by update_platform_config, pause and unpause.
type AdminAccounts struct {
	PlatformConfig solana.PublicKey `json:"platformConfig"`
	Authority      solana.PublicKey `json:"authority"`
}

func (a AdminAccounts) ToAccountMetas() []*solana.AccountMeta {
	return []*solana.AccountMeta{
		rw(a.PlatformConfig),
		signer(a.Authority),
	}
}

// UpdatePlatformConfigArgs leaves absent fields unchanged on chain.
type UpdatePlatformConfigArgs struct {
	PlatformFeeBps     codec.Option[uint16]           `json:"platformFeeBps"`
	MigrationThreshold codec.Option[uint64]           `json:"migrationThreshold"`
	NewAuthority       codec.Option[solana.PublicKey] `json:"newAuthority"`
}

func BuildUpdatePlatformConfig(program solana.PublicKey, accounts AdminAccounts, args UpdatePlatformConfigArgs) (*solana.GenericInstruction, error) {
	return build(program, InstructionUpdatePlatformConfig, accounts.ToAccountMetas(),
		args.PlatformFeeBps, args.MigrationThreshold, args.NewAuthority)
}

func BuildPause(program solana.PublicKey, accounts AdminAccounts) (*solana.GenericInstruction, error) {
	return build(program, InstructionPause, accounts.ToAccountMetas())
}

func BuildUnpause(program solana.PublicKey, accounts AdminAccounts) (*solana.GenericInstruction, error) {
	return build(program, InstructionUnpause, accounts.ToAccountMetas())
}

// ----- set_launch_paused -----

type SetLaunchPausedAccounts struct {
	PlatformConfig solana.PublicKey `json:"platformConfig"`
	TokenLaunch    solana.PublicKey `json:"tokenLaunch"`
	Authority      solana.PublicKey `json:"authority"`
}

func (a SetLaunchPausedAccounts) ToAccountMetas() []*solana.AccountMeta {
	return []*solana.AccountMeta{
		ro(a.PlatformConfig),
		rw(a.TokenLaunch),
		signer(a.Authority),
	}
}

type SetLaunchPausedArgs struct {
	Paused bool `json:"paused"`
}

func BuildSetLaunchPaused(program solana.PublicKey, accounts SetLaunchPausedAccounts, args SetLaunchPausedArgs) (*solana.GenericInstruction, error) {
	return build(program, InstructionSetLaunchPaused, accounts.ToAccountMetas(), args.Paused)
}

// ----- create_token -----

type CreateTokenAccounts struct {
	TokenLaunch            solana.PublicKey `json:"tokenLaunch"`
	Mint                   solana.PublicKey `json:"mint"`
	SolVault               solana.PublicKey `json:"solVault"`
	LaunchTokenVault       solana.PublicKey `json:"launchTokenVault"`
	Creator                solana.PublicKey `json:"creator"`
	PlatformConfig         solana.PublicKey `json:"platformConfig"`
	TokenProgram           solana.PublicKey `json:"tokenProgram"`
	AssociatedTokenProgram solana.PublicKey `json:"associatedTokenProgram"`
	SystemProgram          solana.PublicKey `json:"systemProgram"`
	Rent                   solana.PublicKey `json:"rent"`
}

func (a CreateTokenAccounts) ToAccountMetas() []*solana.AccountMeta {
	return []*solana.AccountMeta{
		rw(a.TokenLaunch),
		signerRW(a.Mint),
		rw(a.SolVault),
		rw(a.LaunchTokenVault),
		signerRW(a.Creator),
		ro(a.PlatformConfig),
		ro(a.TokenProgram),
		ro(a.AssociatedTokenProgram),
		ro(a.SystemProgram),
		ro(a.Rent),
	}
}

type CreateTokenArgs struct {
	Name          string    `json:"name"`
	Symbol        string    `json:"symbol"`
	URI           string    `json:"uri"`
	CurveType     CurveType `json:"curveType"`
	CreatorFeeBps uint16    `json:"creatorFeeBps"`
}

func BuildCreateToken(program solana.PublicKey, accounts CreateTokenAccounts, args CreateTokenArgs) (*solana.GenericInstruction, error) {
	return build(program, InstructionCreateToken, accounts.ToAccountMetas(),
		args.Name, args.Symbol, args.URI, args.CurveType, args.CreatorFeeBps)
}

// ----- buy / sell -----

// TradeAccounts is shared by buy and sell. User is the buyer or seller.
type TradeAccounts struct {
	TokenLaunch            solana.PublicKey `json:"tokenLaunch"`
	Mint                   solana.PublicKey `json:"mint"`
	LaunchTokenVault       solana.PublicKey `json:"launchTokenVault"`
	SolVault               solana.PublicKey `json:"solVault"`
	UserTokenAccount       solana.PublicKey `json:"userTokenAccount"`
	UserPosition           solana.PublicKey `json:"userPosition"`
	PlatformVault          solana.PublicKey `json:"platformVault"`
	Creator                solana.PublicKey `json:"creator"`
	PlatformConfig         solana.PublicKey `json:"platformConfig"`
	User                   solana.PublicKey `json:"user"`
	TokenProgram           solana.PublicKey `json:"tokenProgram"`
	AssociatedTokenProgram solana.PublicKey `json:"associatedTokenProgram"`
	SystemProgram          solana.PublicKey `json:"systemProgram"`
}

func (a TradeAccounts) ToAccountMetas() []*solana.AccountMeta {
	return []*solana.AccountMeta{
		rw(a.TokenLaunch),
		ro(a.Mint),
		rw(a.LaunchTokenVault),
		rw(a.SolVault),
		rw(a.UserTokenAccount),
		rw(a.UserPosition),
		rw(a.PlatformVault),
		rw(a.Creator),
		rw(a.PlatformConfig),
		signerRW(a.User),
		ro(a.TokenProgram),
		ro(a.AssociatedTokenProgram),
		ro(a.SystemProgram),
	}
}

type BuyArgs struct {
	SolAmount uint64 `json:"solAmount"`
}

func BuildBuy(program solana.PublicKey, accounts TradeAccounts, args BuyArgs) (*solana.GenericInstruction, error) {
	return build(program, InstructionBuy, accounts.ToAccountMetas(), args.SolAmount)
}

type SellArgs struct {
	TokenAmount uint64 `json:"tokenAmount"`
}

func BuildSell(program solana.PublicKey, accounts TradeAccounts, args SellArgs) (*solana.GenericInstruction, error) {
	return build(program, InstructionSell, accounts.ToAccountMetas(), args.TokenAmount)
}

// ----- claim_creator_fees -----

type ClaimCreatorFeesAccounts struct {
	TokenLaunch   solana.PublicKey `json:"tokenLaunch"`
	SolVault      solana.PublicKey `json:"solVault"`
	Creator       solana.PublicKey `json:"creator"`
	SystemProgram solana.PublicKey `json:"systemProgram"`
}

func (a ClaimCreatorFeesAccounts) ToAccountMetas() []*solana.AccountMeta {
	return []*solana.AccountMeta{
		rw(a.TokenLaunch),
		rw(a.SolVault),
		signerRW(a.Creator),
		ro(a.SystemProgram),
	}
}

func BuildClaimCreatorFees(program solana.PublicKey, accounts ClaimCreatorFeesAccounts) (*solana.GenericInstruction, error) {
	return build(program, InstructionClaimCreatorFees, accounts.ToAccountMetas())
}

// ----- migrate_to_pool -----

type MigrateToPoolAccounts struct {
	TokenLaunch            solana.PublicKey `json:"tokenLaunch"`
	Mint                   solana.PublicKey `json:"mint"`
	LaunchTokenVault       solana.PublicKey `json:"launchTokenVault"`
	SolVault               solana.PublicKey `json:"solVault"`
	AmmPool                solana.PublicKey `json:"ammPool"`
	PoolTokenVault         solana.PublicKey `json:"poolTokenVault"`
	PoolSolVault           solana.PublicKey `json:"poolSolVault"`
	LpMint                 solana.PublicKey `json:"lpMint"`
	PlatformConfig         solana.PublicKey `json:"platformConfig"`
	Payer                  solana.PublicKey `json:"payer"`
	TokenProgram           solana.PublicKey `json:"tokenProgram"`
	AssociatedTokenProgram solana.PublicKey `json:"associatedTokenProgram"`
	SystemProgram          solana.PublicKey `json:"systemProgram"`
	Rent                   solana.PublicKey `json:"rent"`
}

func (a MigrateToPoolAccounts) ToAccountMetas() []*solana.AccountMeta {
	return []*solana.AccountMeta{
		rw(a.TokenLaunch),
		ro(a.Mint),
		rw(a.LaunchTokenVault),
		rw(a.SolVault),
		rw(a.AmmPool),
		rw(a.PoolTokenVault),
		rw(a.PoolSolVault),
		signerRW(a.LpMint),
		ro(a.PlatformConfig),
		signerRW(a.Payer),
		ro(a.TokenProgram),
		ro(a.AssociatedTokenProgram),
		ro(a.SystemProgram),
		ro(a.Rent),
	}
}

func BuildMigrateToPool(program solana.PublicKey, accounts MigrateToPoolAccounts) (*solana.GenericInstruction, error) {
	return build(program, InstructionMigrateToPool, accounts.ToAccountMetas())
}

// ----- create_pool -----

type CreatePoolAccounts struct {
	AmmPool                solana.PublicKey `json:"ammPool"`
	Mint                   solana.PublicKey `json:"mint"`
	LpMint                 solana.PublicKey `json:"lpMint"`
	PoolTokenVault         solana.PublicKey `json:"poolTokenVault"`
	PoolSolVault           solana.PublicKey `json:"poolSolVault"`
	CreatorTokenAccount    solana.PublicKey `json:"creatorTokenAccount"`
	CreatorLpAccount       solana.PublicKey `json:"creatorLpAccount"`
	TokenLaunch            solana.PublicKey `json:"tokenLaunch"`
	Creator                solana.PublicKey `json:"creator"`
	TokenProgram           solana.PublicKey `json:"tokenProgram"`
	AssociatedTokenProgram solana.PublicKey `json:"associatedTokenProgram"`
	SystemProgram          solana.PublicKey `json:"systemProgram"`
	Rent                   solana.PublicKey `json:"rent"`
}

func (a CreatePoolAccounts) ToAccountMetas() []*solana.AccountMeta {
	return []*solana.AccountMeta{
		rw(a.AmmPool),
		ro(a.Mint),
		signerRW(a.LpMint),
		rw(a.PoolTokenVault),
		rw(a.PoolSolVault),
		rw(a.CreatorTokenAccount),
		rw(a.CreatorLpAccount),
		ro(a.TokenLaunch),
		signerRW(a.Creator),
		ro(a.TokenProgram),
		ro(a.AssociatedTokenProgram),
		ro(a.SystemProgram),
		ro(a.Rent),
	}
}

type CreatePoolArgs struct {
	TokenAmount uint64 `json:"tokenAmount"`
	SolAmount   uint64 `json:"solAmount"`
}

func BuildCreatePool(program solana.PublicKey, accounts CreatePoolAccounts, args CreatePoolArgs) (*solana.GenericInstruction, error) {
	return build(program, InstructionCreatePool, accounts.ToAccountMetas(), args.TokenAmount, args.SolAmount)
}

// ----- swap -----

type SwapAccounts struct {
	AmmPool                solana.PublicKey `json:"ammPool"`
	Mint                   solana.PublicKey `json:"mint"`
	PoolTokenVault         solana.PublicKey `json:"poolTokenVault"`
	PoolSolVault           solana.PublicKey `json:"poolSolVault"`
	UserTokenAccount       solana.PublicKey `json:"userTokenAccount"`
	User                   solana.PublicKey `json:"user"`
	TokenProgram           solana.PublicKey `json:"tokenProgram"`
	AssociatedTokenProgram solana.PublicKey `json:"associatedTokenProgram"`
	SystemProgram          solana.PublicKey `json:"systemProgram"`
}

func (a SwapAccounts) ToAccountMetas() []*solana.AccountMeta {
	return []*solana.AccountMeta{
		rw(a.AmmPool),
		ro(a.Mint),
		rw(a.PoolTokenVault),
		rw(a.PoolSolVault),
		rw(a.UserTokenAccount),
		signerRW(a.User),
		ro(a.TokenProgram),
		ro(a.AssociatedTokenProgram),
		ro(a.SystemProgram),
	}
}

type SwapArgs struct {
	AmountIn         uint64              `json:"amountIn"`
	MinimumAmountOut uint64              `json:"minimumAmountOut"`
	Direction        curve.SwapDirection `json:"direction"`
}

func BuildSwap(program solana.PublicKey, accounts SwapAccounts, args SwapArgs) (*solana.GenericInstruction, error) {
	return build(program, InstructionSwap, accounts.ToAccountMetas(), args.AmountIn, args.MinimumAmountOut, args.Direction)
}

// ----- add_liquidity / remove_liquidity -----

// LiquidityAccounts is shared by add_liquidity and remove_liquidity.
type LiquidityAccounts struct {
	AmmPool                solana.PublicKey `json:"ammPool"`
	Mint                   solana.PublicKey `json:"mint"`
	LpMint                 solana.PublicKey `json:"lpMint"`
	PoolTokenVault         solana.PublicKey `json:"poolTokenVault"`
	PoolSolVault           solana.PublicKey `json:"poolSolVault"`
	UserTokenAccount       solana.PublicKey `json:"userTokenAccount"`
	UserLpAccount          solana.PublicKey `json:"userLpAccount"`
	User                   solana.PublicKey `json:"user"`
	TokenProgram           solana.PublicKey `json:"tokenProgram"`
	AssociatedTokenProgram solana.PublicKey `json:"associatedTokenProgram"`
	SystemProgram          solana.PublicKey `json:"systemProgram"`
}

func (a LiquidityAccounts) ToAccountMetas() []*solana.AccountMeta {
	return []*solana.AccountMeta{
		rw(a.AmmPool),
		ro(a.Mint),
		rw(a.LpMint),
		rw(a.PoolTokenVault),
		rw(a.PoolSolVault),
		rw(a.UserTokenAccount),
		rw(a.UserLpAccount),
		signerRW(a.User),
		ro(a.TokenProgram),
		ro(a.AssociatedTokenProgram),
		ro(a.SystemProgram),
	}
}

type AddLiquidityArgs struct {
	SolAmount      uint64 `json:"solAmount"`
	MaxTokenAmount uint64 `json:"maxTokenAmount"`
	MinLpOut       uint64 `json:"minLpOut"`
}

func BuildAddLiquidity(program solana.PublicKey, accounts LiquidityAccounts, args AddLiquidityArgs) (*solana.GenericInstruction, error) {
	return build(program, InstructionAddLiquidity, accounts.ToAccountMetas(), args.SolAmount, args.MaxTokenAmount, args.MinLpOut)
}

type RemoveLiquidityArgs struct {
	LpAmount    uint64 `json:"lpAmount"`
	MinSolOut   uint64 `json:"minSolOut"`
	MinTokenOut uint64 `json:"minTokenOut"`
}

func BuildRemoveLiquidity(program solana.PublicKey, accounts LiquidityAccounts, args RemoveLiquidityArgs) (*solana.GenericInstruction, error) {
	return build(program, InstructionRemoveLiquidity, accounts.ToAccountMetas(), args.LpAmount, args.MinSolOut, args.MinTokenOut)
}

// ----- stake / unstake -----

// StakeAccounts is shared by stake and unstake.
type StakeAccounts struct {
	TokenLaunch            solana.PublicKey `json:"tokenLaunch"`
	Mint                   solana.PublicKey `json:"mint"`
	UserPosition           solana.PublicKey `json:"userPosition"`
	UserTokenAccount       solana.PublicKey `json:"userTokenAccount"`
	StakeVault             solana.PublicKey `json:"stakeVault"`
	User                   solana.PublicKey `json:"user"`
	TokenProgram           solana.PublicKey `json:"tokenProgram"`
	AssociatedTokenProgram solana.PublicKey `json:"associatedTokenProgram"`
	SystemProgram          solana.PublicKey `json:"systemProgram"`
}

func (a StakeAccounts) ToAccountMetas() []*solana.AccountMeta {
	return []*solana.AccountMeta{
		ro(a.TokenLaunch),
		ro(a.Mint),
		rw(a.UserPosition),
		rw(a.UserTokenAccount),
		rw(a.StakeVault),
		signerRW(a.User),
		ro(a.TokenProgram),
		ro(a.AssociatedTokenProgram),
		ro(a.SystemProgram),
	}
}

type StakeArgs struct {
	Amount uint64 `json:"amount"`
}

func BuildStake(program solana.PublicKey, accounts StakeAccounts, args StakeArgs) (*solana.GenericInstruction, error) {
	return build(program, InstructionStake, accounts.ToAccountMetas(), args.Amount)
}

func BuildUnstake(program solana.PublicKey, accounts StakeAccounts, args StakeArgs) (*solana.GenericInstruction, error) {
	return build(program, InstructionUnstake, accounts.ToAccountMetas(), args.Amount)
}
