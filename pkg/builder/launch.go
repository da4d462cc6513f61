package builder

import (
	"github.com/gagliardetto/solana-go"

	"github.com/ninja0404/launchpad-go-sdk/pkg/constants"
	"github.com/ninja0404/launchpad-go-sdk/pkg/program/launchpad"
	"github.com/ninja0404/launchpad-go-sdk/pkg/types"
)

// CreateTokenParams launches a new token. Mint is a fresh keypair's public
// key; it signs the transaction alongside Creator.
type CreateTokenParams struct {
	Creator       solana.PublicKey
	Mint          solana.PublicKey
	Name          string
	Symbol        string
	URI           string
	CurveType     launchpad.CurveType
	CreatorFeeBps uint16
}

func (p CreateTokenParams) validate() error {
	if err := types.RequireKeys(
		types.NamedKey{Name: "creator", Key: p.Creator},
		types.NamedKey{Name: "mint", Key: p.Mint},
	); err != nil {
		return err
	}
	if p.Name == "" {
		return types.NewValidationError("name", "cannot be empty")
	}
	if p.Symbol == "" {
		return types.NewValidationError("symbol", "cannot be empty")
	}
	if err := types.ValidateMaxLen("name", p.Name, constants.MaxNameLen); err != nil {
		return err
	}
	if err := types.ValidateMaxLen("symbol", p.Symbol, constants.MaxSymbolLen); err != nil {
		return err
	}
	if err := types.ValidateMaxLen("uri", p.URI, constants.MaxURILen); err != nil {
		return err
	}
	if !p.CurveType.Valid() {
		return types.NewValidationError("curveType", p.CurveType.String())
	}
	return types.ValidateBps("creatorFeeBps", uint64(p.CreatorFeeBps))
}

// CreateToken builds create_token.
func (b *Builder) CreateToken(p CreateTokenParams, opts ...Option) (*solana.GenericInstruction, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	o := collect(opts)

	var r resolver
	launch := r.key(b.pda.TokenLaunch(p.Mint))
	accts := launchpad.CreateTokenAccounts{
		TokenLaunch:            launch,
		Mint:                   p.Mint,
		SolVault:               r.key(b.pda.SolVault(p.Mint)),
		LaunchTokenVault:       r.key(b.pda.AssociatedTokenAccount(launch, p.Mint)),
		Creator:                p.Creator,
		PlatformConfig:         r.key(b.pda.PlatformConfig()),
		TokenProgram:           b.tokenProgram(),
		AssociatedTokenProgram: ataProgram,
		SystemProgram:          systemProgram,
		Rent:                   rentSysvar,
	}
	if r.err != nil {
		return nil, r.err
	}
	applyOverrides(&accts, o.Overrides)

	args := launchpad.CreateTokenArgs{
		Name:          p.Name,
		Symbol:        p.Symbol,
		URI:           p.URI,
		CurveType:     p.CurveType,
		CreatorFeeBps: p.CreatorFeeBps,
	}
	ix, err := launchpad.BuildCreateToken(b.programID, accts, args)
	if err != nil {
		return nil, err
	}
	o.preview(accts, args)
	return ix, nil
}

// BuyParams buys on the bonding curve with SolAmount lamports.
// Creator is the launch creator, who receives the creator fee.
type BuyParams struct {
	Buyer     solana.PublicKey
	Mint      solana.PublicKey
	Creator   solana.PublicKey
	SolAmount uint64
}

// Buy builds buy.
func (b *Builder) Buy(p BuyParams, opts ...Option) (*solana.GenericInstruction, error) {
	if err := types.ValidateAmount("solAmount", p.SolAmount); err != nil {
		return nil, err
	}
	accts, o, err := b.tradeAccounts(p.Buyer, p.Mint, p.Creator, opts)
	if err != nil {
		return nil, err
	}
	args := launchpad.BuyArgs{SolAmount: p.SolAmount}
	ix, err := launchpad.BuildBuy(b.programID, accts, args)
	if err != nil {
		return nil, err
	}
	o.preview(accts, args)
	return ix, nil
}

// SellParams sells TokenAmount base units back to the bonding curve.
type SellParams struct {
	Seller      solana.PublicKey
	Mint        solana.PublicKey
	Creator     solana.PublicKey
	TokenAmount uint64
}

// Sell builds sell.
func (b *Builder) Sell(p SellParams, opts ...Option) (*solana.GenericInstruction, error) {
	if err := types.ValidateAmount("tokenAmount", p.TokenAmount); err != nil {
		return nil, err
	}
	accts, o, err := b.tradeAccounts(p.Seller, p.Mint, p.Creator, opts)
	if err != nil {
		return nil, err
	}
	args := launchpad.SellArgs{TokenAmount: p.TokenAmount}
	ix, err := launchpad.BuildSell(b.programID, accts, args)
	if err != nil {
		return nil, err
	}
	o.preview(accts, args)
	return ix, nil
}

func (b *Builder) tradeAccounts(user, mint, creator solana.PublicKey, opts []Option) (launchpad.TradeAccounts, *Options, error) {
	if err := types.RequireKeys(
		types.NamedKey{Name: "user", Key: user},
		types.NamedKey{Name: "mint", Key: mint},
		types.NamedKey{Name: "creator", Key: creator},
	); err != nil {
		return launchpad.TradeAccounts{}, nil, err
	}
	o := collect(opts)

	var r resolver
	launch := r.key(b.pda.TokenLaunch(mint))
	accts := launchpad.TradeAccounts{
		TokenLaunch:            launch,
		Mint:                   mint,
		LaunchTokenVault:       r.key(b.pda.AssociatedTokenAccount(launch, mint)),
		SolVault:               r.key(b.pda.SolVault(mint)),
		UserTokenAccount:       r.key(b.pda.AssociatedTokenAccount(user, mint)),
		UserPosition:           r.key(b.pda.UserPosition(user, mint)),
		PlatformVault:          r.key(b.pda.PlatformVault()),
		Creator:                creator,
		PlatformConfig:         r.key(b.pda.PlatformConfig()),
		User:                   user,
		TokenProgram:           b.tokenProgram(),
		AssociatedTokenProgram: ataProgram,
		SystemProgram:          systemProgram,
	}
	if r.err != nil {
		return launchpad.TradeAccounts{}, nil, r.err
	}
	applyOverrides(&accts, o.Overrides)
	return accts, o, nil
}

// ClaimCreatorFeesParams withdraws accumulated creator fees.
type ClaimCreatorFeesParams struct {
	Creator solana.PublicKey
	Mint    solana.PublicKey
}

// ClaimCreatorFees builds claim_creator_fees.
func (b *Builder) ClaimCreatorFees(p ClaimCreatorFeesParams, opts ...Option) (*solana.GenericInstruction, error) {
	if err := types.RequireKeys(
		types.NamedKey{Name: "creator", Key: p.Creator},
		types.NamedKey{Name: "mint", Key: p.Mint},
	); err != nil {
		return nil, err
	}
	o := collect(opts)

	var r resolver
	accts := launchpad.ClaimCreatorFeesAccounts{
		TokenLaunch:   r.key(b.pda.TokenLaunch(p.Mint)),
		SolVault:      r.key(b.pda.SolVault(p.Mint)),
		Creator:       p.Creator,
		SystemProgram: systemProgram,
	}
	if r.err != nil {
		return nil, r.err
	}
	applyOverrides(&accts, o.Overrides)

	ix, err := launchpad.BuildClaimCreatorFees(b.programID, accts)
	if err != nil {
		return nil, err
	}
	o.preview(accts, nil)
	return ix, nil
}

// StakeParams moves Amount tokens between the user's token account and
// their stake vault.
type StakeParams struct {
	User   solana.PublicKey
	Mint   solana.PublicKey
	Amount uint64
}

// Stake builds stake.
func (b *Builder) Stake(p StakeParams, opts ...Option) (*solana.GenericInstruction, error) {
	accts, o, err := b.stakeAccounts(p, opts)
	if err != nil {
		return nil, err
	}
	args := launchpad.StakeArgs{Amount: p.Amount}
	ix, err := launchpad.BuildStake(b.programID, accts, args)
	if err != nil {
		return nil, err
	}
	o.preview(accts, args)
	return ix, nil
}

// Unstake builds unstake.
func (b *Builder) Unstake(p StakeParams, opts ...Option) (*solana.GenericInstruction, error) {
	accts, o, err := b.stakeAccounts(p, opts)
	if err != nil {
		return nil, err
	}
	args := launchpad.StakeArgs{Amount: p.Amount}
	ix, err := launchpad.BuildUnstake(b.programID, accts, args)
	if err != nil {
		return nil, err
	}
	o.preview(accts, args)
	return ix, nil
}

func (b *Builder) stakeAccounts(p StakeParams, opts []Option) (launchpad.StakeAccounts, *Options, error) {
	if err := types.RequireKeys(
		types.NamedKey{Name: "user", Key: p.User},
		types.NamedKey{Name: "mint", Key: p.Mint},
	); err != nil {
		return launchpad.StakeAccounts{}, nil, err
	}
	if err := types.ValidateAmount("amount", p.Amount); err != nil {
		return launchpad.StakeAccounts{}, nil, err
	}
	o := collect(opts)

	var r resolver
	position := r.key(b.pda.UserPosition(p.User, p.Mint))
	accts := launchpad.StakeAccounts{
		TokenLaunch:            r.key(b.pda.TokenLaunch(p.Mint)),
		Mint:                   p.Mint,
		UserPosition:           position,
		UserTokenAccount:       r.key(b.pda.AssociatedTokenAccount(p.User, p.Mint)),
		StakeVault:             r.key(b.pda.AssociatedTokenAccount(position, p.Mint)),
		User:                   p.User,
		TokenProgram:           b.tokenProgram(),
		AssociatedTokenProgram: ataProgram,
		SystemProgram:          systemProgram,
	}
	if r.err != nil {
		return launchpad.StakeAccounts{}, nil, r.err
	}
	applyOverrides(&accts, o.Overrides)
	return accts, o, nil
}
