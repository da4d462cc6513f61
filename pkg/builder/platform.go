package builder

import (
	"github.com/gagliardetto/solana-go"

	"github.com/ninja0404/launchpad-go-sdk/pkg/codec"
	"github.com/ninja0404/launchpad-go-sdk/pkg/program/launchpad"
	"github.com/ninja0404/launchpad-go-sdk/pkg/types"
)

// InitializeParams creates the platform singleton.
type InitializeParams struct {
	Authority          solana.PublicKey
	PlatformFeeBps     uint16
	MigrationThreshold uint64
}

// Initialize builds initialize.
func (b *Builder) Initialize(p InitializeParams, opts ...Option) (*solana.GenericInstruction, error) {
	if err := types.RequireKey("authority", p.Authority); err != nil {
		return nil, err
	}
	if err := types.ValidateBps("platformFeeBps", uint64(p.PlatformFeeBps)); err != nil {
		return nil, err
	}
	if err := types.ValidateAmount("migrationThreshold", p.MigrationThreshold); err != nil {
		return nil, err
	}
	o := collect(opts)

	var r resolver
	accts := launchpad.InitializeAccounts{
		PlatformConfig: r.key(b.pda.PlatformConfig()),
		PlatformVault:  r.key(b.pda.PlatformVault()),
		Authority:      p.Authority,
		SystemProgram:  systemProgram,
	}
	if r.err != nil {
		return nil, r.err
	}
	applyOverrides(&accts, o.Overrides)

	args := launchpad.InitializeArgs{
		PlatformFeeBps:     p.PlatformFeeBps,
		MigrationThreshold: p.MigrationThreshold,
	}
	ix, err := launchpad.BuildInitialize(b.programID, accts, args)
	if err != nil {
		return nil, err
	}
	o.preview(accts, args)
	return ix, nil
}

// UpdatePlatformConfigParams changes platform settings. Fields left as
// codec.None are not modified.
type UpdatePlatformConfigParams struct {
	Authority          solana.PublicKey
	PlatformFeeBps     codec.Option[uint16]
	MigrationThreshold codec.Option[uint64]
	NewAuthority       codec.Option[solana.PublicKey]
}

// UpdatePlatformConfig builds update_platform_config.
func (b *Builder) UpdatePlatformConfig(p UpdatePlatformConfigParams, opts ...Option) (*solana.GenericInstruction, error) {
	if fee, ok := p.PlatformFeeBps.Get(); ok {
		if err := types.ValidateBps("platformFeeBps", uint64(fee)); err != nil {
			return nil, err
		}
	}
	if auth, ok := p.NewAuthority.Get(); ok {
		if err := types.RequireKey("newAuthority", auth); err != nil {
			return nil, err
		}
	}
	accts, o, err := b.adminAccounts(p.Authority, opts)
	if err != nil {
		return nil, err
	}
	args := launchpad.UpdatePlatformConfigArgs{
		PlatformFeeBps:     p.PlatformFeeBps,
		MigrationThreshold: p.MigrationThreshold,
		NewAuthority:       p.NewAuthority,
	}
	ix, err := launchpad.BuildUpdatePlatformConfig(b.programID, accts, args)
	if err != nil {
		return nil, err
	}
	o.preview(accts, args)
	return ix, nil
}

// Pause builds pause, halting all trading on the platform.
func (b *Builder) Pause(authority solana.PublicKey, opts ...Option) (*solana.GenericInstruction, error) {
	accts, o, err := b.adminAccounts(authority, opts)
	if err != nil {
		return nil, err
	}
	ix, err := launchpad.BuildPause(b.programID, accts)
	if err != nil {
		return nil, err
	}
	o.preview(accts, nil)
	return ix, nil
}

// Unpause builds unpause.
func (b *Builder) Unpause(authority solana.PublicKey, opts ...Option) (*solana.GenericInstruction, error) {
	accts, o, err := b.adminAccounts(authority, opts)
	if err != nil {
		return nil, err
	}
	ix, err := launchpad.BuildUnpause(b.programID, accts)
	if err != nil {
		return nil, err
	}
	o.preview(accts, nil)
	return ix, nil
}

func (b *Builder) adminAccounts(authority solana.PublicKey, opts []Option) (launchpad.AdminAccounts, *Options, error) {
	if err := types.RequireKey("authority", authority); err != nil {
		return launchpad.AdminAccounts{}, nil, err
	}
	o := collect(opts)
	var r resolver
	accts := launchpad.AdminAccounts{
		PlatformConfig: r.key(b.pda.PlatformConfig()),
		Authority:      authority,
	}
	if r.err != nil {
		return launchpad.AdminAccounts{}, nil, r.err
	}
	applyOverrides(&accts, o.Overrides)
	return accts, o, nil
}

// SetLaunchPausedParams pauses or resumes trading on one launch.
type SetLaunchPausedParams struct {
	Authority solana.PublicKey
	Mint      solana.PublicKey
	Paused    bool
}

// SetLaunchPaused builds set_launch_paused.
func (b *Builder) SetLaunchPaused(p SetLaunchPausedParams, opts ...Option) (*solana.GenericInstruction, error) {
	if err := types.RequireKeys(
		types.NamedKey{Name: "authority", Key: p.Authority},
		types.NamedKey{Name: "mint", Key: p.Mint},
	); err != nil {
		return nil, err
	}
	o := collect(opts)

	var r resolver
	accts := launchpad.SetLaunchPausedAccounts{
		PlatformConfig: r.key(b.pda.PlatformConfig()),
		TokenLaunch:    r.key(b.pda.TokenLaunch(p.Mint)),
		Authority:      p.Authority,
	}
	if r.err != nil {
		return nil, r.err
	}
	applyOverrides(&accts, o.Overrides)

	args := launchpad.SetLaunchPausedArgs{Paused: p.Paused}
	ix, err := launchpad.BuildSetLaunchPaused(b.programID, accts, args)
	if err != nil {
		return nil, err
	}
	o.preview(accts, args)
	return ix, nil
}
