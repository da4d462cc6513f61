// Package pda derives the launchpad program's addresses.
//
// All derivations are pure: the same seeds and program ID always yield the
// same address and bump.
package pda

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/ninja0404/launchpad-go-sdk/pkg/constants"
	"github.com/ninja0404/launchpad-go-sdk/pkg/types"
)

const (
	// MaxSeedLen is the longest seed the runtime accepts.
	MaxSeedLen = 32
	// MaxSeeds is the number of caller seeds allowed; the bump takes the last slot.
	MaxSeeds = 15
)

// Derive returns the first off-curve address for seeds, trying bumps from
// 255 down to 0.
func Derive(seeds [][]byte, programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	if len(seeds) > MaxSeeds {
		return solana.PublicKey{}, 0, types.NewValidationError("seeds", fmt.Sprintf("%d seeds exceeds %d", len(seeds), MaxSeeds))
	}
	for i, s := range seeds {
		if len(s) > MaxSeedLen {
			return solana.PublicKey{}, 0, types.NewValidationError(fmt.Sprintf("seeds[%d]", i), fmt.Sprintf("length %d exceeds %d", len(s), MaxSeedLen))
		}
	}

	buf := make([][]byte, len(seeds)+1)
	copy(buf, seeds)
	for bump := 255; bump >= 0; bump-- {
		buf[len(seeds)] = []byte{uint8(bump)}
		// Seeds are already validated, so the only failure left is an
		// on-curve result.
		if addr, err := solana.CreateProgramAddress(buf, programID); err == nil {
			return addr, uint8(bump), nil
		}
	}
	return solana.PublicKey{}, 0, fmt.Errorf("%w: program %s", types.ErrDerivationExhausted, programID)
}

// Deriver derives launchpad PDAs for a fixed program ID.
type Deriver struct {
	programID    solana.PublicKey
	tokenProgram solana.PublicKey
	ataProgram   solana.PublicKey
}

// NewDeriver returns a Deriver for programID using the classic SPL token program.
func NewDeriver(programID solana.PublicKey) *Deriver {
	return &Deriver{
		programID:    programID,
		tokenProgram: constants.TokenProgramID,
		ataProgram:   constants.AssociatedTokenProgramID,
	}
}

// WithTokenProgram returns a copy that derives token accounts under tokenProgram.
func (d *Deriver) WithTokenProgram(tokenProgram solana.PublicKey) *Deriver {
	cp := *d
	cp.tokenProgram = tokenProgram
	return &cp
}

// ProgramID returns the program the deriver is bound to.
func (d *Deriver) ProgramID() solana.PublicKey { return d.programID }

// TokenProgram returns the token program used for associated token accounts.
func (d *Deriver) TokenProgram() solana.PublicKey { return d.tokenProgram }

func (d *Deriver) derive(seeds ...[]byte) (solana.PublicKey, uint8, error) {
	return Derive(seeds, d.programID)
}

// PlatformConfig derives ["platform_config"].
func (d *Deriver) PlatformConfig() (solana.PublicKey, uint8, error) {
	return d.derive([]byte(constants.SeedPlatformConfig))
}

// PlatformVault derives ["platform_vault"].
func (d *Deriver) PlatformVault() (solana.PublicKey, uint8, error) {
	return d.derive([]byte(constants.SeedPlatformVault))
}

// Leaderboard derives ["leaderboard"].
func (d *Deriver) Leaderboard() (solana.PublicKey, uint8, error) {
	return d.derive([]byte(constants.SeedLeaderboard))
}

// TokenLaunch derives ["token_launch", mint].
func (d *Deriver) TokenLaunch(mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	return d.derive([]byte(constants.SeedTokenLaunch), mint[:])
}

// SolVault derives ["sol_vault", mint].
func (d *Deriver) SolVault(mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	return d.derive([]byte(constants.SeedSolVault), mint[:])
}

// UserPosition derives ["user_position", wallet, mint].
func (d *Deriver) UserPosition(wallet, mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	return d.derive([]byte(constants.SeedUserPosition), wallet[:], mint[:])
}

// AmmPool derives ["amm_pool", mint].
func (d *Deriver) AmmPool(mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	return d.derive([]byte(constants.SeedAmmPool), mint[:])
}

// PoolSolVault derives ["pool_sol_vault", mint].
func (d *Deriver) PoolSolVault(mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	return d.derive([]byte(constants.SeedPoolSolVault), mint[:])
}

// AssociatedTokenAccount derives the ATA of owner for mint under the
// deriver's token program.
func (d *Deriver) AssociatedTokenAccount(owner, mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	return FindATA(owner, mint, d.tokenProgram, d.ataProgram)
}

// FindATA derives [owner, tokenProgram, mint] under ataProgram.
func FindATA(owner, mint, tokenProgram, ataProgram solana.PublicKey) (solana.PublicKey, uint8, error) {
	return Derive([][]byte{owner[:], tokenProgram[:], mint[:]}, ataProgram)
}
