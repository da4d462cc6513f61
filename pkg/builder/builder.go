// Package builder turns high-level launchpad operations into ready-to-sign
// instructions.
//
// Every PDA and associated token account an operation needs is derived from
// the few keys the caller knows (wallet, mint, creator, LP mint). Building
// never touches the network and never signs.
//
// Example:
//
//	b := builder.New(constants.LaunchpadProgramID)
//	ix, err := b.Buy(builder.BuyParams{
//	    Buyer:     wallet,
//	    Mint:      mint,
//	    Creator:   creator,
//	    SolAmount: 10_000_000, // 0.01 SOL
//	})
package builder

import (
	"github.com/gagliardetto/solana-go"

	"github.com/ninja0404/launchpad-go-sdk/pkg/constants"
	"github.com/ninja0404/launchpad-go-sdk/pkg/pda"
)

// Builder builds launchpad instructions for one program deployment. It is
// immutable and safe for concurrent use.
type Builder struct {
	programID solana.PublicKey
	pda       *pda.Deriver
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithTokenProgram sets the token program mints are owned by, e.g.
// constants.Token2022ProgramID.
func WithTokenProgram(tokenProgram solana.PublicKey) BuilderOption {
	return func(b *Builder) { b.pda = b.pda.WithTokenProgram(tokenProgram) }
}

// New returns a Builder for programID.
func New(programID solana.PublicKey, opts ...BuilderOption) *Builder {
	b := &Builder{
		programID: programID,
		pda:       pda.NewDeriver(programID),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// ProgramID returns the program instructions are addressed to.
func (b *Builder) ProgramID() solana.PublicKey { return b.programID }

// Deriver returns the address deriver the builder uses.
func (b *Builder) Deriver() *pda.Deriver { return b.pda }

func (b *Builder) tokenProgram() solana.PublicKey { return b.pda.TokenProgram() }

// resolver collects derived addresses and keeps the first derivation error.
type resolver struct {
	err error
}

func (r *resolver) key(pk solana.PublicKey, _ uint8, err error) solana.PublicKey {
	if r.err == nil && err != nil {
		r.err = err
	}
	return pk
}

var (
	systemProgram = constants.SystemProgramID
	ataProgram    = constants.AssociatedTokenProgramID
	rentSysvar    = constants.SysvarRentProgramID
)
