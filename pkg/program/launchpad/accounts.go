package launchpad

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/ninja0404/launchpad-go-sdk/pkg/codec"
	"github.com/ninja0404/launchpad-go-sdk/pkg/constants"
	"github.com/ninja0404/launchpad-go-sdk/pkg/curve"
	"github.com/ninja0404/launchpad-go-sdk/pkg/types"
)

// Account discriminators.
var (
	PlatformConfigDiscriminator = codec.AccountDiscriminator("PlatformConfig")
	TokenLaunchDiscriminator    = codec.AccountDiscriminator("TokenLaunch")
	UserPositionDiscriminator   = codec.AccountDiscriminator("UserPosition")
	AmmPoolDiscriminator        = codec.AccountDiscriminator("AmmPool")
	LeaderboardDiscriminator    = codec.AccountDiscriminator("Leaderboard")
)

// CurveType selects the pricing curve a launch was created with.
type CurveType uint8

const (
	CurveLinear CurveType = iota
	CurveExponential
	CurveLogarithmic
)

func (c CurveType) String() string {
	switch c {
	case CurveLinear:
		return "linear"
	case CurveExponential:
		return "exponential"
	case CurveLogarithmic:
		return "logarithmic"
	default:
		return fmt.Sprintf("CurveType(%d)", uint8(c))
	}
}

// Valid reports whether c is a known curve type.
func (c CurveType) Valid() bool {
	return c <= CurveLogarithmic
}

// ParseCurveType parses the lowercase name of a curve type.
func ParseCurveType(s string) (CurveType, error) {
	for c := CurveLinear; c <= CurveLogarithmic; c++ {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, types.NewValidationError("curveType", fmt.Sprintf("unknown curve type %q", s))
}

// PlatformConfig is the platform singleton.
type PlatformConfig struct {
	Authority          solana.PublicKey `json:"authority"`
	PlatformFeeBps     uint16           `json:"platformFeeBps"`
	MigrationThreshold uint64           `json:"migrationThreshold"`
	Paused             bool             `json:"paused"`
}

func (*PlatformConfig) AccountName() string { return "PlatformConfig" }
func (*PlatformConfig) MinSize() int        { return 51 }

func (a *PlatformConfig) EncodeFields(w *codec.Writer) {
	w.Pubkey(a.Authority)
	w.U16(a.PlatformFeeBps)
	w.U64(a.MigrationThreshold)
	w.Bool(a.Paused)
}

func (a *PlatformConfig) DecodeFields(r *codec.Reader) {
	a.Authority = r.Pubkey()
	a.PlatformFeeBps = r.U16()
	a.MigrationThreshold = r.U64()
	a.Paused = r.Bool()
}

// TokenLaunch is the per-mint bonding-curve state.
type TokenLaunch struct {
	Mint                   solana.PublicKey `json:"mint"`
	Creator                solana.PublicKey `json:"creator"`
	Name                   string           `json:"name"`
	Symbol                 string           `json:"symbol"`
	URI                    string           `json:"uri"`
	CurveType              CurveType        `json:"curveType"`
	CreatorFeeBps          uint16           `json:"creatorFeeBps"`
	VirtualSolReserves     uint64           `json:"virtualSolReserves"`
	VirtualTokenReserves   uint64           `json:"virtualTokenReserves"`
	RealSolReserves        uint64           `json:"realSolReserves"`
	RealTokenReserves      uint64           `json:"realTokenReserves"`
	AccumulatedCreatorFees uint64           `json:"accumulatedCreatorFees"`
	Migrated               bool             `json:"migrated"`
	Paused                 bool             `json:"paused"`
	CreatedAt              int64            `json:"createdAt"`
}

func (*TokenLaunch) AccountName() string { return "TokenLaunch" }

// MinSize assumes empty strings.
func (*TokenLaunch) MinSize() int { return 137 }

func (a *TokenLaunch) EncodeFields(w *codec.Writer) {
	w.Pubkey(a.Mint)
	w.Pubkey(a.Creator)
	w.String(a.Name)
	w.String(a.Symbol)
	w.String(a.URI)
	w.U8(uint8(a.CurveType))
	w.U16(a.CreatorFeeBps)
	w.U64(a.VirtualSolReserves)
	w.U64(a.VirtualTokenReserves)
	w.U64(a.RealSolReserves)
	w.U64(a.RealTokenReserves)
	w.U64(a.AccumulatedCreatorFees)
	w.Bool(a.Migrated)
	w.Bool(a.Paused)
	w.I64(a.CreatedAt)
}

func (a *TokenLaunch) DecodeFields(r *codec.Reader) {
	a.Mint = r.Pubkey()
	a.Creator = r.Pubkey()
	a.Name = r.String()
	a.Symbol = r.String()
	a.URI = r.String()
	a.CurveType = CurveType(r.U8())
	if r.Err() == nil && !a.CurveType.Valid() {
		r.Fail(fmt.Errorf("%w: unknown curve type %d", types.ErrSchemaMismatch, uint8(a.CurveType)))
	}
	a.CreatorFeeBps = r.U16()
	a.VirtualSolReserves = r.U64()
	a.VirtualTokenReserves = r.U64()
	a.RealSolReserves = r.U64()
	a.RealTokenReserves = r.U64()
	a.AccumulatedCreatorFees = r.U64()
	a.Migrated = r.Bool()
	a.Paused = r.Bool()
	a.CreatedAt = r.I64()
}

// Curve returns the reserves as pricing input.
func (a *TokenLaunch) Curve() curve.Curve {
	return curve.Curve{
		VirtualSolReserves:   a.VirtualSolReserves,
		VirtualTokenReserves: a.VirtualTokenReserves,
		RealSolReserves:      a.RealSolReserves,
		RealTokenReserves:    a.RealTokenReserves,
	}
}

// UserPosition tracks one wallet's activity on one mint.
type UserPosition struct {
	Wallet           solana.PublicKey `json:"wallet"`
	Mint             solana.PublicKey `json:"mint"`
	TokenBalance     uint64           `json:"tokenBalance"`
	TotalSolSpent    uint64           `json:"totalSolSpent"`
	TotalSolReceived uint64           `json:"totalSolReceived"`
}

func (*UserPosition) AccountName() string { return "UserPosition" }
func (*UserPosition) MinSize() int        { return 96 }

func (a *UserPosition) EncodeFields(w *codec.Writer) {
	w.Pubkey(a.Wallet)
	w.Pubkey(a.Mint)
	w.U64(a.TokenBalance)
	w.U64(a.TotalSolSpent)
	w.U64(a.TotalSolReceived)
}

func (a *UserPosition) DecodeFields(r *codec.Reader) {
	a.Wallet = r.Pubkey()
	a.Mint = r.Pubkey()
	a.TokenBalance = r.U64()
	a.TotalSolSpent = r.U64()
	a.TotalSolReceived = r.U64()
}

// AmmPool is the post-migration constant-product pool.
type AmmPool struct {
	Mint           solana.PublicKey `json:"mint"`
	TokenReserve   uint64           `json:"tokenReserve"`
	SolReserve     uint64           `json:"solReserve"`
	LpMint         solana.PublicKey `json:"lpMint"`
	LpSupply       uint64           `json:"lpSupply"`
	TotalFeesSol   uint64           `json:"totalFeesSol"`
	TotalFeesToken uint64           `json:"totalFeesToken"`
	CreatedAt      int64            `json:"createdAt"`
	Bump           uint8            `json:"bump"`
	SolVaultBump   uint8            `json:"solVaultBump"`
}

func (*AmmPool) AccountName() string { return "AmmPool" }
func (*AmmPool) MinSize() int        { return 122 }

func (a *AmmPool) EncodeFields(w *codec.Writer) {
	w.Pubkey(a.Mint)
	w.U64(a.TokenReserve)
	w.U64(a.SolReserve)
	w.Pubkey(a.LpMint)
	w.U64(a.LpSupply)
	w.U64(a.TotalFeesSol)
	w.U64(a.TotalFeesToken)
	w.I64(a.CreatedAt)
	w.U8(a.Bump)
	w.U8(a.SolVaultBump)
}

func (a *AmmPool) DecodeFields(r *codec.Reader) {
	a.Mint = r.Pubkey()
	a.TokenReserve = r.U64()
	a.SolReserve = r.U64()
	a.LpMint = r.Pubkey()
	a.LpSupply = r.U64()
	a.TotalFeesSol = r.U64()
	a.TotalFeesToken = r.U64()
	a.CreatedAt = r.I64()
	a.Bump = r.U8()
	a.SolVaultBump = r.U8()
}

// Reserves returns the pool as pricing input.
func (a *AmmPool) Reserves() curve.Pool {
	return curve.Pool{
		SolReserve:   a.SolReserve,
		TokenReserve: a.TokenReserve,
		LpSupply:     a.LpSupply,
	}
}

// LeaderboardEntry is one ranked mint.
type LeaderboardEntry struct {
	Mint   solana.PublicKey `json:"mint"`
	Volume uint64           `json:"volume"`
}

// Leaderboard is the singleton volume ranking.
type Leaderboard struct {
	Entries []LeaderboardEntry `json:"entries"`
}

func (*Leaderboard) AccountName() string { return "Leaderboard" }

// MinSize covers the discriminator and the vector length.
func (*Leaderboard) MinSize() int { return 12 }

func (a *Leaderboard) EncodeFields(w *codec.Writer) {
	w.U32(uint32(len(a.Entries)))
	for _, e := range a.Entries {
		w.Pubkey(e.Mint)
		w.U64(e.Volume)
	}
}

func (a *Leaderboard) DecodeFields(r *codec.Reader) {
	n := r.U32()
	if r.Err() != nil {
		return
	}
	if n > constants.MaxLeaderboardEntries {
		r.Fail(fmt.Errorf("%w: %d leaderboard entries exceeds %d", types.ErrSchemaMismatch, n, constants.MaxLeaderboardEntries))
		return
	}
	a.Entries = make([]LeaderboardEntry, 0, n)
	for i := uint32(0); i < n && r.Err() == nil; i++ {
		a.Entries = append(a.Entries, LeaderboardEntry{Mint: r.Pubkey(), Volume: r.U64()})
	}
}

// Unmarshal decodes a PlatformConfig account.
func (a *PlatformConfig) Unmarshal(data []byte) error { return codec.DecodeAccount(data, a) }

// Unmarshal decodes a TokenLaunch account.
func (a *TokenLaunch) Unmarshal(data []byte) error { return codec.DecodeAccount(data, a) }

// Unmarshal decodes a UserPosition account.
func (a *UserPosition) Unmarshal(data []byte) error { return codec.DecodeAccount(data, a) }

// Unmarshal decodes an AmmPool account.
func (a *AmmPool) Unmarshal(data []byte) error { return codec.DecodeAccount(data, a) }

// Unmarshal decodes a Leaderboard account.
func (a *Leaderboard) Unmarshal(data []byte) error { return codec.DecodeAccount(data, a) }

// DecodeAny identifies data by its discriminator and decodes it.
func DecodeAny(data []byte) (codec.Account, error) {
	if len(data) < codec.DiscriminatorLen {
		return nil, fmt.Errorf("%w: %d bytes", types.ErrTruncatedData, len(data))
	}
	var acc codec.Account
	switch {
	case codec.HasDiscriminator(data, PlatformConfigDiscriminator):
		acc = &PlatformConfig{}
	case codec.HasDiscriminator(data, TokenLaunchDiscriminator):
		acc = &TokenLaunch{}
	case codec.HasDiscriminator(data, UserPositionDiscriminator):
		acc = &UserPosition{}
	case codec.HasDiscriminator(data, AmmPoolDiscriminator):
		acc = &AmmPool{}
	case codec.HasDiscriminator(data, LeaderboardDiscriminator):
		acc = &Leaderboard{}
	default:
		return nil, fmt.Errorf("%w: unknown discriminator %x", types.ErrSchemaMismatch, data[:codec.DiscriminatorLen])
	}
	if err := codec.DecodeAccount(data, acc); err != nil {
		return nil, err
	}
	return acc, nil
}
