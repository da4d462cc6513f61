package constants

import "github.com/gagliardetto/solana-go"

// Well-known program IDs
var (
	// SPL Programs
	SystemProgramID          = solana.SystemProgramID
	TokenProgramID           = solana.TokenProgramID
	Token2022ProgramID       = solana.MustPublicKeyFromBase58("TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb")
	AssociatedTokenProgramID = solana.SPLAssociatedTokenAccountProgramID
	SysvarRentProgramID      = solana.SysVarRentPubkey

	// Launchpad program. Placeholder until the deployed address is known;
	// override through config or builder.New.
	LaunchpadProgramID = solana.MustPublicKeyFromBase58("7WdWfWNgceJEdMbu5xbbYbZboJYByzsC6SNMT2pTozJA")
)

// PDA seeds
const (
	SeedPlatformConfig = "platform_config"
	SeedTokenLaunch    = "token_launch"
	SeedSolVault       = "sol_vault"
	SeedPlatformVault  = "platform_vault"
	SeedUserPosition   = "user_position"
	SeedAmmPool        = "amm_pool"
	SeedPoolSolVault   = "pool_sol_vault"
	SeedLeaderboard    = "leaderboard"
)

// Protocol limits mirrored from the program.
const (
	MaxNameLen   = 32
	MaxSymbolLen = 10
	MaxURILen    = 200

	// BpsDenominator is 100% in basis points.
	BpsDenominator = 10_000

	// PriceScale is the fixed-point scale used for spot prices.
	PriceScale = 1_000_000_000

	LamportsPerSol = 1_000_000_000

	MaxLeaderboardEntries = 100

	// DefaultSwapFeeBps is the pool fee used for quotes when none is given.
	// Pool accounts do not store their fee.
	DefaultSwapFeeBps = 30
)
