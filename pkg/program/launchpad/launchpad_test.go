package launchpad_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninja0404/launchpad-go-sdk/pkg/codec"
	"github.com/ninja0404/launchpad-go-sdk/pkg/curve"
	"github.com/ninja0404/launchpad-go-sdk/pkg/program/launchpad"
	"github.com/ninja0404/launchpad-go-sdk/pkg/types"
)

var program = solana.MustPublicKeyFromBase58("7WdWfWNgceJEdMbu5xbbYbZboJYByzsC6SNMT2pTozJA")

func key(b byte) solana.PublicKey {
	var pk solana.PublicKey
	for i := range pk {
		pk[i] = b
	}
	return pk
}

func TestInstructionVectors(t *testing.T) {
	type built struct {
		ix  *solana.GenericInstruction
		err error
	}
	wrap := func(ix *solana.GenericInstruction, err error) built { return built{ix, err} }

	tests := []struct {
		op    string
		build built
		want  string
	}{
		{launchpad.InstructionInitialize,
			wrap(launchpad.BuildInitialize(program, launchpad.InitializeAccounts{}, launchpad.InitializeArgs{PlatformFeeBps: 250, MigrationThreshold: 85_000_000_000})),
			"afaf6d1f0d989bedfa00001265ca13000000"},
		{launchpad.InstructionUpdatePlatformConfig,
			wrap(launchpad.BuildUpdatePlatformConfig(program, launchpad.AdminAccounts{}, launchpad.UpdatePlatformConfigArgs{
				PlatformFeeBps: codec.Some[uint16](100),
				NewAuthority:   codec.Some(key(7)),
			})),
			"c33c4c81922d438f01640000" + "01" + strings.Repeat("07", 32)},
		{launchpad.InstructionPause,
			wrap(launchpad.BuildPause(program, launchpad.AdminAccounts{})),
			"d316ddfb4a79c12f"},
		{launchpad.InstructionUnpause,
			wrap(launchpad.BuildUnpause(program, launchpad.AdminAccounts{})),
			"a99004260a8dbcff"},
		{launchpad.InstructionSetLaunchPaused,
			wrap(launchpad.BuildSetLaunchPaused(program, launchpad.SetLaunchPausedAccounts{}, launchpad.SetLaunchPausedArgs{Paused: true})),
			"375669cb5a27a56701"},
		{launchpad.InstructionCreateToken,
			wrap(launchpad.BuildCreateToken(program, launchpad.CreateTokenAccounts{}, launchpad.CreateTokenArgs{
				Name: "Moon", Symbol: "MOON", URI: "https://x.io/m.json", CurveType: launchpad.CurveExponential, CreatorFeeBps: 150,
			})),
			"5434cce4188cea4b040000004d6f6f6e040000004d4f4f4e1300000068747470733a2f2f782e696f2f6d2e6a736f6e019600"},
		{launchpad.InstructionBuy,
			wrap(launchpad.BuildBuy(program, launchpad.TradeAccounts{}, launchpad.BuyArgs{SolAmount: 10_000_000})),
			"66063d1201daebea8096980000000000"},
		{launchpad.InstructionSell,
			wrap(launchpad.BuildSell(program, launchpad.TradeAccounts{}, launchpad.SellArgs{TokenAmount: 1_000_000_000})),
			"33e685a4017f83ad00ca9a3b00000000"},
		{launchpad.InstructionClaimCreatorFees,
			wrap(launchpad.BuildClaimCreatorFees(program, launchpad.ClaimCreatorFeesAccounts{})),
			"00177dea9c768659"},
		{launchpad.InstructionMigrateToPool,
			wrap(launchpad.BuildMigrateToPool(program, launchpad.MigrateToPoolAccounts{})),
			"b5084cb0202f0aa2"},
		{launchpad.InstructionCreatePool,
			wrap(launchpad.BuildCreatePool(program, launchpad.CreatePoolAccounts{}, launchpad.CreatePoolArgs{TokenAmount: 800_000_000_000_000, SolAmount: 85_000_000_000})),
			"e992d18ecf6840bc0000d28398d70200001265ca13000000"},
		{launchpad.InstructionSwap,
			wrap(launchpad.BuildSwap(program, launchpad.SwapAccounts{}, launchpad.SwapArgs{AmountIn: 5_000_000, MinimumAmountOut: 1_000, Direction: curve.TokenToSol})),
			"f8c69e91e17587c8404b4c0000000000e80300000000000001"},
		{launchpad.InstructionAddLiquidity,
			wrap(launchpad.BuildAddLiquidity(program, launchpad.LiquidityAccounts{}, launchpad.AddLiquidityArgs{SolAmount: 1_000_000_000, MaxTokenAmount: 2_000_000, MinLpOut: 3})),
			"b59d59438fb6344800ca9a3b0000000080841e00000000000300000000000000"},
		{launchpad.InstructionRemoveLiquidity,
			wrap(launchpad.BuildRemoveLiquidity(program, launchpad.LiquidityAccounts{}, launchpad.RemoveLiquidityArgs{LpAmount: 500, MinSolOut: 10, MinTokenOut: 20})),
			"5055d14818ceb16cf4010000000000000a000000000000001400000000000000"},
		{launchpad.InstructionStake,
			wrap(launchpad.BuildStake(program, launchpad.StakeAccounts{}, launchpad.StakeArgs{Amount: 42})),
			"ceb0ca12c8d1b36c2a00000000000000"},
		{launchpad.InstructionUnstake,
			wrap(launchpad.BuildUnstake(program, launchpad.StakeAccounts{}, launchpad.StakeArgs{Amount: 42})),
			"5a5f6b2acd7c32e12a00000000000000"},
	}
	require.Len(t, tests, len(launchpad.Instructions))

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			require.NoError(t, tt.build.err)
			data, err := tt.build.ix.Data()
			require.NoError(t, err)
			assert.Equal(t, tt.want, hex.EncodeToString(data))
			assert.Equal(t, program, tt.build.ix.ProgramID())
			disc := codec.InstructionDiscriminator(tt.op)
			assert.Equal(t, disc[:], data[:8])
		})
	}
}

func TestTradeAccountMetas(t *testing.T) {
	accts := launchpad.TradeAccounts{
		TokenLaunch:            key(1),
		Mint:                   key(2),
		LaunchTokenVault:       key(3),
		SolVault:               key(4),
		UserTokenAccount:       key(5),
		UserPosition:           key(6),
		PlatformVault:          key(7),
		Creator:                key(8),
		PlatformConfig:         key(9),
		User:                   key(10),
		TokenProgram:           key(11),
		AssociatedTokenProgram: key(12),
		SystemProgram:          key(13),
	}
	metas := accts.ToAccountMetas()
	require.Len(t, metas, 13)

	writable := []bool{true, false, true, true, true, true, true, true, true, true, false, false, false}
	for i, m := range metas {
		assert.Equal(t, key(byte(i+1)), m.PublicKey, "position %d", i)
		assert.Equal(t, writable[i], m.IsWritable, "writable %d", i)
		assert.Equal(t, i == 9, m.IsSigner, "signer %d", i)
	}
}

func TestSignerFlags(t *testing.T) {
	signers := func(metas []*solana.AccountMeta) []int {
		var out []int
		for i, m := range metas {
			if m.IsSigner {
				out = append(out, i)
			}
		}
		return out
	}
	assert.Equal(t, []int{2}, signers(launchpad.InitializeAccounts{}.ToAccountMetas()))
	assert.Equal(t, []int{1}, signers(launchpad.AdminAccounts{}.ToAccountMetas()))
	assert.Equal(t, []int{2}, signers(launchpad.SetLaunchPausedAccounts{}.ToAccountMetas()))
	assert.Equal(t, []int{1, 4}, signers(launchpad.CreateTokenAccounts{}.ToAccountMetas()))
	assert.Equal(t, []int{2}, signers(launchpad.ClaimCreatorFeesAccounts{}.ToAccountMetas()))
	assert.Equal(t, []int{7, 9}, signers(launchpad.MigrateToPoolAccounts{}.ToAccountMetas()))
	assert.Equal(t, []int{2, 8}, signers(launchpad.CreatePoolAccounts{}.ToAccountMetas()))
	assert.Equal(t, []int{5}, signers(launchpad.SwapAccounts{}.ToAccountMetas()))
	assert.Equal(t, []int{7}, signers(launchpad.LiquidityAccounts{}.ToAccountMetas()))
	assert.Equal(t, []int{5}, signers(launchpad.StakeAccounts{}.ToAccountMetas()))
}

func sampleLaunch() *launchpad.TokenLaunch {
	return &launchpad.TokenLaunch{
		Mint:                   key(1),
		Creator:                key(2),
		Name:                   "Moon Cat",
		Symbol:                 "MCAT",
		URI:                    "https://example.com/mcat.json",
		CurveType:              launchpad.CurveLogarithmic,
		CreatorFeeBps:          100,
		VirtualSolReserves:     30_000_000_000,
		VirtualTokenReserves:   1_073_000_000_000_000,
		RealSolReserves:        5_000_000_000,
		RealTokenReserves:      793_100_000_000_000,
		AccumulatedCreatorFees: 12_345,
		Migrated:               false,
		Paused:                 true,
		CreatedAt:              1_700_000_000,
	}
}

func TestAccountRoundTrip(t *testing.T) {
	tests := []struct {
		in   codec.Account
		out  codec.Account
		size int
	}{
		{
			in:   &launchpad.PlatformConfig{Authority: key(9), PlatformFeeBps: 100, MigrationThreshold: 85_000_000_000, Paused: true},
			out:  &launchpad.PlatformConfig{},
			size: 51,
		},
		{
			in:   sampleLaunch(),
			out:  &launchpad.TokenLaunch{},
			size: 137 + len("Moon Cat") + len("MCAT") + len("https://example.com/mcat.json"),
		},
		{
			in:   &launchpad.UserPosition{Wallet: key(3), Mint: key(1), TokenBalance: 5, TotalSolSpent: 6, TotalSolReceived: 7},
			out:  &launchpad.UserPosition{},
			size: 96,
		},
		{
			in: &launchpad.AmmPool{
				Mint: key(1), TokenReserve: 1, SolReserve: 2, LpMint: key(4), LpSupply: 3,
				TotalFeesSol: 4, TotalFeesToken: 5, CreatedAt: -6, Bump: 254, SolVaultBump: 253,
			},
			out:  &launchpad.AmmPool{},
			size: 122,
		},
		{
			in:   &launchpad.Leaderboard{Entries: []launchpad.LeaderboardEntry{{Mint: key(1), Volume: 10}, {Mint: key(2), Volume: 5}}},
			out:  &launchpad.Leaderboard{},
			size: 12 + 2*40,
		},
	}
	for _, tt := range tests {
		t.Run(tt.in.AccountName(), func(t *testing.T) {
			data, err := codec.EncodeAccount(tt.in)
			require.NoError(t, err)
			assert.Len(t, data, tt.size)
			assert.GreaterOrEqual(t, len(data), tt.in.MinSize())

			require.NoError(t, codec.DecodeAccount(data, tt.out))
			assert.Equal(t, tt.in, tt.out)

			decoded, err := launchpad.DecodeAny(data)
			require.NoError(t, err)
			assert.Equal(t, tt.in, decoded)
		})
	}
}

func TestTokenLaunchDecodeErrors(t *testing.T) {
	data, err := codec.EncodeAccount(sampleLaunch())
	require.NoError(t, err)

	var l launchpad.TokenLaunch
	require.ErrorIs(t, l.Unmarshal(data[:136]), types.ErrTruncatedData)
	require.ErrorIs(t, l.Unmarshal(data[:len(data)-1]), types.ErrTruncatedData)

	var pool launchpad.AmmPool
	require.ErrorIs(t, pool.Unmarshal(data), types.ErrSchemaMismatch)

	// curve_type sits after mint, creator and three strings.
	bad := append([]byte{}, data...)
	off := 8 + 64 + 3*4 + len("Moon Cat") + len("MCAT") + len("https://example.com/mcat.json")
	require.Equal(t, byte(launchpad.CurveLogarithmic), bad[off])
	bad[off] = 9
	require.ErrorIs(t, l.Unmarshal(bad), types.ErrSchemaMismatch)
}

func TestLeaderboardBound(t *testing.T) {
	entries := make([]launchpad.LeaderboardEntry, 101)
	data, err := codec.EncodeAccount(&launchpad.Leaderboard{Entries: entries})
	require.NoError(t, err)

	var lb launchpad.Leaderboard
	require.ErrorIs(t, lb.Unmarshal(data), types.ErrSchemaMismatch)

	data, err = codec.EncodeAccount(&launchpad.Leaderboard{Entries: entries[:100]})
	require.NoError(t, err)
	require.NoError(t, lb.Unmarshal(data))
	assert.Len(t, lb.Entries, 100)

	// Count says 3 but only one entry follows.
	data, err = codec.EncodeAccount(&launchpad.Leaderboard{Entries: entries[:3]})
	require.NoError(t, err)
	require.ErrorIs(t, lb.Unmarshal(data[:12+40]), types.ErrTruncatedData)
}

func TestDecodeAnyUnknown(t *testing.T) {
	_, err := launchpad.DecodeAny(make([]byte, 64))
	require.ErrorIs(t, err, types.ErrSchemaMismatch)

	_, err = launchpad.DecodeAny([]byte{1, 2})
	require.ErrorIs(t, err, types.ErrTruncatedData)
}

func TestTypedConversions(t *testing.T) {
	l := sampleLaunch()
	c := l.Curve()
	assert.Equal(t, l.VirtualSolReserves, c.VirtualSolReserves)
	assert.Equal(t, l.RealTokenReserves, c.RealTokenReserves)

	p := (&launchpad.AmmPool{SolReserve: 1, TokenReserve: 2, LpSupply: 3}).Reserves()
	assert.Equal(t, curve.Pool{SolReserve: 1, TokenReserve: 2, LpSupply: 3}, p)
}

func TestCurveTypeParse(t *testing.T) {
	for _, c := range []launchpad.CurveType{launchpad.CurveLinear, launchpad.CurveExponential, launchpad.CurveLogarithmic} {
		got, err := launchpad.ParseCurveType(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	_, err := launchpad.ParseCurveType("sigmoid")
	require.Error(t, err)
}
