package builder_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninja0404/launchpad-go-sdk/pkg/builder"
	"github.com/ninja0404/launchpad-go-sdk/pkg/codec"
	"github.com/ninja0404/launchpad-go-sdk/pkg/constants"
	"github.com/ninja0404/launchpad-go-sdk/pkg/curve"
	"github.com/ninja0404/launchpad-go-sdk/pkg/program/launchpad"
	"github.com/ninja0404/launchpad-go-sdk/pkg/types"
)

var (
	user    = solana.MustPublicKeyFromBase58("9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM")
	creator = solana.MustPublicKeyFromBase58("4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T")
	mint    = solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")
	lpMint  = solana.MustPublicKeyFromBase58("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")
)

func keys(ix *solana.GenericInstruction) []solana.PublicKey {
	out := make([]solana.PublicKey, 0, len(ix.AccountValues))
	for _, m := range ix.AccountValues {
		out = append(out, m.PublicKey)
	}
	return out
}

func must(t *testing.T) func(solana.PublicKey, uint8, error) solana.PublicKey {
	return func(pk solana.PublicKey, _ uint8, err error) solana.PublicKey {
		t.Helper()
		require.NoError(t, err)
		return pk
	}
}

func TestBuyDerivesAccounts(t *testing.T) {
	b := builder.New(constants.LaunchpadProgramID)
	d := b.Deriver()

	ix, err := b.Buy(builder.BuyParams{Buyer: user, Mint: mint, Creator: creator, SolAmount: 10_000_000})
	require.NoError(t, err)
	assert.Equal(t, constants.LaunchpadProgramID, ix.ProgramID())

	launch := must(t)(d.TokenLaunch(mint))
	want := []solana.PublicKey{
		launch,
		mint,
		must(t)(d.AssociatedTokenAccount(launch, mint)),
		must(t)(d.SolVault(mint)),
		must(t)(d.AssociatedTokenAccount(user, mint)),
		must(t)(d.UserPosition(user, mint)),
		must(t)(d.PlatformVault()),
		creator,
		must(t)(d.PlatformConfig()),
		user,
		constants.TokenProgramID,
		constants.AssociatedTokenProgramID,
		constants.SystemProgramID,
	}
	assert.Equal(t, want, keys(ix))

	data, err := ix.Data()
	require.NoError(t, err)
	expected, err := codec.EncodeInstruction(launchpad.InstructionBuy, uint64(10_000_000))
	require.NoError(t, err)
	assert.Equal(t, expected, data)
}

func TestSwapDerivesPoolAccounts(t *testing.T) {
	b := builder.New(constants.LaunchpadProgramID)
	d := b.Deriver()

	ix, err := b.Swap(builder.SwapParams{User: user, Mint: mint, Direction: curve.SolToToken, AmountIn: 1_000})
	require.NoError(t, err)

	pool := must(t)(d.AmmPool(mint))
	got := keys(ix)
	require.Len(t, got, 9)
	assert.Equal(t, pool, got[0])
	assert.Equal(t, must(t)(d.AssociatedTokenAccount(pool, mint)), got[2])
	assert.Equal(t, must(t)(d.PoolSolVault(mint)), got[3])
	assert.Equal(t, must(t)(d.AssociatedTokenAccount(user, mint)), got[4])
	assert.Equal(t, user, got[5])
}

func TestAllOperationsBuild(t *testing.T) {
	b := builder.New(constants.LaunchpadProgramID)

	builds := map[string]func() (*solana.GenericInstruction, error){
		launchpad.InstructionInitialize: func() (*solana.GenericInstruction, error) {
			return b.Initialize(builder.InitializeParams{Authority: user, PlatformFeeBps: 100, MigrationThreshold: 85_000_000_000})
		},
		launchpad.InstructionUpdatePlatformConfig: func() (*solana.GenericInstruction, error) {
			return b.UpdatePlatformConfig(builder.UpdatePlatformConfigParams{Authority: user, PlatformFeeBps: codec.Some[uint16](50)})
		},
		launchpad.InstructionPause:   func() (*solana.GenericInstruction, error) { return b.Pause(user) },
		launchpad.InstructionUnpause: func() (*solana.GenericInstruction, error) { return b.Unpause(user) },
		launchpad.InstructionSetLaunchPaused: func() (*solana.GenericInstruction, error) {
			return b.SetLaunchPaused(builder.SetLaunchPausedParams{Authority: user, Mint: mint, Paused: true})
		},
		launchpad.InstructionCreateToken: func() (*solana.GenericInstruction, error) {
			return b.CreateToken(builder.CreateTokenParams{Creator: creator, Mint: mint, Name: "Moon", Symbol: "MOON", URI: "https://x.io/m.json"})
		},
		launchpad.InstructionBuy: func() (*solana.GenericInstruction, error) {
			return b.Buy(builder.BuyParams{Buyer: user, Mint: mint, Creator: creator, SolAmount: 1})
		},
		launchpad.InstructionSell: func() (*solana.GenericInstruction, error) {
			return b.Sell(builder.SellParams{Seller: user, Mint: mint, Creator: creator, TokenAmount: 1})
		},
		launchpad.InstructionClaimCreatorFees: func() (*solana.GenericInstruction, error) {
			return b.ClaimCreatorFees(builder.ClaimCreatorFeesParams{Creator: creator, Mint: mint})
		},
		launchpad.InstructionMigrateToPool: func() (*solana.GenericInstruction, error) {
			return b.MigrateToPool(builder.MigrateToPoolParams{Payer: user, Mint: mint, LpMint: lpMint})
		},
		launchpad.InstructionCreatePool: func() (*solana.GenericInstruction, error) {
			return b.CreatePool(builder.CreatePoolParams{Creator: creator, Mint: mint, LpMint: lpMint, TokenAmount: 1, SolAmount: 1})
		},
		launchpad.InstructionSwap: func() (*solana.GenericInstruction, error) {
			return b.Swap(builder.SwapParams{User: user, Mint: mint, Direction: curve.TokenToSol, AmountIn: 1})
		},
		launchpad.InstructionAddLiquidity: func() (*solana.GenericInstruction, error) {
			return b.AddLiquidity(builder.AddLiquidityParams{User: user, Mint: mint, LpMint: lpMint, SolAmount: 1, MaxTokenAmount: 1})
		},
		launchpad.InstructionRemoveLiquidity: func() (*solana.GenericInstruction, error) {
			return b.RemoveLiquidity(builder.RemoveLiquidityParams{User: user, Mint: mint, LpMint: lpMint, LpAmount: 1})
		},
		launchpad.InstructionStake: func() (*solana.GenericInstruction, error) {
			return b.Stake(builder.StakeParams{User: user, Mint: mint, Amount: 1})
		},
		launchpad.InstructionUnstake: func() (*solana.GenericInstruction, error) {
			return b.Unstake(builder.StakeParams{User: user, Mint: mint, Amount: 1})
		},
	}
	require.Len(t, builds, len(launchpad.Instructions))

	for _, op := range launchpad.Instructions {
		t.Run(op, func(t *testing.T) {
			ix, err := builds[op]()
			require.NoError(t, err)
			data, err := ix.Data()
			require.NoError(t, err)
			disc := codec.InstructionDiscriminator(op)
			assert.Equal(t, disc[:], data[:codec.DiscriminatorLen])
			for i, m := range ix.AccountValues {
				assert.False(t, m.PublicKey.IsZero(), "account %d unset", i)
			}
		})
	}
}

func TestMissingParams(t *testing.T) {
	b := builder.New(constants.LaunchpadProgramID)

	_, err := b.Buy(builder.BuyParams{Buyer: user, Mint: mint, SolAmount: 1})
	require.ErrorIs(t, err, types.ErrMissingRequiredParam)
	var missing types.MissingParamError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "creator", missing.Param)

	_, err = b.MigrateToPool(builder.MigrateToPoolParams{Payer: user, Mint: mint})
	require.ErrorIs(t, err, types.ErrMissingRequiredParam)

	_, err = b.Pause(solana.PublicKey{})
	require.ErrorIs(t, err, types.ErrMissingRequiredParam)
}

func TestValidation(t *testing.T) {
	b := builder.New(constants.LaunchpadProgramID)
	var verr types.ValidationError

	_, err := b.Buy(builder.BuyParams{Buyer: user, Mint: mint, Creator: creator})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "solAmount", verr.Field)

	tests := []struct {
		name  string
		field string
		p     builder.CreateTokenParams
	}{
		{"empty name", "name", builder.CreateTokenParams{Symbol: "M"}},
		{"long symbol", "symbol", builder.CreateTokenParams{Name: "Moon", Symbol: "ABCDEFGHIJK"}},
		{"bad curve", "curveType", builder.CreateTokenParams{Name: "Moon", Symbol: "M", CurveType: 9}},
		{"fee over 100%", "creatorFeeBps", builder.CreateTokenParams{Name: "Moon", Symbol: "M", CreatorFeeBps: 10_001}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.p.Creator, tt.p.Mint = creator, mint
			_, err := b.CreateToken(tt.p)
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}

	_, err = b.Swap(builder.SwapParams{User: user, Mint: mint, Direction: 5, AmountIn: 1})
	require.ErrorAs(t, err, &verr)
}

func TestOverrides(t *testing.T) {
	b := builder.New(constants.LaunchpadProgramID)
	custom := solana.MustPublicKeyFromBase58("4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T")

	for _, k := range []string{"UserTokenAccount", "userTokenAccount", "user_token_account"} {
		t.Run(k, func(t *testing.T) {
			ix, err := b.Sell(builder.SellParams{Seller: user, Mint: mint, Creator: creator, TokenAmount: 1},
				builder.WithOverrides(map[string]solana.PublicKey{k: custom}))
			require.NoError(t, err)
			assert.Equal(t, custom, ix.AccountValues[4].PublicKey)
		})
	}

	m, err := builder.MergeOverridesFromJSON(nil, []byte(`{"platform_vault":"`+custom.String()+`"}`))
	require.NoError(t, err)
	ix, err := b.Buy(builder.BuyParams{Buyer: user, Mint: mint, Creator: creator, SolAmount: 1}, builder.WithOverrides(m))
	require.NoError(t, err)
	assert.Equal(t, custom, ix.AccountValues[6].PublicKey)

	_, err = builder.MergeOverridesFromJSON(nil, []byte(`{"x":"not-base58!"}`))
	require.Error(t, err)
}

func TestPreview(t *testing.T) {
	b := builder.New(constants.LaunchpadProgramID)
	var buf bytes.Buffer

	_, err := b.Buy(builder.BuyParams{Buyer: user, Mint: mint, Creator: creator, SolAmount: 42}, builder.WithPreview(&buf))
	require.NoError(t, err)

	var out struct {
		Accounts map[string]string `json:"accounts"`
		Args     map[string]uint64 `json:"args"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, user.String(), out.Accounts["user"])
	assert.Equal(t, uint64(42), out.Args["solAmount"])

	buf.Reset()
	_, err = b.ClaimCreatorFees(builder.ClaimCreatorFeesParams{Creator: creator, Mint: mint}, builder.WithPreview(&buf))
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), `"args"`)
}

func TestWithTokenProgram(t *testing.T) {
	classic := builder.New(constants.LaunchpadProgramID)
	t22 := builder.New(constants.LaunchpadProgramID, builder.WithTokenProgram(constants.Token2022ProgramID))

	a, err := classic.Buy(builder.BuyParams{Buyer: user, Mint: mint, Creator: creator, SolAmount: 1})
	require.NoError(t, err)
	c, err := t22.Buy(builder.BuyParams{Buyer: user, Mint: mint, Creator: creator, SolAmount: 1})
	require.NoError(t, err)

	assert.NotEqual(t, a.AccountValues[4].PublicKey, c.AccountValues[4].PublicKey)
	assert.Equal(t, constants.Token2022ProgramID, c.AccountValues[10].PublicKey)
	assert.Equal(t, a.AccountValues[0].PublicKey, c.AccountValues[0].PublicKey)
}
