package txbuilder_test

import (
	"context"
	"errors"
	"testing"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	solanarpc "github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninja0404/launchpad-go-sdk/pkg/builder"
	"github.com/ninja0404/launchpad-go-sdk/pkg/constants"
	"github.com/ninja0404/launchpad-go-sdk/pkg/txbuilder"
	"github.com/ninja0404/launchpad-go-sdk/pkg/types"
)

var (
	payer     = solana.MustPublicKeyFromBase58("9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM")
	recipient = solana.MustPublicKeyFromBase58("4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T")
	blockhash = solana.Hash{0xde, 0xad, 0xbe, 0xef, 1, 2, 3}
)

type staticBlockhash struct {
	hash solana.Hash
	err  error
}

func (s staticBlockhash) GetLatestBlockhash(context.Context) (*solanarpc.GetLatestBlockhashResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &solanarpc.GetLatestBlockhashResult{Value: &solanarpc.LatestBlockhashResult{Blockhash: s.hash}}, nil
}

type recordingSubmitter struct {
	raw []byte
}

func (r *recordingSubmitter) SubmitAndConfirm(_ context.Context, signedTx []byte) (solana.Signature, error) {
	r.raw = signedTx
	tx, err := solana.TransactionFromDecoder(bin.NewBinDecoder(signedTx))
	if err != nil {
		return solana.Signature{}, err
	}
	return tx.Signatures[0], nil
}

func transfer() solana.Instruction {
	return system.NewTransferInstruction(1_000, payer, recipient).Build()
}

func TestAssemble(t *testing.T) {
	tx, err := txbuilder.Assemble(blockhash, payer, transfer())
	require.NoError(t, err)
	assert.Equal(t, blockhash, tx.Message.RecentBlockhash)
	assert.Equal(t, []solana.PublicKey{payer}, txbuilder.RequiredSigners(tx))
	assert.Len(t, tx.Signatures, 1)
	assert.False(t, txbuilder.IsSigned(tx))

	_, err = txbuilder.Assemble(blockhash, payer)
	require.ErrorIs(t, err, types.ErrNoInstructions)

	_, err = txbuilder.Assemble(blockhash, solana.PublicKey{}, transfer())
	require.ErrorIs(t, err, types.ErrMissingRequiredParam)
}

func TestAssembleLaunchpadSigners(t *testing.T) {
	b := builder.New(constants.LaunchpadProgramID)
	mint := solana.MustPublicKeyFromBase58("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")
	ix, err := b.CreateToken(builder.CreateTokenParams{Creator: payer, Mint: mint, Name: "Moon", Symbol: "MOON"})
	require.NoError(t, err)

	tx, err := txbuilder.Assemble(blockhash, payer, ix)
	require.NoError(t, err)
	signers := txbuilder.RequiredSigners(tx)
	require.Len(t, signers, 2)
	assert.Equal(t, payer, signers[0])
	assert.Equal(t, mint, signers[1])
}

func TestBase64RoundTrip(t *testing.T) {
	tx, err := txbuilder.Assemble(blockhash, payer, transfer())
	require.NoError(t, err)

	enc, err := txbuilder.ToBase64(tx)
	require.NoError(t, err)
	dec, err := txbuilder.FromBase64(enc)
	require.NoError(t, err)
	assert.Equal(t, tx.Message.RecentBlockhash, dec.Message.RecentBlockhash)
	assert.Equal(t, tx.Message.AccountKeys, dec.Message.AccountKeys)
	assert.Len(t, dec.Signatures, 1)

	_, err = txbuilder.FromBase64("!!")
	require.Error(t, err)
}

func TestBuildTransaction(t *testing.T) {
	b := txbuilder.NewBuilder(staticBlockhash{hash: blockhash}, nil)
	tx, err := b.BuildTransaction(context.Background(), payer, transfer())
	require.NoError(t, err)
	assert.Equal(t, blockhash, tx.Message.RecentBlockhash)

	_, err = b.BuildTransaction(context.Background(), payer)
	require.ErrorIs(t, err, types.ErrNoInstructions)

	boom := errors.New("rpc down")
	_, err = txbuilder.NewBuilder(staticBlockhash{err: boom}, nil).BuildTransaction(context.Background(), payer, transfer())
	require.ErrorIs(t, err, boom)

	_, err = txbuilder.NewBuilder(nil, nil).BuildTransaction(context.Background(), payer, transfer())
	require.ErrorIs(t, err, types.ErrNilRPC)
}

func TestSubmit(t *testing.T) {
	sub := &recordingSubmitter{}
	b := txbuilder.NewBuilder(staticBlockhash{hash: blockhash}, nil)

	tx, err := b.BuildTransaction(context.Background(), payer, transfer())
	require.NoError(t, err)

	_, err = b.Submit(context.Background(), tx)
	require.ErrorIs(t, err, types.ErrNilRPC)

	b.WithSubmitter(sub)
	var verr types.ValidationError
	_, err = b.Submit(context.Background(), tx)
	require.ErrorAs(t, err, &verr)

	tx.Signatures[0] = solana.Signature{1, 2, 3}
	require.True(t, txbuilder.IsSigned(tx))
	sig, err := b.Submit(context.Background(), tx)
	require.NoError(t, err)
	assert.Equal(t, solana.Signature{1, 2, 3}, sig)
	assert.NotEmpty(t, sub.raw)
}
